package hashfn

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRot(t *testing.T) {
	require.Equal(t, uint32(0x00000002), Rot(1, 1))
	require.Equal(t, uint32(0x80000000), Rot(1, 31))
	require.Equal(t, bits.RotateLeft32(0xdeadbeef, 13), Rot(0xdeadbeef, 13))
}

func TestMixIsDeterministic(t *testing.T) {
	a1, b1, c1 := Mix(1, 2, 3)
	a2, b2, c2 := Mix(1, 2, 3)
	require.Equal(t, a1, a2)
	require.Equal(t, b1, b2)
	require.Equal(t, c1, c2)

	// Not the identity.
	require.NotEqual(t, [3]uint32{1, 2, 3}, [3]uint32{a1, b1, c1})
}

func TestHashWords_SeedAndInputSensitivity(t *testing.T) {
	words := []uint32{0x12345678, 0x9abcdef0, 0x0f0f0f0f, 0xffffffff, 7}

	h := HashWords(words, 0)
	require.Equal(t, h, HashWords(words, 0), "must be deterministic")
	require.NotEqual(t, h, HashWords(words, 1), "seed must matter")

	flipped := append([]uint32(nil), words...)
	flipped[3] ^= 1
	require.NotEqual(t, h, HashWords(flipped, 0), "single bit must matter")

	require.NotEqual(t, HashWords(words[:1], 0), HashWords(words[:2], 0))
}

func TestHashWords_AvalancheSanity(t *testing.T) {
	// Flipping one input bit should flip a healthy share of output
	// bits. A loose 8-bit threshold catches gross mixing regressions.
	base := HashWords([]uint32{0xcafe, 0xbabe, 0x1234, 0x5678}, 99)
	for bit := range uint(32) {
		in := []uint32{0xcafe, 0xbabe, 0x1234, 0x5678}
		in[2] ^= 1 << bit
		diff := bits.OnesCount32(base ^ HashWords(in, 99))
		require.GreaterOrEqual(t, diff, 8, "poor avalanche on bit %d", bit)
	}
}

func TestHashWords_EmptyInput(t *testing.T) {
	// Empty input returns the seeded initializer, still seed-dependent.
	require.Equal(t, HashWords(nil, 5), HashWords([]uint32{}, 5))
	require.NotEqual(t, HashWords(nil, 5), HashWords(nil, 6))
}

func BenchmarkHashWords(b *testing.B) {
	words := make([]uint32, 64)
	for i := range words {
		words[i] = uint32(i) * 2654435761
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		HashWords(words, uint32(i))
	}
}
