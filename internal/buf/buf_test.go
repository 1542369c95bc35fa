package buf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	v, ok := AddOverflowSafe(1, 2)
	require.True(t, ok)
	require.Equal(t, 3, v)

	_, ok = AddOverflowSafe(math.MaxInt, 1)
	require.False(t, ok)

	_, ok = AddOverflowSafe(math.MinInt, -1)
	require.False(t, ok)
}

func TestMulOverflowSafe(t *testing.T) {
	v, ok := MulOverflowSafe(6, 7)
	require.True(t, ok)
	require.Equal(t, 42, v)

	v, ok = MulOverflowSafe(0, math.MaxInt)
	require.True(t, ok)
	require.Equal(t, 0, v)

	_, ok = MulOverflowSafe(math.MaxInt/2, 3)
	require.False(t, ok)
}

func TestSliceHas(t *testing.T) {
	b := []byte{1, 2, 3, 4}

	s, ok := Slice(b, 1, 2)
	require.True(t, ok)
	require.Equal(t, []byte{2, 3}, s)

	_, ok = Slice(b, 3, 2)
	require.False(t, ok)
	_, ok = Slice(b, -1, 1)
	require.False(t, ok)

	require.True(t, Has(b, 0, 4))
	require.False(t, Has(b, 0, 5))
}

func TestU64RoundTrip(t *testing.T) {
	b := make([]byte, 8)
	PutU64(b, 0x1122334455667788)
	require.Equal(t, uint64(0x1122334455667788), U64(b))
	require.Equal(t, uint64(0), U64(b[:7]))
}
