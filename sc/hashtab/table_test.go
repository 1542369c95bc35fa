package hashtab

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sctools/sckit/sc/list"
	"github.com/sctools/sckit/sc/mempool"
)

// hashInt deliberately collides every 16th value so chains get exercised.
func hashInt(v int, _ any) uint32 { return uint32(v % 16) }

func equalInt(a, b int, _ any) bool { return a == b }

func newIntTable() *Table[int] {
	return New(hashInt, equalInt, nil, nil)
}

func TestTable_InsertUniqueTwice(t *testing.T) {
	h := newIntTable()

	p1, inserted := h.InsertUnique(42)
	require.True(t, inserted)
	require.Equal(t, 42, *p1)
	require.Equal(t, 1, h.Len())

	p2, inserted := h.InsertUnique(42)
	require.False(t, inserted, "second insert must report already present")
	require.Equal(t, 1, h.Len())
	require.Equal(t, p1, p2, "must report the location of the first copy")
}

func TestTable_InsertManyThenLookup(t *testing.T) {
	h := newIntTable()

	const n = 1000
	for i := range n {
		_, inserted := h.InsertUnique(i)
		require.True(t, inserted)
	}
	require.Equal(t, n, h.Len())

	for i := range n {
		p, ok := h.Lookup(i)
		require.True(t, ok, "element %d must be lookup-able", i)
		require.Equal(t, i, *p)
	}
	_, ok := h.Lookup(n)
	require.False(t, ok)
}

func TestTable_GrowthRehashPreservesMembership(t *testing.T) {
	h := newIntTable()
	require.Equal(t, initialSlotCount, h.SlotCount())

	const n = 500
	for i := range n {
		h.InsertUnique(i)
	}

	s := h.Stats()
	require.Greater(t, h.SlotCount(), initialSlotCount)
	require.Positive(t, s.ResizeActions)
	require.LessOrEqual(t, s.LoadFactor, float64(growLoadFactor)+1)

	// No loss, no duplication.
	require.Equal(t, n, h.Len())
	for i := range n {
		_, ok := h.Lookup(i)
		require.True(t, ok)
	}
}

func TestTable_ValueAddressSurvivesRehash(t *testing.T) {
	h := newIntTable()
	p, _ := h.InsertUnique(3)
	for i := 100; i < 600; i++ {
		h.InsertUnique(i)
	}
	require.Positive(t, h.Stats().ResizeActions)
	require.Equal(t, 3, *p, "stored value must not move across rehash")

	// Assigning through the pointer overrides the stored value. The
	// override must keep the same slot, so pick a colliding value.
	*p = 3 + 16
	_, ok := h.Lookup(3)
	require.False(t, ok)
	got, ok := h.Lookup(19)
	require.True(t, ok)
	require.Equal(t, 19, *got)
}

func TestTable_Remove(t *testing.T) {
	h := newIntTable()
	for i := range 64 {
		h.InsertUnique(i)
	}

	v, ok := h.Remove(17)
	require.True(t, ok)
	require.Equal(t, 17, v)
	require.Equal(t, 63, h.Len())

	_, ok = h.Lookup(17)
	require.False(t, ok)

	_, ok = h.Remove(17)
	require.False(t, ok, "absence is a normal outcome")
	require.Equal(t, 63, h.Len())

	// Collision chain neighbors are untouched (1, 17, 33 share a slot).
	for _, keep := range []int{1, 33, 49} {
		_, ok := h.Lookup(keep)
		require.True(t, ok, "collision neighbor %d lost", keep)
	}
}

func TestTable_BorrowedAllocator(t *testing.T) {
	pool := mempool.New[list.Link[int]]()
	h := New(hashInt, equalInt, nil, pool)

	for i := range 100 {
		h.InsertUnique(i)
	}
	require.Equal(t, 100, pool.Len())

	// Borrowed destroy walks every chain and returns the links.
	h.Destroy()
	require.Equal(t, 0, pool.Len())
}

func TestTable_TruncateKeepsTableUsable(t *testing.T) {
	for _, borrowed := range []bool{false, true} {
		t.Run(fmt.Sprintf("borrowed=%v", borrowed), func(t *testing.T) {
			var pool *mempool.Pool[list.Link[int]]
			if borrowed {
				pool = mempool.New[list.Link[int]]()
			}
			h := New(hashInt, equalInt, nil, pool)
			for i := range 50 {
				h.InsertUnique(i)
			}

			h.Truncate()
			require.Equal(t, 0, h.Len())
			for i := range 50 {
				_, ok := h.Lookup(i)
				require.False(t, ok)
			}

			// Still usable after Truncate.
			_, inserted := h.InsertUnique(7)
			require.True(t, inserted)
			if borrowed {
				require.Equal(t, 1, pool.Len())
			}
		})
	}
}

func TestTable_UnlinkLeaksIntoLender(t *testing.T) {
	pool := mempool.New[list.Link[int]]()
	h := New(hashInt, equalInt, nil, pool)
	for i := range 10 {
		h.InsertUnique(i)
	}

	h.Unlink()
	require.Equal(t, 0, h.Len())
	// Deliberate leak: the lender still counts the links as live.
	require.Equal(t, 10, pool.Len())
}

func TestTable_UserDataPassedThrough(t *testing.T) {
	type seed struct{ mul uint32 }
	hashFn := func(v int, u any) uint32 { return uint32(v) * u.(*seed).mul }
	equalFn := func(a, b int, u any) bool {
		require.NotNil(t, u)
		return a == b
	}

	h := New(hashFn, equalFn, &seed{mul: 2654435761}, nil)
	for i := range 100 {
		h.InsertUnique(i)
	}
	require.Equal(t, 100, h.Len())
	_, ok := h.Lookup(99)
	require.True(t, ok)
}

func TestTable_StatsCounts(t *testing.T) {
	h := newIntTable()
	for i := range 16 {
		h.InsertUnique(i) // no growth at 16 elems in 8 slots
	}

	s := h.Stats()
	require.Equal(t, 16, s.Elems)
	require.Equal(t, 16, s.ResizeChecks)
	require.Equal(t, 0, s.ResizeActions)
	// hashInt spreads 0..15 over 16 buckets folded into 8 slots: every
	// slot holds exactly two elements.
	require.Equal(t, 2, s.ChainMax)
	require.InDelta(t, 2.0, s.LoadFactor, 1e-9)
	require.InDelta(t, 0.0, s.ChainDev, 1e-9)
	require.NotEmpty(t, s.String())
}

func BenchmarkTable_InsertUnique(b *testing.B) {
	hashFn := func(v int, _ any) uint32 { return uint32(v) * 2654435761 }
	h := New(hashFn, equalInt, nil, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.InsertUnique(i)
	}
}

func BenchmarkTable_Lookup(b *testing.B) {
	hashFn := func(v int, _ any) uint32 { return uint32(v) * 2654435761 }
	h := New(hashFn, equalInt, nil, nil)
	for i := range 1 << 16 {
		h.InsertUnique(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Lookup(i & (1<<16 - 1))
	}
}
