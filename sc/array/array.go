package array

import (
	"github.com/sctools/sckit/internal/buf"
)

// CompareFunc is a three-way comparator over two elements of equal size.
// It returns a negative value when a sorts before b, zero when they are
// equivalent, and a positive value otherwise.
type CompareFunc func(a, b []byte) int

// Array is a resizable contiguous array of fixed-size elements.
//
// Elements are addressed by their 0-based index. Element addresses are NOT
// stable: any call that changes the element count may reallocate the
// backing storage. Callers that need stable addresses should use a
// mempool.Pool instead.
//
// The zero value is not ready for use; call Init (or use New).
type Array struct {
	elemSize  int
	elemCount int

	// store holds the backing bytes; len(store) is the allocated byte
	// capacity, live data occupies store[:elemCount*elemSize].
	store []byte
}

// New creates an array of zero elements of elemSize bytes each.
func New(elemSize int) *Array {
	a := &Array{}
	a.Init(elemSize)
	return a
}

// Init initializes an already allocated array structure.
// Init followed by any operations followed by Reset is memory neutral.
func (a *Array) Init(elemSize int) {
	if elemSize <= 0 {
		panic("array: element size must be positive")
	}
	a.elemSize = elemSize
	a.elemCount = 0
	a.store = nil
}

// Reset sets the element count to zero and releases the backing storage.
func (a *Array) Reset() {
	a.elemCount = 0
	a.store = nil
}

// ElemSize returns the size of one element in bytes.
func (a *Array) ElemSize() int { return a.elemSize }

// Len returns the number of valid elements.
func (a *Array) Len() int { return a.elemCount }

// Resize sets the element count to n.
//
// Storage is reallocated only when the new byte size exceeds the current
// capacity (doubling) or drops to a quarter of it (halving), so sequences
// of single-element growth run in amortized O(1). Elements at indices
// below min(old, new) count are preserved bit for bit.
func (a *Array) Resize(n int) {
	if n < 0 {
		panic("array: negative element count")
	}
	newSize, ok := buf.MulOverflowSafe(n, a.elemSize)
	if !ok {
		panic("array: byte size overflow")
	}

	switch {
	case newSize > len(a.store):
		alloc := 2 * len(a.store)
		if alloc < newSize {
			alloc = newSize
		}
		grown := make([]byte, alloc)
		copy(grown, a.store[:a.elemCount*a.elemSize])
		a.store = grown
	case newSize <= len(a.store)/4:
		// Keep live bytes, drop excess capacity.
		shrunk := make([]byte, len(a.store)/2)
		live := newSize
		if keep := a.elemCount * a.elemSize; keep < live {
			live = keep
		}
		copy(shrunk, a.store[:live])
		a.store = shrunk
	}
	a.elemCount = n
}

// Index returns the element at index i. The returned slice aliases the
// backing storage and is valid until the next resizing call.
// Indexing out of range is a fatal programming error.
func (a *Array) Index(i int) []byte {
	if i < 0 || i >= a.elemCount {
		panic("array: index out of range")
	}
	return a.store[i*a.elemSize : (i+1)*a.elemSize]
}

// Push enlarges the array by one and returns the new last element.
// The new element's contents are unspecified.
func (a *Array) Push() []byte {
	old := a.elemCount
	if (old+1)*a.elemSize > len(a.store) {
		a.Resize(old + 1)
	} else {
		a.elemCount++
	}
	return a.store[old*a.elemSize : (old+1)*a.elemSize]
}

// Pop removes the last element and returns it. The returned slice is
// valid until the next call on this array. Popping an empty array is a
// fatal programming error.
func (a *Array) Pop() []byte {
	if a.elemCount == 0 {
		panic("array: pop from empty array")
	}
	a.elemCount--
	return a.store[a.elemCount*a.elemSize : (a.elemCount+1)*a.elemSize]
}

// swap exchanges elements i and j byte by byte.
func (a *Array) swap(i, j int) {
	x := a.Index(i)
	y := a.Index(j)
	for k := range x {
		x[k], y[k] = y[k], x[k]
	}
}
