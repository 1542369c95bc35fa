// Package hasharray composes an array.Array with a hashtab.Table to
// provide an order-preserving array with O(1) amortized deduplicated
// append — a capability neither component alone provides.
//
// The array is the canonical storage: elements keep their insertion
// order and, because insertion only ever happens at the tail, an
// element's position never changes once assigned. The hash table maps
// element identity to positions in the array and is only an index; it
// can be discarded at any time with Extract.
package hasharray

import (
	"github.com/sctools/sckit/sc/array"
	"github.com/sctools/sckit/sc/hashtab"
)

// HashFunc computes an unsigned hash of one element's bytes.
type HashFunc func(elem []byte, userData any) uint32

// EqualFunc reports whether two elements' bytes represent the same key.
type EqualFunc func(a, b []byte, userData any) bool

// HashArray is a dynamic array with a hash-backed deduplication index.
// Not safe for concurrent use.
type HashArray struct {
	a *array.Array
	h *hashtab.Table[int]

	hashFn   HashFunc
	equalFn  EqualFunc
	userData any

	// candidate briefly holds the element being probed, so the index
	// can compare it against array contents before it is stored.
	candidate []byte
}

// New creates a hash array of elemSize-byte elements.
func New(elemSize int, hashFn HashFunc, equalFn EqualFunc, userData any) *HashArray {
	if hashFn == nil || equalFn == nil {
		panic("hasharray: nil hash or equal function")
	}
	ha := &HashArray{
		a:        array.New(elemSize),
		hashFn:   hashFn,
		equalFn:  equalFn,
		userData: userData,
	}
	// The index stores array positions; the caller's functions see
	// element bytes through resolve.
	ha.h = hashtab.New(ha.hashPos, ha.equalPos, nil, nil)
	return ha
}

// resolve maps an indexed position to element bytes. The position equal
// to the current array length denotes the transient candidate.
func (ha *HashArray) resolve(pos int) []byte {
	if pos == ha.a.Len() {
		return ha.candidate
	}
	return ha.a.Index(pos)
}

func (ha *HashArray) hashPos(pos int, _ any) uint32 {
	return ha.hashFn(ha.resolve(pos), ha.userData)
}

func (ha *HashArray) equalPos(p, q int, _ any) bool {
	return ha.equalFn(ha.resolve(p), ha.resolve(q), ha.userData)
}

// Len returns the number of stored elements.
func (ha *HashArray) Len() int { return ha.a.Len() }

// ElemSize returns the size of one element in bytes.
func (ha *HashArray) ElemSize() int { return ha.a.ElemSize() }

// Index returns the element at position pos in insertion order. The
// returned slice aliases the canonical storage and is valid until the
// next insertion.
func (ha *HashArray) Index(pos int) []byte { return ha.a.Index(pos) }

// InsertUnique inserts v unless an equal element is already stored.
//
// When an equal element exists its position is returned with a nil data
// slice and inserted == false; v is not copied in. Otherwise v's bytes
// are appended at the tail of the array, registered in the index, and
// the new slot plus its position are returned. v must hold at least
// ElemSize bytes.
func (ha *HashArray) InsertUnique(v []byte) (data []byte, pos int, inserted bool) {
	if len(v) < ha.a.ElemSize() {
		panic("hasharray: input shorter than element size")
	}

	ha.candidate = v
	posPtr, inserted := ha.h.InsertUnique(ha.a.Len())
	ha.candidate = nil

	if !inserted {
		return nil, *posPtr, false
	}
	data = ha.a.Push()
	copy(data, v)
	return data, *posPtr, true
}

// Lookup reports whether an element equal to v is stored and at which
// position. Absence is a normal outcome.
func (ha *HashArray) Lookup(v []byte) (pos int, ok bool) {
	if len(v) < ha.a.ElemSize() {
		panic("hasharray: input shorter than element size")
	}

	ha.candidate = v
	posPtr, ok := ha.h.Lookup(ha.a.Len())
	ha.candidate = nil

	if !ok {
		return -1, false
	}
	return *posPtr, true
}

// Truncate removes all elements; the hash array stays usable.
func (ha *HashArray) Truncate() {
	ha.h.Truncate()
	ha.a.Reset()
}

// Extract detaches and returns the canonical array, transferring its
// ownership to the caller, and discards the index in O(1). For callers
// that no longer need search capability. The hash array must not be
// used afterwards.
func (ha *HashArray) Extract() *array.Array {
	a := ha.a
	ha.h.UnlinkDestroy()
	ha.a = nil
	ha.h = nil
	return a
}

// Destroy releases array and index. The hash array must not be used
// afterwards.
func (ha *HashArray) Destroy() {
	ha.h.Destroy()
	ha.a.Reset()
	ha.a = nil
	ha.h = nil
}
