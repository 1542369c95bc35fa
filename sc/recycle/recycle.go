// Package recycle provides an array of fixed-size slots with O(1) slot
// reuse and no hashing.
package recycle

import (
	"github.com/sctools/sckit/internal/buf"
	"github.com/sctools/sckit/sc/array"
)

// Array is a backing array paired with a stack of free slot indices.
//
// Insert pops a free index when one is available, so the backing array
// only grows when no holes remain; Remove pushes the slot's index for
// later reuse. The live count may therefore be smaller than the backing
// array's length by the number of current holes. Positions handed out
// by Insert stay valid until removed.
//
// Not safe for concurrent use.
type Array struct {
	elemCount int // live entries

	a array.Array // slots, some of which may be unused
	f array.Array // stack of free indices, 8 bytes each
}

// New creates a recycle array of elemSize-byte slots.
func New(elemSize int) *Array {
	r := &Array{}
	r.Init(elemSize)
	return r
}

// Init initializes an already allocated recycle array structure.
// Init followed by any operations followed by Reset is memory neutral.
func (r *Array) Init(elemSize int) {
	r.a.Init(elemSize)
	r.f.Init(8)
	r.elemCount = 0
}

// Reset releases all storage.
func (r *Array) Reset() {
	r.a.Reset()
	r.f.Reset()
	r.elemCount = 0
}

// Len returns the number of live entries.
func (r *Array) Len() int { return r.elemCount }

// ElemSize returns the size of one slot in bytes.
func (r *Array) ElemSize() int { return r.a.ElemSize() }

// Insert claims a slot and returns its bytes and position, reusing a
// freed slot when one is available and growing the backing array by one
// otherwise. The slot's previous contents are unspecified.
func (r *Array) Insert() (data []byte, pos int) {
	if r.f.Len() > 0 {
		pos = int(buf.U64(r.f.Pop()))
		data = r.a.Index(pos)
	} else {
		data = r.a.Push()
		pos = r.a.Len() - 1
	}
	r.elemCount++
	return data, pos
}

// Remove releases the slot at pos and returns its bytes, valid until
// the next call on this recycle array. pos must have been returned by
// Insert and not already removed; double removal is undefined behavior.
func (r *Array) Remove(pos int) []byte {
	if r.elemCount == 0 {
		panic("recycle: remove count underflow")
	}
	data := r.a.Index(pos)
	buf.PutU64(r.f.Push(), uint64(pos))
	r.elemCount--
	return data
}
