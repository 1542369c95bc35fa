// Package mempool provides a slab-based pool of fixed-size objects with
// freelist recycling.
//
// Unlike array.Array, a Pool hands out permanently stable addresses: an
// allocated object is never relocated by later pool growth and stays
// valid until it is individually freed or the whole pool is truncated.
// That stability is why the node-based containers (list.List, the
// hashtab chains) allocate from a Pool rather than an Array.
//
// Pools are not safe for concurrent use.
package mempool

import "os"

// debugScrub makes Alloc and Free overwrite object memory with the zero
// value, so stale reads of freed objects fail loudly. Diagnostic only.
var debugScrub = os.Getenv("SCKIT_DEBUG_POOL") != ""

const (
	// firstSlabCap is the object capacity of the first slab.
	firstSlabCap = 64

	// maxSlabCap bounds the geometric slab growth.
	maxSlabCap = 4096
)

// Pool is a growing pool of objects of type T.
//
// Objects live in slabs that are allocated at full capacity and never
// appended beyond it, so the *T values returned by Alloc are stable for
// the life of the pool. Freed objects are recycled in LIFO order before
// any new slab memory is carved.
type Pool[T any] struct {
	elemCount int // live allocations

	slabs   [][]T
	nextCap int

	// freed buffers recycled objects. A Go slice rather than an
	// array.Array: the byte-block array must not hold GC-managed
	// pointers.
	freed []*T
}

// New creates an empty pool.
func New[T any]() *Pool[T] {
	return &Pool[T]{nextCap: firstSlabCap}
}

// Len returns the number of live allocations.
func (p *Pool[T]) Len() int { return p.elemCount }

// Alloc returns one object, recycling a previously freed one when
// available. The object's contents are unspecified unless debug
// scrubbing is enabled. No other live allocation is ever relocated.
func (p *Pool[T]) Alloc() *T {
	p.elemCount++

	if n := len(p.freed); n > 0 {
		x := p.freed[n-1]
		p.freed = p.freed[:n-1]
		if debugScrub {
			var zero T
			*x = zero
		}
		return x
	}

	if len(p.slabs) == 0 || len(p.slabs[len(p.slabs)-1]) == cap(p.slabs[len(p.slabs)-1]) {
		p.slabs = append(p.slabs, make([]T, 0, p.nextCap))
		if p.nextCap < maxSlabCap {
			p.nextCap *= 2
		}
	}

	s := &p.slabs[len(p.slabs)-1]
	var zero T
	*s = append(*s, zero) // within capacity, never relocates
	return &(*s)[len(*s)-1]
}

// Free returns an object to the pool for reuse. Freeing when no
// allocation is live is a fatal programming error; freeing the same
// object twice or an object from another pool is undefined behavior.
func (p *Pool[T]) Free(x *T) {
	if p.elemCount == 0 {
		panic("mempool: free count underflow")
	}
	if debugScrub {
		var zero T
		*x = zero
	}
	p.elemCount--
	p.freed = append(p.freed, x)
}

// Truncate invalidates every outstanding allocation and resets the pool
// to empty, releasing all slabs and the freelist. Using a previously
// returned object afterwards is undefined behavior.
func (p *Pool[T]) Truncate() {
	p.elemCount = 0
	p.slabs = nil
	p.freed = nil
	p.nextCap = firstSlabCap
}
