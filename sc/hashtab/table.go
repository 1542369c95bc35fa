package hashtab

import (
	"github.com/sctools/sckit/sc/list"
	"github.com/sctools/sckit/sc/mempool"
)

// HashFunc computes an unsigned hash of v. userData is passed through
// from the table untouched.
type HashFunc[T any] func(v T, userData any) uint32

// EqualFunc reports whether a and b are the same element. userData is
// passed through from the table untouched.
type EqualFunc[T any] func(a, b T, userData any) bool

// Growth policy: every insert bumps the check counter, and when the
// table holds more than growLoadFactor elements per slot the slot count
// is multiplied by growthFactor and every element rehashed in O(N).
// The thresholds keep average chains at two elements or fewer.
const (
	initialSlotCount = 8
	growLoadFactor   = 2
	growthFactor     = 2
)

// linkAllocator is the ownership tag for the chain link pool. As with
// list.List, each variant implements teardown for its own case.
type linkAllocator[T any] interface {
	pool() *mempool.Pool[list.Link[T]]
	destroyTable(h *Table[T])
	truncateTable(h *Table[T])
	dropLinks()
}

type ownedAllocator[T any] struct{ p *mempool.Pool[list.Link[T]] }

func (a ownedAllocator[T]) pool() *mempool.Pool[list.Link[T]] { return a.p }

func (a ownedAllocator[T]) destroyTable(h *Table[T]) {
	// Pool dies with the table: O(1), no chain walking.
	h.slots = nil
	h.elemCount = 0
	a.p.Truncate()
}

func (a ownedAllocator[T]) truncateTable(h *Table[T]) {
	// Unlink the chains, then recycle every link at once.
	for i := range h.slots {
		h.slots[i].Unlink()
	}
	h.elemCount = 0
	a.p.Truncate()
}

func (a ownedAllocator[T]) dropLinks() { a.p.Truncate() }

type borrowedAllocator[T any] struct{ p *mempool.Pool[list.Link[T]] }

func (a borrowedAllocator[T]) pool() *mempool.Pool[list.Link[T]] { return a.p }

func (a borrowedAllocator[T]) destroyTable(h *Table[T]) {
	// Links belong to the lender; each chain must be walked.
	a.truncateTable(h)
	h.slots = nil
}

func (a borrowedAllocator[T]) truncateTable(h *Table[T]) {
	for i := range h.slots {
		h.slots[i].Reset()
	}
	h.elemCount = 0
}

// dropLinks leaks the table's links into the lender's pool; that leak
// is the documented hazard of the unlink-and-destroy path.
func (a borrowedAllocator[T]) dropLinks() {}

// Table is a separate-chaining hash table. Each slot of a dynamically
// grown slot array holds a chain of colliding elements; chain links
// come from a shared pool, owned or borrowed.
//
// Tables are not safe for concurrent use.
type Table[T any] struct {
	elemCount int

	slots    []list.List[T]
	hashFn   HashFunc[T]
	equalFn  EqualFunc[T]
	userData any
	alloc    linkAllocator[T]

	resizeChecks  int
	resizeActions int
}

// New creates a hash table. The slot count starts small and grows
// automatically. A nil allocator makes the table own a fresh link pool;
// a non-nil allocator is borrowed, must allocate list.Link[T], must
// outlive the table, and must not be truncated while the table holds
// elements.
func New[T any](
	hashFn HashFunc[T],
	equalFn EqualFunc[T],
	userData any,
	allocator *mempool.Pool[list.Link[T]],
) *Table[T] {
	if hashFn == nil || equalFn == nil {
		panic("hashtab: nil hash or equal function")
	}
	h := &Table[T]{
		hashFn:   hashFn,
		equalFn:  equalFn,
		userData: userData,
	}
	if allocator == nil {
		h.alloc = ownedAllocator[T]{p: mempool.New[list.Link[T]]()}
	} else {
		h.alloc = borrowedAllocator[T]{p: allocator}
	}
	h.slots = h.newSlots(initialSlotCount)
	return h
}

func (h *Table[T]) newSlots(n int) []list.List[T] {
	slots := make([]list.List[T], n)
	for i := range slots {
		slots[i].Init(h.alloc.pool())
	}
	return slots
}

// Len returns the number of stored elements.
func (h *Table[T]) Len() int { return h.elemCount }

// SlotCount returns the current number of slots.
func (h *Table[T]) SlotCount() int { return len(h.slots) }

// Allocator returns the chain link pool backing this table.
func (h *Table[T]) Allocator() *mempool.Pool[list.Link[T]] { return h.alloc.pool() }

func (h *Table[T]) slotFor(v T) *list.List[T] {
	return &h.slots[h.hashFn(v, h.userData)%uint32(len(h.slots))]
}

// findIn scans a chain for v and returns the matching link and its
// predecessor (nil when the match is first).
func (h *Table[T]) findIn(slot *list.List[T], v T) (lk, pred *list.Link[T]) {
	for lk = slot.First(); lk != nil; lk = lk.Next {
		if h.equalFn(lk.Value, v, h.userData) {
			return lk, pred
		}
		pred = lk
	}
	return nil, nil
}

// maybeResize grows the slot array when the load factor target is
// exceeded. Links are spliced into the new chains, not reallocated, so
// element addresses survive a rehash.
func (h *Table[T]) maybeResize() {
	h.resizeChecks++
	if h.elemCount <= growLoadFactor*len(h.slots) {
		return
	}
	h.resizeActions++

	old := h.slots
	h.slots = h.newSlots(growthFactor * len(old))
	for i := range old {
		lk := old[i].First()
		for lk != nil {
			next := lk.Next
			h.slotFor(lk.Value).AppendLink(lk)
			lk = next
		}
		old[i].Unlink()
	}
}

// InsertUnique inserts v unless an equal element is already present.
//
// It returns the address of the stored value and whether an insert took
// place: (existing, false) when the element was already contained,
// (fresh copy of v, true) otherwise. The address stays valid until that
// element is removed or the table is truncated or destroyed; callers
// may assign through it to replace the stored value.
func (h *Table[T]) InsertUnique(v T) (*T, bool) {
	h.maybeResize()

	slot := h.slotFor(v)
	if lk, _ := h.findIn(slot, v); lk != nil {
		return &lk.Value, false
	}
	lk := slot.Append(v)
	h.elemCount++
	return &lk.Value, true
}

// Lookup reports whether an element equal to v is contained and, if so,
// returns the address of the stored value. Absence is a normal outcome,
// not an error.
func (h *Table[T]) Lookup(v T) (*T, bool) {
	lk, _ := h.findIn(h.slotFor(v), v)
	if lk == nil {
		return nil, false
	}
	return &lk.Value, true
}

// Remove detaches the element equal to v, returning its stored value.
// The second result is false when no such element was contained.
func (h *Table[T]) Remove(v T) (T, bool) {
	slot := h.slotFor(v)
	lk, pred := h.findIn(slot, v)
	if lk == nil {
		var zero T
		return zero, false
	}
	v = slot.Remove(pred)
	h.elemCount--
	return v, true
}

// Truncate removes all entries. With an owned allocator the links are
// recycled wholesale; with a borrowed one every chain is walked. The
// table stays usable and keeps its current slot count.
func (h *Table[T]) Truncate() {
	h.alloc.truncateTable(h)
}

// Unlink detaches all elements without returning links to the pool.
// Faster than Truncate for a borrowed allocator, but the links leak
// unless the pool itself is discarded immediately afterwards.
func (h *Table[T]) Unlink() {
	for i := range h.slots {
		h.slots[i].Unlink()
	}
	h.elemCount = 0
}

// UnlinkDestroy has the combined effect of Unlink and Destroy in O(1).
// With a borrowed allocator the links leak into the lender's pool.
func (h *Table[T]) UnlinkDestroy() {
	h.slots = nil
	h.elemCount = 0
	h.alloc.dropLinks()
}

// Destroy releases the table: O(1) when the allocator is owned, O(N)
// when borrowed. The table must not be used afterwards.
func (h *Table[T]) Destroy() {
	h.alloc.destroyTable(h)
}
