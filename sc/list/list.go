// Package list provides a singly linked list whose links are allocated
// from a mempool.Pool, either owned by the list or borrowed from the
// caller.
package list

import "github.com/sctools/sckit/sc/mempool"

// Link is one node of a list. Links are pool-allocated, so their
// addresses are stable while they are live; callers may hold a *Link as
// a position for InsertAfter and Remove.
type Link[T any] struct {
	Value T
	Next  *Link[T]
}

// nodeAllocator is the ownership tag for the link pool. Each variant
// implements destruction for its own case, so List.Destroy never
// branches on an ownership flag.
type nodeAllocator[T any] interface {
	pool() *mempool.Pool[Link[T]]
	dispose(l *List[T])
}

// ownedAllocator is a pool created by and dying with its list.
type ownedAllocator[T any] struct{ p *mempool.Pool[Link[T]] }

func (a ownedAllocator[T]) pool() *mempool.Pool[Link[T]] { return a.p }

func (a ownedAllocator[T]) dispose(l *List[T]) {
	// The pool dies with the list; dropping the slabs releases every
	// link at once in O(1).
	l.Unlink()
	a.p.Truncate()
}

// borrowedAllocator is an externally supplied pool that outlives the
// list. The lender must not truncate it while this list holds links.
type borrowedAllocator[T any] struct{ p *mempool.Pool[Link[T]] }

func (a borrowedAllocator[T]) pool() *mempool.Pool[Link[T]] { return a.p }

func (a borrowedAllocator[T]) dispose(l *List[T]) {
	// Every link must go back to the lender individually, O(N).
	l.Reset()
}

// List is a singly linked list with O(1) append and prepend.
//
// The zero value is not ready for use; call Init with a shared pool, or
// use New for a list owning its own pool. Lists are not safe for
// concurrent use.
type List[T any] struct {
	count       int
	first, last *Link[T]
	alloc       nodeAllocator[T]
}

// New creates an empty list backed by its own link pool.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.alloc = ownedAllocator[T]{p: mempool.New[Link[T]]()}
	return l
}

// NewWithAllocator creates an empty list backed by a borrowed link
// pool. See Init for the pool's obligations.
func NewWithAllocator[T any](allocator *mempool.Pool[Link[T]]) *List[T] {
	l := &List[T]{}
	l.Init(allocator)
	return l
}

// Init initializes an already allocated list structure with a borrowed
// link pool. The pool must outlive the list and may be shared between
// several lists. Init followed by any operations followed by Reset is
// memory neutral.
func (l *List[T]) Init(allocator *mempool.Pool[Link[T]]) {
	if allocator == nil {
		panic("list: nil allocator")
	}
	l.count = 0
	l.first = nil
	l.last = nil
	l.alloc = borrowedAllocator[T]{p: allocator}
}

// Allocator returns the link pool backing this list.
func (l *List[T]) Allocator() *mempool.Pool[Link[T]] { return l.alloc.pool() }

// Len returns the number of elements.
func (l *List[T]) Len() int { return l.count }

// First returns the first link, or nil when the list is empty.
func (l *List[T]) First() *Link[T] { return l.first }

// Last returns the last link, or nil when the list is empty.
func (l *List[T]) Last() *Link[T] { return l.last }

func (l *List[T]) newLink(v T) *Link[T] {
	lk := l.alloc.pool().Alloc()
	lk.Value = v
	lk.Next = nil
	return lk
}

func (l *List[T]) freeLink(lk *Link[T]) {
	var zero Link[T]
	*lk = zero // drop the value reference before recycling
	l.alloc.pool().Free(lk)
}

// Append adds v at the end of the list and returns its link.
func (l *List[T]) Append(v T) *Link[T] {
	lk := l.newLink(v)
	if l.last != nil {
		l.last.Next = lk
	} else {
		l.first = lk
	}
	l.last = lk
	l.count++
	return lk
}

// AppendLink adds an already allocated link at the end of the list,
// overwriting its Next pointer. The link must come from this list's
// pool and must not be a member of any chain. This is the splicing
// primitive for callers that redistribute links between lists, such as
// a hash table rehash; no pool allocation takes place.
func (l *List[T]) AppendLink(lk *Link[T]) {
	lk.Next = nil
	if l.last != nil {
		l.last.Next = lk
	} else {
		l.first = lk
	}
	l.last = lk
	l.count++
}

// Prepend adds v at the front of the list and returns its link.
func (l *List[T]) Prepend(v T) *Link[T] {
	lk := l.newLink(v)
	lk.Next = l.first
	l.first = lk
	if l.last == nil {
		l.last = lk
	}
	l.count++
	return lk
}

// InsertAfter adds v after the link pred, which must belong to this
// list, and returns the new link.
func (l *List[T]) InsertAfter(pred *Link[T], v T) *Link[T] {
	if pred == nil {
		panic("list: nil predecessor")
	}
	lk := l.newLink(v)
	lk.Next = pred.Next
	pred.Next = lk
	if l.last == pred {
		l.last = lk
	}
	l.count++
	return lk
}

// Remove detaches the element after pred and returns its value. A nil
// pred removes the first element. Removing past the end of the list is
// a fatal programming error.
func (l *List[T]) Remove(pred *Link[T]) T {
	if pred == nil {
		return l.Pop()
	}
	lk := pred.Next
	if lk == nil {
		panic("list: remove past end of list")
	}
	pred.Next = lk.Next
	if l.last == lk {
		l.last = pred
	}
	v := lk.Value
	l.freeLink(lk)
	l.count--
	return v
}

// Pop removes the first element and returns its value. Popping an empty
// list is a fatal programming error.
func (l *List[T]) Pop() T {
	lk := l.first
	if lk == nil {
		panic("list: pop from empty list")
	}
	l.first = lk.Next
	if l.last == lk {
		l.last = nil
	}
	v := lk.Value
	l.freeLink(lk)
	l.count--
	return v
}

// Reset removes all elements in O(N), returning every link to the pool.
func (l *List[T]) Reset() {
	lk := l.first
	for lk != nil {
		next := lk.Next
		l.freeLink(lk)
		lk = next
	}
	l.first = nil
	l.last = nil
	l.count = 0
}

// Unlink detaches all elements in O(1) without returning links to the
// pool. The links leak unless the pool itself is discarded immediately
// afterwards; this is the fast path for a list that is about to be
// destroyed together with its allocator.
func (l *List[T]) Unlink() {
	l.first = nil
	l.last = nil
	l.count = 0
}

// Destroy releases the list and, when the pool is owned, the pool with
// it. With an owned pool this runs in O(1); with a borrowed pool every
// link is walked and returned in O(N). The list must not be used
// afterwards.
func (l *List[T]) Destroy() {
	l.alloc.dispose(l)
}
