package array

// The priority queue is a binary min-heap stored in place: the element at
// index i has its children at 2i+1 and 2i+2, and no child sorts before
// its parent.

// PqueueAdd treats the last element as a fresh heap insertion.
//
// It assumes elements [0, Len()-2] already form a valid heap, propagates
// the last element upward by swapping with its parent as necessary, and
// returns the number of swaps. If the return value is zero for every
// element pushed into an array, the input sequence was already weakly
// ascending and the array is sorted unchanged.
func (a *Array) PqueueAdd(compar CompareFunc) int {
	if a.elemCount == 0 {
		panic("array: pqueue add on empty array")
	}
	swaps := 0
	child := a.elemCount - 1
	for child > 0 {
		parent := (child - 1) / 2
		if compar(a.Index(parent), a.Index(child)) <= 0 {
			break
		}
		a.swap(parent, child)
		swaps++
		child = parent
	}
	return swaps
}

// PqueuePop removes the smallest element from a valid heap.
//
// The removed element is written to result, which must be at least
// ElemSize bytes. The last element replaces the root and is sifted
// downward, the array shrinks by one, and the number of swaps is
// returned. Popping an empty array is a fatal programming error.
func (a *Array) PqueuePop(result []byte, compar CompareFunc) int {
	if a.elemCount == 0 {
		panic("array: pqueue pop from empty array")
	}
	if len(result) < a.elemSize {
		panic("array: pqueue result too small")
	}

	n := a.elemCount - 1
	copy(result, a.Index(0))
	if n > 0 {
		copy(a.Index(0), a.Index(n))
	}
	a.Resize(n)

	swaps := 0
	parent := 0
	for {
		child := 2*parent + 1
		if child >= n {
			break
		}
		if child+1 < n && compar(a.Index(child+1), a.Index(child)) < 0 {
			child++
		}
		if compar(a.Index(parent), a.Index(child)) <= 0 {
			break
		}
		a.swap(parent, child)
		swaps++
		parent = child
	}
	return swaps
}
