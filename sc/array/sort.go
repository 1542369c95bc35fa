package array

import "sort"

// sorter adapts an Array to sort.Interface for a given comparator.
type sorter struct {
	a      *Array
	compar CompareFunc
}

func (s *sorter) Len() int           { return s.a.elemCount }
func (s *sorter) Less(i, j int) bool { return s.compar(s.a.Index(i), s.a.Index(j)) < 0 }
func (s *sorter) Swap(i, j int)      { s.a.swap(i, j) }

// Sort sorts the array in ascending order with respect to compar.
// The sort is not stable.
func (a *Array) Sort(compar CompareFunc) {
	sort.Sort(&sorter{a: a, compar: compar})
}

// Uniq removes adjacent duplicate elements in O(N), keeping the first
// occurrence of each run and reducing the element count accordingly.
// The array must be sorted with respect to compar.
func (a *Array) Uniq(compar CompareFunc) {
	if a.elemCount < 2 {
		return
	}
	kept := 1
	for i := 1; i < a.elemCount; i++ {
		if compar(a.Index(kept-1), a.Index(i)) != 0 {
			if kept != i {
				copy(a.Index(kept), a.Index(i))
			}
			kept++
		}
	}
	a.Resize(kept)
}

// Bsearch performs a binary search for key on a sorted array. It returns
// the index of an element comparing equal to key, or -1 when no such
// element exists.
func (a *Array) Bsearch(key []byte, compar CompareFunc) int {
	i := sort.Search(a.elemCount, func(i int) bool {
		return compar(a.Index(i), key) >= 0
	})
	if i < a.elemCount && compar(a.Index(i), key) == 0 {
		return i
	}
	return -1
}
