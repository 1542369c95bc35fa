// Package array provides a resizable contiguous array of fixed-size
// elements. It is the storage foundation for the other sc containers.
//
// # Overview
//
// An Array stores elements as opaque byte blocks of a fixed size chosen
// at initialization. Elements are accessed by index; their addresses may
// change across any resizing call. Beyond plain storage the package
// offers:
//
//   - Resize/Push/Pop with amortized O(1) single-element growth
//   - Sort with an arbitrary three-way comparator (unstable)
//   - Uniq, removing adjacent duplicates from a sorted array in O(N)
//   - Bsearch, binary search on a sorted array in O(log N)
//   - An in-place ascending binary heap (PqueueAdd/PqueuePop)
//   - An Adler-32 checksum over the element bytes
//
// Prefer Sort and Bsearch over the priority queue when either works;
// they are faster.
//
// # Failure Model
//
// Precondition violations (out-of-range index, pop from an empty array,
// byte-size overflow) are programming errors and panic. Absence of a
// key in Bsearch is a normal outcome reported through the -1 sentinel.
//
// # Thread Safety
//
// Array values are not safe for concurrent use. Callers must serialize
// access externally.
package array
