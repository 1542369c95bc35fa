package array

import "hash/adler32"

// Checksum computes the Adler-32 checksum of the array data starting at
// element firstElem, which may range from 0 to Len() inclusive.
//
// Adler-32 is faster than CRC-32 and behaves well on all-zero data. The
// value depends only on element bytes, so two processes holding the same
// logical contents agree on it. This is a content-equality primitive,
// not a serialization format.
func (a *Array) Checksum(firstElem int) uint32 {
	if firstElem < 0 || firstElem > a.elemCount {
		panic("array: checksum start out of range")
	}
	return adler32.Checksum(a.store[firstElem*a.elemSize : a.elemCount*a.elemSize])
}
