// Package buf contains bounds arithmetic and fixed-width codec helpers
// shared by the container packages.
package buf

import "encoding/binary"

// U64 reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// PutU64 writes a little-endian uint64 into b. Panics when b is too short.
func PutU64(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

// U32 reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// PutU32 writes a little-endian uint32 into b. Panics when b is too short.
func PutU32(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}
