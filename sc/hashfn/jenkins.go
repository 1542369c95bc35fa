// Package hashfn provides stateless bit-mixing primitives for building
// hash functions, after lookup3.c by Bob Jenkins (May 2006, public
// domain). They are pure functions over fixed-width integers, suitable
// as building blocks for hashtab.HashFunc and hasharray.HashFunc
// implementations.
package hashfn

// Rot rotates x left by k bits, 0 < k < 32.
func Rot(x uint32, k uint) uint32 {
	return x<<k | x>>(32-k)
}

// Mix mixes three 32-bit values reversibly.
func Mix(a, b, c uint32) (uint32, uint32, uint32) {
	a -= c
	a ^= Rot(c, 4)
	c += b
	b -= a
	b ^= Rot(a, 6)
	a += c
	c -= b
	c ^= Rot(b, 8)
	b += a
	a -= c
	a ^= Rot(c, 16)
	c += b
	b -= a
	b ^= Rot(a, 19)
	a += c
	c -= b
	c ^= Rot(b, 4)
	b += a
	return a, b, c
}

// Final mixes three 32-bit values into c irreversibly. Use it on the
// last batch of input words; the returned c is the hash.
func Final(a, b, c uint32) (uint32, uint32, uint32) {
	c ^= b
	c -= Rot(b, 14)
	a ^= c
	a -= Rot(c, 11)
	b ^= a
	b -= Rot(a, 25)
	c ^= b
	c -= Rot(b, 16)
	a ^= c
	a -= Rot(c, 4)
	b ^= a
	b -= Rot(a, 14)
	c ^= b
	c -= Rot(b, 24)
	return a, b, c
}

// HashWords hashes a slice of 32-bit words with the given seed,
// three words per Mix round and a Final pass over the remainder.
func HashWords(k []uint32, seed uint32) uint32 {
	a := 0xdeadbeef + uint32(len(k))<<2 + seed
	b, c := a, a

	for len(k) > 3 {
		a += k[0]
		b += k[1]
		c += k[2]
		a, b, c = Mix(a, b, c)
		k = k[3:]
	}

	switch len(k) {
	case 3:
		c += k[2]
		fallthrough
	case 2:
		b += k[1]
		fallthrough
	case 1:
		a += k[0]
		_, _, c = Final(a, b, c)
	case 0:
		// c holds the seeded initializer
	}
	return c
}
