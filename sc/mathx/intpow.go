// Package mathx provides small numeric helpers used around the
// container layer: exact integer powers and pointwise function algebra
// over scalar fields.
package mathx

// Intpow returns base**exp by square and multiply.
// A negative exponent is a fatal programming error.
func Intpow(base, exp int) int {
	if exp < 0 {
		panic("mathx: negative exponent")
	}
	result := 1
	for exp != 0 {
		if exp&1 != 0 {
			result *= base
		}
		exp >>= 1
		base *= base
	}
	return result
}

// Intpow64 is Intpow over int64 bases.
func Intpow64(base int64, exp int) int64 {
	if exp < 0 {
		panic("mathx: negative exponent")
	}
	result := int64(1)
	for exp != 0 {
		if exp&1 != 0 {
			result *= base
		}
		exp >>= 1
		base *= base
	}
	return result
}

// Intpow64u is Intpow over uint64 bases.
func Intpow64u(base uint64, exp int) uint64 {
	if exp < 0 {
		panic("mathx: negative exponent")
	}
	result := uint64(1)
	for exp != 0 {
		if exp&1 != 0 {
			result *= base
		}
		exp >>= 1
		base *= base
	}
	return result
}

// Intpowf returns base**exp for float64 bases and integer exponents,
// using the same square-and-multiply recurrence as the integer forms
// so results agree bit for bit with repeated multiplication.
func Intpowf(base float64, exp int) float64 {
	if exp < 0 {
		panic("mathx: negative exponent")
	}
	result := 1.
	for exp != 0 {
		if exp&1 != 0 {
			result *= base
		}
		exp >>= 1
		base *= base
	}
	return result
}
