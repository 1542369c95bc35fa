package mathx

import (
	"fmt"
	"math"
)

// Function1 is a scalar function of one variable with opaque user data.
type Function1 func(x float64, data any) float64

// Invert1 solves f(x) = y for x on the bracket [xLow, xHigh] by
// regula falsi, assuming f is monotone on the bracket. rtol is the
// relative tolerance on the function value. A nil f is treated as the
// identity. Failure to converge within the iteration budget is fatal.
func Invert1(f Function1, data any, xLow, xHigh, y, rtol float64) float64 {
	const kMax = 100

	if xLow >= xHigh || rtol <= 0 {
		panic("mathx: invalid bracket or tolerance")
	}
	if f == nil {
		return y
	}

	yLow := f(xLow, data)
	yHigh := f(xHigh, data)
	yTol := rtol * math.Abs(yHigh-yLow)
	sign := 1.
	if yLow > yHigh {
		sign = -1.
	}
	if (sign > 0 && (y < yLow || y > yHigh)) || (sign < 0 && (y < yHigh || y > yLow)) {
		panic("mathx: target value outside bracket")
	}

	for k := 0; k < kMax; k++ {
		x := xLow + (xHigh-xLow)*(y-yLow)/(yHigh-yLow)
		if x <= xLow {
			return xLow
		}
		if x >= xHigh {
			return xHigh
		}

		fy := f(x, data)
		switch {
		case sign*(fy-y) < -yTol:
			xLow, yLow = x, fy
		case sign*(fy-y) > yTol:
			xHigh, yHigh = x, fy
		default:
			return x
		}
	}
	panic(fmt.Sprintf("mathx: Invert1 did not converge after %d iterations", kMax))
}

// Function3 is a scalar field over three coordinates with opaque user
// data.
type Function3 func(x, y, z float64, data any) float64

// Function3Meta combines up to three fields for the Sum3, Product3 and
// Tensor3 combinators. When F2 is nil, Sum3 and Product3 substitute the
// Parameter2 constant.
type Function3Meta struct {
	F1, F2, F3 Function3
	Parameter2 float64
	Data       any
}

// Constant fields.
func Zero3(_, _, _ float64, _ any) float64 { return 0. }
func One3(_, _, _ float64, _ any) float64  { return 1. }

// Constant3 returns the *float64 pointed to by data.
func Constant3(_, _, _ float64, data any) float64 { return *data.(*float64) }

// Coordinate fields.
func X3(x, _, _ float64, _ any) float64 { return x }
func Y3(_, y, _ float64, _ any) float64 { return y }
func Z3(_, _, z float64, _ any) float64 { return z }

// Sum3 evaluates meta.F1 + meta.F2 (or Parameter2) pointwise. data must
// be a *Function3Meta.
func Sum3(x, y, z float64, data any) float64 {
	meta := data.(*Function3Meta)
	sum := meta.F1(x, y, z, meta.Data)
	if meta.F2 != nil {
		return sum + meta.F2(x, y, z, meta.Data)
	}
	return sum + meta.Parameter2
}

// Product3 evaluates meta.F1 * meta.F2 (or Parameter2) pointwise. data
// must be a *Function3Meta.
func Product3(x, y, z float64, data any) float64 {
	meta := data.(*Function3Meta)
	prod := meta.F1(x, y, z, meta.Data)
	if meta.F2 != nil {
		return prod * meta.F2(x, y, z, meta.Data)
	}
	return prod * meta.Parameter2
}

// Tensor3 evaluates meta.F1 * meta.F2 * meta.F3 pointwise. data must be
// a *Function3Meta with all three fields set.
func Tensor3(x, y, z float64, data any) float64 {
	meta := data.(*Function3Meta)
	return meta.F1(x, y, z, meta.Data) *
		meta.F2(x, y, z, meta.Data) *
		meta.F3(x, y, z, meta.Data)
}
