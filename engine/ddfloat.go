package engine

import (
	"math"
	"math/big"
)

// ddFloat is a double-double: an unevaluated sum hi+lo of two float64s,
// carrying roughly 106 bits of mantissa (Dekker/Knuth-style
// error-compensated arithmetic). It stands in for the "80-bit extended"
// kernel (DESIGN.md Open Question 1): Go has no
// native extended-precision float and C's long double varies in width by
// platform, so ddFloat is used instead — it comfortably exceeds 80 bits
// and behaves identically everywhere the package builds.
type ddFloat struct {
	hi, lo float64
}

func ddFromFloat64(x float64) ddFloat { return ddFloat{hi: x} }

// ddFromBig downcasts a quad-precision value to a ddFloat without losing
// the extra digits a plain Float64() truncation would: hi is the
// nearest float64, and lo recovers the next ~53 bits from the exact
// (big.Float-precision) residual v-hi. This mirrors
// original_source/src/mandelbrot_compute.c's cast of Real128 to Real80
// (long double) at the extended-precision boundary, rather than routing
// through a plain double first.
func ddFromBig(v *big.Float) ddFloat {
	hi, _ := v.Float64()
	residual := new(big.Float).SetPrec(quadPrecisionBits).Sub(v, big.NewFloat(hi))
	lo, _ := residual.Float64()
	return ddFloat{hi: hi, lo: lo}
}

func (a ddFloat) float64() float64 { return a.hi + a.lo }

// twoSum computes hi+lo == a+b exactly (Knuth's algorithm), assuming
// neither a nor b is so large that a+b overflows.
func twoSum(a, b float64) (hi, lo float64) {
	hi = a + b
	v := hi - a
	lo = (a - (hi - v)) + (b - v)
	return hi, lo
}

// twoProd computes hi+lo == a*b exactly using the FMA-based form of
// Dekker's algorithm.
func twoProd(a, b float64) (hi, lo float64) {
	hi = a * b
	lo = math.FMA(a, b, -hi)
	return hi, lo
}

func ddAdd(a, b ddFloat) ddFloat {
	hi, lo := twoSum(a.hi, b.hi)
	lo += a.lo + b.lo
	hi, lo = twoSum(hi, lo)
	return ddFloat{hi: hi, lo: lo}
}

func ddSub(a, b ddFloat) ddFloat {
	return ddAdd(a, ddFloat{hi: -b.hi, lo: -b.lo})
}

func ddMul(a, b ddFloat) ddFloat {
	hi, lo := twoProd(a.hi, b.hi)
	lo += a.hi*b.lo + a.lo*b.hi
	hi, lo = twoSum(hi, lo)
	return ddFloat{hi: hi, lo: lo}
}
