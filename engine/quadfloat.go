package engine

import "math/big"

// newQuad parses a decimal string at quadPrecisionBits of working
// precision (spec §6: "decimal numeric strings with up to ~36
// significant digits, quad-precision parseable"). It returns ok == false
// on any parse failure, including partial parses and non-finite results.
func newQuad(s string) (*big.Float, bool) {
	f, ok := new(big.Float).SetPrec(quadPrecisionBits).SetString(s)
	if !ok || f.IsInf() {
		return nil, false
	}
	return f, true
}

func quadConst(v float64) *big.Float {
	return new(big.Float).SetPrec(quadPrecisionBits).SetFloat64(v)
}

func quadAdd(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(quadPrecisionBits).Add(a, b)
}

func quadSub(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(quadPrecisionBits).Sub(a, b)
}

func quadMul(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(quadPrecisionBits).Mul(a, b)
}

func quadDiv(a, b *big.Float) *big.Float {
	return new(big.Float).SetPrec(quadPrecisionBits).Quo(a, b)
}

// quadComplex is a complex number with quad-precision real and imaginary
// parts, the representation the reference orbit is iterated in (spec
// §4.3).
type quadComplex struct {
	re, im *big.Float
}

func newQuadComplex(re, im *big.Float) quadComplex {
	return quadComplex{re: re, im: im}
}

func quadComplexZero() quadComplex {
	return quadComplex{re: quadConst(0), im: quadConst(0)}
}

// toFloat64 downcasts to the parallel float64 orbit array the
// perturbation kernel iterates against.
func (z quadComplex) toFloat64() (re, im float64) {
	re64, _ := z.re.Float64()
	im64, _ := z.im.Float64()
	return re64, im64
}

// normSquared returns |z|^2 in quad precision, used for the reference
// orbit's own escape test (spec §4.3: "Stop when |X_n|^2 > 4").
func (z quadComplex) normSquared() *big.Float {
	return quadAdd(quadMul(z.re, z.re), quadMul(z.im, z.im))
}

// mandelbrotStep computes z*z + c in quad precision.
func mandelbrotStep(z, c quadComplex) quadComplex {
	// (zr + i*zi)^2 = zr^2 - zi^2 + i*2*zr*zi
	zr2 := quadMul(z.re, z.re)
	zi2 := quadMul(z.im, z.im)
	twoZrZi := quadMul(quadConst(2), quadMul(z.re, z.im))
	return quadComplex{
		re: quadAdd(quadSub(zr2, zi2), c.re),
		im: quadAdd(twoZrZi, c.im),
	}
}

