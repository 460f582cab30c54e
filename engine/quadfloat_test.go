package engine

import "testing"

func TestNewQuadValidParse(t *testing.T) {
	v, ok := newQuad("-1.5")
	if !ok {
		t.Fatalf("newQuad(-1.5) failed to parse")
	}
	f, _ := v.Float64()
	if f != -1.5 {
		t.Errorf("newQuad(-1.5).Float64() = %v, want -1.5", f)
	}
}

func TestNewQuadInvalidParse(t *testing.T) {
	if _, ok := newQuad("not-a-number"); ok {
		t.Errorf("newQuad(\"not-a-number\") succeeded, want failure")
	}
}

func TestQuadArithmeticRoundTrip(t *testing.T) {
	a := quadConst(3.0)
	b := quadConst(4.0)
	sum := quadAdd(a, b)
	if f, _ := sum.Float64(); f != 7.0 {
		t.Errorf("quadAdd(3, 4) = %v, want 7", f)
	}
	prod := quadMul(a, b)
	if f, _ := prod.Float64(); f != 12.0 {
		t.Errorf("quadMul(3, 4) = %v, want 12", f)
	}
	quot := quadDiv(prod, b)
	if f, _ := quot.Float64(); f != 3.0 {
		t.Errorf("quadDiv(12, 4) = %v, want 3", f)
	}
}

func TestMandelbrotStepMatchesComplexArithmetic(t *testing.T) {
	z := newQuadComplex(quadConst(1.0), quadConst(1.0))
	c := newQuadComplex(quadConst(0.0), quadConst(0.0))
	next := mandelbrotStep(z, c)
	// (1+i)^2 = 1 - 1 + 2i = 2i
	re, im := next.toFloat64()
	if re != 0.0 || im != 2.0 {
		t.Errorf("mandelbrotStep((1+i), 0) = (%v, %v), want (0, 2)", re, im)
	}
}
