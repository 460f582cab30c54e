package engine

import "testing"

func TestSmoothIterationCountDecreasesWithModulus(t *testing.T) {
	a := smoothIterationCount(10, 256.0)
	b := smoothIterationCount(10, 1024.0)
	if !(b < a) {
		t.Errorf("smoothIterationCount(10, 1024) = %v, want < smoothIterationCount(10, 256) = %v", b, a)
	}
}

func TestSmoothIterationCountIncreasesWithIndex(t *testing.T) {
	a := smoothIterationCount(5, 300.0)
	b := smoothIterationCount(10, 300.0)
	if !(b > a) {
		t.Errorf("smoothIterationCount(10, ...) = %v, want > smoothIterationCount(5, ...) = %v", b, a)
	}
}
