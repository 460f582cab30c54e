package engine

import "testing"

func TestComputeLegacyMatchesCompute(t *testing.T) {
	width, height, maxIter := 16, 16, 256
	legacyOut := make([]float64, width*height)
	if err := ComputeLegacy(-2.0, 1.0, -1.0, 1.0, width, height, maxIter, legacyOut); err != nil {
		t.Fatalf("ComputeLegacy: %v", err)
	}

	modernOut := make([]float64, width*height)
	req := Request{
		XMin: "-2.0", XMax: "1.0",
		YMin: "-1.0", YMax: "1.0",
		Width: width, Height: height, MaxIter: maxIter,
	}
	if err := Compute(req, modernOut); err != nil {
		t.Fatalf("Compute: %v", err)
	}

	for i := range legacyOut {
		if legacyOut[i] != modernOut[i] {
			t.Errorf("out[%d]: legacy = %v, Compute (double mode) = %v", i, legacyOut[i], modernOut[i])
		}
	}
}

func TestComputeLegacyInvalidSize(t *testing.T) {
	out := make([]float64, 4)
	if err := ComputeLegacy(-2.0, 1.0, -1.0, 1.0, 0, 2, 16, out); err != ErrInvalidSize {
		t.Errorf("ComputeLegacy with width=0: err = %v, want ErrInvalidSize", err)
	}
}

func TestComputeLegacyInvalidRegion(t *testing.T) {
	out := make([]float64, 4)
	if err := ComputeLegacy(1.0, -1.0, -1.0, 1.0, 2, 2, 16, out); err != ErrInvalidRegion {
		t.Errorf("ComputeLegacy with inverted region: err = %v, want ErrInvalidRegion", err)
	}
}
