package engine

import "testing"

// TestComputeShallowCorners covers scenario S1: a wide shallow view where
// the corner escapes fast and the center is interior.
func TestComputeShallowCorners(t *testing.T) {
	out := make([]float64, 4*4)
	req := Request{
		XMin: "-2.0", XMax: "1.0",
		YMin: "-1.0", YMax: "1.0",
		Width: 4, Height: 4, MaxIter: 256,
	}
	if err := Compute(req, out); err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if v := out[0*4+0]; v <= 0 {
		t.Errorf("corner (0,0) = %v, want escaped (> 0)", v)
	}
	if v := out[2*4+2]; v != -256 {
		t.Errorf("center (2,2) = %v, want -256 (interior)", v)
	}
}

// TestComputeDeterminism covers property 1 and scenario S5: the same
// request run twice must produce bit-identical output.
func TestComputeDeterminism(t *testing.T) {
	req := Request{
		XMin: "-2.0", XMax: "1.0",
		YMin: "-1.0", YMax: "1.0",
		Width: 32, Height: 32, MaxIter: 256,
	}
	a := make([]float64, req.Width*req.Height)
	b := make([]float64, req.Width*req.Height)
	if err := Compute(req, a); err != nil {
		t.Fatalf("Compute (first): %v", err)
	}
	if err := Compute(req, b); err != nil {
		t.Fatalf("Compute (second): %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("out[%d] = %v, want %v (non-deterministic)", i, b[i], a[i])
		}
	}
}

// TestComputeCardioidAndBulb covers scenario S2.
func TestComputeCardioidAndBulb(t *testing.T) {
	out := make([]float64, 3*3)
	req := Request{
		XMin: "-2.0", XMax: "1.0",
		YMin: "-1.0", YMax: "2.0",
		Width: 3, Height: 3, MaxIter: 1000,
	}
	if err := Compute(req, out); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// Pixel (2,1) sits at c == (0, 0): inside the cardioid.
	if v := out[1*3+2]; v != -1000 {
		t.Errorf("c=(0,0) = %v, want -1000 (cardioid interior)", v)
	}
	// Pixel (1,1) sits at c == (-1, 0): inside the period-2 bulb.
	if v := out[1*3+1]; v != -1000 {
		t.Errorf("c=(-1,0) = %v, want -1000 (period-2 bulb interior)", v)
	}
}

// TestComputeOnePixel covers property 7: width = height = 1 is valid.
func TestComputeOnePixel(t *testing.T) {
	out := make([]float64, 1)
	req := Request{
		XMin: "-2.0", XMax: "-1.9",
		YMin: "-0.05", YMax: "0.05",
		Width: 1, Height: 1, MaxIter: 256,
	}
	if err := Compute(req, out); err != nil {
		t.Fatalf("Compute: %v", err)
	}
}

// TestComputeInvalidRegion covers the InvalidRegion error kind.
func TestComputeInvalidRegion(t *testing.T) {
	out := make([]float64, 4)
	req := Request{
		XMin: "1.0", XMax: "-1.0", // inverted
		YMin: "-1.0", YMax: "1.0",
		Width: 2, Height: 2, MaxIter: 16,
	}
	if err := Compute(req, out); err != ErrInvalidRegion {
		t.Errorf("Compute with inverted region: err = %v, want ErrInvalidRegion", err)
	}
}

// TestComputeInvalidSize covers the InvalidSize error kind.
func TestComputeInvalidSize(t *testing.T) {
	out := make([]float64, 4)
	req := Request{
		XMin: "-1.0", XMax: "1.0",
		YMin: "-1.0", YMax: "1.0",
		Width: 0, Height: 2, MaxIter: 16,
	}
	if err := Compute(req, out); err != ErrInvalidSize {
		t.Errorf("Compute with width=0: err = %v, want ErrInvalidSize", err)
	}
}

// TestChooseModeThresholds covers scenario S3.
func TestChooseModeThresholds(t *testing.T) {
	mode, err := ChooseMode("0.0", "1e-15", 1024)
	if err != nil {
		t.Fatalf("ChooseMode: %v", err)
	}
	if mode != ModeExtended {
		t.Errorf("ChooseMode(1e-15 width) = %v, want ModeExtended", mode)
	}
}

// TestChooseModePerturbation covers the precision-mode portion of
// scenario S4.
func TestChooseModePerturbation(t *testing.T) {
	// xmin/xmax differ only in their 20th decimal digit: w = 1e-20, well
	// below extendedWidthFloor (1e-17).
	xmin := "-0.74364388703715100001"
	xmax := "-0.74364388703715100000"
	mode, err := ChooseMode(xmin, xmax, 800)
	if err != nil {
		t.Fatalf("ChooseMode: %v", err)
	}
	if mode != ModePerturbation {
		t.Errorf("ChooseMode(w=1e-20) = %v, want ModePerturbation", mode)
	}
}

// TestComputePerturbationInteresting covers scenario S4's escape-fraction
// expectation: a well-known minibrot seahorse-valley region should be
// neither blank nor fully escaped.
func TestComputePerturbationInteresting(t *testing.T) {
	width, height := 64, 48
	out := make([]float64, width*height)
	req := Request{
		XMin: "-0.7436438870371510002",
		XMax: "-0.7436438870371510000",
		YMin: "0.1318259042053290000",
		YMax: "0.1318259042053290002",
		Width: width, Height: height, MaxIter: 4096,
	}
	mode, err := ChooseMode(req.XMin, req.XMax, width)
	if err != nil {
		t.Fatalf("ChooseMode: %v", err)
	}
	if mode != ModePerturbation {
		t.Fatalf("ChooseMode = %v, want ModePerturbation", mode)
	}
	if err := Compute(req, out); err != nil {
		t.Fatalf("Compute: %v", err)
	}

	escaped := 0
	for _, v := range out {
		if v >= 0 {
			escaped++
		}
	}
	frac := float64(escaped) / float64(len(out))
	if frac <= 0.0 || frac >= 1.0 {
		t.Errorf("escaped fraction = %v, want strictly between 0 and 1", frac)
	}
}
