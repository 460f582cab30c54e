package engine

import "testing"

func TestInsideCardioid(t *testing.T) {
	cases := []struct {
		cr, ci float64
		want   bool
	}{
		{0.0, 0.0, true},
		{-0.5, 0.0, true},  // well inside the main lobe
		{1.0, 0.0, false},  // escapes immediately
		{-2.0, 0.0, false}, // far outside
	}
	for _, c := range cases {
		if got := insideCardioid(c.cr, c.ci); got != c.want {
			t.Errorf("insideCardioid(%v, %v) = %v, want %v", c.cr, c.ci, got, c.want)
		}
	}
}

func TestInsidePeriod2Bulb(t *testing.T) {
	if !insidePeriod2Bulb(-1.0, 0.0) {
		t.Errorf("insidePeriod2Bulb(-1.0, 0.0) = false, want true")
	}
	if insidePeriod2Bulb(1.0, 0.0) {
		t.Errorf("insidePeriod2Bulb(1.0, 0.0) = true, want false")
	}
}
