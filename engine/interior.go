package engine

// insideCardioid reports whether (cr, ci) lies in the main cardioid, the
// largest lobe of the Mandelbrot set, via the closed-form test derived
// from the cardioid's polar equation. Applied in the double and extended
// kernels; the perturbation kernel (perturb_base.go, perturb_amd64.go)
// does not call it.
func insideCardioid(cr, ci float64) bool {
	q := (cr-0.25)*(cr-0.25) + ci*ci
	return q*(q+(cr-0.25)) < 0.25*ci*ci
}

// insidePeriod2Bulb reports whether (cr, ci) lies in the period-2 bulb,
// the circular lobe to the left of the cardioid.
//
// The original source only ever evaluated this in the float64 kernel.
// Here the double and extended kernels call both tests; the perturbation
// kernel calls neither, so its interior pixels are found only by
// iterating to the reference orbit's end.
func insidePeriod2Bulb(cr, ci float64) bool {
	dr := cr + 1.0
	return dr*dr+ci*ci < 0.0625
}
