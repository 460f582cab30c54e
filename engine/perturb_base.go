package engine

// perturbRowScalar computes one output row of the perturbation kernel,
// one pixel at a time (spec §4.4). It is the semantics every build must
// agree with: the single-lane path used directly when no accelerated
// dispatch is compiled in, and the scalar tail for `width mod LaneWidth()`
// leftover pixels when one is.
func perturbRowScalar(orbit *referenceOrbit, la linearApprox, py, width, height int, dx, dy float64, maxIter int, out []float64, pxStart, pxEnd int) {
	dci := (float64(py) - float64(height)/2.0) * dy

	for px := pxStart; px < pxEnd; px++ {
		dcr := (float64(px) - float64(width)/2.0) * dx

		var dzr, dzi float64
		if la.skipIter > 0 {
			dzr = la.br*dcr - la.bi*dci
			dzi = la.br*dci + la.bi*dcr
		}
		lane := newPerturbLane(dzr, dzi, la.skipIter)

		for n := la.skipIter; n < orbit.refIter; n++ {
			lane.step(n, orbit.re[n], orbit.im[n], dcr, dci)
			if !lane.active {
				break
			}
		}

		out[py*width+px] = pixelValue(lane, orbit.refIter, maxIter)
	}
}

// pixelValue converts a lane's terminal state into the output encoding
// from spec §3: a positive smooth value if the lane escaped before
// refIter, or the sentinel -maxIter otherwise.
func pixelValue(lane perturbLaneState, refIter, maxIter int) float64 {
	if !lane.active && lane.iter < refIter {
		return smoothIterationCount(lane.iter, lane.modulus)
	}
	return -float64(maxIter)
}
