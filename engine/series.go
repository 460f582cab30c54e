package engine

import "math"

// linearApprox holds the scalar series-approximation coefficient B and
// the iteration count every pixel may skip to (spec §3 "Linear
// Coefficient State", §4.3).
type linearApprox struct {
	br, bi   float64
	skipIter int
}

// buildLinearApprox computes B_{n+1} = 2*X_n*B_n + 1 in float64 starting
// from B_0 = 0, stopping the first time |B_n|*rView would cross
// approxThreshold (spec §4.3). rView is the half-diagonal of the view
// delta:
//
//	rView = sqrt((width*dx/2)^2 + (height*dy/2)^2)
func buildLinearApprox(orbit *referenceOrbit, rView float64) linearApprox {
	var br, bi float64
	skipIter := 0

	for n := 0; n < orbit.refIter; n++ {
		mag := math.Hypot(br, bi)
		if mag*rView >= approxThreshold {
			break
		}
		skipIter = n

		zr, zi := orbit.re[n], orbit.im[n]
		// B_{n+1} = 2*(zr+i*zi)*(br+i*bi) + 1
		nextBr := 2.0*(zr*br-zi*bi) + 1.0
		nextBi := 2.0 * (zr*bi + zi*br)
		br, bi = nextBr, nextBi
	}

	if skipIter > orbit.refIter {
		skipIter = orbit.refIter
	}

	return linearApprox{br: br, bi: bi, skipIter: skipIter}
}

// viewRadius computes rView for buildLinearApprox from the pixel grid
// dimensions and per-pixel deltas.
func viewRadius(width, height int, dx, dy float64) float64 {
	halfW := float64(width) * dx / 2.0
	halfH := float64(height) * dy / 2.0
	return math.Hypot(halfW, halfH)
}
