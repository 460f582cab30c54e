package engine

import "math/big"

// referenceOrbit holds the quad-precision center-point orbit and its
// float64 downcast, aligned in parallel (spec §3 "Reference Orbit").
// refIter is the first step at which |X_n|^2 > 4, or maxIter if the
// center point never escapes within the iteration budget.
type referenceOrbit struct {
	quad    []quadComplex
	re, im  []float64
	refIter int
}

// buildReferenceOrbit iterates X_{n+1} = X_n^2 + c0 in quad precision from
// X_0 = 0, recording both the quad value and its float64 cast at every
// step (spec §4.3). Arrays are sized maxIter+1 and aligned to
// refAlignment bytes so the perturbation kernel can use aligned SIMD
// loads against refOrbit.re/im.
func buildReferenceOrbit(c0 quadComplex, maxIter int) *referenceOrbit {
	orbit := &referenceOrbit{
		quad:    make([]quadComplex, maxIter+1),
		re:      alignedFloat64s(maxIter + 1),
		im:      alignedFloat64s(maxIter + 1),
		refIter: maxIter,
	}

	z := quadComplexZero()
	four := big.NewFloat(4)
	for n := 0; n <= maxIter; n++ {
		orbit.quad[n] = z
		orbit.re[n], orbit.im[n] = z.toFloat64()

		if n == maxIter {
			break
		}
		if z.normSquared().Cmp(four) > 0 {
			orbit.refIter = n
			break
		}
		z = mandelbrotStep(z, c0)
	}

	return orbit
}
