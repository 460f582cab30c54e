//go:build !(amd64 && goexperiment.simd)

package engine

// perturbRow is always the portable scalar kernel on builds without
// GOEXPERIMENT=simd (no archsimd import is available to accelerate it).
func perturbRow(orbit *referenceOrbit, la linearApprox, py, width, height int, dx, dy float64, maxIter int, out []float64) {
	perturbRowScalar(orbit, la, py, width, height, dx, dy, maxIter, out, 0, width)
}
