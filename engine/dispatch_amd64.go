//go:build amd64 && !goexperiment.simd

package engine

// Fallback for when GOEXPERIMENT=simd was not set at build time. Without
// it there is no archsimd import available to probe hardware features
// with, so perturb_amd64.go is not compiled either (it carries the same
// build tag) and every perturbation call runs perturb_base.go's scalar
// path — hence a single lane regardless of what the CPU can actually do.
func init() {
	setScalarMode()
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 8
	currentName = "scalar"
}
