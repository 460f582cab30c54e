//go:build amd64 && goexperiment.simd

package engine

import "simd/archsimd"

// Built only with GOEXPERIMENT=simd: archsimd.X86 exposes real CPU feature
// detection, and perturb_amd64.go carries the matching build tag to
// supply the accelerated perturbation kernel this dispatch selects.
func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case archsimd.X86.AVX512():
		currentLevel = DispatchAVX512
		currentWidth = avx512LaneWidth * 8
		currentName = "avx512"
	case archsimd.X86.AVX2():
		currentLevel = DispatchAVX2
		currentWidth = defaultLaneWidth * 8
		currentName = "avx2"
	default:
		// AVX2 is the narrowest path perturb_amd64.go implements; below
		// that, fall back to the portable scalar kernel rather than
		// carry a third hand-written SIMD width.
		setScalarMode()
	}
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 8
	currentName = "scalar"
}
