//go:build !amd64

package engine

// Non-amd64 architectures (arm64 included) run the portable scalar
// perturbation kernel. A NEON-accelerated path would follow the same
// build-tag pattern as perturb_amd64.go if one is ever written; until
// then, perturb_base.go's single-lane loop is both the semantics and the
// implementation everywhere but amd64+goexperiment.simd.
func init() {
	currentLevel = DispatchScalar
	currentWidth = 8
	currentName = "scalar"
}
