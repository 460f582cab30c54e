package engine

import "math"

// smoothIterationCount implements the continuous replacement for the
// integer escape index (spec §3, §GLOSSARY):
//
//	mu = i + 1 - log(log(modulus)) / log(2)
//
// where modulus is |Z|^2 at the step escape was detected. Unlike the
// original C source, which hard-codes log(2) as a literal
// (0.69314718056, spec §9 item 4), this uses math.Ln2 so the constant
// carries full float64 precision.
func smoothIterationCount(escapeIndex int, modulusSquared float64) float64 {
	return float64(escapeIndex) + 1.0 - math.Log(math.Log(modulusSquared))/math.Ln2
}
