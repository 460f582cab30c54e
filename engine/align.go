package engine

import "unsafe"

// alignedFloat64s returns a float64 slice of length n whose first element
// starts on a refAlignment-byte boundary, satisfying spec §5's memory
// discipline requirement ("allocated with cache-line alignment ... to
// permit aligned SIMD loads"). The backing array is over-allocated and
// sliced at the first aligned offset; there is nothing to free explicitly
// since Go is garbage collected, but callers still follow the
// acquire/release shape spec §5 asks for by scoping these slices to a
// single compute call (see reference.go).
func alignedFloat64s(n int) []float64 {
	const elemSize = int(unsafe.Sizeof(float64(0)))
	pad := refAlignment / elemSize
	buf := make([]float64, n+pad)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	offset := (refAlignment - int(addr%uintptr(refAlignment))) % refAlignment
	start := offset / elemSize
	return buf[start : start+n : start+n]
}
