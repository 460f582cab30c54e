//go:build amd64 && goexperiment.simd

package engine

import "simd/archsimd"

// perturbRowAVX2 processes 4 pixels per SIMD instruction (spec §4.4
// "process W pixels per SIMD instruction where W is the native double-lane
// width"), unrolled by unrollFactor between escape checks, with masked
// lane retirement. It is a direct port of
// original_source/src/mandelbrot_compute.c's AVX2 block from intrinsics
// to archsimd.
func perturbRowAVX2(orbit *referenceOrbit, la linearApprox, py, width, height int, dx, dy float64, maxIter int, out []float64) {
	const lanes = 4
	dci := (float64(py) - float64(height)/2.0) * dy
	vdci := archsimd.BroadcastFloat64x4(dci)
	vfour := archsimd.BroadcastFloat64x4(perturbationEscapeRadiusSquared)

	px := 0
	for ; px+lanes <= width; px += lanes {
		var dcrArr [lanes]float64
		for k := 0; k < lanes; k++ {
			dcrArr[k] = (float64(px+k) - float64(width)/2.0) * dx
		}
		vdcr := archsimd.LoadFloat64x4Slice(dcrArr[:])

		var vdzr, vdzi archsimd.Float64x4
		if la.skipIter > 0 {
			vbr := archsimd.BroadcastFloat64x4(la.br)
			vbi := archsimd.BroadcastFloat64x4(la.bi)
			vdzr = vbr.Mul(vdcr).Sub(vbi.Mul(vdci))
			vdzi = vbr.Mul(vdci).Add(vbi.Mul(vdcr))
		}

		iters := [lanes]int64{int64(la.skipIter), int64(la.skipIter), int64(la.skipIter), int64(la.skipIter)}
		var modulus [lanes]float64
		active := [lanes]bool{true, true, true, true}

		n := la.skipIter
		for n < orbit.refIter {
			block := n + unrollFactor <= orbit.refIter
			if !block {
				break
			}

			for u := 0; u < unrollFactor; u++ {
				vX := archsimd.BroadcastFloat64x4(orbit.re[n+u])
				vY := archsimd.BroadcastFloat64x4(orbit.im[n+u])
				vdzr, vdzi = perturbStepAVX2(vdzr, vdzi, vX, vY, vdcr, vdci)
			}

			checkIdx := n + unrollFactor
			if checkIdx >= orbit.refIter {
				checkIdx = orbit.refIter - 1
			}
			vX := archsimd.BroadcastFloat64x4(orbit.re[checkIdx])
			vY := archsimd.BroadcastFloat64x4(orbit.im[checkIdx])
			zr := vX.Add(vdzr)
			zi := vY.Add(vdzi)
			mod := zr.Mul(zr).Add(zi.Mul(zi))
			escaped := mod.Greater(vfour)

			var modArr [lanes]float64
			mod.StoreSlice(modArr[:])
			var escArr [lanes]bool
			storeMaskBool4(escaped, &escArr)

			for k := 0; k < lanes; k++ {
				if active[k] && escArr[k] {
					active[k] = false
					iters[k] = int64(n + unrollFactor)
					modulus[k] = modArr[k]
				}
			}
			if allActiveRetired(active) {
				n = orbit.refIter
				break
			}

			vdzr, vdzi = retireInactive(vdzr, vdzi, active)
			n += unrollFactor
		}

		// Scalar remainder: last partial unroll block, or the whole
		// range if fewer than unrollFactor iterations remained.
		var lanesState [lanes]perturbLaneState
		var dzrArr, dziArr [lanes]float64
		vdzr.StoreSlice(dzrArr[:])
		vdzi.StoreSlice(dziArr[:])
		for k := 0; k < lanes; k++ {
			lanesState[k] = perturbLaneState{dzr: dzrArr[k], dzi: dziArr[k], active: active[k], iter: int(iters[k]), modulus: modulus[k]}
		}

		for m := n; m < orbit.refIter; m++ {
			for k := 0; k < lanes; k++ {
				lanesState[k].step(m, orbit.re[m], orbit.im[m], dcrArr[k], dci)
			}
		}

		for k := 0; k < lanes; k++ {
			out[py*width+px+k] = pixelValue(lanesState[k], orbit.refIter, maxIter)
		}
	}

	perturbRowScalar(orbit, la, py, width, height, dx, dy, maxIter, out, px, width)
}

// perturbStepAVX2 advances 4 lanes by one perturbation iteration:
// delta_{n+1} = 2*X_n*delta_n + delta_n^2 + dc.
func perturbStepAVX2(vdzr, vdzi, vX, vY, vdcr, vdci archsimd.Float64x4) (archsimd.Float64x4, archsimd.Float64x4) {
	two := archsimd.BroadcastFloat64x4(2.0)
	twoX := two.Mul(vX)
	twoY := two.Mul(vY)

	termSqR := vdzr.Mul(vdzr).Sub(vdzi.Mul(vdzi)).Add(vdcr)
	termSqI := two.Mul(vdzr).Mul(vdzi).Add(vdci)

	nextDzr := twoX.Mul(vdzr).Sub(twoY.Mul(vdzi)).Add(termSqR)
	nextDzi := twoX.Mul(vdzi).Add(twoY.Mul(vdzr)).Add(termSqI)
	return nextDzr, nextDzi
}

func storeMaskBool4(mask archsimd.Mask64x4, out *[4]bool) {
	var asInt [4]int64
	mask.AsInt64x4().StoreSlice(asInt[:])
	for i, v := range asInt {
		out[i] = v != 0
	}
}

func allActiveRetired(active [4]bool) bool {
	for _, a := range active {
		if a {
			return false
		}
	}
	return true
}

func retireInactive(vdzr, vdzi archsimd.Float64x4, active [4]bool) (archsimd.Float64x4, archsimd.Float64x4) {
	var zr, zi [4]float64
	vdzr.StoreSlice(zr[:])
	vdzi.StoreSlice(zi[:])
	for k := 0; k < 4; k++ {
		if !active[k] {
			zr[k], zi[k] = 0, 0
		}
	}
	return archsimd.LoadFloat64x4Slice(zr[:]), archsimd.LoadFloat64x4Slice(zi[:])
}

// perturbRowAVX512 is perturbRowAVX2 widened to 8 lanes (512-bit
// registers). The escape-mask bookkeeping and unrolling are identical;
// only the vector width differs, matching spec §9's "implementers may
// specialize to 512-bit (W = 8) ... without changing semantics, only
// throughput".
func perturbRowAVX512(orbit *referenceOrbit, la linearApprox, py, width, height int, dx, dy float64, maxIter int, out []float64) {
	const lanes = 8
	dci := (float64(py) - float64(height)/2.0) * dy
	vdci := archsimd.BroadcastFloat64x8(dci)
	vfour := archsimd.BroadcastFloat64x8(perturbationEscapeRadiusSquared)

	px := 0
	for ; px+lanes <= width; px += lanes {
		var dcrArr [lanes]float64
		for k := 0; k < lanes; k++ {
			dcrArr[k] = (float64(px+k) - float64(width)/2.0) * dx
		}
		vdcr := archsimd.LoadFloat64x8Slice(dcrArr[:])

		var vdzr, vdzi archsimd.Float64x8
		if la.skipIter > 0 {
			vbr := archsimd.BroadcastFloat64x8(la.br)
			vbi := archsimd.BroadcastFloat64x8(la.bi)
			vdzr = vbr.Mul(vdcr).Sub(vbi.Mul(vdci))
			vdzi = vbr.Mul(vdci).Add(vbi.Mul(vdcr))
		}

		iters := make([]int64, lanes)
		for k := range iters {
			iters[k] = int64(la.skipIter)
		}
		modulus := make([]float64, lanes)
		active := [lanes]bool{true, true, true, true, true, true, true, true}

		n := la.skipIter
		for n < orbit.refIter {
			if n+unrollFactor > orbit.refIter {
				break
			}

			for u := 0; u < unrollFactor; u++ {
				vX := archsimd.BroadcastFloat64x8(orbit.re[n+u])
				vY := archsimd.BroadcastFloat64x8(orbit.im[n+u])
				vdzr, vdzi = perturbStepAVX512(vdzr, vdzi, vX, vY, vdcr, vdci)
			}

			checkIdx := n + unrollFactor
			if checkIdx >= orbit.refIter {
				checkIdx = orbit.refIter - 1
			}
			vX := archsimd.BroadcastFloat64x8(orbit.re[checkIdx])
			vY := archsimd.BroadcastFloat64x8(orbit.im[checkIdx])
			zr := vX.Add(vdzr)
			zi := vY.Add(vdzi)
			mod := zr.Mul(zr).Add(zi.Mul(zi))
			escaped := mod.Greater(vfour)

			var modArr [lanes]float64
			mod.StoreSlice(modArr[:])
			var escArr [lanes]bool
			storeMaskBool8(escaped, &escArr)

			for k := 0; k < lanes; k++ {
				if active[k] && escArr[k] {
					active[k] = false
					iters[k] = int64(n + unrollFactor)
					modulus[k] = modArr[k]
				}
			}
			if allActiveRetired8(active) {
				n = orbit.refIter
				break
			}

			vdzr, vdzi = retireInactive8(vdzr, vdzi, active)
			n += unrollFactor
		}

		var lanesState [lanes]perturbLaneState
		var dzrArr, dziArr [lanes]float64
		vdzr.StoreSlice(dzrArr[:])
		vdzi.StoreSlice(dziArr[:])
		for k := 0; k < lanes; k++ {
			lanesState[k] = perturbLaneState{dzr: dzrArr[k], dzi: dziArr[k], active: active[k], iter: int(iters[k]), modulus: modulus[k]}
		}

		for m := n; m < orbit.refIter; m++ {
			for k := 0; k < lanes; k++ {
				lanesState[k].step(m, orbit.re[m], orbit.im[m], dcrArr[k], dci)
			}
		}

		for k := 0; k < lanes; k++ {
			out[py*width+px+k] = pixelValue(lanesState[k], orbit.refIter, maxIter)
		}
	}

	perturbRowScalar(orbit, la, py, width, height, dx, dy, maxIter, out, px, width)
}

func perturbStepAVX512(vdzr, vdzi, vX, vY, vdcr, vdci archsimd.Float64x8) (archsimd.Float64x8, archsimd.Float64x8) {
	two := archsimd.BroadcastFloat64x8(2.0)
	twoX := two.Mul(vX)
	twoY := two.Mul(vY)

	termSqR := vdzr.Mul(vdzr).Sub(vdzi.Mul(vdzi)).Add(vdcr)
	termSqI := two.Mul(vdzr).Mul(vdzi).Add(vdci)

	nextDzr := twoX.Mul(vdzr).Sub(twoY.Mul(vdzi)).Add(termSqR)
	nextDzi := twoX.Mul(vdzi).Add(twoY.Mul(vdzr)).Add(termSqI)
	return nextDzr, nextDzi
}

func storeMaskBool8(mask archsimd.Mask64x8, out *[8]bool) {
	var asInt [8]int64
	mask.AsInt64x8().StoreSlice(asInt[:])
	for i, v := range asInt {
		out[i] = v != 0
	}
}

func allActiveRetired8(active [8]bool) bool {
	for _, a := range active {
		if a {
			return false
		}
	}
	return true
}

func retireInactive8(vdzr, vdzi archsimd.Float64x8, active [8]bool) (archsimd.Float64x8, archsimd.Float64x8) {
	var zr, zi [8]float64
	vdzr.StoreSlice(zr[:])
	vdzi.StoreSlice(zi[:])
	for k := 0; k < 8; k++ {
		if !active[k] {
			zr[k], zi[k] = 0, 0
		}
	}
	return archsimd.LoadFloat64x8Slice(zr[:]), archsimd.LoadFloat64x8Slice(zi[:])
}
