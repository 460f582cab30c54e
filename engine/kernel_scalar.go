package engine

// pointDoubleSmooth iterates Z_{n+1} = Z_n^2 + c in float64, returning the
// smooth escape value or the non-escape sentinel -maxIter (spec §4.2).
// zr2/zi2 are carried across iterations to spare two multiplications per
// step, as the original C kernel does.
func pointDoubleSmooth(cr, ci float64, maxIter int) float64 {
	if insideCardioid(cr, ci) || insidePeriod2Bulb(cr, ci) {
		return -float64(maxIter)
	}

	var zr, zi, zr2, zi2 float64
	for i := 0; i < maxIter; i++ {
		if zr2+zi2 > scalarEscapeRadiusSquared {
			return smoothIterationCount(i, zr2+zi2)
		}
		zi = 2.0*zr*zi + ci
		zr = zr2 - zi2 + cr
		zr2 = zr * zr
		zi2 = zi * zi
	}
	return -float64(maxIter)
}

// pointExtendedSmooth is the double-double counterpart of
// pointDoubleSmooth (spec §4.2: "the extended kernel is the double kernel
// with the arithmetic widened"). The interior tests stay in float64 — a
// fast rejection, not a precision-critical step, exactly as spec.md
// prescribes.
func pointExtendedSmooth(cr, ci ddFloat, maxIter int) float64 {
	crD, ciD := cr.float64(), ci.float64()
	if insideCardioid(crD, ciD) || insidePeriod2Bulb(crD, ciD) {
		return -float64(maxIter)
	}

	var zr, zi, zr2, zi2 ddFloat
	escape := ddFromFloat64(scalarEscapeRadiusSquared)
	for i := 0; i < maxIter; i++ {
		modulus := ddAdd(zr2, zi2)
		if modulus.float64() > escape.float64() {
			return smoothIterationCount(i, modulus.float64())
		}
		nextZi := ddAdd(ddMul(ddFromFloat64(2), ddMul(zr, zi)), ci)
		nextZr := ddAdd(ddSub(zr2, zi2), cr)
		zr, zi = nextZr, nextZi
		zr2 = ddMul(zr, zr)
		zi2 = ddMul(zi, zi)
	}
	return -float64(maxIter)
}
