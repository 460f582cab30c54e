package engine

// LaneWidth returns the number of float64 lanes the perturbation kernel
// vectorizes across on this build: 1 with no archsimd dispatch compiled
// in (engine/perturb_base.go only), 4 on a 256-bit AVX2 path, or 8 on a
// 512-bit AVX-512 path (spec §4.4 "Vectorization contract", §9 "SIMD
// abstraction"). It is a read-only query; changing it only changes
// throughput, never the computed values, since perturb_base.go's
// per-lane loop is the semantics every build must agree with.
func LaneWidth() int {
	return currentWidth / 8
}

// perturbLaneState is one SIMD lane's worth of perturbation state: the
// complex displacement delta, whether the lane is still iterating, the
// iteration count at which it escaped (or skipIter while still active),
// and the squared modulus recorded at escape (spec §4.4: "Inactive lanes
// must be retired ... A per-lane mask records 'still active'").
//
// This is narrowed to exactly the one thing this engine ever vectorizes:
// pairs of float64 deltas, rather than a generic lane type spanning every
// element width and every SIMD target.
type perturbLaneState struct {
	dzr, dzi float64
	active   bool
	iter     int
	modulus  float64
}

func newPerturbLane(dzr, dzi float64, skipIter int) perturbLaneState {
	return perturbLaneState{dzr: dzr, dzi: dzi, active: true, iter: skipIter}
}

// step advances one perturbation iteration for a single lane:
//
//	delta_{n+1} = 2*X_n*delta_n + delta_n^2 + dc
//
// and checks escape against the full reconstructed orbit X_n + delta_n
// (spec §4.4). Retired lanes are no-ops, matching the "zero out inactive
// pixels to prevent explosion" rule from the masked SIMD version.
func (l *perturbLaneState) step(n int, xr, xi, dcr, dci float64) {
	if !l.active {
		return
	}

	zPlusDr := xr + l.dzr
	zPlusDi := xi + l.dzi
	modulus := zPlusDr*zPlusDr + zPlusDi*zPlusDi
	if modulus > perturbationEscapeRadiusSquared {
		l.active = false
		l.iter = n
		l.modulus = modulus
		l.dzr, l.dzi = 0, 0
		return
	}

	twoXr := 2.0 * xr
	twoXi := 2.0 * xi
	nextDr := twoXr*l.dzr - twoXi*l.dzi + l.dzr*l.dzr - l.dzi*l.dzi + dcr
	nextDi := twoXr*l.dzi + twoXi*l.dzr + 2.0*l.dzr*l.dzi + dci
	l.dzr, l.dzi = nextDr, nextDi
}
