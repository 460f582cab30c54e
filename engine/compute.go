package engine

import "math/big"

// Mode selects which numeric kernel Compute uses for a region, per spec
// §3 ("Precision Mode"). The numeric values are part of the package's
// wire-compatible surface: callers may persist a Mode alongside cached
// output and expect it to mean the same thing across versions.
type Mode int

const (
	ModeDouble       Mode = 0
	ModeExtended     Mode = 1
	modeReserved     Mode = 2 // spec reserves mode 2 for a future tier; never returned
	ModePerturbation Mode = 3
)

func (m Mode) String() string {
	switch m {
	case ModeDouble:
		return "double"
	case ModeExtended:
		return "extended"
	case ModePerturbation:
		return "perturbation"
	default:
		return "reserved"
	}
}

// Request describes one rectangular region to render (spec §3
// "Viewport"). Coordinates are passed as decimal strings rather than
// float64 so that regions narrower than a float64's precision can still
// be addressed exactly; Compute parses them at quadPrecisionBits before
// choosing a kernel.
type Request struct {
	XMin, XMax string
	YMin, YMax string
	Width      int
	Height     int
	MaxIter    int
}

// Compute renders req into out, which must have at least Width*Height
// elements addressed in row-major order (spec §3 "Output buffer"). Each
// element holds the smooth iteration count, or -MaxIter for points inside
// the set (spec §3 "Escape encoding").
func Compute(req Request, out []float64) error {
	if req.Width <= 0 || req.Height <= 0 || req.MaxIter <= 0 {
		return ErrInvalidSize
	}
	if len(out) < req.Width*req.Height {
		return ErrInvalidSize
	}

	xmin, ok := newQuad(req.XMin)
	if !ok {
		return ErrInvalidRegion
	}
	xmax, ok := newQuad(req.XMax)
	if !ok {
		return ErrInvalidRegion
	}
	ymin, ok := newQuad(req.YMin)
	if !ok {
		return ErrInvalidRegion
	}
	ymax, ok := newQuad(req.YMax)
	if !ok {
		return ErrInvalidRegion
	}
	if xmax.Cmp(xmin) <= 0 || ymax.Cmp(ymin) <= 0 {
		return ErrInvalidRegion
	}

	width := quadSub(xmax, xmin)
	widthF, _ := width.Float64()

	mode := modeFromWidth(widthF, req.Width)

	dxQuad := quadDiv(width, quadConst(float64(req.Width)))
	dyQuad := quadDiv(quadSub(ymax, ymin), quadConst(float64(req.Height)))
	dx, _ := dxQuad.Float64()
	dy, _ := dyQuad.Float64()

	switch mode {
	case ModeDouble:
		return computeDouble(xmin, ymin, dx, dy, req, out)
	case ModeExtended:
		return computeExtended(xmin, ymin, dxQuad, dyQuad, req, out)
	default:
		return computePerturbation(xmin, xmax, ymin, ymax, dx, dy, req, out)
	}
}

// ChooseMode reports which Mode Compute would pick for a region without
// allocating a reference orbit or output buffer, so callers can budget
// work (e.g. a preview pass) before committing to a full render. The
// mode depends only on the region width xmax - xmin; width is accepted
// but does not affect the result (see modeFromWidth).
func ChooseMode(xminStr, xmaxStr string, width int) (Mode, error) {
	xmin, ok := newQuad(xminStr)
	if !ok {
		return 0, ErrInvalidRegion
	}
	xmax, ok := newQuad(xmaxStr)
	if !ok {
		return 0, ErrInvalidRegion
	}
	if xmax.Cmp(xmin) <= 0 {
		return 0, ErrInvalidRegion
	}
	w := quadSub(xmax, xmin)
	wf, _ := w.Float64()
	return modeFromWidth(wf, width), nil
}

// modeFromWidth implements spec §4.1's mode table directly on the region
// width w = xmax - xmin: w > doubleWidthFloor uses double, w >
// extendedWidthFloor uses extended, otherwise perturbation. screenWidth is
// accepted for API symmetry with ChooseMode's external signature but,
// matching original_source/src/mandelbrot_compute.c's get_precision_mode,
// does not participate in the decision.
func modeFromWidth(regionWidth float64, _ int) Mode {
	switch {
	case regionWidth > doubleWidthFloor:
		return ModeDouble
	case regionWidth > extendedWidthFloor:
		return ModeExtended
	default:
		return ModePerturbation
	}
}

func computeDouble(xmin, ymin *big.Float, dx, dy float64, req Request, out []float64) error {
	xminF, _ := xmin.Float64()
	yminF, _ := ymin.Float64()
	return runParallel(req.Height, func(py int) {
		ci := yminF + dy*float64(py)
		for px := 0; px < req.Width; px++ {
			cr := xminF + dx*float64(px)
			out[py*req.Width+px] = pointDoubleSmooth(cr, ci, req.MaxIter)
		}
	})
}

// computeExtended keeps the region origin and per-pixel step in
// double-double precision all the way from the quad-precision Request
// coordinates, matching original_source's cast of the Real128 origin and
// step directly to Real80 (long double) rather than through a plain
// double.
func computeExtended(xmin, ymin, dxQuad, dyQuad *big.Float, req Request, out []float64) error {
	xminDD := ddFromBig(xmin)
	yminDD := ddFromBig(ymin)
	dxDD := ddFromBig(dxQuad)
	dyDD := ddFromBig(dyQuad)
	return runParallel(req.Height, func(py int) {
		ci := ddAdd(yminDD, ddMul(dyDD, ddFromFloat64(float64(py))))
		for px := 0; px < req.Width; px++ {
			cr := ddAdd(xminDD, ddMul(dxDD, ddFromFloat64(float64(px))))
			out[py*req.Width+px] = pointExtendedSmooth(cr, ci, req.MaxIter)
		}
	})
}

func computePerturbation(xmin, xmax, ymin, ymax *big.Float, dx, dy float64, req Request, out []float64) error {
	// Reference orbit is centered on the region (spec §4.3 "choose the
	// reference point near the center of the viewport to minimize
	// delta magnitude across the frame").
	cx := quadDiv(quadAdd(xmin, xmax), quadConst(2))
	cy := quadDiv(quadAdd(ymin, ymax), quadConst(2))
	c0 := newQuadComplex(cx, cy)

	orbit := buildReferenceOrbit(c0, req.MaxIter)
	if orbit.refIter == 0 {
		return ErrInvalidRegion
	}

	r := viewRadius(req.Width, req.Height, dx, dy)
	la := buildLinearApprox(orbit, r)

	return runParallel(req.Height, func(py int) {
		perturbRow(orbit, la, py, req.Width, req.Height, dx, dy, req.MaxIter, out)
	})
}
