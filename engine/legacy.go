package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ComputeLegacy is the float64-only entry point from spec §6 ("Legacy
// API"), for callers that don't need deep zoom and would rather pass
// float64 coordinates directly than format decimal strings. It always
// runs the double-precision kernel, matching
// original_source/src/mandelbrot_compute.c's compute_mandelbrot, which
// the C comment there keeps "for backward compatibility".
func ComputeLegacy(xmin, xmax, ymin, ymax float64, width, height, maxIter int, out []float64) error {
	if width <= 0 || height <= 0 || maxIter <= 0 {
		return ErrInvalidSize
	}
	if len(out) < width*height {
		return ErrInvalidSize
	}
	if xmax <= xmin || ymax <= ymin {
		return ErrInvalidRegion
	}

	dx := (xmax - xmin) / float64(width)
	dy := (ymax - ymin) / float64(height)

	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}

	g, _ := errgroup.WithContext(context.Background())
	for _, chunk := range evenRowChunks(height, workers) {
		chunk := chunk
		g.Go(func() error {
			for py := chunk.start; py < chunk.end; py++ {
				ci := ymin + dy*float64(py)
				for px := 0; px < width; px++ {
					cr := xmin + dx*float64(px)
					out[py*width+px] = pointDoubleSmooth(cr, ci, maxIter)
				}
			}
			return nil
		})
	}
	return g.Wait()
}
