package engine

import (
	"context"
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// rowRange is a disjoint, contiguous span of output rows handed to one
// worker (spec §4.5 "Work is partitioned by pixel rows").
type rowRange struct {
	start, end int // [start, end)
}

// guidedRowChunks splits [0, height) into shrinking chunks approximating
// OpenMP's schedule(guided): the first chunks are large, later ones
// shrink, so a worker that draws an expensive (frontier-heavy) early
// chunk doesn't stall the whole frame while idle workers wait on a
// handful of oversized remaining chunks (spec §4.5: "Pure static row
// splits produce bad tail latency").
func guidedRowChunks(height, workers int) []rowRange {
	if workers < 1 {
		workers = 1
	}

	var ranges []rowRange
	remaining := height
	start := 0
	for remaining > 0 {
		size := remaining / (guidedShrinkDivisor * workers)
		if size < rowChunkMinimum {
			size = rowChunkMinimum
		}
		if size > remaining {
			size = remaining
		}
		ranges = append(ranges, rowRange{start: start, end: start + size})
		start += size
		remaining -= size
	}
	return ranges
}

// runParallel drives rowFn across every row of a height-row frame using
// GOMAXPROCS workers pulling from a shared queue of guided-schedule row
// chunks (spec §4.5, §5). Workers write into disjoint row ranges of out
// (via rowFn's closure) so no synchronization beyond the errgroup join is
// needed.
func runParallel(height int, rowFn func(py int)) error {
	workers := runtime.GOMAXPROCS(0)
	if workers > height {
		workers = height
	}
	if workers < 1 {
		workers = 1
	}

	chunks := guidedRowChunks(height, workers)
	queue := make(chan rowRange, len(chunks))
	for _, c := range chunks {
		queue <- c
	}
	close(queue)

	g, _ := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for chunk := range queue {
				for py := chunk.start; py < chunk.end; py++ {
					rowFn(py)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// evenRowChunks splits [0, height) into equal-sized chunks via lo.Chunk,
// for callers that want evenly-sized chunks instead of the guided shrink
// (used by the legacy scalar driver, which has no frontier/interior cost
// skew to amortize).
func evenRowChunks(height, workers int) []rowRange {
	if workers < 1 {
		workers = 1
	}
	rows := make([]int, height)
	for i := range rows {
		rows[i] = i
	}
	buckets := lo.Chunk(rows, max(1, height/workers))
	ranges := make([]rowRange, 0, len(buckets))
	for _, b := range buckets {
		if len(b) == 0 {
			continue
		}
		ranges = append(ranges, rowRange{start: b[0], end: b[len(b)-1] + 1})
	}
	return ranges
}
