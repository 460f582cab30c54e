package engine

import "errors"

// ErrInvalidRegion is returned when a coordinate string fails to parse or
// the requested rectangle is empty or inverted (xmax <= xmin or ymax <= ymin).
var ErrInvalidRegion = errors.New("engine: invalid region")

// ErrInvalidSize is returned when width, height, or maxIter is not positive,
// or when out is smaller than width*height.
var ErrInvalidSize = errors.New("engine: invalid size")

// ErrOutOfMemory names a failed allocation of the reference-orbit buffers
// required by the perturbation kernel. No code path in this package
// returns it: buildReferenceOrbit allocates with make, which panics
// rather than reporting an error when memory runs out.
var ErrOutOfMemory = errors.New("engine: out of memory")
