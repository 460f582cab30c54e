// Package engine is a deep-zoom Mandelbrot computation engine.
//
// Given a rectangular region of the complex plane and an iteration budget,
// Compute fills a caller-supplied buffer with smooth escape-time values
// suitable for coloring. At shallow zoom it iterates directly in float64;
// past roughly 1e-13 in view width it switches to a double-double
// "extended" kernel; past roughly 1e-17 it builds a quad-precision
// reference orbit and iterates every pixel as a perturbation of that
// orbit, the only way to keep per-pixel precision once the view width
// drops below a float64 ulp.
//
// The package is stateless: every allocation Compute makes is scoped to
// that single call and released before it returns. There is no
// persisted state, no logging, and no CLI surface — those are left to
// callers.
package engine
