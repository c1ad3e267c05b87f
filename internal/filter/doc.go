// Package filter smooths a raster canvas with a Gaussian-shaped bump kernel.
//
// The 2D kernel exp(-(dx²+dy²)) factors into the outer product of the 1D
// kernel exp(-z²) with itself, so the blur runs as two separable passes:
//   - Horizontal pass: convolve each row with the 1D kernel
//   - Vertical pass: convolve each column with the 1D kernel
//
// This costs O(w*h*(2r+1)*2) instead of O(w*h*(2r+1)²) and gives the same
// result as the direct 2D convolution up to float32 rounding.
//
// Edges are zero-padded: taps falling outside the canvas contribute nothing.
// Output always has the same shape as the input ("same" mode).
package filter
