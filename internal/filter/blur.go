package filter

import (
	"context"

	"github.com/gogpu/primespiral/internal/parallel"
	"github.com/gogpu/primespiral/internal/raster"
)

// BlurFilter applies the separable bump-kernel blur to a canvas.
type BlurFilter struct {
	// Radius is the kernel half-width in cells. The kernel has 2*Radius+1 taps.
	Radius int

	// Workers bounds the goroutines used per pass. Zero means GOMAXPROCS.
	Workers int
}

// Smooth blurs src with a bump kernel of the given radius and returns a new
// canvas of the same shape.
func Smooth(ctx context.Context, src *raster.Canvas, radius, workers int) (*raster.Canvas, error) {
	f := &BlurFilter{Radius: radius, Workers: workers}
	return f.Apply(ctx, src)
}

// Apply convolves src with the kernel and returns the result in a new canvas.
// src is not modified. The operation uses a two-pass separable algorithm:
//  1. Horizontal pass: src -> temp
//  2. Vertical pass: temp -> dst
func (f *BlurFilter) Apply(ctx context.Context, src *raster.Canvas) (*raster.Canvas, error) {
	dst := raster.NewCanvasLike(src)
	width, height := src.Width(), src.Height()
	if width == 0 || height == 0 {
		return dst, ctx.Err()
	}

	// Handle zero radius (identity)
	if f.Radius <= 0 {
		copy(dst.Data(), src.Data())
		return dst, ctx.Err()
	}

	kernel := CachedBumpKernel(f.Radius)
	temp := raster.NewCanvasLike(src)

	err := parallel.Bands(ctx, height, f.Workers, func(ctx context.Context, b parallel.Band) error {
		blurHorizontal(src, temp, b, kernel)
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}

	err = parallel.Bands(ctx, height, f.Workers, func(ctx context.Context, b parallel.Band) error {
		blurVertical(temp, dst, b, kernel)
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// blurHorizontal applies 1D horizontal convolution to rows in b.
// Reads from src, writes to temp.
func blurHorizontal(src, temp *raster.Canvas, b parallel.Band, kernel []float32) {
	half := KernelCenter(len(kernel))
	width := src.Width()

	for y := b.Lo; y < b.Hi; y++ {
		in := src.Row(y)
		out := temp.Row(y)

		for x := range out {
			// Zero padding: clip the tap range to the row.
			kLo := max(0, half-x)
			kHi := min(len(kernel), width-x+half)

			var sum float32
			for k := kLo; k < kHi; k++ {
				sum += in[x+k-half] * kernel[k]
			}
			out[x] = sum
		}
	}
}

// blurVertical applies 1D vertical convolution to rows in b.
// Reads from temp, writes to dst.
func blurVertical(temp, dst *raster.Canvas, b parallel.Band, kernel []float32) {
	half := KernelCenter(len(kernel))
	height := temp.Height()

	for y := b.Lo; y < b.Hi; y++ {
		out := dst.Row(y)
		kLo := max(0, half-y)
		kHi := min(len(kernel), height-y+half)

		// Accumulate whole rows so the inner loop walks memory linearly.
		for k := kLo; k < kHi; k++ {
			in := temp.Row(y + k - half)
			w := kernel[k]
			for x := range out {
				out[x] += in[x] * w
			}
		}
	}
}
