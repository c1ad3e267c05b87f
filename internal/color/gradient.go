package color

import (
	"context"
	"math"

	"github.com/gogpu/primespiral/internal/image"
	"github.com/gogpu/primespiral/internal/parallel"
	"github.com/gogpu/primespiral/internal/raster"
)

// Default endpoint colors: near-black background, cool white foreground.
var (
	DefaultBackground = RGB(18, 18, 18)
	DefaultForeground = RGB(242, 245, 255)
)

// Gradient linearly interpolates between two colors in RGB byte space.
type Gradient struct {
	Background ColorU8
	Foreground ColorU8
}

// DefaultGradient returns the gradient between DefaultBackground and
// DefaultForeground.
func DefaultGradient() Gradient {
	return Gradient{Background: DefaultBackground, Foreground: DefaultForeground}
}

// At maps an intensity to a color.
//
// The intensity is clipped (not rescaled) to [0,1], each channel is blended
// as (1-t)*bg + t*fg, clipped to [0,255] and truncated to a byte. NaN maps to
// the background.
func (g Gradient) At(intensity float32) ColorU8 {
	t := clip01(intensity)
	return ColorU8{
		R: lerpChannel(g.Background.R, g.Foreground.R, t),
		G: lerpChannel(g.Background.G, g.Foreground.G, t),
		B: lerpChannel(g.Background.B, g.Foreground.B, t),
	}
}

// Apply maps every canvas cell to an RGB8 pixel. Row y of the canvas becomes
// row y of the image.
func (g Gradient) Apply(ctx context.Context, c *raster.Canvas, workers int) (*image.ImageBuf, error) {
	buf, err := image.NewImageBuf(c.Width(), c.Height(), image.FormatRGB8)
	if err != nil {
		return nil, err
	}

	err = parallel.Bands(ctx, c.Height(), workers, func(ctx context.Context, b parallel.Band) error {
		for y := b.Lo; y < b.Hi; y++ {
			src := c.Row(y)
			dst := buf.RowBytes(y)
			for x, v := range src {
				px := g.At(v)
				off := x * 3
				dst[off] = px.R
				dst[off+1] = px.G
				dst[off+2] = px.B
			}
		}
		return ctx.Err()
	})
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// clip01 clamps v to [0,1]; NaN becomes 0.
func clip01(v float32) float32 {
	switch {
	case v > 1:
		return 1
	case v >= 0:
		return v
	default:
		// Negative or NaN.
		return 0
	}
}

// lerpChannel blends one channel in float32 and truncates toward zero.
func lerpChannel(bg, fg uint8, t float32) uint8 {
	v := (1-t)*float32(bg) + t*float32(fg)
	return clampTrunc(v)
}

// clampTrunc clamps v to [0, 255] and truncates to uint8.
func clampTrunc(v float32) uint8 {
	if v <= 0 || math.IsNaN(float64(v)) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
