package primespiral

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/primespiral/internal/color"
	"github.com/gogpu/primespiral/internal/filter"
	"github.com/gogpu/primespiral/internal/spiral"
)

// Defaults reproduce the reference image.
const (
	DefaultWidth       = 6000
	DefaultHeight      = 6000
	DefaultSpiralWidth = 1.5
	DefaultOffset      = 0.1
	DefaultOutput      = "prime.png"

	// overscan extends the spiral past the canvas corners so they are covered.
	overscan = 1.1
)

// ErrInvalidConfig is wrapped by every validation error.
var ErrInvalidConfig = errors.New("primespiral: invalid config")

// Config holds every parameter of a render. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Width and Height are the canvas and image dimensions in pixels.
	Width  int
	Height int

	// SpiralWidth is the distance between neighboring arms in pixels.
	SpiralWidth float64

	// Offset is added to every weight before binning so that regions without
	// primes still show the faint spiral texture.
	Offset float64

	// KernelRadius is the half-width of the smoothing kernel (5 gives 11×11).
	KernelRadius int

	// Gradient maps smoothed intensity to color.
	Gradient color.Gradient

	// Output is the file Generate writes. The extension picks the encoder.
	Output string

	// Workers bounds parallelism of the elementwise stages. 0 means GOMAXPROCS.
	Workers int
}

// DefaultConfig returns the configuration of the reference image.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		SpiralWidth:  DefaultSpiralWidth,
		Offset:       DefaultOffset,
		KernelRadius: filter.DefaultRadius,
		Gradient:     color.DefaultGradient(),
		Output:       DefaultOutput,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case !(c.SpiralWidth > 0) || math.IsInf(c.SpiralWidth, 1):
		return fmt.Errorf("%w: spiral width %v must be positive and finite", ErrInvalidConfig, c.SpiralWidth)
	case !(c.Offset >= 0) || math.IsInf(c.Offset, 1):
		return fmt.Errorf("%w: offset %v must be non-negative and finite", ErrInvalidConfig, c.Offset)
	case c.KernelRadius < 0:
		return fmt.Errorf("%w: kernel radius %d must be non-negative", ErrInvalidConfig, c.KernelRadius)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d must be non-negative", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// MaxDistance returns how far from the center the spiral must reach:
// half the canvas diagonal plus 10% overscan.
func (c Config) MaxDistance() float64 {
	return math.Sqrt(float64(c.Height)*float64(c.Height)+float64(c.Width)*float64(c.Width)) / 2 * overscan
}

// Bound returns n, the number of integers placed on the spiral.
func (c Config) Bound() int {
	return spiral.MaxIndex(c.MaxDistance(), c.SpiralWidth)
}
