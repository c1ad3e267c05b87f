package primespiral

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/primespiral/internal/filter"
	"github.com/gogpu/primespiral/internal/image"
	"github.com/gogpu/primespiral/internal/raster"
	"github.com/gogpu/primespiral/internal/sieve"
	"github.com/gogpu/primespiral/internal/spiral"
)

// ErrNoOutput is returned by Generate when Config.Output is empty.
var ErrNoOutput = errors.New("primespiral: no output path")

// Result describes a finished render.
type Result struct {
	// Bound is n: integers 0..n-1 were placed on the spiral.
	Bound int

	// Primes is the number of primes below Bound.
	Primes int

	// TotalWeight is the sum of all point weights, offset included.
	TotalWeight float64

	// Histogram reports how many points landed on the canvas.
	Histogram raster.Stats

	// Image is the H×W RGB8 result.
	Image *image.ImageBuf
}

// Render runs the whole pipeline in memory:
// sieve -> weights -> spiral -> histogram -> smooth -> colormap.
func Render(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := Logger()

	n := cfg.Bound()
	start := time.Now()
	primes := sieve.Primes(n)
	log.Debug("sieve done", "bound", n, "primes", len(primes), "elapsed", time.Since(start))

	// The offset keeps prime-free regions faintly visible.
	weights := sieve.Weights(n, primes)
	floats.AddConst(cfg.Offset, weights)
	res := &Result{
		Bound:       n,
		Primes:      len(primes),
		TotalWeight: floats.Sum(weights),
	}

	start = time.Now()
	points, err := spiral.Map(ctx, n, cfg.SpiralWidth, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("primespiral: spiral: %w", err)
	}
	log.Debug("spiral mapped", "points", len(points), "elapsed", time.Since(start))

	start = time.Now()
	canvas, stats, err := raster.Histogram(points, weights, raster.CenteredViewport(cfg.Width, cfg.Height), cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("primespiral: histogram: %w", err)
	}
	res.Histogram = stats
	log.Debug("histogram binned",
		"binned", stats.Binned, "dropped", stats.Dropped,
		"binnedWeight", stats.BinnedWeight, "elapsed", time.Since(start))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	smoothed, err := filter.Smooth(ctx, canvas, cfg.KernelRadius, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("primespiral: smooth: %w", err)
	}
	log.Debug("canvas smoothed", "radius", cfg.KernelRadius, "max", smoothed.Max(), "elapsed", time.Since(start))

	start = time.Now()
	img, err := cfg.Gradient.Apply(ctx, smoothed, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("primespiral: colormap: %w", err)
	}
	res.Image = img
	log.Debug("colormap applied",
		"background", cfg.Gradient.Background.Hex(), "foreground", cfg.Gradient.Foreground.Hex(),
		"elapsed", time.Since(start))

	log.Info("render complete", "width", cfg.Width, "height", cfg.Height, "bound", n, "primes", len(primes))
	return res, nil
}

// Generate renders and writes the image to cfg.Output.
// The output format is checked before rendering so a bad extension fails fast.
func Generate(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Output == "" {
		return nil, ErrNoOutput
	}
	if _, err := image.FileFormatFromPath(cfg.Output); err != nil {
		return nil, err
	}

	res, err := Render(ctx, cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if err := res.Image.Save(cfg.Output); err != nil {
		return nil, err
	}
	Logger().Info("image written", "path", cfg.Output, "elapsed", time.Since(start))
	return res, nil
}
