package raster

import (
	"errors"

	"github.com/gogpu/primespiral/internal/spiral"
)

// ErrLengthMismatch is returned when points and weights differ in length.
var ErrLengthMismatch = errors.New("raster: points and weights differ in length")

// Viewport is the region of spiral space covered by a canvas.
//
// Rows are indexed by a point's X coordinate over [MinX, MaxX] and columns by
// its Y coordinate over [MinY, MaxY].
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// CenteredViewport returns the viewport for a width×height canvas centered
// on the origin with one unit per cell.
func CenteredViewport(width, height int) Viewport {
	hw := float64(width) / 2
	hh := float64(height) / 2
	return Viewport{MinX: -hh, MaxX: hh, MinY: -hw, MaxY: hw}
}

// Stats summarizes one binning pass.
type Stats struct {
	Points        int
	Binned        int
	Dropped       int
	BinnedWeight  float64
	DroppedWeight float64
}

// Histogram bins points into a width×height canvas, adding each point's
// weight to the single cell containing it.
//
// Bin edges are uniform over the viewport. Every bin is half-open except the
// last one along each axis, which also includes its right edge. Points
// outside the viewport (and NaN coordinates) are dropped.
func Histogram(points []spiral.Point, weights []float64, vp Viewport, width, height int) (*Canvas, Stats, error) {
	if len(points) != len(weights) {
		return nil, Stats{}, ErrLengthMismatch
	}

	c := NewCanvas(width, height)
	st := Stats{Points: len(points)}
	if len(c.data) == 0 {
		for _, w := range weights {
			st.DroppedWeight += w
		}
		st.Dropped = len(points)
		return c, st, nil
	}

	for i, p := range points {
		w := weights[i]
		row, okRow := bin(p.X, vp.MinX, vp.MaxX, height)
		col, okCol := bin(p.Y, vp.MinY, vp.MaxY, width)
		if !okRow || !okCol {
			st.Dropped++
			st.DroppedWeight += w
			continue
		}
		c.Add(col, row, float32(w))
		st.Binned++
		st.BinnedWeight += w
	}
	return c, st, nil
}

// bin maps v to a bin index in [0, n) over [lo, hi].
func bin(v, lo, hi float64, n int) (int, bool) {
	// Negated comparison also rejects NaN.
	if !(v >= lo && v <= hi) || hi <= lo {
		return 0, false
	}
	if v == hi {
		return n - 1, true
	}
	i := int((v - lo) / (hi - lo) * float64(n))
	if i >= n {
		// Rounding just below hi.
		i = n - 1
	}
	return i, true
}
