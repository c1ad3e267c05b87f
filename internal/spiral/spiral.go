// Package spiral places integer indices on an Archimedean spiral.
//
// The angle grows with the square root of the index, so consecutive indices
// are spaced roughly evenly along the arm instead of crowding at the center.
package spiral

import (
	"context"
	"math"

	"github.com/gogpu/primespiral/internal/parallel"
)

// Point is a 2D point in spiral space. The origin is the spiral center.
type Point struct {
	X, Y float64
}

// Theta returns the angle of index i in radians: sqrt(i) * 2π.
func Theta(i int) float64 {
	return math.Sqrt(float64(i)) * 2 * math.Pi
}

// Radius returns the distance of index i from the center.
// The spiral arms are width apart.
func Radius(i int, width float64) float64 {
	return width * Theta(i) / (2 * math.Pi)
}

// At returns the position of index i: r * (-sin θ, cos θ).
func At(i int, width float64) Point {
	r := Radius(i, width)
	sin, cos := math.Sincos(Theta(i))
	return Point{X: -r * sin, Y: r * cos}
}

// Map returns the positions of indices 0..n-1.
// The work is split across workers; the result does not depend on the split.
func Map(ctx context.Context, n int, width float64, workers int) ([]Point, error) {
	if n <= 0 {
		return []Point{}, nil
	}

	points := make([]Point, n)
	err := parallel.Bands(ctx, n, workers, func(ctx context.Context, b parallel.Band) error {
		for i := b.Lo; i < b.Hi; i++ {
			points[i] = At(i, width)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

// MaxIndex returns how many indices fit on a spiral reaching maxDistance
// from the center: int((maxDistance / width)^2).
func MaxIndex(maxDistance, width float64) int {
	if width <= 0 || maxDistance <= 0 {
		return 0
	}
	q := maxDistance / width
	return int(q * q)
}
