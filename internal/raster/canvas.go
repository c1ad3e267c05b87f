// Package raster bins weighted 2D points into a scalar grid.
package raster

// Canvas is a rectangular grid of float32 intensities stored row-major.
// Row y, column x lives at index y*Width()+x.
type Canvas struct {
	width  int
	height int
	data   []float32
}

// NewCanvas creates a zeroed canvas with the given dimensions.
// Non-positive dimensions yield an empty canvas.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		return &Canvas{}
	}
	return &Canvas{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// NewCanvasLike creates a zeroed canvas with the same dimensions as c.
func NewCanvasLike(c *Canvas) *Canvas {
	return NewCanvas(c.width, c.height)
}

// Width returns the number of columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the number of rows.
func (c *Canvas) Height() int {
	return c.height
}

// Data returns the backing slice.
func (c *Canvas) Data() []float32 {
	return c.data
}

// Row returns row y as a slice sharing the backing storage.
func (c *Canvas) Row(y int) []float32 {
	return c.data[y*c.width : (y+1)*c.width]
}

// At returns the value at (x, y), or 0 outside the canvas.
func (c *Canvas) At(x, y int) float32 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return c.data[y*c.width+x]
}

// Set stores v at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) Set(x, y int, v float32) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.data[y*c.width+x] = v
}

// Add accumulates v at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) Add(x, y int, v float32) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.data[y*c.width+x] += v
}

// Sum returns the total of all cells, accumulated in float64.
func (c *Canvas) Sum() float64 {
	var s float64
	for _, v := range c.data {
		s += float64(v)
	}
	return s
}

// Max returns the largest cell value, or 0 for an empty canvas.
func (c *Canvas) Max() float32 {
	if len(c.data) == 0 {
		return 0
	}
	m := c.data[0]
	for _, v := range c.data[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
