// Package color maps scalar intensities to RGB colors.
package color

import "fmt"

// ColorU8 represents an opaque sRGB color with uint8 components in [0,255].
type ColorU8 struct {
	R, G, B uint8
}

// RGB is a convenience function to create a ColorU8.
func RGB(r, g, b uint8) ColorU8 {
	return ColorU8{R: r, G: g, B: b}
}

// Hex returns the color as "#rrggbb".
func (c ColorU8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c ColorU8) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
