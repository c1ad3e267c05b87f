// Package image provides the byte image buffer the colormap writes into and
// lossless encoders for it.
package image

// Format is the pixel layout of an ImageBuf.
type Format uint8

const (
	// FormatRGB8 is 24-bit RGB, 3 bytes per pixel with no alpha.
	FormatRGB8 Format = iota

	formatCount
)

// IsValid reports whether f is a known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// BytesPerPixel returns the pixel size in bytes, or 0 for an unknown format.
func (f Format) BytesPerPixel() int {
	if f == FormatRGB8 {
		return 3
	}
	return 0
}

// RowBytes returns the number of bytes in a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

func (f Format) String() string {
	if f == FormatRGB8 {
		return "RGB8"
	}
	return "Unknown"
}
