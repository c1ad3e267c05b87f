package image

import "errors"

var (
	// ErrInvalidDimensions is returned for a non-positive width or height.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned for an unknown pixel format.
	ErrInvalidFormat = errors.New("image: invalid format")
)

// ImageBuf holds packed pixels, Stride() bytes per row with no padding.
//
// Distinct rows may be written from different goroutines.
type ImageBuf struct {
	data   []byte
	width  int
	height int
	stride int
	format Format
}

// NewImageBuf allocates a zeroed width×height buffer.
func NewImageBuf(width, height int, format Format) (*ImageBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}

	stride := format.RowBytes(width)
	return &ImageBuf{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
		format: format,
	}, nil
}

// Width returns the width in pixels.
func (b *ImageBuf) Width() int { return b.width }

// Height returns the height in pixels.
func (b *ImageBuf) Height() int { return b.height }

// Stride returns the distance between rows in bytes.
func (b *ImageBuf) Stride() int { return b.stride }

// Format returns the pixel format.
func (b *ImageBuf) Format() Format { return b.format }

// Data returns the pixel bytes, row after row.
func (b *ImageBuf) Data() []byte { return b.data }

// RowBytes returns row y sharing the buffer's storage, or nil if y is
// outside the image.
func (b *ImageBuf) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.stride]
}

// GetRGB returns the color at (x, y), or black outside the image.
func (b *ImageBuf) GetRGB(x, y int) (r, g, bl uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, 0, 0
	}
	off := y*b.stride + x*b.format.BytesPerPixel()
	return b.data[off], b.data[off+1], b.data[off+2]
}
