package image

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the file format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")
)

// FileFormat is a lossless container the buffer can be written as.
type FileFormat uint8

const (
	// FilePNG is the default output format.
	FilePNG FileFormat = iota
	// FileBMP is uncompressed 24-bit BMP.
	FileBMP
	// FileTIFF is Deflate-compressed TIFF.
	FileTIFF
)

// String returns the conventional extension without the dot.
func (f FileFormat) String() string {
	switch f {
	case FilePNG:
		return "png"
	case FileBMP:
		return "bmp"
	case FileTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// FileFormatFromPath picks the format from the file extension.
func FileFormatFromPath(path string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png":
		return FilePNG, nil
	case ".bmp":
		return FileBMP, nil
	case ".tif", ".tiff":
		return FileTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Save writes the image to path, choosing the encoder from the extension.
// A file that fails to encode is removed.
func (b *ImageBuf) Save(path string) error {
	format, err := FileFormatFromPath(path)
	if err != nil {
		return err
	}

	path = filepath.Clean(path)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}

	if err := b.Encode(f, format); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("image: close file: %w", err)
	}
	return nil
}

// Encode writes the image to w in the given format.
func (b *ImageBuf) Encode(w io.Writer, format FileFormat) error {
	switch format {
	case FilePNG:
		return b.EncodePNG(w)
	case FileBMP:
		return b.EncodeBMP(w)
	case FileTIFF:
		return b.EncodeTIFF(w)
	default:
		return ErrUnsupportedFormat
	}
}

// EncodePNG encodes the image as PNG to the given writer.
// Opaque RGB data is stored as 8-bit truecolor without alpha.
func (b *ImageBuf) EncodePNG(w io.Writer) error {
	enc := png.Encoder{CompressionLevel: png.DefaultCompression}
	if err := enc.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeBMP encodes the image as BMP to the given writer.
func (b *ImageBuf) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode BMP: %w", err)
	}
	return nil
}

// EncodeTIFF encodes the image as Deflate-compressed TIFF to the given writer.
func (b *ImageBuf) EncodeTIFF(w io.Writer) error {
	opts := &tiff.Options{Compression: tiff.Deflate, Predictor: true}
	if err := tiff.Encode(w, b.ToStdImage(), opts); err != nil {
		return fmt.Errorf("image: encode TIFF: %w", err)
	}
	return nil
}

// ToStdImage converts the buffer to an opaque *image.NRGBA.
func (b *ImageBuf) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		row := b.RowBytes(y)
		dst := nrgba.Pix[y*nrgba.Stride:]
		for x := range b.width {
			dst[x*4] = row[x*3]
			dst[x*4+1] = row[x*3+1]
			dst[x*4+2] = row[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return nrgba
}
