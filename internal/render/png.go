package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"nimbus/internal/core"
)

// Image wraps the buffer as an image.RGBA without copying.
func Image(buf *core.PixelBuffer) *image.RGBA {
	return &image.RGBA{
		Pix:    buf.Pix(),
		Stride: 4 * buf.W,
		Rect:   image.Rect(0, 0, buf.W, buf.H),
	}
}

// EncodePNG writes the buffer as PNG.
func EncodePNG(w io.Writer, buf *core.PixelBuffer) error {
	if err := png.Encode(w, Image(buf)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the buffer to a PNG file.
func SavePNG(path string, buf *core.PixelBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	return EncodePNG(f, buf)
}
