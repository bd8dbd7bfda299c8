//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads RGBA frames into an ebiten image and stretches them
// over the destination. The image is reallocated when the frame size
// changes with the resolution scale.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
}

// NewFramePainter allocates a painter for w×h frames.
func NewFramePainter(w, h int) *FramePainter {
	fp := &FramePainter{}
	fp.resize(w, h)
	return fp
}

func (fp *FramePainter) resize(w, h int) {
	if fp.img != nil && fp.w == w && fp.h == h {
		return
	}
	if fp.img != nil {
		fp.img.Dispose()
	}
	fp.w, fp.h = w, h
	fp.img = ebiten.NewImage(w, h)
}

// Blit uploads pix (4*w*h bytes) and draws it scaled to fill dst.
func (fp *FramePainter) Blit(dst *ebiten.Image, pix []byte, w, h int) {
	if w <= 0 || h <= 0 || len(pix) != 4*w*h {
		return
	}
	fp.resize(w, h)
	fp.img.WritePixels(pix)

	b := dst.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx())/float64(w), float64(b.Dy())/float64(h))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
