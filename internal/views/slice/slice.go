// Package slice shows a vertical cross-section of the density field through
// the camera, looking north.
package slice

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"nimbus/internal/core"
	"nimbus/internal/frame"
	"nimbus/internal/shade"
	"nimbus/internal/views"
)

const (
	// HalfWidth is the horizontal reach either side of the camera.
	HalfWidth = 40.0
	// Ceiling is the altitude at the top row; the bottom row is the ground.
	Ceiling = 18.0
)

var (
	bandColor    = mgl32.Vec3{0.9, 0.2, 0.2}
	cumulusColor = mgl32.Vec3{0.9, 0.7, 0.2}
	cirrusColor  = mgl32.Vec3{0.2, 0.7, 0.9}
)

// View renders 1-exp(-density) in grayscale with the layer limits drawn as
// colored lines.
type View struct {
	*views.Base
}

// New creates the view from cfg.
func New(cfg views.Config) *View {
	return &View{Base: views.NewBase(cfg)}
}

// Name implements core.View.
func (v *View) Name() string { return "slice" }

// Step renders the section for the current clock.
func (v *View) Step(float64) {
	v.Render(Pixel)
}

// WorldAt maps a pixel to the point of the section it shows.
func WorldAt(fc *frame.Context, x, y int) mgl32.Vec3 {
	w, h := fc.Size()
	u := (float32(x) + 0.5) / float32(w)
	alt := Ceiling * (1 - (float32(y)+0.5)/float32(h))
	return mgl32.Vec3{fc.CameraPos[0] + (u*2-1)*HalfWidth, alt, fc.CameraPos[2]}
}

// Row returns the pixel row showing altitude alt.
func Row(h int, alt float32) int {
	return int(math32.Floor((1 - alt/Ceiling) * float32(h)))
}

// Pixel is the render.PixelFunc of the section.
func Pixel(fc *frame.Context, x, y int) mgl32.Vec3 {
	_, h := fc.Size()
	switch y {
	case Row(h, shade.CloudBottom), Row(h, shade.CloudTop):
		return bandColor
	case Row(h, shade.CumulusBottom), Row(h, shade.CumulusTop):
		return cumulusColor
	case Row(h, shade.CirrusBottom), Row(h, shade.CirrusTop):
		return cirrusColor
	}
	d := shade.Density(fc, WorldAt(fc, x, y))
	g := 1 - math32.Exp(-d)
	return mgl32.Vec3{g, g, g}
}

func init() {
	core.Register("slice", func(cfg map[string]string) core.View {
		return New(views.FromMap(cfg))
	})
}
