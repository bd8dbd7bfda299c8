// Package weather shows the local coverage maps of both cloud layers from
// above, centred on the camera.
package weather

import (
	"github.com/go-gl/mathgl/mgl32"

	"nimbus/internal/core"
	"nimbus/internal/frame"
	"nimbus/internal/shade"
	"nimbus/internal/views"
)

// Extent is the half-width of the mapped area in world units.
const Extent = 200.0

// sampleY is the altitude the low-layer weather map is read at.
const sampleY = (shade.CumulusBottom + shade.CumulusTop) / 2

// View maps low-layer coverage to red and high-layer coverage to green.
type View struct {
	*views.Base
}

// New creates the view from cfg.
func New(cfg views.Config) *View {
	return &View{Base: views.NewBase(cfg)}
}

// Name implements core.View.
func (v *View) Name() string { return "weather" }

// Step renders the map for the current clock.
func (v *View) Step(float64) {
	v.Render(Pixel)
}

// WorldAt maps a pixel to the ground point it shows. North (+z) is up and
// the camera sits at the centre.
func WorldAt(fc *frame.Context, x, y int) mgl32.Vec3 {
	w, h := fc.Size()
	aspect := float32(h) / float32(w)
	u := (float32(x)+0.5)/float32(w) - 0.5
	vv := 0.5 - (float32(y)+0.5)/float32(h)
	return mgl32.Vec3{
		fc.CameraPos[0] + u*2*Extent,
		sampleY,
		fc.CameraPos[2] + vv*2*Extent*aspect,
	}
}

// Pixel is the render.PixelFunc of the weather map.
func Pixel(fc *frame.Context, x, y int) mgl32.Vec3 {
	w, h := fc.Size()
	if x == w/2 || y == h/2 {
		if abs(x-w/2)+abs(y-h/2) < 4 {
			return mgl32.Vec3{1, 1, 1}
		}
	}
	low, high := shade.WeatherCoverage(fc, WorldAt(fc, x, y))
	return mgl32.Vec3{low, high, 0.15}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func init() {
	core.Register("weather", func(cfg map[string]string) core.View {
		return New(views.FromMap(cfg))
	})
}
