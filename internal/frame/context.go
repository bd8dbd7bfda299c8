package frame

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Basis is the camera position and orthonormal view frame for one frame.
type Basis struct {
	Pos   mgl32.Vec3
	Dir   mgl32.Vec3
	Up    mgl32.Vec3
	Right mgl32.Vec3
}

// Context is everything a pixel evaluation may read. A Context is built once
// per frame and never mutated while the frame is rendering; workers share it
// by pointer.
type Context struct {
	Resolution mgl32.Vec2
	Time       float32

	CameraPos   mgl32.Vec3
	CameraDir   mgl32.Vec3
	CameraUp    mgl32.Vec3
	CameraRight mgl32.Vec3

	SunDir mgl32.Vec3
	Haze   float32

	CloudColor        mgl32.Vec3
	DensityMultiplier float32

	Coverage   float32
	WindSpeed  float32
	Anisotropy float32
	Steps      float32
}

// NewContext assembles the frame context for an output of w×h pixels at the
// given time in seconds. Params are clamped and the sun is normalized here.
func NewContext(p CloudParams, cam Basis, w, h int, seconds float64) Context {
	p = p.Clamped()
	return Context{
		Resolution:        mgl32.Vec2{float32(max(w, 1)), float32(max(h, 1))},
		Time:              float32(seconds),
		CameraPos:         cam.Pos,
		CameraDir:         cam.Dir,
		CameraUp:          cam.Up,
		CameraRight:       cam.Right,
		SunDir:            p.SunDirection(),
		Haze:              float32(p.Haze),
		CloudColor:        p.CloudColor(),
		DensityMultiplier: float32(p.Density),
		Coverage:          float32(p.Coverage),
		WindSpeed:         float32(p.WindSpeed),
		Anisotropy:        float32(p.Anisotropy),
		Steps:             float32(p.Steps),
	}
}

// Size returns the output dimensions in pixels.
func (c *Context) Size() (int, int) {
	return int(c.Resolution[0]), int(c.Resolution[1])
}

// WindTime is the advection clock shared by every wind-driven term.
func (c *Context) WindTime() float32 {
	return c.Time * c.WindSpeed
}

// LimitResolution bounds the output size to [1,maxW]×[1,maxH] whole pixels.
// Non-finite or non-positive components become 1.
func (c *Context) LimitResolution(maxW, maxH int) {
	c.Resolution = mgl32.Vec2{limitDim(c.Resolution[0], maxW), limitDim(c.Resolution[1], maxH)}
}

func limitDim(v float32, limit int) float32 {
	limit = max(limit, 1)
	if !(v >= 1) {
		return 1
	}
	if v > float32(limit) {
		return float32(limit)
	}
	return float32(math.Floor(float64(v)))
}
