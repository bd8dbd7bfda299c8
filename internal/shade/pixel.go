package shade

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"nimbus/internal/frame"
)

// PixelUV maps a pixel center to screen UV. Row 0 is the top of the image,
// so v runs from 1 at the top to 0 at the bottom.
func PixelUV(x, y, w, h int) mgl32.Vec2 {
	return mgl32.Vec2{
		(float32(x) + 0.5) / float32(w),
		1 - (float32(y)+0.5)/float32(h),
	}
}

// CameraRay returns the normalized view ray through uv.
func CameraRay(fc *frame.Context, uv mgl32.Vec2) mgl32.Vec3 {
	aspect := float32(1)
	if fc.Resolution[1] > 0 {
		aspect = fc.Resolution[0] / fc.Resolution[1]
	}
	nx := (uv[0] - 0.5) * 2 * aspect
	ny := (uv[1] - 0.5) * 2
	ray := fc.CameraDir.Add(fc.CameraRight.Mul(nx)).Add(fc.CameraUp.Mul(ny))
	if l := ray.Len(); l > 0 {
		return ray.Mul(1 / l)
	}
	return mgl32.Vec3{0, 0, 1}
}

// Jitter is the per-pixel dither in [0,1) applied to the first march step.
func Jitter(uv mgl32.Vec2) float32 {
	return fract(math32.Sin(uv.Dot(mgl32.Vec2{12.9898, 78.233})) * 43758.5453)
}

// Background is the sky with the sun disk, replaced by the fogged ground
// when the ray hits it.
func Background(fc *frame.Context, rayDir mgl32.Vec3) mgl32.Vec3 {
	if g, hit := Ground(fc, rayDir); hit {
		return g
	}
	return Sky(rayDir, fc.SunDir, true)
}

// Linear evaluates the full pipeline for one screen position up to, but not
// including, tone mapping.
func Linear(fc *frame.Context, uv mgl32.Vec2) mgl32.Vec3 {
	ray := CameraRay(fc, uv)
	col := Background(fc, ray)
	if st, ok := March(fc, ray, Jitter(uv), nil); ok {
		col = Composite(fc, ray, col, &st)
	}
	return col
}

// ShadeUV returns the display color at uv.
func ShadeUV(fc *frame.Context, uv mgl32.Vec2) mgl32.Vec3 {
	return ToneMap(Linear(fc, uv))
}

// Shade returns the display color of pixel (x, y) of the context's
// resolution.
func Shade(fc *frame.Context, x, y int) mgl32.Vec3 {
	w, h := fc.Size()
	return ShadeUV(fc, PixelUV(x, y, w, h))
}

// Project maps a world direction back to screen UV, inverting CameraRay for
// an orthonormal camera basis. ok is false for directions behind the camera.
func Project(fc *frame.Context, dir mgl32.Vec3) (mgl32.Vec2, bool) {
	z := dir.Dot(fc.CameraDir)
	if z <= 0 {
		return mgl32.Vec2{}, false
	}
	aspect := float32(1)
	if fc.Resolution[1] > 0 {
		aspect = fc.Resolution[0] / fc.Resolution[1]
	}
	nx := dir.Dot(fc.CameraRight) / z
	ny := dir.Dot(fc.CameraUp) / z
	return mgl32.Vec2{nx/(2*aspect) + 0.5, ny/2 + 0.5}, true
}
