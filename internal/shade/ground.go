package shade

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"nimbus/internal/frame"
)

// GroundTile returns the unfogged checkerboard color at a point on the
// ground plane.
func GroundTile(pos mgl32.Vec3) mgl32.Vec3 {
	fx := math32.Floor(pos[0] * TileScale)
	fz := math32.Floor(pos[2] * TileScale)
	if fract((fx+fz)*0.5) > 0.01 {
		return GroundLight
	}
	return GroundDark
}

// Ground intersects the ray with the y=0 plane. When it hits, the returned
// color is the fogged tile and replaces the sky entirely.
func Ground(fc *frame.Context, rayDir mgl32.Vec3) (mgl32.Vec3, bool) {
	if rayDir[1] >= 0 {
		return mgl32.Vec3{}, false
	}
	t := -fc.CameraPos[1] / rayDir[1]
	if !(t > 0) {
		return mgl32.Vec3{}, false
	}
	pos := fc.CameraPos.Add(rayDir.Mul(t))
	fog := 1 - math32.Exp(-t*GroundFog*(1+fc.Haze*GroundFogHaze))
	return mixv(GroundTile(pos), HorizonColor(rayDir, fc.SunDir), fog), true
}
