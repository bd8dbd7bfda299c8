package shade

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Filmic curve coefficients.
const (
	acesA = 2.51
	acesB = 0.03
	acesC = 2.43
	acesD = 0.59
	acesE = 0.14

	gamma = 1 / 2.2
)

// ToneMap compresses linear radiance with the filmic curve, clamps to
// [0,1] and gamma encodes each channel.
func ToneMap(c mgl32.Vec3) mgl32.Vec3 {
	var out mgl32.Vec3
	for i, x := range c {
		if math32.IsNaN(x) {
			x = 0
		}
		y := (x * (acesA*x + acesB)) / (x*(acesC*x+acesD) + acesE)
		if math32.IsNaN(y) {
			// +Inf in gives Inf/Inf.
			y = 1
		}
		out[i] = math32.Pow(mgl32.Clamp(y, 0, 1), gamma)
	}
	return out
}
