package noise

import "github.com/go-gl/mathgl/mgl32"

const (
	// rotCos and rotSin rotate each octave about the vertical axis so that
	// successive octaves do not share a lattice.
	rotCos = 0.8
	rotSin = 0.6

	baseOctaves    = 4
	baseLacunarity = 2.02
	// BaseNorm is 0.5+0.25+0.125+0.0625.
	BaseNorm = 0.9375

	detailOctaves    = 5
	detailLacunarity = 2.03
	// DetailNorm is BaseNorm+0.03125.
	DetailNorm = 0.96875
)

func rotateY(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		rotCos*p[0] - rotSin*p[2],
		p[1],
		rotSin*p[0] + rotCos*p[2],
	}
}

func fbm(p mgl32.Vec3, octaves int, lacunarity, norm float32) float32 {
	var sum float32
	amp := float32(0.5)
	for i := 0; i < octaves; i++ {
		sum += amp * Noise(p)
		p = rotateY(p).Mul(lacunarity)
		amp *= 0.5
	}
	return sum / norm
}

// FBMBase is the four-octave sum used for coarse cloud shapes. Output lies
// in [0,1).
func FBMBase(p mgl32.Vec3) float32 {
	return fbm(p, baseOctaves, baseLacunarity, BaseNorm)
}

// FBMDetail is the five-octave sum used to erode cloud edges.
func FBMDetail(p mgl32.Vec3) float32 {
	return fbm(p, detailOctaves, detailLacunarity, DetailNorm)
}

// AmplitudeSum returns the geometric series 0.5+0.25+... over n octaves.
func AmplitudeSum(octaves int) float32 {
	var sum float32
	amp := float32(0.5)
	for i := 0; i < octaves; i++ {
		sum += amp
		amp *= 0.5
	}
	return sum
}

// Remap clamps v to [oldMin,oldMax] and rescales it linearly to
// [newMin,newMax]. An empty source range maps everything to newMin rather
// than dividing by zero.
func Remap(v, oldMin, oldMax, newMin, newMax float32) float32 {
	span := oldMax - oldMin
	if span < 1e-6 && span > -1e-6 {
		return newMin
	}
	v = mgl32.Clamp(v, oldMin, oldMax)
	return newMin + (v-oldMin)*(newMax-newMin)/span
}
