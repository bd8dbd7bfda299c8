package shade

import (
	"github.com/go-gl/mathgl/mgl32"

	"nimbus/internal/frame"
	"nimbus/internal/noise"
)

// WeatherCoverage returns the local coverage of the low and high layers at
// p: the global coverage shifted by the slow weather maps and clamped to
// [0,1].
func WeatherCoverage(fc *frame.Context, p mgl32.Vec3) (low, high float32) {
	time := fc.WindTime()
	return lowCoverage(p, fc.Coverage, time), highCoverage(p, fc.Coverage, time)
}

func lowCoverage(p mgl32.Vec3, coverage, time float32) float32 {
	w := noise.Noise(p.Mul(WeatherScale).Add(mgl32.Vec3{time * WeatherDrift, 0, 0}))
	return mgl32.Clamp(coverage+(w-0.5)*WeatherGain, 0, 1)
}

func highCoverage(p mgl32.Vec3, coverage, time float32) float32 {
	w := noise.Noise(mulv(p, HighWeatherAxes).Add(mgl32.Vec3{time * HighWeatherDrift, 0, 0}))
	return mgl32.Clamp(coverage+(w-0.5)*HighWeatherGain, 0, 1)
}

// Warp is the scalar domain-warp amount at p.
func Warp(fc *frame.Context, p mgl32.Vec3) float32 {
	time := fc.WindTime()
	a := noise.Noise(p.Mul(WarpScaleA).Add(mgl32.Vec3{time * WarpDriftA, 0, 0}))
	b := noise.Noise(p.Mul(WarpScaleB).Sub(mgl32.Vec3{0, time * WarpRiseB, 0}))
	return a + b*WarpWeightB
}

// Density is the cloud density at world point p, zero outside the cloud band.
func Density(fc *frame.Context, p mgl32.Vec3) float32 {
	if p[1] < CloudBottom || p[1] > CloudTop {
		return 0
	}
	time := fc.WindTime()

	lowThresh := 1 - lowCoverage(p, fc.Coverage, time)
	// Only the vertical displacement selects layers; the shapes themselves
	// are sampled on the unwarped position.
	warpedY := p[1] + (Warp(fc, p)-WarpBias)*WarpLift

	var d float32
	d += cumulus(p, time, warpedY, lowThresh)
	d += cirrus(p, fc.Coverage, time, warpedY)
	return d * fc.DensityMultiplier
}

func cumulus(p mgl32.Vec3, time, y, thresh float32) float32 {
	if y <= CumulusBottom || y >= CumulusTop {
		return 0
	}
	h := (y - CumulusBottom) / (CumulusTop - CumulusBottom)
	mask := smoothstep(0, 0.2, h) * smoothstep(1, 0.5, h)
	if mask <= LayerMaskCutoff {
		return 0
	}
	pl := p.Add(mgl32.Vec3{time * CumulusWind, 0, 0})
	d := noise.Remap(noise.FBMBase(pl.Mul(CumulusScale)), thresh-CumulusSoftEdge, 1, 0, 1)
	if d <= 0 {
		return 0
	}
	d -= noise.FBMDetail(pl.Mul(CumulusDetailScale)) * CumulusErosion * (1 - d)
	if d < 0 {
		d = 0
	}
	return d * mask * CumulusGain
}

func cirrus(p mgl32.Vec3, coverage, time, y float32) float32 {
	if y <= CirrusBottom || y >= CirrusTop {
		return 0
	}
	thresh := 1 - highCoverage(p, coverage, time)

	h := (y - CirrusBottom) / (CirrusTop - CirrusBottom)
	mask := smoothstep(0, 0.2, h) * smoothstep(1, 0.8, h)
	if mask <= LayerMaskCutoff {
		return 0
	}
	pc := mulv(p.Add(mgl32.Vec3{time * CirrusWind, 0, 0}), CirrusAxes)
	d := noise.Remap(noise.FBMDetail(pc), thresh*CirrusThreshold, 1, 0, 1)
	if d < 0 {
		d = 0
	}
	return d * mask * CirrusGain
}
