package shade

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"nimbus/internal/frame"
)

// SlabRange returns the ray parameter interval inside the cloud band for a
// ray starting at altitude camY with vertical direction component dirY.
// ok is false when the ray never enters the band.
func SlabRange(camY, dirY float32) (tStart, tEnd float32, ok bool) {
	switch {
	case camY < CloudBottom:
		if dirY <= 0 {
			return 0, 0, false
		}
		return (CloudBottom - camY) / dirY, (CloudTop - camY) / dirY, true
	case camY > CloudTop:
		if dirY >= 0 {
			return 0, 0, false
		}
		return (CloudTop - camY) / dirY, (CloudBottom - camY) / dirY, true
	}
	// Inside the band a level ray would never leave it; march a fixed reach.
	if math32.Abs(dirY) < horizontalSlopeY {
		return 0, HorizontalReach, true
	}
	if dirY > 0 {
		return 0, (CloudTop - camY) / dirY, true
	}
	return 0, (CloudBottom - camY) / dirY, true
}

// StepCount rounds the requested sample budget and bounds it to
// [1, MaxMarchSteps].
func StepCount(steps float32) int {
	if math32.IsNaN(steps) {
		return 1
	}
	return int(math32.Floor(mgl32.Clamp(steps, 1, MaxMarchSteps) + 0.5))
}

// MarchState is the per-ray accumulator of the front-to-back integration.
type MarchState struct {
	Transmittance float32
	Scattered     mgl32.Vec3
	WeightedDepth float32
	TotalAlpha    float32

	TStart, TEnd float32
	// Samples counts steps that found density.
	Samples int
}

// AvgDepth is the opacity-weighted mean distance of the cloud along the
// ray, or TEnd when the ray saw essentially no cloud.
func (m *MarchState) AvgDepth() float32 {
	if m.TotalAlpha > AlphaEpsilon {
		return m.WeightedDepth / m.TotalAlpha
	}
	return m.TEnd
}

// Opacity is 1 - Transmittance.
func (m *MarchState) Opacity() float32 { return 1 - m.Transmittance }

// March integrates the cloud band along rayDir from the camera. jitter in
// [0,1) offsets the first sample by a fraction of a step. observe, if
// non-nil, is called after every sample that found density. ok is false
// when the ray misses the band; the returned state is then fully
// transparent.
func March(fc *frame.Context, rayDir mgl32.Vec3, jitter float32, observe func(*MarchState)) (MarchState, bool) {
	st := MarchState{Transmittance: 1}
	ro := fc.CameraPos
	tStart, tEnd, ok := SlabRange(ro[1], rayDir[1])
	if !ok || !(tEnd > tStart) {
		// Sitting on a band boundary and looking out of it leaves nothing
		// to integrate.
		return st, false
	}
	st.TStart, st.TEnd = tStart, tEnd

	steps := StepCount(fc.Steps)
	stepSize := (tEnd - tStart) / float32(steps)
	t := tStart + stepSize*jitter

	for i := 0; i < steps; i++ {
		if st.Transmittance < MinTransmittance || t > tEnd {
			break
		}
		p := ro.Add(rayDir.Mul(t))
		d := Density(fc, p)
		if d > DensityEpsilon {
			light := Light(fc, p, rayDir, d)
			stepT := math32.Exp(-d * ExtinctionFactor * stepSize)
			absorbed := st.Transmittance * (1 - stepT)

			st.WeightedDepth += t * absorbed
			st.TotalAlpha += absorbed
			st.Scattered = st.Scattered.Add(light.Mul(absorbed))
			st.Transmittance *= stepT
			st.Samples++
			if observe != nil {
				observe(&st)
			}
		}
		t += stepSize
	}
	return st, true
}

// Composite fogs the marched cloud toward the horizon color by its mean
// depth and lays it over the background.
func Composite(fc *frame.Context, rayDir, background mgl32.Vec3, st *MarchState) mgl32.Vec3 {
	fogDensity := CloudFog * (1 + fc.Haze*CloudFogHaze)
	atm := math32.Exp(-st.AvgDepth() * fogDensity)
	horizon := HorizonColor(rayDir, fc.SunDir)
	fogged := st.Scattered.Mul(atm).Add(horizon.Mul((1 - atm) * st.Opacity()))
	return background.Mul(st.Transmittance).Add(fogged)
}
