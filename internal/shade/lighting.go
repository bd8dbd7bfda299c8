package shade

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"nimbus/internal/frame"
)

// HenyeyGreenstein evaluates the phase function for asymmetry g at the
// given cosine between view and light directions.
func HenyeyGreenstein(cosAngle, g float32) float32 {
	g2 := g * g
	return (1 - g2) / (4 * 3.14159 * math32.Pow(1+g2-2*g*cosAngle, 1.5))
}

// Phase blends the tunable forward lobe with a fixed backward lobe.
func Phase(cosAngle, anisotropy float32) float32 {
	return mix(HenyeyGreenstein(cosAngle, anisotropy), HenyeyGreenstein(cosAngle, BackScatterG), BackScatterMix)
}

// ShadowTransmittance marches toward the sun from p and returns how much
// direct light survives.
func ShadowTransmittance(fc *frame.Context, p mgl32.Vec3) float32 {
	var sum float32
	pos := p
	step := fc.SunDir.Mul(ShadowStepSize)
	for i := 0; i < ShadowSteps; i++ {
		pos = pos.Add(step)
		if pos[1] > CloudTop {
			break
		}
		sum += Density(fc, pos) * ShadowStepSize
	}
	return math32.Exp(-sum)
}

// Ambient is the sky and ground fill light at altitude y.
func Ambient(sunDir mgl32.Vec3, y float32) mgl32.Vec3 {
	raw := Sky(mgl32.Vec3{0, 1, 0}, sunDir, false)
	sky := mixv(raw, splat(raw.Dot(splat(LuminanceWeight))), AmbientDesat)
	h := mgl32.Clamp((y-CumulusBottom)/AmbientSpan, 0, 1)
	return mixv(GroundAmbient, sky.Mul(AmbientSkyGain), h)
}

// Light is the in-scattered radiance toward the camera from a sample of the
// given density at p, tinted by the cloud color.
func Light(fc *frame.Context, p, rayDir mgl32.Vec3, density float32) mgl32.Vec3 {
	sun := fc.SunDir
	direct := ShadowTransmittance(fc, p)
	powder := 1 - math32.Exp(-density*PowderStrength)
	ph := Phase(rayDir.Dot(sun), fc.Anisotropy)

	sunColor := mixv(LightLow, LightHigh, smoothstep(0, 0.3, sun[1]))
	sunPower := smoothstep(-0.1, 0.1, sun[1])

	col := sunColor.Mul(direct * ph * powder * DirectGain * sunPower).Add(Ambient(sun, p[1]))
	return mulv(col, fc.CloudColor)
}
