package shade

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sky returns the analytic sky radiance along rayDir. The gradient blends
// day, sunset and night palettes on the sun's elevation and always carries
// the soft glow around the sun. The sharp disk is added only when
// includeDisk is set: fog, ambient and horizon samples must never see it.
func Sky(rayDir, sunDir mgl32.Vec3, includeDisk bool) mgl32.Vec3 {
	sunY := math32.Max(sunDir[1], MinSunHeight)

	day := smoothstep(0, DayRampTop, sunY)
	night := smoothstep(NightRampHigh, NightRampLow, sunY)

	zenith := mixv(mixv(ZenithSunset, ZenithDay, day), ZenithNight, night)
	horizon := mixv(mixv(HorizonSunset, HorizonDay, day), HorizonNight, night)

	up := math32.Max(rayDir[1], 0)
	col := mixv(horizon, zenith, math32.Pow(up, SkyCurve))

	sunDot := math32.Max(rayDir.Dot(sunDir), 0)
	sunColor := mixv(SunLow, SunHigh, smoothstep(0, 0.3, sunY))

	glow := math32.Pow(sunDot, GlowPower) * GlowGain * smoothstep(MinSunHeight, 0, sunDir[1])
	col = col.Add(sunColor.Mul(glow))

	if includeDisk {
		disk := smoothstep(DiskInner, DiskOuter, sunDot) * DiskGain * smoothstep(-0.05, 0.05, sunDir[1])
		col = col.Add(sunColor.Mul(disk))
	}
	return col
}

// HorizonColor is the sky directly below rayDir on the horizon, used as the
// fog color for both ground and clouds.
func HorizonColor(rayDir, sunDir mgl32.Vec3) mgl32.Vec3 {
	return Sky(mgl32.Vec3{rayDir[0], 0, rayDir[2]}, sunDir, false)
}
