// Package shade evaluates the cloud and sky model for single pixels. Every
// function reads an immutable *frame.Context and is safe to call from any
// number of goroutines at once.
package shade

import "github.com/go-gl/mathgl/mgl32"

// Cloud band altitudes in world units.
const (
	CloudBottom = 1.0
	CloudTop    = 16.0

	CumulusBottom = 3.0
	CumulusTop    = 8.0
	CirrusBottom  = 10.0
	CirrusTop     = 14.0
)

// Density field.
const (
	WeatherScale       = 0.03
	WeatherDrift       = 0.1
	WeatherGain        = 1.2
	HighWeatherGain    = 0.8
	HighWeatherDrift   = 0.2
	WarpScaleA         = 0.15
	WarpScaleB         = 0.4
	WarpDriftA         = 0.1
	WarpRiseB          = 0.2
	WarpWeightB        = 0.5
	CumulusWind        = 0.5
	CumulusScale       = 0.15
	CumulusSoftEdge    = 0.05
	CumulusDetailScale = 2.5
	CumulusErosion     = 0.35
	CumulusGain        = 2.5
	CirrusWind         = 1.2
	CirrusThreshold    = 0.9
	CirrusGain         = 1.8
	LayerMaskCutoff    = 0.01
)

var (
	// HighWeatherAxes squashes the cirrus weather map; y is ignored.
	HighWeatherAxes = mgl32.Vec3{0.05, 0, 0.1}
	// CirrusAxes stretches cirrus along x and z.
	CirrusAxes = mgl32.Vec3{0.1, 0.5, 0.1}
)

// The warped altitude is y + (warp-WarpBias)*WarpLift.
const (
	WarpBias = 0.6
	WarpLift = 6.0
)

// Sky palettes.
var (
	ZenithDay     = mgl32.Vec3{0.1, 0.4, 0.85}
	HorizonDay    = mgl32.Vec3{0.6, 0.8, 0.95}
	ZenithSunset  = mgl32.Vec3{0.05, 0.1, 0.25}
	HorizonSunset = mgl32.Vec3{0.95, 0.45, 0.1}
	ZenithNight   = mgl32.Vec3{0.0, 0.0, 0.02}
	HorizonNight  = mgl32.Vec3{0.01, 0.02, 0.08}

	SunLow  = mgl32.Vec3{1.0, 0.3, 0.05}
	SunHigh = mgl32.Vec3{1.0, 1.0, 0.9}
)

// Sky shape.
const (
	SkyCurve      = 0.6
	GlowPower     = 128.0
	GlowGain      = 0.6
	DiskInner     = 0.999
	DiskOuter     = 0.9995
	DiskGain      = 10.0
	MinSunHeight  = -0.1
	DayRampTop    = 0.4
	NightRampHigh = 0.1
	NightRampLow  = -0.1
)

// Lighting.
var (
	LightLow      = mgl32.Vec3{1.0, 0.4, 0.1}
	LightHigh     = mgl32.Vec3{1.0, 0.95, 0.9}
	GroundAmbient = mgl32.Vec3{0.1, 0.1, 0.12}.Mul(0.3)
)

const (
	ShadowSteps      = 4
	ShadowStepSize   = 1.0
	PowderStrength   = 2.0
	BackScatterG     = -0.3
	BackScatterMix   = 0.4
	AmbientDesat     = 0.6
	AmbientSkyGain   = 0.8
	AmbientSpan      = CirrusTop - CumulusBottom
	DirectGain       = 6.0
	LuminanceWeight  = 0.33
	ExtinctionFactor = 0.8
	DensityEpsilon   = 0.001
	MinTransmittance = 0.01
	AlphaEpsilon     = 0.001
	MaxMarchSteps    = 128
)

// Ground and atmosphere.
var (
	GroundDark  = mgl32.Vec3{0.02, 0.02, 0.03}
	GroundLight = mgl32.Vec3{0.04, 0.04, 0.05}
)

const (
	TileScale        = 0.25
	GroundFog        = 0.02
	GroundFogHaze    = 5.0
	CloudFog         = 0.04
	CloudFogHaze     = 2.0
	HorizontalReach  = 200.0
	horizontalSlopeY = 1e-6
)
