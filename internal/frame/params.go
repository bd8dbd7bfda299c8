// Package frame holds the per-frame data model: the externally produced
// CloudParams, the immutable Context every shading function reads, and the
// packed uniform payload exchanged with other implementations.
package frame

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
)

// Parameter ranges accepted from the UI or a generator.
const (
	MinDensity    = 0.0
	MaxDensity    = 3.0
	MaxWindSpeed  = 2.0
	MaxAnisotropy = 0.95
	MinResolution = 0.1
	MaxResolution = 1.0
	MinSteps      = 16
	MaxSteps      = 128
)

// CloudParams are the user-facing controls. JSON names match the producer
// that generates them so payloads can be exchanged verbatim.
type CloudParams struct {
	Density    float64 `json:"density"`
	Coverage   float64 `json:"coverage"`
	SunX       float64 `json:"sunX"`
	SunY       float64 `json:"sunY"`
	SunZ       float64 `json:"sunZ"`
	WindSpeed  float64 `json:"windSpeed"`
	ColorR     float64 `json:"colorR"`
	ColorG     float64 `json:"colorG"`
	ColorB     float64 `json:"colorB"`
	Anisotropy float64 `json:"scatteringAnisotropy"`
	Resolution float64 `json:"resolution"`
	Steps      float64 `json:"steps"`
	Haze       float64 `json:"haze"`
}

// DefaultParams returns the golden-hour look the renderer starts with.
func DefaultParams() CloudParams {
	return CloudParams{
		Density:    1.8,
		Coverage:   0.6,
		SunX:       0.6,
		SunY:       0.2,
		SunZ:       0.4,
		WindSpeed:  0.5,
		ColorR:     1.0,
		ColorG:     1.0,
		ColorB:     1.0,
		Anisotropy: 0.8,
		Resolution: 0.5,
		Steps:      64,
		Haze:       0.2,
	}
}

// Clamped returns a copy with every field forced into its documented range.
// NaN fields fall back to the default value.
func (p CloudParams) Clamped() CloudParams {
	d := DefaultParams()
	p.Density = clampOr(p.Density, MinDensity, MaxDensity, d.Density)
	p.Coverage = clampOr(p.Coverage, 0, 1, d.Coverage)
	p.WindSpeed = clampOr(p.WindSpeed, 0, MaxWindSpeed, d.WindSpeed)
	p.ColorR = clampOr(p.ColorR, 0, 1, d.ColorR)
	p.ColorG = clampOr(p.ColorG, 0, 1, d.ColorG)
	p.ColorB = clampOr(p.ColorB, 0, 1, d.ColorB)
	p.Anisotropy = clampOr(p.Anisotropy, 0, MaxAnisotropy, d.Anisotropy)
	p.Resolution = clampOr(p.Resolution, MinResolution, MaxResolution, d.Resolution)
	p.Steps = clampOr(p.Steps, MinSteps, MaxSteps, d.Steps)
	p.Haze = clampOr(p.Haze, 0, 1, d.Haze)
	if !finite(p.SunX) || !finite(p.SunY) || !finite(p.SunZ) {
		p.SunX, p.SunY, p.SunZ = d.SunX, d.SunY, d.SunZ
	}
	return p
}

// SunDirection normalizes the sun components, substituting straight up when
// the vector has no usable length.
func (p CloudParams) SunDirection() mgl32.Vec3 {
	l := math.Sqrt(p.SunX*p.SunX + p.SunY*p.SunY + p.SunZ*p.SunZ)
	if !(l > 1e-6) || math.IsInf(l, 0) {
		return mgl32.Vec3{0, 1, 0}
	}
	return mgl32.Vec3{float32(p.SunX / l), float32(p.SunY / l), float32(p.SunZ / l)}
}

// CloudColor returns the tint as a vector.
func (p CloudParams) CloudColor() mgl32.Vec3 {
	return mgl32.Vec3{float32(p.ColorR), float32(p.ColorG), float32(p.ColorB)}
}

// OutputSize scales a viewport by the resolution factor. Both dimensions are
// at least one pixel.
func (p CloudParams) OutputSize(viewW, viewH int) (int, int) {
	res := clampOr(p.Resolution, MinResolution, MaxResolution, DefaultParams().Resolution)
	w := int(math.Floor(float64(viewW) * res))
	h := int(math.Floor(float64(viewH) * res))
	return max(w, 1), max(h, 1)
}

// Keys lists the flag-style names understood by Set and FromMap.
func Keys() []string {
	return []string{
		"density", "coverage", "sun_x", "sun_y", "sun_z", "wind_speed",
		"color_r", "color_g", "color_b", "anisotropy", "resolution", "steps", "haze",
	}
}

// Get returns the value stored under a flag-style key.
func (p *CloudParams) Get(key string) (float64, bool) {
	if f := p.field(key); f != nil {
		return *f, true
	}
	return 0, false
}

// Set assigns a value by flag-style key. It reports false for unknown keys.
func (p *CloudParams) Set(key string, value float64) bool {
	f := p.field(key)
	if f == nil {
		return false
	}
	*f = value
	return true
}

func (p *CloudParams) field(key string) *float64 {
	switch key {
	case "density":
		return &p.Density
	case "coverage":
		return &p.Coverage
	case "sun_x":
		return &p.SunX
	case "sun_y":
		return &p.SunY
	case "sun_z":
		return &p.SunZ
	case "wind_speed":
		return &p.WindSpeed
	case "color_r":
		return &p.ColorR
	case "color_g":
		return &p.ColorG
	case "color_b":
		return &p.ColorB
	case "anisotropy":
		return &p.Anisotropy
	case "resolution":
		return &p.Resolution
	case "steps":
		return &p.Steps
	case "haze":
		return &p.Haze
	}
	return nil
}

// FromMap populates params from a string map (flag-style key/value pairs),
// starting from the defaults. Values that fail to parse are ignored.
func FromMap(cfg map[string]string) CloudParams {
	p := DefaultParams()
	p.Apply(cfg)
	return p
}

// Apply overrides the fields named in cfg and returns the keys it used.
func (p *CloudParams) Apply(cfg map[string]string) []string {
	var used []string
	for _, key := range Keys() {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		p.Set(key, parsed)
		used = append(used, key)
	}
	return used
}

func clampOr(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return math.Min(math.Max(v, lo), hi)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
