package frame

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownPreset is returned by Preset for names that were never registered.
var ErrUnknownPreset = errors.New("frame: unknown preset")

var (
	presetsMu sync.RWMutex
	presets   = map[string]func() CloudParams{}
)

// RegisterPreset adds a named parameter set. Later registrations replace
// earlier ones.
func RegisterPreset(name string, f func() CloudParams) {
	if name == "" || f == nil {
		return
	}
	presetsMu.Lock()
	defer presetsMu.Unlock()
	presets[name] = f
}

// Preset returns the parameters registered under name.
func Preset(name string) (CloudParams, error) {
	presetsMu.RLock()
	f, ok := presets[name]
	presetsMu.RUnlock()
	if !ok {
		return CloudParams{}, fmt.Errorf("preset %q: %w", name, ErrUnknownPreset)
	}
	return f(), nil
}

// Presets returns the registered names in sorted order.
func Presets() []string {
	presetsMu.RLock()
	defer presetsMu.RUnlock()
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// derive starts from the defaults and lets edit adjust them.
func derive(edit func(p *CloudParams)) func() CloudParams {
	return func() CloudParams {
		p := DefaultParams()
		edit(&p)
		return p
	}
}

func init() {
	RegisterPreset("default", DefaultParams)
	RegisterPreset("noon", derive(func(p *CloudParams) {
		p.SunX, p.SunY, p.SunZ = 0.2, 0.9, 0.3
		p.Coverage = 0.5
		p.Density = 1.2
		p.Haze = 0.1
	}))
	RegisterPreset("overcast", derive(func(p *CloudParams) {
		p.SunX, p.SunY, p.SunZ = 0.1, 0.6, 0.2
		p.Coverage = 0.9
		p.Density = 2.0
		p.Anisotropy = 0.4
		p.Haze = 0.5
		p.ColorR, p.ColorG, p.ColorB = 0.85, 0.85, 0.9
	}))
	RegisterPreset("storm", derive(func(p *CloudParams) {
		p.SunX, p.SunY, p.SunZ = 0.3, 0.35, 0.1
		p.Coverage = 0.85
		p.Density = 3.0
		p.WindSpeed = 1.6
		p.Anisotropy = 0.3
		p.Haze = 0.7
		p.ColorR, p.ColorG, p.ColorB = 0.55, 0.58, 0.65
	}))
	RegisterPreset("cirrus", derive(func(p *CloudParams) {
		p.SunX, p.SunY, p.SunZ = 0.4, 0.5, -0.3
		p.Coverage = 0.35
		p.Density = 0.8
		p.WindSpeed = 1.2
		p.Anisotropy = 0.9
	}))
	RegisterPreset("night", derive(func(p *CloudParams) {
		p.SunX, p.SunY, p.SunZ = 0.3, -0.2, 0.5
		p.Coverage = 0.55
		p.Density = 1.5
		p.ColorR, p.ColorG, p.ColorB = 0.7, 0.75, 0.9
	}))
	RegisterPreset("clear", derive(func(p *CloudParams) {
		p.SunX, p.SunY, p.SunZ = 0.3, 0.7, 0.4
		p.Coverage = 0
		p.Density = 0
		p.Haze = 0.05
	}))
}
