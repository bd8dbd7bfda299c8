package views

import (
	"log"
	"strconv"

	"nimbus/internal/frame"
)

// Config controls viewport size and the starting parameters of a view.
type Config struct {
	// Width and Height are the viewport in screen pixels. The rendered
	// frame is this size scaled by Params.Resolution.
	Width  int
	Height int

	Seed    int64
	Workers int

	Params frame.CloudParams
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  960,
		Height: 540,
		Params: frame.DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs). A "preset" key selects the starting parameters, "params" loads
// them from a JSON file, and individual parameter keys override both.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if name, ok := cfg["preset"]; ok {
		if p, err := frame.Preset(name); err == nil {
			c.Params = p
		} else {
			log.Printf("views: %v", err)
		}
	}
	if path, ok := cfg["params"]; ok {
		if p, err := frame.Load(path); err == nil {
			c.Params = p
		} else {
			log.Printf("views: %v", err)
		}
	}
	c.Params.Apply(cfg)
	return c
}
