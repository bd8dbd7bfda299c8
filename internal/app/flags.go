package app

import (
	"flag"
	"strconv"
	"strings"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the pairs, ignoring entries without '='. Later pairs win.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		m[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return m
}

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	View   string
	Width  int
	Height int
	FPS    int
	Seed   int64
	Preset string
	Params string
	HUD    bool
	Sets   KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{View: "clouds", Width: 960, Height: 540, FPS: 30, HUD: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.View, "view", c.View, "view to show (clouds, weather, slice)")
	fs.IntVar(&c.Width, "width", c.Width, "viewport width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "viewport height in pixels")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames rendered per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for view reset")
	fs.StringVar(&c.Preset, "preset", c.Preset, "named parameter preset")
	fs.StringVar(&c.Params, "params", c.Params, "JSON parameter file")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
	fs.Var(&c.Sets, "set", "parameter override in key=value form (repeatable)")
}

// ViewConfig flattens the flags into the string map view factories accept.
func (c *Config) ViewConfig() map[string]string {
	m := c.Sets.Map()
	m["w"] = strconv.Itoa(c.Width)
	m["h"] = strconv.Itoa(c.Height)
	m["seed"] = strconv.FormatInt(c.Seed, 10)
	if c.Preset != "" {
		m["preset"] = c.Preset
	}
	if c.Params != "" {
		m["params"] = c.Params
	}
	return m
}
