// Package views hosts the frame sources shown by the viewer, the preview
// server and the headless tools. Base carries the state they share; the
// subpackages register concrete views with core.Register.
package views

import (
	"context"
	"log"
	"strconv"
	"time"

	"nimbus/internal/camera"
	"nimbus/internal/core"
	"nimbus/internal/frame"
	"nimbus/internal/render"
)

// Base owns the parameters, camera, clock and frame buffer of a view.
// It is not safe for concurrent use; hosts serialize access.
type Base struct {
	cfg Config

	params frame.CloudParams
	cam    camera.State
	clock  *core.FrameClock
	offset float64

	renderer *render.Renderer
	buf      *core.PixelBuffer

	pending  *frame.Context
	last     frame.Context
	lastCost time.Duration
}

// NewBase builds the shared state from cfg.
func NewBase(cfg Config) *Base {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		d := DefaultConfig()
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	b := &Base{
		cfg:      cfg,
		params:   cfg.Params.Clamped(),
		clock:    core.NewFrameClock(),
		renderer: render.NewRenderer(cfg.Workers),
	}
	w, h := b.params.OutputSize(cfg.Width, cfg.Height)
	b.buf = core.NewPixelBuffer(w, h)
	b.Reset(cfg.Seed)
	return b
}

// Reset restores the start pose and restarts the clock. The seed shifts
// the wind clock so different seeds show different skies.
func (b *Base) Reset(seed int64) {
	b.cam = camera.New()
	b.clock.Reset()
	b.offset = float64(seed%1000) * 7
	b.pending = nil
}

// Size returns the rendered frame size.
func (b *Base) Size() core.Size { return b.buf.Size() }

// Pixels returns the last rendered frame.
func (b *Base) Pixels() []byte { return b.buf.Pix() }

// Buffer exposes the frame buffer.
func (b *Base) Buffer() *core.PixelBuffer { return b.buf }

// Viewport returns the screen size the frame is scaled from.
func (b *Base) Viewport() (int, int) { return b.cfg.Width, b.cfg.Height }

// SetViewport changes the screen size; the next frame is reallocated.
func (b *Base) SetViewport(w, h int) {
	if w > 0 && h > 0 {
		b.cfg.Width, b.cfg.Height = w, h
	}
}

// Params returns the current parameters.
func (b *Base) Params() frame.CloudParams { return b.params }

// SetParams replaces the parameters, clamping them into range.
func (b *Base) SetParams(p frame.CloudParams) { b.params = p.Clamped() }

// Camera exposes the camera for input handling.
func (b *Base) Camera() *camera.State { return &b.cam }

// Clock exposes the frame clock for pausing.
func (b *Base) Clock() *core.FrameClock { return b.clock }

// UseContext makes the next frame render from fc instead of from the params
// and camera. It is consumed by one frame. The resolution is held to the
// viewport so a foreign context cannot size the buffer.
func (b *Base) UseContext(fc frame.Context) { b.pending = &fc }

// LastContext returns the context of the most recent frame.
func (b *Base) LastContext() frame.Context { return b.last }

// LastRenderTime is the wall time the most recent frame took.
func (b *Base) LastRenderTime() time.Duration { return b.lastCost }

// Seconds is the frame time fed to the shading code.
func (b *Base) Seconds() float64 { return b.clock.Seconds() + b.offset }

// NextContext assembles the context for the next frame.
func (b *Base) NextContext() frame.Context {
	if b.pending != nil {
		fc := *b.pending
		b.pending = nil
		fc.LimitResolution(b.cfg.Width, b.cfg.Height)
		return fc
	}
	w, h := b.params.OutputSize(b.cfg.Width, b.cfg.Height)
	return frame.NewContext(b.params, b.cam.Basis(), w, h, b.Seconds())
}

// Render draws one frame with fn.
func (b *Base) Render(fn render.PixelFunc) {
	fc := b.NextContext()
	w, h := fc.Size()
	b.buf.Resize(w, h)

	start := time.Now()
	if err := b.renderer.Render(context.Background(), &fc, b.buf, fn); err != nil {
		log.Printf("views: %v", err)
	}
	b.lastCost = time.Since(start)
	b.last = fc
}

// Parameters reports the current values for the HUD and the server.
func (b *Base) Parameters() core.ParameterSnapshot {
	p := b.params
	w, h := b.buf.W, b.buf.H
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Clouds",
			Params: []core.Parameter{
				floatParam("density", "Density", p.Density),
				floatParam("coverage", "Coverage", p.Coverage),
				floatParam("wind_speed", "Wind speed", p.WindSpeed),
				floatParam("anisotropy", "Anisotropy", p.Anisotropy),
			},
		},
		{
			Name: "Sun",
			Params: []core.Parameter{
				floatParam("sun_x", "Sun X", p.SunX),
				floatParam("sun_y", "Sun Y", p.SunY),
				floatParam("sun_z", "Sun Z", p.SunZ),
			},
		},
		{
			Name: "Tint",
			Params: []core.Parameter{
				floatParam("color_r", "Red", p.ColorR),
				floatParam("color_g", "Green", p.ColorG),
				floatParam("color_b", "Blue", p.ColorB),
				floatParam("haze", "Haze", p.Haze),
			},
		},
		{
			Name: "Quality",
			Params: []core.Parameter{
				floatParam("resolution", "Resolution", p.Resolution),
				intParam("steps", "Steps", int(p.Steps)),
				intParam("frame_w", "Frame width", w),
				intParam("frame_h", "Frame height", h),
			},
		},
		{
			Name: "Camera",
			Params: []core.Parameter{
				floatParam("cam_x", "X", b.cam.Pos.X),
				floatParam("cam_y", "Altitude", b.cam.Pos.Y),
				floatParam("cam_z", "Z", b.cam.Pos.Z),
				floatParam("cam_phi", "Pitch", b.cam.Phi),
				floatParam("cam_theta", "Heading", b.cam.Theta),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values with the slider ranges
// of the control panel.
func (b *Base) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		floatControl("resolution", "Resolution", 0.1, frame.MinResolution, frame.MaxResolution),
		{Key: "steps", Label: "Steps", Type: core.ParamTypeInt, Step: 8, Min: frame.MinSteps, Max: frame.MaxSteps, HasMin: true, HasMax: true},
		floatControl("density", "Density", 0.1, frame.MinDensity, frame.MaxDensity),
		floatControl("coverage", "Coverage", 0.01, 0, 1),
		floatControl("haze", "Haze", 0.01, 0, 1),
		floatControl("wind_speed", "Wind", 0.1, 0, frame.MaxWindSpeed),
		floatControl("anisotropy", "Anisotropy", 0.01, 0, frame.MaxAnisotropy),
		floatControl("sun_x", "Sun X", 0.1, -1, 1),
		floatControl("sun_y", "Sun Y", 0.1, -1, 1),
		floatControl("sun_z", "Sun Z", 0.1, -1, 1),
		floatControl("color_r", "Red", 0.1, 0, 1),
		floatControl("color_g", "Green", 0.1, 0, 1),
		floatControl("color_b", "Blue", 0.1, 0, 1),
	}
}

// SetFloatParameter updates a parameter by key.
func (b *Base) SetFloatParameter(key string, value float64) bool {
	p := b.params
	if !p.Set(key, value) {
		return false
	}
	b.SetParams(p)
	return true
}

// SetIntParameter updates an integer parameter by key.
func (b *Base) SetIntParameter(key string, value int) bool {
	return b.SetFloatParameter(key, float64(value))
}

func floatControl(key, label string, step, lo, hi float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeFloat,
		Step:   step,
		Min:    lo,
		Max:    hi,
		HasMin: true,
		HasMax: true,
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 3, 64),
	}
}
