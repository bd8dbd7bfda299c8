package views

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"nimbus/internal/camera"
	"nimbus/internal/core"
	"nimbus/internal/frame"
)

func flat(c mgl32.Vec3) func(*frame.Context, int, int) mgl32.Vec3 {
	return func(*frame.Context, int, int) mgl32.Vec3 { return c }
}

func TestFromMapLayersPresetFileAndKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.json")
	if err := os.WriteFile(path, []byte(`{"haze":0.7}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := FromMap(map[string]string{
		"w":       "320",
		"h":       "bad",
		"preset":  "storm",
		"params":  path,
		"density": "0.4",
		"seed":    "9",
	})
	if cfg.Width != 320 || cfg.Height != DefaultConfig().Height {
		t.Fatalf("viewport %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Params.Haze != 0.7 {
		t.Fatalf("file params not applied: haze=%v", cfg.Params.Haze)
	}
	if cfg.Params.Density != 0.4 {
		t.Fatalf("key override not applied: density=%v", cfg.Params.Density)
	}
	if cfg.Seed != 9 {
		t.Fatalf("seed=%d", cfg.Seed)
	}
}

func TestFromMapUnknownPresetKeepsDefaults(t *testing.T) {
	cfg := FromMap(map[string]string{"preset": "nope"})
	if cfg.Params != frame.DefaultParams() {
		t.Fatalf("params changed: %+v", cfg.Params)
	}
}

func TestRenderUsesScaledSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 100, 60
	cfg.Params.Resolution = 0.5
	b := NewBase(cfg)
	b.Render(flat(mgl32.Vec3{1, 0, 0}))
	if b.Size() != (core.Size{W: 50, H: 30}) {
		t.Fatalf("frame size %+v", b.Size())
	}
	if len(b.Pixels()) != 4*50*30 {
		t.Fatalf("pixel slice length %d", len(b.Pixels()))
	}
	if r, g, _, _ := b.Buffer().At(10, 10); r != 255 || g != 0 {
		t.Fatalf("pixel %d,%d", r, g)
	}

	b.SetFloatParameter("resolution", 1)
	b.Render(flat(mgl32.Vec3{}))
	if b.Size() != (core.Size{W: 100, H: 60}) {
		t.Fatalf("frame not resized: %+v", b.Size())
	}
}

func TestUseContextIsConsumedOnce(t *testing.T) {
	b := NewBase(DefaultConfig())
	fc := frame.NewContext(frame.DefaultParams(), camera.New().Basis(), 8, 4, 42)
	b.UseContext(fc)
	b.Render(flat(mgl32.Vec3{}))
	if b.LastContext() != fc {
		t.Fatalf("override not used: %+v", b.LastContext())
	}
	if b.Size() != (core.Size{W: 8, H: 4}) {
		t.Fatalf("frame size %+v", b.Size())
	}
	b.Render(flat(mgl32.Vec3{}))
	if b.LastContext().Time == 42 {
		t.Fatalf("override used twice")
	}
}

func TestUseContextBoundedByViewport(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 40, 24
	b := NewBase(cfg)
	fc := frame.NewContext(frame.DefaultParams(), camera.New().Basis(), 8, 4, 1)
	fc.Resolution = mgl32.Vec2{1e6, 1e6}
	b.UseContext(fc)
	b.Render(flat(mgl32.Vec3{}))
	if b.Size() != (core.Size{W: 40, H: 24}) {
		t.Fatalf("frame size %+v, expected the 40x24 viewport", b.Size())
	}
}

func TestParameterSettersClamp(t *testing.T) {
	b := NewBase(DefaultConfig())
	if !b.SetFloatParameter("coverage", 4) {
		t.Fatalf("coverage rejected")
	}
	if b.Params().Coverage != 1 {
		t.Fatalf("coverage=%v, expected clamp to 1", b.Params().Coverage)
	}
	if !b.SetIntParameter("steps", 4) || b.Params().Steps != frame.MinSteps {
		t.Fatalf("steps=%v", b.Params().Steps)
	}
	if b.SetFloatParameter("cam_x", 1) {
		t.Fatalf("read-only key accepted")
	}
	if p, ok := b.Parameters().Lookup("coverage"); !ok || p.Value != "1.000" {
		t.Fatalf("snapshot coverage %+v", p)
	}
	for _, c := range b.ParameterControls() {
		if _, ok := b.Parameters().Lookup(c.Key); !ok {
			t.Fatalf("control %q missing from snapshot", c.Key)
		}
	}
}

func TestResetRestoresCamera(t *testing.T) {
	b := NewBase(DefaultConfig())
	b.Camera().Look(100, 100)
	b.Camera().Scroll(500)
	b.Reset(3)
	if *b.Camera() != camera.New() {
		t.Fatalf("camera not reset: %+v", *b.Camera())
	}
	if b.Seconds() < 21 {
		t.Fatalf("seed offset missing: %v", b.Seconds())
	}
}
