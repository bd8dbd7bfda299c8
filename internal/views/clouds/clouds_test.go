package clouds

import (
	"testing"

	"nimbus/internal/core"
	"nimbus/internal/views"
)

func TestRegisteredAndRendersOpaque(t *testing.T) {
	f, ok := core.Views()["clouds"]
	if !ok {
		t.Fatalf("clouds view not registered")
	}
	v := f(map[string]string{"w": "40", "h": "24", "resolution": "0.5", "steps": "16"})
	if v.Name() != "clouds" {
		t.Fatalf("name %q", v.Name())
	}
	v.Step(1.0 / 60)
	if v.Size() != (core.Size{W: 20, H: 12}) {
		t.Fatalf("size %+v", v.Size())
	}
	pix := v.Pixels()
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0xff {
			t.Fatalf("alpha at %d is %d", i, pix[i])
		}
	}
}

func TestGroundBelowHorizonIsDark(t *testing.T) {
	cfg := views.DefaultConfig()
	cfg.Width, cfg.Height = 32, 32
	cfg.Params.Resolution = 1
	cfg.Params.Haze = 0
	v := New(cfg)
	v.Camera().Phi = -1.2
	v.Camera().Pos.Y = 0.5
	v.Step(0)
	r, g, b, _ := v.Buffer().At(16, 31)
	if int(r)+int(g)+int(b) > 3*128 {
		t.Fatalf("ground pixel too bright: %d,%d,%d", r, g, b)
	}
}
