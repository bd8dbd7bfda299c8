package views_test

import (
	"testing"

	"nimbus/internal/views"
	_ "nimbus/internal/views/clouds"
	_ "nimbus/internal/views/slice"
	_ "nimbus/internal/views/weather"
)

func TestRegisteredViewsAreHosts(t *testing.T) {
	for _, name := range []string{"clouds", "slice", "weather"} {
		h, err := views.Open(name, map[string]string{"w": "32", "h": "18"})
		if err != nil {
			t.Fatalf("Open(%q): %v", name, err)
		}
		if h.Name() != name {
			t.Fatalf("Open(%q) built %q", name, h.Name())
		}
	}
	if _, err := views.Open("lava", nil); err == nil {
		t.Fatalf("unknown view opened")
	}
}

func TestCarryKeepsScene(t *testing.T) {
	src, err := views.Open("clouds", map[string]string{"w": "32", "h": "18", "coverage": "0.8"})
	if err != nil {
		t.Fatal(err)
	}
	dst, err := views.Open("slice", map[string]string{"w": "64", "h": "36"})
	if err != nil {
		t.Fatal(err)
	}
	src.Camera().Pos.Y = 12
	src.Camera().Theta = 1.25
	src.Clock().SetPaused(true)

	views.Carry(dst, src)

	if dst.Params() != src.Params() {
		t.Fatalf("params %+v, expected %+v", dst.Params(), src.Params())
	}
	if *dst.Camera() != *src.Camera() {
		t.Fatalf("camera %+v, expected %+v", *dst.Camera(), *src.Camera())
	}
	if !dst.Clock().Paused() {
		t.Fatalf("pause state not carried")
	}
	if w, h := dst.Viewport(); w != 32 || h != 18 {
		t.Fatalf("viewport %dx%d", w, h)
	}
}
