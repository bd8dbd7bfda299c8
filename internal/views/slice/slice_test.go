package slice

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"nimbus/internal/camera"
	"nimbus/internal/core"
	"nimbus/internal/frame"
	"nimbus/internal/shade"
)

func TestBandLinesDrawn(t *testing.T) {
	fc := frame.NewContext(frame.DefaultParams(), camera.New().Basis(), 20, 180, 0)
	for _, alt := range []float32{shade.CloudBottom, shade.CloudTop} {
		if c := Pixel(&fc, 3, Row(180, alt)); c != bandColor {
			t.Fatalf("row for altitude %v = %v", alt, c)
		}
	}
	if c := Pixel(&fc, 3, Row(180, shade.CirrusBottom)); c != cirrusColor {
		t.Fatalf("cirrus line %v", c)
	}
}

func TestBelowBandIsBlack(t *testing.T) {
	p := frame.DefaultParams()
	p.Coverage = 1
	p.Density = frame.MaxDensity
	fc := frame.NewContext(p, camera.New().Basis(), 20, 180, 0)
	bottom := Row(180, shade.CloudBottom)
	for y := bottom + 1; y < 180; y++ {
		for x := 0; x < 20; x++ {
			if c := Pixel(&fc, x, y); c != (mgl32.Vec3{}) {
				t.Fatalf("pixel (%d,%d) below the band = %v", x, y, c)
			}
		}
	}
}

func TestWorldAtSpansSection(t *testing.T) {
	fc := frame.NewContext(frame.DefaultParams(), camera.New().Basis(), 80, 18, 0)
	top := WorldAt(&fc, 0, 0)
	bottom := WorldAt(&fc, 79, 17)
	if top[1] < Ceiling-1 || bottom[1] > 1 {
		t.Fatalf("altitudes %v..%v", top[1], bottom[1])
	}
	if top[0] > -HalfWidth+1 || bottom[0] < HalfWidth-1 {
		t.Fatalf("horizontal span %v..%v", top[0], bottom[0])
	}
	if _, ok := core.Views()["slice"]; !ok {
		t.Fatalf("slice view not registered")
	}
}
