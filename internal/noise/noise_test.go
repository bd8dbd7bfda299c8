package noise

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"nimbus/pkg/core"
)

func TestHashDeterministicAndInRange(t *testing.T) {
	rng := core.NewRNG(7)
	for i := 0; i < 2000; i++ {
		p := rng.InBox(mgl32.Vec3{-500, -500, -500}, mgl32.Vec3{500, 500, 500})
		a := Hash(p)
		b := Hash(p)
		if math.Float32bits(a) != math.Float32bits(b) {
			t.Fatalf("hash(%v) not deterministic: %v vs %v", p, a, b)
		}
		if a < 0 || a >= 1 {
			t.Fatalf("hash(%v)=%v outside [0,1)", p, a)
		}
	}
}

func TestNoiseMatchesHashAtLatticePoints(t *testing.T) {
	points := []mgl32.Vec3{
		{0, 0, 0},
		{3, -2, 7},
		{-11, 4, 0},
		{120, 5, -64},
	}
	for _, p := range points {
		got := Noise(p)
		want := Hash(p)
		if math.Abs(float64(got-want)) > 1e-6 {
			t.Fatalf("noise(%v)=%v, expected corner hash %v", p, got, want)
		}
	}
}

func TestNoiseContinuousAcrossCellBoundary(t *testing.T) {
	const eps = 1e-3
	rng := core.NewRNG(11)
	for i := 0; i < 200; i++ {
		p := rng.InBox(mgl32.Vec3{-50, -50, -50}, mgl32.Vec3{50, 50, 50})
		p[0] = float32(math.Floor(float64(p[0]))) // sit on an x boundary
		left := Noise(mgl32.Vec3{p[0] - eps, p[1], p[2]})
		right := Noise(mgl32.Vec3{p[0] + eps, p[1], p[2]})
		if math.Abs(float64(left-right)) > 1e-3 {
			t.Fatalf("seam at %v: %v vs %v", p, left, right)
		}
	}
}

func TestNoiseRange(t *testing.T) {
	rng := core.NewRNG(3)
	for i := 0; i < 5000; i++ {
		p := rng.InBox(mgl32.Vec3{-100, -100, -100}, mgl32.Vec3{100, 100, 100})
		n := Noise(p)
		if n < 0 || n > 1 {
			t.Fatalf("noise(%v)=%v outside [0,1]", p, n)
		}
	}
}
