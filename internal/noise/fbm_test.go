package noise

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"nimbus/pkg/core"
)

func TestAmplitudeSumMatchesNormalization(t *testing.T) {
	if got := AmplitudeSum(baseOctaves); got != BaseNorm {
		t.Fatalf("base amplitude sum %v, normalization %v", got, BaseNorm)
	}
	if got := AmplitudeSum(detailOctaves); got != DetailNorm {
		t.Fatalf("detail amplitude sum %v, normalization %v", got, DetailNorm)
	}
}

func TestFBMNormalized(t *testing.T) {
	const slack = 1e-4
	rng := core.NewRNG(42)
	for i := 0; i < 3000; i++ {
		p := rng.InBox(mgl32.Vec3{-200, -20, -200}, mgl32.Vec3{200, 20, 200})
		for name, v := range map[string]float32{"base": FBMBase(p), "detail": FBMDetail(p)} {
			if v < -slack || v > 1+slack {
				t.Fatalf("fbm %s(%v)=%v outside [0,1]", name, p, v)
			}
		}
	}
}

func TestRotateYPreservesLength(t *testing.T) {
	p := mgl32.Vec3{3, -1, 4}
	r := rotateY(p)
	if math.Abs(float64(p.Len()-r.Len())) > 1e-5 {
		t.Fatalf("rotation changed length: %v -> %v", p.Len(), r.Len())
	}
	if r[1] != p[1] {
		t.Fatalf("rotation about y must keep y: %v -> %v", p[1], r[1])
	}
}

func TestRemap(t *testing.T) {
	cases := []struct {
		name                      string
		v, oldMin, oldMax, lo, hi float32
		want                      float32
	}{
		{"mid", 0.5, 0, 1, 0, 10, 5},
		{"below clamps", -3, 0, 1, 0, 1, 0},
		{"above clamps", 4, 0, 1, 0, 1, 1},
		{"shifted", 0.75, 0.5, 1, 0, 1, 0.5},
		{"empty source range", 0.3, 0.4, 0.4, 0, 1, 0},
	}
	for _, tc := range cases {
		got := Remap(tc.v, tc.oldMin, tc.oldMax, tc.lo, tc.hi)
		if math.IsNaN(float64(got)) || math.Abs(float64(got-tc.want)) > 1e-6 {
			t.Fatalf("%s: remap=%v, expected %v", tc.name, got, tc.want)
		}
	}
}
