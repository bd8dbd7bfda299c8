package core

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// sampling of world-space points.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float32 returns a value in [0,1).
func (r *RNG) Float32() float32 {
	return r.r.Float32()
}

// Range returns a value in [lo,hi).
func (r *RNG) Range(lo, hi float32) float32 {
	return lo + (hi-lo)*r.r.Float32()
}

// InBox returns a point uniformly distributed inside the axis-aligned box.
func (r *RNG) InBox(min, max mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		r.Range(min[0], max[0]),
		r.Range(min[1], max[1]),
		r.Range(min[2], max[2]),
	}
}

// FillBand fills buf with points whose horizontal coordinates lie within
// ±extent and whose altitude lies in [bottom,top).
func FillBand(r *RNG, buf []mgl32.Vec3, extent, bottom, top float32) {
	for i := range buf {
		buf[i] = mgl32.Vec3{
			r.Range(-extent, extent),
			r.Range(bottom, top),
			r.Range(-extent, extent),
		}
	}
}
