// Package noise provides the hash-driven value noise and the fractal sums
// built on top of it. Every function is pure: the same input always yields
// the same output.
package noise

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func fract(x float32) float32 { return x - math32.Floor(x) }

// Hash scrambles a lattice point into [0,1).
func Hash(p mgl32.Vec3) float32 {
	p3 := mgl32.Vec3{fract(p[0] * 0.1031), fract(p[1] * 0.1031), fract(p[2] * 0.1031)}
	d := p3.Dot(mgl32.Vec3{p3[1] + 33.33, p3[2] + 33.33, p3[0] + 33.33})
	p3 = mgl32.Vec3{p3[0] + d, p3[1] + d, p3[2] + d}
	return fract((p3[0] + p3[1]) * p3[2])
}

// Noise is 3D value noise: the eight corners of the lattice cell containing p
// are hashed and blended with the f*f*(3-2f) curve on each axis, so the
// field's derivative vanishes on cell boundaries.
func Noise(p mgl32.Vec3) float32 {
	ix, iy, iz := math32.Floor(p[0]), math32.Floor(p[1]), math32.Floor(p[2])
	fx, fy, fz := p[0]-ix, p[1]-iy, p[2]-iz

	ux := fx * fx * (3 - 2*fx)
	uy := fy * fy * (3 - 2*fy)
	uz := fz * fz * (3 - 2*fz)

	a := Hash(mgl32.Vec3{ix, iy, iz})
	b := Hash(mgl32.Vec3{ix + 1, iy, iz})
	c := Hash(mgl32.Vec3{ix, iy + 1, iz})
	d := Hash(mgl32.Vec3{ix + 1, iy + 1, iz})
	e := Hash(mgl32.Vec3{ix, iy, iz + 1})
	f := Hash(mgl32.Vec3{ix + 1, iy, iz + 1})
	g := Hash(mgl32.Vec3{ix, iy + 1, iz + 1})
	h := Hash(mgl32.Vec3{ix + 1, iy + 1, iz + 1})

	near := lerp(lerp(a, b, ux), lerp(c, d, ux), uy)
	far := lerp(lerp(e, f, ux), lerp(g, h, ux), uy)
	return lerp(near, far, uz)
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }
