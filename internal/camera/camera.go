// Package camera integrates the viewer's spherical camera state over time
// and derives the per-frame view basis.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/spatial/r3"

	"nimbus/internal/frame"
)

const (
	// MoveSpeed is in world units per second.
	MoveSpeed = 5.0
	// MaxStep caps dt so a stalled frame does not teleport the camera.
	MaxStep = 0.1
	// LookSensitivity is radians per pixel of mouse motion.
	LookSensitivity = 0.005
	// ScrollSensitivity is world units per wheel unit.
	ScrollSensitivity = 0.01
	MaxPitch          = 1.5
	MinAltitude       = 0.1
	MaxAltitude       = 100.0

	degenerateRight = 0.0001
)

var worldUp = r3.Vec{Y: 1}

// Input is the set of movement keys held during a frame.
type Input struct {
	Forward, Back bool
	Left, Right   bool
	Up, Down      bool
}

// Any reports whether any movement key is held.
func (in Input) Any() bool {
	return in.Forward || in.Back || in.Left || in.Right || in.Up || in.Down
}

// State is the camera's spherical orientation plus position. Phi is the
// pitch above the horizon and Theta the heading, both in radians.
type State struct {
	Phi   float64
	Theta float64
	Pos   r3.Vec
}

// New returns the starting pose: slightly pitched up, at the cloud floor.
func New() State {
	return State{Phi: 0.2, Theta: 0, Pos: r3.Vec{X: 0, Y: 1, Z: 0}}
}

// Direction is the unit view vector for the current angles.
func (s State) Direction() r3.Vec {
	cp := math.Cos(s.Phi)
	return r3.Vec{
		X: cp * math.Sin(s.Theta),
		Y: math.Sin(s.Phi),
		Z: cp * math.Cos(s.Theta),
	}
}

// Basis derives the orthonormal view frame. When the view direction is
// parallel to world up the right vector falls back to +X.
func (s State) Basis() frame.Basis {
	dir := s.Direction()
	right := r3.Cross(dir, worldUp)
	if r3.Norm(right) > degenerateRight {
		right = r3.Unit(right)
	} else {
		right = r3.Vec{X: 1}
	}
	up := r3.Cross(right, dir)
	return frame.Basis{
		Pos:   vec32(s.Pos),
		Dir:   vec32(dir),
		Up:    vec32(up),
		Right: vec32(right),
	}
}

// Move integrates held keys over dt seconds.
func (s *State) Move(in Input, dt float64) {
	if dt <= 0 || !in.Any() {
		return
	}
	dt = math.Min(dt, MaxStep)
	speed := MoveSpeed * dt

	forward := r3.Vec{X: math.Sin(s.Theta), Z: math.Cos(s.Theta)}
	strafe := r3.Vec{X: math.Cos(s.Theta), Z: -math.Sin(s.Theta)}

	var delta r3.Vec
	if in.Forward {
		delta = r3.Add(delta, forward)
	}
	if in.Back {
		delta = r3.Sub(delta, forward)
	}
	if in.Right {
		delta = r3.Add(delta, strafe)
	}
	if in.Left {
		delta = r3.Sub(delta, strafe)
	}
	if in.Up {
		delta.Y++
	}
	if in.Down {
		delta.Y--
	}
	s.Pos = r3.Add(s.Pos, r3.Scale(speed, delta))
	s.clampAltitude()
}

// Look applies a mouse drag of dx, dy pixels.
func (s *State) Look(dx, dy float64) {
	s.Theta += dx * LookSensitivity
	s.Phi -= dy * LookSensitivity
	s.Phi = math.Max(-MaxPitch, math.Min(MaxPitch, s.Phi))
}

// Scroll moves the camera vertically by a wheel delta.
func (s *State) Scroll(dy float64) {
	s.Pos.Y += dy * ScrollSensitivity
	s.clampAltitude()
}

func (s *State) clampAltitude() {
	s.Pos.Y = math.Max(MinAltitude, math.Min(MaxAltitude, s.Pos.Y))
}

func vec32(v r3.Vec) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)}
}
