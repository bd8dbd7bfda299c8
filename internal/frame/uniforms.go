package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// UniformSize is the byte length of the packed per-frame payload.
const UniformSize = 128

// ErrPayloadSize is returned when a uniform payload is not UniformSize bytes.
var ErrPayloadSize = errors.New("frame: uniform payload must be 128 bytes")

// Uniforms is the 16-byte aligned layout of the per-frame payload. Field
// order and padding are part of the wire format.
type Uniforms struct {
	Resolution  [2]float32 // offset   0
	Time        float32    // offset   8
	_pad0       float32    // offset  12
	CameraPos   [3]float32 // offset  16
	_pad1       float32    // offset  28
	CameraDir   [3]float32 // offset  32
	_pad2       float32    // offset  44
	CameraUp    [3]float32 // offset  48
	_pad3       float32    // offset  60
	CameraRight [3]float32 // offset  64
	_pad4       float32    // offset  76
	SunDir      [3]float32 // offset  80
	Haze        float32    // offset  92
	CloudColor  [3]float32 // offset  96
	Density     float32    // offset 108
	Coverage    float32    // offset 112
	WindSpeed   float32    // offset 116
	Anisotropy  float32    // offset 120
	Steps       float32    // offset 124
}

// Size returns the in-memory size of the struct, which matches UniformSize.
func (u *Uniforms) Size() int {
	return int(unsafe.Sizeof(*u))
}

func (u *Uniforms) words() [UniformSize / 4]float32 {
	return [UniformSize / 4]float32{
		u.Resolution[0], u.Resolution[1], u.Time, 0,
		u.CameraPos[0], u.CameraPos[1], u.CameraPos[2], 0,
		u.CameraDir[0], u.CameraDir[1], u.CameraDir[2], 0,
		u.CameraUp[0], u.CameraUp[1], u.CameraUp[2], 0,
		u.CameraRight[0], u.CameraRight[1], u.CameraRight[2], 0,
		u.SunDir[0], u.SunDir[1], u.SunDir[2], u.Haze,
		u.CloudColor[0], u.CloudColor[1], u.CloudColor[2], u.Density,
		u.Coverage, u.WindSpeed, u.Anisotropy, u.Steps,
	}
}

// Marshal serializes the payload little-endian, padding words zeroed.
func (u *Uniforms) Marshal() []byte {
	buf := make([]byte, UniformSize)
	for i, w := range u.words() {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(w))
	}
	return buf
}

// UnmarshalUniforms decodes a payload produced by Marshal or by any other
// implementation of the same layout. Padding words are ignored.
func UnmarshalUniforms(buf []byte) (Uniforms, error) {
	if len(buf) != UniformSize {
		return Uniforms{}, fmt.Errorf("decode uniforms: got %d bytes: %w", len(buf), ErrPayloadSize)
	}
	var w [UniformSize / 4]float32
	for i := range w {
		w[i] = math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
	}
	return Uniforms{
		Resolution:  [2]float32{w[0], w[1]},
		Time:        w[2],
		CameraPos:   [3]float32{w[4], w[5], w[6]},
		CameraDir:   [3]float32{w[8], w[9], w[10]},
		CameraUp:    [3]float32{w[12], w[13], w[14]},
		CameraRight: [3]float32{w[16], w[17], w[18]},
		SunDir:      [3]float32{w[20], w[21], w[22]},
		Haze:        w[23],
		CloudColor:  [3]float32{w[24], w[25], w[26]},
		Density:     w[27],
		Coverage:    w[28],
		WindSpeed:   w[29],
		Anisotropy:  w[30],
		Steps:       w[31],
	}, nil
}

// Uniforms packs the context into its wire layout.
func (c *Context) Uniforms() Uniforms {
	return Uniforms{
		Resolution:  c.Resolution,
		Time:        c.Time,
		CameraPos:   c.CameraPos,
		CameraDir:   c.CameraDir,
		CameraUp:    c.CameraUp,
		CameraRight: c.CameraRight,
		SunDir:      c.SunDir,
		Haze:        c.Haze,
		CloudColor:  c.CloudColor,
		Density:     c.DensityMultiplier,
		Coverage:    c.Coverage,
		WindSpeed:   c.WindSpeed,
		Anisotropy:  c.Anisotropy,
		Steps:       c.Steps,
	}
}

// Context unpacks the payload. The values are taken as-is; shading code
// applies its own guards.
func (u *Uniforms) Context() Context {
	return Context{
		Resolution:        mgl32.Vec2(u.Resolution),
		Time:              u.Time,
		CameraPos:         mgl32.Vec3(u.CameraPos),
		CameraDir:         mgl32.Vec3(u.CameraDir),
		CameraUp:          mgl32.Vec3(u.CameraUp),
		CameraRight:       mgl32.Vec3(u.CameraRight),
		SunDir:            mgl32.Vec3(u.SunDir),
		Haze:              u.Haze,
		CloudColor:        mgl32.Vec3(u.CloudColor),
		DensityMultiplier: u.Density,
		Coverage:          u.Coverage,
		WindSpeed:         u.WindSpeed,
		Anisotropy:        u.Anisotropy,
		Steps:             u.Steps,
	}
}
