package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ToByte quantizes a channel in [0,1] to 0..255, rounding to nearest.
// Out-of-range and NaN values are clamped.
func ToByte(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// PutRGBA writes c as an opaque pixel into the first four bytes of dst.
func PutRGBA(dst []byte, c mgl32.Vec3) {
	dst[0] = ToByte(c[0])
	dst[1] = ToByte(c[1])
	dst[2] = ToByte(c[2])
	dst[3] = 0xff
}
