package core

// PixelBuffer stores an RGBA8 image in row-major order with row 0 on top.
type PixelBuffer struct {
	W, H int
	data []byte
}

// NewPixelBuffer allocates an opaque black buffer with the given dimensions.
func NewPixelBuffer(w, h int) *PixelBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	b := &PixelBuffer{W: w, H: h, data: make([]byte, 4*w*h)}
	b.Clear()
	return b
}

// Pix exposes the backing slice so callers can read/write values directly.
func (b *PixelBuffer) Pix() []byte { return b.data }

// Size returns the buffer dimensions.
func (b *PixelBuffer) Size() Size { return Size{W: b.W, H: b.H} }

// Index returns the byte offset of pixel (x, y).
func (b *PixelBuffer) Index(x, y int) int { return 4 * (y*b.W + x) }

// Set writes an opaque pixel.
func (b *PixelBuffer) Set(x, y int, r, g, bl uint8) {
	i := b.Index(x, y)
	b.data[i+0] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = 0xff
}

// At returns the color channels of pixel (x, y).
func (b *PixelBuffer) At(x, y int) (r, g, bl, a uint8) {
	i := b.Index(x, y)
	return b.data[i], b.data[i+1], b.data[i+2], b.data[i+3]
}

// Resize reallocates the buffer when the dimensions change. It reports
// whether a new allocation happened.
func (b *PixelBuffer) Resize(w, h int) bool {
	w, h = max(w, 1), max(h, 1)
	if w == b.W && h == b.H {
		return false
	}
	b.W, b.H = w, h
	b.data = make([]byte, 4*w*h)
	b.Clear()
	return true
}

// Clear fills the buffer with opaque black.
func (b *PixelBuffer) Clear() {
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = 0
		b.data[i+1] = 0
		b.data[i+2] = 0
		b.data[i+3] = 0xff
	}
}
