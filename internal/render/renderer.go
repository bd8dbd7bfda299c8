// Package render turns a frame context into pixels: tiles are shaded in
// parallel over a bounded worker pool and encoded as RGBA8.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"

	"nimbus/internal/core"
	"nimbus/internal/frame"
	"nimbus/internal/shade"
)

// TileSize is the edge length of the square tiles handed to workers.
const TileSize = 32

// maxWorkers bounds NIMBUS_WORKERS.
const maxWorkers = 128

// ErrSizeMismatch is returned when the target buffer does not match the
// frame resolution.
var ErrSizeMismatch = errors.New("render: buffer size does not match frame resolution")

// PixelFunc returns the display color of pixel (x, y), each channel in [0,1].
type PixelFunc func(fc *frame.Context, x, y int) mgl32.Vec3

// Tile is a half-open pixel rectangle [X0,X1)×[Y0,Y1).
type Tile struct {
	X0, Y0, X1, Y1 int
}

// Tiles partitions a w×h image into tiles of at most size×size covering
// every pixel exactly once.
func Tiles(w, h, size int) []Tile {
	if size <= 0 {
		size = TileSize
	}
	tiles := make([]Tile, 0, ((w+size-1)/size)*((h+size-1)/size))
	for y := 0; y < h; y += size {
		for x := 0; x < w; x += size {
			tiles = append(tiles, Tile{X0: x, Y0: y, X1: min(x+size, w), Y1: min(y+size, h)})
		}
	}
	return tiles
}

// Workers returns the default pool size: one per CPU, overridable through
// the NIMBUS_WORKERS environment variable.
func Workers() int {
	n := runtime.NumCPU()
	if env := os.Getenv("NIMBUS_WORKERS"); env != "" {
		if v, err := strconv.Atoi(env); err == nil && v > 0 && v <= maxWorkers {
			n = v
		}
	}
	return max(n, 1)
}

// Renderer shades frames tile by tile.
type Renderer struct {
	workers  int
	tileSize int
}

// NewRenderer creates a renderer with the given pool size; zero or negative
// selects Workers().
func NewRenderer(workers int) *Renderer {
	if workers <= 0 {
		workers = Workers()
	}
	return &Renderer{workers: workers, tileSize: TileSize}
}

// WorkerCount returns the pool size.
func (r *Renderer) WorkerCount() int { return r.workers }

// Render evaluates fn for every pixel of buf. Tiles share fc read-only and
// write disjoint regions of buf. Cancelling ctx stops handing out tiles; a
// cancelled frame is incomplete and should be discarded.
func (r *Renderer) Render(ctx context.Context, fc *frame.Context, buf *core.PixelBuffer, fn PixelFunc) error {
	w, h := fc.Size()
	if buf.W != w || buf.H != h {
		return fmt.Errorf("render %dx%d into %dx%d: %w", w, h, buf.W, buf.H, ErrSizeMismatch)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	pix := buf.Pix()
	for _, t := range Tiles(w, h, r.tileSize) {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for y := t.Y0; y < t.Y1; y++ {
				row := y * w * 4
				for x := t.X0; x < t.X1; x++ {
					PutRGBA(pix[row+x*4:], fn(fc, x, y))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}
	return ctx.Err()
}

// Frame renders the full cloud pipeline into buf.
func (r *Renderer) Frame(ctx context.Context, fc *frame.Context, buf *core.PixelBuffer) error {
	return r.Render(ctx, fc, buf, shade.Shade)
}
