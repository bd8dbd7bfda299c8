// Command coverage-sweep measures how the coverage and density sliders
// change the amount of cloud: mean density over random band points and mean
// opacity over a small frame, for every cell of a coverage × density grid.
package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"nimbus/internal/camera"
	"nimbus/internal/frame"
	"nimbus/internal/shade"
	"nimbus/pkg/core"
)

type cell struct {
	coverage float64
	density  float64
}

func (c cell) String() string {
	return fmt.Sprintf("coverage=%.2f density=%.2f", c.coverage, c.density)
}

type cellResult struct {
	cell        cell
	meanDensity float64
	meanOpacity float64
	cloudyRays  int
	rays        int
}

type sweepConfig struct {
	samples int
	width   int
	height  int
	steps   float64
	seed    int64
	time    float64
}

func main() {
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	samples := flag.Int("samples", 4096, "density samples per cell")
	width := flag.Int("width", 48, "opacity frame width")
	height := flag.Int("height", 27, "opacity frame height")
	steps := flag.Float64("steps", 48, "march steps for the opacity frame")
	seed := flag.Int64("seed", 1, "sample point seed")
	at := flag.Float64("time", 0, "frame time in seconds")
	flag.Parse()

	cfg := sweepConfig{samples: *samples, width: *width, height: *height, steps: *steps, seed: *seed, time: *at}
	cells := grid(
		[]float64{0, 0.2, 0.4, 0.6, 0.8, 1},
		[]float64{0.5, 1, 1.8, 3},
	)

	fmt.Printf("Sweeping %d cells (%d workers, %d samples, %dx%d frame)\n", len(cells), *workers, cfg.samples, cfg.width, cfg.height)
	start := time.Now()
	all := sweep(cells, cfg, *workers)
	sort.Slice(all, func(i, j int) bool {
		if all[i].cell.coverage != all[j].cell.coverage {
			return all[i].cell.coverage < all[j].cell.coverage
		}
		return all[i].cell.density < all[j].cell.density
	})

	fmt.Printf("\n%-9s %-8s %-12s %-12s %s\n", "coverage", "density", "meanDensity", "meanOpacity", "cloudyRays")
	for _, res := range all {
		fmt.Printf("%-9.2f %-8.2f %-12.4f %-12.4f %d/%d\n",
			res.cell.coverage, res.cell.density, res.meanDensity, res.meanOpacity, res.cloudyRays, res.rays)
	}
	fmt.Printf("\nelapsed %s\n", time.Since(start).Round(time.Millisecond))
}

func grid(coverages, densities []float64) []cell {
	var cells []cell
	for _, c := range coverages {
		for _, d := range densities {
			cells = append(cells, cell{coverage: c, density: d})
		}
	}
	return cells
}

func sweep(cells []cell, cfg sweepConfig, workers int) []cellResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan cell)
	results := make(chan cellResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				results <- measure(c, cfg)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, c := range cells {
			jobs <- c
		}
		close(jobs)
	}()

	var all []cellResult
	for res := range results {
		all = append(all, res)
	}
	return all
}

// measure evaluates one cell. Sample points come from the same seed for
// every cell, so cells differ only by their parameters.
func measure(c cell, cfg sweepConfig) cellResult {
	p := frame.DefaultParams()
	p.Coverage = c.coverage
	p.Density = c.density
	p.Steps = cfg.steps
	fc := frame.NewContext(p, camera.New().Basis(), cfg.width, cfg.height, cfg.time)

	res := cellResult{cell: c}

	pts := make([]mgl32.Vec3, cfg.samples)
	core.FillBand(core.NewRNG(cfg.seed), pts, 200, shade.CloudBottom, shade.CloudTop)
	var sum float64
	for _, pt := range pts {
		sum += float64(shade.Density(&fc, pt))
	}
	if len(pts) > 0 {
		res.meanDensity = sum / float64(len(pts))
	}

	w, h := fc.Size()
	var opacity float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			uv := shade.PixelUV(x, y, w, h)
			st, ok := shade.March(&fc, shade.CameraRay(&fc, uv), shade.Jitter(uv), nil)
			res.rays++
			if !ok {
				continue
			}
			opacity += float64(st.Opacity())
			if st.Samples > 0 {
				res.cloudyRays++
			}
		}
	}
	if res.rays > 0 {
		res.meanOpacity = opacity / float64(res.rays)
	}
	return res
}
