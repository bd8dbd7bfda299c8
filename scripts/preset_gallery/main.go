package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"nimbus/internal/frame"
	"nimbus/internal/render"
	"nimbus/internal/views"
	"nimbus/internal/views/clouds"
)

func main() {
	dir := flag.String("dir", "gallery", "output directory")
	width := flag.Int("width", 640, "viewport width")
	height := flag.Int("height", 360, "viewport height")
	at := flag.Float64("time", 30, "frame time in seconds")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatal(err)
	}

	for _, name := range frame.Presets() {
		p, err := frame.Preset(name)
		if err != nil {
			log.Fatal(err)
		}
		cfg := views.DefaultConfig()
		cfg.Width, cfg.Height = *width, *height
		cfg.Params = p
		view := clouds.New(cfg)

		fc := view.NextContext()
		fc.Time = float32(*at)
		view.UseContext(fc)
		view.Step(0)

		path := filepath.Join(*dir, name+".png")
		if err := render.SavePNG(path, view.Buffer()); err != nil {
			log.Fatal(err)
		}
		if err := frame.Save(filepath.Join(*dir, name+".json"), p); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%-10s %s (%s)\n", name, path, view.LastRenderTime())
	}
}
