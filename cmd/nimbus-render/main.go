// Command nimbus-render renders one frame of a view to a PNG file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"nimbus/internal/app"
	"nimbus/internal/frame"
	"nimbus/internal/render"
	"nimbus/internal/views"
	_ "nimbus/internal/views/clouds"
	_ "nimbus/internal/views/slice"
	_ "nimbus/internal/views/weather"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "nimbus.png", "output PNG path")
	at := flag.Float64("time", 0, "frame time in seconds")
	uniforms := flag.String("uniforms", "", "also write the 128-byte uniform payload to this path")
	replay := flag.String("replay", "", "render from a uniform payload file instead of params and camera")
	sunLat := flag.Float64("sun-lat", 0, "place the sun for this latitude (needs -sun-time)")
	sunLon := flag.Float64("sun-lon", 0, "place the sun for this longitude (needs -sun-time)")
	sunTime := flag.String("sun-time", "", "RFC 3339 time used with -sun-lat/-sun-lon")
	flag.Parse()

	view, err := views.Open(cfg.View, cfg.ViewConfig())
	if err != nil {
		log.Fatal(err)
	}

	if *sunTime != "" {
		t, err := time.Parse(time.RFC3339, *sunTime)
		if err != nil {
			log.Fatalf("parse -sun-time: %v", err)
		}
		p := view.Params()
		p.SetSunFromLocation(t, *sunLat, *sunLon)
		view.SetParams(p)
		log.Printf("sun at %.3f %.3f %.3f", p.SunX, p.SunY, p.SunZ)
	}

	if *replay != "" {
		data, err := os.ReadFile(*replay)
		if err != nil {
			log.Fatal(err)
		}
		u, err := frame.UnmarshalUniforms(data)
		if err != nil {
			log.Fatalf("%s: %v", *replay, err)
		}
		view.UseContext(u.Context())
	} else {
		// A fixed time keeps the output reproducible.
		fc := view.NextContext()
		fc.Time = float32(*at)
		view.UseContext(fc)
	}

	view.Step(0)
	if err := render.SavePNG(*out, view.Buffer()); err != nil {
		log.Fatal(err)
	}
	fc := view.LastContext()
	w, h := fc.Size()
	fmt.Printf("%s: %s %dx%d in %s\n", *out, view.Name(), w, h, view.LastRenderTime().Round(time.Millisecond))

	if *uniforms != "" {
		u := fc.Uniforms()
		if err := os.WriteFile(*uniforms, u.Marshal(), 0o644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %d-byte uniform payload\n", *uniforms, u.Size())
	}
}
