//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"nimbus/internal/app"
	"nimbus/internal/views"
	_ "nimbus/internal/views/clouds"
	_ "nimbus/internal/views/slice"
	_ "nimbus/internal/views/weather"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	view, err := views.Open(cfg.View, cfg.ViewConfig())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(view, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("nimbus: " + view.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
