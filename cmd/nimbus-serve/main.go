// Command nimbus-serve streams a view to browsers over a websocket.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"nimbus/internal/app"
	"nimbus/internal/server"
	"nimbus/internal/views"
	_ "nimbus/internal/views/clouds"
	_ "nimbus/internal/views/slice"
	_ "nimbus/internal/views/weather"
)

func main() {
	cfg := app.NewConfig()
	cfg.FPS = server.DefaultFPS
	cfg.Width, cfg.Height = 640, 360
	cfg.Bind(flag.CommandLine)
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	view, err := views.Open(cfg.View, cfg.ViewConfig())
	if err != nil {
		log.Fatal(err)
	}
	srv := server.New(view, cfg.FPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	httpSrv := &http.Server{Addr: *addr, Handler: srv.Handler()}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		httpSrv.Shutdown(shutdown)
	}()
	go srv.Run(ctx)

	log.Printf("serving %s on http://localhost%s at %d fps", view.Name(), *addr, cfg.FPS)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
