//go:build ebiten

package app

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"nimbus/internal/camera"
	"nimbus/internal/core"
	"nimbus/internal/render"
	"nimbus/internal/ui"
	"nimbus/internal/views"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width of the parameter panel in screen pixels.
const HUDWidth = 260

// wheelScale converts ebiten wheel notches to the line-mode deltas the
// camera scroll sensitivity is tuned for.
const wheelScale = 100

// Game adapts a view to the ebiten.Game interface.
type Game struct {
	view    views.Host
	cfg     map[string]string
	painter *render.FramePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep

	width, height int
	seed          int64
	lastUpdate    time.Time

	dragging     bool
	lastX, lastY int
}

// New constructs a Game for the provided view. cfg is reused to build the
// other views when cycling with V.
func New(view views.Host, cfg *Config) *Game {
	w, h := view.Viewport()
	size := view.Size()
	g := &Game{
		view:    view,
		cfg:     cfg.ViewConfig(),
		painter: render.NewFramePainter(size.W, size.H),
		overlay: ui.NewOverlay(view),
		step:    core.NewFixedStep(cfg.FPS),
		width:   w,
		height:  h,
		seed:    cfg.Seed,
	}
	if cfg.HUD {
		g.hud = ui.NewHUD(view, HUDWidth)
	}
	view.Step(0)
	return g
}

// Reset restores the start pose and clock with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.view.Reset(seed)
}

// Update handles per-frame input and renders a new frame at the fixed rate.
func (g *Game) Update() error {
	now := time.Now()
	dt := 0.0
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.view.Clock().Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.screenshot()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.cycleView()
	}

	cam := g.view.Camera()
	cam.Move(camera.Input{
		Forward: ebiten.IsKeyPressed(ebiten.KeyW),
		Back:    ebiten.IsKeyPressed(ebiten.KeyS),
		Left:    ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyD),
		Up:      ebiten.IsKeyPressed(ebiten.KeyR),
		Down:    ebiten.IsKeyPressed(ebiten.KeyF),
	}, dt)
	if g.hud != nil {
		g.hud.Update(g.width)
	}
	g.handleMouse(cam)
	g.overlay.Update()

	if g.step.ShouldStep() {
		g.view.Step(dt)
	}
	return nil
}

func (g *Game) handleMouse(cam *camera.State) {
	x, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.dragging = x < g.width && !g.hud.Contains(x, y)
	case !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.dragging = false
	case g.dragging:
		cam.Look(float64(x-g.lastX), float64(y-g.lastY))
	}
	g.lastX, g.lastY = x, y

	if _, yoff := ebiten.Wheel(); yoff != 0 {
		cam.Scroll(-yoff * wheelScale)
	}
}

func (g *Game) cycleView() {
	names := core.Names()
	next := names[0]
	for i, name := range names {
		if name == g.view.Name() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	view, err := views.Open(next, g.cfg)
	if err != nil {
		log.Printf("app: %v", err)
		return
	}
	views.Carry(view, g.view)
	view.Step(0)
	g.view = view
	g.hud.SetView(view)
	g.overlay.SetView(view)
}

func (g *Game) screenshot() {
	path := fmt.Sprintf("nimbus-%s-%s.png", g.view.Name(), time.Now().Format("20060102-150405"))
	if err := render.SavePNG(path, g.view.Buffer()); err != nil {
		log.Printf("app: screenshot: %v", err)
		return
	}
	log.Printf("app: saved %s", path)
}

// Draw scales the latest frame into the viewport and paints the panels.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	viewport := image.Rect(0, 0, g.width, g.height)
	size := g.view.Size()
	g.painter.Blit(screen.SubImage(viewport).(*ebiten.Image), g.view.Pixels(), size.W, size.H)
	if g.hud != nil {
		g.hud.Draw(screen, g.width, g.height)
	}
	g.overlay.Draw(screen, viewport)
}

// Layout returns the logical screen size: the viewport plus the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + g.hud.Width(), g.height
}
