//go:build ebiten

package ui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"

	"nimbus/internal/core"
	"nimbus/internal/render"
	"nimbus/internal/shade"
	"nimbus/internal/views"
	"nimbus/internal/views/weather"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	minimapSize    = 96
	minimapMargin  = 8
	minimapRefresh = 15
	sunMarkerSize  = 9
)

// Overlay draws optional debugging visuals on top of the sky view.
type Overlay struct {
	view views.Host

	showStats   bool
	showMinimap bool
	showSun     bool

	pixel *ebiten.Image

	mapBuf      *core.PixelBuffer
	mapImg      *ebiten.Image
	mapRenderer *render.Renderer
	mapAge      int
}

// NewOverlay constructs a new overlay instance. Stats start visible.
func NewOverlay(view views.Host) *Overlay {
	o := &Overlay{view: view, showStats: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	o.mapBuf = core.NewPixelBuffer(minimapSize, minimapSize)
	o.mapImg = ebiten.NewImage(minimapSize, minimapSize)
	o.mapRenderer = render.NewRenderer(2)
	return o
}

// SetView switches the view the overlay reads from.
func (o *Overlay) SetView(view views.Host) {
	o.view = view
	o.mapAge = 0
}

// Update toggles layers: 1 stats, 2 weather minimap, 3 sun marker.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showStats = !o.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showMinimap = !o.showMinimap
		o.mapAge = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showSun = !o.showSun
	}
}

// Draw renders the enabled layers over viewport, the region of screen the
// frame was scaled into.
func (o *Overlay) Draw(screen *ebiten.Image, viewport image.Rectangle) {
	if o.view == nil || viewport.Empty() {
		return
	}
	if o.showSun {
		o.drawSun(screen, viewport)
	}
	if o.showMinimap {
		o.drawMinimap(screen, viewport)
	}
	if o.showStats {
		o.drawStats(screen, viewport)
	}
}

func (o *Overlay) drawStats(screen *ebiten.Image, viewport image.Rectangle) {
	fc := o.view.LastContext()
	w, h := fc.Size()
	cam := o.view.Camera()
	state := "running"
	if o.view.Clock().Paused() {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("%s  %.0f fps  %dx%d  %.1f ms", o.view.Name(), ebiten.ActualFPS(), w, h,
			float64(o.view.LastRenderTime().Microseconds())/1000),
		fmt.Sprintf("t %.1fs %s", fc.Time, state),
		fmt.Sprintf("cam %.1f %.1f %.1f  pitch %.2f heading %.2f", cam.Pos.X, cam.Pos.Y, cam.Pos.Z, cam.Phi, cam.Theta),
	}
	face := basicfont.Face7x13
	x := viewport.Min.X + minimapMargin
	y := viewport.Min.Y + minimapMargin
	fillRect(screen, o.pixel, image.Rect(x-4, y-2, x+8*42, y+len(lines)*15+4), color.RGBA{A: 140})
	for i, line := range lines {
		text.Draw(screen, line, face, x, y+13+i*15, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

func (o *Overlay) drawMinimap(screen *ebiten.Image, viewport image.Rectangle) {
	if o.mapAge <= 0 {
		fc := o.view.LastContext()
		fc.Resolution = mgl32.Vec2{minimapSize, minimapSize}
		if err := o.mapRenderer.Render(context.Background(), &fc, o.mapBuf, weather.Pixel); err == nil {
			o.mapImg.WritePixels(o.mapBuf.Pix())
		}
		o.mapAge = minimapRefresh
	}
	o.mapAge--

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(viewport.Max.X-minimapSize-minimapMargin), float64(viewport.Max.Y-minimapSize-minimapMargin))
	op.ColorScale.ScaleAlpha(0.85)
	screen.DrawImage(o.mapImg, op)
}

func (o *Overlay) drawSun(screen *ebiten.Image, viewport image.Rectangle) {
	fc := o.view.LastContext()
	uv, ok := shade.Project(&fc, fc.SunDir)
	if !ok || uv[0] < 0 || uv[0] > 1 || uv[1] < 0 || uv[1] > 1 {
		return
	}
	x := float64(viewport.Min.X) + float64(uv[0])*float64(viewport.Dx())
	y := float64(viewport.Min.Y) + (1-float64(uv[1]))*float64(viewport.Dy())
	col := color.RGBA{R: 255, G: 210, B: 90, A: 255}
	half := sunMarkerSize / 2.0
	cx, cy := int(math.Round(x)), int(math.Round(y))
	fillRect(screen, o.pixel, image.Rect(cx-int(half)-3, cy, cx-int(half)+1, cy+1), col)
	fillRect(screen, o.pixel, image.Rect(cx+int(half), cy, cx+int(half)+4, cy+1), col)
	fillRect(screen, o.pixel, image.Rect(cx, cy-int(half)-3, cx+1, cy-int(half)+1), col)
	fillRect(screen, o.pixel, image.Rect(cx, cy+int(half), cx+1, cy+int(half)+4), col)
}
