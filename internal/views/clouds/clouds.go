// Package clouds is the full sky, ground and cloud pipeline as a view.
package clouds

import (
	"nimbus/internal/core"
	"nimbus/internal/shade"
	"nimbus/internal/views"
)

// View renders the tone-mapped cloud scene.
type View struct {
	*views.Base
}

// New creates the view from cfg.
func New(cfg views.Config) *View {
	return &View{Base: views.NewBase(cfg)}
}

// Name implements core.View.
func (v *View) Name() string { return "clouds" }

// Step renders the next frame. The clock runs on wall time, so dt is only
// used by hosts that integrate input.
func (v *View) Step(float64) {
	v.Render(shade.Shade)
}

func init() {
	core.Register("clouds", func(cfg map[string]string) core.View {
		return New(views.FromMap(cfg))
	})
}
