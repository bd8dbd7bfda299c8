//go:build !ebiten

package ui

import "nimbus/internal/views"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(views.Host) *Overlay { return &Overlay{} }

// SetView is a no-op in headless builds.
func (o *Overlay) SetView(views.Host) {}

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, any) {}
