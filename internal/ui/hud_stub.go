//go:build !ebiten

package ui

import "nimbus/internal/views"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(views.Host, int) *HUD { return nil }

// SetView is a no-op in the headless build.
func (h *HUD) SetView(views.Host) {}

// Width is zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Contains always reports false in the headless build.
func (h *HUD) Contains(int, int) bool { return false }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
