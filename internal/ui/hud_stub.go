//go:build !ebiten

package ui

import "galton/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.Sim, int) *HUD { return nil }

// Update never reports input in the headless build.
func (h *HUD) Update(int) (core.Input, bool) { return 0, false }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
