//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Height is always 0 in the headless build.
func (h *HUD) Height() int { return 0 }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, Status) {}
