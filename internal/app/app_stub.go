//go:build !ebiten

package app

import (
	"errors"
	"log/slog"

	"hwui/internal/panel"
)

// ErrNoGUI is returned by New when the binary was built without the ebiten
// tag.
var ErrNoGUI = errors.New("the window requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the ebiten build tag is required for GUI support.
func New(*Config, *slog.Logger) (*Game, error) { return nil, ErrNoGUI }

// Panel returns nil in the headless build.
func (g *Game) Panel() *panel.Panel { return nil }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
