//go:build ebiten

package app

import (
	"log/slog"

	"hwui/internal/panel"
	"hwui/internal/render"
	"hwui/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a panel to the ebiten.Game interface.
type Game struct {
	panel   *panel.Panel
	painter *render.FramePainter
	hud     *ui.HUD
	overlay *ui.Overlay

	cfg    *Config
	log    *slog.Logger
	scale  int
	status ui.Status
}

// New constructs a Game for the configured preset. Edits made in the
// window are shown in the HUD and logged at debug level.
func New(cfg *Config, log *slog.Logger) (*Game, error) {
	g := &Game{cfg: cfg, log: log, scale: cfg.Scale}
	if g.scale <= 0 {
		g.scale = 1
	}
	p, err := Open(cfg, log, panel.WithChangeHandler(g.onChange))
	if err != nil {
		return nil, err
	}
	g.panel = p
	w, h := p.Size()
	g.painter = render.NewFramePainter(w, h)
	g.hud = ui.NewHUD(w * g.scale)
	g.overlay = ui.NewOverlay(g.scale)
	g.status = ui.Status{Title: p.Header().Name, Params: p.Registry().Len()}
	return g, nil
}

// Panel exposes the driven panel.
func (g *Game) Panel() *panel.Panel { return g.panel }

func (g *Game) onChange(index int, value float32) {
	label := ""
	if prm, ok := g.panel.Registry().Param(index); ok {
		label = prm.Label
	}
	g.status.Last = ui.Describe(index, label, value)
	g.log.Debug("param changed", "index", index, "label", label, "value", value)
}

// Update feeds input to the panel and renders it when needed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if ctrlHeld() && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.save()
	}
	g.overlay.Update()

	cx, cy := ebiten.CursorPosition()
	x, y := cx/g.scale, cy/g.scale
	g.panel.MouseMove(x, y)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.panel.MouseDown(x, y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.panel.MouseUp(x, y)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		notches := int(dy)
		if notches == 0 {
			// Trackpads report fractional deltas.
			notches = 1
			if dy < 0 {
				notches = -1
			}
		}
		g.panel.MouseWheel(notches, x, y)
	}

	if g.panel.Tick() {
		g.painter.Upload(g.panel.Framebuffer())
	}
	g.status.Frames = g.panel.Frames()
	g.status.Scroll = g.panel.ScrollY()
	g.status.MaxScroll = g.panel.MaxScroll()
	return nil
}

func (g *Game) save() {
	if g.cfg.State == "" {
		g.status.Last = "no -state file"
		return
	}
	if err := SaveState(g.panel, g.cfg.State); err != nil {
		g.log.Error("save failed", "err", err)
		g.status.Last = "save failed"
		return
	}
	g.log.Info("saved state", "path", g.cfg.State, "values", g.panel.Registry().Len())
	g.status.Last = "saved " + g.cfg.State
}

// Draw renders the panel, the layout overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen, g.panel.Layout(), g.panel.ScrollY(), g.panel.Theme().Top())
	_, h := g.panel.Size()
	g.hud.Draw(screen, h*g.scale, g.status)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.panel.Size()
	return w * g.scale, h*g.scale + g.hud.Height()
}

func ctrlHeld() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}
