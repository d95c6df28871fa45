//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a one-line status strip below the panel canvas.
type HUD struct {
	width int
	strip *ebiten.Image
	pixel *ebiten.Image
}

// NewHUD constructs a HUD spanning width window pixels.
func NewHUD(width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{width: width}
	h.strip = ebiten.NewImage(width, hudHeight)
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	return h
}

// Height is the strip height in window pixels.
func (h *HUD) Height() int {
	if h == nil {
		return 0
	}
	return hudHeight
}

// Draw paints the strip at offsetY.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int, st Status) {
	if h == nil || h.strip == nil {
		return
	}
	h.strip.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawRule(color.RGBA{R: 54, G: 56, B: 64, A: 255})

	face := basicfont.Face7x13
	line := st.Line()
	if limit := (h.width - 2*hudPadding) / face.Advance; limit > 0 && len(line) > limit {
		line = line[:limit]
	}
	text.Draw(h.strip, line, face, hudPadding, hudBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.strip, op)
}

func (h *HUD) drawRule(col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(h.width), 1)
	op.ColorScale.ScaleWithColor(col)
	h.strip.DrawImage(h.pixel, op)
}

const (
	hudHeight   = 20
	hudPadding  = 6
	hudBaseline = 14
)
