//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"hwui/internal/core"
	"hwui/internal/layout"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws layout debugging outlines over the panel. Key 1 toggles the
// group boxes, key 2 the widget slots.
type Overlay struct {
	scale      int
	showGroups bool
	showSlots  bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay for a canvas drawn at scale.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update polls the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showGroups = !o.showGroups
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showSlots = !o.showSlots
	}
}

// Active reports whether anything is being drawn.
func (o *Overlay) Active() bool { return o.showGroups || o.showSlots }

// Draw outlines res as it appears scrolled by scrollY. Nothing above top is
// drawn so the header stays readable.
func (o *Overlay) Draw(screen *ebiten.Image, res layout.Result, scrollY, top int) {
	if !o.Active() {
		return
	}
	shift := image.Pt(0, scrollY)
	for _, box := range res.Groups {
		if o.showGroups {
			o.outline(screen, box.Rect.Sub(shift), top, color.RGBA{R: 255, G: 80, B: 200, A: 200})
		}
		if !o.showSlots {
			continue
		}
		for _, s := range box.Slots {
			o.outline(screen, s.Rect.Sub(shift), top, slotColor(s.Kind))
		}
	}
}

func (o *Overlay) outline(screen *ebiten.Image, r image.Rectangle, top int, col color.RGBA) {
	if r.Max.Y <= top {
		return
	}
	if r.Min.Y < top {
		r.Min.Y = top
	}
	s := float64(o.scale)
	x0, y0 := float64(r.Min.X)*s, float64(r.Min.Y)*s
	w, h := float64(r.Dx())*s, float64(r.Dy())*s
	o.fill(screen, x0, y0, w, 1, col)
	o.fill(screen, x0, y0+h-1, w, 1, col)
	o.fill(screen, x0, y0, 1, h, col)
	o.fill(screen, x0+w-1, y0, 1, h, col)
}

func (o *Overlay) fill(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func slotColor(k core.Kind) color.RGBA {
	switch k {
	case core.KindKnob:
		return color.RGBA{R: 64, G: 164, B: 223, A: 200}
	case core.KindSelect:
		return color.RGBA{R: 255, G: 200, B: 60, A: 200}
	default:
		return color.RGBA{R: 90, G: 220, B: 120, A: 200}
	}
}
