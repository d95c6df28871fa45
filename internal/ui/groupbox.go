package ui

import (
	"hwui/internal/font"
	"hwui/internal/render"
)

// GroupBox draws an etched frame with its label set into the top edge.
func GroupBox(fb *render.Framebuffer, x, y, w, h int, label string, accent uint32) {
	fb.HLine(x, y+4, w, render.PanelShadow)
	fb.HLine(x, y+h-1, w, render.PanelHi)
	fb.VLine(x, y+4, h-4, render.PanelShadow)
	fb.VLine(x+w-1, y+4, h-4, render.PanelHi)

	fb.HLine(x+1, y+5, w-2, render.PanelHi)
	fb.HLine(x+1, y+h-2, w-2, render.PanelShadow)
	fb.VLine(x+1, y+5, h-6, render.PanelHi)
	fb.VLine(x+w-2, y+5, h-6, render.PanelShadow)

	if label != "" {
		fb.Rect(x+6, y, font.Width(label)+4, font.H+2, render.Panel)
		text(fb, x+8, y+1, label, accent)
	}
}

// CardBox draws a flat dark card with a tinted title strip.
func CardBox(fb *render.Framebuffer, x, y, w, h int, label string, accent uint32) {
	fb.Rect(x, y, w, h, CardFill)
	fb.RectOutline(x, y, w, h, render.Blend(accent, CardFill, 0.35))
	fb.Rect(x+1, y+1, w-2, font.H+6, render.Blend(accent, CardFill, 0.15))
	fb.HLine(x+1, y+font.H+7, w-2, render.Blend(accent, CardFill, 0.35))
	text(fb, x+6, y+4, label, accent)
}

// CardFill is the body color of CardBox.
const CardFill uint32 = 0xFF242424
