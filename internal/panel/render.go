package panel

import (
	"image"

	"hwui/internal/core"
	"hwui/internal/font"
	"hwui/internal/layout"
	"hwui/internal/render"
	"hwui/internal/ui"
)

// render draws one full frame and applies any edits it produces. Groups are
// drawn first and the header bars over them, so scrolled content slides
// under the header.
func (p *Panel) render() {
	fb := p.fb
	fb.Clear(p.theme.Background)

	p.ctx.Begin(p.mouse)
	wm := p.widgetMouse()
	for _, box := range p.layout.Groups {
		p.drawGroup(box, wm)
	}
	p.drawHeader()
	if p.scrollable() {
		p.drawScrollbar()
	}
	p.ctx.End()
}

// widgetMouse hides the pointer from the widgets while it is over the header
// bars or the scrollbar strip, unless a drag is already in progress.
func (p *Panel) widgetMouse() ui.Mouse {
	m := p.mouse
	if p.ctx.Dragging() {
		return m
	}
	overScrollbar := p.scrollable() && m.X >= p.theme.Width-p.theme.ScrollbarW
	if m.Y < p.theme.Top() || overScrollbar {
		return ui.Mouse{X: -1, Y: -1, Down: m.Down}
	}
	return m
}

func (p *Panel) drawGroup(box layout.Box, m ui.Mouse) {
	x, y := box.Rect.Min.X, box.Rect.Min.Y-p.scrollY
	w, h := box.Rect.Dx(), box.Rect.Dy()
	switch p.theme.Groups {
	case GroupCard:
		ui.CardBox(p.fb, x, y, w, h, box.Name, p.header.Accent)
	default:
		ui.GroupBox(p.fb, x, y, w, h, box.Name, p.header.Accent)
	}

	for _, slot := range box.Slots {
		param, ok := p.reg.Param(slot.Param)
		if !ok {
			continue
		}
		r := slot.Rect.Sub(image.Pt(0, p.scrollY))
		switch slot.Kind {
		case core.KindKnob:
			p.drawKnob(slot.Param, param, r.Min.X, r.Min.Y, m)
		case core.KindSelect:
			p.drawSelect(slot.Param, param, r.Min.X, r.Min.Y, r.Dx(), m)
		case core.KindToggle:
			if p.ctx.Checkbox(p.fb, r.Min.X, r.Min.Y, param.Label, param.Checked(), m) {
				next := float32(1)
				if param.Checked() {
					next = 0
				}
				p.commit(slot.Param, next)
			}
		}
	}
}

func (p *Panel) drawKnob(index int, param core.Parameter, cellX, cellY int, m ui.Mouse) {
	r := p.theme.KnobRadius
	kx := cellX + (p.theme.Layout.KnobCellW-2*r)/2
	v, changed := p.ctx.Knob(p.fb, kx, cellY, r, param.Value, param.Min, param.Max, param.Label, p.header.Accent, m)
	if changed {
		p.commit(index, param.Snapped(v))
	}
}

func (p *Panel) drawSelect(index int, param core.Parameter, x, y, w int, m ui.Mouse) {
	font.Draw(p.fb, x, y+p.theme.SelectLabelDY, param.Label, render.ToRGBA(render.GrayLight))

	dx := x + font.Width(param.Label) + p.theme.SelectLabelGap
	dw := x + w - dx
	if dw < p.theme.SelectMinW {
		dw = p.theme.SelectMinW
	}
	labels := make([]string, len(param.Options))
	for i, opt := range param.Options {
		labels[i] = opt.Label
	}
	sel, changed := p.ctx.Dropdown(p.fb, dx, y, dw, labels, param.SelectedIndex(), m)
	if changed && sel >= 0 && sel < len(param.Options) {
		p.commit(index, param.Options[sel].Value)
	}
}

func (p *Panel) drawHeader() {
	t := p.theme
	fb := p.fb
	accent := p.header.Accent
	white := render.ToRGBA(render.White)

	switch t.Header {
	case HeaderGradient:
		for row := 0; row < t.HeaderH; row++ {
			shade := float32(row) / float32(t.HeaderH)
			fb.HLine(0, row, t.Width, render.Darken(accent, 0.5+0.3*(1-shade)))
		}
		fb.HLine(0, t.HeaderH-1, t.Width, accent)
		font.Centered(fb, 0, 0, t.Width, t.HeaderH-1, p.header.Name, white)
	default:
		fb.Rect(0, 0, t.Width, t.HeaderH, accent)
		font.Centered(fb, 0, 0, t.Width, t.HeaderH, p.header.Name, white)
	}

	if t.SubtitleH <= 0 {
		return
	}
	if t.ShowSubtitle && p.header.Subtitle != "" {
		fb.Rect(0, t.HeaderH, t.Width, t.SubtitleH, render.GrayDark)
		font.Centered(fb, 0, t.HeaderH, t.Width, t.SubtitleH, p.header.Subtitle, render.ToRGBA(render.GrayLight))
		return
	}
	fb.Rect(0, t.HeaderH, t.Width, t.SubtitleH, t.Background)
}

func (p *Panel) drawScrollbar() {
	t := p.theme
	view := p.viewH()
	pos, changed := p.ctx.ScrollbarV(p.fb, t.Width-t.ScrollbarW, t.Top(), t.ScrollbarW, view,
		p.layout.ContentH, view, p.scrollY, p.mouse)
	if changed {
		p.scrollY = pos
		p.dirty = true
	}
}
