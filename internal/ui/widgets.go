package ui

import (
	"math"

	"hwui/internal/font"
	"hwui/internal/render"
)

// Button draws a push button and reports a click: pressed and released while
// hovered. It does not take part in dragging. pressed forces the sunken look.
func (c *Context) Button(fb *render.Framebuffer, x, y, w, h int, label string, pressed bool, m Mouse) bool {
	hovered := pointIn(m, x, y, w, h)
	active := pressed || (hovered && m.Down)

	face, hi, sh := render.Panel, render.PanelHi, render.PanelShadow
	if active {
		face, hi, sh = render.PanelShadow, render.PanelShadow, render.PanelHi
	}
	fb.Panel3D(x, y, w, h, face, hi, sh)

	off := 0
	if active {
		off = 1
	}
	tx := x + (w-font.Width(label))/2 + off
	ty := y + (h-font.H)/2 + off
	text(fb, tx, ty, label, render.Black)

	return c.clicked(m, hovered)
}

// Knob draws a rotary knob of the given radius with its top-left corner at
// x, y and handles vertical drags. It returns the new value and whether it
// changed. Integral ranges up to Config.IntegerRangeMax snap to whole
// numbers.
func (c *Context) Knob(fb *render.Framebuffer, x, y, radius int, value, min, max float32, label string, col uint32, m Mouse) (float32, bool) {
	id := c.id()
	cx, cy := x+radius, y+radius
	span := max - min
	if span <= 0 {
		span = 1
	}
	integral := c.integralRange(span)
	norm := clamp01((value - min) / span)

	dx, dy := m.X-cx, m.Y-cy
	reach := radius + knobHitSlack
	if c.pressed(m, dx*dx+dy*dy <= reach*reach) {
		c.grab(id, m, norm)
	}

	changed := false
	if c.owns(id, m) {
		delta := float32(c.dragStartY-m.Y) / c.cfg.KnobSensitivity
		next := min + clamp01(c.dragStartValue+delta)*span
		if integral {
			next = clamp(float32(math.Round(float64(next))), min, max)
		}
		if next != value {
			value = next
			norm = clamp01((value - min) / span)
			changed = true
		}
	}

	for py := -radius; py <= radius; py++ {
		for px := -radius; px <= radius; px++ {
			if px*px+py*py > radius*radius {
				continue
			}
			shade := render.GrayMed
			if px+py < 0 {
				shade = render.GrayLight
			}
			fb.Pixel(cx+px, cy+py, shade)
		}
	}

	arcR := float64(radius - 2)
	for i := 0; i <= knobArcSteps; i++ {
		a := knobStartAngle - float64(i)/knobArcSteps*knobSweepAngle
		fb.Pixel(cx+int(arcR*math.Cos(a)), cy-int(arcR*math.Sin(a)), render.GrayDark)
	}
	filled := int(norm * knobArcSteps)
	for i := 0; i <= filled; i++ {
		a := knobStartAngle - float64(i)/knobArcSteps*knobSweepAngle
		ax, ay := cx+int(arcR*math.Cos(a)), cy-int(arcR*math.Sin(a))
		fb.Pixel(ax, ay, col)
		fb.Pixel(ax+1, ay, col)
		fb.Pixel(ax, ay+1, col)
	}

	a := knobStartAngle - float64(norm)*knobSweepAngle
	pr := float64(radius - 4)
	px, py := cx+int(pr*math.Cos(a)), cy-int(pr*math.Sin(a))
	fb.Rect(px-1, py-1, 3, 3, render.White)

	labelY := y + 2*radius + 2
	if label != "" {
		centered(fb, x, labelY, 2*radius, font.H, label, render.GrayLight)
	}
	var readout string
	if integral {
		readout = font.Int(int(value))
	} else {
		readout = font.Float(value, 2)
	}
	centered(fb, x, labelY+font.H+1, 2*radius, font.H, readout, render.GrayBright)

	return value, changed
}

// SliderH draws a horizontal slider and maps drags to the absolute pointer
// position along the track.
func (c *Context) SliderH(fb *render.Framebuffer, x, y, w, h int, value, min, max float32, col uint32, m Mouse) (float32, bool) {
	id := c.id()
	span := max - min
	if span <= 0 {
		span = 1
	}
	norm := clamp01((value - min) / span)

	if c.pressed(m, pointIn(m, x, y, w, h)) {
		c.grab(id, m, norm)
	}
	changed := false
	if c.owns(id, m) && w > sliderThumb {
		next := clamp01(float32(m.X-x-sliderThumb/2) / float32(w-sliderThumb))
		if v := min + next*span; v != value {
			value, norm, changed = v, next, true
		}
	}

	trackY := y + h/2 - 1
	fb.PanelSunken(x, trackY, w, 3)
	if fill := int(norm * float32(w-2)); fill > 0 {
		fb.Rect(x+1, trackY+1, fill, 1, col)
	}
	fb.PanelRaised(x+int(norm*float32(w-sliderThumb)), y, sliderThumb, h)
	return value, changed
}

// SliderV draws a vertical slider with the maximum at the top.
func (c *Context) SliderV(fb *render.Framebuffer, x, y, w, h int, value, min, max float32, col uint32, m Mouse) (float32, bool) {
	id := c.id()
	span := max - min
	if span <= 0 {
		span = 1
	}
	norm := clamp01((value - min) / span)

	if c.pressed(m, pointIn(m, x, y, w, h)) {
		c.grab(id, m, norm)
	}
	changed := false
	if c.owns(id, m) && h > sliderThumb {
		next := clamp01(1 - float32(m.Y-y-sliderThumb/2)/float32(h-sliderThumb))
		if v := min + next*span; v != value {
			value, norm, changed = v, next, true
		}
	}

	trackX := x + w/2 - 1
	fb.PanelSunken(trackX, y, 3, h)
	if fill := int(norm * float32(h-2)); fill > 0 {
		fb.Rect(trackX+1, y+h-1-fill, 1, fill, col)
	}
	fb.PanelRaised(x, y+h-sliderThumb-int(norm*float32(h-sliderThumb)), w, sliderThumb)
	return value, changed
}

// Checkbox draws a check box followed by its label and reports a click on
// either.
func (c *Context) Checkbox(fb *render.Framebuffer, x, y int, label string, checked bool, m Mouse) bool {
	hitW := checkBox + checkGap + font.Width(label)
	hovered := pointIn(m, x, y, hitW, checkBox)

	fb.PanelSunken(x, y, checkBox, checkBox)
	if checked {
		fb.Line(x+2, y+4, x+3, y+6, render.Green)
		fb.Line(x+3, y+6, x+6, y+2, render.Green)
	}
	text(fb, x+checkBox+checkGap, y+1, label, render.GrayLight)

	return c.clicked(m, hovered)
}

// Dropdown draws the selected option with prev/next arrow buttons. The index
// moves one step per click and stops at either end.
func (c *Context) Dropdown(fb *render.Framebuffer, x, y, w int, options []string, selected int, m Mouse) (int, bool) {
	h := DropdownH
	fb.PanelSunken(x, y, w, h)
	if selected >= 0 && selected < len(options) {
		text(fb, x+3, y+2, options[selected], render.White)
	}

	prev := c.Button(fb, x+w-2*dropdownArrowW, y, dropdownArrowW, h, "<", false, m)
	next := c.Button(fb, x+w-dropdownArrowW, y, dropdownArrowW, h, ">", false, m)

	changed := false
	if prev && selected > 0 {
		selected--
		changed = true
	}
	if next && selected < len(options)-1 {
		selected++
		changed = true
	}
	return selected, changed
}

// ScrollbarH draws a horizontal scrollbar for content wider than view and
// returns the new offset in [0, content-view].
func (c *Context) ScrollbarH(fb *render.Framebuffer, x, y, w, h, content, view, pos int, m Mouse) (int, bool) {
	id := c.id()
	fb.PanelSunken(x, y, w, h)
	if content <= 0 || view >= content {
		return pos, false
	}

	thumbX, thumbW := thumbSpan(x, w, content, view, pos)
	if c.pressed(m, pointIn(m, x, y, w, h)) {
		c.grab(id, m, 0)
	}
	changed := false
	if c.owns(id, m) {
		if next := scrollTo(m.X-x-thumbW/2, w-thumbW, content-view); next != pos {
			pos, changed = next, true
		}
	}
	fb.PanelRaised(thumbX, y+1, thumbW, h-2)
	return pos, changed
}

// ScrollbarV draws a vertical scrollbar for content taller than view and
// returns the new offset in [0, content-view].
func (c *Context) ScrollbarV(fb *render.Framebuffer, x, y, w, h, content, view, pos int, m Mouse) (int, bool) {
	id := c.id()
	fb.PanelSunken(x, y, w, h)
	if content <= 0 || view >= content {
		return pos, false
	}

	thumbY, thumbH := thumbSpan(y, h, content, view, pos)
	if c.pressed(m, pointIn(m, x, y, w, h)) {
		c.grab(id, m, 0)
	}
	changed := false
	if c.owns(id, m) {
		if next := scrollTo(m.Y-y-thumbH/2, h-thumbH, content-view); next != pos {
			pos, changed = next, true
		}
	}
	fb.PanelRaised(x+1, thumbY, w-2, thumbH)
	return pos, changed
}

// thumbSpan returns the thumb origin and length along a track, keeping the
// thumb inside the track.
func thumbSpan(origin, track, content, view, pos int) (int, int) {
	start := origin + int(float32(pos)/float32(content)*float32(track))
	size := int(float32(view) / float32(content) * float32(track))
	if size < scrollMinThumb {
		size = scrollMinThumb
	}
	if start+size > origin+track {
		start = origin + track - size
	}
	return start, size
}

// scrollTo maps a pointer offset along the free part of a track to a scroll
// position in [0, maxPos].
func scrollTo(offset, free, maxPos int) int {
	frac := float32(0)
	if free > 0 {
		frac = clamp01(float32(offset) / float32(free))
	}
	pos := int(frac * float32(maxPos))
	if pos < 0 {
		pos = 0
	}
	if pos > maxPos {
		pos = maxPos
	}
	return pos
}

func (c *Context) integralRange(span float32) bool {
	return span == float32(int(span)) && span <= c.cfg.IntegerRangeMax
}

func pointIn(m Mouse, x, y, w, h int) bool {
	return m.X >= x && m.X < x+w && m.Y >= y && m.Y < y+h
}

func text(fb *render.Framebuffer, x, y int, s string, col uint32) int {
	return font.Draw(fb, x, y, s, render.ToRGBA(col))
}

func centered(fb *render.Framebuffer, x, y, w, h int, s string, col uint32) {
	font.Centered(fb, x, y, w, h, s, render.ToRGBA(col))
}

func clamp01(v float32) float32 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DropdownH is the height of a dropdown row.
const DropdownH = font.H + 4

const (
	knobHitSlack   = 4
	knobArcSteps   = 36
	knobStartAngle = 225 * math.Pi / 180
	knobSweepAngle = 270 * math.Pi / 180

	sliderThumb = 6

	checkBox = 8
	checkGap = 3

	dropdownArrowW = 10

	scrollMinThumb = 8
)
