// Package layout arranges registry groups into a fixed-column grid of boxes
// and places every parameter's widget inside its box.
//
// Sizing and placement come from one walk over each group's parameters, so
// the box height always matches what the render pass draws.
package layout

import (
	"image"

	"hwui/internal/core"
	"hwui/internal/font"
)

// Metrics are the theme-dependent sizes the layout works with.
type Metrics struct {
	// Width is the canvas width the grid spans.
	Width int
	// Top is the first content row below the header bars.
	Top int
	// Pad separates groups from each other and from the canvas edges.
	Pad int
	// Inner is the padding inside a group box.
	Inner int
	// Columns is the number of groups per grid row.
	Columns int

	KnobsPerRow int
	KnobCellW   int
	KnobCellH   int
	SelectH     int
	ToggleH     int
	// Gap follows every select and toggle row.
	Gap int

	// HeaderPad is added to the font height for the group title when
	// sizing a box.
	HeaderPad int
	// BodyOffset is added to the font height to find where widgets start
	// below the box top.
	BodyOffset int
	// MinGroupH floors the height of every box.
	MinGroupH int
}

// Slot is the placement of one parameter's widget in content coordinates.
type Slot struct {
	Param int
	Kind  core.Kind
	// Rect is the knob cell for knobs, or the full inner row for selects and
	// toggles.
	Rect image.Rectangle
	// Col is the knob column within its row, 0 for other kinds.
	Col int
}

// Box is a laid out group.
type Box struct {
	Name  string
	Rect  image.Rectangle
	Slots []Slot
}

// Result is the outcome of Compute.
type Result struct {
	Groups []Box
	// ContentH is the height of everything that scrolls, including the area
	// above Top.
	ContentH int
}

// Compute lays out every group of reg. It is a pure function of the registry
// and metrics. Parameters with an unknown kind take no space.
func Compute(reg *core.Registry, m Metrics) Result {
	m = m.normalized()
	groups := reg.Groups()
	res := Result{Groups: make([]Box, 0, len(groups))}

	colW := (m.Width - m.Pad*(m.Columns+1)) / m.Columns
	x, y := m.Pad, m.Top+m.Pad
	col, rowH := 0, 0
	bottom := 0

	for _, g := range groups {
		slots, contentH := walk(reg, g, m, colW)
		h := font.H + m.HeaderPad + 2*m.Inner + contentH
		if h < m.MinGroupH {
			h = m.MinGroupH
		}
		rect := image.Rect(x, y, x+colW, y+h)
		for i := range slots {
			slots[i].Rect = slots[i].Rect.Add(rect.Min)
		}
		res.Groups = append(res.Groups, Box{Name: g.Name, Rect: rect, Slots: slots})

		if rect.Max.Y > bottom {
			bottom = rect.Max.Y
		}
		if h > rowH {
			rowH = h
		}
		col++
		if col >= m.Columns {
			col = 0
			x = m.Pad
			y += rowH + m.Pad
			rowH = 0
		} else {
			x += colW + m.Pad
		}
	}

	if len(res.Groups) == 0 {
		res.ContentH = m.Top + m.Pad
	} else {
		res.ContentH = bottom + m.Pad
	}
	return res
}

// walk places the widgets of one group relative to the box origin and returns
// the content height they consume.
func walk(reg *core.Registry, g core.Group, m Metrics, colW int) ([]Slot, int) {
	innerX := m.Inner
	innerW := colW - 2*m.Inner
	cy := font.H + m.BodyOffset + m.Inner
	start := cy
	knobCol := 0

	closeRow := func() {
		if knobCol > 0 {
			knobCol = 0
			cy += m.KnobCellH
		}
	}

	slots := make([]Slot, 0, len(g.Params))
	for _, idx := range g.Params {
		p, ok := reg.Param(idx)
		if !ok {
			continue
		}
		switch p.Kind {
		case core.KindKnob:
			kx := innerX + knobCol*m.KnobCellW
			slots = append(slots, Slot{
				Param: idx,
				Kind:  p.Kind,
				Rect:  image.Rect(kx, cy, kx+m.KnobCellW, cy+m.KnobCellH),
				Col:   knobCol,
			})
			knobCol++
			if knobCol >= m.KnobsPerRow {
				knobCol = 0
				cy += m.KnobCellH
			}
		case core.KindSelect:
			closeRow()
			slots = append(slots, Slot{Param: idx, Kind: p.Kind, Rect: image.Rect(innerX, cy, innerX+innerW, cy+m.SelectH)})
			cy += m.SelectH + m.Gap
		case core.KindToggle:
			closeRow()
			slots = append(slots, Slot{Param: idx, Kind: p.Kind, Rect: image.Rect(innerX, cy, innerX+innerW, cy+m.ToggleH)})
			cy += m.ToggleH + m.Gap
		}
	}
	closeRow()
	return slots, cy - start
}

func (m Metrics) normalized() Metrics {
	if m.Columns <= 0 {
		m.Columns = 1
	}
	if m.KnobsPerRow <= 0 {
		m.KnobsPerRow = 1
	}
	return m
}
