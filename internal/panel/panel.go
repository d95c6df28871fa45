// Package panel drives a complete hardware-style control panel: it decodes
// the host's init buffer, lays out the parameter groups and re-renders the
// framebuffer on demand as mouse events arrive.
//
// A Panel is single-threaded. Hosts feed events, call Tick once per display
// frame and upload Framebuffer when Tick reports a new frame.
package panel

import (
	"io"
	"log/slog"

	"hwui/internal/core"
	"hwui/internal/layout"
	"hwui/internal/render"
	"hwui/internal/state"
	"hwui/internal/ui"
	"hwui/internal/wire"
)

// ChangeFunc receives user edits. It is not called for SetParam or
// LoadConfig.
type ChangeFunc func(index int, value float32)

// Option configures a Panel.
type Option func(*Panel)

// WithChangeHandler installs the callback invoked once per user edit.
func WithChangeHandler(fn ChangeFunc) Option {
	return func(p *Panel) { p.onChange = fn }
}

// WithKnobSensitivity sets the vertical drag distance in pixels that sweeps a
// knob across its whole range.
func WithKnobSensitivity(pixels float32) Option {
	return func(p *Panel) { p.uiCfg.KnobSensitivity = pixels }
}

// WithIntegerRange sets the largest integral knob range that rounds to whole
// numbers while dragging.
func WithIntegerRange(max float32) Option {
	return func(p *Panel) { p.uiCfg.IntegerRangeMax = max }
}

// WithLogger routes Init diagnostics to l.
func WithLogger(l *slog.Logger) Option {
	return func(p *Panel) {
		if l != nil {
			p.log = l
		}
	}
}

// Panel is one editor instance.
type Panel struct {
	theme Theme
	fb    *render.Framebuffer
	ctx   *ui.Context
	uiCfg ui.Config

	onChange ChangeFunc
	log      *slog.Logger

	header wire.Header
	reg    *core.Registry
	layout layout.Result

	mouse   ui.Mouse
	scrollY int
	dirty   bool
	frames  int
}

// New creates an empty panel for theme. It renders a bare header until Init
// provides a schema.
func New(theme Theme, opts ...Option) *Panel {
	p := &Panel{
		theme: theme,
		fb:    render.NewFramebuffer(theme.Width, theme.Height),
		uiCfg: ui.DefaultConfig(),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.ctx = ui.NewContext(p.uiCfg)
	p.header = wire.Header{Name: theme.DefaultName, Accent: render.Cyan}
	p.reg = core.NewRegistry(theme.Wire.Limits)
	p.layout = layout.Compute(p.reg, theme.Layout)
	p.dirty = true
	return p
}

// Init replaces the schema with the one decoded from data. Malformed or
// truncated input yields fewer parameters, never an error.
func (p *Panel) Init(data []byte) {
	p.ctx.Reset()
	schema := wire.Decode(data, p.theme.Wire)
	p.header = schema.Header
	if p.header.Name == "" {
		p.header.Name = p.theme.DefaultName
	}
	p.reg = schema.Registry
	p.layout = layout.Compute(p.reg, p.theme.Layout)
	p.scrollY = 0
	p.dirty = true

	p.log.Debug("panel init",
		"theme", p.theme.Name,
		"name", p.header.Name,
		"bytes", len(data),
		"declared", schema.Declared,
		"params", p.reg.Len(),
		"groups", len(p.reg.Groups()),
		"complete", schema.Complete,
		"content_h", p.layout.ContentH,
	)
}

// MouseDown records a button press at x, y.
func (p *Panel) MouseDown(x, y int) {
	p.mouse = ui.Mouse{X: x, Y: y, Down: true}
	p.dirty = true
}

// MouseUp records a button release at x, y.
func (p *Panel) MouseUp(x, y int) {
	p.mouse = ui.Mouse{X: x, Y: y}
	p.dirty = true
}

// MouseMove records pointer motion. Only moves with the button held need a
// new frame.
func (p *Panel) MouseMove(x, y int) {
	p.mouse.X, p.mouse.Y = x, y
	if p.mouse.Down {
		p.dirty = true
	}
}

// MouseWheel scrolls by delta notches, positive scrolling up. It does
// nothing when the content fits the canvas.
func (p *Panel) MouseWheel(delta, x, y int) {
	p.mouse.X, p.mouse.Y = x, y
	if !p.scrollable() {
		return
	}
	p.scrollY = clampInt(p.scrollY-delta*p.theme.WheelStep, 0, p.maxScroll())
	p.dirty = true
}

// Tick renders a frame when something changed since the last one and
// reports whether it did. The dirty flag is cleared before rendering, so
// edits made during the pass schedule one more frame.
func (p *Panel) Tick() bool {
	if !p.dirty {
		return false
	}
	p.dirty = false
	p.render()
	p.frames++
	return true
}

// LoadConfig applies a flat float32 value buffer and returns the number of
// values applied. The change handler is not called.
func (p *Panel) LoadConfig(buf []byte) int {
	n := state.Load(p.reg, buf)
	p.dirty = true
	return n
}

// DumpConfig writes the current values into buf and returns the bytes
// written.
func (p *Panel) DumpConfig(buf []byte) int {
	return state.Dump(p.reg, buf)
}

// ConfigSize is the buffer size DumpConfig needs for every value.
func (p *Panel) ConfigSize() int {
	return p.reg.Len() * state.ValueSize
}

// SetParam stores v without range checks or change notification. Out of
// range indices are ignored.
func (p *Panel) SetParam(index int, v float32) {
	if p.reg.SetValue(index, v) {
		p.dirty = true
	}
}

// Param returns the value at index, or 0 when index is out of range.
func (p *Panel) Param(index int) float32 {
	return p.reg.Value(index)
}

// Framebuffer is the canvas Tick renders into.
func (p *Panel) Framebuffer() *render.Framebuffer { return p.fb }

// Registry exposes the decoded parameters.
func (p *Panel) Registry() *core.Registry { return p.reg }

// Layout returns the current group placement in content coordinates.
func (p *Panel) Layout() layout.Result { return p.layout }

// Theme returns the panel's theme.
func (p *Panel) Theme() Theme { return p.theme }

// Header returns the decoded name, subtitle and accent.
func (p *Panel) Header() wire.Header { return p.header }

// ScrollY is the current vertical scroll offset.
func (p *Panel) ScrollY() int { return p.scrollY }

// Dirty reports whether the next Tick will render.
func (p *Panel) Dirty() bool { return p.dirty }

// Frames counts rendered frames.
func (p *Panel) Frames() int { return p.frames }

// Size returns the canvas size.
func (p *Panel) Size() (int, int) { return p.theme.Width, p.theme.Height }

// MaxScroll is the largest ScrollY the wheel and scrollbar can reach, or 0
// when the content fits.
func (p *Panel) MaxScroll() int {
	if !p.scrollable() {
		return 0
	}
	return p.maxScroll()
}

// Invalidate forces the next Tick to render.
func (p *Panel) Invalidate() { p.dirty = true }

func (p *Panel) viewH() int { return p.theme.Height - p.theme.Top() }

func (p *Panel) scrollable() bool { return p.layout.ContentH > p.theme.Height }

func (p *Panel) maxScroll() int {
	if m := p.layout.ContentH - p.viewH(); m > 0 {
		return m
	}
	return 0
}

// commit stores a user edit and notifies the host. Edits that leave the
// value unchanged are dropped.
func (p *Panel) commit(index int, v float32) {
	if p.reg.Value(index) == v {
		return
	}
	p.reg.SetValue(index, v)
	p.dirty = true
	if p.onChange != nil {
		p.onChange(index, v)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
