// Package ui is an immediate-mode widget toolkit drawing into a
// render.Framebuffer.
//
// Widgets are plain functions of the framebuffer, their geometry, their
// current value and the mouse. Draggable widgets (knobs, sliders, scrollbars)
// share a single drag owner held by Context, so at most one of them reacts to
// mouse movement per press even when hit regions overlap.
package ui

// Mouse is the pointer state for one frame, in canvas pixels.
type Mouse struct {
	X, Y int
	Down bool
}

// Config tunes the interaction rules.
type Config struct {
	// KnobSensitivity is the vertical drag distance in pixels that sweeps a
	// knob across its full range.
	KnobSensitivity float32
	// IntegerRangeMax is the largest integral knob range whose values are
	// rounded to whole numbers.
	IntegerRangeMax float32
}

// DefaultConfig returns the stock interaction tuning.
func DefaultConfig() Config {
	return Config{KnobSensitivity: 100, IntegerRangeMax: 256}
}

const noOwner = -1

// Context holds the interaction state shared by all widgets of one panel.
type Context struct {
	cfg Config

	mouse    Mouse
	prevDown bool

	dragID         int
	dragStartX     int
	dragStartY     int
	dragStartValue float32

	nextID int
}

// NewContext returns an idle context using cfg. Zero fields fall back to
// DefaultConfig.
func NewContext(cfg Config) *Context {
	def := DefaultConfig()
	if cfg.KnobSensitivity <= 0 {
		cfg.KnobSensitivity = def.KnobSensitivity
	}
	if cfg.IntegerRangeMax <= 0 {
		cfg.IntegerRangeMax = def.IntegerRangeMax
	}
	return &Context{cfg: cfg, dragID: noOwner}
}

// Config returns the interaction tuning in use.
func (c *Context) Config() Config { return c.cfg }

// Begin starts a frame. It snapshots the mouse, restarts widget ids and
// releases the drag owner when the button went up since the last frame.
func (c *Context) Begin(m Mouse) {
	c.mouse = m
	c.nextID = 0
	if !m.Down && c.prevDown {
		c.dragID = noOwner
	}
}

// End finishes a frame and remembers the button state for edge detection.
func (c *Context) End() {
	c.prevDown = c.mouse.Down
}

// Reset returns the context to its initial idle state.
func (c *Context) Reset() {
	cfg := c.cfg
	*c = Context{cfg: cfg, dragID: noOwner}
}

// DragOwner returns the id of the widget holding the drag, or -1.
func (c *Context) DragOwner() int { return c.dragID }

// Dragging reports whether any widget holds the drag.
func (c *Context) Dragging() bool { return c.dragID != noOwner }

// PrevDown reports the button state recorded by the previous End.
func (c *Context) PrevDown() bool { return c.prevDown }

// id hands out the next widget id of the frame. Ids start at 1.
func (c *Context) id() int {
	c.nextID++
	return c.nextID
}

// pressed reports a button press edge inside a hit region while no widget
// owns the drag.
func (c *Context) pressed(m Mouse, hit bool) bool {
	return hit && m.Down && !c.prevDown && c.dragID == noOwner
}

// grab makes id the drag owner and records the drag origin.
func (c *Context) grab(id int, m Mouse, startValue float32) {
	c.dragID = id
	c.dragStartX = m.X
	c.dragStartY = m.Y
	c.dragStartValue = startValue
}

// owns reports whether id holds the drag and the button is still down.
func (c *Context) owns(id int, m Mouse) bool {
	return c.dragID == id && m.Down
}

// clicked reports a release edge while hovered.
func (c *Context) clicked(m Mouse, hovered bool) bool {
	return hovered && !m.Down && c.prevDown
}
