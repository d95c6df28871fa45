package ui

import (
	"math"
	"testing"

	"hwui/internal/render"
)

func newCanvas() *render.Framebuffer {
	return render.NewFramebuffer(160, 120)
}

// step runs one frame with the given mouse state.
func step(ctx *Context, m Mouse, draw func(m Mouse)) {
	ctx.Begin(m)
	draw(m)
	ctx.End()
}

func TestKnobDragUpIncreasesValue(t *testing.T) {
	fb := newCanvas()
	ctx := NewContext(DefaultConfig())
	value := float32(50)
	changes := 0
	knob := func(m Mouse) {
		if v, ok := ctx.Knob(fb, 0, 0, 12, value, 0, 100, "Cutoff", render.Cyan, m); ok {
			value = v
			changes++
		}
	}

	step(ctx, Mouse{X: 12, Y: 12, Down: true}, knob)
	if changes != 0 || ctx.DragOwner() != 1 {
		t.Fatalf("press must grab without changing: changes=%d owner=%d", changes, ctx.DragOwner())
	}
	step(ctx, Mouse{X: 12, Y: 12 - 25, Down: true}, knob)
	if changes != 1 || value != 75 {
		t.Fatalf("after 25px drag: value=%v changes=%d", value, changes)
	}
	step(ctx, Mouse{X: 12, Y: 12 - 25, Down: true}, knob)
	if changes != 1 {
		t.Fatal("holding still must not report another change")
	}
	step(ctx, Mouse{X: 12, Y: 12 - 200, Down: true}, knob)
	if value != 100 {
		t.Fatalf("overshoot must clamp to max, got %v", value)
	}
	step(ctx, Mouse{X: 12, Y: 12 - 200}, knob)
	if ctx.Dragging() {
		t.Fatal("release must clear the drag owner")
	}
}

func TestOverlappingKnobsDragExclusively(t *testing.T) {
	fb := newCanvas()
	ctx := NewContext(DefaultConfig())
	a, b := float32(50), float32(20)
	changedA, changedB := 0, 0
	both := func(m Mouse) {
		if v, ok := ctx.Knob(fb, 0, 0, 12, a, 0, 100, "A", render.Cyan, m); ok {
			a = v
			changedA++
		}
		if v, ok := ctx.Knob(fb, 4, 4, 12, b, 0, 100, "B", render.Amber, m); ok {
			b = v
			changedB++
		}
	}

	step(ctx, Mouse{X: 14, Y: 14, Down: true}, both)
	for dy := 1; dy <= 40; dy += 7 {
		step(ctx, Mouse{X: 14, Y: 14 - dy, Down: true}, both)
	}
	if changedA == 0 {
		t.Fatal("first knob under the pointer must own the drag")
	}
	if changedB != 0 || b != 20 {
		t.Fatalf("second knob changed during the same press: %v (%d changes)", b, changedB)
	}

	step(ctx, Mouse{X: 14, Y: 0}, both)
	step(ctx, Mouse{X: 200, Y: 200, Down: true}, both)
	if ctx.Dragging() {
		t.Fatal("press outside every widget must not grab")
	}
}

func TestKnobIntegerRangeRounds(t *testing.T) {
	fb := newCanvas()
	for _, span := range []float32{1, 7, 10, 255, 256} {
		ctx := NewContext(DefaultConfig())
		value := float32(0)
		knob := func(m Mouse) {
			if v, ok := ctx.Knob(fb, 0, 0, 12, value, 0, span, "", render.Cyan, m); ok {
				value = v
			}
		}
		step(ctx, Mouse{X: 12, Y: 12, Down: true}, knob)
		for y := 11; y > -100; y -= 3 {
			step(ctx, Mouse{X: 12, Y: y, Down: true}, knob)
			if value != float32(math.Round(float64(value))) {
				t.Fatalf("span %v: value %v is not whole", span, value)
			}
			if value < 0 || value > span {
				t.Fatalf("span %v: value %v out of range", span, value)
			}
		}
	}
}

func TestKnobWideRangeStaysContinuous(t *testing.T) {
	fb := newCanvas()
	ctx := NewContext(DefaultConfig())
	value := float32(0)
	knob := func(m Mouse) {
		if v, ok := ctx.Knob(fb, 0, 0, 12, value, 0, 257, "", render.Cyan, m); ok {
			value = v
		}
	}
	step(ctx, Mouse{X: 12, Y: 12, Down: true}, knob)
	step(ctx, Mouse{X: 12, Y: 11, Down: true}, knob)
	if value == float32(math.Round(float64(value))) {
		t.Fatalf("range above the integer threshold must not round, got %v", value)
	}
}

func TestKnobSensitivityIsConfigurable(t *testing.T) {
	fb := newCanvas()
	ctx := NewContext(Config{KnobSensitivity: 50})
	if ctx.Config().IntegerRangeMax != 256 {
		t.Fatalf("zero threshold must fall back to the default, got %v", ctx.Config().IntegerRangeMax)
	}
	value := float32(0)
	knob := func(m Mouse) {
		if v, ok := ctx.Knob(fb, 0, 0, 12, value, 0, 100, "", render.Cyan, m); ok {
			value = v
		}
	}
	step(ctx, Mouse{X: 12, Y: 12, Down: true}, knob)
	step(ctx, Mouse{X: 12, Y: -13, Down: true}, knob)
	if value != 50 {
		t.Fatalf("25px at sensitivity 50 should reach 50, got %v", value)
	}
}

func click(ctx *Context, x, y int, draw func(m Mouse)) {
	step(ctx, Mouse{X: x, Y: y, Down: true}, draw)
	step(ctx, Mouse{X: x, Y: y}, draw)
}

func TestButtonClicksOnRelease(t *testing.T) {
	fb := newCanvas()
	ctx := NewContext(DefaultConfig())
	clicks := 0
	button := func(m Mouse) {
		if ctx.Button(fb, 10, 10, 30, 12, "OK", false, m) {
			clicks++
		}
	}
	step(ctx, Mouse{X: 20, Y: 15, Down: true}, button)
	if clicks != 0 {
		t.Fatal("press alone must not click")
	}
	if fb.At(10, 10) != render.PanelShadow {
		t.Fatalf("held button should draw sunken, top-left is %08x", fb.At(10, 10))
	}
	step(ctx, Mouse{X: 20, Y: 15}, button)
	if clicks != 1 {
		t.Fatalf("release while hovered must click once, got %d", clicks)
	}
	step(ctx, Mouse{X: 20, Y: 15}, button)
	if clicks != 1 {
		t.Fatal("idle frames must not click")
	}
	click(ctx, 0, 0, button)
	if clicks != 1 {
		t.Fatal("click outside must not register")
	}
}

func TestCheckboxLabelIsClickable(t *testing.T) {
	fb := newCanvas()
	ctx := NewContext(DefaultConfig())
	checked := false
	box := func(m Mouse) {
		if ctx.Checkbox(fb, 0, 0, "Sync", checked, m) {
			checked = !checked
		}
	}
	click(ctx, 14, 4, box)
	if !checked {
		t.Fatal("clicking the label must toggle")
	}
	click(ctx, 2, 2, box)
	if checked {
		t.Fatal("clicking the box must toggle back")
	}
	click(ctx, 40, 4, box)
	if checked {
		t.Fatal("click beyond the label must be ignored")
	}
}

func TestDropdownStopsAtEnds(t *testing.T) {
	fb := newCanvas()
	ctx := NewContext(DefaultConfig())
	options := []string{"Sine", "Saw", "Square"}
	sel := 0
	dd := func(m Mouse) {
		if v, ok := ctx.Dropdown(fb, 0, 0, 80, options, sel, m); ok {
			sel = v
		}
	}
	next, prev := 80-dropdownArrowW/2, 80-dropdownArrowW-dropdownArrowW/2

	for i := 0; i < 5; i++ {
		click(ctx, next, 4, dd)
	}
	if sel != len(options)-1 {
		t.Fatalf("next must stop at the last option, got %d", sel)
	}
	for i := 0; i < 5; i++ {
		click(ctx, prev, 4, dd)
	}
	if sel != 0 {
		t.Fatalf("prev must stop at the first option, got %d", sel)
	}
}

func TestScrollbarClampsPosition(t *testing.T) {
	fb := newCanvas()
	ctx := NewContext(DefaultConfig())
	pos := 0
	bar := func(m Mouse) {
		if v, ok := ctx.ScrollbarV(fb, 0, 0, 10, 100, 300, 100, pos, m); ok {
			pos = v
		}
	}
	step(ctx, Mouse{X: 5, Y: 50, Down: true}, bar)
	step(ctx, Mouse{X: 5, Y: 500, Down: true}, bar)
	if pos != 200 {
		t.Fatalf("drag past the end must clamp to content-view, got %d", pos)
	}
	step(ctx, Mouse{X: 5, Y: -500, Down: true}, bar)
	if pos != 0 {
		t.Fatalf("drag before the start must clamp to 0, got %d", pos)
	}
	step(ctx, Mouse{X: 5, Y: -500}, bar)

	v, ok := ctx.ScrollbarV(fb, 0, 0, 10, 100, 80, 100, 7, Mouse{X: 5, Y: 5, Down: true})
	if ok || v != 7 {
		t.Fatalf("content that fits must leave the position alone: %d %v", v, ok)
	}
}

func TestScrollbarThumbStaysInTrack(t *testing.T) {
	for _, tc := range []struct{ content, view, pos int }{
		{300, 100, 200},
		{10000, 10, 9990},
		{101, 100, 1},
	} {
		start, size := thumbSpan(0, 100, tc.content, tc.view, tc.pos)
		if size < scrollMinThumb || start < 0 || start+size > 100 {
			t.Fatalf("%+v: thumb at %d size %d", tc, start, size)
		}
	}
}

func TestSliderMapsAbsolutePosition(t *testing.T) {
	fb := newCanvas()
	ctx := NewContext(DefaultConfig())
	value := float32(0.5)
	slider := func(m Mouse) {
		if v, ok := ctx.SliderH(fb, 0, 0, 106, 8, value, 0, 1, render.Green, m); ok {
			value = v
		}
	}
	step(ctx, Mouse{X: 3, Y: 4, Down: true}, slider)
	if value != 0 {
		t.Fatalf("left end must map to min, got %v", value)
	}
	step(ctx, Mouse{X: 103, Y: 4, Down: true}, slider)
	if value != 1 {
		t.Fatalf("right end must map to max, got %v", value)
	}
	step(ctx, Mouse{X: 103, Y: 4}, slider)

	vertical := float32(0)
	vslider := func(m Mouse) {
		if v, ok := ctx.SliderV(fb, 0, 0, 8, 106, vertical, 0, 10, render.Green, m); ok {
			vertical = v
		}
	}
	step(ctx, Mouse{X: 4, Y: 3, Down: true}, vslider)
	if vertical != 10 {
		t.Fatalf("top of a vertical slider must map to max, got %v", vertical)
	}
}

func TestEnvelopeDrawsCurve(t *testing.T) {
	fb := newCanvas()
	env := Envelope{
		Attack: 31, Decay: 10, Decay2: 4, Sustain: 5, Release: 8,
		AttackMax: 31, DecayMax: 31, SustainMax: 15, ReleaseMax: 15,
	}
	DrawEnvelope(fb, 0, 0, 100, 40, env, render.Yellow, render.BlueDark)
	if fb.At(2, 37) != render.Yellow {
		t.Fatalf("attack must start at the bottom-left, got %08x", fb.At(2, 37))
	}
	if fb.At(98, 37) != render.Yellow {
		t.Fatal("release must end at the bottom-right")
	}
	filled := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if fb.At(x, y) == render.BlueDark {
				filled++
			}
		}
	}
	if filled == 0 {
		t.Fatal("fill color must shade under the curve")
	}

	small := newCanvas()
	DrawEnvelope(small, 0, 0, 10, 40, env, render.Yellow, 0)
	for y := 0; y < 40; y++ {
		for x := 0; x < 10; x++ {
			if small.At(x, y) == render.Yellow {
				t.Fatal("too narrow an envelope must draw only its panel")
			}
		}
	}
}

func TestGroupBoxes(t *testing.T) {
	fb := newCanvas()
	GroupBox(fb, 0, 0, 80, 40, "Filter", render.Cyan)
	if fb.At(0, 4) != render.PanelShadow || fb.At(79, 39) != render.PanelHi {
		t.Fatalf("etched frame corners: %08x %08x", fb.At(0, 4), fb.At(79, 39))
	}
	if fb.At(6, 0) != render.Panel {
		t.Fatal("label must sit on a panel-colored patch")
	}

	fb = newCanvas()
	CardBox(fb, 0, 0, 80, 40, "Filter", render.Cyan)
	if fb.At(40, 30) != CardFill {
		t.Fatalf("card body = %08x", fb.At(40, 30))
	}
	if fb.At(0, 0) != render.Blend(render.Cyan, CardFill, 0.35) {
		t.Fatal("card outline must use the blended accent")
	}
}

func TestStatusLine(t *testing.T) {
	st := Status{Title: "YM2151", Params: 44, Frames: 3}
	if got := st.Line(); got != "YM2151  44 params  frame 3" {
		t.Fatalf("line = %q", got)
	}
	st.MaxScroll, st.Scroll = 120, 24
	st.Last = Describe(5, "TL", 12)
	if got := st.Line(); got != "YM2151  44 params  frame 3  scroll 24/120  | TL = 12" {
		t.Fatalf("line = %q", got)
	}
	if got := Describe(2, "", 0.5); got != "#2 = 0.500" {
		t.Fatalf("describe = %q", got)
	}
}
