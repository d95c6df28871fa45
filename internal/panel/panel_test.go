package panel

import (
	"fmt"
	"testing"

	"hwui/internal/core"
	"hwui/internal/font"
	"hwui/internal/layout"
	"hwui/internal/render"
	"hwui/internal/wire"
)

type change struct {
	index int
	value float32
}

type recorder struct{ calls []change }

func (r *recorder) handle(index int, value float32) {
	r.calls = append(r.calls, change{index, value})
}

func filterSchema(t Theme) []byte {
	params := []core.Parameter{
		{Kind: core.KindKnob, Label: "Cutoff", Group: "Filter", Min: 0, Max: 100, Value: 50},
		{Kind: core.KindToggle, Label: "Sync", Group: "Filter", Max: 1},
	}
	return wire.Encode(wire.Header{Name: "Test", Accent: render.Orange}, params, t.Wire)
}

func bigSchema(t Theme) []byte {
	var params []core.Parameter
	for g := 0; g < 16; g++ {
		for k := 0; k < 6; k++ {
			params = append(params, core.Parameter{
				Kind: core.KindKnob, Label: fmt.Sprintf("K%d", k), Group: fmt.Sprintf("G%d", g), Max: 1,
			})
		}
	}
	return wire.Encode(wire.Header{Name: "Big"}, params, t.Wire)
}

func newPanel(t Theme, data []byte) (*Panel, *recorder) {
	rec := &recorder{}
	p := New(t, WithChangeHandler(rec.handle))
	p.Init(data)
	p.Tick()
	return p, rec
}

func slotFor(t *testing.T, p *Panel, index int) layout.Slot {
	t.Helper()
	for _, box := range p.Layout().Groups {
		for _, s := range box.Slots {
			if s.Param == index {
				return s
			}
		}
	}
	t.Fatalf("no slot for parameter %d", index)
	return layout.Slot{}
}

func knobCenter(p *Panel, s layout.Slot) (int, int) {
	th := p.Theme()
	r := th.KnobRadius
	x := s.Rect.Min.X + (th.Layout.KnobCellW-2*r)/2 + r
	y := s.Rect.Min.Y + r - p.ScrollY()
	return x, y
}

func click(p *Panel, x, y int) {
	p.MouseDown(x, y)
	p.Tick()
	p.MouseUp(x, y)
	p.Tick()
}

func TestFilterScenario(t *testing.T) {
	th := VSTBridge()
	p, rec := newPanel(th, filterSchema(th))

	groups := p.Layout().Groups
	if len(groups) != 1 || groups[0].Name != "Filter" || len(groups[0].Slots) != 2 {
		t.Fatalf("unexpected layout: %+v", groups)
	}
	m := th.Layout
	want := font.H + 8 + 2*m.Inner + m.KnobCellH + (m.ToggleH + 4)
	if got := groups[0].Rect.Dy(); got != want {
		t.Fatalf("group height = %d, want %d", got, want)
	}

	cx, cy := knobCenter(p, slotFor(t, p, 0))
	p.MouseDown(cx, cy)
	p.Tick()
	p.MouseMove(cx, cy-25)
	for p.Tick() {
	}
	if len(rec.calls) != 1 || rec.calls[0] != (change{0, 75}) {
		t.Fatalf("callbacks after 25px drag: %+v", rec.calls)
	}
	p.MouseUp(cx, cy-25)
	for p.Tick() {
	}
	if len(rec.calls) != 1 {
		t.Fatalf("release must not report: %+v", rec.calls)
	}
	if p.Param(0) != 75 {
		t.Fatalf("stored value %v", p.Param(0))
	}
}

func TestFullDragClampsAndReportsOnce(t *testing.T) {
	th := VSTBridge()
	p, rec := newPanel(th, filterSchema(th))
	cx, cy := knobCenter(p, slotFor(t, p, 0))

	p.MouseDown(cx, cy)
	p.Tick()
	p.MouseMove(cx, cy-50)
	for p.Tick() {
	}
	p.MouseMove(cx, cy-50)
	for p.Tick() {
	}
	if len(rec.calls) != 1 || rec.calls[0] != (change{0, 100}) {
		t.Fatalf("callbacks after 50px drag: %+v", rec.calls)
	}
}

func TestKnobStepSnap(t *testing.T) {
	th := VSTBridge()
	params := []core.Parameter{{Kind: core.KindKnob, Label: "Fine", Group: "G", Min: 0, Max: 1, Step: 0.25, Value: 0}}
	rec := &recorder{}
	p := New(th, WithChangeHandler(rec.handle), WithIntegerRange(0.5))
	p.Init(wire.Encode(wire.Header{Name: "S"}, params, th.Wire))
	p.Tick()

	cx, cy := knobCenter(p, slotFor(t, p, 0))
	p.MouseDown(cx, cy)
	p.Tick()
	for dy := 1; dy <= 100; dy++ {
		p.MouseMove(cx, cy-dy)
		p.Tick()
	}
	if len(rec.calls) != 4 {
		t.Fatalf("expected one report per step, got %+v", rec.calls)
	}
	for i, c := range rec.calls {
		if want := float32(i+1) * 0.25; c.value != want {
			t.Fatalf("report %d = %v, want %v", i, c.value, want)
		}
	}
}

func TestToggleClick(t *testing.T) {
	th := VSTBridge()
	p, rec := newPanel(th, filterSchema(th))
	s := slotFor(t, p, 1)

	click(p, s.Rect.Min.X+2, s.Rect.Min.Y+2)
	if len(rec.calls) != 1 || rec.calls[0] != (change{1, 1}) {
		t.Fatalf("toggle on: %+v", rec.calls)
	}
	click(p, s.Rect.Min.X+2, s.Rect.Min.Y+2)
	if len(rec.calls) != 2 || rec.calls[1] != (change{1, 0}) {
		t.Fatalf("toggle off: %+v", rec.calls)
	}
}

func TestSelectArrows(t *testing.T) {
	th := MAME()
	params := []core.Parameter{{
		Kind: core.KindSelect, Label: "Wave", Group: "Osc",
		Options: []core.Option{{Value: 0, Label: "Sine"}, {Value: 0.5, Label: "Saw"}, {Value: 1, Label: "Pulse"}},
	}}
	rec := &recorder{}
	p := New(th, WithChangeHandler(rec.handle))
	p.Init(wire.Encode(wire.Header{Name: "YM"}, params, th.Wire))
	p.Tick()

	s := slotFor(t, p, 0)
	dx := s.Rect.Min.X + font.Width("Wave") + th.SelectLabelGap
	dw := s.Rect.Max.X - dx
	next := dx + dw - 5
	prev := dx + dw - 15
	y := s.Rect.Min.Y + 4

	for i := 0; i < 4; i++ {
		click(p, next, y)
	}
	if p.Param(0) != 1 || len(rec.calls) != 2 {
		t.Fatalf("next past the end: value %v, calls %+v", p.Param(0), rec.calls)
	}
	click(p, prev, y)
	if p.Param(0) != 0.5 {
		t.Fatalf("prev: value %v", p.Param(0))
	}
}

func TestDirtyRules(t *testing.T) {
	th := VSTBridge()
	p, _ := newPanel(th, filterSchema(th))
	if p.Tick() {
		t.Fatal("clean panel must not render")
	}
	p.MouseMove(10, 10)
	if p.Dirty() {
		t.Fatal("hover must not dirty the panel")
	}
	p.MouseDown(10, 10)
	if !p.Dirty() {
		t.Fatal("press must dirty the panel")
	}
	p.Tick()
	p.MouseMove(12, 12)
	if !p.Dirty() {
		t.Fatal("drag motion must dirty the panel")
	}
	p.MouseUp(12, 12)
	for p.Tick() {
	}
	frames := p.Frames()
	p.DumpConfig(make([]byte, 64))
	if p.Dirty() || p.Frames() != frames {
		t.Fatal("dumping must not schedule a frame")
	}
}

func TestWheelScrollClamps(t *testing.T) {
	th := VSTBridge()
	p, _ := newPanel(th, bigSchema(th))
	maxScroll := p.Layout().ContentH - (th.Height - th.Top())
	if maxScroll <= 0 {
		t.Fatalf("schema should overflow, content %d", p.Layout().ContentH)
	}

	p.MouseWheel(-1, 100, 100)
	if p.ScrollY() != th.WheelStep || !p.Dirty() {
		t.Fatalf("one notch down: scroll %d dirty %v", p.ScrollY(), p.Dirty())
	}
	p.MouseWheel(-1000, 100, 100)
	if p.ScrollY() != maxScroll {
		t.Fatalf("scroll %d, want clamp at %d", p.ScrollY(), maxScroll)
	}
	p.MouseWheel(1000, 100, 100)
	if p.ScrollY() != 0 {
		t.Fatalf("scroll %d, want 0", p.ScrollY())
	}

	small, _ := newPanel(th, filterSchema(th))
	small.MouseWheel(-3, 100, 100)
	if small.ScrollY() != 0 || small.Dirty() {
		t.Fatal("content that fits must ignore the wheel")
	}
}

func TestScrollbarDrag(t *testing.T) {
	th := VSTBridge()
	p, rec := newPanel(th, bigSchema(th))
	x := th.Width - th.ScrollbarW/2
	p.MouseDown(x, th.Height-1)
	for p.Tick() {
	}
	want := p.Layout().ContentH - (th.Height - th.Top())
	if p.ScrollY() != want {
		t.Fatalf("scroll %d, want %d", p.ScrollY(), want)
	}
	p.MouseMove(x, th.Top())
	for p.Tick() {
	}
	if p.ScrollY() != 0 {
		t.Fatalf("dragging to the top: scroll %d", p.ScrollY())
	}
	if len(rec.calls) != 0 {
		t.Fatalf("scrolling must not edit parameters: %+v", rec.calls)
	}
}

func TestHeaderShieldsScrolledWidgets(t *testing.T) {
	th := VSTBridge()
	p, rec := newPanel(th, bigSchema(th))
	p.scrollY = 50
	cx, cy := knobCenter(p, slotFor(t, p, 0))
	if cy >= th.Top() || cy < 0 {
		t.Fatalf("knob should sit under the header, y=%d", cy)
	}
	p.MouseDown(cx, cy)
	p.Tick()
	if p.ctx.Dragging() {
		t.Fatal("press on the header must not grab a widget below it")
	}
	p.MouseMove(cx, cy+40)
	for p.Tick() {
	}
	if len(rec.calls) != 0 {
		t.Fatalf("unexpected edits: %+v", rec.calls)
	}
}

func TestSetParamAndAccessors(t *testing.T) {
	th := VSTBridge()
	p, rec := newPanel(th, filterSchema(th))

	p.SetParam(0, 33)
	if !p.Dirty() || p.Param(0) != 33 || len(rec.calls) != 0 {
		t.Fatalf("SetParam: dirty %v value %v calls %+v", p.Dirty(), p.Param(0), rec.calls)
	}
	p.Tick()
	p.SetParam(99, 1)
	p.SetParam(-1, 1)
	if p.Dirty() {
		t.Fatal("out of range SetParam must be a no-op")
	}
	if p.Param(99) != 0 || p.Param(-1) != 0 {
		t.Fatal("out of range Param must read 0")
	}
}

func TestConfigRoundTrip(t *testing.T) {
	th := VSTBridge()
	src, _ := newPanel(th, filterSchema(th))
	src.SetParam(0, 12.5)
	src.SetParam(1, 1)
	buf := make([]byte, src.ConfigSize())
	if n := src.DumpConfig(buf); n != 8 {
		t.Fatalf("DumpConfig wrote %d", n)
	}

	dst, rec := newPanel(th, filterSchema(th))
	if n := dst.LoadConfig(buf); n != 2 {
		t.Fatalf("LoadConfig applied %d", n)
	}
	if dst.Param(0) != 12.5 || dst.Param(1) != 1 || !dst.Dirty() {
		t.Fatalf("restored %v %v", dst.Param(0), dst.Param(1))
	}
	if len(rec.calls) != 0 {
		t.Fatal("LoadConfig must not notify")
	}
}

func TestHeaders(t *testing.T) {
	mame := MAME()
	data := wire.Encode(wire.Header{Name: "YM2151", Subtitle: "OPM", Accent: render.Red}, nil, mame.Wire)
	p, _ := newPanel(mame, data)
	fb := p.Framebuffer()
	if fb.At(1, 1) != render.Red {
		t.Fatalf("flat header = %08x", fb.At(1, 1))
	}
	if fb.At(1, mame.HeaderH+1) != render.GrayDark {
		t.Fatalf("subtitle bar = %08x", fb.At(1, mame.HeaderH+1))
	}

	p, _ = newPanel(mame, wire.Encode(wire.Header{Name: "YM2151", Accent: render.Red}, nil, mame.Wire))
	if got := p.Framebuffer().At(1, mame.HeaderH+1); got != mame.Background {
		t.Fatalf("empty subtitle must leave the band blank, got %08x", got)
	}

	vst := VSTBridge()
	p, _ = newPanel(vst, wire.Encode(wire.Header{Name: "Synth", Subtitle: "ignored", Accent: render.Blue}, nil, vst.Wire))
	fb = p.Framebuffer()
	if fb.At(0, vst.HeaderH-1) != render.Blue {
		t.Fatal("gradient header must end in an accent rule")
	}
	if fb.At(0, 0) != render.Darken(render.Blue, 0.8) {
		t.Fatalf("gradient top row = %08x", fb.At(0, 0))
	}
	if p.Header().Subtitle != "ignored" {
		t.Fatal("subtitle must still be decoded")
	}
}

func TestInitDegenerateInput(t *testing.T) {
	for _, th := range []Theme{MAME(), VSTBridge()} {
		p := New(th)
		p.Init(nil)
		if p.Registry().Len() != 0 || p.Header().Name != th.DefaultName {
			t.Fatalf("%s: empty init gave %d params, name %q", th.Name, p.Registry().Len(), p.Header().Name)
		}
		if !p.Tick() {
			t.Fatal("Init must schedule a frame")
		}

		rng := core.NewRNG(int64(th.Width))
		for i := 0; i < 200; i++ {
			buf := make([]byte, rng.Intn(600))
			rng.FillBytes(buf)
			p.Init(buf)
			p.MouseDown(rng.Intn(th.Width), rng.Intn(th.Height))
			p.Tick()
			p.MouseMove(rng.Intn(th.Width), rng.Intn(th.Height))
			p.MouseWheel(rng.Intn(5)-2, 0, 0)
			p.Tick()
			p.MouseUp(0, 0)
			p.Tick()
		}
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		th, ok := ThemeByName(name)
		if !ok || th.Name != name {
			t.Fatalf("theme %q not found", name)
		}
		if th.Layout.Top != th.Top() || th.Layout.Width != th.Width {
			t.Fatalf("%s: layout metrics disagree with the canvas", name)
		}
	}
	if _, ok := ThemeByName("nope"); ok {
		t.Fatal("unknown theme must not resolve")
	}
}
