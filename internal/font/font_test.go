package font

import (
	"image/color"
	"testing"

	"tinygo.org/x/tinyfont"
)

type recorder struct {
	w, h int16
	set  map[[2]int16]bool
}

func newRecorder(w, h int16) *recorder {
	return &recorder{w: w, h: h, set: map[[2]int16]bool{}}
}

func (r *recorder) Size() (int16, int16) { return r.w, r.h }
func (r *recorder) SetPixel(x, y int16, _ color.RGBA) { r.set[[2]int16{x, y}] = true }
func (r *recorder) Display() error { return nil }
func (r *recorder) has(x, y int) bool { return r.set[[2]int16{int16(x), int16(y)}] }

func TestWidth(t *testing.T) {
	cases := map[string]int{
		"":       0,
		"A":      4,
		"AB":     9,
		"Cutoff": 29,
	}
	for s, want := range cases {
		if got := Width(s); got != want {
			t.Errorf("Width(%q) = %d, want %d", s, got, want)
		}
	}
}

func TestDrawPlacesGlyphFromTopLeft(t *testing.T) {
	d := newRecorder(32, 16)
	adv := Draw(d, 3, 2, "T", color.RGBA{A: 255})
	if adv != CharW {
		t.Fatalf("advance = %d, want %d", adv, CharW)
	}
	// 'T' top row is 0xE: three pixels from the left edge.
	for x := 3; x < 6; x++ {
		if !d.has(x, 2) {
			t.Fatalf("expected top row pixel at (%d,2)", x)
		}
	}
	if d.has(6, 2) {
		t.Fatal("unexpected pixel in fourth column of 'T'")
	}
	// Stem runs down column 1 for rows 1..4.
	for y := 3; y < 7; y++ {
		if !d.has(4, y) {
			t.Fatalf("expected stem pixel at (4,%d)", y)
		}
	}
	if d.has(4, 7) {
		t.Fatal("glyph drew below its sixth row")
	}
}

func TestUnknownRunesAdvanceWithoutDrawing(t *testing.T) {
	d := newRecorder(32, 16)
	adv := Draw(d, 0, 0, "\x01é", color.RGBA{A: 255})
	if adv != 2*CharW {
		t.Fatalf("advance = %d, want %d", adv, 2*CharW)
	}
	if len(d.set) != 0 {
		t.Fatalf("drew %d pixels for unknown runes", len(d.set))
	}
}

func TestCentered(t *testing.T) {
	d := newRecorder(64, 32)
	// '|' is a single column at x+1 on rows 0..4.
	Centered(d, 0, 0, 20, 10, "|", color.RGBA{A: 255})
	tx := (20 - 4) / 2
	ty := (10 - H) / 2
	if !d.has(tx+1, ty) || !d.has(tx+1, ty+4) {
		t.Fatalf("centered glyph not at (%d,%d)", tx+1, ty)
	}
}

func TestFonterMetrics(t *testing.T) {
	inner, outbox := tinyfont.LineWidth(Font, "abc")
	if outbox != 3*CharW {
		t.Fatalf("outbox width = %d, want %d", outbox, 3*CharW)
	}
	if inner == 0 {
		t.Fatal("inner width must be non-zero")
	}
}

func TestFormatHelpers(t *testing.T) {
	if got := Hex2(0x1ab); got != "AB" {
		t.Fatalf("Hex2 = %q", got)
	}
	if got := Hex4(0xBEEF); got != "BEEF" {
		t.Fatalf("Hex4 = %q", got)
	}
	if got := Float(0.5, 2); got != "0.50" {
		t.Fatalf("Float = %q", got)
	}
	if got := Int(-7); got != "-7" {
		t.Fatalf("Int = %q", got)
	}
}
