package render

import (
	"testing"

	"tinygo.org/x/drivers"
)

var _ drivers.Displayer = (*Framebuffer)(nil)

func TestPrimitivesClipToCanvas(t *testing.T) {
	fb := NewFramebuffer(8, 6)
	fb.Rect(-4, -4, 20, 20, Red)
	for i, px := range fb.Pix {
		if px != Red {
			t.Fatalf("pixel %d = %08x, want %08x", i, px, Red)
		}
	}

	fb.Clear(Black)
	fb.SetClip(4, 3)
	fb.Rect(0, 0, 8, 6, White)
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			want := Black
			if x < 4 && y < 3 {
				want = White
			}
			if got := fb.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %08x, want %08x", x, y, got, want)
			}
		}
	}

	fb.Line(-10, -10, 30, 30, Green)
	fb.HLine(-5, 100, 50, Green)
	fb.VLine(100, -5, 50, Green)
	if fb.At(7, 5) != Black {
		t.Fatal("line escaped the clip rectangle")
	}
}

func TestLineEndpoints(t *testing.T) {
	fb := NewFramebuffer(10, 10)
	fb.Line(1, 8, 7, 2, White)
	if fb.At(1, 8) != White || fb.At(7, 2) != White {
		t.Fatal("line must include both endpoints")
	}
	count := 0
	for _, px := range fb.Pix {
		if px == White {
			count++
		}
	}
	if count != 7 {
		t.Fatalf("diagonal line painted %d pixels, want 7", count)
	}
}

func TestPanel3DEdges(t *testing.T) {
	fb := NewFramebuffer(6, 6)
	fb.PanelSunken(0, 0, 6, 6)
	if fb.At(0, 0) != PanelShadow {
		t.Fatalf("top-left = %08x, want shadow", fb.At(0, 0))
	}
	if fb.At(5, 5) != PanelHi {
		t.Fatalf("bottom-right = %08x, want highlight", fb.At(5, 5))
	}
	if fb.At(2, 2) != GrayDark {
		t.Fatalf("face = %08x, want dark", fb.At(2, 2))
	}
}

func TestColorHelpers(t *testing.T) {
	if got := RGB(0x12, 0x34, 0x56); got != 0xFF123456 {
		t.Fatalf("RGB = %08x", got)
	}
	if got := Darken(0xFF804020, 0.5); got != 0xFF402010 {
		t.Fatalf("Darken = %08x", got)
	}
	if got := Blend(White, Black, 0); got != Black {
		t.Fatalf("Blend alpha 0 = %08x", got)
	}
	if got := FromRGBA(ToRGBA(Cyan)); got != Cyan {
		t.Fatalf("RGBA round trip = %08x", got)
	}
}

func TestFillRGBA(t *testing.T) {
	fb := NewFramebuffer(2, 1)
	fb.Pix[0] = 0xFF102030
	fb.Pix[1] = 0x80405060
	buf := fb.RGBA()
	want := []byte{0x10, 0x20, 0x30, 0xFF, 0x40, 0x50, 0x60, 0x80}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %02x, want %02x", i, buf[i], want[i])
		}
	}
}
