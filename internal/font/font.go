// Package font provides the compiled-in 4x6 pixel font used by every panel.
//
// Font implements tinyfont.Fonter so text goes through tinyfont.WriteLine
// onto any drivers.Displayer, including render.Framebuffer.
package font

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

const (
	// GlyphW is the width of a glyph in pixels.
	GlyphW = 4
	// H is the height of a glyph in pixels.
	H = 6
	// Spacing is the blank column between glyphs.
	Spacing = 1
	// CharW is the horizontal advance per character.
	CharW = GlyphW + Spacing

	baseline = H - 1
)

// Font is the shared 4x6 font. Glyphs are values, so it is safe for
// concurrent use.
var Font tinyfont.Fonter = font4x6{}

type font4x6 struct{}

func (font4x6) GetYAdvance() uint8 { return H + 1 }

func (font4x6) GetGlyph(r rune) tinyfont.Glypher { return glyph{r: r} }

type glyph struct {
	r rune
}

// Draw paints the glyph with y as the baseline, matching tinyfont's
// convention.
func (g glyph) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	rows, ok := lookup(g.r)
	if !ok {
		return
	}
	for row := 0; row < H; row++ {
		bits := rows[row]
		for col := 0; col < GlyphW; col++ {
			if bits&(0x8>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(baseline-row), c)
		}
	}
}

func (g glyph) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    GlyphW,
		Height:   H,
		XAdvance: CharW,
		XOffset:  0,
		YOffset:  -baseline,
	}
}

func lookup(r rune) ([H]uint8, bool) {
	idx := int(r) - 32
	if idx < 0 || idx >= len(glyphs) {
		return [H]uint8{}, false
	}
	return glyphs[idx], true
}

// Draw writes s with its top-left corner at x, y and returns the advance in
// pixels. Characters outside ASCII 32..127 advance without drawing.
func Draw(d drivers.Displayer, x, y int, s string, col color.RGBA) int {
	if s == "" {
		return 0
	}
	if strings.IndexByte(s, '\n') >= 0 {
		s = strings.ReplaceAll(s, "\n", " ")
	}
	tinyfont.WriteLine(d, Font, int16(x), int16(y+baseline), s, col)
	return utf8.RuneCountInString(s) * CharW
}

// Width returns the pixel width of s without the trailing spacing column.
func Width(s string) int {
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return 0
	}
	return n*CharW - Spacing
}

// Centered draws s centered inside the rectangle (rx, ry, rw, rh).
func Centered(d drivers.Displayer, rx, ry, rw, rh int, s string, col color.RGBA) {
	tx := rx + (rw-Width(s))/2
	ty := ry + (rh-H)/2
	Draw(d, tx, ty, s, col)
}

// Right draws s so that it ends at rightX.
func Right(d drivers.Displayer, rightX, y int, s string, col color.RGBA) {
	Draw(d, rightX-Width(s), y, s, col)
}
