package render

import "image/color"

// Framebuffer is a row-major ARGB8888 pixel buffer. Every primitive clips
// against the active clip size, so drawing never writes outside Pix.
type Framebuffer struct {
	W   int
	H   int
	Pix []uint32

	clipW int
	clipH int
}

// NewFramebuffer allocates a cleared framebuffer of the given size.
func NewFramebuffer(w, h int) *Framebuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Framebuffer{W: w, H: h, Pix: make([]uint32, w*h), clipW: w, clipH: h}
}

// SetClip limits drawing to the top-left w*h region. Values larger than the
// buffer are clamped to it.
func (fb *Framebuffer) SetClip(w, h int) {
	if w < 0 || w > fb.W {
		w = fb.W
	}
	if h < 0 || h > fb.H {
		h = fb.H
	}
	fb.clipW = w
	fb.clipH = h
}

// Clip returns the active clip size.
func (fb *Framebuffer) Clip() (int, int) { return fb.clipW, fb.clipH }

// Clear fills the whole buffer with col, ignoring the clip.
func (fb *Framebuffer) Clear(col uint32) {
	for i := range fb.Pix {
		fb.Pix[i] = col
	}
}

// Pixel sets a single pixel when it lies inside the clip.
func (fb *Framebuffer) Pixel(x, y int, col uint32) {
	if x < 0 || y < 0 || x >= fb.clipW || y >= fb.clipH {
		return
	}
	fb.Pix[y*fb.W+x] = col
}

// At returns the pixel at x, y or 0 when out of bounds.
func (fb *Framebuffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return 0
	}
	return fb.Pix[y*fb.W+x]
}

// Rect fills a w*h rectangle.
func (fb *Framebuffer) Rect(x, y, w, h int, col uint32) {
	x0, y0 := maxInt(x, 0), maxInt(y, 0)
	x1, y1 := minInt(x+w, fb.clipW), minInt(y+h, fb.clipH)
	for row := y0; row < y1; row++ {
		line := fb.Pix[row*fb.W : row*fb.W+fb.W]
		for cx := x0; cx < x1; cx++ {
			line[cx] = col
		}
	}
}

// RectOutline draws a one pixel border.
func (fb *Framebuffer) RectOutline(x, y, w, h int, col uint32) {
	fb.HLine(x, y, w, col)
	fb.HLine(x, y+h-1, w, col)
	fb.VLine(x, y, h, col)
	fb.VLine(x+w-1, y, h, col)
}

// HLine draws a horizontal run of w pixels starting at x, y.
func (fb *Framebuffer) HLine(x, y, w int, col uint32) {
	fb.Rect(x, y, w, 1, col)
}

// VLine draws a vertical run of h pixels starting at x, y.
func (fb *Framebuffer) VLine(x, y, h int, col uint32) {
	fb.Rect(x, y, 1, h, col)
}

// Line draws a line between two points using Bresenham's algorithm.
func (fb *Framebuffer) Line(x0, y0, x1, y1 int, col uint32) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fb.Pixel(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Panel3D fills a bevelled box: light on the top/left edges, shadow on the
// bottom/right edges.
func (fb *Framebuffer) Panel3D(x, y, w, h int, face, light, shadow uint32) {
	fb.Rect(x, y, w, h, face)
	fb.HLine(x, y, w, light)
	fb.VLine(x, y, h, light)
	fb.HLine(x, y+h-1, w, shadow)
	fb.VLine(x+w-1, y, h, shadow)
}

// PanelRaised draws a button-like raised bevel.
func (fb *Framebuffer) PanelRaised(x, y, w, h int) {
	fb.Panel3D(x, y, w, h, Panel, PanelHi, PanelShadow)
}

// PanelSunken draws an inset well.
func (fb *Framebuffer) PanelSunken(x, y, w, h int) {
	fb.Panel3D(x, y, w, h, GrayDark, PanelShadow, PanelHi)
}

// Size implements drivers.Displayer.
func (fb *Framebuffer) Size() (x, y int16) {
	return int16(fb.clipW), int16(fb.clipH)
}

// SetPixel implements drivers.Displayer so tinyfont can draw into the buffer.
func (fb *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	fb.Pixel(int(x), int(y), FromRGBA(c))
}

// Display implements drivers.Displayer. The buffer is always current.
func (fb *Framebuffer) Display() error { return nil }

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
