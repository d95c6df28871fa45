//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// FramePainter uploads a Framebuffer into a single ebiten image.
type FramePainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewFramePainter allocates a painter for a w*h framebuffer.
func NewFramePainter(w, h int) *FramePainter {
	fp := &FramePainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	fp.img = ebiten.NewImage(w, h)
	return fp
}

// Upload copies the framebuffer pixels into the painter image.
func (fp *FramePainter) Upload(fb *Framebuffer) {
	if fb == nil || fb.W != fp.w || fb.H != fp.h {
		return
	}
	fb.FillRGBA(fp.buf)
	fp.img.WritePixels(fp.buf)
}

// Blit draws the last uploaded frame scaled onto dst.
func (fp *FramePainter) Blit(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(fp.img, op)
}

// Size returns the dimensions of the underlying image.
func (fp *FramePainter) Size() (int, int) { return fp.w, fp.h }
