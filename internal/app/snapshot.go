package app

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"hwui/internal/panel"
	"hwui/internal/render"
)

// Frame renders the panel if needed and returns its canvas as an image.
func Frame(p *panel.Panel) *image.NRGBA {
	p.Tick()
	return toImage(p.Framebuffer())
}

// Snapshot encodes the current panel frame as PNG.
func Snapshot(p *panel.Panel, w io.Writer) error {
	if err := png.Encode(w, Frame(p)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}

// SnapshotFile writes the current panel frame to path.
func SnapshotFile(p *panel.Panel, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := Snapshot(p, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}

func toImage(fb *render.Framebuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.W, fb.H))
	fb.FillRGBA(img.Pix)
	return img
}
