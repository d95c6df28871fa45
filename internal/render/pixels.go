package render

// FillRGBA converts the framebuffer's ARGB pixels into RGBA bytes in buf. buf
// must hold at least 4*W*H bytes; shorter buffers are filled as far as they go.
func (fb *Framebuffer) FillRGBA(buf []byte) {
	fillARGB(buf, fb.Pix)
}

// RGBA returns a freshly allocated RGBA copy of the framebuffer.
func (fb *Framebuffer) RGBA() []byte {
	buf := make([]byte, 4*len(fb.Pix))
	fillARGB(buf, fb.Pix)
	return buf
}

func fillARGB(buf []byte, pix []uint32) {
	n := len(buf) / 4
	if n > len(pix) {
		n = len(pix)
	}
	for i := 0; i < n; i++ {
		c := pix[i]
		base := i * 4
		buf[base+0] = uint8(c >> 16)
		buf[base+1] = uint8(c >> 8)
		buf[base+2] = uint8(c)
		buf[base+3] = uint8(c >> 24)
	}
}
