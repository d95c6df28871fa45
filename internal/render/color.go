package render

import "image/color"

// Palette shared by every panel theme, ARGB8888.
const (
	Black      uint32 = 0xFF000000
	White      uint32 = 0xFFFFFFFF
	GrayDark   uint32 = 0xFF3C3C3C
	GrayMed    uint32 = 0xFF505050
	GrayLight  uint32 = 0xFFB4B4B4
	GrayBright uint32 = 0xFFDDDDDD

	Panel       uint32 = 0xFFAAAAAA
	PanelHi     uint32 = 0xFFDDDDDD
	PanelShadow uint32 = 0xFF666666

	Blue      uint32 = 0xFF4466CC
	BlueLight uint32 = 0xFF6688EE
	BlueDark  uint32 = 0xFF223366
	Red       uint32 = 0xFFCC4444
	Green     uint32 = 0xFF44BB44
	Amber     uint32 = 0xFFDDAA44
	Cyan      uint32 = 0xFF44BBBB
	Magenta   uint32 = 0xFFBB44BB
	Orange    uint32 = 0xFFEE8833
	Yellow    uint32 = 0xFFDDDD44
)

// RGB packs an opaque ARGB color.
func RGB(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Channels splits an ARGB color into its red, green and blue components.
func Channels(c uint32) (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Darken scales each channel by factor (0..1). The result is opaque.
func Darken(c uint32, factor float32) uint32 {
	r, g, b := Channels(c)
	return RGB(uint8(float32(r)*factor), uint8(float32(g)*factor), uint8(float32(b)*factor))
}

// Blend mixes c over bg with the given alpha. The result is opaque.
func Blend(c, bg uint32, alpha float32) uint32 {
	cr, cg, cb := Channels(c)
	br, bgc, bb := Channels(bg)
	mix := func(a, b uint8) uint8 {
		return uint8(float32(a)*alpha + float32(b)*(1-alpha))
	}
	return RGB(mix(cr, br), mix(cg, bgc), mix(cb, bb))
}

// ToRGBA converts an ARGB value to color.RGBA.
func ToRGBA(c uint32) color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// FromRGBA converts a color.RGBA to ARGB.
func FromRGBA(c color.RGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}
