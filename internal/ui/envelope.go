package ui

import "hwui/internal/render"

// Envelope holds chip-style envelope registers and their maxima. Rates are
// "higher is faster", Sustain is an attenuation: 0 sustains at full level.
// A zero maximum reads as the midpoint.
type Envelope struct {
	Attack, Decay, Decay2, Sustain, Release int

	AttackMax, DecayMax, SustainMax, ReleaseMax int
}

// DrawEnvelope draws a read-only attack/decay/decay2/sustain/release curve
// inside a sunken panel. fill, when non-zero, shades the area under the
// curve.
func DrawEnvelope(fb *render.Framebuffer, x, y, w, h int, env Envelope, line, fill uint32) {
	fb.PanelSunken(x, y, w, h)

	ix, iy, iw, ih := x+2, y+2, w-4, h-4
	if iw < 8 || ih < 4 {
		return
	}

	a := 0.25 * (1 - ratio(env.Attack, env.AttackMax)*0.8)
	d := 0.25 * (1 - ratio(env.Decay, env.DecayMax)*0.8)
	var d2 float32
	if env.Decay2 > 0 && env.DecayMax > 0 {
		d2 = 0.15 * (1 - float32(env.Decay2)/float32(env.DecayMax)*0.8)
	}
	r := 0.20 * (1 - ratio(env.Release, env.ReleaseMax)*0.8)
	s := 1 - a - d - d2 - r
	if s < 0.05 {
		s = 0.05
	}
	total := a + d + d2 + s + r
	a, d, d2, s, r = a/total, d/total, d2/total, s/total, r/total

	level := 1 - ratio(env.Sustain, env.SustainMax)

	aEnd := ix + int(a*float32(iw))
	dEnd := aEnd + int(d*float32(iw))
	d2End := dEnd + int(d2*float32(iw))
	sEnd := d2End + int(s*float32(iw))
	rEnd := ix + iw

	top, bot := iy, iy+ih-1
	susY := bot - int(level*float32(ih-1))
	holdY := susY
	if env.Decay2 > 0 {
		holdY = bot - int(level*0.5*float32(ih-1))
	}

	fb.Line(ix, bot, aEnd, top, line)
	fb.Line(aEnd, top, dEnd, susY, line)
	if env.Decay2 > 0 {
		fb.Line(dEnd, susY, d2End, holdY, line)
	}
	fb.HLine(d2End, holdY, sEnd-d2End, line)
	fb.Line(sEnd, holdY, rEnd, bot, line)

	if fill == 0 {
		return
	}
	for px := ix; px < ix+iw; px++ {
		var ey int
		switch {
		case px <= aEnd:
			ey = bot - int(lerpT(px, ix, aEnd)*float32(bot-top))
		case px <= dEnd:
			ey = top + int(lerpT(px, aEnd, dEnd)*float32(susY-top))
		case px <= d2End && env.Decay2 > 0:
			ey = susY + int(lerpT(px, dEnd, d2End)*float32(holdY-susY))
		case px <= sEnd:
			ey = holdY
		default:
			ey = holdY + int(lerpT(px, sEnd, rEnd)*float32(bot-holdY))
		}
		fb.VLine(px, ey+1, bot-ey, fill)
	}
}

func ratio(v, max int) float32 {
	if max <= 0 {
		return 0.5
	}
	return float32(v) / float32(max)
}

// lerpT is the position of p between a and b, 0 when the segment is empty.
func lerpT(p, a, b int) float32 {
	if b <= a {
		return 0
	}
	return float32(p-a) / float32(b-a)
}
