package wire

import (
	"encoding/binary"
	"math"

	"hwui/internal/core"
	"hwui/internal/render"
)

const maxU8 = 255

// Encode builds an init buffer. Counts and strings longer than a length byte
// can express are truncated to 255.
func Encode(h Header, params []core.Parameter, opts Options) []byte {
	if len(params) > maxU8 {
		params = params[:maxU8]
	}
	buf := make([]byte, 0, 64+len(params)*48)
	buf = append(buf, uint8(len(params)))
	r, g, b := render.Channels(h.Accent)
	buf = append(buf, r, g, b)
	buf = appendStr(buf, h.Name)
	if opts.Subtitle {
		buf = appendStr(buf, h.Subtitle)
	}
	for _, p := range params {
		buf = append(buf, uint8(p.Kind))
		buf = appendStr(buf, p.Label)
		buf = appendStr(buf, p.Group)
		buf = appendF32(buf, p.Min)
		buf = appendF32(buf, p.Max)
		buf = appendF32(buf, p.Step)
		buf = appendF32(buf, p.Value)
		options := p.Options
		if len(options) > maxU8 {
			options = options[:maxU8]
		}
		buf = append(buf, uint8(len(options)))
		for _, o := range options {
			buf = appendF32(buf, o.Value)
			buf = appendStr(buf, o.Label)
		}
	}
	return buf
}

func appendStr(buf []byte, s string) []byte {
	if len(s) > maxU8 {
		s = s[:maxU8]
	}
	buf = append(buf, uint8(len(s)))
	return append(buf, s...)
}

func appendF32(buf []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
}
