// Package wire decodes and encodes the init buffer a host sends to describe
// a panel: a header (accent color, name, optional subtitle) followed by a
// list of parameters.
//
// Layout, all multi-byte values little-endian, strings prefixed by a single
// length byte and not NUL terminated:
//
//	u8 param_count
//	u8 r, g, b                  accent color
//	u8 name_len, name
//	u8 subtitle_len, subtitle   only when Options.Subtitle is set
//	param_count times:
//	  u8 kind
//	  u8 label_len, label
//	  u8 group_len, group
//	  f32 min, max, step, value
//	  u8 option_count
//	  option_count times:
//	    f32 value
//	    u8 label_len, label
package wire

import (
	"hwui/internal/core"
	"hwui/internal/render"
)

const (
	// MaxName is the longest stored display name in bytes.
	MaxName = 63
	// MaxSubtitle is the longest stored subtitle in bytes.
	MaxSubtitle = 95
)

// Options selects the wire variant and the bounds applied while decoding.
type Options struct {
	// Subtitle reports whether the header carries a subtitle field. When set
	// and the buffer ends right after the name, the subtitle is empty.
	Subtitle bool
	Limits   core.Limits
}

// Header is the panel-level part of the init buffer.
type Header struct {
	Name     string
	Subtitle string
	Accent   uint32
}

// Schema is a decoded init buffer.
type Schema struct {
	Header
	Registry *core.Registry
	// Declared is the parameter count announced by the buffer after clamping.
	Declared int
	// Complete is false when decoding stopped early on a truncated buffer.
	Complete bool
}

// Decode parses data. It never fails: decoding stops at the first field that
// would read past the end and the parameters decoded so far are returned. A
// parameter is committed only once all of its fields, options included, have
// been read.
func Decode(data []byte, opts Options) Schema {
	reg := core.NewRegistry(opts.Limits)
	limits := reg.Limits()
	s := Schema{Header: Header{Accent: render.Cyan}, Registry: reg}
	r := NewReader(data)

	count, ok := r.U8()
	if !ok {
		return s
	}
	s.Declared = int(count)
	if s.Declared > limits.MaxParams {
		s.Declared = limits.MaxParams
	}

	rgb, ok := r.Bytes(3)
	if !ok {
		return s
	}
	s.Accent = render.RGB(rgb[0], rgb[1], rgb[2])

	if s.Name, ok = r.Str(MaxName); !ok {
		return s
	}
	if opts.Subtitle && r.Remaining() > 0 {
		if s.Subtitle, ok = r.Str(MaxSubtitle); !ok {
			return s
		}
	}

	for i := 0; i < s.Declared; i++ {
		p, ok := readParam(r, limits)
		if !ok {
			return s
		}
		reg.Add(p)
	}
	s.Complete = true
	return s
}

func readParam(r *Reader, limits core.Limits) (core.Parameter, bool) {
	var p core.Parameter
	kind, ok := r.U8()
	if !ok {
		return p, false
	}
	p.Kind = core.Kind(kind)
	if p.Label, ok = r.Str(limits.MaxLabel); !ok {
		return p, false
	}
	if p.Group, ok = r.Str(limits.MaxLabel); !ok {
		return p, false
	}
	for _, dst := range []*float32{&p.Min, &p.Max, &p.Step, &p.Value} {
		if *dst, ok = r.F32(); !ok {
			return p, false
		}
	}
	n, ok := r.U8()
	if !ok {
		return p, false
	}
	for j := 0; j < int(n); j++ {
		var opt core.Option
		if opt.Value, ok = r.F32(); !ok {
			return p, false
		}
		if opt.Label, ok = r.Str(limits.MaxLabel); !ok {
			return p, false
		}
		if len(p.Options) < limits.MaxOptions {
			p.Options = append(p.Options, opt)
		}
	}
	return p, true
}
