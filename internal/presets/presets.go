// Package presets holds helpers shared by the built-in demo schemas. The
// schemas themselves live in sub-packages that register with core.Register
// when imported.
package presets

import (
	"strconv"
	"strings"

	"hwui/internal/core"
	"hwui/internal/render"
)

// Knob describes a rotary parameter.
func Knob(group, label string, min, max, step, value float32) core.Parameter {
	return core.Parameter{Kind: core.KindKnob, Label: label, Group: group, Min: min, Max: max, Step: step, Value: value}
}

// Select describes a choice parameter whose options take the values 0..n-1.
func Select(group, label string, selected int, labels ...string) core.Parameter {
	opts := make([]core.Option, len(labels))
	for i, l := range labels {
		opts[i] = core.Option{Value: float32(i), Label: l}
	}
	return core.Parameter{
		Kind:    core.KindSelect,
		Label:   label,
		Group:   group,
		Max:     float32(len(labels) - 1),
		Step:    1,
		Value:   float32(selected),
		Options: opts,
	}
}

// Toggle describes an on/off parameter.
func Toggle(group, label string, on bool) core.Parameter {
	p := core.Parameter{Kind: core.KindToggle, Label: label, Group: group, Max: 1, Step: 1}
	if on {
		p.Value = 1
	}
	return p
}

// ParseAccent parses an "rrggbb" or "#rrggbb" color.
func ParseAccent(s string) (uint32, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return render.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// Header applies the common "name" and "accent" keys of cfg over the
// defaults.
func Header(cfg map[string]string, name string, accent uint32) (string, uint32) {
	if cfg == nil {
		return name, accent
	}
	if v, ok := cfg["name"]; ok && v != "" {
		name = v
	}
	if v, ok := cfg["accent"]; ok {
		if parsed, ok := ParseAccent(v); ok {
			accent = parsed
		}
	}
	return name, accent
}
