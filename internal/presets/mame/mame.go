// Package mame provides a four-operator FM chip panel in the MAME theme.
package mame

import (
	"fmt"
	"strconv"

	"hwui/internal/core"
	"hwui/internal/panel"
	"hwui/internal/presets"
	"hwui/internal/render"
	"hwui/internal/wire"
)

// Config controls the generated schema.
type Config struct {
	Name     string
	Subtitle string
	Accent   uint32
	// Operators is the number of operator groups, 1..4.
	Operators int
}

// DefaultConfig returns the YM2151 layout.
func DefaultConfig() Config {
	return Config{
		Name:      "YM2151",
		Subtitle:  "OPM 4-OP FM",
		Accent:    render.Amber,
		Operators: 4,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Name, c.Accent = presets.Header(cfg, c.Name, c.Accent)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["subtitle"]; ok {
		c.Subtitle = v
	}
	if v, ok := cfg["ops"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 && parsed <= 4 {
			c.Operators = parsed
		}
	}
	return c
}

// Params lists the schema's parameters in wire order.
func Params(c Config) []core.Parameter {
	ps := []core.Parameter{
		presets.Select("Voice", "Algorithm", 4, "0", "1", "2", "3", "4", "5", "6", "7"),
		presets.Knob("Voice", "FB", 0, 7, 1, 3),
		presets.Knob("Voice", "PAN", -1, 1, 1, 0),
	}
	for op := 1; op <= c.Operators; op++ {
		g := fmt.Sprintf("Operator %d", op)
		ps = append(ps,
			presets.Knob(g, "TL", 0, 127, 1, float32(op-1)*16),
			presets.Knob(g, "AR", 0, 31, 1, 31),
			presets.Knob(g, "D1R", 0, 31, 1, 12),
			presets.Knob(g, "D2R", 0, 31, 1, 4),
			presets.Knob(g, "RR", 0, 15, 1, 7),
			presets.Knob(g, "D1L", 0, 15, 1, 5),
			presets.Knob(g, "MUL", 0, 15, 1, float32(op)),
			presets.Select(g, "DT1", 3, "-3", "-2", "-1", "0", "+1", "+2", "+3"),
			presets.Toggle(g, "AM Enable", false),
		)
	}
	ps = append(ps,
		presets.Select("LFO", "Wave", 0, "Saw", "Square", "Triangle", "Noise"),
		presets.Knob("LFO", "Rate", 0, 255, 1, 180),
		presets.Knob("LFO", "PMD", 0, 127, 1, 0),
		presets.Knob("LFO", "AMD", 0, 127, 1, 0),
		presets.Toggle("LFO", "Key Sync", true),
	)
	return ps
}

// Build encodes the schema for the MAME theme.
func Build(c Config) core.Preset {
	h := wire.Header{Name: c.Name, Subtitle: c.Subtitle, Accent: c.Accent}
	return core.Preset{
		Name:  "mame",
		Theme: "mame",
		Data:  wire.Encode(h, Params(c), panel.MAME().Wire),
	}
}

func init() {
	core.Register("mame", func(cfg map[string]string) core.Preset {
		return Build(FromMap(cfg))
	})
}
