// Package vstbridge provides a large subtractive synth panel in the
// VSTBridge theme. Its content is taller than the canvas, so it scrolls.
package vstbridge

import (
	"hwui/internal/core"
	"hwui/internal/panel"
	"hwui/internal/presets"
	"hwui/internal/render"
	"hwui/internal/wire"
)

// Config controls the generated schema.
type Config struct {
	Name   string
	Accent uint32
	// Effects adds the effects group.
	Effects bool
}

// DefaultConfig returns the full polysynth layout.
func DefaultConfig() Config {
	return Config{Name: "PolySynth", Accent: render.Cyan, Effects: true}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Name, c.Accent = presets.Header(cfg, c.Name, c.Accent)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["fx"]; ok {
		c.Effects = v != "0" && v != "false" && v != "off"
	}
	return c
}

var waves = []string{"Saw", "Square", "Triangle", "Sine", "Noise"}

// Params lists the schema's parameters in wire order.
func Params(c Config) []core.Parameter {
	ps := []core.Parameter{
		presets.Select("Osc 1", "Wave", 0, waves...),
		presets.Knob("Osc 1", "Octave", -2, 2, 1, 0),
		presets.Knob("Osc 1", "Detune", -1, 1, 0, 0),
		presets.Knob("Osc 1", "Level", 0, 1, 0, 0.8),

		presets.Select("Osc 2", "Wave", 1, waves...),
		presets.Knob("Osc 2", "Octave", -2, 2, 1, -1),
		presets.Knob("Osc 2", "Detune", -1, 1, 0, 0.07),
		presets.Knob("Osc 2", "Level", 0, 1, 0, 0.6),
		presets.Toggle("Osc 2", "Hard Sync", false),

		presets.Select("Filter", "Type", 0, "LP24", "LP12", "HP12", "BP12", "Notch"),
		presets.Knob("Filter", "Cutoff", 0, 100, 0, 64),
		presets.Knob("Filter", "Reso", 0, 1, 0, 0.2),
		presets.Knob("Filter", "Env Amt", -1, 1, 0, 0.4),
		presets.Knob("Filter", "Drive", 0, 1, 0.05, 0),
		presets.Toggle("Filter", "Key Track", true),

		presets.Knob("Mixer", "Noise", 0, 1, 0, 0),
		presets.Knob("Mixer", "Sub", 0, 1, 0, 0.3),
		presets.Knob("Mixer", "Ring", 0, 1, 0, 0),
	}
	for _, env := range []string{"Amp Env", "Filter Env"} {
		ps = append(ps,
			presets.Knob(env, "Attack", 0, 1, 0, 0.01),
			presets.Knob(env, "Decay", 0, 1, 0, 0.3),
			presets.Knob(env, "Sustain", 0, 1, 0, 0.7),
			presets.Knob(env, "Release", 0, 1, 0, 0.4),
			presets.Knob(env, "Velocity", 0, 1, 0, 0.5),
		)
	}
	ps = append(ps,
		presets.Select("LFO", "Shape", 2, "Sine", "Triangle", "Saw", "Square", "S&H"),
		presets.Knob("LFO", "Rate", 0, 20, 0, 4.5),
		presets.Knob("LFO", "Depth", 0, 1, 0, 0),
		presets.Select("LFO", "Target", 0, "Pitch", "Cutoff", "Amp", "PWM"),
		presets.Toggle("LFO", "Tempo Sync", false),
	)
	if c.Effects {
		ps = append(ps,
			presets.Toggle("Effects", "Chorus", true),
			presets.Knob("Effects", "Chorus Mix", 0, 1, 0, 0.3),
			presets.Knob("Effects", "Delay", 0, 2000, 10, 350),
			presets.Knob("Effects", "Feedback", 0, 1, 0, 0.35),
			presets.Knob("Effects", "Delay Mix", 0, 1, 0, 0.2),
			presets.Knob("Effects", "Reverb", 0, 1, 0, 0.25),
		)
	}
	ps = append(ps,
		presets.Select("Global", "Voices", 3, "1", "2", "4", "8", "16"),
		presets.Knob("Global", "Glide", 0, 1, 0, 0),
		presets.Knob("Global", "Bend", 0, 12, 1, 2),
		presets.Knob("Global", "Volume", 0, 1, 0, 0.8),
		presets.Toggle("Global", "Legato", false),
	)
	return ps
}

// Build encodes the schema for the VSTBridge theme.
func Build(c Config) core.Preset {
	h := wire.Header{Name: c.Name, Accent: c.Accent}
	return core.Preset{
		Name:  "vstbridge",
		Theme: "vstbridge",
		Data:  wire.Encode(h, Params(c), panel.VSTBridge().Wire),
	}
}

func init() {
	core.Register("vstbridge", func(cfg map[string]string) core.Preset {
		return Build(FromMap(cfg))
	})
}
