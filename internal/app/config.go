package app

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"hwui/internal/core"
	"hwui/internal/panel"
	"hwui/internal/state"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Preset string
	// Theme overrides the preset's own theme when set.
	Theme string
	Scale int
	TPS   int
	// State is a flat value file restored at startup and written by Ctrl+S.
	State string
	// Snapshot renders one frame to this PNG path and exits.
	Snapshot string
	Debug    bool
	// Overrides are key=value pairs handed to the preset factory.
	Overrides Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "mame", Scale: 2, TPS: 60, Overrides: Overrides{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "preset to show ("+strings.Join(PresetNames(), ", ")+")")
	fs.StringVar(&c.Theme, "theme", c.Theme, "theme override ("+strings.Join(panel.ThemeNames(), ", ")+")")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.State, "state", c.State, "parameter value file to restore and save")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "write one rendered frame to this PNG file and exit")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")
	if c.Overrides == nil {
		c.Overrides = Overrides{}
	}
	fs.Var(c.Overrides, "set", "preset option as key=value (repeatable)")
}

// Overrides collects repeated key=value flags.
type Overrides map[string]string

// String implements flag.Value.
func (o Overrides) String() string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + o[k]
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (o Overrides) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	o[key] = value
	return nil
}

// PresetNames lists the registered presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(core.Presets()))
	for name := range core.Presets() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve builds the configured preset and picks its theme.
func Resolve(c *Config) (core.Preset, panel.Theme, error) {
	factory, ok := core.Presets()[c.Preset]
	if !ok {
		return core.Preset{}, panel.Theme{}, fmt.Errorf("unknown preset %q (have %s)", c.Preset, strings.Join(PresetNames(), ", "))
	}
	preset := factory(c.Overrides)
	name := preset.Theme
	if c.Theme != "" {
		name = c.Theme
	}
	theme, ok := panel.ThemeByName(name)
	if !ok {
		return core.Preset{}, panel.Theme{}, fmt.Errorf("unknown theme %q", name)
	}
	return preset, theme, nil
}

// Open resolves the preset, initializes a panel with it and restores the
// state file when one exists.
func Open(c *Config, log *slog.Logger, opts ...panel.Option) (*panel.Panel, error) {
	preset, theme, err := Resolve(c)
	if err != nil {
		return nil, err
	}
	p := panel.New(theme, append([]panel.Option{panel.WithLogger(log)}, opts...)...)
	p.Init(preset.Data)
	if c.State == "" {
		return p, nil
	}
	n, err := RestoreState(p, c.State)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Info("no saved state yet", "path", c.State)
	case err != nil:
		return nil, err
	default:
		log.Info("restored state", "path", c.State, "values", n)
	}
	return p, nil
}

// SaveState writes the panel's values to path.
func SaveState(p *panel.Panel, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if err := state.Save(f, p.Registry()); err != nil {
		f.Close()
		return fmt.Errorf("save state %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save state %s: %w", path, err)
	}
	return nil
}

// RestoreState loads values from path into the panel and returns how many
// were applied.
func RestoreState(p *panel.Panel, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("restore state: %w", err)
	}
	defer f.Close()
	n, err := state.Restore(f, p.Registry())
	if err != nil {
		return n, fmt.Errorf("restore state %s: %w", path, err)
	}
	p.Invalidate()
	return n, nil
}

// NewLogger returns the host logger: text on stderr, debug level on request.
func NewLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
