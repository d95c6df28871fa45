package core

// Preset is a ready-made init buffer together with the panel theme it was
// authored for.
type Preset struct {
	Name  string
	Theme string
	Data  []byte
}

// Factory constructs a Preset using an optional configuration map.
type Factory func(cfg map[string]string) Preset

var presets = map[string]Factory{}

// Register adds a preset factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Presets exposes the registry of available preset factories.
func Presets() map[string]Factory {
	return presets
}
