package core

import "math"

// Kind enumerates the widget kinds a parameter can be rendered as. Values
// match the wire encoding.
type Kind uint8

const (
	// KindKnob is a rotary control over [Min, Max].
	KindKnob Kind = 0
	// KindSelect picks one of Options via prev/next arrows.
	KindSelect Kind = 1
	// KindToggle is an on/off checkbox; values >= 0.5 read as on.
	KindToggle Kind = 2
)

// Valid reports whether k is a kind the panel knows how to lay out.
func (k Kind) Valid() bool { return k <= KindToggle }

func (k Kind) String() string {
	switch k {
	case KindKnob:
		return "knob"
	case KindSelect:
		return "select"
	case KindToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// OptionEpsilon is the tolerance used to match a value to a select option.
const OptionEpsilon = 0.001

// Option is one entry of a select parameter.
type Option struct {
	Value float32
	Label string
}

// Parameter describes a single host-controlled value.
type Parameter struct {
	Kind  Kind
	Label string
	Group string

	Min   float32
	Max   float32
	Step  float32
	Value float32

	Options []Option
}

// Snap rounds v to the nearest step above min and clamps it to [min, max].
// Values past max land on the last step that still fits, so the result is
// always on the step grid and Snap(Snap(v)) == Snap(v). A non-positive step
// leaves v untouched.
func Snap(v, min, max, step float32) float32 {
	if step <= 0 {
		return v
	}
	v = min + float32(math.Round(float64((v-min)/step)))*step
	if v > max {
		k := float32(math.Floor(float64((max - min) / step)))
		v = min + k*step
		if v > max {
			v = min + (k-1)*step
		}
	}
	if v < min {
		v = min
	}
	return v
}

// Snapped applies the parameter's own step to v.
func (p Parameter) Snapped(v float32) float32 {
	return Snap(v, p.Min, p.Max, p.Step)
}

// SelectedIndex returns the option whose value matches Value within
// OptionEpsilon, or 0 when none does.
func (p Parameter) SelectedIndex() int {
	for i, opt := range p.Options {
		if float32(math.Abs(float64(p.Value-opt.Value))) < OptionEpsilon {
			return i
		}
	}
	return 0
}

// Checked reports the toggle state of the parameter.
func (p Parameter) Checked() bool { return p.Value >= 0.5 }
