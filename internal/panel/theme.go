package panel

import (
	"strings"

	"hwui/internal/core"
	"hwui/internal/layout"
	"hwui/internal/render"
	"hwui/internal/wire"
)

// HeaderStyle selects how the title bar is painted.
type HeaderStyle uint8

const (
	// HeaderFlat fills the bar with the accent color.
	HeaderFlat HeaderStyle = iota
	// HeaderGradient shades the accent from bright to dark with an accent
	// rule along the bottom edge.
	HeaderGradient
)

// GroupStyle selects the group box renderer.
type GroupStyle uint8

const (
	// GroupEtched draws ui.GroupBox.
	GroupEtched GroupStyle = iota
	// GroupCard draws ui.CardBox.
	GroupCard
)

// Theme is everything that differs between panel looks. The engine itself is
// shared.
type Theme struct {
	Name string

	Width, Height int
	Background    uint32

	Header    HeaderStyle
	HeaderH   int
	SubtitleH int
	// ShowSubtitle draws the subtitle bar when the schema carries a
	// non-empty subtitle.
	ShowSubtitle bool
	// DefaultName is shown when the schema has no name.
	DefaultName string

	Groups     GroupStyle
	KnobRadius int
	// SelectLabelDY offsets a select's label below its row top.
	SelectLabelDY int
	// SelectLabelGap separates a select's label from its dropdown.
	SelectLabelGap int
	// SelectMinW floors the dropdown width.
	SelectMinW int

	ScrollbarW int
	WheelStep  int

	Wire   wire.Options
	Layout layout.Metrics
}

// Top is the first canvas row below the header bars.
func (t Theme) Top() int { return t.HeaderH + t.SubtitleH }

// MAME is the compact chip-emulator look: flat header, subtitle bar and
// etched group boxes on black.
func MAME() Theme {
	const top = 20 + 10
	return Theme{
		Name:           "mame",
		Width:          560,
		Height:         360,
		Background:     render.Black,
		Header:         HeaderFlat,
		HeaderH:        20,
		SubtitleH:      10,
		ShowSubtitle:   true,
		DefaultName:    "CHIP",
		Groups:         GroupEtched,
		KnobRadius:     12,
		SelectLabelDY:  1,
		SelectLabelGap: 6,
		SelectMinW:     60,
		ScrollbarW:     10,
		WheelStep:      20,
		Wire: wire.Options{
			Subtitle: true,
			Limits:   core.Limits{MaxParams: 64, MaxOptions: 16, MaxGroups: 16, MaxLabel: 31},
		},
		Layout: layout.Metrics{
			Width: 560, Top: top, Pad: 4, Inner: 4, Columns: 2,
			KnobsPerRow: 3, KnobCellW: 40, KnobCellH: 46,
			SelectH: 12, ToggleH: 10, Gap: 2,
			HeaderPad: 6, BodyOffset: 8, MinGroupH: 30,
		},
	}
}

// VSTBridge is the roomier plugin look: gradient header, no subtitle bar and
// flat cards on a dark gray canvas.
func VSTBridge() Theme {
	return Theme{
		Name:           "vstbridge",
		Width:          640,
		Height:         400,
		Background:     0xFF1A1A1A,
		Header:         HeaderGradient,
		HeaderH:        22,
		DefaultName:    "VSTBridge",
		Groups:         GroupCard,
		KnobRadius:     14,
		SelectLabelDY:  2,
		SelectLabelGap: 8,
		SelectMinW:     60,
		ScrollbarW:     10,
		WheelStep:      24,
		Wire: wire.Options{
			Subtitle: true,
			Limits:   core.Limits{MaxParams: 128, MaxOptions: 16, MaxGroups: 16, MaxLabel: 31},
		},
		Layout: layout.Metrics{
			Width: 640, Top: 22, Pad: 12, Inner: 6, Columns: 2,
			KnobsPerRow: 3, KnobCellW: 52, KnobCellH: 52,
			SelectH: 12, ToggleH: 10, Gap: 4,
			HeaderPad: 8, BodyOffset: 10, MinGroupH: 36,
		},
	}
}

// ThemeByName returns a built-in theme. Names are case-insensitive.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "mame":
		return MAME(), true
	case "vstbridge", "vst":
		return VSTBridge(), true
	default:
		return Theme{}, false
	}
}

// ThemeNames lists the built-in theme names.
func ThemeNames() []string { return []string{"mame", "vstbridge"} }
