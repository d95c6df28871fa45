package ui

import (
	"fmt"
	"strings"
)

// Status is the host-side summary shown by the HUD strip.
type Status struct {
	Title     string
	Params    int
	Scroll    int
	MaxScroll int
	Frames    int
	// Last describes the most recent edit, empty until one happens.
	Last string
}

// Line formats the status as a single line.
func (s Status) Line() string {
	var b strings.Builder
	title := s.Title
	if title == "" {
		title = "panel"
	}
	fmt.Fprintf(&b, "%s  %d params  frame %d", title, s.Params, s.Frames)
	if s.MaxScroll > 0 {
		fmt.Fprintf(&b, "  scroll %d/%d", s.Scroll, s.MaxScroll)
	}
	if s.Last != "" {
		b.WriteString("  | ")
		b.WriteString(s.Last)
	}
	return b.String()
}

// Describe formats an edit for Status.Last.
func Describe(index int, label string, value float32) string {
	if label == "" {
		label = fmt.Sprintf("#%d", index)
	}
	return fmt.Sprintf("%s = %s", label, formatValue(value))
}

func formatValue(v float32) string {
	if v == float32(int(v)) {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.3f", v)
}
