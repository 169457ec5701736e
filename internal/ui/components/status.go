package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Status is the semantic intent of a control and selects its colours.
type Status int

const (
	StatusDefault Status = iota
	StatusSecondary
	StatusSuccess
	StatusWarning
	StatusError
)

var statusNames = map[Status]string{
	StatusDefault:   "default",
	StatusSecondary: "secondary",
	StatusSuccess:   "success",
	StatusWarning:   "warning",
	StatusError:     "error",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// Next returns the status following s, wrapping around after StatusError.
func (s Status) Next() Status {
	if !s.Valid() || s == StatusError {
		return StatusDefault
	}
	return s + 1
}

// ParseStatus converts a status name into a Status. Unknown names yield
// StatusDefault and false so callers can degrade instead of failing.
func ParseStatus(name string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return StatusDefault, true
	case "secondary":
		return StatusSecondary, true
	case "success":
		return StatusSuccess, true
	case "warning":
		return StatusWarning, true
	case "error", "danger":
		return StatusError, true
	default:
		return StatusDefault, false
	}
}

// StatusColors is the colour triple a status resolves to.
type StatusColors struct {
	Text        lipgloss.AdaptiveColor
	Border      lipgloss.AdaptiveColor
	HoverBorder lipgloss.AdaptiveColor
}

// BorderFor returns the border colour for the given hover state.
func (c StatusColors) BorderFor(hover bool) lipgloss.AdaptiveColor {
	if hover {
		return c.HoverBorder
	}
	return c.Border
}

// ColorsFor resolves the colours of status s against palette p. It reads
// nothing but its arguments. Unrecognised statuses get the default set.
func ColorsFor(p Palette, s Status) StatusColors {
	switch s {
	case StatusSecondary:
		return StatusColors{
			Text:        p.Surface.OnBase,
			Border:      p.Secondary.Base,
			HoverBorder: p.Secondary.Base,
		}
	case StatusSuccess:
		return StatusColors{
			Text:        p.Surface.OnBase,
			Border:      p.Success.Muted,
			HoverBorder: p.Success.Base,
		}
	case StatusWarning:
		return StatusColors{
			Text:        p.Surface.OnBase,
			Border:      p.Warning.Muted,
			HoverBorder: p.Warning.Base,
		}
	case StatusError:
		return StatusColors{
			Text:        p.Danger.Base,
			Border:      p.Danger.Base,
			HoverBorder: p.Danger.Base,
		}
	default:
		return StatusColors{
			Text:        p.Surface.OnBase,
			Border:      p.Neutral.Muted,
			HoverBorder: p.Neutral.Base,
		}
	}
}

// DisabledPalette holds the fixed colours of a disabled control.
type DisabledPalette struct {
	Background lipgloss.AdaptiveColor
	Border     lipgloss.AdaptiveColor
}

// DisabledColors returns the disabled colours of p.
func DisabledColors(p Palette) DisabledPalette {
	return DisabledPalette{
		Background: p.Surface.Muted,
		Border:     p.Neutral.Muted,
	}
}
