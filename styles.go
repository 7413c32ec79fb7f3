package toast

import "github.com/charmbracelet/lipgloss"

// Kind colors
var (
	InfoColor    = lipgloss.Color("#009bff")
	WarningColor = lipgloss.Color("#ffd400")
	ErrorColor   = lipgloss.Color("#ff2000")
	SuccessColor = lipgloss.Color("#00ff20")
)

// Progress bar defaults
var (
	DefaultProgressColor        = lipgloss.Color("#006400")
	DefaultProgressOutlineColor = lipgloss.Color("#d3d3d3")
)

// Styles holds the lipgloss styles used by the default renderer.
type Styles struct {
	// Frame is the window frame drawn around every toast.
	Frame lipgloss.Style

	// Text styles the toast message.
	Text lipgloss.Style

	// Dismiss styles the close control.
	Dismiss lipgloss.Style

	// Per-kind icon styles
	IconInfo    lipgloss.Style
	IconWarning lipgloss.Style
	IconError   lipgloss.Style
	IconSuccess lipgloss.Style
}

// DefaultStyles returns the stock toast look.
func DefaultStyles() *Styles {
	return &Styles{
		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			Padding(0, 1),

		Text: lipgloss.NewStyle(),

		Dismiss: lipgloss.NewStyle().
			Faint(true),

		IconInfo: lipgloss.NewStyle().
			Foreground(InfoColor),

		IconWarning: lipgloss.NewStyle().
			Foreground(WarningColor),

		IconError: lipgloss.NewStyle().
			Foreground(ErrorColor),

		IconSuccess: lipgloss.NewStyle().
			Foreground(SuccessColor),
	}
}

// Icon returns the icon glyph and style for a toast kind. Kinds without
// an icon of their own fall back to the info icon.
func (s *Styles) Icon(kind Kind) (string, lipgloss.Style) {
	switch kind {
	case KindWarning:
		return "⚠", s.IconWarning
	case KindError:
		return "✖", s.IconError
	case KindSuccess:
		return "✔", s.IconSuccess
	default:
		return "ℹ", s.IconInfo
	}
}
