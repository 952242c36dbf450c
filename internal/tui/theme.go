package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds accent-color-derived styles for the multi-panel TUI.
type Theme struct {
	accentStyle     lipgloss.Style // header bar
	borderFocused   lipgloss.Style // focused panel border
	borderUnfocused lipgloss.Style // unfocused panel border
	badgeStyle      lipgloss.Style // overlay hint badge
	labelStyle      lipgloss.Style // statusline hint label
	relayStyle      lipgloss.Style // relay-mode footer marker
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		borderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c),
		borderUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray),
		badgeStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1),
		labelStyle: lipgloss.NewStyle().
			Foreground(c).
			Bold(true),
		relayStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")),
	}
}

// AccentHeaderStyle returns the style for the header bar.
func (t Theme) AccentHeaderStyle() lipgloss.Style {
	return t.accentStyle
}

// PanelBorderStyle returns the appropriate border style for a panel based on
// whether it currently holds keyboard focus.
func (t Theme) PanelBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return t.borderFocused
	}
	return t.borderUnfocused
}

// HintBadge renders an overlay hint label as a padded badge.
func (t Theme) HintBadge(label string) string {
	return t.badgeStyle.Render(label)
}

// HintLabel renders a statusline hint label.
func (t Theme) HintLabel(label string) string {
	return t.labelStyle.Render(label)
}

// RelayMarker renders the relay-mode footer marker.
func (t Theme) RelayMarker(s string) string {
	return t.relayStyle.Render(s)
}
