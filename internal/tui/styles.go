// Package tui provides the bubbletea + lipgloss multi-panel demo application
// for the winhop hint engine.
package tui

import "github.com/charmbracelet/lipgloss"

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

var colorGray = lipgloss.Color("#888888")

// dimStyle renders secondary text such as the too-small notice.
var dimStyle = lipgloss.NewStyle().Foreground(colorGray)
