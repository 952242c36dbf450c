package panels

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HeaderProps holds all data needed to render the header bar. String fields
// avoid importing the parent tui package (circular dep prevention).
type HeaderProps struct {
	WorkDir  string
	Renderer string // "overlay" or "statusline"
	Alphabet string // configured hint alphabet
	Mode     string // "NORMAL", "PICK", "RELAY"
	Clock    time.Time
}

// AbbreviatePath returns a display-friendly path, replacing the home
// directory with "~" and converting backslashes to forward slashes.
func AbbreviatePath(path string) string {
	if path == "" {
		return ""
	}
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(path, home) {
		path = "~" + path[len(home):]
	}
	return strings.ReplaceAll(path, "\\", "/")
}

// abbreviateAlphabet shortens a long alphabet for header display.
func abbreviateAlphabet(a string) string {
	runes := []rune(a)
	if len(runes) <= 8 {
		return a
	}
	return string(runes[:8]) + "…"
}

// RenderHeader renders the header bar for the multi-panel TUI.
// accentStyle is applied to the full header bar width.
func RenderHeader(props HeaderProps, width int, accentStyle lipgloss.Style) string {
	parts := []string{"⌘ winhop"}
	if props.WorkDir != "" {
		parts = append(parts, "dir: "+AbbreviatePath(props.WorkDir))
	}
	parts = append(parts,
		fmt.Sprintf("hints: %s", abbreviateAlphabet(props.Alphabet)),
		fmt.Sprintf("renderer: %s", props.Renderer),
	)
	if props.Mode != "" {
		parts = append(parts, props.Mode)
	}
	if !props.Clock.IsZero() {
		parts = append(parts, props.Clock.Format("15:04"))
	}

	content := strings.Join(parts, "  │  ")
	return accentStyle.Width(width).Render(content)
}
