package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Focus          string   // "files", "help", "log", "preview"
	Mode           string   // "NORMAL", "PICK", "RELAY"
	RelayTarget    string   // panel receiving relayed motions, if any
	AwaitingLeader bool     // a leader key is pending its argument
	HintLabels     []string // "label:panel" pairs in statusline renderer mode
}

// RenderFooter renders the context-sensitive footer bar.
// Left side: mode and focus. Right side: keybinding hints for the current
// state, or the hint labels when the statusline renderer is active.
func RenderFooter(props FooterProps, width int) string {
	left := fmt.Sprintf("focus: %s", props.Focus)

	var right string
	switch {
	case len(props.HintLabels) > 0:
		right = "jump: " + strings.Join(props.HintLabels, "  ") + "  esc:cancel"
	case props.Mode == "PICK":
		right = "press a hint label  esc:cancel"
	case props.Mode == "RELAY" && props.AwaitingLeader:
		right = fmt.Sprintf("→ %s  leader pending…  esc:abandon", props.RelayTarget)
	case props.Mode == "RELAY":
		right = fmt.Sprintf("→ %s  j/k/g/G/d/u:motion  [:section  z:fold  esc:done", props.RelayTarget)
	default:
		right = panelHints(props.Focus) + "  w:pick  e:relay  q:quit"
	}

	gap := width - len(left) - len(right)
	if gap < 2 {
		gap = 2
	}

	return footerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// panelHints returns the context-sensitive keybinding hints for a given
// focus.
func panelHints(focus string) string {
	switch focus {
	case "files":
		return "j/k:navigate  enter:preview  tab:next panel"
	case "help":
		return "j/k:scroll  tab:next panel"
	case "log", "preview":
		return "j/k:scroll  ctrl+u/d:page  tab:next panel"
	default:
		return "tab:next panel"
	}
}
