package panels

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/winhop/winhop/internal/tui/components"
)

// helpLines is the static key reference shown in the help panel.
var helpLines = []string{
	"Global",
	"  tab / shift+tab  cycle focus",
	"  w                pick a panel by hint",
	"  e                relay motions to a panel",
	"  q / ctrl+c       quit",
	"",
	"Pick mode",
	"  <label>          jump to the labelled panel",
	"  esc              cancel",
	"",
	"Relay mode",
	"  j k g G d u      scroll the target panel",
	"  [ then [ or ]    previous / next section",
	"  z then c o a     close / open / toggle folds",
	"  esc              leave relay mode",
	"",
	"Panels",
	"  j/k navigate · enter preview (files)",
	"  ctrl+u/d half-page (log, preview)",
}

// HelpPanel is a static, scrollable key reference.
type HelpPanel struct {
	pager  components.Pager
	width  int
	height int
}

// NewHelpPanel creates the help panel.
func NewHelpPanel(w, h int) HelpPanel {
	return HelpPanel{
		pager:  components.NewPager(w, h).SetContent(helpLines),
		width:  w,
		height: h,
	}
}

// SetSize resizes the panel.
func (p HelpPanel) SetSize(w, h int) HelpPanel {
	p.width = w
	p.height = h
	p.pager = p.pager.SetSize(w, h)
	return p
}

// Motion applies a relayed motion key.
func (p HelpPanel) Motion(key rune) HelpPanel {
	p.pager = p.pager.Motion(key)
	return p
}

// Update handles key messages for the panel while it holds focus.
func (p HelpPanel) Update(msg tea.Msg) (HelpPanel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "j", "down":
			return p.Motion('j'), nil
		case "k", "up":
			return p.Motion('k'), nil
		}
	}
	var cmd tea.Cmd
	p.pager, cmd = p.pager.Update(msg)
	return p, cmd
}

// View renders the help panel.
func (p HelpPanel) View() string {
	return p.pager.View()
}
