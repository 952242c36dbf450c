package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/winhop/winhop/internal/tui/components"
)

// sectionMarker prefixes lines that open a new log section. Bracket-leader
// motions jump between markers and fold operations collapse everything
// below them.
const sectionMarker = "── "

// LogPanel is the scrollback panel. It supports plain motions, section jumps
// via the bracket leader, and fold operations via the fold leader. All of
// these are reachable through relay without the panel taking focus.
type LogPanel struct {
	pager  components.Pager
	lines  []string // full unfolded content
	folded bool
	width  int
	height int
}

// NewLogPanel creates a log panel with the given dimensions.
func NewLogPanel(w, h int) LogPanel {
	return LogPanel{
		pager:  components.NewPager(w, h),
		width:  w,
		height: h,
	}
}

// SetLines replaces the log content.
func (p LogPanel) SetLines(lines []string) LogPanel {
	p.lines = make([]string, len(lines))
	copy(p.lines, lines)
	p.folded = false
	p.pager = p.pager.SetContent(p.lines)
	return p
}

// AppendLine appends one line to the log. Appending unfolds the view.
func (p LogPanel) AppendLine(line string) LogPanel {
	p.lines = append(p.lines, line)
	if p.folded {
		p.folded = false
		p.pager = p.pager.SetContent(p.lines)
		return p
	}
	p.pager = p.pager.AppendLine(line)
	return p
}

// Folded reports whether the view is collapsed to section headers.
func (p LogPanel) Folded() bool {
	return p.folded
}

// SetSize resizes the panel.
func (p LogPanel) SetSize(w, h int) LogPanel {
	p.width = w
	p.height = h
	p.pager = p.pager.SetSize(w, h)
	return p
}

// Motion applies a relayed motion key.
func (p LogPanel) Motion(key rune) LogPanel {
	p.pager = p.pager.Motion(key)
	return p
}

// JumpSection scrolls to the previous (delta < 0) or next (delta > 0)
// section marker relative to the current scroll position.
func (p LogPanel) JumpSection(delta int) LogPanel {
	visible := p.pager.Lines()
	offset := p.pager.Offset()

	if delta > 0 {
		for i := offset + 1; i < len(visible); i++ {
			if isSectionHeader(visible[i]) {
				return LogPanel{pager: p.pager.ScrollTo(i), lines: p.lines, folded: p.folded, width: p.width, height: p.height}
			}
		}
		return p
	}
	for i := offset - 1; i >= 0; i-- {
		if isSectionHeader(visible[i]) {
			return LogPanel{pager: p.pager.ScrollTo(i), lines: p.lines, folded: p.folded, width: p.width, height: p.height}
		}
	}
	p.pager = p.pager.ScrollTo(0)
	return p
}

// Fold applies a fold operation: 'c' collapses to section headers, 'o'
// opens the full view, 'a' toggles. Other arguments are ignored.
func (p LogPanel) Fold(op rune) LogPanel {
	switch op {
	case 'c':
		return p.setFolded(true)
	case 'o':
		return p.setFolded(false)
	case 'a':
		return p.setFolded(!p.folded)
	}
	return p
}

func (p LogPanel) setFolded(folded bool) LogPanel {
	if folded == p.folded {
		return p
	}
	p.folded = folded
	if folded {
		var headers []string
		for _, line := range p.lines {
			if isSectionHeader(line) {
				headers = append(headers, line)
			}
		}
		p.pager = p.pager.SetContent(headers)
		return p
	}
	p.pager = p.pager.SetContent(p.lines)
	return p
}

// Update handles key messages for the panel while it holds focus.
func (p LogPanel) Update(msg tea.Msg) (LogPanel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "j", "down":
			return p.Motion('j'), nil
		case "k", "up":
			return p.Motion('k'), nil
		case "g":
			return p.Motion('g'), nil
		case "G":
			return p.Motion('G'), nil
		case "ctrl+d":
			return p.Motion('d'), nil
		case "ctrl+u":
			return p.Motion('u'), nil
		}
	}
	var cmd tea.Cmd
	p.pager, cmd = p.pager.Update(msg)
	return p, cmd
}

// View renders the log panel.
func (p LogPanel) View() string {
	return p.pager.View()
}

// isSectionHeader reports whether line opens a log section.
func isSectionHeader(line string) bool {
	return strings.HasPrefix(line, sectionMarker)
}

// SectionHeader formats a section-opening log line.
func SectionHeader(title string) string {
	return sectionMarker + title + " " + strings.Repeat("─", 8)
}
