// Package components provides reusable TUI components for the winhop
// multi-panel demo.
package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Pager is a scrollable text area wrapping bubbles/viewport with vi-style
// motion support. The log, preview and help panels all build on it, and the
// relay loop drives it through Motion without the panel ever taking focus.
type Pager struct {
	vp     viewport.Model
	lines  []string
	width  int
	height int
}

// NewPager creates a Pager with the given dimensions.
func NewPager(w, h int) Pager {
	vp := viewport.New(w, h)
	return Pager{vp: vp, width: w, height: h}
}

// SetContent replaces all lines and scrolls back to the top.
func (p Pager) SetContent(lines []string) Pager {
	p.lines = make([]string, len(lines))
	copy(p.lines, lines)
	p.vp.SetContent(strings.Join(p.lines, "\n"))
	p.vp.GotoTop()
	return p
}

// AppendLine appends one pre-rendered line, keeping the current scroll
// position unless the view was already at the bottom.
func (p Pager) AppendLine(line string) Pager {
	wasAtBottom := p.vp.AtBottom()
	p.lines = append(p.lines, line)
	p.vp.SetContent(strings.Join(p.lines, "\n"))
	if wasAtBottom {
		p.vp.GotoBottom()
	}
	return p
}

// Lines returns the current content lines.
func (p Pager) Lines() []string {
	return p.lines
}

// Offset returns the current scroll offset in lines.
func (p Pager) Offset() int {
	return p.vp.YOffset
}

// ScrollTo scrolls so that the given line index is at the top of the view.
func (p Pager) ScrollTo(line int) Pager {
	if line < 0 {
		line = 0
	}
	p.vp.SetYOffset(line)
	return p
}

// SetSize resizes the pager.
func (p Pager) SetSize(w, h int) Pager {
	p.width = w
	p.height = h
	p.vp.Width = w
	p.vp.Height = h
	return p
}

// Motion applies one vi-style motion key: j/k line, g/G top/bottom,
// d/u half page. Unknown keys are ignored.
func (p Pager) Motion(key rune) Pager {
	switch key {
	case 'j':
		p.vp.LineDown(1)
	case 'k':
		p.vp.LineUp(1)
	case 'g':
		p.vp.GotoTop()
	case 'G':
		p.vp.GotoBottom()
	case 'd':
		p.vp.HalfViewDown()
	case 'u':
		p.vp.HalfViewUp()
	}
	return p
}

// Update handles bubbletea messages (scroll keys, mouse events).
func (p Pager) Update(msg tea.Msg) (Pager, tea.Cmd) {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

// View renders the pager content.
func (p Pager) View() string {
	return p.vp.View()
}
