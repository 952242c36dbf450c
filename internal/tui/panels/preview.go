package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/winhop/winhop/internal/tui/components"
)

// PreviewPanel shows the content of the file selected in the files panel.
// Bracket-leader motions jump between paragraphs (blank-line boundaries).
type PreviewPanel struct {
	pager  components.Pager
	name   string
	width  int
	height int
}

// NewPreviewPanel creates an empty preview panel.
func NewPreviewPanel(w, h int) PreviewPanel {
	return PreviewPanel{
		pager:  components.NewPager(w, h),
		width:  w,
		height: h,
	}
}

// ShowFile loads content into the preview.
func (p PreviewPanel) ShowFile(name, content string) PreviewPanel {
	p.name = name
	p.pager = p.pager.SetContent(strings.Split(content, "\n"))
	return p
}

// FileName returns the name of the previewed file, if any.
func (p PreviewPanel) FileName() string {
	return p.name
}

// SetSize resizes the panel.
func (p PreviewPanel) SetSize(w, h int) PreviewPanel {
	p.width = w
	p.height = h
	contentH := h - 1 // title row
	if contentH < 1 {
		contentH = 1
	}
	p.pager = p.pager.SetSize(w, contentH)
	return p
}

// Motion applies a relayed motion key.
func (p PreviewPanel) Motion(key rune) PreviewPanel {
	p.pager = p.pager.Motion(key)
	return p
}

// JumpSection scrolls to the previous (delta < 0) or next (delta > 0)
// paragraph boundary.
func (p PreviewPanel) JumpSection(delta int) PreviewPanel {
	lines := p.pager.Lines()
	offset := p.pager.Offset()

	if delta > 0 {
		for i := offset + 1; i < len(lines); i++ {
			if lines[i] == "" && i+1 < len(lines) {
				p.pager = p.pager.ScrollTo(i + 1)
				return p
			}
		}
		return p
	}
	for i := offset - 2; i >= 0; i-- {
		if lines[i] == "" {
			p.pager = p.pager.ScrollTo(i + 1)
			return p
		}
	}
	p.pager = p.pager.ScrollTo(0)
	return p
}

// Update handles key messages for the panel while it holds focus.
func (p PreviewPanel) Update(msg tea.Msg) (PreviewPanel, tea.Cmd) {
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

// View renders the preview panel: title row + content.
func (p PreviewPanel) View() string {
	title := p.name
	if title == "" {
		return lipgloss.NewStyle().
			Width(p.width).Height(p.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("#888888")).
			Render("Select a file to preview")
	}
	titleRow := lipgloss.NewStyle().Bold(true).Render(title)
	return lipgloss.JoinVertical(lipgloss.Left, titleRow, p.pager.View())
}
