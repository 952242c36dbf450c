// Package panels provides the panel components for the winhop multi-panel
// demo TUI.
package panels

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FileSelectedMsg is emitted when the user selects a file for preview.
type FileSelectedMsg struct{ Name string }

// FileEntry is one row in the file list.
type FileEntry struct {
	Name string
	Dir  bool
}

// fileItem wraps a FileEntry as a list.Item.
type fileItem struct {
	entry FileEntry
}

func (f fileItem) Title() string {
	if f.entry.Dir {
		return f.entry.Name + "/"
	}
	return f.entry.Name
}

func (f fileItem) Description() string { return "" }
func (f fileItem) FilterValue() string { return f.entry.Name }

// fileDelegate renders compact single-line file items.
type fileDelegate struct{}

func (d fileDelegate) Height() int                             { return 1 }
func (d fileDelegate) Spacing() int                            { return 0 }
func (d fileDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d fileDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	fi, ok := item.(fileItem)
	if !ok {
		return
	}
	s := fi.Title()
	if index == m.Index() {
		s = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")).Render("> " + s)
	} else {
		s = "  " + s
	}
	_, _ = fmt.Fprint(w, s)
}

// FilesPanel displays a navigable list of files in the working directory.
type FilesPanel struct {
	list    list.Model
	entries []FileEntry
	width   int
	height  int
}

// NewFilesPanel creates a files panel with the given entries.
func NewFilesPanel(entries []FileEntry, w, h int) FilesPanel {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = fileItem{entry: e}
	}
	l := list.New(items, fileDelegate{}, w, h)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return FilesPanel{
		list:    l,
		entries: entries,
		width:   w,
		height:  h,
	}
}

// Selected returns the currently highlighted entry, or nil.
func (p FilesPanel) Selected() *FileEntry {
	if item, ok := p.list.SelectedItem().(fileItem); ok {
		e := item.entry
		return &e
	}
	return nil
}

// SetSize resizes the panel.
func (p FilesPanel) SetSize(w, h int) FilesPanel {
	p.width = w
	p.height = h
	p.list.SetSize(w, h)
	return p
}

// Motion applies a relayed motion key without the panel holding focus.
func (p FilesPanel) Motion(key rune) FilesPanel {
	switch key {
	case 'j':
		p.list.CursorDown()
	case 'k':
		p.list.CursorUp()
	case 'g':
		p.list.Select(0)
	case 'G':
		if n := len(p.list.Items()); n > 0 {
			p.list.Select(n - 1)
		}
	}
	return p
}

// Update handles key messages for the panel while it holds focus.
func (p FilesPanel) Update(msg tea.Msg) (FilesPanel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			p.list.CursorDown()
		case "k", "up":
			p.list.CursorUp()
		case "g":
			p.list.Select(0)
		case "G":
			if n := len(p.list.Items()); n > 0 {
				p.list.Select(n - 1)
			}
		case "enter":
			if sel := p.Selected(); sel != nil && !sel.Dir {
				name := sel.Name
				return p, func() tea.Msg { return FileSelectedMsg{Name: name} }
			}
		default:
			p.list, cmd = p.list.Update(msg)
		}
	default:
		p.list, cmd = p.list.Update(msg)
	}
	return p, cmd
}

// View renders the files panel.
func (p FilesPanel) View() string {
	if len(p.entries) == 0 {
		return lipgloss.NewStyle().
			Width(p.width).Height(p.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(lipgloss.Color("#888888")).
			Render("No files")
	}
	return p.list.View()
}
