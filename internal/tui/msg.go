package tui

import "time"

// tickMsg is sent every second for the header clock.
type tickMsg time.Time

// previewLoadedMsg carries loaded file content for the preview panel.
type previewLoadedMsg struct {
	Name    string
	Content string
	Err     error
}
