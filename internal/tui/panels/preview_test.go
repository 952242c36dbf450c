package panels

import (
	"strings"
	"testing"
)

const previewContent = `alpha one
alpha two

beta one
beta two

gamma one
gamma two
gamma three`

func TestPreviewShowFile(t *testing.T) {
	p := NewPreviewPanel(40, 10)
	if !strings.Contains(p.View(), "Select a file") {
		t.Error("empty preview should render the placeholder")
	}

	p = p.ShowFile("notes.txt", previewContent)
	if p.FileName() != "notes.txt" {
		t.Errorf("FileName = %q, want notes.txt", p.FileName())
	}
	view := p.View()
	if !strings.Contains(view, "notes.txt") {
		t.Error("view should contain the file name")
	}
	if !strings.Contains(view, "alpha one") {
		t.Error("view should contain the content")
	}
}

func TestPreviewJumpSection(t *testing.T) {
	p := NewPreviewPanel(40, 3).ShowFile("notes.txt", previewContent)

	p = p.JumpSection(1)
	if got := p.pager.Offset(); got != 3 {
		t.Errorf("first forward jump: offset = %d, want 3", got)
	}
	p = p.JumpSection(1)
	if got := p.pager.Offset(); got != 6 {
		t.Errorf("second forward jump: offset = %d, want 6", got)
	}
	p = p.JumpSection(1)
	if got := p.pager.Offset(); got != 6 {
		t.Errorf("jump past the last paragraph moved to %d", got)
	}

	p = p.JumpSection(-1)
	if got := p.pager.Offset(); got != 3 {
		t.Errorf("backward jump: offset = %d, want 3", got)
	}
	p = p.JumpSection(-1)
	if got := p.pager.Offset(); got != 0 {
		t.Errorf("backward jump: offset = %d, want 0", got)
	}
}
