package tui

import "testing"

func TestIsGlobalKey(t *testing.T) {
	for _, k := range []string{"tab", "shift+tab", "w", "e", "q", "ctrl+c"} {
		if !IsGlobalKey(k) {
			t.Errorf("IsGlobalKey(%q) = false", k)
		}
	}
	for _, k := range []string{"j", "enter", "esc", ""} {
		if IsGlobalKey(k) {
			t.Errorf("IsGlobalKey(%q) = true", k)
		}
	}
}

func TestPanelKeys(t *testing.T) {
	for f := FocusTarget(0); f < panelCount; f++ {
		if len(PanelKeys(f)) == 0 {
			t.Errorf("PanelKeys(%v) is empty", f)
		}
	}
}
