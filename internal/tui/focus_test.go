package tui

import "testing"

func TestFocusCycle(t *testing.T) {
	order := []FocusTarget{FocusFiles, FocusHelp, FocusLog, FocusPreview}
	f := FocusFiles
	for i := 1; i <= len(order); i++ {
		f = f.Next()
		if want := order[i%len(order)]; f != want {
			t.Fatalf("after %d Next calls: got %v, want %v", i, f, want)
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		f = f.Prev()
		if want := order[i%len(order)]; f != want {
			t.Fatalf("Prev: got %v, want %v", f, want)
		}
	}
}

func TestFocusIdentity(t *testing.T) {
	tests := []struct {
		target  FocusTarget
		id      string
		ordinal int
	}{
		{FocusFiles, "files", 1},
		{FocusHelp, "help", 2},
		{FocusLog, "log", 3},
		{FocusPreview, "preview", 4},
	}
	for _, tt := range tests {
		if got := string(tt.target.PanelID()); got != tt.id {
			t.Errorf("%v.PanelID() = %q, want %q", tt.target, got, tt.id)
		}
		if got := tt.target.Ordinal(); got != tt.ordinal {
			t.Errorf("%v.Ordinal() = %d, want %d", tt.target, got, tt.ordinal)
		}
		back, found := TargetForID(tt.target.PanelID())
		if !found || back != tt.target {
			t.Errorf("TargetForID(%q) = %v, %v", tt.id, back, found)
		}
	}
}

func TestTargetForIDUnknown(t *testing.T) {
	if _, found := TargetForID("sidebar"); found {
		t.Error("TargetForID should not resolve unknown panel ids")
	}
}

func TestSelectablePanels(t *testing.T) {
	panels := SelectablePanels(FocusLog)
	if len(panels) != 4 {
		t.Fatalf("got %d panels, want 4", len(panels))
	}
	currents := 0
	for _, p := range panels {
		if p.Current {
			currents++
			if p.ID != "log" {
				t.Errorf("current panel is %q, want log", p.ID)
			}
		}
	}
	if currents != 1 {
		t.Errorf("got %d current panels, want 1", currents)
	}
}
