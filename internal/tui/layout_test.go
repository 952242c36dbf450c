package tui

import "testing"

func TestCalculateTooSmall(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tooSmall      bool
	}{
		{"comfortable", 120, 40, false},
		{"exact minimum", 80, 24, false},
		{"too narrow", 79, 24, true},
		{"too short", 80, 23, true},
		{"tiny", 10, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Calculate(tt.width, tt.height, 80, 24)
			if l.TooSmall != tt.tooSmall {
				t.Errorf("Calculate(%d, %d).TooSmall = %v, want %v", tt.width, tt.height, l.TooSmall, tt.tooSmall)
			}
		})
	}
}

func TestCalculateGeometry(t *testing.T) {
	l := Calculate(100, 30, 80, 24)
	if l.TooSmall {
		t.Fatal("100x30 should not be too small")
	}

	if l.Header != (Rect{X: 0, Y: 0, Width: 100, Height: 1}) {
		t.Errorf("Header = %+v", l.Header)
	}
	if l.Footer != (Rect{X: 0, Y: 29, Width: 100, Height: 1}) {
		t.Errorf("Footer = %+v", l.Footer)
	}

	// 30% of 100 = 30, within the [24, 40] clamp.
	if l.Files.Width != 30 || l.Help.Width != 30 {
		t.Errorf("left column width = %d/%d, want 30", l.Files.Width, l.Help.Width)
	}
	if l.Log.Width != 70 || l.Preview.Width != 70 {
		t.Errorf("right column width = %d/%d, want 70", l.Log.Width, l.Preview.Width)
	}

	// Body height 28, split 60/40.
	if got := l.Files.Height + l.Help.Height; got != 28 {
		t.Errorf("left column total height = %d, want 28", got)
	}
	if got := l.Log.Height + l.Preview.Height; got != 28 {
		t.Errorf("right column total height = %d, want 28", got)
	}
	if l.Files.Height != 16 {
		t.Errorf("Files.Height = %d, want 16", l.Files.Height)
	}

	// Lower panels start where the upper ones end.
	if l.Help.Y != l.Files.Y+l.Files.Height {
		t.Errorf("Help.Y = %d, want %d", l.Help.Y, l.Files.Y+l.Files.Height)
	}
	if l.Preview.Y != l.Log.Y+l.Log.Height {
		t.Errorf("Preview.Y = %d, want %d", l.Preview.Y, l.Log.Y+l.Log.Height)
	}
}

func TestCalculateLeftColumnClamp(t *testing.T) {
	// 30% of 300 = 90, clamped to 40.
	wide := Calculate(300, 40, 80, 24)
	if wide.Files.Width != 40 {
		t.Errorf("wide terminal left column = %d, want 40", wide.Files.Width)
	}

	// 30% of 80 = 24, at the lower clamp.
	narrow := Calculate(80, 24, 80, 24)
	if narrow.Files.Width != 24 {
		t.Errorf("narrow terminal left column = %d, want 24", narrow.Files.Width)
	}
}

func TestPanelRect(t *testing.T) {
	l := Calculate(100, 30, 80, 24)
	if l.PanelRect(FocusFiles) != l.Files {
		t.Error("PanelRect(FocusFiles) != Files")
	}
	if l.PanelRect(FocusHelp) != l.Help {
		t.Error("PanelRect(FocusHelp) != Help")
	}
	if l.PanelRect(FocusLog) != l.Log {
		t.Error("PanelRect(FocusLog) != Log")
	}
	if l.PanelRect(FocusPreview) != l.Preview {
		t.Error("PanelRect(FocusPreview) != Preview")
	}
}

func TestRectCenter(t *testing.T) {
	x, y := Rect{X: 10, Y: 4, Width: 20, Height: 6}.Center()
	if x != 20 || y != 7 {
		t.Errorf("Center() = (%d, %d), want (20, 7)", x, y)
	}
}
