package panels

import (
	"strings"
	"testing"
)

func TestRenderFooterModes(t *testing.T) {
	tests := []struct {
		name  string
		props FooterProps
		want  []string
		not   []string
	}{
		{
			name:  "normal",
			props: FooterProps{Focus: "files", Mode: "NORMAL"},
			want:  []string{"focus: files", "w:pick", "e:relay", "q:quit", "enter:preview"},
		},
		{
			name:  "pick",
			props: FooterProps{Focus: "files", Mode: "PICK"},
			want:  []string{"hint label", "esc:cancel"},
			not:   []string{"w:pick"},
		},
		{
			name:  "statusline labels",
			props: FooterProps{Focus: "files", Mode: "PICK", HintLabels: []string{"b:help", "c:log"}},
			want:  []string{"b:help", "c:log", "esc:cancel"},
		},
		{
			name:  "relay",
			props: FooterProps{Focus: "files", Mode: "RELAY", RelayTarget: "log"},
			want:  []string{"log", "esc:done"},
		},
		{
			name:  "relay pending leader",
			props: FooterProps{Focus: "files", Mode: "RELAY", RelayTarget: "log", AwaitingLeader: true},
			want:  []string{"leader pending", "esc:abandon"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RenderFooter(tt.props, 120)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("footer missing %q: %s", want, got)
				}
			}
			for _, not := range tt.not {
				if strings.Contains(got, not) {
					t.Errorf("footer should not contain %q: %s", not, got)
				}
			}
		})
	}
}

func TestPanelHints(t *testing.T) {
	if !strings.Contains(panelHints("files"), "enter:preview") {
		t.Error("files hints should mention preview")
	}
	if !strings.Contains(panelHints("log"), "ctrl+u/d") {
		t.Error("log hints should mention paging")
	}
	if panelHints("bogus") != "tab:next panel" {
		t.Error("unknown focus should fall back to the generic hint")
	}
}
