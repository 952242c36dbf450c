package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults_AreValid(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Defaults().Validate() = %v, want nil", err)
	}
	if cfg.Hints.Renderer != RendererOverlay {
		t.Errorf("default renderer = %q, want %q", cfg.Hints.Renderer, RendererOverlay)
	}
	if cfg.CancelKey() != 0x1b {
		t.Errorf("default cancel key = %q, want escape", cfg.CancelKey())
	}
	if len(cfg.Alphabet()) != len(DefaultAlphabet) {
		t.Errorf("default alphabet has %d runes, want %d", len(cfg.Alphabet()), len(DefaultAlphabet))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty alphabet",
			mutate:  func(c *Config) { c.Hints.Alphabet = "" },
			wantErr: "hints.alphabet",
		},
		{
			name:    "duplicate alphabet char",
			mutate:  func(c *Config) { c.Hints.Alphabet = "aba" },
			wantErr: "hints.alphabet",
		},
		{
			name:    "multi-char cancel key",
			mutate:  func(c *Config) { c.Hints.CancelKey = "qq" },
			wantErr: "hints.cancel_key",
		},
		{
			name:    "unknown renderer",
			mutate:  func(c *Config) { c.Hints.Renderer = "popup" },
			wantErr: "hints.renderer",
		},
		{
			name:    "multi-char leader key",
			mutate:  func(c *Config) { c.Relay.Leaders = map[string]string{"gg": "bracket"} },
			wantErr: "relay.leaders",
		},
		{
			name:    "unknown leader handler",
			mutate:  func(c *Config) { c.Relay.Leaders = map[string]string{"[": "teleport"} },
			wantErr: "relay.leaders",
		},
		{
			name:    "multi-char remap value",
			mutate:  func(c *Config) { c.Relay.Remap = map[string]string{"n": "jj"} },
			wantErr: "relay.remap",
		},
		{
			name:    "bad accent color",
			mutate:  func(c *Config) { c.UI.AccentColor = "purple" },
			wantErr: "ui.accent_color",
		},
		{
			name:    "negative min size",
			mutate:  func(c *Config) { c.UI.MinWidth = -1 },
			wantErr: "ui.min_width",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		input   string
		want    rune
		wantErr bool
	}{
		{"escape", 0x1b, false},
		{"esc", 0x1b, false},
		{"q", 'q', false},
		{"[", '[', false},
		{"", 0, true},
		{"ab", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKey(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKey(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLeaderAndRemapRunes(t *testing.T) {
	cfg := Defaults()
	cfg.Relay.Remap = map[string]string{"n": "j", "p": "k"}

	leaders := cfg.LeaderRunes()
	if leaders['['] != "bracket" || leaders['z'] != "fold" {
		t.Errorf("LeaderRunes() = %v, want bracket/fold defaults", leaders)
	}

	remap := cfg.RemapRunes()
	if remap['n'] != 'j' || remap['p'] != 'k' {
		t.Errorf("RemapRunes() = %v, want n→j p→k", remap)
	}
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "winhop.toml")
	content := `
[hints]
alphabet = "qwerty"
cancel_key = "escape"
renderer = "statusline"

[ui]
accent_color = "#00FF00"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Hints.Alphabet != "qwerty" {
		t.Errorf("alphabet = %q, want qwerty", cfg.Hints.Alphabet)
	}
	if cfg.Hints.Renderer != RendererStatusline {
		t.Errorf("renderer = %q, want statusline", cfg.Hints.Renderer)
	}
	// Unset sections keep defaults.
	if cfg.Relay.Leaders["["] != "bracket" {
		t.Errorf("leaders = %v, want default bracket leader preserved", cfg.Relay.Leaders)
	}
	if cfg.UI.MinWidth != 80 {
		t.Errorf("min_width = %d, want default 80", cfg.UI.MinWidth)
	}
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "winhop.toml")
	content := `
[hints]
alphabet = "abc"
cancle_key = "escape"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() with unknown key returned nil error")
	}
	if !strings.Contains(err.Error(), "unknown keys") {
		t.Errorf("Load() error = %q, want unknown-keys message", err)
	}
}

func TestLoad_InvalidConfigRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "winhop.toml")
	content := `
[hints]
alphabet = ""
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() with empty alphabet returned nil error")
	}
}

func TestInitFile(t *testing.T) {
	dir := t.TempDir()

	path, err := InitFile(dir)
	if err != nil {
		t.Fatalf("InitFile() error = %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(InitFile output) error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("template config invalid: %v", err)
	}

	if _, err := InitFile(dir); err == nil {
		t.Error("second InitFile() returned nil error, want already-exists")
	}
}
