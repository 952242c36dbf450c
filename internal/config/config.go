// Package config parses winhop.toml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/winhop/winhop/internal/hint"
)

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// DefaultAlphabet is the default hint alphabet, home row first.
const DefaultAlphabet = "asdfghjklqwertyuiopzxcvbnm"

// Renderer mode names accepted in [hints].renderer.
const (
	RendererOverlay    = "overlay"
	RendererStatusline = "statusline"
)

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level winhop.toml configuration.
type Config struct {
	Hints HintsConfig `toml:"hints"`
	Relay RelayConfig `toml:"relay"`
	UI    UIConfig    `toml:"ui"`
}

// HintsConfig controls hint assignment and the selection protocol.
type HintsConfig struct {
	Alphabet  string `toml:"alphabet"`
	CancelKey string `toml:"cancel_key"` // "escape" or a single character
	Renderer  string `toml:"renderer"`   // "overlay" or "statusline"
}

// RelayConfig controls the motion-relay loop.
type RelayConfig struct {
	// Leaders maps a leading character to a handler name ("bracket", "fold").
	Leaders map[string]string `toml:"leaders"`
	// Remap translates a relayed key before forwarding; unmapped keys pass
	// through unchanged.
	Remap map[string]string `toml:"remap"`
}

// UIConfig controls the demo TUI appearance.
type UIConfig struct {
	AccentColor string `toml:"accent_color"`
	MinWidth    int    `toml:"min_width"`
	MinHeight   int    `toml:"min_height"`
}

// knownLeaderHandlers are the handler names the demo app can dispatch.
var knownLeaderHandlers = map[string]bool{
	"bracket": true,
	"fold":    true,
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if _, err := hint.ParseAlphabet(c.Hints.Alphabet); err != nil {
		errs = append(errs, fmt.Errorf("hints.alphabet: %w", err))
	}
	if _, err := ParseKey(c.Hints.CancelKey); err != nil {
		errs = append(errs, fmt.Errorf("hints.cancel_key: %w", err))
	}
	if c.Hints.Renderer != RendererOverlay && c.Hints.Renderer != RendererStatusline {
		errs = append(errs, fmt.Errorf("hints.renderer must be %q or %q", RendererOverlay, RendererStatusline))
	}

	for key, handler := range c.Relay.Leaders {
		if len([]rune(key)) != 1 {
			errs = append(errs, fmt.Errorf("relay.leaders: key %q must be a single character", key))
		}
		if !knownLeaderHandlers[handler] {
			errs = append(errs, fmt.Errorf("relay.leaders: unknown handler %q for key %q", handler, key))
		}
	}
	for from, to := range c.Relay.Remap {
		if len([]rune(from)) != 1 || len([]rune(to)) != 1 {
			errs = append(errs, fmt.Errorf("relay.remap: %q = %q must map one character to one character", from, to))
		}
	}

	if c.UI.AccentColor != "" && !hexColorRe.MatchString(c.UI.AccentColor) {
		errs = append(errs, fmt.Errorf("ui.accent_color must be a hex color (e.g. %q)", DefaultAccentColor))
	}
	if c.UI.MinWidth < 0 || c.UI.MinHeight < 0 {
		errs = append(errs, fmt.Errorf("ui.min_width and ui.min_height must be >= 0"))
	}

	return errors.Join(errs...)
}

// ParseKey converts a configured key string to a rune. "escape" (or "esc")
// names the escape character; otherwise the string must be one character.
func ParseKey(s string) (rune, error) {
	switch s {
	case "escape", "esc":
		return 0x1b, nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("key %q must be a single character or \"escape\"", s)
	}
	return runes[0], nil
}

// Alphabet returns the parsed hint alphabet. Call Validate first.
func (c *Config) Alphabet() hint.Alphabet {
	a, _ := hint.ParseAlphabet(c.Hints.Alphabet)
	return a
}

// CancelKey returns the parsed cancel rune. Call Validate first.
func (c *Config) CancelKey() rune {
	r, _ := ParseKey(c.Hints.CancelKey)
	return r
}

// LeaderRunes returns the leader table keyed by rune. Call Validate first.
func (c *Config) LeaderRunes() map[rune]string {
	out := make(map[rune]string, len(c.Relay.Leaders))
	for key, handler := range c.Relay.Leaders {
		out[[]rune(key)[0]] = handler
	}
	return out
}

// RemapRunes returns the remap table keyed by rune. Call Validate first.
func (c *Config) RemapRunes() map[rune]rune {
	out := make(map[rune]rune, len(c.Relay.Remap))
	for from, to := range c.Relay.Remap {
		out[[]rune(from)[0]] = []rune(to)[0]
	}
	return out
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		Hints: HintsConfig{
			Alphabet:  DefaultAlphabet,
			CancelKey: "escape",
			Renderer:  RendererOverlay,
		},
		Relay: RelayConfig{
			Leaders: map[string]string{
				"[": "bracket",
				"z": "fold",
			},
			Remap: map[string]string{},
		},
		UI: UIConfig{
			AccentColor: DefaultAccentColor,
			MinWidth:    80,
			MinHeight:   24,
		},
	}
}

// Load reads winhop.toml from the given path. If path is empty, it walks up
// from the current working directory looking for winhop.toml; if none is
// found, defaults are returned. Returns an error if the file contains
// unknown keys (likely typos).
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			cfg := Defaults()
			return &cfg, nil
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	return &cfg, nil
}

// findConfig walks up from the current directory looking for winhop.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, "winhop.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config: winhop.toml not found (searched up from %s)", dir)
		}
		dir = parent
	}
}

// InitFile writes a default winhop.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, "winhop.toml")
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: winhop.toml already exists at %s", path)
	}

	content := `# winhop.toml — winhop configuration

[hints]
alphabet = "asdfghjklqwertyuiopzxcvbnm"  # ordered label characters, home row first
cancel_key = "escape"                    # "escape" or a single character
renderer = "overlay"                     # "overlay" or "statusline"

[relay]
# Leading character -> handler for two-keystroke motions forwarded to the
# target panel. Handlers: "bracket" (section motions), "fold" (fold ops).
[relay.leaders]
"[" = "bracket"
"z" = "fold"

# Translate a relayed key before forwarding; unmapped keys pass through.
[relay.remap]

[ui]
accent_color = "#7D56F4"  # hex color for focused borders and hint badges
min_width = 80
min_height = 24
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
