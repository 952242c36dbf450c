package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/winhop/winhop/internal/config"
	"github.com/winhop/winhop/internal/hint"
	"github.com/winhop/winhop/internal/tui"
	"github.com/winhop/winhop/internal/tui/panels"
)

// executeDemo loads config, builds the demo model, and runs the TUI.
func executeDemo(configPath, rendererOverride, dir string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if rendererOverride != "" {
		cfg.Hints.Renderer = rendererOverride
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("--renderer: %w", err)
		}
	}

	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
	}

	model, err := buildModel(cfg, dir)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// buildModel wires the config, the directory listing, and the demo log into
// the root model.
func buildModel(cfg *config.Config, dir string) (tui.Model, error) {
	entries, err := listEntries(dir)
	if err != nil {
		return tui.Model{}, err
	}

	readFile := func(name string) (string, error) {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	return tui.New(cfg, entries, demoLogLines(), readFile, dir), nil
}

// listEntries reads the directory, skipping dotfiles. Directories sort before
// files, each group alphabetically.
func listEntries(dir string) ([]panels.FileEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var entries []panels.FileEntry
	for _, e := range dirEntries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		entries = append(entries, panels.FileEntry{Name: e.Name(), Dir: e.IsDir()})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Dir != entries[j].Dir {
			return entries[i].Dir
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}

// demoLogLines seeds the log panel with sectioned content so section jumps
// and folds have something to work on.
func demoLogLines() []string {
	return []string{
		panels.SectionHeader("startup"),
		"config loaded",
		"panels initialized",
		panels.SectionHeader("input"),
		"press w to pick a panel by hint",
		"press e to relay motions without moving focus",
		"relay: [ then [ or ] jumps between these sections",
		"relay: z then c/o/a folds and unfolds them",
		panels.SectionHeader("notes"),
		"hint labels come from the configured alphabet",
		"the focused panel never gets a label",
	}
}

// formatKeyTable renders the hint assignment for count panels as a table.
// current is the 1-based ordinal of the focused panel, or 0 for none.
func formatKeyTable(count, current int, alphabet string) (string, error) {
	alpha, err := hint.ParseAlphabet(alphabet)
	if err != nil {
		return "", err
	}

	hintPanels := make([]hint.Panel, count)
	for i := range hintPanels {
		ord := i + 1
		hintPanels[i] = hint.Panel{
			ID:      hint.PanelID(fmt.Sprintf("panel-%02d", ord)),
			Ordinal: ord,
			Current: ord == current,
		}
	}

	mapping := hint.Allocate(hintPanels, alpha)

	var b strings.Builder
	fmt.Fprintf(&b, "Hint keys for %d panels\n", count)
	b.WriteString("──────────────────────\n")
	for _, key := range mapping.Keys() {
		fmt.Fprintf(&b, "  %-3s → %s\n", key, mapping[key].ID)
	}
	if current > 0 {
		fmt.Fprintf(&b, "  (panel-%02d is focused and gets no key)\n", current)
	}
	return b.String(), nil
}
