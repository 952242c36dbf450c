package tui

// GlobalKeyBindings lists the keys that are always handled by the root model
// before dispatching to focused panels.
var GlobalKeyBindings = []string{"tab", "shift+tab", "w", "e", "q", "ctrl+c"}

// panelKeys maps each FocusTarget to the keys that panel handles internally.
var panelKeys = map[FocusTarget][]string{
	FocusFiles:   {"j", "k", "enter", "g", "G"},
	FocusHelp:    {"j", "k"},
	FocusLog:     {"j", "k", "g", "G", "ctrl+u", "ctrl+d"},
	FocusPreview: {"j", "k", "g", "G", "ctrl+u", "ctrl+d"},
}

// IsGlobalKey reports whether key is a global keybinding (handled before
// panel dispatch).
func IsGlobalKey(key string) bool {
	for _, k := range GlobalKeyBindings {
		if k == key {
			return true
		}
	}
	return false
}

// PanelKeys returns the list of keys handled by the given focused panel.
func PanelKeys(focus FocusTarget) []string {
	return panelKeys[focus]
}
