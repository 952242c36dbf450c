package tui

import "github.com/winhop/winhop/internal/hint"

// FocusTarget identifies which panel currently holds keyboard focus.
type FocusTarget int

const (
	FocusFiles   FocusTarget = iota // left top: file list
	FocusHelp                       // left bottom: key reference
	FocusLog                        // right top: log scrollback
	FocusPreview                    // right bottom: file preview
)

// panelCount is the number of focusable panels.
const panelCount = 4

// Next returns the next focus target in forward tab order.
func (f FocusTarget) Next() FocusTarget {
	return (f + 1) % panelCount
}

// Prev returns the previous focus target in reverse tab order.
func (f FocusTarget) Prev() FocusTarget {
	return (f + panelCount - 1) % panelCount
}

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusFiles:
		return "files"
	case FocusHelp:
		return "help"
	case FocusLog:
		return "log"
	case FocusPreview:
		return "preview"
	default:
		return "unknown"
	}
}

// PanelID returns the stable panel identifier used by the hint engine.
func (f FocusTarget) PanelID() hint.PanelID {
	return hint.PanelID(f.String())
}

// Ordinal returns the stable 1-based ordinal used for hint assignment. It
// follows tab order, so hint labels match the visual panel arrangement.
func (f FocusTarget) Ordinal() int {
	return int(f) + 1
}

// TargetForID maps a panel identifier back to its focus target.
func TargetForID(id hint.PanelID) (FocusTarget, bool) {
	for f := FocusTarget(0); f < panelCount; f++ {
		if f.PanelID() == id {
			return f, true
		}
	}
	return 0, false
}

// SelectablePanels enumerates all panels for one hint invocation, marking
// current as the panel that holds focus.
func SelectablePanels(current FocusTarget) []hint.Panel {
	panels := make([]hint.Panel, 0, panelCount)
	for f := FocusTarget(0); f < panelCount; f++ {
		panels = append(panels, hint.Panel{
			ID:      f.PanelID(),
			Ordinal: f.Ordinal(),
			Current: f == current,
		})
	}
	return panels
}
