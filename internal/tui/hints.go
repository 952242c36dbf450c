package tui

import "github.com/winhop/winhop/internal/hint"

// HintDisplay is the demo app's hint renderer. Show replaces whatever is
// currently displayed (so narrowing to a prefix subset is a second Show) and
// Hide clears it. The view layer reads the display each frame and draws
// either overlay badges or statusline labels depending on the configured
// renderer mode; the selection protocol is identical for both.
type HintDisplay struct {
	mapping hint.Mapping
	visible bool
}

// Show displays the given mapping, replacing any previous one.
func (d *HintDisplay) Show(m hint.Mapping) {
	d.mapping = m
	d.visible = true
}

// Hide removes all hint labels.
func (d *HintDisplay) Hide() {
	d.mapping = nil
	d.visible = false
}

// Visible reports whether hints are currently displayed.
func (d *HintDisplay) Visible() bool {
	return d.visible
}

// LabelFor returns the label for the given panel, if one is displayed.
func (d *HintDisplay) LabelFor(id hint.PanelID) (string, bool) {
	if !d.visible {
		return "", false
	}
	return d.mapping.Label(id)
}

// Labels returns "label:panel" pairs in label order, for the statusline.
func (d *HintDisplay) Labels() []string {
	if !d.visible {
		return nil
	}
	keys := d.mapping.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+":"+string(d.mapping[k].ID))
	}
	return out
}
