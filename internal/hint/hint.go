// Package hint assigns short key labels to panels and resolves pressed keys
// against an assignment. It is pure: no I/O, no state between calls.
package hint

import (
	"fmt"
	"sort"
	"strings"
)

// PanelID is an opaque identifier for a selectable panel.
type PanelID string

// Panel describes one selectable region of the layout.
// Ordinal, not slice position, is the stability key for label assignment:
// two calls with the same ordinal set produce the same labels even when the
// panels were enumerated in a different order.
type Panel struct {
	ID      PanelID
	Ordinal int
	Current bool
}

// Alphabet is the ordered set of label characters, distinct and non-empty.
type Alphabet []rune

// ParseAlphabet validates s as a hint alphabet. An empty or duplicated
// alphabet is a configuration error.
func ParseAlphabet(s string) (Alphabet, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil, fmt.Errorf("hint: alphabet must not be empty")
	}
	seen := make(map[rune]bool, len(runes))
	for _, r := range runes {
		if seen[r] {
			return nil, fmt.Errorf("hint: alphabet contains duplicate character %q", r)
		}
		seen[r] = true
	}
	return Alphabet(runes), nil
}

// Contains reports whether r is a member of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	for _, c := range a {
		if c == r {
			return true
		}
	}
	return false
}

// Mapping maps a 1- or 2-character label to the panel it selects.
// The current panel never appears as a value.
type Mapping map[string]Panel

// Keys returns the labels in sorted order, for deterministic rendering.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Label returns the label assigned to the given panel, if any.
func (m Mapping) Label(id PanelID) (string, bool) {
	for k, p := range m {
		if p.ID == id {
			return k, true
		}
	}
	return "", false
}

// Allocate assigns a label to every non-current panel. The panel marked
// Current consumes its alphabet slot but receives no entry, so the label a
// physical panel gets does not depend on which panel happens to be current.
//
// Panels are walked in ascending ordinal order with a wrapping cursor into
// the alphabet. Once a single character has been consumed, a later panel
// landing on it is extended to two characters by appending the next alphabet
// character. Beyond the two-character capacity, labels silently collide and
// the last writer wins; that is a documented limitation, not a fault.
func Allocate(panels []Panel, alphabet Alphabet) Mapping {
	sorted := make([]Panel, len(panels))
	copy(sorted, panels)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Ordinal < sorted[j].Ordinal
	})

	m := make(Mapping, len(sorted))
	used := make(map[string]bool, len(alphabet))
	n := len(alphabet)
	cursor := 0
	for _, p := range sorted {
		key := string(alphabet[cursor%n])
		if used[key] {
			key += string(alphabet[(cursor+1)%n])
		} else {
			used[key] = true
		}
		if !p.Current {
			m[key] = p
		}
		cursor++
	}
	return m
}

// ResolutionKind classifies the result of resolving a pressed key.
type ResolutionKind int

const (
	// Invalid means the key matches no label prefix.
	Invalid ResolutionKind = iota
	// Complete means the key alone selects a panel.
	Complete
	// NeedsSecond means multiple two-character labels share the prefix and a
	// second keystroke is required.
	NeedsSecond
)

// Resolution is the outcome of resolving one pressed key against a Mapping.
type Resolution struct {
	Kind     ResolutionKind
	Panel    Panel   // valid when Kind == Complete
	Narrowed Mapping // valid when Kind == NeedsSecond
}

// Resolve classifies pressed against m. A bare single-character match with no
// other label sharing the prefix is Complete; one or more two-character labels
// sharing the prefix require a second keystroke; anything else is Invalid.
func Resolve(pressed rune, m Mapping) Resolution {
	prefix := string(pressed)
	narrowed := make(Mapping)
	for k, p := range m {
		if strings.HasPrefix(k, prefix) {
			narrowed[k] = p
		}
	}
	if len(narrowed) == 0 {
		return Resolution{Kind: Invalid}
	}
	if p, ok := narrowed[prefix]; ok && len(narrowed) == 1 {
		return Resolution{Kind: Complete, Panel: p}
	}
	return Resolution{Kind: NeedsSecond, Narrowed: narrowed}
}
