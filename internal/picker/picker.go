// Package picker runs the interactive panel-selection protocol: show hint
// labels, read at most two keystrokes, and return the chosen panel. It also
// provides the motion-relay loop that forwards subsequent keystrokes to the
// chosen panel. The package owns no UI; the host supplies the layout, the
// renderer, and the key source through small capability interfaces.
package picker

import (
	"fmt"

	"github.com/winhop/winhop/internal/hint"
)

// LayoutProvider enumerates the selectable panels for one invocation.
// The returned slice must carry a stable, collision-free ordinal per physical
// panel and mark exactly one panel as current. Decorative surfaces must be
// excluded.
type LayoutProvider interface {
	Panels() []hint.Panel
}

// Renderer displays and removes hint labels. Show replaces any hints already
// on screen, so narrowing to a subset is a second Show, not a Hide/Show pair.
// Hide is called exactly once per selection attempt, on every exit path.
type Renderer interface {
	Show(hint.Mapping)
	Hide()
}

// KeyReader blocks for the next keystroke. ok is false when no input is
// available (interrupt, closed input), which the protocol treats the same as
// an explicit cancel.
type KeyReader interface {
	ReadKey() (key rune, ok bool)
}

// Executor applies relayed motions to a panel that does not hold focus.
type Executor interface {
	Motion(id hint.PanelID, key rune)
	Redraw(id hint.PanelID)
}

// Focuser switches the active panel after a successful pick.
type Focuser interface {
	SetFocus(id hint.PanelID)
}

// LeaderFunc handles a two-keystroke leader sequence during relay: leader
// char selects the handler, arg is the keystroke that follows.
type LeaderFunc func(exec Executor, target hint.PanelID, arg rune)

// Outcome is the result of one selection attempt. Cancellation and invalid
// input are indistinguishable here: both are simply not a selection.
type Outcome struct {
	Selected bool
	Panel    hint.Panel
}

// Options configures an Engine. Alphabet must be non-empty; everything else
// is a capability supplied by the host.
type Options struct {
	Alphabet hint.Alphabet
	Cancel   rune
	Layout   LayoutProvider
	Renderer Renderer
	Reader   KeyReader
	Exec     Executor
	Focus    Focuser
	Leaders  map[rune]LeaderFunc
	Remap    map[rune]rune
}

// Engine drives blocking selection and relay against a live key reader.
// Hosts with their own event loop (for example a bubbletea program) use
// Session and RelaySession directly instead.
type Engine struct {
	alphabet hint.Alphabet
	cancel   rune
	layout   LayoutProvider
	renderer Renderer
	reader   KeyReader
	exec     Executor
	focus    Focuser
	leaders  map[rune]LeaderFunc
	remap    map[rune]rune
}

// New validates opts and builds an Engine. An empty alphabet is fatal here;
// the engine never runs with a degraded alphabet.
func New(opts Options) (*Engine, error) {
	if len(opts.Alphabet) == 0 {
		return nil, fmt.Errorf("picker: alphabet must not be empty")
	}
	if opts.Layout == nil || opts.Renderer == nil || opts.Reader == nil {
		return nil, fmt.Errorf("picker: layout, renderer and reader are required")
	}
	return &Engine{
		alphabet: opts.Alphabet,
		cancel:   opts.Cancel,
		layout:   opts.Layout,
		renderer: opts.Renderer,
		reader:   opts.Reader,
		exec:     opts.Exec,
		focus:    opts.Focus,
		leaders:  opts.Leaders,
		remap:    opts.Remap,
	}, nil
}

// Pick runs the selection protocol once and, on success, switches the active
// focus to the selected panel.
func (e *Engine) Pick() Outcome {
	out := e.run(false)
	if out.Selected && e.focus != nil {
		e.focus.SetFocus(out.Panel.ID)
	}
	return out
}

// Relay runs the selection protocol (short-circuiting when exactly one other
// panel exists) and, on success, forwards subsequent keystrokes to the
// selected panel until cancelled. Focus never moves.
func (e *Engine) Relay() Outcome {
	out := e.run(true)
	if !out.Selected {
		return out
	}
	rs := NewRelaySession(e.cancel, e.leaders, e.remap)
	for {
		key, ok := e.reader.ReadKey()
		step := rs.Step(key, ok)
		switch step.Action {
		case RelayExit:
			return out
		case RelayMotion:
			e.exec.Motion(out.Panel.ID, step.Key)
			e.exec.Redraw(out.Panel.ID)
		case RelayLeader:
			if fn := e.leaders[step.Leader]; fn != nil {
				fn(e.exec, out.Panel.ID, step.Key)
			}
			e.exec.Redraw(out.Panel.ID)
		}
	}
}

// run executes one selection attempt by looping the key reader through a
// Session until it reaches a terminal state.
func (e *Engine) run(shortCircuit bool) Outcome {
	s := NewSession(e.layout.Panels(), e.alphabet, e.cancel, e.renderer, shortCircuit)
	out, done := s.Start()
	for !done {
		key, ok := e.reader.ReadKey()
		out, done = s.Step(key, ok)
	}
	return out
}
