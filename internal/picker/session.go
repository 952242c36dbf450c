package picker

import "github.com/winhop/winhop/internal/hint"

// protocolState is the explicit state of one selection attempt.
type protocolState int

const (
	stateIdle protocolState = iota
	stateAwaitFirst
	stateAwaitSecond
	stateDone
)

// Session is one run of the selection protocol, stepped a keystroke at a
// time. Hosts with a blocking key source wrap it via Engine.Pick; hosts with
// an event loop feed Step from their own key events.
//
// Lifecycle: Start computes the mapping and shows hints (or short-circuits),
// then each Step consumes one keystroke until done. Hint teardown happens on
// every exit path before the terminal outcome is returned.
type Session struct {
	alphabet     hint.Alphabet
	cancel       rune
	renderer     Renderer
	shortCircuit bool

	panels   []hint.Panel
	mapping  hint.Mapping
	narrowed hint.Mapping
	first    rune

	state   protocolState
	shown   bool
	outcome Outcome
}

// NewSession captures the panel snapshot for one selection attempt. When
// shortCircuit is set and exactly one non-current panel exists, Start selects
// it without prompting.
func NewSession(panels []hint.Panel, alphabet hint.Alphabet, cancel rune, renderer Renderer, shortCircuit bool) *Session {
	snapshot := make([]hint.Panel, len(panels))
	copy(snapshot, panels)
	return &Session{
		alphabet:     alphabet,
		cancel:       cancel,
		renderer:     renderer,
		shortCircuit: shortCircuit,
		panels:       snapshot,
		state:        stateIdle,
	}
}

// Start begins the attempt. done is true when the attempt concluded without
// needing any keystroke: nothing to select, or the single-other-panel
// short-circuit fired.
func (s *Session) Start() (out Outcome, done bool) {
	if s.state != stateIdle {
		return s.outcome, true
	}

	if s.shortCircuit {
		if only, ok := s.soleOtherPanel(); ok {
			return s.finish(Outcome{Selected: true, Panel: only})
		}
	}

	s.mapping = hint.Allocate(s.panels, s.alphabet)
	if len(s.mapping) == 0 {
		return s.finish(Outcome{})
	}

	s.renderer.Show(s.mapping)
	s.shown = true
	s.state = stateAwaitFirst
	return Outcome{}, false
}

// Step consumes one keystroke. ok is false when the reader had no input,
// which cancels the attempt. The returned outcome is meaningful once done is
// true; hints are guaranteed to be torn down by then.
func (s *Session) Step(key rune, ok bool) (out Outcome, done bool) {
	switch s.state {
	case stateAwaitFirst:
		return s.stepFirst(key, ok)
	case stateAwaitSecond:
		return s.stepSecond(key, ok)
	default:
		return s.outcome, true
	}
}

// Mapping returns the labels currently on display: the full mapping while
// awaiting the first key, the narrowed subset while awaiting the second.
func (s *Session) Mapping() hint.Mapping {
	if s.state == stateAwaitSecond {
		return s.narrowed
	}
	return s.mapping
}

// Active reports whether the session still wants keystrokes.
func (s *Session) Active() bool {
	return s.state == stateAwaitFirst || s.state == stateAwaitSecond
}

func (s *Session) stepFirst(key rune, ok bool) (Outcome, bool) {
	if !ok || key == s.cancel {
		return s.finish(Outcome{})
	}
	res := hint.Resolve(key, s.mapping)
	switch res.Kind {
	case hint.Complete:
		return s.finish(Outcome{Selected: true, Panel: res.Panel})
	case hint.NeedsSecond:
		s.first = key
		s.narrowed = res.Narrowed
		s.renderer.Show(s.narrowed)
		s.state = stateAwaitSecond
		return Outcome{}, false
	default:
		return s.finish(Outcome{})
	}
}

func (s *Session) stepSecond(key rune, ok bool) (Outcome, bool) {
	if !ok || key == s.cancel {
		// An ambiguous prefix requires explicit completion; the first
		// keystroke alone is not reinterpreted as a selection.
		return s.finish(Outcome{})
	}
	combined := string(s.first) + string(key)
	if p, found := s.narrowed[combined]; found {
		return s.finish(Outcome{Selected: true, Panel: p})
	}
	// The first character may independently have been a complete label when a
	// one-character and a two-character label share a prefix.
	if p, found := s.mapping[string(s.first)]; found {
		return s.finish(Outcome{Selected: true, Panel: p})
	}
	return s.finish(Outcome{})
}

// finish tears down hints (once, only if shown) and records the terminal
// outcome.
func (s *Session) finish(out Outcome) (Outcome, bool) {
	if s.shown {
		s.renderer.Hide()
		s.shown = false
	}
	s.state = stateDone
	s.outcome = out
	return out, true
}

// soleOtherPanel returns the only non-current panel, if there is exactly one.
func (s *Session) soleOtherPanel() (hint.Panel, bool) {
	var other hint.Panel
	count := 0
	for _, p := range s.panels {
		if p.Current {
			continue
		}
		other = p
		count++
	}
	return other, count == 1
}
