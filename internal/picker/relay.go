package picker

// RelayAction classifies what the relay loop should do with a keystroke.
type RelayAction int

const (
	// RelayPending means the keystroke opened a leader sequence; the next
	// keystroke supplies its argument.
	RelayPending RelayAction = iota
	// RelayMotion forwards Key as a motion to the target panel.
	RelayMotion
	// RelayLeader dispatches the Leader handler with Key as its argument.
	RelayLeader
	// RelayExit ends the relay loop.
	RelayExit
)

// RelayStep is the decision for one relayed keystroke.
type RelayStep struct {
	Action RelayAction
	Key    rune // motion key (after remap) or leader argument
	Leader rune // leader character when Action == RelayLeader
}

// RelaySession decides, keystroke by keystroke, how relayed input applies to
// the target panel. It holds only the pending-leader state; executing motions
// is left to the caller so hosts with value-semantics models can apply the
// decisions themselves.
type RelaySession struct {
	cancel  rune
	leaders map[rune]bool
	remap   map[rune]rune

	pending    rune
	hasPending bool
}

// NewRelaySession builds a relay decision state machine. leaders may be any
// map keyed by leader character; only the key set is consulted here.
func NewRelaySession[V any](cancel rune, leaders map[rune]V, remap map[rune]rune) *RelaySession {
	keys := make(map[rune]bool, len(leaders))
	for k := range leaders {
		keys[k] = true
	}
	return &RelaySession{cancel: cancel, leaders: keys, remap: remap}
}

// Step classifies one keystroke. No input exits the loop. The cancel signal
// exits the loop, except between a leader and its argument where it abandons
// the pending leader and keeps the loop alive.
func (r *RelaySession) Step(key rune, ok bool) RelayStep {
	if !ok {
		return RelayStep{Action: RelayExit}
	}

	if r.hasPending {
		leader := r.pending
		r.hasPending = false
		if key == r.cancel {
			return RelayStep{Action: RelayPending}
		}
		return RelayStep{Action: RelayLeader, Leader: leader, Key: key}
	}

	if key == r.cancel {
		return RelayStep{Action: RelayExit}
	}
	if r.leaders[key] {
		r.pending = key
		r.hasPending = true
		return RelayStep{Action: RelayPending}
	}

	if mapped, found := r.remap[key]; found {
		key = mapped
	}
	return RelayStep{Action: RelayMotion, Key: key}
}

// AwaitingArgument reports whether the last keystroke opened a leader
// sequence.
func (r *RelaySession) AwaitingArgument() bool {
	return r.hasPending
}
