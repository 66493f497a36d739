package focus

// propagation tracks one physical key event as it bubbles from the
// innermost scope to the root. previous holds the index of the scope
// that last saw the event, -1 while idle; a scope has seen the event
// before iff previous >= its index. The state resets once the
// outermost scope has processed the event.
type propagation struct {
	previous int
	handled  bool
	ignore   bool
}

func newPropagation() propagation {
	return propagation{previous: -1}
}

// seenBy returns true if the event was already processed at this scope
// or one further out in the current bubble.
func (p *propagation) seenBy(scopeID int) bool {
	return p.previous >= scopeID
}

// inFlight returns true while an event is mid-bubble.
func (p *propagation) inFlight() bool {
	return p.previous != -1
}

// reset returns the state machine to idle for the next physical event.
func (p *propagation) reset() {
	p.previous = -1
	p.handled = false
	p.ignore = false
}
