package focus

import (
	"github.com/rs/zerolog"

	"github.com/dshills/keyscope/internal/input/combo"
	"github.com/dshills/keyscope/internal/input/key"
)

// Config configures a Manager.
type Config struct {
	// Logger receives registration and matching diagnostics.
	Logger zerolog.Logger
}

// DefaultConfig returns a configuration with a disabled logger.
func DefaultConfig() Config {
	return Config{Logger: zerolog.Nop()}
}

// Manager is the entry point for scope registration and key event
// delivery. Scopes are ordered by distance from the event source,
// index 0 nearest; scope ids are positions in that order.
type Manager struct {
	log zerolog.Logger

	scopes       []*scope
	generation   int
	resetPending bool

	history *combo.History
	prop    propagation
	res     *resolution

	// pendingPress queues synthetic keypress events for keys without a
	// native keypress, replayed FIFO when the keydown leaves the
	// outermost scope.
	pendingPress []Event
}

// NewManager creates a Manager.
func NewManager(cfg Config) *Manager {
	return &Manager{
		log:     cfg.Logger,
		history: combo.NewHistory(1),
		prop:    newPropagation(),
	}
}

// Generation returns the identifier of the active scope-tree
// generation. Events and updates tagged with an older generation are
// discarded.
func (m *Manager) Generation() int {
	return m.generation
}

// RegisterScope appends a scope to the registry and returns its id.
// If a retirement is pending, the whole registry and every derived
// cache is cleared first and a new generation begins; a fresh scope
// tree must not inherit stale resolution state.
func (m *Manager) RegisterScope(actions ActionMap, handlers map[string]Handler, opts ScopeOptions) (int, error) {
	if m.resetPending {
		m.fullReset()
	}

	s, err := newScope(len(m.scopes), actions, handlers, opts)
	if err != nil {
		return 0, err
	}

	m.scopes = append(m.scopes, s)
	m.res = nil
	m.history.SetMaxLength(m.longestSequence())

	m.log.Debug().
		Int("scope", s.id).
		Int("generation", m.generation).
		Int("actions", len(s.actions)).
		Int("handlers", len(s.handlers)).
		Msg("scope registered")

	return s.id, nil
}

// UpdateScope replaces a scope's actions and handlers in place. A
// stale generation id or an unknown scope makes the call a silent
// no-op; a malformed binding is reported to the caller.
func (m *Manager) UpdateScope(generationID, scopeID int, actions ActionMap, handlers map[string]Handler, opts ScopeOptions) error {
	if generationID != m.generation || scopeID < 0 || scopeID >= len(m.scopes) {
		m.log.Trace().Int("scope", scopeID).Int("generation", generationID).Msg("stale scope update ignored")
		return nil
	}

	s, err := newScope(scopeID, actions, handlers, opts)
	if err != nil {
		return err
	}

	m.scopes[scopeID] = s
	m.res = nil
	m.history.SetMaxLength(m.longestSequence())
	return nil
}

// RetireScope marks the registry for a full reset on the next
// registration and reports whether the event currently bubbling has
// not yet passed the retiring scope, so the caller can let an
// in-flight event finish bubbling through it.
func (m *Manager) RetireScope(scopeID int) bool {
	m.resetPending = true
	return m.prop.inFlight() && m.prop.previous+1 < scopeID
}

// HandleKeyDown delivers a keydown event at one scope of its bubble.
// It returns true if the event was discarded (stale generation or
// ignore filter).
func (m *Manager) HandleKeyDown(ev Event, generationID, scopeID int, opts EventOptions) bool {
	ev.Kind = key.KindKeydown
	return m.handleEvent(ev, generationID, scopeID, opts)
}

// HandleKeyPress delivers a keypress event at one scope of its bubble.
func (m *Manager) HandleKeyPress(ev Event, generationID, scopeID int, opts EventOptions) bool {
	ev.Kind = key.KindKeypress
	return m.handleEvent(ev, generationID, scopeID, opts)
}

// HandleKeyUp delivers a keyup event at one scope of its bubble.
func (m *Manager) HandleKeyUp(ev Event, generationID, scopeID int, opts EventOptions) bool {
	ev.Kind = key.KindKeyup
	return m.handleEvent(ev, generationID, scopeID, opts)
}

func (m *Manager) handleEvent(ev Event, generationID, scopeID int, opts EventOptions) bool {
	if generationID != m.generation {
		m.log.Trace().
			Int("generation", generationID).
			Str("key", ev.Key).
			Stringer("kind", ev.Kind).
			Msg("event from stale focus tree discarded")
		return true
	}
	if scopeID < 0 || scopeID >= len(m.scopes) {
		return true
	}

	ev.Key = key.Normalize(ev.Key)

	if m.prop.seenBy(scopeID) {
		// Re-delivery of an event this scope already processed.
		return m.prop.ignore
	}

	if !m.prop.inFlight() {
		// First sighting of this physical event: evaluate the ignore
		// filter exactly once and record the key state.
		m.prop.ignore = opts.Ignore != nil && opts.Ignore(ev)
		if !m.prop.ignore {
			m.history.Record(ev.Key, ev.Kind)
			if ev.Kind == key.KindKeydown && !key.HasNativeKeypress(ev.Key) {
				m.pendingPress = append(m.pendingPress, Event{Key: ev.Key, Data: ev.Data})
			}
		}
	}

	discarded := m.prop.ignore

	if !discarded && !m.prop.handled {
		if bh, ok := m.resolveHandler(scopeID, ev.Key, ev.Kind); ok {
			m.prop.handled = true
			m.log.Debug().
				Int("scope", bh.scope).
				Str("action", bh.action).
				Str("key", ev.Key).
				Stringer("kind", ev.Kind).
				Msg("handler invoked")
			bh.fn(ev)
		} else {
			m.log.Trace().
				Int("scope", scopeID).
				Str("key", ev.Key).
				Stringer("kind", ev.Kind).
				Msg("no handler found")
		}
	}

	m.prop.previous = scopeID

	if scopeID == len(m.scopes)-1 {
		// The event is leaving the outermost scope.
		m.prop.reset()
		m.replayPendingPress(generationID, opts)
	}

	return discarded
}

// resolveHandler extends the lazy resolution up to the requesting
// scope and matches the combination history against its resolved map.
func (m *Manager) resolveHandler(scopeID int, completing string, kind key.Kind) (boundHandler, bool) {
	if m.res == nil {
		m.res = newResolution(m.scopes)
	}
	m.res.resolveUpTo(scopeID, m.scopes)
	return findMatch(m.res.scopes[scopeID], m.history, completing, kind)
}

// replayPendingPress synthesizes queued keypress events, bubbling each
// through every scope in FIFO order. Keys with no native keypress get
// theirs here, immediately after the triggering keydown completes its
// bubble.
func (m *Manager) replayPendingPress(generationID int, opts EventOptions) {
	for len(m.pendingPress) > 0 {
		ev := m.pendingPress[0]
		m.pendingPress = m.pendingPress[1:]
		for i := 0; i < len(m.scopes); i++ {
			m.HandleKeyPress(ev, generationID, i, opts)
		}
	}
}

// fullReset clears the registry and every derived cache, issues a new
// generation id, and collapses the combination history down to the
// keys still physically held.
func (m *Manager) fullReset() {
	m.generation++
	m.scopes = nil
	m.res = nil
	m.resetPending = false
	m.prop.reset()
	m.pendingPress = nil
	m.history.Collapse()

	m.log.Debug().Int("generation", m.generation).Msg("scope tree reset")
}

// longestSequence returns the longest sequence length registered in
// any scope.
func (m *Manager) longestSequence() int {
	longest := 1
	for _, s := range m.scopes {
		if s.longest > longest {
			longest = s.longest
		}
	}
	return longest
}
