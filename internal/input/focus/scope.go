package focus

import (
	"fmt"
	"sort"

	"github.com/dshills/keyscope/internal/input/key"
)

// Handler is invoked with the event that completed a matching
// combination or sequence.
type Handler func(Event)

// Event is one physical key event delivered by the host environment.
type Event struct {
	// Key is the key identifier; it is normalized on receipt.
	Key string

	// Kind is the event kind, set by the Handle entry point that
	// received the event.
	Kind key.Kind

	// Data carries arbitrary host framework data through to the
	// handler untouched.
	Data any
}

// Trigger pairs a key sequence expression with the event kind it
// fires on. A zero Kind inherits the scope's default.
type Trigger struct {
	Sequence string
	Kind     key.Kind
}

// ActionMap maps action names to the triggers that fire them. A single
// action may carry several triggers: alternative sequences, or the
// same sequence on distinct event kinds.
type ActionMap map[string][]Trigger

// Actions is a convenience constructor for the common case of one
// sequence per action on the default event kind.
func Actions(bindings map[string]string) ActionMap {
	am := make(ActionMap, len(bindings))
	for action, seq := range bindings {
		am[action] = []Trigger{{Sequence: seq}}
	}
	return am
}

// ScopeOptions configures a registered scope.
type ScopeOptions struct {
	// DefaultKind is the event kind used by triggers that omit one.
	// Required when any trigger omits its kind.
	DefaultKind key.Kind
}

// EventOptions configures the delivery of one physical key event.
type EventOptions struct {
	// Ignore decides whether the event should be discarded. It is
	// evaluated at most once per physical event, on first sighting,
	// and the verdict is cached for the rest of the bubble.
	Ignore func(Event) bool
}

// actionMatchers holds one action's parsed matchers.
type actionMatchers struct {
	name     string
	matchers []*key.Matcher
}

// scope is one registered UI region.
type scope struct {
	id       int
	actions  []actionMatchers // ordered by action name
	handlers map[string]Handler
	longest  int // longest sequence among this scope's matchers
}

// newScope parses an action map into a scope record. Parse failures
// are fatal to the registration and propagate to the caller.
func newScope(id int, actions ActionMap, handlers map[string]Handler, opts ScopeOptions) (*scope, error) {
	s := &scope{
		id:       id,
		actions:  make([]actionMatchers, 0, len(actions)),
		handlers: handlers,
		longest:  1,
	}

	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		am := actionMatchers{name: name}
		for _, trigger := range actions[name] {
			kind := trigger.Kind
			if kind == key.KindNone {
				kind = opts.DefaultKind
			}
			if kind == key.KindNone {
				return nil, fmt.Errorf("action %q: trigger %q has no event kind and the scope sets no default", name, trigger.Sequence)
			}
			m, err := key.ParseSequence(name, trigger.Sequence, kind)
			if err != nil {
				return nil, fmt.Errorf("action %q: %w", name, err)
			}
			if m.SequenceLength > s.longest {
				s.longest = m.SequenceLength
			}
			am.matchers = append(am.matchers, m)
		}
		if len(am.matchers) > 0 {
			s.actions = append(s.actions, am)
		}
	}

	return s, nil
}

// handlerNames returns the scope's handler action names sorted, for
// deterministic ownership recording.
func (s *scope) handlerNames() []string {
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
