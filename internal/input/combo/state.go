package combo

import "github.com/dshills/keyscope/internal/input/key"

// State records which event kinds have fired for one key within the
// current combination. Previous retains the flags as they were before
// the most recent event, which lets the matcher tell a fresh event
// apart from a re-delivery of one it has already seen.
//
// Current bits are only ever set, never cleared; a key starting over
// gets a fresh State in a new combination.
type State struct {
	Previous key.Flags
	Current  key.Flags
}

// Record rotates Current into Previous and adds the given kind.
func (s *State) Record(k key.Kind) {
	s.Previous = s.Current
	s.Current = s.Current.With(k)
}

// JustFired returns true if the kind fired with the most recent event
// and not before it.
func (s *State) JustFired(k key.Kind) bool {
	return s.Current.Has(k) && !s.Previous.Has(k)
}

// Pressed returns true while the key is logically held: keydown seen,
// keyup not yet seen.
func (s *State) Pressed() bool {
	return s.Current.Has(key.KindKeydown) && !s.Current.Has(key.KindKeyup)
}
