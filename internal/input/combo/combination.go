package combo

import (
	"github.com/dshills/keyscope/internal/input/key"
)

// Combination is the set of keys considered pressed together at one
// instant, plus the serialized identifiers for that set. The ids list
// is never empty and is kept consistent with the key states: every
// mutation re-serializes.
type Combination struct {
	states map[string]*State
	names  []string // insertion order, for deterministic serialization
	ids    []string
	keyup  bool
}

// newCombination creates a combination seeded with carried-over key
// states (keys still held when a new combination starts).
func newCombination(carry map[string]*State, order []string) *Combination {
	c := &Combination{
		states: make(map[string]*State, len(carry)+1),
		names:  make([]string, 0, len(carry)+1),
	}
	for _, name := range order {
		if st, ok := carry[name]; ok {
			carried := *st
			c.states[name] = &carried
			c.names = append(c.names, name)
		}
	}
	c.serialize()
	return c
}

// Record registers an event kind for a key, adding the key to the
// combination if it is not yet part of it.
func (c *Combination) Record(name string, kind key.Kind) {
	st, ok := c.states[name]
	if !ok {
		st = &State{}
		c.states[name] = st
		c.names = append(c.names, name)
	}
	st.Record(kind)
	if kind == key.KindKeyup {
		c.keyup = true
	}
	c.serialize()
}

// Contains returns true if the key is part of the combination.
func (c *Combination) Contains(name string) bool {
	_, ok := c.states[name]
	return ok
}

// State returns the event state for a key, or nil if the key is not
// part of the combination.
func (c *Combination) State(name string) *State {
	return c.states[name]
}

// Names returns the keys of the combination in insertion order.
func (c *Combination) Names() []string {
	return c.names
}

// Len returns the number of keys in the combination.
func (c *Combination) Len() int {
	return len(c.names)
}

// IDs returns every valid serialized identifier for the combination.
// Alias ambiguity (e.g. "!" also being "shift of 1") yields multiple
// spellings of the same physical state.
func (c *Combination) IDs() []string {
	return c.ids
}

// HasKeyup returns true once any key in the combination has seen its
// keyup; the combination is then considered closed for new keydowns.
func (c *Combination) HasKeyup() bool {
	return c.keyup
}

// pressed returns the states of keys still logically held, preserving
// insertion order in the returned name list.
func (c *Combination) pressed() (map[string]*State, []string) {
	carry := make(map[string]*State, len(c.states))
	order := make([]string, 0, len(c.names))
	for _, name := range c.names {
		if st := c.states[name]; st.Pressed() {
			carry[name] = st
			order = append(order, name)
		}
	}
	return carry, order
}

// serialize rebuilds the ids list as the cartesian product of each
// key's alias set, one sorted "+"-joined id per choice tuple. The
// product is walked with explicit counters; alias lists are tiny so
// the bound is small.
func (c *Combination) serialize() {
	if len(c.names) == 0 {
		c.ids = []string{""}
		return
	}

	aliasSets := make([][]string, len(c.names))
	for i, name := range c.names {
		aliasSets[i] = key.Aliases(name)
	}

	counters := make([]int, len(aliasSets))
	choice := make([]string, len(aliasSets))
	seen := make(map[string]bool)
	ids := make([]string, 0, 1)

	for {
		for i, set := range aliasSets {
			choice[i] = set[counters[i]]
		}
		id := key.CombinationID(choice)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}

		// Advance the odometer.
		pos := len(counters) - 1
		for pos >= 0 {
			counters[pos]++
			if counters[pos] < len(aliasSets[pos]) {
				break
			}
			counters[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	c.ids = ids
}
