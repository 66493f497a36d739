package focus

import (
	"github.com/dshills/keyscope/internal/input/combo"
	"github.com/dshills/keyscope/internal/input/key"
)

// findMatch searches a scope's resolved sequence map against the live
// combination history for a handler bound to this event kind.
//
// Sequence lengths are tried from the scope's longest registered
// sequence down to zero: the trailing slice of completed history of
// that length is serialized (trying every alias spelling per step)
// and looked up as a prefix; on a hit, the prefix's combinations are
// tried in priority order against the in-progress combination.
func findMatch(sr *scopeResolution, history *combo.History, completing string, kind key.Kind) (boundHandler, bool) {
	if !sr.events.Has(kind) {
		return boundHandler{}, false
	}

	prior := history.Prior()
	current := history.Current()

	for length := sr.longest - 1; length >= 0; length-- {
		if length > len(prior) {
			continue
		}

		group, ok := matchPrefix(sr, prior[len(prior)-length:])
		if !ok {
			continue
		}
		if !group.events.Has(kind) {
			continue
		}

		for _, id := range group.orderedIDs() {
			entry := group.combinations[id]
			if entryMatches(entry, current, completing, kind) {
				return entry.handlers[kind.Index()], true
			}
		}
	}

	return boundHandler{}, false
}

// matchPrefix serializes the given history steps and looks the result
// up in the scope's resolved map. Each step may carry several valid
// ids, so the Cartesian product of per-step choices is walked with an
// explicit counter odometer until a spelling matches a registered
// prefix or the (small) product is exhausted.
func matchPrefix(sr *scopeResolution, steps []*combo.Combination) (*sequenceGroup, bool) {
	if len(steps) == 0 {
		g, ok := sr.groups[""]
		return g, ok
	}

	idSets := make([][]string, len(steps))
	for i, step := range steps {
		idSets[i] = step.IDs()
	}

	counters := make([]int, len(idSets))
	choice := make([]string, len(idSets))

	for {
		for i, set := range idSets {
			choice[i] = set[counters[i]]
		}
		if g, ok := sr.groups[key.JoinSequence(choice)]; ok {
			return g, true
		}

		pos := len(counters) - 1
		for pos >= 0 {
			counters[pos]++
			if counters[pos] < len(idSets[pos]) {
				break
			}
			counters[pos] = 0
			pos--
		}
		if pos < 0 {
			return nil, false
		}
	}
}

// entryMatches checks a candidate combination against the live key
// state. Every key of the candidate must have the event kind active,
// with aliases resolved through the current modifier context, and one
// of them must resolve to the key that triggered this physical event
// with the kind newly fired. The latter both excludes candidates the
// triggering key is not part of (held keys must not re-fire on
// unrelated events) and stops a combination from re-firing when an
// event is re-recorded.
func entryMatches(e *combinationEntry, current *combo.Combination, completing string, kind key.Kind) bool {
	if e.handlers[kind.Index()].fn == nil {
		return false
	}

	shiftHeld := current.Contains(key.NameShift)
	altHeld := current.Contains(key.NameAlt)

	completes := false
	for _, name := range e.keys {
		matched := false
		for _, variant := range key.Variants(name, shiftHeld, altHeld) {
			st := current.State(variant)
			if st == nil {
				continue
			}
			if variant == completing {
				if st.JustFired(kind) {
					matched = true
					completes = true
				}
				break
			}
			if st.Current.Has(kind) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return completes
}
