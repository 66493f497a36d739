package focus

import (
	"sort"

	"github.com/dshills/keyscope/internal/input/key"
)

// boundHandler is one event kind's binding inside a combination entry.
type boundHandler struct {
	fn     Handler
	action string
	scope  int
}

// combinationEntry is a final combination registered under a sequence
// prefix, with its per-event-kind handler bindings.
type combinationEntry struct {
	id       string
	keys     []string
	size     int
	order    int // insertion order within the group, tie-break for equal sizes
	events   key.Flags
	handlers [key.KindCount]boundHandler
}

// sequenceGroup collects the combinations registered under one
// sequence prefix for one scope.
type sequenceGroup struct {
	combinations map[string]*combinationEntry
	events       key.Flags
	nextOrder    int
	ordered      []string // lazily computed candidate order
}

// orderedIDs returns combination ids sorted by descending combination
// size, equal sizes keeping first-registered order. Computed once per
// group and invalidated when a combination is added.
func (g *sequenceGroup) orderedIDs() []string {
	if g.ordered != nil {
		return g.ordered
	}
	ids := make([]string, 0, len(g.combinations))
	for id := range g.combinations {
		ids = append(ids, id)
	}
	sort.SliceStable(ids, func(a, b int) bool {
		ea, eb := g.combinations[ids[a]], g.combinations[ids[b]]
		if ea.size != eb.size {
			return ea.size > eb.size
		}
		return ea.order < eb.order
	})
	g.ordered = ids
	return ids
}

func (g *sequenceGroup) entry(m *key.Matcher) *combinationEntry {
	e, ok := g.combinations[m.CombinationID]
	if !ok {
		e = &combinationEntry{
			id:    m.CombinationID,
			keys:  m.Keys,
			size:  m.Size,
			order: g.nextOrder,
		}
		g.nextOrder++
		g.combinations[m.CombinationID] = e
		g.ordered = nil
	}
	return e
}

// scopeResolution is one scope's resolved sequence map: the sequences
// whose handlers this scope owns, grouped by prefix.
type scopeResolution struct {
	groups  map[string]*sequenceGroup
	events  key.Flags
	longest int
}

func (sr *scopeResolution) group(prefix string) *sequenceGroup {
	g, ok := sr.groups[prefix]
	if !ok {
		g = &sequenceGroup{combinations: make(map[string]*combinationEntry)}
		sr.groups[prefix] = g
	}
	return g
}

// resolution lazily builds, per scope, the mapping from key sequences
// to the nearest-defined handler. It advances searchIndex from the
// innermost scope toward the root, consuming one scope per step, and
// stops early once the requesting scope has no unmatched handlers
// left. All of it is cache scoped to one scope-tree generation and is
// rebuilt wholesale after any registration change.
type resolution struct {
	searchIndex int
	owner       map[string]int // action name -> owning scope index
	counted     map[string]bool
	unmatched   []int
	scopes      []*scopeResolution
	bound       map[string]key.Flags // sequence id -> kinds already bound
}

func newResolution(scopes []*scope) *resolution {
	r := &resolution{
		owner:     make(map[string]int),
		counted:   make(map[string]bool),
		unmatched: make([]int, len(scopes)),
		scopes:    make([]*scopeResolution, len(scopes)),
		bound:     make(map[string]key.Flags),
	}
	for i, s := range scopes {
		r.unmatched[i] = len(s.handlers)
		r.scopes[i] = &scopeResolution{groups: make(map[string]*sequenceGroup)}
	}
	return r
}

// resolveUpTo extends the resolved maps until the target scope has no
// unmatched handlers or the registry is exhausted.
func (r *resolution) resolveUpTo(target int, scopes []*scope) {
	for r.unmatched[target] > 0 && r.searchIndex < len(scopes) {
		r.consume(scopes[r.searchIndex], scopes)
		r.searchIndex++
	}
}

// consume folds one scope into the resolution: its handlers claim
// ownership of any action names not yet owned by a nearer scope, and
// its action bindings are bound into the owning scope's resolved map.
func (r *resolution) consume(s *scope, scopes []*scope) {
	for _, name := range s.handlerNames() {
		if _, ok := r.owner[name]; !ok {
			r.owner[name] = s.id
		}
	}

	for _, am := range s.actions {
		ownerIdx, ok := r.owner[am.name]
		if !ok {
			// No scope at or before searchIndex handles this action;
			// an outer scope may still claim it later.
			continue
		}

		for _, m := range am.matchers {
			seqID := m.SequenceID()
			if r.bound[seqID].Has(m.Kind) {
				// A nearer scope already bound this sequence and kind.
				continue
			}
			r.bound[seqID] = r.bound[seqID].With(m.Kind)

			sr := r.scopes[ownerIdx]
			g := sr.group(m.Prefix)
			e := g.entry(m)
			e.events = e.events.With(m.Kind)
			g.events = g.events.With(m.Kind)
			e.handlers[m.Kind.Index()] = boundHandler{
				fn:     scopes[ownerIdx].handlers[am.name],
				action: am.name,
				scope:  ownerIdx,
			}
			sr.events = sr.events.With(m.Kind)
			if m.SequenceLength > sr.longest {
				sr.longest = m.SequenceLength
			}
		}

		if !r.counted[am.name] {
			r.counted[am.name] = true
			r.unmatched[ownerIdx]--
		}
	}
}
