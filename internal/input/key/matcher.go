package key

import (
	"fmt"
	"sort"
	"strings"
)

// Matcher is a parsed key sequence bound to an action. It is immutable
// once parsed.
type Matcher struct {
	// Action is the action name this matcher triggers.
	Action string

	// Kind is the event kind the matcher fires on.
	Kind Kind

	// Prefix is the serialized ids of all combinations before the
	// final one, space-separated. Empty for single-step sequences.
	Prefix string

	// CombinationID is the canonical id of the final combination.
	CombinationID string

	// SequenceLength is the total number of combinations, >= 1.
	SequenceLength int

	// Size is the number of keys in the final combination.
	Size int

	// Keys holds the canonical names of the final combination's keys.
	Keys []string
}

// SequenceID returns the full serialized sequence id (prefix plus
// final combination id).
func (m *Matcher) SequenceID() string {
	if m.Prefix == "" {
		return m.CombinationID
	}
	return m.Prefix + " " + m.CombinationID
}

// String returns a human-readable form for logging.
func (m *Matcher) String() string {
	return fmt.Sprintf("%s:%s -> %s", m.Kind, m.SequenceID(), m.Action)
}

// CombinationID serializes a set of canonical key names into the
// canonical combination id: names sorted and joined with "+". The
// parser and the combination serializer share this form so that
// registered patterns and live history agree on identifiers.
func CombinationID(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Strings(sorted)
	return strings.Join(sorted, "+")
}

// JoinSequence joins combination ids into a sequence id.
func JoinSequence(ids []string) string {
	return strings.Join(ids, " ")
}

// ParseSequence parses a sequence expression into a Matcher for the
// given action and event kind. Expressions are whitespace-separated
// combinations; each combination is a "+"-separated list of key names
// ("cmd+s", "up up down down"). Kind must be a concrete event kind.
func ParseSequence(action, expr string, kind Kind) (*Matcher, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("parsing %q: no event kind for action %q", expr, action)
	}

	steps := strings.Fields(expr)
	if len(steps) == 0 {
		return nil, fmt.Errorf("parsing %q: empty key sequence for action %q", expr, action)
	}

	ids := make([]string, 0, len(steps))
	var finalKeys []string
	for i, step := range steps {
		names, err := parseCombination(step)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", expr, err)
		}
		ids = append(ids, CombinationID(names))
		if i == len(steps)-1 {
			finalKeys = names
		}
	}

	return &Matcher{
		Action:         action,
		Kind:           kind,
		Prefix:         JoinSequence(ids[:len(ids)-1]),
		CombinationID:  ids[len(ids)-1],
		SequenceLength: len(ids),
		Size:           len(finalKeys),
		Keys:           finalKeys,
	}, nil
}

// parseCombination parses one "+"-separated combination into canonical
// key names. A trailing "++" names the plus key itself ("ctrl++").
func parseCombination(step string) ([]string, error) {
	if step == "+" {
		return []string{"+"}, nil
	}

	var parts []string
	if strings.HasSuffix(step, "++") {
		parts = strings.Split(strings.TrimSuffix(step, "++"), "+")
		parts = append(parts, "+")
	} else {
		parts = strings.Split(step, "+")
	}

	names := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("empty key name in combination %q", step)
		}
		name := Normalize(part)
		if !Known(name) {
			return nil, fmt.Errorf("unrecognized key %q in combination %q", part, step)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate key %q in combination %q", name, step)
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("empty combination %q", step)
	}
	return names, nil
}
