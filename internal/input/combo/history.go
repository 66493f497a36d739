package combo

import "github.com/dshills/keyscope/internal/input/key"

// History is the ordered list of key combinations observed for the
// active scope tree, oldest first. Its length is bounded by the
// longest registered key sequence: at most maxLength completed
// combinations plus the one in progress.
type History struct {
	entries   []*Combination
	maxLength int
}

// NewHistory creates a history bounded by the given longest sequence
// length.
func NewHistory(maxLength int) *History {
	if maxLength < 1 {
		maxLength = 1
	}
	return &History{maxLength: maxLength}
}

// SetMaxLength updates the bound when scope registration changes the
// longest known sequence. The history is trimmed the next time a new
// combination starts.
func (h *History) SetMaxLength(n int) {
	if n < 1 {
		n = 1
	}
	h.maxLength = n
}

// Len returns the number of recorded combinations.
func (h *History) Len() int {
	return len(h.entries)
}

// Current returns the in-progress combination, creating an empty one
// if the history is empty.
func (h *History) Current() *Combination {
	if len(h.entries) == 0 {
		h.entries = append(h.entries, newCombination(nil, nil))
	}
	return h.entries[len(h.entries)-1]
}

// Prior returns the completed combinations preceding the current one,
// oldest first.
func (h *History) Prior() []*Combination {
	if len(h.entries) < 2 {
		return nil
	}
	return h.entries[:len(h.entries)-1]
}

// Record applies one key event to the history, deciding whether it
// extends the current combination or starts a new one:
//
//   - keydown starts a new combination when the key is already part of
//     the current one (a key cannot go down twice without a keyup in
//     between) or the current combination already contains any keyup.
//   - keypress starts a new combination when the key already has a
//     keypress or keyup recorded.
//   - keyup starts a new combination when the key already has a keyup
//     recorded.
func (h *History) Record(name string, kind key.Kind) {
	cur := h.Current()

	startNew := false
	switch kind {
	case key.KindKeydown:
		startNew = cur.Contains(name) || cur.HasKeyup()
	case key.KindKeypress:
		if st := cur.State(name); st != nil {
			startNew = st.Current.Has(key.KindKeypress) || st.Current.Has(key.KindKeyup)
		}
	case key.KindKeyup:
		if st := cur.State(name); st != nil {
			startNew = st.Current.Has(key.KindKeyup)
		}
	}

	if startNew {
		h.startNew(name, kind)
		return
	}
	cur.Record(name, kind)
}

// startNew closes the current combination and begins a new one,
// carrying forward every key that has not yet seen its keyup. The
// oldest entries are dropped so the bound of maxLength completed
// combinations plus one in progress holds.
func (h *History) startNew(name string, kind key.Kind) {
	carry, order := h.Current().pressed()

	for len(h.entries) > h.maxLength {
		h.entries = h.entries[1:]
	}

	next := newCombination(carry, order)
	next.Record(name, kind)
	h.entries = append(h.entries, next)
}

// Collapse reduces the history to a single combination retaining only
// the keys still logically pressed. Called when the scope tree resets
// so a new tree does not inherit stale sequence state while held keys
// survive the transition.
func (h *History) Collapse() {
	if len(h.entries) == 0 {
		return
	}
	carry, order := h.Current().pressed()
	h.entries = []*Combination{newCombination(carry, order)}
}
