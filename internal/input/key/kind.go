package key

import "fmt"

// Kind identifies the kind of a key event.
type Kind uint8

const (
	// KindNone indicates an unspecified event kind. Bindings that omit
	// a kind inherit their scope's default.
	KindNone Kind = iota
	// KindKeydown is a key being pressed.
	KindKeydown
	// KindKeypress is a character being produced by a pressed key.
	KindKeypress
	// KindKeyup is a key being released.
	KindKeyup
)

// KindCount is the number of concrete event kinds.
const KindCount = 3

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case KindKeydown:
		return "keydown"
	case KindKeypress:
		return "keypress"
	case KindKeyup:
		return "keyup"
	case KindNone:
		return "none"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Valid returns true for a concrete event kind.
func (k Kind) Valid() bool {
	return k >= KindKeydown && k <= KindKeyup
}

// Index returns the zero-based index of a concrete kind, suitable for
// addressing fixed-size per-kind arrays.
func (k Kind) Index() int {
	return int(k - KindKeydown)
}

// Flag returns the Flags bit for this kind.
func (k Kind) Flag() Flags {
	if !k.Valid() {
		return 0
	}
	return 1 << (k - KindKeydown)
}

// ParseKind parses an event kind name ("keydown", "keypress", "keyup").
// An empty string parses to KindNone.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "":
		return KindNone, nil
	case "keydown":
		return KindKeydown, nil
	case "keypress":
		return KindKeypress, nil
	case "keyup":
		return KindKeyup, nil
	default:
		return KindNone, fmt.Errorf("unknown event kind %q", s)
	}
}

// Flags is a compact set of event kinds.
type Flags uint8

// Has returns true if the set contains the given kind.
func (f Flags) Has(k Kind) bool {
	return f&k.Flag() != 0
}

// With returns the set with the given kind added.
func (f Flags) With(k Kind) Flags {
	return f | k.Flag()
}

// Empty returns true if no kind is set.
func (f Flags) Empty() bool {
	return f == 0
}
