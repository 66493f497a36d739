package keymap

import (
	"fmt"

	"github.com/dshills/keyscope/internal/input/focus"
	"github.com/dshills/keyscope/internal/input/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key sequence that triggers this binding.
	// Formats: "a", "cmd+s", "up up down down", "ctrl+shift+k"
	Keys string

	// Action is the name of the action to trigger.
	// Examples: "editor.save", "nav.up", "app.quit"
	Action string

	// Kind selects which key event fires the binding. Zero means the
	// keymap's default kind applies.
	Kind key.Kind

	// Description provides documentation for the binding.
	Description string
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// On sets the event kind that fires this binding.
func (b Binding) On(kind key.Kind) Binding {
	b.Kind = kind
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// Keymap holds key bindings for a context.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// DefaultKind is the event kind applied to bindings that do not
	// name one. Defaults to keydown when unset.
	DefaultKind key.Kind

	// Bindings are the key-to-action mappings.
	Bindings []Binding

	// Source indicates where this keymap was defined.
	// Examples: "default", "user", "lua:editor.lua"
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// WithDefaultKind sets the default event kind for this keymap.
func (k *Keymap) WithDefaultKind(kind key.Kind) *Keymap {
	k.DefaultKind = kind
	return k
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, Binding{
		Keys:   keys,
		Action: action,
	})
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// kind returns the effective event kind for a binding.
func (k *Keymap) kind(b Binding) key.Kind {
	if b.Kind != key.KindNone {
		return b.Kind
	}
	if k.DefaultKind != key.KindNone {
		return k.DefaultKind
	}
	return key.KindKeydown
}

// Validate checks that all bindings in the keymap are valid.
func (k *Keymap) Validate() error {
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Action == "" {
			return fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		if _, err := key.ParseSequence(b.Action, b.Keys, k.kind(b)); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
	}
	return nil
}

// ActionMap converts the keymap into the action map consumed by scope
// registration. Bindings for the same action accumulate as alternate
// triggers.
func (k *Keymap) ActionMap() focus.ActionMap {
	actions := make(focus.ActionMap, len(k.Bindings))
	for _, b := range k.Bindings {
		actions[b.Action] = append(actions[b.Action], focus.Trigger{
			Sequence: b.Keys,
			Kind:     k.kind(b),
		})
	}
	return actions
}

// Options returns the scope options implied by this keymap.
func (k *Keymap) Options() focus.ScopeOptions {
	kind := k.DefaultKind
	if kind == key.KindNone {
		kind = key.KindKeydown
	}
	return focus.ScopeOptions{DefaultKind: kind}
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:        k.Name,
		DefaultKind: k.DefaultKind,
		Source:      k.Source,
		Bindings:    make([]Binding, len(k.Bindings)),
	}
	copy(clone.Bindings, k.Bindings)
	return clone
}

// Merge appends another keymap's bindings to this one. Later bindings
// for the same action become additional triggers.
func (k *Keymap) Merge(other *Keymap) *Keymap {
	k.Bindings = append(k.Bindings, other.Bindings...)
	return k
}
