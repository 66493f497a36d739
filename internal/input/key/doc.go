// Package key provides canonical key naming, event kinds, alias tables
// and sequence parsing for the shortcut engine.
//
// This package defines the fundamental vocabulary for keyboard input:
//
//   - Kind: The kind of a key event (keydown, keypress, keyup)
//   - Flags: A compact set of event kinds
//   - Matcher: A parsed key sequence bound to an action
//
// # Key Names
//
// Keys are identified by canonical names modeled on the web platform's
// KeyboardEvent.key vocabulary: single printable characters name
// themselves ("a", "A", "!"), special keys use their spelled-out names
// ("Enter", "Escape", "ArrowUp", "Meta"). Normalize maps common
// synonyms ("cmd", "ctrl", "esc", "return") onto canonical names.
//
// # Sequence Expressions
//
// Sequence expressions are whitespace-separated combinations, each
// combination a "+"-separated list of key names:
//
//   - Single combination: "a", "shift+a", "cmd+s"
//   - Multi-step sequence: "up up down down", "g g"
package key
