// Package combo tracks the keys considered simultaneously pressed and
// the bounded history of such combinations.
//
// A Combination is the set of keys pressed together at one instant,
// with per-key event-kind flags and one or more serialized string
// identifiers (alias ambiguity can make several spellings valid for
// one physical state). The History orders combinations oldest-first
// and is bounded by the longest key sequence registered anywhere in
// the scope tree.
package combo
