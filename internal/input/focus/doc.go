// Package focus implements the scoped shortcut resolution engine.
//
// A Manager holds an ordered list of scopes (registered UI regions,
// innermost first) for the active focus tree. Each scope carries
// action→key-sequence bindings and action→handler callbacks. Key
// events are delivered scope by scope as they bubble from the
// innermost region to the root; the Manager invokes at most one
// handler per physical event, honoring:
//
//   - scoping: the innermost scope defining a handler for an action
//     owns that action, even when the key binding is declared further
//     out
//   - combination size: combinations with more simultaneous keys beat
//     smaller ones, first-registered order breaking ties
//   - sequence history: multi-step sequences match against the
//     recorded combination history
//
// The engine is single-threaded and cooperative: every state
// transition happens synchronously inside the call delivering one
// event to one scope, and handlers run to completion before control
// returns. The host is responsible for delivering events in bubble
// order and for serializing calls; the Manager performs no locking so
// handlers may safely call back into registration APIs.
package focus
