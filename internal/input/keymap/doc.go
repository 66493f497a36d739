// Package keymap defines declarative key binding collections and the
// loaders that read them from configuration files.
//
// A Keymap is a named list of Binding entries, each mapping a key
// sequence expression to an action name. Keymaps can be built in code
// with the fluent builders, loaded from JSON files, or produced by Lua
// scripts. A validated keymap converts into the action map consumed by
// the focus engine's scope registration.
package keymap
