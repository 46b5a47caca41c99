// Package keymap maps key presses to pager commands.
//
// A Keymap is a named list of bindings. Keymaps are registered into a
// Registry, which resolves a key.Event to a command.Command. Later
// registrations replace earlier bindings for the same key, so user
// bindings layered over DefaultKeymap win.
//
// Key specifications accept the formats understood by key.Parse:
//
//	"q"          - Single character
//	"<C-c>"      - Ctrl+C (angle bracket notation)
//	"Ctrl+C"     - Ctrl+C (readable notation)
//	"<PageDown>" - Named key
//
// Binding a key to command.None removes any existing binding for it.
package keymap
