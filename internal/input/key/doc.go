// Package key provides the key event model used by the pager's keymap.
//
// Key specifications accepted by Parse:
//
//   - Single characters: "q", "G", "/"
//   - Named keys: "Enter", "Space", "PageDown", "Home", "F1"
//   - Modifier style: "Ctrl+C", "Alt+F4"
//   - Vim style: "<C-c>", "<PageDown>", "<CR>", "<Space>"
//
// Events are compared in normalized form: a character carries its own case,
// so Shift is dropped from rune events and Ctrl combinations use the
// lowercase letter.
package key
