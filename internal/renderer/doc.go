// Package renderer draws pager pages onto a terminal backend.
//
// A page arrives as text whose rows are separated by pager.RowSeparator.
// Each row is laid out left to right using the display width of its runes:
// wide runes take two cells, zero width runes are dropped and control
// characters are shown in caret notation (^[). Anything past the right or
// bottom edge of the screen is clipped.
//
// When a navigation command changes nothing, Unchanged rings the terminal
// bell instead of redrawing, unless the bell is disabled.
package renderer
