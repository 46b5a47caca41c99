package key

import (
	"strings"
	"unicode"
)

// Event is a single key press.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// NewRuneEvent returns a character event.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent returns an event for a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// IsRune reports whether e is a character event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// Normalize returns the canonical form of e used for binding lookups.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		e.Rune = 0
		return e
	}
	e.Modifiers = e.Modifiers.Without(ModShift)
	if e.Modifiers.Has(ModCtrl) {
		e.Rune = unicode.ToLower(e.Rune)
	}
	return e
}

// Equals reports whether e and other are the same key press once normalized.
func (e Event) Equals(other Event) bool {
	return e.Normalize() == other.Normalize()
}

// String returns the Vim-style form of e, such as "q", "<C-c>" or "<PageDown>".
func (e Event) String() string {
	n := e.Normalize()
	if n.IsRune() && n.Modifiers == ModNone {
		if n.Rune == ' ' {
			return "<Space>"
		}
		return string(n.Rune)
	}

	var parts []string
	if n.Modifiers.Has(ModCtrl) {
		parts = append(parts, "C")
	}
	if n.Modifiers.Has(ModAlt) {
		parts = append(parts, "A")
	}
	if n.Modifiers.Has(ModMeta) {
		parts = append(parts, "D")
	}
	if n.Modifiers.Has(ModShift) {
		parts = append(parts, "S")
	}

	switch {
	case n.Key == KeyRune && n.Rune == ' ':
		parts = append(parts, "Space")
	case n.Key == KeyRune:
		parts = append(parts, string(n.Rune))
	default:
		parts = append(parts, n.Key.String())
	}
	return "<" + strings.Join(parts, "-") + ">"
}
