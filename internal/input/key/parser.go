package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors.
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification into a normalized Event.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}
	return parseKey(spec, ModNone)
}

// MustParse is like Parse but panics on error. It is meant for built-in
// bindings only.
func MustParse(spec string) Event {
	e, err := Parse(spec)
	if err != nil {
		panic("invalid key specification " + spec + ": " + err.Error())
	}
	return e
}

// parseVimStyle parses the inside of "<C-s>", "<A-F4>", "<CR>".
func parseVimStyle(inner string) (Event, error) {
	parts := strings.Split(inner, "-")
	keyPart := parts[len(parts)-1]

	// "<C-->" binds Ctrl+minus.
	if keyPart == "" && len(parts) > 2 {
		keyPart = "-"
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		switch strings.ToLower(strings.TrimSpace(p)) {
		case "c":
			mods = mods.With(ModCtrl)
		case "a", "m":
			mods = mods.With(ModAlt)
		case "s":
			mods = mods.With(ModShift)
		case "d":
			mods = mods.With(ModMeta)
		default:
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
	}
	return parseKey(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" and "Ctrl+Shift+PageDown".
func parseModifierStyle(spec string) (Event, error) {
	parts := strings.Split(spec, "+")
	keyPart := parts[len(parts)-1]

	// "Ctrl++" binds Ctrl+plus.
	if keyPart == "" && len(parts) > 2 {
		keyPart = "+"
		parts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKey(keyPart, mods)
}

// parseKey parses a key name or single character with known modifiers.
func parseKey(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	lower := strings.ToLower(keyPart)
	if k := KeyFromName(lower); k != KeyNone {
		return NewSpecialEvent(k, mods).Normalize(), nil
	}
	if r, ok := runeNameMap[lower]; ok {
		return NewRuneEvent(r, mods).Normalize(), nil
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], mods).Normalize(), nil
	}
	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}
