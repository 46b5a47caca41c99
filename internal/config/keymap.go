package config

import "github.com/dshills/lesser/internal/input/keymap"

// Keymap returns the user bindings from the [keys] section as a keymap to
// be layered over the defaults.
func (c *Config) Keymap() (*keymap.Keymap, error) {
	return keymap.FromMap("user", c.Keys)
}
