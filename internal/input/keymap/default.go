package keymap

import "github.com/dshills/lesser/internal/command"

// DefaultKeymap returns the built-in bindings.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:   "default",
		Source: "default",
		Bindings: []Binding{
			{Keys: "q", Command: command.Exit, Description: "Quit", Source: "default"},
			{Keys: "<C-c>", Command: command.Exit, Description: "Quit", Source: "default"},

			{Keys: "<Down>", Command: command.ScrollDown, Description: "Scroll down one line", Source: "default"},
			{Keys: "<CR>", Command: command.ScrollDown, Description: "Scroll down one line", Source: "default"},
			{Keys: "e", Command: command.ScrollDown, Description: "Scroll down one line", Source: "default"},
			{Keys: "j", Command: command.ScrollDown, Description: "Scroll down one line", Source: "default"},

			{Keys: "<Up>", Command: command.ScrollUp, Description: "Scroll up one line", Source: "default"},
			{Keys: "y", Command: command.ScrollUp, Description: "Scroll up one line", Source: "default"},
			{Keys: "k", Command: command.ScrollUp, Description: "Scroll up one line", Source: "default"},

			{Keys: "<PageDown>", Command: command.ScrollDownPage, Description: "Scroll down one page", Source: "default"},
			{Keys: "<Space>", Command: command.ScrollDownPage, Description: "Scroll down one page", Source: "default"},
			{Keys: "f", Command: command.ScrollDownPage, Description: "Scroll down one page", Source: "default"},

			{Keys: "<PageUp>", Command: command.ScrollUpPage, Description: "Scroll up one page", Source: "default"},
			{Keys: "b", Command: command.ScrollUpPage, Description: "Scroll up one page", Source: "default"},

			{Keys: "<Left>", Command: command.ScrollLeft, Description: "Scroll left", Source: "default"},
			{Keys: "<Right>", Command: command.ScrollRight, Description: "Scroll right", Source: "default"},

			{Keys: "g", Command: command.ScrollToBeginning, Description: "Go to start of input", Source: "default"},
			{Keys: "<Home>", Command: command.ScrollToBeginning, Description: "Go to start of input", Source: "default"},
			{Keys: "G", Command: command.ScrollToEnd, Description: "Go to end of input", Source: "default"},
			{Keys: "<End>", Command: command.ScrollToEnd, Description: "Go to end of input", Source: "default"},

			{Keys: "r", Command: command.Reload, Description: "Redraw", Source: "default"},
			{Keys: "<C-l>", Command: command.Reload, Description: "Redraw", Source: "default"},
		},
	}
}

// NewDefaultRegistry returns a registry holding DefaultKeymap with the
// given overlays registered on top, in order.
func NewDefaultRegistry(overlays ...*Keymap) (*Registry, error) {
	r := NewRegistry()
	if err := r.Register(DefaultKeymap()); err != nil {
		return nil, err
	}
	for _, km := range overlays {
		if err := r.Register(km); err != nil {
			return nil, err
		}
	}
	return r, nil
}
