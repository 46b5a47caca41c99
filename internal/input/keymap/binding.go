package keymap

import (
	"fmt"

	"github.com/dshills/lesser/internal/command"
	"github.com/dshills/lesser/internal/input/key"
)

// Binding represents a single key-to-command mapping.
type Binding struct {
	// Keys is the key specification that triggers this binding.
	// Formats: "j", "<C-c>", "Ctrl+C", "<PageDown>"
	Keys string

	// Command is the pager command to issue.
	Command command.Command

	// Description provides documentation for the binding.
	Description string

	// Source indicates where this binding was defined, e.g. "default" or "user".
	Source string
}

// NewBinding creates a new binding with the given keys and command.
func NewBinding(keys string, cmd command.Command) Binding {
	return Binding{Keys: keys, Command: cmd}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithSource sets the source for this binding.
func (b Binding) WithSource(source string) Binding {
	b.Source = source
	return b
}

// Event parses the binding's key specification.
func (b Binding) Event() (key.Event, error) {
	return key.Parse(b.Keys)
}

// String returns a human readable form like "q -> exit".
func (b Binding) String() string {
	return fmt.Sprintf("%s -> %s", b.Keys, b.Command)
}

// BindingError reports a binding that could not be applied.
type BindingError struct {
	Keys    string
	Command string
	Err     error
}

func (e *BindingError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("binding %q = %q: %v", e.Keys, e.Command, e.Err)
	}
	return fmt.Sprintf("binding %q: %v", e.Keys, e.Err)
}

func (e *BindingError) Unwrap() error {
	return e.Err
}
