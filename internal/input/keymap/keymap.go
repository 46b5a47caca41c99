package keymap

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/lesser/internal/command"
	"github.com/dshills/lesser/internal/input/key"
)

// ErrUnknownCommand is returned when a binding names a command that does not exist.
var ErrUnknownCommand = errors.New("unknown command")

// Keymap holds a named set of key bindings.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Source indicates where this keymap was defined.
	Source string

	// Bindings are the key-to-command mappings.
	Bindings []Binding
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys string, cmd command.Command, desc string) *Keymap {
	k.Bindings = append(k.Bindings, Binding{
		Keys:        keys,
		Command:     cmd,
		Description: desc,
		Source:      k.Source,
	})
	return k
}

// Validate checks that all bindings in the keymap parse.
func (k *Keymap) Validate() error {
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: empty keys", i)
		}
		if _, err := b.Event(); err != nil {
			return &BindingError{Keys: b.Keys, Err: err}
		}
	}
	return nil
}

// FromMap builds a keymap from a key specification to command name table,
// as found in the [keys] section of the configuration file. The command
// name "none" unbinds the key.
func FromMap(name string, table map[string]string) (*Keymap, error) {
	km := NewKeymap(name).WithSource(name)

	specs := make([]string, 0, len(table))
	for spec := range table {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	for _, spec := range specs {
		cmd, err := command.Parse(table[spec])
		if err != nil {
			return nil, &BindingError{Keys: spec, Command: table[spec], Err: ErrUnknownCommand}
		}
		km.Add(spec, cmd, "")
	}
	if err := km.Validate(); err != nil {
		return nil, err
	}
	return km, nil
}

// Registry resolves key presses against registered keymaps.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	bindings map[key.Event]Binding
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bindings: make(map[key.Event]Binding),
	}
}

// Register adds every binding of km. Bindings replace earlier ones for the
// same key press; a binding to command.None removes the key.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return errors.New("nil keymap")
	}

	events := make([]key.Event, len(km.Bindings))
	for i, b := range km.Bindings {
		ev, err := b.Event()
		if err != nil {
			return &BindingError{Keys: b.Keys, Err: err}
		}
		events[i] = ev
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range km.Bindings {
		if b.Command == command.None {
			delete(r.bindings, events[i])
			continue
		}
		r.bindings[events[i]] = b
	}
	return nil
}

// Bind maps a single key specification to cmd.
func (r *Registry) Bind(keys string, cmd command.Command) error {
	return r.Register(NewKeymap("bind").Add(keys, cmd, ""))
}

// Unbind removes the binding for a key specification.
func (r *Registry) Unbind(keys string) error {
	return r.Bind(keys, command.None)
}

// Lookup returns the command bound to ev.
func (r *Registry) Lookup(ev key.Event) (command.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.bindings[ev.Normalize()]
	if !ok {
		return command.None, false
	}
	return b.Command, true
}

// Len returns the number of bound key presses.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.bindings)
}

// Bindings returns all active bindings ordered by command, then keys.
func (r *Registry) Bindings() []Binding {
	r.mu.RLock()
	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		out = append(out, b)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Command != out[j].Command {
			return out[i].Command < out[j].Command
		}
		return out[i].Keys < out[j].Keys
	})
	return out
}
