// Package command defines the navigation commands exchanged between input
// producers and the event loop, and the bounded queue that carries them.
package command

import (
	"fmt"
	"strings"
)

// Command is an immutable navigation request.
type Command uint8

const (
	// None is the zero value; it is never enqueued.
	None Command = iota
	ScrollUp
	ScrollDown
	ScrollUpPage
	ScrollDownPage
	ScrollLeft
	ScrollRight
	ScrollToBeginning
	ScrollToEnd
	Reload
	Exit
)

var names = [...]string{
	None:              "none",
	ScrollUp:          "scroll-up",
	ScrollDown:        "scroll-down",
	ScrollUpPage:      "scroll-up-page",
	ScrollDownPage:    "scroll-down-page",
	ScrollLeft:        "scroll-left",
	ScrollRight:       "scroll-right",
	ScrollToBeginning: "scroll-to-beginning",
	ScrollToEnd:       "scroll-to-end",
	Reload:            "reload",
	Exit:              "exit",
}

// String returns the configuration name of the command.
func (c Command) String() string {
	if int(c) < len(names) {
		return names[c]
	}
	return fmt.Sprintf("Command(%d)", c)
}

// Valid reports whether c is a real command.
func (c Command) Valid() bool {
	return c > None && int(c) < len(names)
}

// Parse returns the command with the given name. Matching ignores case and
// accepts underscores in place of hyphens. "none" parses to None.
func Parse(name string) (Command, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for c, n := range names {
		if n == normalized {
			return Command(c), nil
		}
	}
	return None, fmt.Errorf("unknown command %q", name)
}

// All returns every valid command in declaration order.
func All() []Command {
	all := make([]Command, 0, len(names)-1)
	for c := None + 1; int(c) < len(names); c++ {
		all = append(all, c)
	}
	return all
}
