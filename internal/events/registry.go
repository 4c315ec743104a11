// Package events implements the event compilers: pure functions that turn
// one plan event into descriptor appends on the relevant envelopes
// (spec.md §4.7). Each event kind is registered under its plan type
// string; Compile dispatches to the right compiler by that string.
package events

import (
	"fmt"

	"github.com/marksoulier/modal-canvas-flow-sub001/internal/envelope"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/plan"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/simerr"
)

// Compiler appends descriptors for one event onto store's envelopes.
type Compiler interface {
	Compile(ev plan.Event, store *envelope.Store) error
}

// CompilerFunc adapts a plain function to the Compiler interface.
type CompilerFunc func(ev plan.Event, store *envelope.Store) error

func (f CompilerFunc) Compile(ev plan.Event, store *envelope.Store) error {
	return f(ev, store)
}

var registry = map[string]Compiler{}

func register(eventType string, c Compiler) {
	registry[eventType] = c
}

// Compile dispatches ev to its registered compiler. An unrecognised type is
// a schema validation failure — the plan validator should have already
// caught this, but Compile re-checks defensively.
func Compile(ev plan.Event, store *envelope.Store) error {
	c, ok := registry[ev.Type]
	if !ok {
		return simerr.SchemaValidation(fmt.Errorf("events: no compiler registered for type %q", ev.Type))
	}
	if err := c.Compile(ev, store); err != nil {
		return fmt.Errorf("events: compiling %q (id=%s): %w", ev.Type, ev.ID, err)
	}
	for _, u := range ev.UpdatingEvents {
		if _, ok := registry[u.Type]; ok {
			if err := Compile(u, store); err != nil {
				return err
			}
		}
	}
	return nil
}

// CompileAll compiles every top-level event in order.
func CompileAll(evs []plan.Event, store *envelope.Store) error {
	for _, ev := range evs {
		if err := Compile(ev, store); err != nil {
			return err
		}
	}
	return nil
}
