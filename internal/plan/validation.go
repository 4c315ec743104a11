package plan

import (
	"fmt"

	"github.com/marksoulier/modal-canvas-flow-sub001/internal/simerr"
)

// Validate checks the structural invariants spec.md §7 requires before the
// core will attempt to compile a plan: no empty or duplicate envelope
// names, positive days_of_usefulness on "depreciation_days" envelopes, no
// empty or duplicate event ids (nested updating events included), and
// every event type known to the schema when the schema lists any. Growth
// labels and envelope-reference parameters are not checked here.
func Validate(p Plan, s Schema) error {
	seenEnvelopes := make(map[string]bool, len(p.Envelopes))
	for _, e := range p.Envelopes {
		if e.Name == "" {
			return simerr.SchemaValidation(fmt.Errorf("envelope with empty name"))
		}
		if seenEnvelopes[e.Name] {
			return simerr.SchemaValidation(fmt.Errorf("duplicate envelope name %q", e.Name))
		}
		seenEnvelopes[e.Name] = true
		if e.Growth == "depreciation_days" && e.DaysOfUsefulness <= 0 {
			return simerr.SchemaValidation(fmt.Errorf(
				"envelope %q: depreciation_days requires positive days_of_usefulness", e.Name))
		}
	}

	knownTypes := make(map[string]bool, len(s.Events))
	for _, se := range s.Events {
		knownTypes[se.Type] = true
	}

	seenIDs := make(map[string]bool, len(p.Events))
	for _, ev := range p.Events {
		if err := validateEvent(ev, knownTypes, seenIDs); err != nil {
			return err
		}
	}
	return nil
}

func validateEvent(ev Event, knownTypes map[string]bool, seenIDs map[string]bool) error {
	if ev.ID == "" {
		return simerr.SchemaValidation(fmt.Errorf("event with empty id"))
	}
	if seenIDs[ev.ID] {
		return simerr.SchemaValidation(fmt.Errorf("duplicate event id %q", ev.ID))
	}
	seenIDs[ev.ID] = true
	if len(knownTypes) > 0 && !knownTypes[ev.Type] {
		return simerr.SchemaValidation(fmt.Errorf("event %q: unknown type %q", ev.ID, ev.Type))
	}
	for _, u := range ev.UpdatingEvents {
		if err := validateEvent(u, knownTypes, seenIDs); err != nil {
			return err
		}
	}
	return nil
}
