// Package plan holds the input types the core consumes: Plan, Envelope,
// Event, and Schema, plus the validation that turns malformed input into a
// simerr.SchemaValidation error before compilation ever starts.
package plan

import "encoding/json"

// Plan is the top-level simulation input (spec.md §6).
type Plan struct {
	BirthDate          string         `json:"birth_date"`
	AdjustForInflation bool           `json:"adjust_for_inflation"`
	Envelopes          []EnvelopeSpec `json:"envelopes"`
	Events             []Event        `json:"events"`
}

// EnvelopeSpec is an envelope as declared by a plan.
type EnvelopeSpec struct {
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Growth           string  `json:"growth"`
	Rate             float64 `json:"rate"`
	DaysOfUsefulness float64 `json:"days_of_usefulness,omitempty"`
}

// Event is a plan event: a type, its parameters, per-descriptor enable
// flags, and any nested updating events (raises, step changes, etc.).
type Event struct {
	ID             string                 `json:"id"`
	Type           string                 `json:"type"`
	IsRecurring    bool                   `json:"is_recurring"`
	Parameters     map[string]interface{} `json:"parameters"`
	EventFunctions map[string]bool        `json:"event_functions"`
	UpdatingEvents []Event                `json:"updating_events,omitempty"`
}

// FunctionEnabled reports whether the named event_functions flag is set,
// defaulting to true when absent (spec.md §4.7: "gates each emitted
// descriptor behind the corresponding event_functions flag (default
// enabled)").
func (e Event) FunctionEnabled(name string) bool {
	v, ok := e.EventFunctions[name]
	if !ok {
		return true
	}
	return v
}

// ParamFloat reads a numeric parameter, returning 0 if absent or not a
// number (json.Unmarshal decodes untyped numbers as float64).
func (e Event) ParamFloat(name string) float64 {
	v, ok := e.Parameters[name]
	if !ok {
		return 0
	}
	f, _ := v.(float64)
	return f
}

// ParamString reads a string parameter, returning "" if absent.
func (e Event) ParamString(name string) string {
	v, ok := e.Parameters[name]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// ParamBool reads a boolean parameter, returning false if absent.
func (e Event) ParamBool(name string) bool {
	v, ok := e.Parameters[name]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// SchemaEventParameter describes one parameter slot of a schema event
// definition.
type SchemaEventParameter struct {
	Type     string `json:"type"`
	Editable bool   `json:"editable,omitempty"`
}

// SchemaEvent describes the shape of one event type.
type SchemaEvent struct {
	Type           string                  `json:"type"`
	Parameters     []SchemaEventParameter  `json:"parameters"`
	UpdatingEvents []SchemaEvent           `json:"updating_events,omitempty"`
}

// Schema describes the set of valid categories, the inflation rate, and
// the shape of every event type a plan may reference.
type Schema struct {
	Categories    []string      `json:"categories"`
	InflationRate float64       `json:"inflation_rate"`
	Events        []SchemaEvent `json:"events"`
}

// Parse decodes a plan from JSON bytes.
func Parse(data []byte) (Plan, error) {
	var p Plan
	err := json.Unmarshal(data, &p)
	return p, err
}

// ParseSchema decodes a schema from JSON bytes.
func ParseSchema(data []byte) (Schema, error) {
	var s Schema
	err := json.Unmarshal(data, &s)
	return s, err
}
