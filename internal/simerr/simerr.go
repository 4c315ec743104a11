// Package simerr defines the error taxonomy used across the simulation
// core: a small closed set of typed errors that the resolver and event
// compilers wrap with context before surfacing them to the caller.
package simerr

import "fmt"

// Kind classifies a simulation error for callers that want to branch on it
// (e.g. to decide whether a condition is recoverable) without parsing
// error strings.
type Kind string

const (
	// KindSchemaValidation covers malformed plans: missing/unexpected
	// parameters, duplicate ids, unknown envelope references. The run
	// refuses to start.
	KindSchemaValidation Kind = "schema_validation"
	// KindUnknownGrowthType is raised by f_growth for an unrecognised
	// growth kind.
	KindUnknownGrowthType Kind = "unknown_growth_type"
	// KindInvalidGrowthParameter covers e.g. non-positive
	// days_of_usefulness on a Depreciation (Days) envelope.
	KindInvalidGrowthParameter Kind = "invalid_growth_parameter"
	// KindMissingEnvelope is raised when a descriptor references an
	// envelope key that does not exist in the store.
	KindMissingEnvelope Kind = "missing_envelope"
	// KindNumericFailure marks a NaN/Inf encountered in a result cell.
	// It is a warning-class condition; the cell is clamped to 0 and the
	// run continues.
	KindNumericFailure Kind = "numeric_failure"
)

// Error is a typed simulation error carrying enough context (envelope key,
// descriptor kind, event id) to produce the "clear diagnostic" spec.md §7
// requires on abort.
type Error struct {
	Kind    Kind
	Context map[string]string
	Err     error
}

func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s%s: %v", e.Kind, formatContext(e.Context), e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func formatContext(ctx map[string]string) string {
	out := ""
	for _, k := range []string{"envelope", "event_id", "descriptor", "field"} {
		if v, ok := ctx[k]; ok {
			out += fmt.Sprintf(" [%s=%s]", k, v)
		}
	}
	return out
}

// New wraps err with kind and optional context fields.
func New(kind Kind, err error, ctx map[string]string) *Error {
	return &Error{Kind: kind, Context: ctx, Err: err}
}

// MissingEnvelope builds a KindMissingEnvelope error for envelope key key
// referenced from the given event/descriptor.
func MissingEnvelope(key, eventID string) *Error {
	return New(KindMissingEnvelope, fmt.Errorf("envelope %q does not exist", key), map[string]string{
		"envelope": key,
		"event_id": eventID,
	})
}

// UnknownGrowthType builds a KindUnknownGrowthType error.
func UnknownGrowthType(growth string, envelope string) *Error {
	return New(KindUnknownGrowthType, fmt.Errorf("unknown growth type %q", growth), map[string]string{
		"envelope": envelope,
	})
}

// InvalidGrowthParameter builds a KindInvalidGrowthParameter error.
func InvalidGrowthParameter(envelope, field string, err error) *Error {
	return New(KindInvalidGrowthParameter, err, map[string]string{
		"envelope": envelope,
		"field":    field,
	})
}

// SchemaValidation builds a KindSchemaValidation error.
func SchemaValidation(err error) *Error {
	return New(KindSchemaValidation, err, nil)
}
