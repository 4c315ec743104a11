// Package envelope holds the named accounts (Envelope) that descriptors
// accumulate into, and the append-only store event compilers write to.
package envelope

import (
	"fmt"

	"github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/simerr"
)

// Envelope is a named account: a growth model plus the list of algebra
// primitives (spec.md §4.2) that have been appended to it by event
// compilers. Results is filled in once the evaluator has run.
type Envelope struct {
	Key         string
	Growth      descriptor.Growth
	Descriptors []descriptor.Descriptor
	Results     []float64
}

// Store is the append-only collection of envelopes a plan compiles into.
// Event compilers look envelopes up by key and call AppendDescriptor;
// no compiler is permitted to read Results directly (that privilege
// belongs to ScaleFromEnvelope in evaluator.Run and LazyFromEnvelopes in
// the resolver stages).
type Store struct {
	byKey map[string]*Envelope
	order []string
}

// NewStore returns an empty envelope store.
func NewStore() *Store {
	return &Store{byKey: make(map[string]*Envelope)}
}

// Declare registers an envelope with the given key and growth model. It is
// an error to declare the same key twice.
func (s *Store) Declare(key string, g descriptor.Growth) (*Envelope, error) {
	if _, ok := s.byKey[key]; ok {
		return nil, fmt.Errorf("envelope: duplicate declaration of %q", key)
	}
	if g.Kind == descriptor.KindDepreciationDays && g.DaysOfUsefulness <= 0 {
		return nil, simerr.InvalidGrowthParameter(key, "days_of_usefulness",
			fmt.Errorf("must be positive"))
	}
	e := &Envelope{Key: key, Growth: g}
	s.byKey[key] = e
	s.order = append(s.order, key)
	return e, nil
}

// Get looks up an envelope by key, declaring it on the fly with
// descriptor.KindNone growth if it does not yet exist. Event compilers use
// this for well-known tracking envelopes (e.g. taxable_income) that may or
// may not have been explicitly declared by the plan.
func (s *Store) Get(key string) *Envelope {
	if e, ok := s.byKey[key]; ok {
		return e
	}
	e := &Envelope{Key: key}
	s.byKey[key] = e
	s.order = append(s.order, key)
	return e
}

// Lookup returns an envelope and whether it exists, without creating it.
func (s *Store) Lookup(key string) (*Envelope, bool) {
	e, ok := s.byKey[key]
	return e, ok
}

// MustLookup returns an envelope or a MissingEnvelope error tied to the
// event that needed it.
func (s *Store) MustLookup(key, eventID string) (*Envelope, error) {
	e, ok := s.byKey[key]
	if !ok {
		return nil, simerr.MissingEnvelope(key, eventID)
	}
	return e, nil
}

// AppendDescriptor adds a descriptor to an envelope's list. Compilers call
// this instead of mutating Envelope.Descriptors directly so the store can
// later enforce the "never read Results eagerly" invariant in one place.
func (e *Envelope) AppendDescriptor(d descriptor.Descriptor) {
	e.Descriptors = append(e.Descriptors, d)
}

// Keys returns envelope keys in declaration order, for deterministic
// iteration during precompute/evaluate/resolve.
func (s *Store) Keys() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// All returns every envelope in declaration order.
func (s *Store) All() []*Envelope {
	out := make([]*Envelope, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.byKey[k])
	}
	return out
}
