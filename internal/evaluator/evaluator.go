// Package evaluator runs the precompute and vector-evaluation stages
// (spec.md §4.4–§4.5) across every envelope in a store, against a fixed
// time grid.
package evaluator

import (
	"fmt"

	"github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/envelope"
	"gonum.org/v1/gonum/floats"
)

// Run precomputes and evaluates every envelope's descriptors against grid,
// (re)populating each envelope's Results from scratch. It is safe to call
// repeatedly — the resolver re-invokes it after each stage once more
// descriptors have been resolved into T/R/Impulse form (spec.md §4.6).
//
// ScaleFromEnvelope is folded in here rather than left for the resolver to
// apply in place: because Results is rebuilt from nothing on every call,
// any contribution applied after Run returns would be wiped out the next
// time Run runs (which happens after every subsequent resolver stage). Run
// reads the source envelope's current Results, which by stage 20 already
// reflect stage 10's corrections (spec.md §4.5/§4.6: "the source envelope
// must have been evaluated in a prior stage").
func Run(store *envelope.Store, grid []float64) error {
	for _, env := range store.All() {
		out := make([]float64, len(grid))
		for _, d := range env.Descriptors {
			sfe, ok := d.(*descriptor.ScaleFromEnvelope)
			if !ok {
				descriptor.Precompute(d, grid)
				if err := descriptor.Evaluate(d, grid, out); err != nil {
					return err
				}
				continue
			}
			source, ok := store.Lookup(sfe.Source)
			if !ok {
				return fmt.Errorf("evaluator: ScaleFromEnvelope source %q not found for envelope %q", sfe.Source, env.Key)
			}
			applyScaleFromEnvelope(sfe, grid, source.Results, out)
		}
		env.Results = out
	}
	return nil
}

// applyScaleFromEnvelope adds s's contribution into out, reading from
// source's already-computed series. Uses gonum's floats package to
// vectorise the multiply-accumulate the way spec.md §4.5 describes
// ("vector CPU evaluator").
func applyScaleFromEnvelope(s *descriptor.ScaleFromEnvelope, grid []float64, sourceResults []float64, out []float64) {
	sign := s.Direction.Signed()
	scaled := make([]float64, len(grid))
	copy(scaled, sourceResults)
	floats.Scale(sign*s.Coeff, scaled)
	for j, t := range grid {
		if t >= s.UntilDay {
			scaled[j] = 0
		}
	}
	floats.Add(out, scaled)
}

// SumInto adds contrib element-wise into dst, both of length len(grid).
// Thin gonum wrapper kept as a single call site so callers don't need to
// import gonum/floats directly for this one operation.
func SumInto(dst, contrib []float64) {
	floats.Add(dst, contrib)
}
