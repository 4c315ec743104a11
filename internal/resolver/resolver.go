// Package resolver implements the staged dependency resolver (spec.md
// §4.6): corrections, scaling/policy resets, then cross-envelope lazy
// values, each followed by a re-run of the evaluator.
package resolver

import (
	"fmt"
	"sort"

	"github.com/marksoulier/modal-canvas-flow-sub001/internal/config"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/envelope"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/evaluator"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/logging"
)

// Run executes stages 10, 20, and 30 in order against grid, re-running the
// evaluator after each stage, using hook for instrumentation.
func Run(store *envelope.Store, grid []float64, hook logging.Hook) error {
	if hook == nil {
		hook = logging.NoopHook{}
	}

	hook.OnStageStart("resolve:corrections")
	if err := resolveCorrections(store, grid); err != nil {
		return err
	}
	if err := evaluator.Run(store, grid); err != nil {
		return err
	}
	hook.OnStageDone("resolve:corrections")

	// Stage 20 — scaling/policy resets. Year-end resets are ordinary
	// LazyCorrections, already resolved in stage 10 above. ScaleFromEnvelope
	// itself is folded directly into evaluator.Run (it must be re-applied on
	// every subsequent pass, not just this one, or it would be wiped out the
	// next time Run rebuilds Results from scratch) — this re-run exists so
	// ScaleFromEnvelope's source reads stage 10's corrected values, per
	// spec.md §4.6's stage-20 definition.
	hook.OnStageStart("resolve:scaling")
	if err := evaluator.Run(store, grid); err != nil {
		return err
	}
	hook.OnStageDone("resolve:scaling")

	hook.OnStageStart("resolve:cross_envelope")
	if err := resolveCrossEnvelope(store, grid); err != nil {
		return err
	}
	if err := evaluator.Run(store, grid); err != nil {
		return err
	}
	hook.OnStageDone("resolve:cross_envelope")

	return nil
}

// indexOf returns the index of t in grid (exact match required). Neither
// the compilers nor the grid builder add lazy descriptors' times to the
// grid, so a lazy descriptor whose time is not a grid point makes the
// stage return an error.
func indexOf(grid []float64, t float64) (int, bool) {
	i := sort.SearchFloat64s(grid, t)
	if i < len(grid) && grid[i] == t {
		return i, true
	}
	return 0, false
}

// resolveCorrections is stage 10: drive each LazyCorrection's envelope to
// its target by emitting a corrective T descriptor.
func resolveCorrections(store *envelope.Store, grid []float64) error {
	eps := config.GetConfig().CorrectionEpsilon
	for _, env := range store.All() {
		for _, d := range env.Descriptors {
			lc, ok := d.(*descriptor.LazyCorrection)
			if !ok || lc.Consumed() {
				continue
			}
			idx, found := indexOf(grid, lc.TimeK)
			if !found {
				return fmt.Errorf("resolver: LazyCorrection time %v not on grid for envelope %q", lc.TimeK, env.Key)
			}
			current := env.Results[idx]
			delta := lc.Target - current
			lc.MarkConsumed()
			if absf(delta) <= eps {
				continue
			}
			dir := descriptor.In
			if delta < 0 {
				dir = descriptor.Out
			}
			env.AppendDescriptor(&descriptor.T{
				TimeK:     lc.TimeK,
				T0:        lc.TimeK,
				Params:    descriptor.ParamSet{},
				Compute:   constCompute(absf(delta)),
				Growth:    lc.Growth,
				Direction: dir,
			})
		}
	}
	return nil
}

// resolveCrossEnvelope is stage 30: LazyFromEnvelopes resolve into a
// one-shot T on their host envelope.
func resolveCrossEnvelope(store *envelope.Store, grid []float64) error {
	getValueAt := func(envelopeKey string, index int) float64 {
		e, ok := store.Lookup(envelopeKey)
		if !ok || index >= len(e.Results) {
			return 0
		}
		return e.Results[index]
	}

	for _, env := range store.All() {
		for _, d := range env.Descriptors {
			lfe, ok := d.(*descriptor.LazyFromEnvelopes)
			if !ok || lfe.Resolved() {
				continue
			}
			idx, found := indexOf(grid, lfe.TimeK)
			if !found {
				return fmt.Errorf("resolver: LazyFromEnvelopes time %v not on grid for envelope %q", lfe.TimeK, env.Key)
			}
			value := lfe.ComputeTarget(idx, getValueAt)
			lfe.MarkResolved()
			dir := descriptor.In
			if value < 0 {
				dir = descriptor.Out
			}
			env.AppendDescriptor(&descriptor.T{
				TimeK:     lfe.TimeK,
				T0:        lfe.TimeK,
				Params:    descriptor.ParamSet{},
				Compute:   constCompute(absf(value)),
				Growth:    lfe.Growth,
				Direction: dir,
			})
		}
	}
	return nil
}

func constCompute(v float64) descriptor.ComputeFunc {
	return func(map[string]float64, float64) float64 { return v }
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
