package events

import "github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"

// applyUpdateAmount implements an "update_amount" updating sub-event: from
// its at-time onward, field takes the fixed value newAmount (spec.md §4.7:
// "Updating sub-events of type update_amount ... mutate Θ via γ").
func applyUpdateAmount(params descriptor.ParamSet, field string, at, newAmount float64) {
	params[field] = descriptor.Gamma(params, descriptor.ParamSet{
		field: descriptor.Constant(newAmount),
	}, at)[field]
}

// applyStepAmount implements a "step_amount" updating sub-event: from
// start to end, field steps by delta every period days, continuing from
// whatever value the base parameter function held at start.
func applyStepAmount(params descriptor.ParamSet, field string, start, end float64, hasEnd bool, delta, period float64) {
	base, ok := params[field]
	if !ok {
		base = descriptor.Constant(0)
	}
	v0 := base.ValueAt(start)
	step := descriptor.StepAdjusted{
		V0:     v0,
		Delta:  delta,
		Period: period,
		Start:  start,
		End:    end,
		HasEnd: hasEnd,
	}
	params[field] = descriptor.Gamma(params, descriptor.ParamSet{field: step}, start)[field]
}

// readAmount returns theta[field] — the ComputeFunc every flow/job
// descriptor uses once its amount has (possibly) been made time-varying by
// update_amount/step_amount sub-events.
func readAmount(field string) descriptor.ComputeFunc {
	return func(theta map[string]float64, elapsed float64) float64 {
		return theta[field]
	}
}
