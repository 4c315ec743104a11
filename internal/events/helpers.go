package events

import (
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/envelope"
)

// constCompute returns a ComputeFunc that ignores its arguments and always
// returns v — used for descriptors whose amount is a plain literal rather
// than a Θ-derived formula.
func constCompute(v float64) descriptor.ComputeFunc {
	return func(map[string]float64, float64) float64 { return v }
}

// emitOneShot appends a one-shot T descriptor of magnitude amount (sign
// given by dir) at timeK on env, growing with env's own growth model.
func emitOneShot(env *envelope.Envelope, timeK float64, amount float64, dir descriptor.Direction) {
	if amount < 0 {
		amount = -amount
		dir = flip(dir)
	}
	env.AppendDescriptor(&descriptor.T{
		TimeK:     timeK,
		T0:        timeK,
		Params:    descriptor.ParamSet{},
		Compute:   constCompute(amount),
		Growth:    env.Growth,
		Direction: dir,
	})
}

// emitRecurring appends an R descriptor of per-occurrence magnitude amount
// on env from start to end every freqDays.
func emitRecurring(env *envelope.Envelope, start, end, freqDays float64, amount float64, dir descriptor.Direction) {
	if amount < 0 {
		amount = -amount
		dir = flip(dir)
	}
	env.AppendDescriptor(&descriptor.R{
		T0:        start,
		Dt:        freqDays,
		Tf:        end,
		Params:    descriptor.ParamSet{},
		Compute:   constCompute(amount),
		Growth:    env.Growth,
		Direction: dir,
	})
}

// emitRecurringFunc is emitRecurring but the per-occurrence amount is
// computed from Θ(t_k) at precompute time rather than fixed up front —
// used by jobs (salary schedules) and inflation-updating flows.
func emitRecurringFunc(env *envelope.Envelope, start, end, freqDays float64, params descriptor.ParamSet, compute descriptor.ComputeFunc, dir descriptor.Direction) {
	env.AppendDescriptor(&descriptor.R{
		T0:        start,
		Dt:        freqDays,
		Tf:        end,
		Params:    params,
		Compute:   compute,
		Growth:    env.Growth,
		Direction: dir,
	})
}

// emitOneShotFunc is emitOneShot but amount is computed from Θ at
// precompute time.
func emitOneShotFunc(env *envelope.Envelope, timeK float64, params descriptor.ParamSet, compute descriptor.ComputeFunc, dir descriptor.Direction) {
	env.AppendDescriptor(&descriptor.T{
		TimeK:     timeK,
		T0:        timeK,
		Params:    params,
		Compute:   compute,
		Growth:    env.Growth,
		Direction: dir,
	})
}

// emitImpulse appends a no-growth spike at timeK.
func emitImpulse(env *envelope.Envelope, timeK float64, amount float64, dir descriptor.Direction) {
	if amount < 0 {
		amount = -amount
		dir = flip(dir)
	}
	env.AppendDescriptor(&descriptor.Impulse{
		TimeK:     timeK,
		T0:        timeK,
		Params:    descriptor.ParamSet{},
		Compute:   constCompute(amount),
		Direction: dir,
	})
}

// emitLazyCorrection schedules a drive-to-target correction resolved in
// stage 10.
func emitLazyCorrection(env *envelope.Envelope, timeK, target float64) {
	env.AppendDescriptor(&descriptor.LazyCorrection{
		TimeK:  timeK,
		Target: target,
		Growth: env.Growth,
	})
}

func flip(d descriptor.Direction) descriptor.Direction {
	if d == descriptor.In {
		return descriptor.Out
	}
	return descriptor.In
}

// endTimeOr returns endTime if it is positive, otherwise openEndedHorizon, a
// very large horizon standing in for "no end" — the grid builder's own end_day
// still bounds actual evaluation, so this only needs to exceed any
// realistic simulation horizon.
const openEndedHorizon = 1e9

func endTimeOr(endTime float64) float64 {
	if endTime <= 0 {
		return openEndedHorizon
	}
	return endTime
}
