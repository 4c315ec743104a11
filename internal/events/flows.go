package events

import (
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/envelope"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/plan"
)

func init() {
	register("inflow", CompilerFunc(compileFlow(descriptor.In)))
	register("outflow", CompilerFunc(compileFlow(descriptor.Out)))
	register("gift", CompilerFunc(compileFlow(descriptor.In)))
	register("purchase", CompilerFunc(compileFlow(descriptor.Out)))
	register("buy_groceries", CompilerFunc(compileFlow(descriptor.Out)))
	register("receive_government_aid", CompilerFunc(compileFlow(descriptor.In)))
	register("reoccuring_spending_inflation_adjusted", CompilerFunc(compileInflationAdjustedSpend))
	register("monthly_budgeting", CompilerFunc(compileMonthlyBudgeting))
}

// compileFlow builds a one-shot or recurring T/R on a single envelope, in
// the given direction, gated by the "Flow enabled" event_functions flag
// (spec.md §4.7 flows category).
func compileFlow(dir descriptor.Direction) func(ev plan.Event, store *envelope.Store) error {
	return func(ev plan.Event, store *envelope.Store) error {
		if !ev.FunctionEnabled("Flow enabled") {
			return nil
		}
		env, err := store.MustLookup(ev.ParamString("to_from"), ev.ID)
		if err != nil {
			env, err = store.MustLookup(ev.ParamString("to"), ev.ID)
		}
		if err != nil {
			env, err = store.MustLookup(ev.ParamString("from"), ev.ID)
		}
		if err != nil {
			return err
		}

		params := descriptor.ParamSet{"amount": descriptor.Constant(ev.ParamFloat("amount"))}
		start := ev.ParamFloat("start_time")

		for _, u := range ev.UpdatingEvents {
			applyUpdatingFlowEvent(u, params, start)
		}

		if ev.IsRecurring {
			end := endTimeOr(ev.ParamFloat("end_time"))
			freq := ev.ParamFloat("frequency_days")
			if freq <= 0 {
				freq = 30.4375
			}
			emitRecurringFunc(env, start, end, freq, params, readAmount("amount"), dir)
		} else {
			emitOneShotFunc(env, start, params, readAmount("amount"), dir)
		}
		return nil
	}
}

// applyUpdatingFlowEvent mutates params in place for an update_amount or
// step_amount sub-event; unknown updating types are ignored (forward
// compatible with schema-declared sub-events this compiler doesn't model).
func applyUpdatingFlowEvent(u plan.Event, params descriptor.ParamSet, parentStart float64) {
	switch u.Type {
	case "update_amount":
		at := u.ParamFloat("start_time")
		applyUpdateAmount(params, "amount", at, u.ParamFloat("new_amount"))
	case "step_amount":
		start := u.ParamFloat("start_time")
		end := u.ParamFloat("end_time")
		hasEnd := end > 0
		applyStepAmount(params, "amount", start, end, hasEnd, u.ParamFloat("delta"), u.ParamFloat("period"))
	}
}

// compileInflationAdjustedSpend handles reoccuring_spending_inflation_adjusted:
// a recurring outflow whose per-occurrence amount grows with the event's
// own inflation_rate from its start time.
func compileInflationAdjustedSpend(ev plan.Event, store *envelope.Store) error {
	if !ev.FunctionEnabled("Flow enabled") {
		return nil
	}
	env, err := store.MustLookup(ev.ParamString("from"), ev.ID)
	if err != nil {
		return err
	}
	start := ev.ParamFloat("start_time")
	end := endTimeOr(ev.ParamFloat("end_time"))
	freq := ev.ParamFloat("frequency_days")
	if freq <= 0 {
		freq = 30.4375
	}
	params := descriptor.ParamSet{
		"amount": descriptor.InflationAdjusted{
			Base:   ev.ParamFloat("amount"),
			RInf:   ev.ParamFloat("inflation_rate"),
			TStart: start,
		},
	}
	emitRecurringFunc(env, start, end, freq, params, readAmount("amount"), descriptor.Out)
	return nil
}

// budgetCategories are the monthly_budgeting event's recognised spend
// buckets; each is an optional parameter.
var budgetCategories = []string{"housing", "groceries", "transportation", "entertainment", "other"}

// compileMonthlyBudgeting handles monthly_budgeting: one recurring outflow
// per non-zero category, each optionally growing with inflation when
// "Update with inflation" is enabled (spec.md §8 scenario 6).
func compileMonthlyBudgeting(ev plan.Event, store *envelope.Store) error {
	if !ev.FunctionEnabled("Flow enabled") {
		return nil
	}
	env, err := store.MustLookup(ev.ParamString("from"), ev.ID)
	if err != nil {
		return err
	}
	start := ev.ParamFloat("start_time")
	end := endTimeOr(ev.ParamFloat("end_time"))
	freq := ev.ParamFloat("frequency_days")
	if freq <= 0 {
		freq = 30.4375
	}
	updateWithInflation := ev.FunctionEnabled("Update with inflation")
	inflationRate := ev.ParamFloat("inflation_rate")

	for _, cat := range budgetCategories {
		amount := ev.ParamFloat(cat)
		if amount == 0 {
			continue
		}
		var field descriptor.ParamFunc = descriptor.Constant(amount)
		if updateWithInflation {
			field = descriptor.InflationAdjusted{Base: amount, RInf: inflationRate, TStart: start}
		}
		params := descriptor.ParamSet{"amount": field}
		emitRecurringFunc(env, start, end, freq, params, readAmount("amount"), descriptor.Out)
	}
	return nil
}
