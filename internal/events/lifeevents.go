package events

import (
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/envelope"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/plan"
)

func init() {
	register("have_kid", CompilerFunc(compileRecurringCost("Expense enabled")))
	register("marriage", CompilerFunc(compileRecurringCost("Expense enabled")))
	register("divorce", CompilerFunc(compileRecurringCost("Expense enabled")))
	register("buy_home_insurance", CompilerFunc(compileRecurringCost("Premium enabled")))
	register("buy_health_insurance", CompilerFunc(compileRecurringCost("Premium enabled")))
	register("buy_life_insurance", CompilerFunc(compileRecurringCost("Premium enabled")))
	register("start_business", CompilerFunc(compileStartBusiness))
	register("pass_away", CompilerFunc(compilePassAway))
}

// compileRecurringCost handles the common shape of a life event that adds
// a recurring outflow from cash: have_kid (childcare), marriage/divorce
// (joint-expense delta), and the buy_*_insurance premiums.
func compileRecurringCost(flag string) func(ev plan.Event, store *envelope.Store) error {
	return func(ev plan.Event, store *envelope.Store) error {
		if !ev.FunctionEnabled(flag) {
			return nil
		}
		from, err := store.MustLookup(ev.ParamString("from"), ev.ID)
		if err != nil {
			return err
		}
		start := ev.ParamFloat("start_time")
		end := endTimeOr(ev.ParamFloat("end_time"))
		freq := ev.ParamFloat("frequency_days")
		if freq <= 0 {
			freq = 30.4375
		}
		amount := ev.ParamFloat("amount")
		if amount == 0 {
			return nil
		}
		if ev.IsRecurring {
			emitRecurring(from, start, end, freq, amount, descriptor.Out)
		} else {
			emitOneShot(from, start, amount, descriptor.Out)
		}
		return nil
	}
}

// compileStartBusiness emits recurring net business income into cash and,
// when enabled, a parallel leg into the taxable-income tracking envelope
// (self-employment income is taxed like wage income at year-end per the
// tax subsystem).
func compileStartBusiness(ev plan.Event, store *envelope.Store) error {
	if !ev.FunctionEnabled("Income enabled") {
		return nil
	}
	cash, err := store.MustLookup(ev.ParamString("to"), ev.ID)
	if err != nil {
		return err
	}
	start := ev.ParamFloat("start_time")
	end := endTimeOr(ev.ParamFloat("end_time"))
	freq := ev.ParamFloat("frequency_days")
	if freq <= 0 {
		freq = 30.4375
	}
	amount := ev.ParamFloat("amount")
	emitRecurring(cash, start, end, freq, amount, descriptor.In)

	if ev.FunctionEnabled("Taxable income tracking enabled") {
		if key := ev.ParamString("taxable_income_key"); key != "" {
			emitRecurring(store.Get(key), start, end, freq, amount, descriptor.In)
		}
	}
	return nil
}

// compilePassAway iterates every declared envelope and drives its balance
// to 0 the day after death (spec.md §4.7: "pass_away iterates all
// envelopes and emits LazyCorrection{target=0} on each at death_time+1").
func compilePassAway(ev plan.Event, store *envelope.Store) error {
	deathTime := ev.ParamFloat("death_time")
	for _, env := range store.All() {
		emitLazyCorrection(env, deathTime+1, 0)
	}
	return nil
}
