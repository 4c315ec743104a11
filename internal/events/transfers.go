package events

import (
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/envelope"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/plan"
)

func init() {
	register("transfer_money", CompilerFunc(compileTransfer))
	register("roth_ira_contribution", CompilerFunc(compileTransfer))
	register("invest_money", CompilerFunc(compileTransfer))
	register("high_yield_savings_account", CompilerFunc(compileTransfer))
	register("retirement", CompilerFunc(compileTransfer))
}

// compileTransfer emits a paired outflow on "from" and inflow on "to",
// each independently gated by its own event_functions flag, as one-shot or
// recurring depending on ev.IsRecurring (spec.md §4.7 transfers category).
func compileTransfer(ev plan.Event, store *envelope.Store) error {
	start := ev.ParamFloat("start_time")
	end := endTimeOr(ev.ParamFloat("end_time"))
	freq := ev.ParamFloat("frequency_days")
	if freq <= 0 {
		freq = 30.4375
	}
	amount := ev.ParamFloat("amount")

	if ev.FunctionEnabled("Outflow enabled") {
		from, err := store.MustLookup(ev.ParamString("from"), ev.ID)
		if err != nil {
			return err
		}
		params := descriptor.ParamSet{"amount": descriptor.Constant(amount)}
		for _, u := range ev.UpdatingEvents {
			applyUpdatingFlowEvent(u, params, start)
		}
		if ev.IsRecurring {
			emitRecurringFunc(from, start, end, freq, params, readAmount("amount"), descriptor.Out)
		} else {
			emitOneShotFunc(from, start, params, readAmount("amount"), descriptor.Out)
		}
	}

	if ev.FunctionEnabled("Inflow enabled") {
		to, err := store.MustLookup(ev.ParamString("to"), ev.ID)
		if err != nil {
			return err
		}
		params := descriptor.ParamSet{"amount": descriptor.Constant(amount)}
		for _, u := range ev.UpdatingEvents {
			applyUpdatingFlowEvent(u, params, start)
		}
		if ev.IsRecurring {
			emitRecurringFunc(to, start, end, freq, params, readAmount("amount"), descriptor.In)
		} else {
			emitOneShotFunc(to, start, params, readAmount("amount"), descriptor.In)
		}
	}
	return nil
}
