package events

import (
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/config"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/envelope"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/plan"
)

func init() {
	register("get_job", CompilerFunc(jobCompiler{hourly: false}.Compile))
	register("get_wage_job", CompilerFunc(jobCompiler{hourly: true}.Compile))
}

// jobCompiler compiles get_job/get_wage_job: a recurring pay deposit on
// the cash envelope (f_salary/f_wage as the R's compute callback), plus
// parallel recurring legs into taxable income, withholdings, and 401(k)
// contribution (with employer match) envelopes (spec.md §4.7 jobs
// category).
type jobCompiler struct {
	hourly bool
}

func (jc jobCompiler) Compile(ev plan.Event, store *envelope.Store) error {
	cash, err := store.MustLookup(ev.ParamString("to"), ev.ID)
	if err != nil {
		return err
	}

	start := ev.ParamFloat("start_time")
	end := endTimeOr(ev.ParamFloat("end_time"))
	payPeriod := ev.ParamFloat("pay_frequency_days")
	if payPeriod <= 0 {
		payPeriod = 14 // biweekly default
	}

	params := descriptor.ParamSet{
		"rate":  descriptor.Constant(ev.ParamFloat(jc.rateParam())),
		"hours": descriptor.Constant(ev.ParamFloat("hours_per_period")),
		"pct401k": descriptor.Constant(ev.ParamFloat("contribution_401k_pct")),
		"employer_match_pct": descriptor.Constant(ev.ParamFloat("employer_match_pct")),
		"federal_pct": descriptor.Constant(ev.ParamFloat("federal_withholding_pct")),
		"state_pct": descriptor.Constant(ev.ParamFloat("state_withholding_pct")),
		"local_pct": descriptor.Constant(ev.ParamFloat("local_withholding_pct")),
	}

	for _, u := range ev.UpdatingEvents {
		jc.applyUpdatingEvent(u, params)
	}

	grossCompute := jc.grossCompute(payPeriod)
	fourZeroOneKCompute := func(theta map[string]float64, elapsed float64) float64 {
		return grossCompute(theta, elapsed) * theta["pct401k"]
	}
	federalCompute := func(theta map[string]float64, elapsed float64) float64 {
		return grossCompute(theta, elapsed) * theta["federal_pct"]
	}
	stateCompute := func(theta map[string]float64, elapsed float64) float64 {
		return grossCompute(theta, elapsed) * theta["state_pct"]
	}
	localCompute := func(theta map[string]float64, elapsed float64) float64 {
		return grossCompute(theta, elapsed) * theta["local_pct"]
	}
	employerMatchCompute := func(theta map[string]float64, elapsed float64) float64 {
		return grossCompute(theta, elapsed) * theta["pct401k"] * theta["employer_match_pct"]
	}

	if ev.FunctionEnabled("Pay enabled") {
		netCompute := func(theta map[string]float64, elapsed float64) float64 {
			gross := grossCompute(theta, elapsed)
			return gross - gross*theta["pct401k"] - gross*theta["federal_pct"] -
				gross*theta["state_pct"] - gross*theta["local_pct"]
		}
		emitRecurringFunc(cash, start, end, payPeriod, params, netCompute, descriptor.In)
	}
	if ev.FunctionEnabled("Taxable income tracking enabled") {
		taxable := store.Get(ev.ParamString("taxable_income_key"))
		emitRecurringFunc(taxable, start, end, payPeriod, params, grossCompute, descriptor.In)
	}
	if ev.FunctionEnabled("401k contribution enabled") && ev.ParamString("p_401k_key") != "" {
		p401k := store.Get(ev.ParamString("p_401k_key"))
		emitRecurringFunc(p401k, start, end, payPeriod, params, fourZeroOneKCompute, descriptor.In)
		emitRecurringFunc(p401k, start, end, payPeriod, params, employerMatchCompute, descriptor.In)
	}
	if ev.FunctionEnabled("Withholding tracking enabled") {
		if key := ev.ParamString("federal_withholdings_key"); key != "" {
			emitRecurringFunc(store.Get(key), start, end, payPeriod, params, federalCompute, descriptor.In)
		}
		if key := ev.ParamString("state_withholdings_key"); key != "" {
			emitRecurringFunc(store.Get(key), start, end, payPeriod, params, stateCompute, descriptor.In)
		}
		if key := ev.ParamString("local_withholdings_key"); key != "" {
			emitRecurringFunc(store.Get(key), start, end, payPeriod, params, localCompute, descriptor.In)
		}
	}

	for _, u := range ev.UpdatingEvents {
		if u.Type == "get_a_bonus" {
			emitOneShot(cash, u.ParamFloat("start_time"), u.ParamFloat("amount"), descriptor.In)
		}
	}
	return nil
}

func (jc jobCompiler) rateParam() string {
	if jc.hourly {
		return "hourly_rate"
	}
	return "annual_salary"
}

// grossCompute is f_salary (salary/pay_periods_per_year, where
// pay_periods_per_year is the year length divided by payPeriod) or f_wage
// (rate*hours), matching spec.md §4.7's "f_salary/f_wage as compute
// callbacks".
func (jc jobCompiler) grossCompute(payPeriod float64) descriptor.ComputeFunc {
	if jc.hourly {
		return func(theta map[string]float64, elapsed float64) float64 {
			return theta["rate"] * theta["hours"]
		}
	}
	periodsPerYear := config.GetConfig().YearLength / payPeriod
	return func(theta map[string]float64, elapsed float64) float64 {
		return theta["rate"] / periodsPerYear
	}
}

func (jc jobCompiler) applyUpdatingEvent(u plan.Event, params descriptor.ParamSet) {
	at := u.ParamFloat("start_time")
	switch u.Type {
	case "get_a_raise", "reoccurring_raise":
		applyUpdateAmount(params, "rate", at, u.ParamFloat("new_rate"))
	case "change_hours":
		applyUpdateAmount(params, "hours", at, u.ParamFloat("new_hours"))
	case "change_401k_contribution":
		applyUpdateAmount(params, "pct401k", at, u.ParamFloat("new_pct"))
	case "change_employer_match":
		applyUpdateAmount(params, "employer_match_pct", at, u.ParamFloat("new_pct"))
	case "get_a_bonus":
		// handled as a separate one-shot, not a Θ mutation; see below.
	}
}
