package events

import (
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/config"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/envelope"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/plan"
)

func init() {
	register("loan", CompilerFunc(loanCompiler{}.Compile))
	register("buy_house", CompilerFunc(loanCompiler{}.Compile))
	register("buy_car", CompilerFunc(loanCompiler{}.Compile))
	register("federal_subsidized_loan", CompilerFunc(loanCompiler{studentLoan: true, subsidized: true}.Compile))
	register("federal_unsubsidized_loan", CompilerFunc(loanCompiler{studentLoan: true}.Compile))
	register("private_student_loan", CompilerFunc(loanCompiler{studentLoan: true}.Compile))
}

// loanCompiler compiles a principal-plus-amortisation loan event
// (spec.md §4.7, loans category). Repayment starts at start_time for
// non-student loans and at graduation_date+180 for student loans; the
// first monthly payment falls one month after repayment starts, and only
// the unsubsidized/private kinds accrue interest during school.
type loanCompiler struct {
	studentLoan bool
	subsidized  bool
}

func (lc loanCompiler) Compile(ev plan.Event, store *envelope.Store) error {
	debt, err := store.MustLookup(ev.ParamString("from"), ev.ID)
	if err != nil {
		return err
	}
	cash, err := store.MustLookup(ev.ParamString("to"), ev.ID)
	if err != nil {
		return err
	}

	principal := ev.ParamFloat("principal")
	rate := ev.ParamFloat("rate")
	years := ev.ParamFloat("years")
	start := ev.ParamFloat("start_time")

	paymentStart := start
	if lc.studentLoan {
		paymentStart = ev.ParamFloat("graduation_date") + 180
	}

	if ev.FunctionEnabled("Principal disbursement enabled") {
		emitOneShot(debt, start, principal, descriptor.Out)
		emitOneShot(cash, start, principal, descriptor.In)
	}

	amortizedPrincipal := principal
	if lc.studentLoan && !lc.subsidized && rate > 0 && paymentStart > start {
		// Unsubsidized/private student loans accrue interest on the
		// principal while still in school; it capitalizes into the debt
		// balance at the start of repayment rather than compounding
		// indefinitely (spec.md §4.7). Computed with the same
		// daily-compound kernel f_growth itself uses, confined to
		// [start, paymentStart) and emitted as a single flat addition at
		// paymentStart — not left to the envelope's own Growth, which
		// would also wrongly keep compounding through the amortization
		// payments below and break their payoff-to-zero property.
		g, err := descriptor.FGrowth(descriptor.Growth{Kind: descriptor.KindDailyCompound, Rate: rate}, paymentStart-start, debt.Key)
		if err != nil {
			return err
		}
		accruedInterest := principal * (g - 1)
		emitOneShot(debt, paymentStart, accruedInterest, descriptor.Out)
		amortizedPrincipal += accruedInterest
	}

	if ev.FunctionEnabled("Amortisation enabled") && years > 0 {
		payment := monthlyPayment(amortizedPrincipal, rate, years)
		scheduleEnd := paymentStart + years*config.GetConfig().YearLength
		firstPayment := paymentStart + 30.4375

		// Monthly payment reduces the debt balance: 12·years payments,
		// the last one at scheduleEnd.
		emitRecurring(debt, firstPayment, scheduleEnd, 30.4375, payment, descriptor.In)

		// Cash leg: preserved exactly as specified — emitted with
		// direction "in" despite representing an outflow from cash
		// (spec.md §9 open question; not "fixed").
		emitRecurring(cash, firstPayment, scheduleEnd, 30.4375, payment, descriptor.In)

		emitLazyCorrection(debt, scheduleEnd, 0)
	}

	return nil
}
