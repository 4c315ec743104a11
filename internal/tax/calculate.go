package tax

import (
	"github.com/shopspring/decimal"
)

// Params is calculateTaxes' input contract (spec.md §4.8): the resolved
// values of every envelope the tax algorithm reads, plus the filer's
// status, dependent count, and age at the evaluation point.
type Params struct {
	FilingStatus FilingStatus
	Dependents   int
	Age          float64

	TaxableIncome         float64
	P401kWithdraw         float64
	P401kWithdrawWithhold float64
	RothIRAWithdraw       float64
	RothIRAPrinciple      float64
	ShortTermCapitalGains float64
	LongTermCapitalGains  float64

	FederalWithholding float64
	StateWithholding   float64
	LocalWithholding   float64
	IRAContributions   float64

	// StandardDeduction is an optional additional subtraction from
	// taxable income before bracket integration, off by default to keep
	// spec.md §8's literal scenarios bit-exact; callers that want it set
	// it explicitly (see SPEC_FULL.md §3).
	StandardDeduction float64

	// FICAEnabled gates the optional self-employment/FICA surtax
	// described in SPEC_FULL.md §3, default false.
	FICAEnabled       bool
	SelfEmploymentIncome float64
}

const dependentCredit = 2000.0
const under59HalfPenaltyRate = 0.10

// CalculateTaxes implements calculateTaxes(params) from spec.md §4.8.
func CalculateTaxes(p Params) float64 {
	taxableIncome := p.TaxableIncome + p.P401kWithdraw + p.ShortTermCapitalGains
	if p.Age <= 59.5 && p.RothIRAWithdraw > p.RothIRAPrinciple {
		taxableIncome += p.RothIRAWithdraw - p.RothIRAPrinciple
	}

	ordinaryIncome := taxableIncome - p.StandardDeduction
	if ordinaryIncome < 0 {
		ordinaryIncome = 0
	}

	federal := integrate(ordinaryIncome, FederalBrackets(p.FilingStatus))
	state := ordinaryIncome * StateFlatRate
	local := ordinaryIncome * LocalFlatRate
	ltcg := integrate(p.LongTermCapitalGains, LTCGBrackets(p.FilingStatus))

	total := federal + state + local + ltcg

	total -= p.FederalWithholding + p.StateWithholding + p.LocalWithholding +
		p.P401kWithdrawWithhold + p.IRAContributions
	total -= float64(p.Dependents) * dependentCredit

	if p.Age < 59.5 {
		total += under59HalfPenaltyRate * (p.P401kWithdraw + p.RothIRAWithdraw)
	}

	if p.FICAEnabled {
		total += calculateFICA(p.SelfEmploymentIncome)
	}

	if total < 0 {
		total = 0
	}
	return roundToCent(total)
}

// socialSecurityWageBase2023, medicareRate, and additionalMedicareRate
// ground the optional FICA/self-employment surtax in the teacher's
// CalculateFICATaxes/CalculateSelfEmploymentTax constants.
const (
	socialSecurityRate        = 0.124 // combined employer+employee, self-employment
	socialSecurityWageBase2023 = 160200.0
	medicareRate              = 0.029
	additionalMedicareRate    = 0.009
	additionalMedicareThreshold = 200000.0
)

func calculateFICA(selfEmploymentIncome float64) float64 {
	if selfEmploymentIncome <= 0 {
		return 0
	}
	netEarnings := selfEmploymentIncome * 0.9235
	ss := netEarnings
	if ss > socialSecurityWageBase2023 {
		ss = socialSecurityWageBase2023
	}
	tax := ss*socialSecurityRate + netEarnings*medicareRate
	if netEarnings > additionalMedicareThreshold {
		tax += (netEarnings - additionalMedicareThreshold) * additionalMedicareRate
	}
	return tax
}

// roundToCent uses shopspring/decimal for the final currency rounding of
// the tax subsystem's output, the way santoshpalla27-Terraform-cost-estimation
// rounds its dollar totals — the bracket integration above stays float64
// throughout, matching spec.md's floating-point formulas.
func roundToCent(v float64) float64 {
	d := decimal.NewFromFloat(v).Round(2)
	f, _ := d.Float64()
	return f
}
