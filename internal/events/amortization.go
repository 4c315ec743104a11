package events

import "math"

// monthlyPayment is f_monthly_payment(P, r, y): the fixed monthly annuity
// payment for principal P at annual rate r over y years (spec.md §4.7),
// grounded on the teacher's CalculateMonthlyPayment closed-form formula.
func monthlyPayment(principal, annualRate, years float64) float64 {
	if principal <= 0 || years <= 0 {
		return 0
	}
	if annualRate <= 0 {
		return principal / (12 * years)
	}
	r := annualRate / 12
	factor := math.Pow(1+r, 12*years)
	if math.Abs(factor-1) < 1e-10 {
		return principal / (12 * years)
	}
	return principal * (r * factor) / (factor - 1)
}
