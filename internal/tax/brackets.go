// Package tax implements the bracketed US federal/state/local/LTCG tax
// subsystem (spec.md §4.8): 2023 bracket tables, progressive integration,
// withholding/credit subtraction, and the under-59½ early-withdrawal
// penalty.
package tax

import "math"

// Bracket is one marginal-rate slice of a progressive schedule; Max of
// math.Inf(1) denotes the top, unbounded bracket.
type Bracket struct {
	Min  float64
	Max  float64
	Rate float64
}

// FilingStatus selects which bracket table applies.
type FilingStatus string

const (
	Single                  FilingStatus = "single"
	MarriedFilingJointly    FilingStatus = "married_filing_jointly"
)

// federalBrackets2023 are the 2023 US federal income tax brackets
// (spec.md §6).
var federalBrackets2023 = map[FilingStatus][]Bracket{
	Single: {
		{0, 11000, 0.10},
		{11000, 44725, 0.12},
		{44725, 95375, 0.22},
		{95375, 182050, 0.24},
		{182050, 231250, 0.32},
		{231250, 578125, 0.35},
		{578125, math.Inf(1), 0.37},
	},
	MarriedFilingJointly: {
		{0, 22000, 0.10},
		{22000, 89450, 0.12},
		{89450, 190750, 0.22},
		{190750, 364200, 0.24},
		{364200, 462500, 0.32},
		{462500, 693750, 0.35},
		{693750, math.Inf(1), 0.37},
	},
}

// ltcgBrackets2023 are the 2023 long-term capital gains brackets
// (spec.md §6).
var ltcgBrackets2023 = map[FilingStatus][]Bracket{
	Single: {
		{0, 44725, 0.00},
		{44725, 492300, 0.15},
		{492300, math.Inf(1), 0.20},
	},
	MarriedFilingJointly: {
		{0, 89450, 0.00},
		{89450, 553850, 0.15},
		{553850, math.Inf(1), 0.20},
	},
}

// StateFlatRate and LocalFlatRate are the fixed non-bracketed rates
// spec.md §4.8 specifies ("State tax flat 5%; local tax flat 1%").
const (
	StateFlatRate = 0.05
	LocalFlatRate = 0.01
)

// normalizeFilingStatus falls back to Single for any status the 2023
// tables don't carry, per spec.md §4.8 ("unknown status falls back to
// Single").
func normalizeFilingStatus(status FilingStatus) FilingStatus {
	if _, ok := federalBrackets2023[status]; ok {
		return status
	}
	return Single
}

// FederalBrackets returns the 2023 federal bracket table for status.
func FederalBrackets(status FilingStatus) []Bracket {
	return federalBrackets2023[normalizeFilingStatus(status)]
}

// LTCGBrackets returns the 2023 LTCG bracket table for status.
func LTCGBrackets(status FilingStatus) []Bracket {
	return ltcgBrackets2023[normalizeFilingStatus(status)]
}

// integrate sums rate·min(income,max-min portion) across brackets, the
// standard progressive-tax integration the teacher's
// calculateProgressiveTax performs.
func integrate(income float64, brackets []Bracket) float64 {
	if income <= 0 {
		return 0
	}
	var tax float64
	remaining := income
	for _, b := range brackets {
		if remaining <= 0 {
			break
		}
		width := b.Max - b.Min
		taxableHere := math.Min(remaining, width)
		if taxableHere > 0 {
			tax += taxableHere * b.Rate
			remaining -= taxableHere
		}
	}
	return tax
}
