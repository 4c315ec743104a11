package tax

import (
	"testing"
	"time"
)

func TestIntegrateMatchesBracketArithmetic(t *testing.T) {
	t.Parallel()
	// $50,000 single: 10% of 11000 + 12% of (44725-11000) + 22% of (50000-44725)
	want := 0.10*11000 + 0.12*(44725-11000) + 0.22*(50000-44725)
	got := integrate(50000, FederalBrackets(Single))
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("integrate(50000, Single) = %v, want %v", got, want)
	}
}

func TestCalculateTaxesClampsAtZero(t *testing.T) {
	t.Parallel()
	p := Params{
		FilingStatus:       Single,
		Age:                70,
		TaxableIncome:      1000,
		FederalWithholding: 1_000_000,
	}
	got := CalculateTaxes(p)
	if got != 0 {
		t.Fatalf("CalculateTaxes with huge withholding = %v, want 0", got)
	}
}

func TestCalculateTaxesAppliesUnder59HalfPenalty(t *testing.T) {
	t.Parallel()
	base := Params{FilingStatus: Single, Age: 40, P401kWithdraw: 10000}
	over := Params{FilingStatus: Single, Age: 65, P401kWithdraw: 10000}
	if CalculateTaxes(base) <= CalculateTaxes(over) {
		t.Fatalf("under-59.5 withdrawal should owe a strictly larger tax than post-59.5")
	}
}

func TestCalculateTaxesUnknownFilingStatusFallsBackToSingle(t *testing.T) {
	t.Parallel()
	known := Params{FilingStatus: Single, TaxableIncome: 60000}
	unknown := Params{FilingStatus: FilingStatus("nonsense"), TaxableIncome: 60000}
	if CalculateTaxes(known) != CalculateTaxes(unknown) {
		t.Fatalf("unknown filing status should fall back to Single bracket behaviour")
	}
}

func TestYearEndDaysWithinRange(t *testing.T) {
	t.Parallel()
	birth := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)
	days := YearEndDays(birth, 0, 365*5)
	if len(days) == 0 {
		t.Fatal("expected at least one year-end day in a 5 year window")
	}
	for i := 1; i < len(days); i++ {
		if days[i] <= days[i-1] {
			t.Fatalf("year-end days must be strictly increasing: %v", days)
		}
	}
}

func TestAge59HalfDayConstant(t *testing.T) {
	t.Parallel()
	want := 59.5 * 365.25
	got := Age59HalfDay()
	if got > want || want-got >= 1 {
		t.Fatalf("Age59HalfDay() = %v, want floor(%v)", got, want)
	}
}
