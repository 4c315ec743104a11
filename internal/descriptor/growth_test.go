package descriptor

import (
	"math"
	"testing"
)

func TestFGrowthIdentityAtZeroRate(t *testing.T) {
	t.Parallel()
	kinds := []Kind{KindSimpleInterest, KindDailyCompound, KindMonthlyCompound,
		KindYearlyCompound, KindAppreciation, KindDepreciation}
	for _, k := range kinds {
		k := k
		t.Run(string(k), func(t *testing.T) {
			t.Parallel()
			g := Growth{Kind: k, Rate: 0}
			got, err := FGrowth(g, 100, "env")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-1) > 1e-9 {
				t.Fatalf("f_growth(%s, rate=0) = %v, want 1", k, got)
			}
		})
	}
}

func TestFGrowthNoneAlwaysOne(t *testing.T) {
	t.Parallel()
	g := Growth{Kind: KindNone, Rate: 0.5}
	for _, dt := range []float64{-100, 0, 100, 1000} {
		got, err := FGrowth(g, dt, "env")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 1 {
			t.Fatalf("f_growth(None, %v) = %v, want 1", dt, got)
		}
	}
}

func TestFGrowthMonthlyCompoundUses365NotJulian(t *testing.T) {
	t.Parallel()
	g := Growth{Kind: KindMonthlyCompound, Rate: 0.12}
	gotBitCompat, _ := FGrowth(g, 365, "env")
	want := math.Pow(1+0.12/12, 12*365/365.0)
	if math.Abs(gotBitCompat-want) > 1e-12 {
		t.Fatalf("Monthly Compound at dt=365 = %v, want %v (365-day exponent)", gotBitCompat, want)
	}
	notWant := math.Pow(1+0.12/12, 12*365/365.25)
	if math.Abs(want-notWant) < 1e-9 {
		t.Fatalf("test is not discriminating: 365 and 365.25 bases produced the same value")
	}
}

func TestFGrowthDepreciationDaysRequiresPositiveUsefulness(t *testing.T) {
	t.Parallel()
	g := Growth{Kind: KindDepreciationDays, DaysOfUsefulness: 0}
	if _, err := FGrowth(g, 10, "car"); err == nil {
		t.Fatal("expected error for non-positive days_of_usefulness")
	}
}

func TestFGrowthDepreciationDaysClampsAtZero(t *testing.T) {
	t.Parallel()
	g := Growth{Kind: KindDepreciationDays, DaysOfUsefulness: 100}
	got, err := FGrowth(g, 200, "car")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Fatalf("f_growth(DepreciationDays, dt=200, life=100) = %v, want 0", got)
	}
}

func TestFGrowthUnknownKindFails(t *testing.T) {
	t.Parallel()
	g := Growth{Kind: Kind("not_a_real_kind")}
	if _, err := FGrowth(g, 1, "env"); err == nil {
		t.Fatal("expected error for unknown growth kind")
	}
}
