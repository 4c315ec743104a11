package envelope

import (
	"testing"

	"github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"
)

func TestDeclareRejectsDuplicateKey(t *testing.T) {
	t.Parallel()
	s := NewStore()
	if _, err := s.Declare("Cash", descriptor.Growth{Kind: descriptor.KindNone}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Declare("Cash", descriptor.Growth{Kind: descriptor.KindNone}); err == nil {
		t.Fatal("expected error declaring duplicate envelope key")
	}
}

func TestDeclareRejectsNonPositiveUsefulness(t *testing.T) {
	t.Parallel()
	s := NewStore()
	_, err := s.Declare("Car", descriptor.Growth{Kind: descriptor.KindDepreciationDays, DaysOfUsefulness: 0})
	if err == nil {
		t.Fatal("expected error for zero days_of_usefulness")
	}
}

func TestGetCreatesOnDemand(t *testing.T) {
	t.Parallel()
	s := NewStore()
	e := s.Get("taxable_income")
	if e == nil || e.Key != "taxable_income" {
		t.Fatalf("Get should create envelope on demand, got %+v", e)
	}
	if _, ok := s.Lookup("taxable_income"); !ok {
		t.Fatal("envelope created by Get should be findable via Lookup")
	}
}

func TestMustLookupFailsForUnknownKey(t *testing.T) {
	t.Parallel()
	s := NewStore()
	if _, err := s.MustLookup("missing", "event-1"); err == nil {
		t.Fatal("expected MissingEnvelope error")
	}
}

func TestParseGrowthKindAcceptsBothConventions(t *testing.T) {
	t.Parallel()
	cases := map[string]descriptor.Kind{
		"Yearly Compound":     descriptor.KindYearlyCompound,
		"yearly_compound":     descriptor.KindYearlyCompound,
		"Depreciation (Days)": descriptor.KindDepreciationDays,
		"":                    descriptor.KindNone,
	}
	for label, want := range cases {
		got, err := ParseGrowthKind(label)
		if err != nil {
			t.Fatalf("ParseGrowthKind(%q): %v", label, err)
		}
		if got != want {
			t.Errorf("ParseGrowthKind(%q) = %v, want %v", label, got, want)
		}
	}
}
