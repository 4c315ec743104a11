package simrun

import (
	"math"
	"testing"

	"github.com/marksoulier/modal-canvas-flow-sub001/internal/plan"
)

func emptySchema() plan.Schema {
	return plan.Schema{Events: []plan.SchemaEvent{
		{Type: "inflow"},
		{Type: "outflow"},
	}}
}

func TestScenario1EmptyPlanIsAllZero(t *testing.T) {
	t.Parallel()
	p := plan.Plan{
		BirthDate: "1990-01-01",
		Envelopes: []plan.EnvelopeSpec{{Name: "Cash", Growth: "none"}},
	}
	points, err := RunSimulation(p, emptySchema(), 0, 365, 365, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, pt := range points {
		if pt.Value != 0 {
			t.Fatalf("empty plan should produce all-zero series, got %+v", pt)
		}
	}
}

func TestScenario2SingleInflowNoGrowth(t *testing.T) {
	t.Parallel()
	p := plan.Plan{
		BirthDate: "1990-01-01",
		Envelopes: []plan.EnvelopeSpec{{Name: "Cash", Growth: "none"}},
		Events: []plan.Event{{
			ID: "ev1", Type: "inflow", IsRecurring: false,
			Parameters: map[string]interface{}{"to": "Cash", "amount": 100.0, "start_time": 0.0},
		}},
	}
	points, err := RunSimulation(p, emptySchema(), 0, 730, 365, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, pt := range points {
		if got := pt.Parts["Cash"]; got != 100 {
			t.Errorf("Cash at day %v = %v, want 100", pt.Date, got)
		}
	}
}

func TestScenario3SingleInflowYearlyCompoundGrowth(t *testing.T) {
	t.Parallel()
	p := plan.Plan{
		BirthDate: "1990-01-01",
		Envelopes: []plan.EnvelopeSpec{{Name: "Cash", Growth: "yearly_compound", Rate: 0.05}},
		Events: []plan.Event{{
			ID: "ev1", Type: "inflow", IsRecurring: false,
			Parameters: map[string]interface{}{"to": "Cash", "amount": 100.0, "start_time": 0.0},
		}},
	}
	points, err := RunSimulation(p, emptySchema(), 0, 730, 365, Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := map[float64]float64{
		0:   100,
		365: 100 * math.Pow(1.05, 365/365.25),
		730: 100 * math.Pow(1.05, 730/365.25),
	}
	for _, pt := range points {
		w, ok := want[pt.Date]
		if !ok {
			continue
		}
		if math.Abs(pt.Parts["Cash"]-w) > 1e-6 {
			t.Errorf("Cash at day %v = %v, want %v", pt.Date, pt.Parts["Cash"], w)
		}
	}
}

func TestFlagGatingProducesAllZeroDelta(t *testing.T) {
	t.Parallel()
	p := plan.Plan{
		BirthDate: "1990-01-01",
		Envelopes: []plan.EnvelopeSpec{{Name: "Cash", Growth: "none"}},
		Events: []plan.Event{{
			ID: "ev1", Type: "inflow", IsRecurring: false,
			Parameters:     map[string]interface{}{"to": "Cash", "amount": 100.0, "start_time": 0.0},
			EventFunctions: map[string]bool{"Flow enabled": false},
		}},
	}
	points, err := RunSimulation(p, emptySchema(), 0, 365, 365, Options{})
	if err != nil {
		t.Fatal(err)
	}
	for _, pt := range points {
		if pt.Value != 0 {
			t.Fatalf("disabling all event_functions flags should zero every envelope delta, got %+v", pt)
		}
	}
}
