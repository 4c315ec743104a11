package descriptor

import "testing"

func TestStepAdjustedSteps(t *testing.T) {
	t.Parallel()
	s := StepAdjusted{V0: 100, Delta: 10, Period: 30, Start: 0, HasEnd: false}
	cases := map[float64]float64{
		-1: 100,
		0:  100,
		29: 100,
		30: 110,
		59: 110,
		60: 120,
	}
	for t_, want := range cases {
		if got := s.ValueAt(t_); got != want {
			t.Errorf("StepAdjusted.ValueAt(%v) = %v, want %v", t_, got, want)
		}
	}
}

func TestStepAdjustedClampsAtEnd(t *testing.T) {
	t.Parallel()
	s := StepAdjusted{V0: 100, Delta: 10, Period: 30, Start: 0, End: 60, HasEnd: true}
	got := s.ValueAt(1000)
	want := s.ValueAt(60)
	if got != want {
		t.Fatalf("StepAdjusted beyond End = %v, want clamp to End value %v", got, want)
	}
}

func TestGammaSwitchesAtTStar(t *testing.T) {
	t.Parallel()
	base := ParamSet{"amount": Constant(50)}
	changed := Gamma(base, ParamSet{"amount": Constant(75)}, 100)

	if got := changed["amount"].ValueAt(99); got != 50 {
		t.Errorf("before t*: got %v, want 50", got)
	}
	if got := changed["amount"].ValueAt(100); got != 75 {
		t.Errorf("at t*: got %v, want 75", got)
	}
	if got := changed["amount"].ValueAt(1000); got != 75 {
		t.Errorf("after t*: got %v, want 75", got)
	}
}

func TestGammaLeavesUnrelatedFieldsAlone(t *testing.T) {
	t.Parallel()
	base := ParamSet{"amount": Constant(50), "rate": Constant(0.05)}
	changed := Gamma(base, ParamSet{"amount": Constant(75)}, 10)
	if got := changed["rate"].ValueAt(20); got != 0.05 {
		t.Errorf("rate field should be untouched by gamma on amount, got %v", got)
	}
}

func TestInflationAdjustedGrowsForward(t *testing.T) {
	t.Parallel()
	ia := InflationAdjusted{Base: 100, RInf: 0.03, TStart: 0}
	if got := ia.ValueAt(0); got != 100 {
		t.Errorf("ValueAt(TStart) = %v, want 100", got)
	}
	got365 := ia.ValueAt(365)
	if got365 <= 100 || got365 >= 104 {
		t.Errorf("ValueAt(365) = %v, want in (100, 104)", got365)
	}
}
