package descriptor

import (
	"math"
	"testing"
)

func constFn(v float64) ComputeFunc {
	return func(map[string]float64, float64) float64 { return v }
}

func TestTDescriptorStepFunction(t *testing.T) {
	t.Parallel()
	grid := []float64{0, 100, 200, 300}
	d := &T{TimeK: 150, T0: 150, Params: ParamSet{}, Compute: constFn(10), Growth: Growth{Kind: KindNone}, Direction: In}
	Precompute(d, grid)
	out := make([]float64, len(grid))
	if err := Evaluate(d, grid, out); err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 0, 10, 10}
	for i := range grid {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestImpulseOnlyFiresOnExactGridPoint(t *testing.T) {
	t.Parallel()
	grid := []float64{0, 100, 200}
	onGrid := &Impulse{TimeK: 100, T0: 100, Params: ParamSet{}, Compute: constFn(5), Direction: In}
	offGrid := &Impulse{TimeK: 150, T0: 150, Params: ParamSet{}, Compute: constFn(5), Direction: In}

	Precompute(onGrid, grid)
	Precompute(offGrid, grid)

	out := make([]float64, len(grid))
	_ = Evaluate(onGrid, grid, out)
	_ = Evaluate(offGrid, grid, out)

	want := []float64{0, 5, 0}
	for i := range grid {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestRDescriptorRecurrenceCount(t *testing.T) {
	t.Parallel()
	grid := make([]float64, 0)
	for d := 0.0; d <= 400; d += 10 {
		grid = append(grid, d)
	}
	r := &R{T0: 0, Dt: 50, Tf: 220, Params: ParamSet{}, Compute: constFn(1), Growth: Growth{Kind: KindNone}, Direction: In}
	Precompute(r, grid)

	wantCount := int(math.Floor((220-0)/50)) + 1
	if len(r.occurrences) != wantCount {
		t.Fatalf("R occurrence count = %d, want %d", len(r.occurrences), wantCount)
	}
}

func TestScaleFromEnvelopeUntilDay(t *testing.T) {
	t.Parallel()
	grid := []float64{0, 10, 20, 30}
	source := []float64{100, 100, 100, 100}
	out := make([]float64, len(grid))
	s := &ScaleFromEnvelope{Source: "p401k", Coeff: 0.1, UntilDay: 20, Direction: Out}
	EvaluateScaleFromEnvelope(s, grid, source, out)
	want := []float64{-10, -10, 0, 0}
	for i := range grid {
		if out[i] != want[i] {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want[i])
		}
	}
}
