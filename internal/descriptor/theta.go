package descriptor

import "math"

// ParamFunc is a time-parameterised scalar: Θ's field-level representation.
// Concrete variants are Constant, StepAdjusted, InflationAdjusted, and the
// wrapper gamma produces (gammaField). Avoid runtime code generation or
// captured closures (spec.md §9): every variant is an explicit tagged
// struct dispatched on by ValueAt.
type ParamFunc interface {
	ValueAt(t float64) float64
}

// Constant is a ParamFunc whose value never changes with t.
type Constant float64

func (c Constant) ValueAt(float64) float64 { return float64(c) }

// StepAdjusted yields v0 + Δ·floor((clamp(t,start,end)−start)/period)
// (no upper clamp when HasEnd is false); spec.md §4.2.
type StepAdjusted struct {
	V0     float64
	Delta  float64
	Period float64
	Start  float64
	End    float64 // ignored unless HasEnd
	HasEnd bool
}

func (s StepAdjusted) ValueAt(t float64) float64 {
	clamped := t
	if clamped < s.Start {
		clamped = s.Start
	}
	if s.HasEnd && clamped > s.End {
		clamped = s.End
	}
	if clamped < s.Start {
		return s.V0
	}
	steps := (clamped - s.Start) / s.Period
	return s.V0 + s.Delta*float64(int64(steps))
}

// InflationAdjusted multiplies base by (1+r_inf)^((t-tStart)/365), i.e. it
// grows nominal values forward with inflation from tStart.
type InflationAdjusted struct {
	Base   float64
	RInf   float64
	TStart float64
}

func (i InflationAdjusted) ValueAt(t float64) float64 {
	years := (t - i.TStart) / 365
	if years < 0 {
		years = 0
	}
	if i.RInf == 0 {
		return i.Base
	}
	return i.Base * math.Pow(1+i.RInf, years)
}

// gammaField implements γ for a single Θ field: base for t<tStar, override
// for t>=tStar.
type gammaField struct {
	Base    ParamFunc
	Override ParamFunc
	TStar   float64
}

func (g gammaField) ValueAt(t float64) float64 {
	if t < g.TStar {
		return g.Base.ValueAt(t)
	}
	return g.Override.ValueAt(t)
}

// ParamSet is Θ: a named bag of ParamFuncs. At(t) resolves it to a plain
// map of floats — the "plain struct" spec.md §4.2 describes Θ(t) producing.
type ParamSet map[string]ParamFunc

// At evaluates every field of the parameter set at t.
func (p ParamSet) At(t float64) map[string]float64 {
	out := make(map[string]float64, len(p))
	for k, f := range p {
		out[k] = f.ValueAt(t)
	}
	return out
}

// Gamma implements γ(Θ, changes, t*): a new ParamSet equal to base for
// t<tStar, and for t>=tStar equal to base overridden field-by-field by
// changes (values in changes may themselves be time-functions, e.g.
// StepAdjusted).
func Gamma(base ParamSet, changes ParamSet, tStar float64) ParamSet {
	out := make(ParamSet, len(base))
	for k, f := range base {
		out[k] = f
	}
	for k, override := range changes {
		b, ok := out[k]
		if !ok {
			b = Constant(0)
		}
		out[k] = gammaField{Base: b, Override: override, TStar: tStar}
	}
	return out
}
