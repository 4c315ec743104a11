package descriptor

// Evaluate accumulates a precomputed T/R/Impulse descriptor's contribution
// into out (len(out) == len(grid)). ScaleFromEnvelope and the Lazy* kinds
// are no-ops here: ScaleFromEnvelope is applied by evaluator.Run from its
// source envelope's results, and the Lazy* kinds by the resolver
// (spec.md §4.5, §4.6).
func Evaluate(d Descriptor, grid []float64, out []float64) error {
	switch v := d.(type) {
	case *T:
		sign := v.Direction.Signed()
		for j := v.startIndex; j < len(grid); j++ {
			g, err := FGrowth(v.Growth, grid[j]-v.TimeK, "")
			if err != nil {
				return err
			}
			out[j] += sign * v.baseValue * g
		}
	case *R:
		sign := v.Direction.Signed()
		for _, occ := range v.occurrences {
			for j := occ.startIndex; j < len(grid); j++ {
				g, err := FGrowth(v.Growth, grid[j]-occ.timeK, "")
				if err != nil {
					return err
				}
				out[j] += sign * occ.baseValue * g
			}
		}
	case *Impulse:
		if v.startIndex < len(grid) && grid[v.startIndex] == v.TimeK {
			out[v.startIndex] += v.Direction.Signed() * v.baseValue
		}
	case *LazyCorrection, *LazyFromEnvelopes, *ScaleFromEnvelope:
		// resolved separately
	}
	return nil
}

// EvaluateScaleFromEnvelope applies a ScaleFromEnvelope descriptor's
// contribution given its source envelope's series. evaluator.Run does not
// call it; it applies the same rule through its own gonum-based helper.
func EvaluateScaleFromEnvelope(s *ScaleFromEnvelope, grid []float64, sourceResults []float64, out []float64) {
	sign := s.Direction.Signed()
	for j, t := range grid {
		if t >= s.UntilDay {
			continue
		}
		out[j] += sign * s.Coeff * sourceResults[j]
	}
}
