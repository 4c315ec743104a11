package descriptor

import "sort"

// firstIndex returns the smallest i such that grid[i] >= t (binary search),
// or len(grid) if no such index exists.
func firstIndex(grid []float64, t float64) int {
	return sort.Search(len(grid), func(i int) bool { return grid[i] >= t })
}

// Precompute transforms a descriptor into its Precomputed form (spec.md
// §4.4): T/R/Impulse become grid-index-anchored; Lazy*/ScaleFromEnvelope are
// left untouched (they resolve later, in the staged resolver). Calling
// Precompute more than once on the same descriptor is a no-op.
func Precompute(d Descriptor, grid []float64) {
	switch v := d.(type) {
	case *T:
		if v.precomputed {
			return
		}
		v.startIndex = firstIndex(grid, v.TimeK)
		v.baseValue = v.Compute(v.Params.At(v.TimeK), v.TimeK-v.T0)
		v.precomputed = true
	case *Impulse:
		if v.precomputed {
			return
		}
		v.startIndex = firstIndex(grid, v.TimeK)
		v.baseValue = v.Compute(v.Params.At(v.TimeK), v.TimeK-v.T0)
		v.precomputed = true
	case *R:
		if v.precomputed {
			return
		}
		last := v.Tf
		if n := len(grid); n > 0 && grid[n-1] < last {
			last = grid[n-1]
		}
		for i := 0; ; i++ {
			tk := v.T0 + float64(i)*v.Dt
			if tk > last {
				break
			}
			occ := rOccurrence{
				timeK:      tk,
				startIndex: firstIndex(grid, tk),
				baseValue:  v.Compute(v.Params.At(tk), tk-v.T0),
			}
			v.occurrences = append(v.occurrences, occ)
		}
		v.precomputed = true
	case *LazyCorrection, *LazyFromEnvelopes, *ScaleFromEnvelope:
		// left as-is until their resolver stage
	}
}
