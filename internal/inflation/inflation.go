// Package inflation implements the present-value discount applied to
// final result series (spec.md §4.9).
package inflation

import "math"

// Adjust discounts each value in series (aligned with grid) by
// v / (1+rInf)^((t-currentDay)/365).
func Adjust(grid []float64, series []float64, currentDay, rInf float64) []float64 {
	out := make([]float64, len(series))
	for i, v := range series {
		years := (grid[i] - currentDay) / 365
		out[i] = v / math.Pow(1+rInf, years)
	}
	return out
}

// ValueToDay is the inverse of Adjust for a single point: given a
// present-day value v observed at day d, returns the nominal value at day
// d under the same discount curve. Provided for UI use; not required by
// the core evaluator (spec.md §4.9).
func ValueToDay(v, day, currentDay, rInf float64) float64 {
	years := (day - currentDay) / 365
	return v * math.Pow(1+rInf, years)
}

// ValueToToday is the forward direction: given a nominal value observed at
// day d, returns its present-day (currentDay) equivalent.
func ValueToToday(v, day, currentDay, rInf float64) float64 {
	years := (day - currentDay) / 365
	return v / math.Pow(1+rInf, years)
}
