package tax

import (
	"math"
	"time"
)

// YearEndDays returns the day-offsets (from birthDate) of every Dec 31
// from birthDate's year onward whose offset falls within
// [startTime, endTime] (spec.md §4.8 step 1).
func YearEndDays(birthDate time.Time, startTime, endTime float64) []float64 {
	var out []float64
	for year := birthDate.Year(); ; year++ {
		dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		offset := dec31.Sub(birthDate).Hours() / 24
		if offset > endTime {
			break
		}
		if offset >= startTime {
			out = append(out, offset)
		}
	}
	return out
}

// Age59HalfDay is floor(59.5*365.25), the boundary spec.md §4.8/GLOSSARY
// defines for the early-withdrawal penalty.
func Age59HalfDay() float64 {
	return math.Floor(59.5 * 365.25)
}
