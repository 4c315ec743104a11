// Package descriptor implements the closed-form contribution algebra:
// the T/R/Impulse/Lazy*/ScaleFromEnvelope primitives, the f_growth growth
// kernel, and the Θ/γ parameter-function machinery (spec.md §4.1–§4.2).
package descriptor

import (
	"errors"
	"math"

	"github.com/marksoulier/modal-canvas-flow-sub001/internal/config"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/simerr"
)

// Kind enumerates the growth models an envelope can carry.
type Kind string

const (
	KindNone             Kind = "none"
	KindSimpleInterest    Kind = "simple_interest"
	KindDailyCompound     Kind = "daily_compound"
	KindMonthlyCompound   Kind = "monthly_compound"
	KindYearlyCompound    Kind = "yearly_compound"
	KindAppreciation      Kind = "appreciation"
	KindDepreciation      Kind = "depreciation"
	KindDepreciationDays  Kind = "depreciation_days"
)

// Growth is an envelope's growth model: a kind plus its rate, and (for
// KindDepreciationDays only) the useful-life window in days.
type Growth struct {
	Kind             Kind
	Rate             float64
	DaysOfUsefulness float64
}

// monthlyCompoundDays is deliberately 365, not config.GetConfig().YearLength
// — preserved from the original source for bit-compatibility regardless of
// the configured year length (spec.md §9).
const monthlyCompoundDays = 365.0

// FGrowth computes the growth multiplier f_growth(g, Δt) for a non-negative
// or negative Δt expressed in days. envelope is used only to annotate
// errors. The year length (365.25 by default) comes from config.GetConfig
// so amortization schedules and growth kernels agree on one knob.
func FGrowth(g Growth, deltaDays float64, envelope string) (float64, error) {
	yearLength := config.GetConfig().YearLength
	switch g.Kind {
	case KindNone, "":
		return 1, nil
	case KindSimpleInterest, KindAppreciation:
		return 1 + g.Rate*deltaDays/yearLength, nil
	case KindDailyCompound:
		return math.Pow(1+g.Rate/yearLength, deltaDays), nil
	case KindMonthlyCompound:
		return math.Pow(1+g.Rate/12, 12*deltaDays/monthlyCompoundDays), nil
	case KindYearlyCompound:
		return math.Pow(1+g.Rate, deltaDays/yearLength), nil
	case KindDepreciation:
		return math.Max(0, math.Pow(1-g.Rate, deltaDays/yearLength)), nil
	case KindDepreciationDays:
		if g.DaysOfUsefulness <= 0 {
			return 0, simerr.InvalidGrowthParameter(envelope, "days_of_usefulness",
				errDaysOfUsefulness)
		}
		return math.Max(0, 1-deltaDays/g.DaysOfUsefulness), nil
	default:
		return 0, simerr.UnknownGrowthType(string(g.Kind), envelope)
	}
}

var errDaysOfUsefulness = errors.New("days_of_usefulness must be positive")
