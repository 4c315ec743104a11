package envelope

import (
	"fmt"
	"strings"

	"github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/plan"
)

// growthAliases maps both the schema's display names ("Simple Interest",
// "Depreciation (Days)") and their snake_case equivalents onto the
// internal Kind constants, so a plan produced by either convention
// compiles.
var growthAliases = map[string]descriptor.Kind{
	"none":               descriptor.KindNone,
	"simple interest":    descriptor.KindSimpleInterest,
	"simple_interest":    descriptor.KindSimpleInterest,
	"daily compound":     descriptor.KindDailyCompound,
	"daily_compound":     descriptor.KindDailyCompound,
	"monthly compound":   descriptor.KindMonthlyCompound,
	"monthly_compound":   descriptor.KindMonthlyCompound,
	"yearly compound":    descriptor.KindYearlyCompound,
	"yearly_compound":    descriptor.KindYearlyCompound,
	"appreciation":       descriptor.KindAppreciation,
	"depreciation":       descriptor.KindDepreciation,
	"depreciation (days)": descriptor.KindDepreciationDays,
	"depreciation_days":  descriptor.KindDepreciationDays,
}

// ParseGrowthKind resolves a schema growth label to a Kind.
func ParseGrowthKind(label string) (descriptor.Kind, error) {
	if label == "" {
		return descriptor.KindNone, nil
	}
	k, ok := growthAliases[strings.ToLower(label)]
	if !ok {
		return "", fmt.Errorf("envelope: unrecognised growth label %q", label)
	}
	return k, nil
}

// BuildStore declares one envelope per plan.EnvelopeSpec. Event compilers
// may still declare additional tracking envelopes on demand via
// Store.Get.
func BuildStore(specs []plan.EnvelopeSpec) (*Store, error) {
	store := NewStore()
	for _, spec := range specs {
		kind, err := ParseGrowthKind(spec.Growth)
		if err != nil {
			return nil, err
		}
		g := descriptor.Growth{
			Kind:             kind,
			Rate:             spec.Rate,
			DaysOfUsefulness: spec.DaysOfUsefulness,
		}
		if _, err := store.Declare(spec.Name, g); err != nil {
			return nil, err
		}
	}
	return store, nil
}
