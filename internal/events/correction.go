package events

import (
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/envelope"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/plan"
)

func init() {
	register("manual_correction", CompilerFunc(compileManualCorrection))
}

// compileManualCorrection schedules a single drive-to-target correction on
// the named envelope at start_time, overriding whatever the envelope's own
// descriptors would otherwise produce at that instant (spec.md §8 scenario
// 5: "manual_correction{to=Cash, amount=5000, start=365}").
func compileManualCorrection(ev plan.Event, store *envelope.Store) error {
	if !ev.FunctionEnabled("Correction enabled") {
		return nil
	}
	to, err := store.MustLookup(ev.ParamString("to"), ev.ID)
	if err != nil {
		return err
	}
	emitLazyCorrection(to, ev.ParamFloat("start_time"), ev.ParamFloat("amount"))
	return nil
}
