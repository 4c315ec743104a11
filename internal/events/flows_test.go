package events

import (
	"testing"

	"github.com/marksoulier/modal-canvas-flow-sub001/internal/descriptor"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/envelope"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/evaluator"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/plan"
)

func TestCompileInflowOneShot(t *testing.T) {
	t.Parallel()
	store := envelope.NewStore()
	store.Declare("Cash", descriptor.Growth{Kind: descriptor.KindNone})

	ev := plan.Event{
		ID: "e1", Type: "inflow",
		Parameters: map[string]interface{}{"to": "Cash", "amount": 100.0, "start_time": 0.0},
	}
	if err := Compile(ev, store); err != nil {
		t.Fatal(err)
	}

	grid := []float64{0, 100, 200}
	if err := evaluator.Run(store, grid); err != nil {
		t.Fatal(err)
	}
	cash, _ := store.Lookup("Cash")
	want := []float64{100, 100, 100}
	for i := range grid {
		if cash.Results[i] != want[i] {
			t.Errorf("Cash[%d] = %v, want %v", i, cash.Results[i], want[i])
		}
	}
}

func TestCompileInflowDisabledFlagIsNoOp(t *testing.T) {
	t.Parallel()
	store := envelope.NewStore()
	store.Declare("Cash", descriptor.Growth{Kind: descriptor.KindNone})

	ev := plan.Event{
		ID: "e1", Type: "inflow",
		Parameters:     map[string]interface{}{"to": "Cash", "amount": 100.0, "start_time": 0.0},
		EventFunctions: map[string]bool{"Flow enabled": false},
	}
	if err := Compile(ev, store); err != nil {
		t.Fatal(err)
	}
	cash, _ := store.Lookup("Cash")
	if len(cash.Descriptors) != 0 {
		t.Fatalf("disabled flow should append no descriptors, got %d", len(cash.Descriptors))
	}
}

func TestCompileInflowUpdateAmountSubEvent(t *testing.T) {
	t.Parallel()
	store := envelope.NewStore()
	store.Declare("Cash", descriptor.Growth{Kind: descriptor.KindNone})

	ev := plan.Event{
		ID: "e1", Type: "inflow", IsRecurring: true,
		Parameters: map[string]interface{}{
			"to": "Cash", "amount": 100.0, "start_time": 0.0,
			"end_time": 1000.0, "frequency_days": 100.0,
		},
		UpdatingEvents: []plan.Event{{
			ID: "e1-upd", Type: "update_amount",
			Parameters: map[string]interface{}{"start_time": 500.0, "new_amount": 200.0},
		}},
	}
	if err := Compile(ev, store); err != nil {
		t.Fatal(err)
	}

	grid := []float64{0, 100, 400, 500, 600, 900}
	if err := evaluator.Run(store, grid); err != nil {
		t.Fatal(err)
	}
	cash, _ := store.Lookup("Cash")
	if cash.Results[2] >= cash.Results[4] {
		t.Fatalf("expected cumulative total to jump after update_amount at t=500: before=%v after=%v",
			cash.Results[2], cash.Results[4])
	}
}
