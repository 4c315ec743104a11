// Package simrun orchestrates a full simulation run: compile plan events
// into descriptors, build the time grid, evaluate, resolve staged
// dependencies, optionally discount for inflation, and emit per-envelope
// time series (spec.md §6 core entry point).
package simrun

import (
	"math"

	"github.com/google/uuid"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/config"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/envelope"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/evaluator"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/events"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/inflation"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/logging"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/plan"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/resolver"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/timegrid"
	"github.com/rs/zerolog"
)

// Point is one row of the output series: a grid date, the summed value
// across all envelopes, and the per-envelope breakdown.
type Point struct {
	Date  float64            `json:"date"`
	Value float64            `json:"value"`
	Parts map[string]float64 `json:"parts"`
}

// Options carries the optional inputs to RunSimulation beyond the
// mandatory (plan, schema, startDay, endDay, interval).
type Options struct {
	VisibleRange *timegrid.VisibleRange
	CurrentDay   *float64
	Hook         logging.Hook
}

// RunSimulation is the core entry point (spec.md §6). On any structural
// error it returns an empty result set, per spec.md §7's "on any abort,
// return an empty result set" policy.
func RunSimulation(p plan.Plan, s plan.Schema, startDay, endDay, interval float64, opts Options) ([]Point, error) {
	runID := uuid.NewString()
	log := logging.ForRun(runID)
	hook := opts.Hook
	if hook == nil {
		hook = logging.NoopHook{}
	}

	if err := plan.Validate(p, s); err != nil {
		log.Error().Err(err).Msg("plan failed validation")
		return nil, err
	}

	store, err := envelope.BuildStore(p.Envelopes)
	if err != nil {
		log.Error().Err(err).Msg("failed to build envelope store")
		return nil, err
	}

	hook.OnStageStart("compile")
	if err := events.CompileAll(p.Events, store); err != nil {
		log.Error().Err(err).Msg("event compilation failed")
		return nil, err
	}
	hook.OnStageDone("compile")

	grid, err := timegrid.Build(timegrid.Params{
		StartDay:     startDay,
		EndDay:       endDay,
		Interval:     interval,
		VisibleRange: opts.VisibleRange,
		CurrentDay:   opts.CurrentDay,
		MaxPoints:    config.GetConfig().MaxGridPoints,
	})
	if err != nil {
		log.Error().Err(err).Msg("time grid construction failed")
		return nil, err
	}

	hook.OnStageStart("evaluate")
	if err := evaluator.Run(store, grid); err != nil {
		log.Error().Err(err).Msg("initial evaluation failed")
		return nil, err
	}
	hook.OnStageDone("evaluate")

	if err := resolver.Run(store, grid, hook); err != nil {
		log.Error().Err(err).Msg("staged resolver failed")
		return nil, err
	}

	clampNumericFailures(store, log)

	if p.AdjustForInflation && opts.CurrentDay != nil {
		for _, env := range store.All() {
			env.Results = inflation.Adjust(grid, env.Results, *opts.CurrentDay, s.InflationRate)
		}
	}

	return assemble(grid, store), nil
}

// assemble builds the dense output series, dropping envelopes whose
// series is identically zero from each point's parts (spec.md §6).
func assemble(grid []float64, store *envelope.Store) []Point {
	envs := store.All()
	nonZero := make([]*envelope.Envelope, 0, len(envs))
	for _, e := range envs {
		if !isAllZero(e.Results) {
			nonZero = append(nonZero, e)
		}
	}

	points := make([]Point, len(grid))
	for i, t := range grid {
		parts := make(map[string]float64, len(nonZero))
		var sum float64
		for _, e := range nonZero {
			parts[e.Key] = e.Results[i]
			sum += e.Results[i]
		}
		points[i] = Point{Date: t, Value: sum, Parts: parts}
	}
	return points
}

func isAllZero(series []float64) bool {
	for _, v := range series {
		if v != 0 {
			return false
		}
	}
	return true
}

// clampNumericFailures implements the NumericFailure policy (spec.md §7):
// NaN/Inf in any result cell is a warning, clamped to 0.
func clampNumericFailures(store *envelope.Store, log zerolog.Logger) {
	for _, env := range store.All() {
		for i, v := range env.Results {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				log.Warn().Str("envelope", env.Key).Int("index", i).Msg("numeric failure, clamped to 0")
				env.Results[i] = 0
			}
		}
	}
}
