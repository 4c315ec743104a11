// Command simulate runs a plan/schema pair through the simulation core and
// prints the resulting time series as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/marksoulier/modal-canvas-flow-sub001/internal/config"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/plan"
	"github.com/marksoulier/modal-canvas-flow-sub001/internal/simrun"
	"github.com/spf13/cobra"
)

var (
	planPath    string
	schemaPath  string
	configPath  string
	startDay    float64
	endDay      float64
	interval    float64
	currentDay  float64
	hasCurrent  bool
)

func main() {
	root := &cobra.Command{
		Use:   "simulate",
		Short: "Run a financial-life plan through the simulation core",
		RunE:  run,
	}
	root.Flags().StringVar(&planPath, "plan", "", "path to plan JSON file (required)")
	root.Flags().StringVar(&schemaPath, "schema", "", "path to schema JSON file (required)")
	root.Flags().StringVar(&configPath, "config", "", "optional YAML config overlay")
	root.Flags().Float64Var(&startDay, "start-day", 0, "grid start day")
	root.Flags().Float64Var(&endDay, "end-day", 365.25*80, "grid end day")
	root.Flags().Float64Var(&interval, "interval", 30.4375, "grid interval in days")
	root.Flags().Float64Var(&currentDay, "current-day", 0, "current day, for inflation adjustment")
	root.Flags().BoolVar(&hasCurrent, "has-current-day", false, "set if --current-day should be used")
	_ = root.MarkFlagRequired("plan")
	_ = root.MarkFlagRequired("schema")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := config.SetConfig(cfg); err != nil {
		return err
	}

	planBytes, err := os.ReadFile(planPath)
	if err != nil {
		return fmt.Errorf("reading plan file: %w", err)
	}
	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("reading schema file: %w", err)
	}

	p, err := plan.Parse(planBytes)
	if err != nil {
		return fmt.Errorf("parsing plan: %w", err)
	}
	s, err := plan.ParseSchema(schemaBytes)
	if err != nil {
		return fmt.Errorf("parsing schema: %w", err)
	}

	opts := simrun.Options{}
	if hasCurrent {
		opts.CurrentDay = &currentDay
	}

	series, err := simrun.RunSimulation(p, s, startDay, endDay, interval, opts)
	if err != nil {
		return fmt.Errorf("running simulation: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(series)
}
