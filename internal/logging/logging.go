// Package logging provides the structured logger used across the
// simulation core. The teacher (AreumTech-Chubby.fyi) ships a bespoke
// leveled logger gated by a VERBOSE_DEBUG build constant because it
// compiles to WASM; this core runs server-side, so it adopts the pack's
// structured-logging answer instead (github.com/rs/zerolog, as used in
// penny-vault-pv-data and sawpanic-cryptorun).
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-level logger. Callers that want to redirect or
// silence it should use New/SetDefault rather than reaching into zerolog
// directly.
var Logger = New(os.Stderr)

// New builds a zerolog.Logger writing to w with Unix-time timestamps.
func New(w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return zerolog.New(w).With().Timestamp().Logger()
}

// SetDefault replaces the package-level Logger.
func SetDefault(l zerolog.Logger) {
	Logger = l
}

// ForRun returns a child logger with a run_id field attached, used to
// correlate all log lines produced by one runSimulation invocation.
func ForRun(runID string) zerolog.Logger {
	return Logger.With().Str("run_id", runID).Logger()
}

// Hook is an optional instrumentation hook a caller can install to time
// stages of a run, replacing the teacher's (and the original TS source's)
// reliance on a global performance.now() — spec.md §9 explicitly keeps
// that kind of timing out of the core itself. NoopHook satisfies Hook
// and is the default.
type Hook interface {
	OnStageStart(stage string)
	OnStageDone(stage string)
}

// NoopHook is a Hook that does nothing.
type NoopHook struct{}

func (NoopHook) OnStageStart(string) {}
func (NoopHook) OnStageDone(string)  {}
