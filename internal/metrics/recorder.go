package metrics

import "time"

// ResultLabel enumerates operation result categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
	ResultSchema  ResultLabel = "schema_violation"
	ResultStale   ResultLabel = "stale_discarded"
)

// Recorder defines observability hooks for pipeline operations.
// Implementations may forward to Prometheus, OpenTelemetry, etc. All methods
// must be safe on the NoopRecorder (allowing optional injection).
type Recorder interface {
	ObserveGenerationDuration(mode string, d time.Duration)
	IncGenerationResult(mode string, result ResultLabel)
	IncRegenerationResult(section string, tone string, result ResultLabel)
	IncExportResult(mode string, success bool) // mode: archive|remote
	IncSectionPush(status string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveGenerationDuration(string, time.Duration)      {}
func (NoopRecorder) IncGenerationResult(string, ResultLabel)              {}
func (NoopRecorder) IncRegenerationResult(string, string, ResultLabel)    {}
func (NoopRecorder) IncExportResult(string, bool)                         {}
func (NoopRecorder) IncSectionPush(string)                                {}
