// Package metrics records in-memory execution metrics for
// check runs. Nothing is exported off-process.
package metrics

import (
	"time"

	"digital.vasic.selfcheck/pkg/check"
)

// Recorder defines the interface for recording check metrics.
type Recorder interface {
	// RecordExecution records a single group execution.
	RecordExecution(
		groupID check.ID,
		status string,
		duration time.Duration,
	)

	// IncrementRunTotal increments the total run counter.
	IncrementRunTotal()
}

// NoopRecorder is a no-op implementation of Recorder used when
// metrics collection is disabled.
type NoopRecorder struct{}

func (NoopRecorder) RecordExecution(
	_ check.ID, _ string, _ time.Duration,
) {
}

func (NoopRecorder) IncrementRunTotal() {}
