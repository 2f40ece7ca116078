package runner

import (
	"digital.vasic.selfcheck/pkg/logging"
	"digital.vasic.selfcheck/pkg/metrics"
	"digital.vasic.selfcheck/pkg/registry"
)

// RunnerOption configures a DefaultRunner.
type RunnerOption func(*DefaultRunner)

// WithRegistry sets the group registry used by the runner.
func WithRegistry(reg registry.Registry) RunnerOption {
	return func(r *DefaultRunner) {
		r.registry = reg
	}
}

// WithLogger sets the logger used by the runner.
func WithLogger(logger logging.Logger) RunnerOption {
	return func(r *DefaultRunner) {
		r.logger = logger
	}
}

// WithReporter sets the reporter that receives per-group
// outcomes and the final summary.
func WithReporter(rep Reporter) RunnerOption {
	return func(r *DefaultRunner) {
		r.reporter = rep
	}
}

// WithMetrics sets the metrics recorder used by the runner.
func WithMetrics(rec metrics.Recorder) RunnerOption {
	return func(r *DefaultRunner) {
		r.metrics = rec
	}
}
