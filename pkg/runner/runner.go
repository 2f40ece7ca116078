// Package runner provides the check execution engine. It runs
// registered groups strictly sequentially, exactly once each,
// and absorbs every group failure into a reported outcome.
package runner

import (
	"fmt"
	"time"

	"digital.vasic.selfcheck/pkg/check"
	"digital.vasic.selfcheck/pkg/logging"
	"digital.vasic.selfcheck/pkg/metrics"
	"digital.vasic.selfcheck/pkg/registry"
)

// Reporter receives one call per group outcome plus the final
// summary.
type Reporter interface {
	// GroupPassed reports a group whose assertions all held.
	GroupPassed(label string)

	// GroupFailed reports an assertion failure with its
	// message.
	GroupFailed(label, message string)

	// GroupError reports an unexpected failure with its
	// message.
	GroupError(label, message string)

	// Summary reports the aggregate counts after all groups
	// ran.
	Summary(s *check.Summary)
}

// DefaultRunner is the standard runner implementation.
type DefaultRunner struct {
	registry registry.Registry
	logger   logging.Logger
	reporter Reporter
	metrics  metrics.Recorder
}

// NewRunner creates a DefaultRunner with the supplied options.
func NewRunner(opts ...RunnerOption) *DefaultRunner {
	r := &DefaultRunner{
		registry: registry.Default,
		logger:   logging.NullLogger{},
		metrics:  metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunAll executes every registered group exactly once, in
// registration order. Failures never propagate past the group
// boundary; each becomes a reported outcome and a counter
// increment. The summary is freshly allocated per call, so
// repeated calls in one process are independent.
func (r *DefaultRunner) RunAll() *check.Summary {
	summary := &check.Summary{}
	r.metrics.IncrementRunTotal()

	for _, g := range r.registry.All() {
		outcome := r.runGroup(g)
		summary.Outcomes = append(
			summary.Outcomes, outcome,
		)

		switch outcome.Status {
		case check.StatusPassed:
			summary.Passed++
			if r.reporter != nil {
				r.reporter.GroupPassed(outcome.Label)
			}
		case check.StatusFailed:
			summary.Failed++
			if r.reporter != nil {
				r.reporter.GroupFailed(
					outcome.Label, outcome.Message,
				)
			}
		default:
			summary.Failed++
			if r.reporter != nil {
				r.reporter.GroupError(
					outcome.Label, outcome.Message,
				)
			}
		}
	}

	if r.reporter != nil {
		r.reporter.Summary(summary)
	}

	r.logger.Info("run_completed",
		logging.IntField("passed", summary.Passed),
		logging.IntField("failed", summary.Failed),
	)

	return summary
}

// runGroup runs a single group and classifies its error into
// the closed outcome set. A panic inside the group is
// recovered into the catch-all error outcome.
func (r *DefaultRunner) runGroup(
	g check.Group,
) (outcome check.Outcome) {
	outcome = check.Outcome{
		GroupID: g.ID(),
		Label:   g.Label(),
	}

	started := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			outcome.Status = check.StatusError
			outcome.Message = fmt.Sprintf("%v", rec)
			r.finishGroup(g, &outcome, started)
		}
	}()

	r.logger.Debug("group_started",
		logging.StringField("group_id", string(g.ID())),
	)

	err := g.Run()
	switch {
	case err == nil:
		outcome.Status = check.StatusPassed
	case check.IsAssertion(err):
		outcome.Status = check.StatusFailed
		outcome.Message = err.Error()
	default:
		outcome.Status = check.StatusError
		outcome.Message = err.Error()
	}

	r.finishGroup(g, &outcome, started)
	return outcome
}

// finishGroup records metrics and logs the completion event.
func (r *DefaultRunner) finishGroup(
	g check.Group,
	outcome *check.Outcome,
	started time.Time,
) {
	r.metrics.RecordExecution(
		g.ID(), outcome.Status, time.Since(started),
	)
	r.logger.Debug("group_completed",
		logging.StringField("group_id", string(g.ID())),
		logging.StringField("status", outcome.Status),
	)
}
