package check

// Status constants for check group outcomes.
const (
	// StatusPassed means every assertion in the group held.
	StatusPassed = "passed"

	// StatusFailed means an assertion reported an
	// expected-vs-actual mismatch.
	StatusFailed = "failed"

	// StatusError means the group failed with an unexpected
	// error or a recovered panic.
	StatusError = "error"
)

// Outcome captures the result of running a single check group.
type Outcome struct {
	// GroupID is the unique identifier of the group.
	GroupID ID `json:"group_id"`

	// Label is the human-readable label of the group.
	Label string `json:"label"`

	// Status is one of the Status* constants.
	Status string `json:"status"`

	// Message carries the failure description. It is empty
	// when the group passed.
	Message string `json:"message,omitempty"`
}

// Summary is the run-scoped aggregate for one runner
// invocation. It is freshly allocated per run and discarded
// afterwards.
type Summary struct {
	// Passed counts groups whose every assertion held.
	Passed int `json:"passed"`

	// Failed counts groups that failed or errored.
	Failed int `json:"failed"`

	// Outcomes holds the per-group outcomes in execution
	// order.
	Outcomes []Outcome `json:"outcomes"`
}

// Total returns the number of groups executed.
func (s *Summary) Total() int {
	return s.Passed + s.Failed
}

// AllPassed returns true if no group failed or errored.
func (s *Summary) AllPassed() bool {
	return s.Failed == 0
}
