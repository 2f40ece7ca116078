// Package assertion provides an extensible assertion
// evaluation engine for the self-check suite. It ships with a
// small set of built-in evaluator types and supports custom
// evaluator registration.
package assertion

// Definition describes a single assertion to evaluate against
// a concrete value.
type Definition struct {
	// Type is the evaluator type (e.g., "equals", "length",
	// "contains").
	Type string `json:"type"`

	// Target is the name of the value being checked. It is
	// used as the key when evaluating against a map of named
	// values.
	Target string `json:"target"`

	// Value is the expected value for the assertion.
	Value any `json:"value,omitempty"`

	// Message is the human-readable description reported when
	// the assertion fails. It is fixed at the check site.
	Message string `json:"message"`
}

// Result captures the outcome of evaluating a single
// assertion.
type Result struct {
	// Type is the assertion type that was evaluated.
	Type string `json:"type"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Expected is the value the assertion expected.
	Expected any `json:"expected"`

	// Actual is the value that was observed.
	Actual any `json:"actual"`

	// Passed indicates whether the assertion succeeded.
	Passed bool `json:"passed"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}
