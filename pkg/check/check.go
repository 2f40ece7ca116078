// Package check defines the core types for the self-check
// suite: check groups, their outcomes, and the closed set of
// failure kinds recognised by the runner.
package check

// ID uniquely identifies a check group.
type ID string

// Group defines the interface that all check groups implement.
// A group takes no input and performs a fixed set of assertions
// over literal values. It signals failure through its returned
// error: *AssertionError for an expected-vs-actual mismatch,
// any other error for an unexpected condition.
type Group interface {
	// ID returns the unique identifier for this group.
	ID() ID

	// Label returns the human-readable label used in output
	// lines.
	Label() string

	// Description returns a short description of what this
	// group verifies.
	Description() string

	// Run performs the group's assertions. It returns nil
	// when every assertion holds.
	Run() error
}
