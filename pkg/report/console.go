// Package report renders check outcomes in the line format
// expected by existing log scraping, and maps run summaries to
// process exit codes.
package report

import (
	"fmt"
	"io"

	"digital.vasic.selfcheck/pkg/check"
)

// Result glyphs. These are part of the output contract and
// must not change.
const (
	glyphPass = "✓"
	glyphFail = "✗"
)

// ConsoleReporter writes one line per check group plus a final
// summary line. The summary wording matches the Python script
// this tool replaces, keeping log scrapers working unchanged.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a reporter writing to out.
func NewConsoleReporter(out io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: out}
}

// GroupPassed prints the success line for a group.
func (r *ConsoleReporter) GroupPassed(label string) {
	fmt.Fprintf(
		r.out, "%s %s test passed\n", glyphPass, label,
	)
}

// GroupFailed prints the assertion-failure line for a group.
func (r *ConsoleReporter) GroupFailed(
	label, message string,
) {
	fmt.Fprintf(
		r.out, "%s %s test failed: %s\n",
		glyphFail, label, message,
	)
}

// GroupError prints the unexpected-failure line for a group.
func (r *ConsoleReporter) GroupError(
	label, message string,
) {
	fmt.Fprintf(
		r.out, "%s %s test error: %s\n",
		glyphFail, label, message,
	)
}

// Summary prints the blank separator line followed by the
// aggregate counts.
func (r *ConsoleReporter) Summary(s *check.Summary) {
	fmt.Fprintf(
		r.out,
		"\nPython tests completed: %d passed, %d failed\n",
		s.Passed, s.Failed,
	)
}

// ExitCode maps a run summary to the process exit code: 0 when
// every group passed, 1 otherwise.
func ExitCode(s *check.Summary) int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}
