package check

import (
	"errors"
	"fmt"
)

// AssertionError reports an expected-vs-actual mismatch inside
// a check group. The message is fixed at the failing check
// site and is printed verbatim in the failure line.
type AssertionError struct {
	// Message is the human-readable failure description.
	Message string
}

// Error returns the failure message.
func (e *AssertionError) Error() string {
	return e.Message
}

// Failf constructs an AssertionError with a formatted message.
func Failf(format string, args ...any) *AssertionError {
	return &AssertionError{
		Message: fmt.Sprintf(format, args...),
	}
}

// IsAssertion reports whether err is, or wraps, an
// AssertionError. Any other non-nil error is treated as the
// catch-all "unexpected failure" kind.
func IsAssertion(err error) bool {
	var ae *AssertionError
	return errors.As(err, &ae)
}
