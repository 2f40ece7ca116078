package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary_Total(t *testing.T) {
	s := &Summary{Passed: 3, Failed: 1}
	assert.Equal(t, 4, s.Total())
}

func TestSummary_AllPassed(t *testing.T) {
	assert.True(t, (&Summary{Passed: 4}).AllPassed())
	assert.False(
		t, (&Summary{Passed: 3, Failed: 1}).AllPassed(),
	)
}

func TestSummary_ZeroValue(t *testing.T) {
	s := &Summary{}
	assert.Zero(t, s.Passed)
	assert.Zero(t, s.Failed)
	assert.Equal(t, 0, s.Total())
	assert.True(t, s.AllPassed())
}

func TestStatusConstants(t *testing.T) {
	assert.Equal(t, "passed", StatusPassed)
	assert.Equal(t, "failed", StatusFailed)
	assert.Equal(t, "error", StatusError)
}
