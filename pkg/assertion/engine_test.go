package assertion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_RegistersBuiltins(t *testing.T) {
	e := NewEngine()

	for _, typ := range []string{
		"equals", "length", "contains",
		"has_key", "not_empty",
	} {
		assert.True(
			t, e.HasEvaluator(typ),
			"missing builtin: %s", typ,
		)
	}
}

func TestEngine_Evaluate_UnknownType(t *testing.T) {
	e := NewEngine()
	result := e.Evaluate(
		Definition{Type: "no_such_type", Target: "x"}, 1,
	)
	assert.False(t, result.Passed)
	assert.Contains(
		t, result.Message, "unknown assertion type",
	)
}

func TestEngine_Evaluate_PopulatesResult(t *testing.T) {
	e := NewEngine()
	result := e.Evaluate(Definition{
		Type:   "equals",
		Target: "sum",
		Value:  4,
	}, 4)

	assert.True(t, result.Passed)
	assert.Equal(t, "equals", result.Type)
	assert.Equal(t, "sum", result.Target)
	assert.Equal(t, 4, result.Expected)
	assert.Equal(t, 4, result.Actual)
}

func TestEngine_Register_Duplicate(t *testing.T) {
	e := NewEngine()
	err := e.Register(
		"equals",
		func(_ Definition, _ any) (bool, string) {
			return true, ""
		},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestEngine_Register_Custom(t *testing.T) {
	e := NewEngine()
	err := e.Register(
		"always_true",
		func(_ Definition, _ any) (bool, string) {
			return true, "ok"
		},
	)
	require.NoError(t, err)

	result := e.Evaluate(
		Definition{Type: "always_true"}, nil,
	)
	assert.True(t, result.Passed)
}

func TestEngine_EvaluateAll(t *testing.T) {
	e := NewEngine()
	assertions := []Definition{
		{Type: "equals", Target: "a", Value: 1},
		{Type: "equals", Target: "b", Value: 2},
	}
	values := map[string]any{"a": 1, "b": 3}

	results := e.EvaluateAll(assertions, values)
	require.Len(t, results, 2)
	assert.True(t, results[0].Passed)
	assert.False(t, results[1].Passed)
}

func TestEngine_EvaluateAll_MissingTarget(t *testing.T) {
	e := NewEngine()
	results := e.EvaluateAll(
		[]Definition{
			{Type: "equals", Target: "gone", Value: 1},
		},
		map[string]any{},
	)
	require.Len(t, results, 1)
	assert.False(t, results[0].Passed)
	assert.Contains(
		t, results[0].Message, "target not found",
	)
}
