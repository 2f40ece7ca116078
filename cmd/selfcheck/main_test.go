package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AllPass(t *testing.T) {
	var buf bytes.Buffer
	code := run(&buf)

	require.Equal(t, 0, code)

	want := "✓ Arithmetic test passed\n" +
		"✓ Strings test passed\n" +
		"✓ Lists test passed\n" +
		"✓ Dictionaries test passed\n" +
		"\n" +
		"Python tests completed: 4 passed, 0 failed\n"
	assert.Equal(t, want, buf.String())
}

func TestRun_Idempotent(t *testing.T) {
	var first, second bytes.Buffer

	require.Equal(t, 0, run(&first))
	require.Equal(t, 0, run(&second))

	assert.Equal(t, first.String(), second.String())
}
