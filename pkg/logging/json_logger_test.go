package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONLogger_WritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, LevelDebug)

	logger.Info("run_completed", IntField("passed", 4))
	logger.Debug("group_started",
		StringField("group_id", "arithmetic"),
	)

	lines := strings.Split(
		strings.TrimSpace(buf.String()), "\n",
	)
	require.Len(t, lines, 2)

	var entry LogEntry
	require.NoError(
		t, json.Unmarshal([]byte(lines[0]), &entry),
	)
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "run_completed", entry.Message)
	assert.EqualValues(t, 4, entry.Fields["passed"])
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, LevelWarn)

	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	lines := strings.Split(
		strings.TrimSpace(buf.String()), "\n",
	)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "kept")
}

func TestJSONLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, LevelDebug)
	child := logger.WithFields(StringField("run", "7"))

	child.Info("hello")

	var entry LogEntry
	require.NoError(
		t,
		json.Unmarshal(
			bytes.TrimSpace(buf.Bytes()), &entry,
		),
	)
	assert.Equal(t, "7", entry.Fields["run"])
}

func TestJSONLogger_MarshalFailure(t *testing.T) {
	orig := jsonMarshal
	jsonMarshal = func(any) ([]byte, error) {
		return nil, errors.New("marshal broken")
	}
	defer func() { jsonMarshal = orig }()

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, LevelDebug)
	logger.Info("lost")

	assert.Empty(t, buf.String())
}

func TestJSONLogger_Close(t *testing.T) {
	logger := NewJSONLogger(&bytes.Buffer{}, LevelInfo)
	assert.NoError(t, logger.Close())
}
