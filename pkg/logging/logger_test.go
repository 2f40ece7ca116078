package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestFieldHelpers(t *testing.T) {
	assert.Equal(
		t, Field{Key: "k", Value: "v"},
		StringField("k", "v"),
	)
	assert.Equal(
		t, Field{Key: "n", Value: 3}, IntField("n", 3),
	)
	assert.Equal(
		t, Field{Key: "ok", Value: true},
		BoolField("ok", true),
	)
	assert.Equal(
		t, Field{Key: "any", Value: 1.5},
		LogField("any", 1.5),
	)
}

func TestErrorField(t *testing.T) {
	assert.Equal(
		t, Field{Key: "error", Value: "<nil>"},
		ErrorField(nil),
	)

	err := assert.AnError
	assert.Equal(
		t,
		Field{Key: "error", Value: err.Error()},
		ErrorField(err),
	)
}

func TestNullLogger_NoOps(t *testing.T) {
	logger := NullLogger{}
	logger.Info("ignored")
	logger.Warn("ignored")
	logger.Error("ignored")
	logger.Debug("ignored")

	assert.Equal(
		t, NullLogger{}, logger.WithFields(IntField("n", 1)),
	)
	assert.NoError(t, logger.Close())
}
