package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// jsonMarshal is a variable for dependency injection in tests.
var jsonMarshal = json.Marshal

// LogEntry represents a single JSON log entry.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// JSONLogger implements Logger with JSON Lines output to an
// io.Writer. It never opens files; the caller owns the sink.
type JSONLogger struct {
	mu     sync.Mutex
	output io.Writer
	level  LogLevel
	fields map[string]any
}

// NewJSONLogger creates a JSON logger writing to output. A nil
// output defaults to stderr.
func NewJSONLogger(
	output io.Writer,
	level LogLevel,
) *JSONLogger {
	if output == nil {
		output = os.Stderr
	}
	return &JSONLogger{
		output: output,
		level:  level,
		fields: make(map[string]any),
	}
}

func (l *JSONLogger) log(
	level LogLevel, msg string, fields ...Field,
) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level.String(),
		Message:   msg,
	}

	if len(l.fields) > 0 || len(fields) > 0 {
		entry.Fields = make(
			map[string]any, len(l.fields)+len(fields),
		)
		for k, v := range l.fields {
			entry.Fields[k] = v
		}
		for _, f := range fields {
			entry.Fields[f.Key] = f.Value
		}
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		fmt.Fprintf(
			os.Stderr,
			"failed to marshal log entry: %v\n", err,
		)
		return
	}

	fmt.Fprintln(l.output, string(data))
}

// Info logs an informational message.
func (l *JSONLogger) Info(msg string, fields ...Field) {
	l.log(LevelInfo, msg, fields...)
}

// Warn logs a warning message.
func (l *JSONLogger) Warn(msg string, fields ...Field) {
	l.log(LevelWarn, msg, fields...)
}

// Error logs an error message.
func (l *JSONLogger) Error(msg string, fields ...Field) {
	l.log(LevelError, msg, fields...)
}

// Debug logs a debug-level message.
func (l *JSONLogger) Debug(msg string, fields ...Field) {
	l.log(LevelDebug, msg, fields...)
}

// WithFields returns a new Logger with additional default
// fields.
func (l *JSONLogger) WithFields(fields ...Field) Logger {
	newFields := make(map[string]any, len(l.fields)+len(fields))
	for k, v := range l.fields {
		newFields[k] = v
	}
	for _, f := range fields {
		newFields[f.Key] = f.Value
	}
	return &JSONLogger{
		output: l.output,
		level:  l.level,
		fields: newFields,
	}
}

// Close is a no-op for JSONLogger; the caller owns the sink.
func (l *JSONLogger) Close() error {
	return nil
}
