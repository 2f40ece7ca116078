package metrics

import (
	"sync"
	"time"

	"digital.vasic.selfcheck/pkg/check"
)

// InMemoryRecorder implements Recorder with simple in-memory
// counters. It is safe for concurrent use.
type InMemoryRecorder struct {
	mu         sync.Mutex
	executions map[string]int
	durations  map[check.ID][]time.Duration
	runTotal   int
}

// NewInMemoryRecorder creates an empty InMemoryRecorder.
func NewInMemoryRecorder() *InMemoryRecorder {
	return &InMemoryRecorder{
		executions: make(map[string]int),
		durations:  make(map[check.ID][]time.Duration),
	}
}

// RecordExecution records a single group execution.
func (m *InMemoryRecorder) RecordExecution(
	groupID check.ID,
	status string,
	duration time.Duration,
) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := string(groupID) + ":" + status
	m.executions[key]++
	m.durations[groupID] = append(
		m.durations[groupID], duration,
	)
}

// IncrementRunTotal increments the total run counter.
func (m *InMemoryRecorder) IncrementRunTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runTotal++
}

// ExecutionCount returns how many times the given group
// finished with the given status.
func (m *InMemoryRecorder) ExecutionCount(
	groupID check.ID,
	status string,
) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.executions[string(groupID)+":"+status]
}

// RunTotal returns the total number of recorded runs.
func (m *InMemoryRecorder) RunTotal() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.runTotal
}
