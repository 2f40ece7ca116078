// Package registry provides check group registration and
// ordered retrieval. Groups run in the order they were
// registered.
package registry

import (
	"fmt"
	"sync"

	"digital.vasic.selfcheck/pkg/check"
)

// Registry defines the interface for managing check groups.
type Registry interface {
	// Register adds a check group. Returns an error if a
	// group with the same ID is already registered.
	Register(g check.Group) error

	// Get retrieves a group by ID.
	Get(id check.ID) (check.Group, error)

	// All returns every registered group in registration
	// order.
	All() []check.Group

	// Count returns the number of registered groups.
	Count() int

	// Clear removes all registered groups.
	Clear()
}

// DefaultRegistry is the standard Registry implementation. It
// is safe for concurrent use.
type DefaultRegistry struct {
	mu     sync.RWMutex
	groups map[check.ID]check.Group
	order  []check.ID
}

// New creates an empty DefaultRegistry.
func New() *DefaultRegistry {
	return &DefaultRegistry{
		groups: make(map[check.ID]check.Group),
	}
}

// Default is the package-level registry used by the runner
// when no registry is supplied.
var Default = New()

// Register adds a check group, preserving registration order.
func (r *DefaultRegistry) Register(g check.Group) error {
	if g == nil {
		return fmt.Errorf("cannot register nil group")
	}
	if g.ID() == "" {
		return fmt.Errorf("cannot register group with empty ID")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.groups[g.ID()]; exists {
		return fmt.Errorf(
			"group already registered: %s", g.ID(),
		)
	}

	r.groups[g.ID()] = g
	r.order = append(r.order, g.ID())
	return nil
}

// Get retrieves a group by ID.
func (r *DefaultRegistry) Get(
	id check.ID,
) (check.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, exists := r.groups[id]
	if !exists {
		return nil, fmt.Errorf("group not found: %s", id)
	}
	return g, nil
}

// All returns every registered group in registration order.
func (r *DefaultRegistry) All() []check.Group {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groups := make([]check.Group, 0, len(r.order))
	for _, id := range r.order {
		groups = append(groups, r.groups[id])
	}
	return groups
}

// Count returns the number of registered groups.
func (r *DefaultRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.groups)
}

// Clear removes all registered groups.
func (r *DefaultRegistry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups = make(map[check.ID]check.Group)
	r.order = nil
}
