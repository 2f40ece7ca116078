package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.selfcheck/pkg/check"
)

// stubGroup is a minimal check.Group for registry tests.
type stubGroup struct {
	id check.ID
}

func (g *stubGroup) ID() check.ID        { return g.id }
func (g *stubGroup) Label() string       { return string(g.id) }
func (g *stubGroup) Description() string { return "" }
func (g *stubGroup) Run() error          { return nil }

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := New()
	g := &stubGroup{id: "arithmetic"}

	require.NoError(t, r.Register(g))

	got, err := r.Get("arithmetic")
	require.NoError(t, err)
	assert.Equal(t, g, got)
}

func TestRegistry_Register_Duplicate(t *testing.T) {
	r := New()
	require.NoError(
		t, r.Register(&stubGroup{id: "strings"}),
	)

	err := r.Register(&stubGroup{id: "strings"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_Register_Nil(t *testing.T) {
	r := New()
	assert.Error(t, r.Register(nil))
}

func TestRegistry_Register_EmptyID(t *testing.T) {
	r := New()
	assert.Error(t, r.Register(&stubGroup{id: ""}))
}

func TestRegistry_Get_NotFound(t *testing.T) {
	r := New()
	_, err := r.Get("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestRegistry_All_PreservesOrder(t *testing.T) {
	r := New()
	ids := []check.ID{"d", "a", "c", "b"}
	for _, id := range ids {
		require.NoError(
			t, r.Register(&stubGroup{id: id}),
		)
	}

	all := r.All()
	require.Len(t, all, len(ids))
	for i, g := range all {
		assert.Equal(
			t, ids[i], g.ID(),
			fmt.Sprintf("position %d", i),
		)
	}
}

func TestRegistry_CountAndClear(t *testing.T) {
	r := New()
	require.NoError(t, r.Register(&stubGroup{id: "one"}))
	require.NoError(t, r.Register(&stubGroup{id: "two"}))
	assert.Equal(t, 2, r.Count())

	r.Clear()
	assert.Equal(t, 0, r.Count())
	assert.Empty(t, r.All())
}
