// Package suite provides the built-in check groups: Arithmetic,
// Strings, Lists, and Dictionaries. Group identity, labels, and
// execution order come from an embedded YAML manifest.
package suite

import (
	"digital.vasic.selfcheck/pkg/assertion"
	"digital.vasic.selfcheck/pkg/check"
)

// Meta carries a group's identity as declared in the manifest.
type Meta struct {
	// ID is the unique group identifier.
	ID check.ID `yaml:"id"`

	// Label is the human-readable label used in output lines.
	Label string `yaml:"label"`

	// Description explains what the group verifies.
	Description string `yaml:"description"`
}

// step pairs an assertion definition with the concrete value it
// is evaluated against.
type step struct {
	def   assertion.Definition
	value any
}

// base provides the shared identity and evaluation plumbing for
// the built-in groups.
type base struct {
	meta   Meta
	engine assertion.Engine
}

func newBase(meta Meta) base {
	return base{
		meta:   meta,
		engine: assertion.NewEngine(),
	}
}

// ID returns the unique identifier for this group.
func (b *base) ID() check.ID { return b.meta.ID }

// Label returns the human-readable label of this group.
func (b *base) Label() string { return b.meta.Label }

// Description returns the group description.
func (b *base) Description() string {
	return b.meta.Description
}

// eval evaluates steps in order and converts the first failed
// assertion into an AssertionError carrying the step's fixed
// message.
func (b *base) eval(steps []step) error {
	for _, s := range steps {
		result := b.engine.Evaluate(s.def, s.value)
		if !result.Passed {
			return &check.AssertionError{
				Message: s.def.Message,
			}
		}
	}
	return nil
}

// def builds an assertion definition for a step.
func def(
	assertionType, target string,
	expected any,
	message string,
) assertion.Definition {
	return assertion.Definition{
		Type:    assertionType,
		Target:  target,
		Value:   expected,
		Message: message,
	}
}
