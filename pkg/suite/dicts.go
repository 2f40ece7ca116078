package suite

import (
	"fmt"

	"digital.vasic.selfcheck/pkg/check"
)

// dictsGroup verifies keyed lookup, key containment, and size
// over a fixed literal string map.
type dictsGroup struct {
	base
}

func newDictsGroup(meta Meta) check.Group {
	return &dictsGroup{base: newBase(meta)}
}

// Run evaluates the dictionary assertions.
func (g *dictsGroup) Run() error {
	d := map[string]string{
		"name":    "TestMe",
		"version": "0.7",
	}

	steps := []step{
		{
			def("equals", "name", "TestMe",
				"Dictionary access failed"),
			d["name"],
		},
		{
			def("has_key", "dict", "version",
				"Dictionary key check failed"),
			d,
		},
		{
			def("length", "dict", 2, fmt.Sprintf(
				"Dictionary length incorrect: %d", len(d),
			)),
			d,
		},
	}
	return g.eval(steps)
}
