package suite

import (
	"fmt"
	"strings"

	"digital.vasic.selfcheck/pkg/check"
)

// stringsGroup verifies length, case folding, and substring
// containment over a fixed literal string.
type stringsGroup struct {
	base
}

func newStringsGroup(meta Meta) check.Group {
	return &stringsGroup{base: newBase(meta)}
}

// Run evaluates the string assertions.
func (g *stringsGroup) Run() error {
	s := "Hello World"

	steps := []step{
		{
			def("length", "text", 11, fmt.Sprintf(
				"String length incorrect: %d", len(s),
			)),
			s,
		},
		{
			def("equals", "lower", "hello world",
				"Lowercase conversion failed"),
			strings.ToLower(s),
		},
		{
			def("equals", "upper", "HELLO WORLD",
				"Uppercase conversion failed"),
			strings.ToUpper(s),
		},
		{
			def("contains", "text", "World",
				"Substring search failed"),
			s,
		},
	}
	return g.eval(steps)
}
