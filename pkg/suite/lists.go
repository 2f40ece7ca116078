package suite

import (
	"fmt"

	"digital.vasic.selfcheck/pkg/check"
)

// listsGroup verifies length, indexed access (including
// negative indices counting from the end), and append growth
// over a fixed literal slice.
type listsGroup struct {
	base
}

func newListsGroup(meta Meta) check.Group {
	return &listsGroup{base: newBase(meta)}
}

// Run evaluates the list assertions.
func (g *listsGroup) Run() error {
	lst := []int{1, 2, 3, 4, 5}

	steps := []step{
		{
			def("length", "list", 5, fmt.Sprintf(
				"List length incorrect: %d", len(lst),
			)),
			lst,
		},
		{
			def("equals", "first", 1,
				"List indexing failed"),
			at(lst, 0),
		},
		{
			def("equals", "last", 5,
				"Negative indexing failed"),
			at(lst, -1),
		},
	}
	if err := g.eval(steps); err != nil {
		return err
	}

	lst = append(lst, 6)

	return g.eval([]step{
		{
			def("length", "list", 6,
				"List append failed"),
			lst,
		},
	})
}

// at returns the element of lst at index i, where a negative
// index counts from the end: -1 denotes the final element.
func at(lst []int, i int) int {
	if i < 0 {
		i += len(lst)
	}
	return lst[i]
}
