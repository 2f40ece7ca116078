package suite

import "digital.vasic.selfcheck/pkg/check"

// arithmeticGroup verifies addition, subtraction,
// multiplication, and division over fixed literal operands.
type arithmeticGroup struct {
	base
}

func newArithmeticGroup(meta Meta) check.Group {
	return &arithmeticGroup{base: newBase(meta)}
}

// Run evaluates the arithmetic assertions.
func (g *arithmeticGroup) Run() error {
	steps := []step{
		{def("equals", "sum", 4, "Addition failed"), 2 + 2},
		{def("equals", "difference", 5, "Subtraction failed"), 10 - 5},
		{def("equals", "product", 12, "Multiplication failed"), 3 * 4},
		{def("equals", "quotient", 5, "Division failed"), 20 / 4},
	}
	return g.eval(steps)
}
