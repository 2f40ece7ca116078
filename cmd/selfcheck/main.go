// Command selfcheck runs the built-in primitive check groups
// and exits 0 when every group passes, 1 otherwise. It takes
// no arguments and reads no configuration.
package main

import (
	"fmt"
	"io"
	"os"

	"digital.vasic.selfcheck/pkg/registry"
	"digital.vasic.selfcheck/pkg/report"
	"digital.vasic.selfcheck/pkg/runner"
	"digital.vasic.selfcheck/pkg/suite"
)

func main() {
	os.Exit(run(os.Stdout))
}

// run wires the built-in suite into a fresh registry, executes
// it once, and returns the process exit code.
func run(out io.Writer) int {
	reg := registry.New()
	if err := suite.Register(reg); err != nil {
		fmt.Fprintf(os.Stderr, "selfcheck: %v\n", err)
		return 1
	}

	r := runner.NewRunner(
		runner.WithRegistry(reg),
		runner.WithReporter(report.NewConsoleReporter(out)),
	)

	return report.ExitCode(r.RunAll())
}
