package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/makerbooks/makerbooks/internal/harness"
)

// ScenarioOutcome is one scenario's result in the test command output.
type ScenarioOutcome struct {
	Name     string   `json:"name"`
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures,omitempty"`
}

// TestSummary is the test command's payload.
type TestSummary struct {
	Scenarios []ScenarioOutcome `json:"scenarios"`
	Passed    int               `json:"passed"`
	Failed    int               `json:"failed"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test <scenario-file-or-dir>",
		Short: "Run conformance scenarios against the engine",
		Long: `Run conformance scenarios against the engine.

A scenario file is a YAML document with a business state and assertions on
the computed metrics. Passing a directory runs every scenario in it.

Example:
  makerbooks test scenarios/
  makerbooks test scenarios/tax-floor.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runScenarios(opts *RootOptions, path string, cmd *cobra.Command) error {
	scenarios, err := loadScenarios(path)
	if err != nil {
		return err
	}

	summary := TestSummary{}
	for _, scenario := range scenarios {
		result, err := harness.Run(scenario)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("run scenario %q", scenario.Name), err)
		}

		outcome := ScenarioOutcome{
			Name:     result.ScenarioName,
			Passed:   result.Passed(),
			Failures: result.Failures,
		}
		summary.Scenarios = append(summary.Scenarios, outcome)
		if outcome.Passed {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		if err := formatter.Success(summary); err != nil {
			return err
		}
	} else {
		printTestText(cmd, summary)
	}

	if summary.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenario(s) failed", summary.Failed, len(summary.Scenarios)))
	}
	return nil
}

func loadScenarios(path string) ([]*harness.Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "stat scenario path", err)
	}

	if info.IsDir() {
		scenarios, err := harness.LoadScenarioDir(path)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "load scenarios", err)
		}
		return scenarios, nil
	}

	scenario, err := harness.LoadScenario(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load scenario", err)
	}
	return []*harness.Scenario{scenario}, nil
}

func printTestText(cmd *cobra.Command, summary TestSummary) {
	out := cmd.OutOrStdout()
	for _, outcome := range summary.Scenarios {
		if outcome.Passed {
			fmt.Fprintf(out, "PASS  %s\n", outcome.Name)
			continue
		}
		fmt.Fprintf(out, "FAIL  %s\n", outcome.Name)
		for _, failure := range outcome.Failures {
			fmt.Fprintf(out, "      %s\n", failure)
		}
	}
	fmt.Fprintf(out, "\n%d passed, %d failed\n", summary.Passed, summary.Failed)
}
