package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/quanta/internal/harness"
)

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name   string   `json:"name"`
	Pass   bool     `json:"pass"`
	Errors []string `json:"errors,omitempty"`
}

// ScenarioRunSummary holds the overall result across scenario files.
type ScenarioRunSummary struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewScenarioCommand creates the scenario command.
func NewScenarioCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario <file>...",
		Short: "Run conformance scenarios",
		Long: `Run YAML scenario files through the conformance harness.

Each scenario evaluates quantity operations over named registers and
validates the canonical rendering of every step.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (missing files, malformed scenarios)

Examples:
  quanta scenario testdata/force_product.yaml
  quanta scenario scenarios/*.yaml --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(rootOpts, args, cmd)
		},
	}
	return cmd
}

func runScenarios(rootOpts *RootOptions, paths []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    rootOpts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   rootOpts.Verbose,
	}

	summary := ScenarioRunSummary{
		Scenarios: make([]ScenarioResult, 0, len(paths)),
		Total:     len(paths),
	}

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return NewExitError(ExitCommandError, fmt.Sprintf("scenario file not found: %s", path))
		}

		scenario, err := harness.LoadScenario(path)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to load %s", path), err)
		}

		formatter.VerboseLog("running %s: %s", scenario.Name, scenario.Description)
		result, err := harness.Run(scenario)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("failed to run %s", scenario.Name), err)
		}

		summary.Scenarios = append(summary.Scenarios, ScenarioResult{
			Name:   scenario.Name,
			Pass:   result.Pass,
			Errors: result.Errors,
		})
		if result.Pass {
			summary.Passed++
		} else {
			summary.Failed++
		}
	}

	if rootOpts.Format == "json" {
		if err := formatter.Success(summary); err != nil {
			return err
		}
	} else {
		for _, s := range summary.Scenarios {
			status := "PASS"
			if !s.Pass {
				status = "FAIL"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", status, s.Name)
			for _, e := range s.Errors {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", e)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d/%d scenarios passed\n", summary.Passed, summary.Total)
	}

	if summary.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", summary.Failed))
	}
	return nil
}
