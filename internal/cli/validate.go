package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// ValidationReport is the validate command's output: schema violations
// plus the value-level corrections normalization would apply.
type ValidationReport struct {
	Path         string        `json:"path"`
	SchemaIssues []SchemaIssue `json:"schemaIssues,omitempty"`
	Clamps       []string      `json:"clamps,omitempty"`
	Valid        bool          `json:"valid"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <state-file>",
		Short: "Validate a business state file",
		Long: `Validate a business state file (JSON or YAML).

Checks the document against the state schema and reports every value the
engine would silently correct (negative costs, units, or rates are clamped
to zero). A state that loads but carries corrections still computes; this
command exists so those corrections are visible instead of silent.

Example:
  makerbooks validate examples/workshop.json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	loaded, err := LoadState(path)
	if err != nil {
		return err
	}

	schemaIssues, err := ValidateStateDocument(loaded.Raw)
	if err != nil {
		return WrapExitError(ExitCommandError, "schema validation", err)
	}

	_, clamps := loaded.State.Normalized()
	slog.Debug("state validated",
		"path", path,
		"schema_issues", len(schemaIssues),
		"clamps", len(clamps),
	)

	report := ValidationReport{
		Path:         path,
		SchemaIssues: schemaIssues,
		Valid:        len(schemaIssues) == 0 && len(clamps) == 0,
	}
	for _, clamp := range clamps {
		report.Clamps = append(report.Clamps, clamp.String())
	}

	if opts.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		printValidationText(cmd, report)
	}

	if !report.Valid {
		return NewExitError(ExitFailure, fmt.Sprintf("%s: %d schema issue(s), %d value correction(s)",
			path, len(report.SchemaIssues), len(report.Clamps)))
	}
	return nil
}

func printValidationText(cmd *cobra.Command, report ValidationReport) {
	out := cmd.OutOrStdout()
	if report.Valid {
		fmt.Fprintf(out, "%s: valid\n", report.Path)
		return
	}
	fmt.Fprintf(out, "%s:\n", report.Path)
	for _, issue := range report.SchemaIssues {
		fmt.Fprintf(out, "  schema: %s\n", issue)
	}
	for _, clamp := range report.Clamps {
		fmt.Fprintf(out, "  value:  %s\n", clamp)
	}
}
