package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/slotreel/internal/config"
)

// ValidationResult is the JSON payload of the validate command.
type ValidationResult struct {
	Valid   bool          `json:"valid"`
	Path    string        `json:"path"`
	Columns int           `json:"columns,omitempty"`
	Rows    int           `json:"rows,omitempty"`
	Speed   float64       `json:"speed,omitempty"`
	Issues  []ConfigIssue `json:"issues,omitempty"`
}

// ConfigIssue is one schema violation.
type ConfigIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config>",
		Short: "Check a machine config file",
		Long: `Decode a machine config and check it against the config schema.

Unknown keys, non-positive grid sizes, a zero speed, empty bounds and an
empty symbol strip are all rejected.

Exit codes:
  0 - Config is valid
  1 - Config is invalid
  2 - Config could not be read`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	cfg, err := loadConfig(formatter, path)
	if err != nil {
		var verr *config.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		return outputValidationFailure(formatter, path, verr)
	}

	if formatter.IsJSON() {
		return formatter.Success(ValidationResult{
			Valid:   true,
			Path:    path,
			Columns: cfg.Columns,
			Rows:    cfg.Rows,
			Speed:   cfg.Speed,
		})
	}
	fmt.Fprintf(formatter.Writer, "✓ %s valid (%dx%d, speed %g)\n", path, cfg.Columns, cfg.Rows, cfg.Speed)
	return nil
}

// loadConfig loads path. Read and decode failures are reported and turned
// into ExitErrors; schema violations are returned as *config.ValidationError
// for the caller to report.
func loadConfig(formatter *OutputFormatter, path string) (*config.Config, error) {
	formatter.VerboseLog("Loading config %s", path)

	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}

	var verr *config.ValidationError
	switch {
	case errors.As(err, &verr):
		return nil, err
	case errors.Is(err, os.ErrNotExist):
		_ = formatter.Error(ErrCodeConfigNotFound, err.Error(), nil)
		return nil, WrapExitError(ExitCommandError, "config not found", err)
	default:
		_ = formatter.Error(ErrCodeConfigInvalid, err.Error(), nil)
		return nil, WrapExitError(ExitFailure, "invalid config", err)
	}
}

func outputValidationFailure(formatter *OutputFormatter, path string, verr *config.ValidationError) error {
	issue := ConfigIssue{Field: verr.Field, Message: verr.Message}
	if verr.Pos.IsValid() {
		issue.Line = verr.Pos.Line()
		issue.Column = verr.Pos.Column()
	}

	if formatter.IsJSON() {
		if err := formatter.Respond(CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Path: path, Issues: []ConfigIssue{issue}},
			Error:  &CLIError{Code: ErrCodeConfigInvalid, Message: verr.Error()},
		}); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(formatter.Writer, "✗ Validation failed")
		if issue.Line > 0 {
			fmt.Fprintf(formatter.Writer, "line %d, column %d\n", issue.Line, issue.Column)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n", issue.Field, issue.Message)
	}
	return WrapExitError(ExitFailure, "validation failed", verr)
}
