package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/slotreel/internal/config"
	"github.com/roach88/slotreel/internal/host"
	"github.com/roach88/slotreel/internal/trace"
)

// SpinOptions holds flags for the spin command.
type SpinOptions struct {
	*RootOptions
	Cursors  []int
	Stagger  int
	MaxTicks int
	Seed     uint64
	Trace    bool

	// RunTokens overrides the UUIDv7 generator (tests).
	RunTokens host.RunTokenGenerator
}

// SpinResult is the JSON payload of the spin command.
type SpinResult struct {
	host.Outcome
	Trace []trace.Event `json:"trace,omitempty"`
}

// NewSpinCommand creates the spin command.
func NewSpinCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SpinOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "spin <config>",
		Short: "Run one spin headlessly",
		Long: `Build the machine described by a config, spin every reel, stop them on
the requested cursors and tick until the machine settles.

Without --cursors every reel stops on a cursor drawn from the symbol strip,
seeded by --seed.

Examples:
  slotreel spin machine.yaml
  slotreel spin machine.yaml --cursors 3,3,3 --stagger 4
  slotreel spin machine.yaml --seed 42 --trace --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpin(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntSliceVar(&opts.Cursors, "cursors", nil, "stop cursor per reel")
	cmd.Flags().IntVar(&opts.Stagger, "stagger", 0, "ticks between consecutive reel stops")
	cmd.Flags().IntVar(&opts.MaxTicks, "max-ticks", host.DefaultMaxTicks, "give up after this many ticks")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 1, "seed for drawn stop cursors")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "include the event trace in JSON output")

	return cmd
}

func runSpin(opts *SpinOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Stagger < 0 {
		_ = formatter.Error(ErrCodeBadArgument, "--stagger must be non-negative", nil)
		return NewExitError(ExitCommandError, "invalid --stagger")
	}
	if opts.MaxTicks <= 0 {
		_ = formatter.Error(ErrCodeBadArgument, "--max-ticks must be positive", nil)
		return NewExitError(ExitCommandError, "invalid --max-ticks")
	}

	cfg, err := loadConfig(formatter, path)
	if err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			_ = formatter.Error(ErrCodeConfigInvalid, verr.Error(), nil)
			return WrapExitError(ExitFailure, "invalid config", verr)
		}
		return err
	}

	cursors := opts.Cursors
	if len(cursors) == 0 {
		cursors = drawCursors(opts.Seed, cfg.Columns, len(cfg.SymbolStrip()))
	}
	if len(cursors) != cfg.Columns {
		msg := fmt.Sprintf("--cursors has %d values for %d reels", len(cursors), cfg.Columns)
		_ = formatter.Error(ErrCodeBadArgument, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	sessionOpts := []host.SessionOption{host.WithMaxTicks(opts.MaxTicks)}
	if opts.RunTokens != nil {
		sessionOpts = append(sessionOpts, host.WithRunTokenGenerator(opts.RunTokens))
	}
	var rec *trace.Recorder
	if opts.Trace {
		rec = trace.NewRecorder()
		sessionOpts = append(sessionOpts, host.WithRecorder(rec))
	}

	session, err := host.NewSession(cfg, sessionOpts...)
	if err != nil {
		_ = formatter.Error(ErrCodeConfigInvalid, err.Error(), nil)
		return WrapExitError(ExitFailure, "failed to build machine", err)
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := session.Spin(); err != nil {
		return spinFailed(formatter, err)
	}
	if err := session.StopStaggered(cursors, opts.Stagger); err != nil {
		return spinFailed(formatter, err)
	}
	steps, err := session.RunUntilIdle(ctx)
	if err != nil {
		return spinFailed(formatter, err)
	}
	formatter.VerboseLog("Settled after %d ticks", steps)

	outcome := session.Outcome()
	if formatter.IsJSON() {
		result := SpinResult{Outcome: outcome}
		if rec != nil {
			result.Trace = rec.Events()
		}
		return formatter.Respond(CLIResponse{Status: "ok", Data: result, RunID: outcome.RunToken})
	}

	w := formatter.Writer
	fmt.Fprintf(w, "run %s settled after %d ticks\n", outcome.RunToken, outcome.Ticks)
	fmt.Fprint(w, renderBoard(outcome.Board))
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func spinFailed(formatter *OutputFormatter, err error) error {
	slog.Error("spin failed", "error", err)
	_ = formatter.Error(ErrCodeSpinFailed, err.Error(), nil)
	return WrapExitError(ExitFailure, "spin failed", err)
}

// drawCursors picks one stop cursor per reel in [0, stripLen).
func drawCursors(seed uint64, reels, stripLen int) []int {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]int, reels)
	for i := range out {
		out[i] = rng.IntN(stripLen)
	}
	return out
}

// renderBoard lays symbols out in padded columns, one screen row per line.
func renderBoard(board [][]string) string {
	if len(board) == 0 {
		return ""
	}
	widths := make([]int, len(board[0]))
	for _, row := range board {
		for c, sym := range row {
			widths[c] = max(widths[c], len(sym))
		}
	}

	var b strings.Builder
	for _, row := range board {
		b.WriteString("|")
		for c, sym := range row {
			fmt.Fprintf(&b, " %-*s |", widths[c], sym)
		}
		b.WriteString("\n")
	}
	return b.String()
}
