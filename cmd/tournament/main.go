// Command tournament schedules a two-team round-based tournament with
// balanced first moves, or reports why the requested construction cannot
// exist. The schedule is printed to stdout; progress and verdicts are
// logged to stderr.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tesolchina/math-tournament/export"
	"github.com/tesolchina/math-tournament/family"
	"github.com/tesolchina/math-tournament/search"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// options collects flag values before they are merged with the config file
// and translated into search.Options.
type options struct {
	n            int
	family       string
	backend      string
	attempts     int
	attemptNodes int64
	nodeBudget   int64
	timeLimit    time.Duration
	workers      int
	seed         int64
	configPath   string
	quiet        bool
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "tournament",
		Short: "Schedule a two-team tournament with balanced first moves",
		Long: `tournament searches for a schedule of two teams of n players each:
every player of one team meets every player of the other exactly once,
each round pairs everyone off, and first moves are split evenly per
round and per player. On success the schedule is printed one round per
line with the first mover of each matchup printed first. When a
construction family is selected and provably empty, the infeasibility
certificate is printed instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, &o)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&o.n, "n", "n", 10, "players per team (must be even)")
	f.StringVar(&o.family, "family", "", `restrict to a construction family ("cyclic-shift", "shift-swap")`)
	f.StringVar(&o.backend, "backend", "backtrack", `coloring backend ("backtrack" or "sat")`)
	f.IntVar(&o.attempts, "attempts", 0, "candidate squares to try (0 = default)")
	f.Int64Var(&o.attemptNodes, "attempt-nodes", 0, "node cap per candidate (0 = default)")
	f.Int64Var(&o.nodeBudget, "node-budget", 0, "total node budget (0 = unlimited)")
	f.DurationVar(&o.timeLimit, "time-limit", 0, "wall-clock budget (0 = unlimited)")
	f.IntVar(&o.workers, "workers", 1, "parallel search workers")
	f.Int64Var(&o.seed, "seed", 1, "seed for the candidate square generator")
	f.StringVar(&o.configPath, "config", "", "TOML config file; flags set on the command line win")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "suppress progress logging")

	return cmd
}

func run(cmd *cobra.Command, o *options) error {
	logger, err := newLogger(o.quiet)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if o.configPath != "" {
		if err = o.applyFile(cmd); err != nil {
			return err
		}
	}
	opts, err := o.searchOptions()
	if err != nil {
		return err
	}

	logger.Info("solving",
		zap.Int("n", o.n),
		zap.String("family", o.family),
		zap.String("backend", o.backend),
		zap.Int("workers", opts.Workers),
		zap.Int64("seed", opts.Seed))

	start := time.Now()
	res, err := search.SolveContext(cmd.Context(), o.n, opts)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		logger.Info("schedule found",
			zap.Int64("nodes", res.Nodes),
			zap.Int("attempts", res.Attempts),
			zap.Duration("elapsed", elapsed))
		return export.WriteTable(cmd.OutOrStdout(), *res.Schedule)

	case errors.Is(err, search.ErrInfeasible):
		logger.Warn("family proven infeasible", zap.String("family", o.family))
		if werr := export.WriteCertificate(cmd.OutOrStdout(), res.Certificate); werr != nil {
			return werr
		}
		return err

	case errors.Is(err, search.ErrSearchExhausted):
		logger.Warn("explored space holds no schedule",
			zap.Int64("nodes", res.Nodes),
			zap.Int("attempts", res.Attempts),
			zap.Duration("elapsed", elapsed))
		return err

	case errors.Is(err, search.ErrUndetermined):
		logger.Warn("budget expired before a verdict",
			zap.Int64("nodes", res.Nodes),
			zap.Int("attempts", res.Attempts),
			zap.Duration("elapsed", elapsed))
		return err

	default:
		logger.Error("solve failed", zap.Error(err))
		return err
	}
}

// searchOptions translates the CLI surface into engine options.
func (o *options) searchOptions() (search.Options, error) {
	opts := search.Options{
		Family:       family.Tag(o.family),
		Attempts:     o.attempts,
		AttemptNodes: o.attemptNodes,
		NodeBudget:   o.nodeBudget,
		TimeLimit:    o.timeLimit,
		Workers:      o.workers,
		Seed:         o.seed,
	}
	switch o.backend {
	case "backtrack":
		opts.Backend = search.BacktrackBackend
	case "sat":
		opts.Backend = search.SATBackend
	default:
		return opts, fmt.Errorf("unknown backend %q", o.backend)
	}

	return opts, nil
}

func newLogger(quiet bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}

	return cfg.Build()
}
