// Package main provides the aastress command, which replays randomized
// insert/delete/search workloads against an AA tree and a reference model.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexhholmes/aatree"
	"github.com/alexhholmes/aatree/internal/stress"
	"github.com/alexhholmes/aatree/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := stress.DefaultConfig()
	var logKind string

	cmd := &cobra.Command{
		Use:   "aastress",
		Short: "Stress an AA tree against a reference ordered set",
		Long: `aastress fills, churns and drains an AA tree in rounds, checking the
tree invariants, in-order walks and every search order against a
google/btree model. It exits non-zero on the first divergence; rerun with
the same --seed to replay it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, sync, err := newLogger(logKind)
			if err != nil {
				return err
			}
			defer sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			report, err := stress.Run(ctx, cfg, log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d rounds, %d inserts, %d deletes, %d duplicates, %d checks, max level %d\n",
				report.Rounds, report.Inserts, report.Deletes, report.Duplicates, report.Checks, report.MaxLevel)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&cfg.Count, "count", "n", cfg.Count, "number of distinct entries")
	flags.IntVarP(&cfg.Rounds, "rounds", "r", cfg.Rounds, "number of fill/churn/drain rounds")
	flags.IntVar(&cfg.Ops, "ops", cfg.Ops, "random operations per round (0 = 4*count)")
	flags.Int64VarP(&cfg.Seed, "seed", "s", cfg.Seed, "workload seed")
	flags.IntVar(&cfg.VerifyEvery, "verify-every", cfg.VerifyEvery, "full check every N operations (0 = round boundaries only)")
	flags.StringVar(&logKind, "log", "zap", "logger: zap, logrus or slog")

	return cmd
}

func newLogger(kind string) (aatree.Logger, func(), error) {
	switch kind {
	case "zap":
		z, err := zap.NewDevelopment()
		if err != nil {
			return nil, nil, fmt.Errorf("create zap logger: %w", err)
		}
		return logger.NewZap(z), func() { _ = z.Sync() }, nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(os.Stderr)
		return logger.NewLogrus(l), func() {}, nil
	case "slog":
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown logger %q", kind)
	}
}
