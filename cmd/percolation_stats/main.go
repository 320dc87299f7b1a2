package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/lintang-b-s/Percolatorx/pkg/logger"
	"github.com/lintang-b-s/Percolatorx/pkg/percolation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		seed    uint64
		workers int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "percolation_stats <n> <trials>",
		Short: "Estimate the percolation threshold of an n-by-n grid by Monte Carlo simulation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("n must be an integer, got %q", args[0])
			}
			trials, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("trials must be an integer, got %q", args[1])
			}

			level := zapcore.WarnLevel
			if verbose {
				level = zapcore.DebugLevel
			}
			log, err := logger.NewWithLevel(level)
			if err != nil {
				return err
			}
			defer log.Sync()

			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			log.Info("starting percolation experiment", zap.Int("n", n), zap.Int("trials", trials),
				zap.Uint64("seed", seed), zap.Int("workers", workers))

			st, err := percolation.NewStats(n, trials,
				percolation.WithSeed(seed),
				percolation.WithWorkers(workers),
				percolation.WithLogger(log),
				percolation.WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), st)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Uint64VarP(&seed, "seed", "s", 0, "random seed, defaults to the current time")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "number of goroutines running trials")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every trial to stderr")
	return cmd
}

func printStats(w io.Writer, st *percolation.Stats) {
	fmt.Fprintf(w, "%-23s = %v\n", "mean", st.Mean())
	fmt.Fprintf(w, "%-23s = %v\n", "stddev", st.Stddev())
	fmt.Fprintf(w, "%-23s = [%v, %v]\n", "95% confidence interval", st.ConfidenceLo(), st.ConfidenceHi())
}
