package usecases

import (
	"context"

	"github.com/lintang-b-s/Percolatorx/pkg/percolation"
)

type StatsRunner interface {
	Run(n, trials int, opts ...percolation.StatsOption) (*percolation.Stats, error)
}

type TrialRunner interface {
	Run(ctx context.Context, n int, src percolation.RandomSource) (*percolation.Percolation, error)
}

type statsRunnerFunc func(n, trials int, opts ...percolation.StatsOption) (*percolation.Stats, error)

func (f statsRunnerFunc) Run(n, trials int, opts ...percolation.StatsOption) (*percolation.Stats, error) {
	return f(n, trials, opts...)
}

type trialRunnerFunc func(ctx context.Context, n int, src percolation.RandomSource) (*percolation.Percolation, error)

func (f trialRunnerFunc) Run(ctx context.Context, n int, src percolation.RandomSource) (*percolation.Percolation, error) {
	return f(ctx, n, src)
}
