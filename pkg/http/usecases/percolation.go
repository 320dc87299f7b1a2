package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/lintang-b-s/Percolatorx/pkg/percolation"
	"github.com/lintang-b-s/Percolatorx/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrSideLengthTooLarge = errors.New("side length exceeds the configured maximum")
	ErrTooManyTrials      = errors.New("number of trials exceeds the configured maximum")
)

type PercolationService struct {
	log           *zap.Logger
	statsRunner   StatsRunner
	trialRunner   TrialRunner
	maxSideLength int
	maxTrials     int
	workers       int
}

func NewPercolationService(log *zap.Logger, maxSideLength, maxTrials, workers int) *PercolationService {
	return &PercolationService{
		log:           log,
		statsRunner:   statsRunnerFunc(percolation.NewStats),
		trialRunner:   trialRunnerFunc(percolation.RunTrialContext),
		maxSideLength: maxSideLength,
		maxTrials:     maxTrials,
		workers:       workers,
	}
}

// Stats. runs a percolation experiment until it finishes or ctx is done. seed == nil means a time based seed,
// workers <= 0 means the service default.
func (ps *PercolationService) Stats(ctx context.Context, n, trials int, seed *uint64, workers int) (*percolation.Stats, error) {
	if err := ps.checkSideLength(n); err != nil {
		return nil, err
	}
	if ps.maxTrials > 0 && trials > ps.maxTrials {
		return nil, util.WrapErrorf(ErrTooManyTrials, util.ErrBadParamInput, "trials %d exceeds the maximum of %d", trials, ps.maxTrials)
	}
	if workers <= 0 {
		workers = ps.workers
	}

	opts := []percolation.StatsOption{percolation.WithContext(ctx), percolation.WithWorkers(workers), percolation.WithLogger(ps.log)}
	if seed != nil {
		opts = append(opts, percolation.WithSeed(*seed))
	}
	return ps.statsRunner.Run(n, trials, opts...)
}

// Simulate. runs a single trial and returns the grid at the moment it first percolates.
func (ps *PercolationService) Simulate(ctx context.Context, n int, seed *uint64) (*percolation.Percolation, error) {
	if err := ps.checkSideLength(n); err != nil {
		return nil, err
	}
	s := uint64(time.Now().UnixNano())
	if seed != nil {
		s = *seed
	}
	perc, err := ps.trialRunner.Run(ctx, n, percolation.NewRandomSource(s))
	if err != nil {
		return nil, err
	}
	ps.log.Debug("simulated trial", zap.Int("n", n), zap.Uint64("seed", s),
		zap.Int("open_sites", perc.NumberOfOpenSites()))
	return perc, nil
}

func (ps *PercolationService) checkSideLength(n int) error {
	if ps.maxSideLength > 0 && n > ps.maxSideLength {
		return util.WrapErrorf(ErrSideLengthTooLarge, util.ErrBadParamInput, "side length %d exceeds the maximum of %d", n, ps.maxSideLength)
	}
	return nil
}
