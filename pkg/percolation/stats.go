package percolation

import (
	"context"
	"math"
	"time"

	"github.com/lintang-b-s/Percolatorx/pkg/concurrent"
	"github.com/lintang-b-s/Percolatorx/pkg/util"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

const (
	CONFIDENCE_95 = 1.96
)

// RandomSource. uniform integers in [0, bound), bound > 0.
type RandomSource interface {
	Uniform(bound int) int
}

type randSource struct {
	rng *rand.Rand
}

func NewRandomSource(seed uint64) RandomSource {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSource) Uniform(bound int) int {
	return s.rng.Intn(bound)
}

type statsOptions struct {
	ctx     context.Context
	source  RandomSource
	seed    uint64
	workers int
	log     *zap.Logger
}

type StatsOption func(*statsOptions)

// WithContext. the experiment stops with ctx.Err() once ctx is done, checked between trials and inside every trial.
func WithContext(ctx context.Context) StatsOption {
	return func(o *statsOptions) {
		o.ctx = ctx
	}
}

// WithRandomSource. draws every site from src. ignored when seeded per-trial streams are used (workers > 1),
// except for drawing the per-trial seeds themselves.
// WithRandomSource and WithSeed override each other, the one applied last wins.
func WithRandomSource(src RandomSource) StatsOption {
	return func(o *statsOptions) {
		o.source = src
	}
}

// WithSeed. seeds the default source. discards a source set by an earlier WithRandomSource.
func WithSeed(seed uint64) StatsOption {
	return func(o *statsOptions) {
		o.seed = seed
		o.source = nil
	}
}

// WithWorkers. runs trials on k goroutines. every trial gets its own random stream seeded up front from the
// master source, so for a fixed seed the thresholds do not depend on k.
func WithWorkers(k int) StatsOption {
	return func(o *statsOptions) {
		o.workers = k
	}
}

func WithLogger(log *zap.Logger) StatsOption {
	return func(o *statsOptions) {
		o.log = log
	}
}

// Stats. Monte Carlo estimate of the percolation threshold. thresholds are computed once in NewStats
// and never change afterwards.
type Stats struct {
	sideLength int
	trials     int
	thresholds []float64
	mean       float64
	stddev     float64
}

// NewStats. runs trials independent experiments on n-by-n grids. workers is capped at trials.
func NewStats(n, trials int, opts ...StatsOption) (*Stats, error) {
	if err := validateSideLength(n); err != nil {
		return nil, err
	}
	if trials <= 0 {
		return nil, util.WrapErrorf(ErrInvalidTrials, util.ErrBadParamInput, "number of trials must be greater than 0, got %d", trials)
	}

	o := statsOptions{
		ctx:     context.Background(),
		seed:    uint64(time.Now().UnixNano()),
		workers: 1,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = NewRandomSource(o.seed)
	}
	o.workers = util.MinInt(o.workers, trials)

	start := time.Now()
	var (
		thresholds []float64
		err        error
	)
	if o.workers > 1 {
		thresholds, err = runParallelTrials(o.ctx, n, trials, o.workers, o.source, o.log)
	} else {
		thresholds, err = runTrials(o.ctx, n, trials, o.source, o.log)
	}
	if err != nil {
		return nil, err
	}

	mean, stddev := util.MeanStdDev(thresholds)
	st := &Stats{
		sideLength: n,
		trials:     trials,
		thresholds: thresholds,
		mean:       mean,
		stddev:     stddev,
	}
	o.log.Info("percolation experiment finished",
		zap.Int("n", n),
		zap.Int("trials", trials),
		zap.Int("workers", o.workers),
		zap.Float64("mean", st.Mean()),
		zap.Duration("elapsed", time.Since(start)))
	return st, nil
}

func runTrials(ctx context.Context, n, trials int, src RandomSource, log *zap.Logger) ([]float64, error) {
	thresholds := make([]float64, trials)
	for t := 0; t < trials; t++ {
		if err := ctx.Err(); err != nil {
			return nil, cancelled(err, t, trials)
		}
		perc, err := RunTrialContext(ctx, n, src)
		if err != nil {
			return nil, err
		}
		thresholds[t] = perc.OpenFraction()
		log.Debug("trial done", zap.Int("trial", t), zap.Float64("threshold", thresholds[t]))
	}
	return thresholds, nil
}

type trialJob struct {
	id   int
	seed uint64
}

type trialResult struct {
	id        int
	threshold float64
	err       error
}

func runParallelTrials(ctx context.Context, n, trials, workers int, src RandomSource, log *zap.Logger) ([]float64, error) {
	jobs := make([]trialJob, trials)
	for t := range jobs {
		jobs[t] = trialJob{id: t, seed: uint64(src.Uniform(math.MaxInt))}
	}

	// once ctx is done the remaining jobs are drained without running
	results := concurrent.Run(workers, jobs, func(job trialJob) trialResult {
		if err := ctx.Err(); err != nil {
			return trialResult{id: job.id, err: cancelled(err, job.id, trials)}
		}
		perc, err := RunTrialContext(ctx, n, NewRandomSource(job.seed))
		if err != nil {
			return trialResult{id: job.id, err: err}
		}
		return trialResult{id: job.id, threshold: perc.OpenFraction()}
	})

	// each trial owns slot thresholds[id]
	thresholds := make([]float64, trials)
	for _, res := range results {
		if res.err != nil {
			return nil, res.err
		}
		thresholds[res.id] = res.threshold
		log.Debug("trial done", zap.Int("trial", res.id), zap.Float64("threshold", res.threshold))
	}
	return thresholds, nil
}

func cancelled(err error, trial, trials int) error {
	return util.WrapErrorf(err, util.ErrInternalServerError, "experiment cancelled at trial %d of %d: %v", trial, trials, err)
}

// RunTrial. opens uniformly random sites of a fresh n-by-n grid until it percolates. a draw that hits an
// already open site is a no-op, the loop terminates because the grid percolates once every site is open.
func RunTrial(n int, src RandomSource) (*Percolation, error) {
	return RunTrialContext(context.Background(), n, src)
}

// RunTrialContext. RunTrial that gives up with ctx.Err() once ctx is done. ctx is checked every n draws.
func RunTrialContext(ctx context.Context, n int, src RandomSource) (*Percolation, error) {
	perc, err := NewPercolation(n)
	if err != nil {
		return nil, err
	}
	totalSites := n * n
	for draws := 0; !perc.Percolates(); draws++ {
		if draws%n == 0 {
			if err := ctx.Err(); err != nil {
				return nil, util.WrapErrorf(err, util.ErrInternalServerError, "trial cancelled after %d draws: %v", draws, err)
			}
		}
		site := src.Uniform(totalSites)
		if err := perc.Open(site/n+1, site%n+1); err != nil {
			return nil, err
		}
	}
	return perc, nil
}

// Mean. sample mean of percolation threshold
func (s *Stats) Mean() float64 {
	return s.mean
}

// Stddev. sample standard deviation of percolation threshold. NaN when trials == 1.
func (s *Stats) Stddev() float64 {
	return s.stddev
}

// ConfidenceLo. low endpoint of 95% confidence interval
func (s *Stats) ConfidenceLo() float64 {
	return s.Mean() - CONFIDENCE_95*s.Stddev()/math.Sqrt(float64(s.trials))
}

// ConfidenceHi. high endpoint of 95% confidence interval
func (s *Stats) ConfidenceHi() float64 {
	return s.Mean() + CONFIDENCE_95*s.Stddev()/math.Sqrt(float64(s.trials))
}

func (s *Stats) Thresholds() []float64 {
	thresholds := make([]float64, len(s.thresholds))
	copy(thresholds, s.thresholds)
	return thresholds
}

func (s *Stats) Trials() int {
	return s.trials
}

func (s *Stats) SideLength() int {
	return s.sideLength
}
