package usecases

import (
	"context"
	"testing"

	"github.com/lintang-b-s/Percolatorx/pkg/percolation"
	"github.com/lintang-b-s/Percolatorx/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPercolationServiceLimits(t *testing.T) {
	ctx := context.Background()
	ps := NewPercolationService(zap.NewNop(), 50, 100, 2)

	_, err := ps.Stats(ctx, 51, 10, nil, 0)
	assert.ErrorIs(t, err, ErrSideLengthTooLarge)
	assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))

	_, err = ps.Stats(ctx, 10, 101, nil, 0)
	assert.ErrorIs(t, err, ErrTooManyTrials)
	assert.Equal(t, util.ErrBadParamInput, util.ErrorCode(err))

	_, err = ps.Simulate(ctx, 51, nil)
	assert.ErrorIs(t, err, ErrSideLengthTooLarge)

	_, err = ps.Stats(ctx, 0, 10, nil, 0)
	assert.ErrorIs(t, err, percolation.ErrInvalidSideLength)
}

func TestPercolationServiceSeeded(t *testing.T) {
	ctx := context.Background()
	ps := NewPercolationService(zap.NewNop(), 0, 0, 1)
	seed := uint64(17)

	a, err := ps.Stats(ctx, 15, 8, &seed, 0)
	require.NoError(t, err)
	b, err := ps.Stats(ctx, 15, 8, &seed, 1)
	require.NoError(t, err)
	assert.Equal(t, a.Thresholds(), b.Thresholds())

	perc, err := ps.Simulate(ctx, 15, &seed)
	require.NoError(t, err)
	assert.True(t, perc.Percolates())

	again, err := ps.Simulate(ctx, 15, &seed)
	require.NoError(t, err)
	assert.Equal(t, perc.String(), again.String())
}

func TestPercolationServiceDefaultWorkers(t *testing.T) {
	ctx := context.Background()
	ps := NewPercolationService(zap.NewNop(), 0, 0, 3)
	var got int
	ps.statsRunner = statsRunnerFunc(func(n, trials int, opts ...percolation.StatsOption) (*percolation.Stats, error) {
		got = len(opts)
		return percolation.NewStats(n, trials, opts...)
	})

	st, err := ps.Stats(ctx, 5, 2, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, st.Trials())
	assert.Equal(t, 3, got)
}

func TestPercolationServiceCancelled(t *testing.T) {
	ps := NewPercolationService(zap.NewNop(), 0, 0, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	seed := uint64(3)

	st, err := ps.Stats(ctx, 40, 20, &seed, 0)
	assert.Nil(t, st)
	assert.ErrorIs(t, err, context.Canceled)

	perc, err := ps.Simulate(ctx, 40, &seed)
	assert.Nil(t, perc)
	assert.ErrorIs(t, err, context.Canceled)
}
