package util

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSampleStatistics(t *testing.T) {

	testCases := []struct {
		name           string
		xs             []float64
		expectedMean   float64
		expectedStdDev float64
	}{
		{
			name:           "constant sample",
			xs:             []float64{0.5, 0.5, 0.5, 0.5},
			expectedMean:   0.5,
			expectedStdDev: 0,
		},
		{
			name:           "bessel corrected",
			xs:             []float64{2, 4, 4, 4, 5, 5, 7, 9},
			expectedMean:   5,
			expectedStdDev: math.Sqrt(32.0 / 7.0),
		},
		{
			name:           "two values",
			xs:             []float64{1, 3},
			expectedMean:   2,
			expectedStdDev: math.Sqrt2,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expectedMean, Mean(tt.xs), 1e-12)
			assert.InDelta(t, tt.expectedStdDev, StdDev(tt.xs), 1e-12)

			mean, sd := MeanStdDev(tt.xs)
			assert.InDelta(t, tt.expectedMean, mean, 1e-12)
			assert.InDelta(t, tt.expectedStdDev, sd, 1e-12)
		})
	}
}

func TestSampleStatisticsDegenerate(t *testing.T) {
	assert.True(t, math.IsNaN(Mean(nil)))
	assert.Equal(t, 0.25, Mean([]float64{0.25}))
	assert.True(t, math.IsNaN(StdDev([]float64{0.25})))

	mean, sd := MeanStdDev(nil)
	assert.True(t, math.IsNaN(mean))
	assert.True(t, math.IsNaN(sd))
}

func TestMinInt(t *testing.T) {
	assert.Equal(t, 3, MinInt(3, 7))
	assert.Equal(t, 3, MinInt(7, 3))
	assert.Equal(t, -1, MinInt(-1, -1))
}

func TestWrapErrorf(t *testing.T) {
	orig := errors.New("row out of range")
	err := WrapErrorf(orig, ErrBadParamInput, "row %d is not between 1 and %d", 0, 5)

	assert.EqualError(t, err, "row 0 is not between 1 and 5")
	assert.ErrorIs(t, err, orig)
	assert.Equal(t, ErrBadParamInput, ErrorCode(err))
	assert.Nil(t, ErrorCode(orig))
}
