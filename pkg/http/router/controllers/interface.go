package controllers

import (
	"context"

	"github.com/lintang-b-s/Percolatorx/pkg/percolation"
)

type PercolationService interface {
	Stats(ctx context.Context, n, trials int, seed *uint64, workers int) (*percolation.Stats, error)
	Simulate(ctx context.Context, n int, seed *uint64) (*percolation.Percolation, error)
}
