package main

import (
	"context"
	"flag"

	"github.com/lintang-b-s/Percolatorx/pkg/http"
	"github.com/lintang-b-s/Percolatorx/pkg/http/usecases"
	"github.com/lintang-b-s/Percolatorx/pkg/logger"
	"github.com/lintang-b-s/Percolatorx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	useRateLimit = flag.Bool("rate_limit", true, "enable the process wide request rate limiter")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := util.ReadConfig(); err != nil {
		logger.Fatal("read config", zap.Error(err))
	}

	percolationService := usecases.NewPercolationService(logger,
		viper.GetInt(util.PERCOLATION_MAX_SIDE_LENGTH),
		viper.GetInt(util.PERCOLATION_MAX_TRIALS),
		viper.GetInt(util.PERCOLATION_WORKERS))

	api := http.NewServer(logger)

	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	if _, err := api.Use(ctx, logger, *useRateLimit, percolationService); err != nil {
		logger.Fatal("start API", zap.Error(err))
	}

	signal := http.GracefulShutdown()

	logger.Info("Percolatorx Server Stopped", zap.String("signal", signal.String()))
	cleanup()
	if err := api.Wait(); err != nil {
		logger.Error("API exited with error", zap.Error(err))
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
