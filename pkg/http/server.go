package http

import (
	"context"

	http_router "github.com/lintang-b-s/Percolatorx/pkg/http/router"
	"github.com/lintang-b-s/Percolatorx/pkg/http/router/controllers"
	http_server "github.com/lintang-b-s/Percolatorx/pkg/http/server"
	"github.com/lintang-b-s/Percolatorx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Server struct {
	Log *zap.Logger
	g   *errgroup.Group
}

func NewServer(log *zap.Logger) *Server {
	return &Server{Log: log}
}

// Use. starts the API in the background. Wait returns once it has stopped.
func (s *Server) Use(
	ctx context.Context,
	log *zap.Logger,

	useRateLimit bool,
	percolationService controllers.PercolationService,

) (*Server, error) {
	util.SetConfigDefaults()

	config := http_server.Config{
		Port:    viper.GetInt(util.API_PORT),
		Timeout: viper.GetDuration(util.API_TIMEOUT),
	}

	server := http_router.NewAPI(log)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(
			gctx, config,
			useRateLimit, percolationService,
		)
	})
	s.g = g

	return s, nil
}

func (s *Server) Wait() error {
	if s.g == nil {
		return nil
	}
	return s.g.Wait()
}
