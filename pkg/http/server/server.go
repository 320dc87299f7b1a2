package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/lintang-b-s/Percolatorx/pkg/util"
	"github.com/spf13/viper"
)

type Config struct {
	Port    int
	Timeout time.Duration
}

// New. http.Server bound to ctx. every request context derives from ctx and is also cancelled once config.Timeout
// elapses, the percolation handlers hand it to the experiment runner, which stops at the next trial or every n draws.
func New(ctx context.Context, handler http.Handler, config Config) *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: http.TimeoutHandler(handler, config.Timeout, util.MessageInternalServerError),
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
		ReadTimeout:       viper.GetDuration(util.HTTP_SERVER_READ_TIMEOUT),
		WriteTimeout:      config.Timeout + viper.GetDuration(util.HTTP_SERVER_WRITE_TIMEOUT),
		IdleTimeout:       viper.GetDuration(util.HTTP_SERVER_IDLE_TIMEOUT),
		ReadHeaderTimeout: viper.GetDuration(util.HTTP_SERVER_READ_HEADER_TIMEOUT),
	}
}
