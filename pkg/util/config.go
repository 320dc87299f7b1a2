package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	API_PORT                        = "API_PORT"
	API_TIMEOUT                     = "API_TIMEOUT"
	HTTP_SERVER_READ_TIMEOUT        = "HTTP_SERVER_READ_TIMEOUT"
	HTTP_SERVER_WRITE_TIMEOUT       = "HTTP_SERVER_WRITE_TIMEOUT"
	HTTP_SERVER_IDLE_TIMEOUT        = "HTTP_SERVER_IDLE_TIMEOUT"
	HTTP_SERVER_READ_HEADER_TIMEOUT = "HTTP_SERVER_READ_HEADER_TIMEOUT"
	PERCOLATION_MAX_SIDE_LENGTH     = "PERCOLATION_MAX_SIDE_LENGTH"
	PERCOLATION_MAX_TRIALS          = "PERCOLATION_MAX_TRIALS"
	PERCOLATION_WORKERS             = "PERCOLATION_WORKERS"
	RATE_LIMIT_RPS                  = "RATE_LIMIT_RPS"
	RATE_LIMIT_BURST                = "RATE_LIMIT_BURST"
)

func SetConfigDefaults() {
	viper.SetDefault(API_PORT, 6060)
	viper.SetDefault(API_TIMEOUT, "60s")
	viper.SetDefault(HTTP_SERVER_READ_TIMEOUT, "10s")
	viper.SetDefault(HTTP_SERVER_WRITE_TIMEOUT, "10s")
	viper.SetDefault(HTTP_SERVER_IDLE_TIMEOUT, "120s")
	viper.SetDefault(HTTP_SERVER_READ_HEADER_TIMEOUT, "5s")
	viper.SetDefault(PERCOLATION_MAX_SIDE_LENGTH, 1000)
	viper.SetDefault(PERCOLATION_MAX_TRIALS, 10000)
	viper.SetDefault(PERCOLATION_WORKERS, 1)
	viper.SetDefault(RATE_LIMIT_RPS, 10.0)
	viper.SetDefault(RATE_LIMIT_BURST, 20)
}

// ReadConfig. loads ./data/config.* if present. a missing config file is not an error, defaults and
// environment variables still apply.
func ReadConfig() error {
	SetConfigDefaults()
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
