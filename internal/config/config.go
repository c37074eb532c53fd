// Package config loads process configuration from the environment and an
// optional .env file.
package config

import (
	"github.com/spf13/viper"
)

// Config holds the full process configuration.
type Config struct {
	BaseURL               string `mapstructure:"PLACE_BASE_URL"`
	Path                  string `mapstructure:"PLACE_PATH"`
	Host                  string `mapstructure:"PLACE_HOST"`
	AuthToken             string `mapstructure:"PLACE_AUTH_TOKEN"`
	MaxConcurrentRequests int    `mapstructure:"MAX_CONCURRENT_REQUESTS"`
	LogLevel              string `mapstructure:"LOG_LEVEL"`
	LogPretty             bool   `mapstructure:"LOG_PRETTY"`
}

// Load reads configuration from environment variables, falling back to a
// .env file in the working directory. Environment variables take precedence.
// The auth token has no default: it is a pre-obtained bearer token and its
// absence is surfaced later as a configuration error, before any request.
func Load() (c Config, err error) {
	v := viper.New()

	v.SetDefault("PLACE_BASE_URL", "https://place.zevent.fr")
	v.SetDefault("PLACE_PATH", "/graphql")
	v.SetDefault("PLACE_HOST", "place-api.zevent.fr")
	// Registered with an empty default so AutomaticEnv can fill it; no
	// token is still a valid (if useless) configuration at this stage.
	v.SetDefault("PLACE_AUTH_TOKEN", "")
	v.SetDefault("MAX_CONCURRENT_REQUESTS", 10000)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Running without a .env file is fine; everything can come from
		// the environment.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
	}

	err = v.Unmarshal(&c)
	return
}
