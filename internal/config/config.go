// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"emi-calculator/internal/logging"
)

// Config holds all configuration for the application.
type Config struct {
	ServerPort        string        `mapstructure:"SERVER_PORT"`
	RedisAddr         string        `mapstructure:"REDIS_ADDR"`
	SessionTTL        time.Duration `mapstructure:"SESSION_TTL"`
	RateLimitRequests int           `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindow   time.Duration `mapstructure:"RATE_LIMIT_WINDOW"`
	AllowedOrigins    []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`

	Logging logging.Config `mapstructure:",squash"`
}

var keys = []string{
	"SERVER_PORT",
	"REDIS_ADDR",
	"SESSION_TTL",
	"RATE_LIMIT_REQUESTS",
	"RATE_LIMIT_WINDOW",
	"CORS_ALLOWED_ORIGINS",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"LOG_OUTPUT",
}

// LoadConfig reads configuration from environment variables, after loading
// a .env file when one is present. A non-empty file names an env file to
// load instead of .env.
func LoadConfig(file string) (Config, error) {
	if file != "" {
		if err := godotenv.Load(file); err != nil {
			return Config{}, fmt.Errorf("load env file %s: %w", file, err)
		}
	} else if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	v := viper.New()
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SESSION_TTL", "30m")
	v.SetDefault("RATE_LIMIT_REQUESTS", 60)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"https://*", "http://*"})
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("LOG_OUTPUT", "stderr")
	v.AutomaticEnv()
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.RateLimitRequests <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", cfg.RateLimitRequests)
	}
	if cfg.RateLimitWindow <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", cfg.RateLimitWindow)
	}
	return cfg, nil
}
