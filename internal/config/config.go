// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every setting the server reads at startup.
type Config struct {
	// HTTP Server
	Port        int    `env:"PORT" envDefault:"8080"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`

	// Database
	DBPath string `env:"DB_PATH" envDefault:"./data/roommates.db"`

	// Auth
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// AMQP; events are dropped when AMQPURL is empty
	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"roommates"`
}

// Load reads optional .env files, then the environment.
// Variables already set in the environment win over .env values.
func Load(dotenvFiles ...string) (*Config, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{".env"}
	}
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
		slog.Debug("Loaded environment file", "path", f)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Addr is the listen address of the RPC server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the configuration and returns an error listing every problem.
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "database path cannot be empty")
	}

	if len(c.JWTSecret) < 32 {
		problems = append(problems, "JWT_SECRET must be at least 32 characters")
	}
	if c.TokenDuration < time.Minute {
		problems = append(problems, fmt.Sprintf("invalid token duration %v: must be at least 1 minute", c.TokenDuration))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s': must be debug, info, warn or error", c.LogLevel))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
