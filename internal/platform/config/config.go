// Package config loads service settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is wrapped by every validation failure returned from Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the runtime settings of the HTTP server.
type Config struct {
	Host            string
	Port            int
	LogLevel        zapcore.Level
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Load reads .env (when present) and then the process environment.
// Variables already set in the environment take precedence over .env values.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables, applying defaults for unset values.
func FromEnv() (Config, error) {
	cfg := Config{
		Host:            os.Getenv("HOST"),
		Port:            8080,
		LogLevel:        zapcore.InfoLevel,
		ShutdownTimeout: 10 * time.Second,
		AllowedOrigins:  []string{"*"},
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("%w: PORT %q must be between 1 and 65535", ErrInvalidConfig, v)
		}
		cfg.Port = port
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		lvl, err := zapcore.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: LOG_LEVEL: %w", ErrInvalidConfig, err)
		}
		cfg.LogLevel = lvl
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: SHUTDOWN_TIMEOUT: %w", ErrInvalidConfig, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("%w: SHUTDOWN_TIMEOUT %q must be positive", ErrInvalidConfig, v)
		}
		cfg.ShutdownTimeout = d
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
		if len(cfg.AllowedOrigins) == 0 {
			return Config{}, fmt.Errorf("%w: CORS_ALLOWED_ORIGINS %q has no origins", ErrInvalidConfig, v)
		}
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
