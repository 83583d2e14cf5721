package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

// clearEnv blanks every variable FromEnv reads so host settings cannot leak into tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"HOST", "PORT", "LOG_LEVEL", "SHUTDOWN_TIMEOUT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Errorf("expected info level, got %s", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected 10s shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
	if !slices.Equal(cfg.AllowedOrigins, []string{"*"}) {
		t.Errorf("expected wildcard origin, got %v", cfg.AllowedOrigins)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("expected addr :8080, got %s", cfg.Addr())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com,")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr() != "127.0.0.1:9090" {
		t.Errorf("expected addr 127.0.0.1:9090, got %s", cfg.Addr())
	}
	if cfg.LogLevel != zapcore.DebugLevel {
		t.Errorf("expected debug level, got %s", cfg.LogLevel)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected 3s, got %s", cfg.ShutdownTimeout)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !slices.Equal(cfg.AllowedOrigins, want) {
		t.Errorf("expected %v, got %v", want, cfg.AllowedOrigins)
	}
}

func TestFromEnvInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"PORT", "abc"},
		{"PORT", "0"},
		{"PORT", "70000"},
		{"LOG_LEVEL", "loud"},
		{"SHUTDOWN_TIMEOUT", "soon"},
		{"SHUTDOWN_TIMEOUT", "-1s"},
		{"CORS_ALLOWED_ORIGINS", " , "},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("PORT")
	t.Chdir(t.TempDir())
	if err := os.WriteFile(filepath.Join(".", ".env"), []byte("PORT=7070\n"), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("PORT") })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 7070 {
		t.Fatalf("expected port from .env, got %d", cfg.Port)
	}
}

func TestLoadWithoutDotEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	if _, err := Load(); err != nil {
		t.Fatalf("expected missing .env to be ignored, got %v", err)
	}
}
