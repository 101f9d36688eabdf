// Package config loads and validates the YAML configuration shared by the
// mazepath CLI and the solver.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Log       Log       `yaml:"log"`
	Search    Search    `yaml:"search"`
	Telemetry Telemetry `yaml:"telemetry"`
}

// Log selects the slog level and handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Search configures which strategies run and their limits.
type Search struct {
	// Strategies run in the listed order.
	Strategies []string `yaml:"strategies" validate:"min=1,unique,dive,oneof=dfs bfs astar"`
	// Timeout bounds each strategy; zero disables it.
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
	// DFSMaxDepth limits DFS descent in edges; zero disables it.
	DFSMaxDepth int `yaml:"dfs_max_depth" validate:"gte=0"`
}

// Telemetry selects the OpenTelemetry exporters. "none" keeps the global
// no-op providers.
type Telemetry struct {
	Traces  string `yaml:"traces" validate:"oneof=none stdout"`
	Metrics string `yaml:"metrics" validate:"oneof=none stdout"`
}

var validate = validator.New()

// Default returns the configuration used when no file is given:
// info-level text logs, all three strategies without limits, no telemetry export.
func Default() Config {
	return Config{
		Log: Log{Level: "info", Format: "text"},
		Search: Search{
			Strategies: []string{"dfs", "bfs", "astar"},
		},
		Telemetry: Telemetry{Traces: "none", Metrics: "none"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML on top of Default and validates the result.
// Unknown keys are rejected. Empty input yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// SlogLevel maps the configured level name to a slog.Level.
func (l Log) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger builds a slog.Logger writing to w.
func (l Log) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
