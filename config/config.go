// Package config loads the lvtree runtime configuration: defaults, then an
// optional YAML file, then LVTREE_* environment overrides, then validation.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full runtime configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Engine    EngineConfig    `yaml:"engine"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`

	// Format "auto" picks text on a terminal and JSON otherwise.
	Format string `yaml:"format" validate:"oneof=auto text json"`
}

// EngineConfig bounds and orients each run.
type EngineConfig struct {
	// MaxNodes rejects larger inputs before they are decoded; 0 disables.
	MaxNodes int `yaml:"max_nodes" validate:"gte=0"`

	// Root is the node every rooted pass starts from.
	Root int `yaml:"root" validate:"gte=1"`

	// CheckEvery is the traversal cancellation polling period.
	CheckEvery int `yaml:"check_every" validate:"gte=1"`
}

// TelemetryConfig toggles tracing and the metrics dump.
type TelemetryConfig struct {
	Tracing bool `yaml:"tracing"`

	// MetricsOut is a file path for a Prometheus text dump; empty disables.
	MetricsOut string `yaml:"metrics_out"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "auto"},
		Engine: EngineConfig{MaxNodes: 1_000_000, Root: 1, CheckEvery: 1024},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is empty
// or the file does not exist) and the environment, then validates.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	if err := loadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv("LVTREE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("LVTREE_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"LVTREE_ENGINE_MAX_NODES", &cfg.Engine.MaxNodes},
		{"LVTREE_ENGINE_ROOT", &cfg.Engine.Root},
		{"LVTREE_ENGINE_CHECK_EVERY", &cfg.Engine.CheckEvery},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if v == "" {
			continue
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", e.key, v, err)
		}
		*e.dst = i
	}
	if v := os.Getenv("LVTREE_TELEMETRY_TRACING"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LVTREE_TELEMETRY_TRACING=%q: %w", v, err)
		}
		cfg.Telemetry.Tracing = b
	}
	if v, ok := os.LookupEnv("LVTREE_TELEMETRY_METRICS_OUT"); ok {
		cfg.Telemetry.MetricsOut = v
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its tag.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// SlogLevel maps Log.Level onto slog.
func (c Config) SlogLevel() slog.Level {
	switch c.Log.Level {
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
