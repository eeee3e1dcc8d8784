// Package config loads the configuration of the gomln command.
//
// Values are taken, by increasing priority, from the defaults, from a YAML file
// and from GOMLN_* environment variables, then validated.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/crillab/gomln/fol"
	"github.com/crillab/gomln/mln"
	"github.com/crillab/gomln/normal"
)

// Config is the whole configuration of the gomln command.
type Config struct {
	// Form is the normal form formulas are translated into: cnf or dnf.
	Form string `yaml:"form" validate:"oneof=cnf dnf"`

	// Constants is the domain of the model.
	Constants []string `yaml:"constants" validate:"unique,dive,constant"`

	// Concurrency is the maximum number of formulas translated at the same time, 0 for one per CPU.
	Concurrency int `yaml:"concurrency" validate:"gte=0"`

	Limits    LimitsConfig    `yaml:"limits"`
	WCNF      WCNFConfig      `yaml:"wcnf"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// LimitsConfig bounds the size of translations. Zero means no limit.
type LimitsConfig struct {
	MaxGroundings int `yaml:"max_groundings" validate:"gte=0"`
	MaxClauses    int `yaml:"max_clauses" validate:"gte=0"`
}

// WCNFConfig controls the WCNF output.
type WCNFConfig struct {
	// Precision is the factor applied to weights before rounding them.
	Precision float64 `yaml:"precision" validate:"gt=0"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// TelemetryConfig selects where traces and metrics are exported.
type TelemetryConfig struct {
	// Traces is either "none" or "stdout", the latter writing spans on the standard error.
	Traces string `yaml:"traces" validate:"oneof=none stdout"`
	// Metrics is either "none" or "prometheus", the latter dumping all metrics at exit.
	Metrics string `yaml:"metrics" validate:"oneof=none prometheus"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Form: "cnf",
		Limits: LimitsConfig{
			MaxGroundings: 1 << 16,
			MaxClauses:    1 << 20,
		},
		WCNF: WCNFConfig{Precision: 1000},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Telemetry: TelemetryConfig{
			Traces:  "none",
			Metrics: "none",
		},
	}
}

// Load returns the default configuration, overridden by the content of the YAML file at path,
// if path is not empty, then by environment variables.
// The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}
	if err := loadEnv(&cfg); err != nil {
		return cfg, fmt.Errorf("load config from environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func loadEnv(cfg *Config) error {
	if v := os.Getenv("GOMLN_FORM"); v != "" {
		cfg.Form = strings.ToLower(v)
	}
	if v := os.Getenv("GOMLN_CONSTANTS"); v != "" {
		cfg.Constants = SplitConstants(v)
	}
	for name, dst := range map[string]*int{
		"GOMLN_MAX_GROUNDINGS": &cfg.Limits.MaxGroundings,
		"GOMLN_MAX_CLAUSES":    &cfg.Limits.MaxClauses,
		"GOMLN_CONCURRENCY":    &cfg.Concurrency,
	} {
		if v := os.Getenv(name); v != "" {
			i, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			*dst = i
		}
	}
	if v := os.Getenv("GOMLN_WCNF_PRECISION"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("GOMLN_WCNF_PRECISION: %w", err)
		}
		cfg.WCNF.Precision = f
	}
	if v := os.Getenv("GOMLN_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv("GOMLN_LOG_FORMAT"); v != "" {
		cfg.Log.Format = strings.ToLower(v)
	}
	return nil
}

// SplitConstants splits a comma-separated list of constants, ignoring spaces and empty items.
func SplitConstants(s string) []string {
	var res []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			res = append(res, c)
		}
	}
	return res
}

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("constant", func(fl validator.FieldLevel) bool {
		return fol.IsConstantName(fl.Field().String())
	})
}

// Validate checks that every field of cfg has a valid value.
func (cfg Config) Validate() error {
	return validate.Struct(cfg)
}

// NormalForm returns the configured normal form.
func (cfg Config) NormalForm() normal.Form {
	form, err := normal.ParseForm(cfg.Form)
	if err != nil {
		panic(err)
	}
	return form
}

// NormalOptions returns the translation options matching the configured limits.
func (cfg Config) NormalOptions(logger *slog.Logger) *normal.Options {
	return &normal.Options{
		MaxGroundings: cfg.Limits.MaxGroundings,
		MaxClauses:    cfg.Limits.MaxClauses,
		Logger:        logger,
	}
}

// ModelOptions returns the options used to build models.
func (cfg Config) ModelOptions(logger *slog.Logger) *mln.Options {
	return &mln.Options{
		Limits:      *cfg.NormalOptions(logger),
		Concurrency: cfg.Concurrency,
		Logger:      logger,
	}
}

// NewLogger returns a logger writing on w with the configured level and format.
func (cfg Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch cfg.Log.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
