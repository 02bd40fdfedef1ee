// Package config loads radial CLI settings from a YAML file and the
// environment.
//
// Precedence, lowest first: built-in defaults, the YAML file, environment
// variables, then command-line flags (applied by the CLI).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/roach88/radial/internal/radial"
)

// Environment variables read by FromEnv.
const (
	EnvConfigPath = "RADIAL_CONFIG"
	EnvFormat     = "RADIAL_FORMAT"
	EnvPrecision  = "RADIAL_PRECISION"
)

// Config holds CLI settings.
type Config struct {
	// Format is the default output format: "text" or "json".
	Format string `yaml:"format"`

	// Precision is the default rounding factor for printed numbers
	// (radial.Round granularity). 0 disables rounding.
	Precision float64 `yaml:"precision"`

	// RotationMax is the span perRotation uses when called without max.
	RotationMax float64 `yaml:"rotation_max"`

	// Tolerance is the default absolute tolerance for check files.
	Tolerance float64 `yaml:"tolerance"`

	// Gauge holds defaults for the gauge command.
	Gauge GaugeDefaults `yaml:"gauge"`
}

// GaugeDefaults holds defaults for ring layouts.
type GaugeDefaults struct {
	Radius float64 `yaml:"radius"`
	Span   float64 `yaml:"span"`
	Ticks  int     `yaml:"ticks"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:      "text",
		Precision:   0,
		RotationMax: radial.DefaultRotationMax,
		Tolerance:   1e-9,
		Gauge: GaugeDefaults{
			Radius: 50,
			Span:   360,
			Ticks:  0,
		},
	}
}

// Load reads path over the defaults. Unknown fields are rejected so typos
// surface instead of being ignored.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve builds the effective configuration: defaults, then the file at
// path (or $RADIAL_CONFIG when path is empty, skipped when both are
// empty), then environment overrides.
func Resolve(path string, getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if path == "" {
		path = getenv(EnvConfigPath)
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnv overrides fields from environment variables.
func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvFormat); v != "" {
		c.Format = v
	}
	if v := getenv(EnvPrecision); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: invalid number %q", EnvPrecision, v)
		}
		c.Precision = p
	}
	return nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("format %q: must be one of [text json]", c.Format)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision must be >= 0, got %v", c.Precision)
	}
	if !(c.Tolerance > 0) {
		return fmt.Errorf("tolerance must be > 0, got %v", c.Tolerance)
	}
	if !(c.Gauge.Radius > 0) {
		return fmt.Errorf("gauge.radius must be > 0, got %v", c.Gauge.Radius)
	}
	if !(c.Gauge.Span > 0 && c.Gauge.Span <= 360) {
		return fmt.Errorf("gauge.span must be in (0, 360], got %v", c.Gauge.Span)
	}
	if c.Gauge.Ticks < 0 {
		return fmt.Errorf("gauge.ticks must be >= 0, got %d", c.Gauge.Ticks)
	}
	return nil
}
