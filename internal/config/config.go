// Package config loads the rutas command settings.
//
// Precedence, highest first: command-line flags, RUTAS_* environment
// variables, the YAML config file, built-in defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Keys shared by flags, environment variables and the config file.
const (
	KeyOrigin      = "origin"
	KeyDestination = "destination"
	KeyThreshold   = "threshold"
	KeyNetwork     = "network"
	KeyMaxAttempts = "max-attempts"
	KeyMaxPaths    = "max-paths"
	KeyColor       = "color"
	KeyLogLevel    = "log-level"
)

// EnvPrefix prefixes every environment variable (RUTAS_THRESHOLD, ...).
const EnvPrefix = "RUTAS"

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the effective settings of one run.
type Config struct {
	Origin      string `mapstructure:"origin" yaml:"origin"`
	Destination string `mapstructure:"destination" yaml:"destination"`
	Threshold   int64  `mapstructure:"threshold" yaml:"threshold"`
	Network     string `mapstructure:"network" yaml:"network"`
	MaxAttempts int    `mapstructure:"max-attempts" yaml:"max-attempts"`
	MaxPaths    int    `mapstructure:"max-paths" yaml:"max-paths"`
	Color       string `mapstructure:"color" yaml:"color"`
	LogLevel    string `mapstructure:"log-level" yaml:"log-level"`
}

// Default returns the settings that reproduce the reference behavior:
// interactive prompts, 15 km threshold, embedded network, unlimited retries.
func Default() Config {
	return Config{
		Threshold:   15,
		MaxAttempts: 0,
		MaxPaths:    0,
		Color:       ColorAuto,
		LogLevel:    "warn",
	}
}

// New returns a viper instance carrying the defaults and the environment
// binding. Callers bind their flags (v.BindPFlags) before Load.
func New() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault(KeyOrigin, d.Origin)
	v.SetDefault(KeyDestination, d.Destination)
	v.SetDefault(KeyThreshold, d.Threshold)
	v.SetDefault(KeyNetwork, d.Network)
	v.SetDefault(KeyMaxAttempts, d.MaxAttempts)
	v.SetDefault(KeyMaxPaths, d.MaxPaths)
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file and returns the validated Config.
//
// With file == "" a "rutas.yaml" in the working directory is used when
// present; a missing default file is not an error. An explicit file must exist.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("rutas")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s: %w", describe(file), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// describe names the config source for error messages.
func describe(file string) string {
	if file == "" {
		return "rutas.yaml"
	}

	return file
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if c.Threshold <= 0 {
		return fmt.Errorf("%w: threshold must be positive, got %d", ErrInvalidConfig, c.Threshold)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("%w: max-attempts must be >= 0, got %d", ErrInvalidConfig, c.MaxAttempts)
	}
	if c.MaxPaths < 0 {
		return fmt.Errorf("%w: max-paths must be >= 0, got %d", ErrInvalidConfig, c.MaxPaths)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrInvalidConfig, c.Color)
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log-level %q", ErrInvalidConfig, c.LogLevel)
	}

	return lvl, nil
}

// Interactive reports whether origin or destination must be prompted for.
func (c *Config) Interactive() bool {
	return c.Origin == "" || c.Destination == ""
}

// YAML renders c in the config file format.
func (c *Config) YAML() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: encode: %w", err)
	}

	return out, nil
}
