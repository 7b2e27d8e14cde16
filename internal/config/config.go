// SPDX-License-Identifier: MIT

// Package config loads the graphpoet YAML configuration file, applies
// defaults, and validates the result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure returned by Load and Validate.
var ErrInvalid = errors.New("config: invalid")

// Config is the root configuration.
type Config struct {
	// Corpus is the path of the text file the affinity graph is built from.
	Corpus string       `yaml:"corpus"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	Watch  WatchConfig  `yaml:"watch"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Format      string `yaml:"format" validate:"oneof=console json"`
	ServiceName string `yaml:"service_name" validate:"required"`
	AddCaller   bool   `yaml:"add_caller"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
	MaxInputBytes   int           `yaml:"max_input_bytes" validate:"gt=0"`
}

// WatchConfig configures corpus hot reloading.
type WatchConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Debounce time.Duration `yaml:"debounce" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:       "info",
			Format:      "console",
			ServiceName: "graphpoet",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxInputBytes:   64 << 10,
		},
		Watch: WatchConfig{
			Enabled:  true,
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Load reads path on top of Default and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, Validate(cfg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML from r on top of Default and validates the result.
// Unknown keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks struct-tag constraints. Field failures are joined into one
// error that wraps ErrInvalid.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	errs := make([]error, 0, len(verrs)+1)
	errs = append(errs, ErrInvalid)
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return errors.Join(errs...)
}

// RequireCorpus reports an ErrInvalid error when no corpus path is configured.
func (c Config) RequireCorpus() error {
	if c.Corpus == "" {
		return fmt.Errorf("%w: corpus path is required", ErrInvalid)
	}

	return nil
}
