// Package config resolves runtime settings from defaults, an optional YAML
// file and KITCHEN_* environment variables, in that order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/ottokitchen/internal/bag"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "KITCHEN_"

// ErrInvalid is returned when the resolved configuration cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the kitchen's runtime settings.
type Config struct {
	// Capacity is the maximum number of open orders (KITCHEN_CAPACITY).
	Capacity int `yaml:"capacity" env:"CAPACITY"`
	// MenuFile is the dish CSV loaded at startup (KITCHEN_MENU_FILE).
	MenuFile string `yaml:"menu_file" env:"MENU_FILE"`
	// LogLevel is off, normal or verbose (KITCHEN_LOG_LEVEL).
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`
	// LogFile is where logs go; "stderr" logs to the console (KITCHEN_LOG_FILE).
	LogFile string `yaml:"log_file" env:"LOG_FILE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Capacity: bag.DefaultCapacity,
		MenuFile: "dishes.csv",
		LogLevel: "normal",
		LogFile:  "stderr",
	}
}

// Load resolves the configuration. An empty path skips the YAML layer; a
// non-empty path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := decodeYAML(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeYAML(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalid, c.Capacity)
	}
	if c.MenuFile == "" {
		return fmt.Errorf("%w: menu file is empty", ErrInvalid)
	}
	return nil
}
