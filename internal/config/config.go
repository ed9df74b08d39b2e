// Package config loads the run configuration shared by the CLI and the
// HTTP server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned by Validate and Load for out-of-range values.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the tunables of a run. Keys are snake_case in files.
type Config struct {
	// MinSaving is the default cheat threshold in steps.
	MinSaving int `mapstructure:"min_saving"`

	// StepBudget bounds the states a search may finalize; 0 disables it.
	StepBudget int `mapstructure:"step_budget"`

	// Tiles requests the optimal tile set by default.
	Tiles bool `mapstructure:"tiles"`

	// LogLevel is a logrus level name.
	LogLevel string `mapstructure:"log_level"`

	// Listen is the HTTP listen address of `serve`.
	Listen string `mapstructure:"listen"`

	// Color enables ANSI colours in rendered grids.
	Color bool `mapstructure:"color"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MinSaving: 100,
		LogLevel:  "info",
		Listen:    ":8080",
		Color:     true,
	}
}

// Load reads a configuration file (YAML or JSON, chosen by extension) over
// the defaults. An empty path yields Default(); a named file must exist.
// Unknown keys are rejected; scalar types are coerced ("10" → 10).
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw map[string]any
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return cfg, err
	}
	if err := dec.Decode(raw); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate rejects negative thresholds and budgets and an empty listen address.
func (c Config) Validate() error {
	switch {
	case c.MinSaving < 0:
		return fmt.Errorf("%w: min_saving %d", ErrInvalid, c.MinSaving)
	case c.StepBudget < 0:
		return fmt.Errorf("%w: step_budget %d", ErrInvalid, c.StepBudget)
	case c.Listen == "":
		return fmt.Errorf("%w: listen is empty", ErrInvalid)
	}
	return nil
}
