// Package config loads featmatrix settings from YAML with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/featmatrix/pkg/featmatrix/cellvalue"
	"github.com/ukaji3/featmatrix/pkg/featmatrix/resolve"
)

// Record cap bounds, matching the exploration UI's safety cap widget.
const (
	DefaultMaxRecords = 60000
	MinMaxRecords     = 1000
	MaxMaxRecords     = 200000
)

// DefaultConfigFile is the config file name looked up in the working directory.
const DefaultConfigFile = "featmatrix.yaml"

// Config holds all featmatrix configuration.
type Config struct {
	// Input selection
	Input InputConfig `yaml:"input"`

	// Column role detection
	Columns ColumnsConfig `yaml:"columns"`

	// Output formatting and limits
	Output OutputConfig `yaml:"output"`

	// Cache sizing
	Cache CacheConfig `yaml:"cache"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig selects the part of the file that becomes the table.
type InputConfig struct {
	Sheet        string `yaml:"sheet"`
	Range        string `yaml:"range"`
	UsePrintArea bool   `yaml:"use_print_area"`
}

// ColumnsConfig configures role detection and overrides.
type ColumnsConfig struct {
	Candidates resolve.Candidates `yaml:"candidates"`
	// Explicit role columns; empty keeps the detected column.
	Group     string   `yaml:"group"`
	Secondary string   `yaml:"secondary"`
	Entity    string   `yaml:"entity"`
	Features  []string `yaml:"features"`
}

// OutputConfig configures value serialization and the record cap.
type OutputConfig struct {
	EmptyToken string `yaml:"empty_token"`
	Separator  string `yaml:"separator"`
	MaxRecords int    `yaml:"max_records"`
}

// CacheConfig sizes the result cache.
type CacheConfig struct {
	Size int `yaml:"size"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Columns: ColumnsConfig{
			Candidates: resolve.DefaultCandidates(),
		},
		Output: OutputConfig{
			EmptyToken: cellvalue.EmptyToken,
			Separator:  cellvalue.Separator,
			MaxRecords: DefaultMaxRecords,
		},
		Cache: CacheConfig{
			Size: 16,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() error {
	if sheet := os.Getenv("FEATMATRIX_SHEET"); sheet != "" {
		c.Input.Sheet = sheet
	}
	if token := os.Getenv("FEATMATRIX_EMPTY_TOKEN"); token != "" {
		c.Output.EmptyToken = token
	}
	if v := os.Getenv("FEATMATRIX_MAX_RECORDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FEATMATRIX_MAX_RECORDS %q: %w", v, err)
		}
		c.Output.MaxRecords = n
	}
	return nil
}

// Validate checks the configuration for values the pipeline cannot use.
func (c *Config) Validate() error {
	if c.Output.MaxRecords < MinMaxRecords || c.Output.MaxRecords > MaxMaxRecords {
		return fmt.Errorf("max_records must be between %d and %d, got %d", MinMaxRecords, MaxMaxRecords, c.Output.MaxRecords)
	}
	if c.Output.EmptyToken == "" {
		return fmt.Errorf("empty_token must not be empty")
	}
	if c.Output.Separator == "" {
		return fmt.Errorf("separator must not be empty")
	}
	if c.Cache.Size < 1 {
		return fmt.Errorf("cache size must be positive, got %d", c.Cache.Size)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	seen := map[string]string{}
	for _, r := range []struct{ role, col string }{
		{"group", c.Columns.Group},
		{"secondary", c.Columns.Secondary},
		{"entity", c.Columns.Entity},
	} {
		if r.col == "" {
			continue
		}
		key := resolve.Normalize(r.col)
		if other, ok := seen[key]; ok {
			return fmt.Errorf("columns %s and %s both map to %q", other, r.role, r.col)
		}
		seen[key] = r.role
	}
	return nil
}

// Codec returns the value codec described by the output settings.
func (c *Config) Codec() cellvalue.Codec {
	return cellvalue.Codec{EmptyToken: c.Output.EmptyToken, Separator: c.Output.Separator}
}

// Overrides returns the explicit role columns.
func (c *Config) Overrides() resolve.Overrides {
	return resolve.Overrides{
		Group:     c.Columns.Group,
		Secondary: c.Columns.Secondary,
		Entity:    c.Columns.Entity,
	}
}
