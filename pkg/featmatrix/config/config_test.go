package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Output.EmptyToken != "-" {
		t.Errorf("expected EmptyToken=-, got %s", cfg.Output.EmptyToken)
	}
	if cfg.Output.MaxRecords != 60000 {
		t.Errorf("expected MaxRecords=60000, got %d", cfg.Output.MaxRecords)
	}
	if len(cfg.Columns.Candidates.Group) == 0 {
		t.Error("expected default group candidates")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("FEATMATRIX_SHEET", "")
	t.Setenv("FEATMATRIX_MAX_RECORDS", "")

	path := filepath.Join(t.TempDir(), "conf", "featmatrix.yaml")

	cfg := DefaultConfig()
	cfg.Input.Sheet = "Parts"
	cfg.Columns.Entity = "CompanyName"
	cfg.Columns.Candidates.Secondary = []string{"Die"}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Parts", loaded.Input.Sheet)
	assert.Equal(t, "CompanyName", loaded.Columns.Entity)
	assert.Equal(t, []string{"Die"}, loaded.Columns.Candidates.Secondary)
	assert.Equal(t, cfg.Columns.Candidates.Group, loaded.Columns.Candidates.Group)
}

func TestConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "featmatrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  max_records: 5000\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Output.MaxRecords)
	assert.Equal(t, ", ", cfg.Output.Separator)
	assert.NotEmpty(t, cfg.Columns.Candidates.Entity)
}

func TestConfig_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Output, cfg.Output)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("FEATMATRIX_SHEET", "Export")
	t.Setenv("FEATMATRIX_MAX_RECORDS", "2000")
	t.Setenv("FEATMATRIX_EMPTY_TOKEN", "n/a")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Export", cfg.Input.Sheet)
	assert.Equal(t, 2000, cfg.Output.MaxRecords)
	assert.Equal(t, "n/a", cfg.Codec().EmptyToken)

	t.Setenv("FEATMATRIX_MAX_RECORDS", "lots")
	_, err = Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestConfig_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "featmatrix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"cap too small", func(c *Config) { c.Output.MaxRecords = 10 }},
		{"cap too large", func(c *Config) { c.Output.MaxRecords = 500000 }},
		{"empty token", func(c *Config) { c.Output.EmptyToken = "" }},
		{"empty separator", func(c *Config) { c.Output.Separator = "" }},
		{"cache size", func(c *Config) { c.Cache.Size = 0 }},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"role collision", func(c *Config) {
			c.Columns.Group = "Tier 1"
			c.Columns.Entity = "tier_1"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_Overrides(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Overrides().IsZero())

	cfg.Columns.Secondary = "Die"
	assert.Equal(t, "Die", cfg.Overrides().Secondary)
}
