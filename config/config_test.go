package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/expenses/journal"
	"github.com/rustyeddy/expenses/ledger"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.NotNil(t, cfg)
	assert.Equal(t, "expenses.csv", cfg.Data.Path)
	assert.Equal(t, journal.FormatPlain, cfg.Data.Format)
	assert.Equal(t, []string{"Food", "Transportation", "Entertainment", "Utilities", "Other"}, cfg.Categories)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "missing path",
			mutate:  func(c *Config) { c.Data.Path = " " },
			wantErr: true,
			errMsg:  "data.path is required",
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Data.Format = "sqlite" },
			wantErr: true,
			errMsg:  "data.format",
		},
		{
			name:    "csv format",
			mutate:  func(c *Config) { c.Data.Format = "csv" },
			wantErr: false,
		},
		{
			name:    "unknown sync",
			mutate:  func(c *Config) { c.Data.Sync = "hourly" },
			wantErr: true,
			errMsg:  "data.sync",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "loud" },
			wantErr: true,
			errMsg:  "log.level",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
			errMsg:  "log.format",
		},
		{
			name:    "no categories accepts anything",
			mutate:  func(c *Config) { c.Categories = nil },
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name string
		ext  string
	}{
		{"json format", ".json"},
		{"yaml format", ".yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Data.Format = "csv"
			cfg.Categories = []string{"Rent", "Food"}
			path := filepath.Join(tmpDir, "test"+tt.ext)

			err := cfg.SaveToFile(path)
			require.NoError(t, err)

			_, err = os.Stat(path)
			require.NoError(t, err)

			loaded, err := LoadFromFile(path)
			require.NoError(t, err)

			assert.Equal(t, cfg.Data, loaded.Data)
			assert.Equal(t, cfg.Categories, loaded.Categories)
			assert.Equal(t, cfg.Log, loaded.Log)
		})
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  path: /tmp/mine.csv\n"), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/mine.csv", cfg.Data.Path)
	assert.Equal(t, journal.FormatPlain, cfg.Data.Format)
	assert.Equal(t, "always", cfg.Data.Sync)
	assert.Len(t, cfg.Categories, 5)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/path.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  format: xml\n"), 0o644))

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvFile, "/data/spend.csv")
	t.Setenv(EnvFormat, "csv")
	t.Setenv(EnvSync, "manual")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "json")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "/data/spend.csv", cfg.Data.Path)
	assert.Equal(t, "csv", cfg.Data.Format)
	assert.Equal(t, "manual", cfg.Data.Sync)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	codec, err := cfg.Codec()
	require.NoError(t, err)
	assert.Equal(t, journal.FormatCSV, codec.Name())

	policy, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, ledger.Manual, policy)
}

func TestApplyEnvIgnoresEmpty(t *testing.T) {
	t.Setenv(EnvFile, "")

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "expenses.csv", cfg.Data.Path)
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("EXPENSES_FORMAT=csv\n"), 0o644))

	// t.Setenv registers cleanup so the variable set by LoadEnv is restored.
	t.Setenv(EnvFormat, "")
	require.NoError(t, os.Unsetenv(EnvFormat))

	require.NoError(t, LoadEnv(envPath, filepath.Join(dir, "missing.env")))
	assert.Equal(t, "csv", os.Getenv(EnvFormat))

	cfg := Default()
	cfg.ApplyEnv()
	assert.Equal(t, "csv", cfg.Data.Format)
}

func TestCategorySet(t *testing.T) {
	cfg := Default()
	set, err := cfg.CategorySet()
	require.NoError(t, err)
	assert.Equal(t, cfg.Categories, set.Names())

	path := filepath.Join(t.TempDir(), "cats.txt")
	require.NoError(t, os.WriteFile(path, []byte("# mine\nRent\nFood\n"), 0o644))
	cfg.CategoriesFile = path

	set, err = cfg.CategorySet()
	require.NoError(t, err)
	assert.Equal(t, []string{"Rent", "Food"}, set.Names())
}
