package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/expenses/category"
	"github.com/rustyeddy/expenses/journal"
	"github.com/rustyeddy/expenses/ledger"
)

// Environment variables read by ApplyEnv.
const (
	EnvFile      = "EXPENSES_FILE"
	EnvFormat    = "EXPENSES_FORMAT"
	EnvSync      = "EXPENSES_SYNC"
	EnvLogLevel  = "EXPENSES_LOG_LEVEL"
	EnvLogFormat = "EXPENSES_LOG_FORMAT"
)

// Config represents the complete application configuration
type Config struct {
	Data           DataConfig `json:"data" yaml:"data"`
	Categories     []string   `json:"categories" yaml:"categories"`
	CategoriesFile string     `json:"categories_file,omitempty" yaml:"categories_file,omitempty"`
	Log            LogConfig  `json:"log" yaml:"log"`
}

// DataConfig locates the expense file and says how it is written.
type DataConfig struct {
	Path   string `json:"path" yaml:"path"`
	Format string `json:"format" yaml:"format"` // "plain" or "csv"
	Sync   string `json:"sync" yaml:"sync"`     // "always" or "manual"
}

// LogConfig contains logging parameters
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`   // debug|info|warn|error
	Format string `json:"format" yaml:"format"` // text|json|logfmt
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Path:   "expenses.csv",
			Format: journal.FormatPlain,
			Sync:   "always",
		},
		Categories: category.Default().Names(),
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// LoadFromFile loads configuration from a file (JSON or YAML). Keys missing
// from the file keep their default values.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		cfg = Default()
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// LoadEnv reads .env style files into the process environment. Missing files
// are skipped and variables already set are left alone.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from EXPENSES_* environment variables.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvFile); ok && v != "" {
		c.Data.Path = v
	}
	if v, ok := os.LookupEnv(EnvFormat); ok && v != "" {
		c.Data.Format = v
	}
	if v, ok := os.LookupEnv(EnvSync); ok && v != "" {
		c.Data.Sync = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvLogFormat); ok && v != "" {
		c.Log.Format = v
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.Path) == "" {
		return fmt.Errorf("data.path is required")
	}
	if _, err := journal.CodecByName(c.Data.Format); err != nil {
		return fmt.Errorf("data.format: %w", err)
	}
	if _, err := ledger.ParsePolicy(c.Data.Sync); err != nil {
		return fmt.Errorf("data.sync: %w", err)
	}
	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error")
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json", "logfmt":
	default:
		return fmt.Errorf("log.format must be one of text, json, logfmt")
	}
	return nil
}

// Codec returns the journal codec named by data.format.
func (c *Config) Codec() (journal.Codec, error) {
	return journal.CodecByName(c.Data.Format)
}

// Policy returns the ledger save policy named by data.sync.
func (c *Config) Policy() (ledger.Policy, error) {
	return ledger.ParsePolicy(c.Data.Sync)
}

// CategorySet builds the configured categories. A categories file, when
// set, replaces the inline list.
func (c *Config) CategorySet() (category.Set, error) {
	if c.CategoriesFile != "" {
		return category.ReadFile(c.CategoriesFile)
	}
	return category.New(c.Categories...), nil
}
