package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/tradebook/journal"
)

// Environment variables that override file settings.
const (
	EnvJournalPath = "TRADEBOOK_JOURNAL_PATH"
	EnvJournalType = "TRADEBOOK_JOURNAL_TYPE"
	EnvLogLevel    = "TRADEBOOK_LOG_LEVEL"
	EnvServerAddr  = "TRADEBOOK_SERVER_ADDR"
)

// Config represents the complete journal configuration
type Config struct {
	Account  AccountConfig  `json:"account" yaml:"account"`
	Journal  JournalConfig  `json:"journal" yaml:"journal"`
	Analysis AnalysisConfig `json:"analysis" yaml:"analysis"`
	Log      LogConfig      `json:"log" yaml:"log"`
	Server   ServerConfig   `json:"server" yaml:"server"`
}

// AccountConfig contains account initialization parameters
type AccountConfig struct {
	Currency       string  `json:"currency" yaml:"currency"`
	InitialBalance float64 `json:"initial_balance" yaml:"initial_balance"`
}

// JournalConfig selects the trade store
type JournalConfig struct {
	Type string `json:"type" yaml:"type"` // "csv" or "sqlite"
	Path string `json:"path" yaml:"path"`
}

// AnalysisConfig names the criteria lists and bucket thresholds
type AnalysisConfig struct {
	BasicCriteria []string `json:"basic_criteria" yaml:"basic_criteria"`
	OtherCriteria []string `json:"other_criteria" yaml:"other_criteria"`
	HighThreshold float64  `json:"high_threshold" yaml:"high_threshold"`
	LowThreshold  float64  `json:"low_threshold" yaml:"low_threshold"`
}

type LogConfig struct {
	Level      string `json:"level" yaml:"level"`   // debug, info, warn, error
	Format     string `json:"format" yaml:"format"` // console or json
	File       string `json:"file,omitempty" yaml:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty" yaml:"max_backups,omitempty"`
	MaxAgeDays int    `json:"max_age_days,omitempty" yaml:"max_age_days,omitempty"`
}

type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
	Mode string `json:"mode" yaml:"mode"` // gin mode: debug, release, test
}

// Load reads .env (if present), the config file (if path is set, else
// defaults), applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = readFile(path); err != nil {
			return nil, err
		}
	}
	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a file (YAML or JSON). Settings the
// file leaves out keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	cfg, err := readFile(path)
	if err != nil {
		return nil, err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func readFile(path string) (*Config, error) {
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

// ApplyEnv overrides settings from TRADEBOOK_* environment variables.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvJournalPath); ok && v != "" {
		c.Journal.Path = v
	}
	if v, ok := os.LookupEnv(EnvJournalType); ok && v != "" {
		c.Journal.Type = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := os.LookupEnv(EnvServerAddr); ok && v != "" {
		c.Server.Addr = v
	}
}

// Validate checks the whole configuration and reports every problem found.
func (c *Config) Validate() error {
	var errs error
	add := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf(format, args...))
	}

	if c.Account.Currency == "" {
		add("account.currency is required")
	}
	if c.Account.InitialBalance <= 0 {
		add("account.initial_balance must be positive")
	}

	switch c.Journal.Type {
	case "csv", "sqlite":
	default:
		add("journal.type must be 'csv' or 'sqlite'")
	}
	if c.Journal.Path == "" {
		add("journal.path is required")
	}

	if _, _, err := c.Analysis.Criteria(); err != nil {
		errs = multierr.Append(errs, err)
	}
	if c.Analysis.HighThreshold < 0 || c.Analysis.HighThreshold > 100 {
		add("analysis.high_threshold must be between 0 and 100")
	}
	if c.Analysis.LowThreshold < 0 || c.Analysis.LowThreshold > 100 {
		add("analysis.low_threshold must be between 0 and 100")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		add("log.level must be one of debug, info, warn, error")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		add("log.format must be 'console' or 'json'")
	}

	switch c.Server.Mode {
	case "", "debug", "release", "test":
	default:
		add("server.mode must be debug, release or test")
	}

	return errs
}

// Criteria parses the configured criteria lists. Basic and other criteria
// must not overlap.
func (a AnalysisConfig) Criteria() (basic, other []journal.Criterion, err error) {
	basic, err = journal.ParseCriteria(a.BasicCriteria)
	if err != nil {
		return nil, nil, fmt.Errorf("analysis.basic_criteria: %w", err)
	}
	other, err = journal.ParseCriteria(a.OtherCriteria)
	if err != nil {
		return nil, nil, fmt.Errorf("analysis.other_criteria: %w", err)
	}

	b := journal.NewCriteriaSet(basic...)
	for _, c := range other {
		if b.Has(c) {
			err = multierr.Append(err, fmt.Errorf("analysis: %q is both a basic and an other criterion", c))
		}
	}
	if err != nil {
		return nil, nil, err
	}
	return basic, other, nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency:       "USD",
			InitialBalance: journal.DefaultInitialBalance,
		},
		Journal: JournalConfig{
			Type: "csv",
			Path: "./trades.csv",
		},
		Analysis: AnalysisConfig{
			BasicCriteria: criteriaNames(journal.DefaultBasicCriteria),
			OtherCriteria: criteriaNames(journal.DefaultOtherCriteria),
			HighThreshold: 60,
			LowThreshold:  20,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Server: ServerConfig{
			Addr: ":8080",
			Mode: "release",
		},
	}
}

func criteriaNames(cs []journal.Criterion) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}
