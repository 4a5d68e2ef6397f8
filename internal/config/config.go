// Package config loads the YAML configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"moneyhome/internal/flow"
	"moneyhome/internal/kv"
	"moneyhome/internal/money"
)

const (
	// HomeEnv overrides the ~/.money base directory (for testing).
	HomeEnv = "MONEY_HOME"
	// DefaultHomeBase is the default base directory under the user's home.
	DefaultHomeBase = ".money"
)

// Config holds all application configuration.
type Config struct {
	Storage struct {
		Driver      string `yaml:"driver"`
		BoltPath    string `yaml:"bolt_path"`
		RedisAddr   string `yaml:"redis_addr"`
		RedisPrefix string `yaml:"redis_prefix"`
	} `yaml:"storage"`
	History struct {
		Enabled    *bool  `yaml:"enabled"`
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"history"`
	Latency struct {
		Add      time.Duration `yaml:"add"`
		Withdraw time.Duration `yaml:"withdraw"`
		Send     time.Duration `yaml:"send"`
	} `yaml:"latency"`
	Transfer struct {
		InstantFee string `yaml:"instant_fee"`
	} `yaml:"transfer"`
	Log struct {
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`

	// Home is the resolved base directory; not read from the file.
	Home string `yaml:"-"`
}

// Home returns $MONEY_HOME, or ~/.money when unset.
func Home() (string, error) {
	if base := os.Getenv(HomeEnv); base != "" {
		return base, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultHomeBase), nil
}

// DefaultPath returns <home>/config.yaml.
func DefaultPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "config.yaml"), nil
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	home, err := Home()
	if err != nil {
		return nil, fmt.Errorf("resolve home: %w", err)
	}
	cfg := &Config{Home: home}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("MONEY_STORAGE_DRIVER"); v != "" {
		cfg.Storage.Driver = v
	}
	if v := os.Getenv("MONEY_REDIS_ADDR"); v != "" {
		cfg.Storage.RedisAddr = v
	}
	if v := os.Getenv("MONEY_HISTORY_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.History.Enabled = &b
		}
	}
	if v := os.Getenv("MONEY_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}

	// Defaults
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = kv.DriverBolt
	}
	if cfg.Storage.BoltPath == "" {
		cfg.Storage.BoltPath = filepath.Join(home, "money.db")
	}
	if cfg.Storage.RedisPrefix == "" {
		cfg.Storage.RedisPrefix = kv.DefaultRedisPrefix
	}
	if cfg.History.Enabled == nil {
		enabled := true
		cfg.History.Enabled = &enabled
	}
	if cfg.History.SQLitePath == "" {
		cfg.History.SQLitePath = filepath.Join(home, "history.db")
	}
	def := flow.DefaultConfig()
	if cfg.Latency.Add == 0 {
		cfg.Latency.Add = def.AddDelay
	}
	if cfg.Latency.Withdraw == 0 {
		cfg.Latency.Withdraw = def.WithdrawDelay
	}
	if cfg.Latency.Send == 0 {
		cfg.Latency.Send = def.SendDelay
	}
	if cfg.Transfer.InstantFee == "" {
		cfg.Transfer.InstantFee = def.InstantFee.StringFixed(money.Places)
	}
	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(home, "money.log")
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = 10
	}
	if cfg.Log.MaxAgeDays == 0 {
		cfg.Log.MaxAgeDays = 28
	}

	return cfg, nil
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case kv.DriverBolt, kv.DriverMemory:
	case kv.DriverRedis:
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("storage.redis_addr is required for the redis driver")
		}
	default:
		return fmt.Errorf("storage.driver: %w: %q", kv.ErrUnknownDriver, c.Storage.Driver)
	}
	if c.Latency.Add < 0 || c.Latency.Withdraw < 0 || c.Latency.Send < 0 {
		return fmt.Errorf("latency values must not be negative")
	}
	if _, err := money.Parse(c.Transfer.InstantFee); err != nil {
		return fmt.Errorf("transfer.instant_fee: %w", err)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}
	return nil
}

// HistoryEnabled reports whether transactions are recorded.
func (c *Config) HistoryEnabled() bool {
	return c.History.Enabled == nil || *c.History.Enabled
}

// KV returns the provider options.
func (c *Config) KV() kv.Options {
	return kv.Options{
		Driver:      c.Storage.Driver,
		BoltPath:    c.Storage.BoltPath,
		RedisAddr:   c.Storage.RedisAddr,
		RedisPrefix: c.Storage.RedisPrefix,
	}
}

// Flow returns the controller configuration. Call Validate first.
func (c *Config) Flow() flow.Config {
	fee, err := money.Parse(c.Transfer.InstantFee)
	if err != nil {
		fee = flow.DefaultConfig().InstantFee
	}
	return flow.Config{
		AddDelay:      c.Latency.Add,
		WithdrawDelay: c.Latency.Withdraw,
		SendDelay:     c.Latency.Send,
		InstantFee:    fee,
	}
}
