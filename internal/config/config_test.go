package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneyhome/internal/kv"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnv, home)

	cfg, err := Load(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, kv.DriverBolt, cfg.Storage.Driver)
	assert.Equal(t, filepath.Join(home, "money.db"), cfg.Storage.BoltPath)
	assert.Equal(t, kv.DefaultRedisPrefix, cfg.Storage.RedisPrefix)
	assert.True(t, cfg.HistoryEnabled())
	assert.Equal(t, filepath.Join(home, "history.db"), cfg.History.SQLitePath)
	assert.Equal(t, filepath.Join(home, "money.log"), cfg.Log.File)

	fc := cfg.Flow()
	assert.Equal(t, 3*time.Second, fc.AddDelay)
	assert.Equal(t, 3*time.Second, fc.WithdrawDelay)
	assert.Equal(t, 2*time.Second, fc.SendDelay)
	assert.True(t, fc.InstantFee.Equal(decimal.RequireFromString("0.25")))
}

func TestLoad_File(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())
	path := writeConfig(t, `
storage:
  driver: redis
  redis_addr: localhost:6379
  redis_prefix: "test:"
history:
  enabled: false
latency:
  add: 500ms
  withdraw: 1s
  send: 250ms
transfer:
  instant_fee: 1.5
log:
  max_size_mb: 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	opts := cfg.KV()
	assert.Equal(t, kv.DriverRedis, opts.Driver)
	assert.Equal(t, "localhost:6379", opts.RedisAddr)
	assert.Equal(t, "test:", opts.RedisPrefix)
	assert.False(t, cfg.HistoryEnabled())

	fc := cfg.Flow()
	assert.Equal(t, 500*time.Millisecond, fc.AddDelay)
	assert.Equal(t, time.Second, fc.WithdrawDelay)
	assert.Equal(t, 250*time.Millisecond, fc.SendDelay)
	assert.True(t, fc.InstantFee.Equal(decimal.RequireFromString("1.5")))
	assert.Equal(t, 3, cfg.Log.MaxSizeMB)
	assert.Equal(t, 28, cfg.Log.MaxAgeDays)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())
	t.Setenv("MONEY_STORAGE_DRIVER", "memory")
	t.Setenv("MONEY_HISTORY_ENABLED", "false")
	t.Setenv("MONEY_LOG_FILE", "/tmp/other.log")
	path := writeConfig(t, "storage:\n  driver: bolt\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, kv.DriverMemory, cfg.Storage.Driver)
	assert.False(t, cfg.HistoryEnabled())
	assert.Equal(t, "/tmp/other.log", cfg.Log.File)
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())
	_, err := Load(writeConfig(t, "storage: [unterminated"))
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	t.Setenv(HomeEnv, t.TempDir())
	load := func(body string) *Config {
		cfg, err := Load(writeConfig(t, body))
		require.NoError(t, err)
		return cfg
	}

	assert.ErrorIs(t, load("storage:\n  driver: leveldb\n").Validate(), kv.ErrUnknownDriver)
	assert.ErrorContains(t, load("storage:\n  driver: redis\n").Validate(), "redis_addr")
	assert.ErrorContains(t, load("latency:\n  send: -1s\n").Validate(), "latency")
	assert.ErrorContains(t, load("transfer:\n  instant_fee: abc\n").Validate(), "instant_fee")
	assert.ErrorContains(t, load("transfer:\n  instant_fee: \"-1\"\n").Validate(), "instant_fee")
}

func TestHome(t *testing.T) {
	t.Setenv(HomeEnv, "/srv/money")
	home, err := Home()
	require.NoError(t, err)
	assert.Equal(t, "/srv/money", home)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/srv/money/config.yaml", path)

	t.Setenv(HomeEnv, "")
	home, err = Home()
	require.NoError(t, err)
	assert.Equal(t, DefaultHomeBase, filepath.Base(home))
}
