// Package kv provides the flat key-value stores that hold persisted balances.
package kv

import (
	"errors"
	"fmt"
)

// Provider is a flat key-value store. Get returns nil, nil for a missing key.
type Provider interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}

// Driver names accepted by Open.
const (
	DriverBolt   = "bolt"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Options selects and configures a provider.
type Options struct {
	Driver      string
	BoltPath    string
	RedisAddr   string
	RedisPrefix string
}

// Open creates the provider named by opts.Driver.
func Open(opts Options) (Provider, error) {
	switch opts.Driver {
	case DriverBolt, "":
		return NewBoltProvider(opts.BoltPath)
	case DriverRedis:
		return NewRedisProvider(opts.RedisAddr, opts.RedisPrefix)
	case DriverMemory:
		return NewMemoryProvider(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}
}
