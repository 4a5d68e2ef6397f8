package kv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// DefaultRedisPrefix namespaces balance keys in a shared Redis.
const DefaultRedisPrefix = "money:"

const redisTimeout = 2 * time.Second

// RedisProvider stores values as plain Redis strings under a key prefix.
type RedisProvider struct {
	client *redis.Client
	prefix string
}

var _ Provider = (*RedisProvider)(nil)

// NewRedisProvider connects to addr and pings it once.
func NewRedisProvider(addr, prefix string) (*RedisProvider, error) {
	if addr == "" {
		return nil, fmt.Errorf("open redis: empty address")
	}
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return &RedisProvider{client: client, prefix: prefix}, nil
}

// Get implements Provider.
func (p *RedisProvider) Get(key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	v, err := p.client.Get(ctx, p.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Put implements Provider.
func (p *RedisProvider) Put(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	return p.client.Set(ctx, p.prefix+key, value, 0).Err()
}

// Close implements Provider.
func (p *RedisProvider) Close() error {
	return p.client.Close()
}
