package kv

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var balancesBucket = []byte("balances")

// BoltProvider stores values in a single bbolt bucket.
type BoltProvider struct {
	db *bolt.DB
}

var _ Provider = (*BoltProvider)(nil)

// NewBoltProvider opens (or creates) the bbolt file at path.
func NewBoltProvider(path string) (*BoltProvider, error) {
	if path == "" {
		return nil, fmt.Errorf("open bolt: empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(balancesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &BoltProvider{db: db}, nil
}

// Get implements Provider.
func (p *BoltProvider) Get(key string) ([]byte, error) {
	var out []byte
	err := p.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(balancesBucket).Get([]byte(key))
		if v != nil {
			// v is only valid inside the transaction
			out = append([]byte(nil), v...)
		}
		return nil
	})
	return out, err
}

// Put implements Provider.
func (p *BoltProvider) Put(key string, value []byte) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(balancesBucket).Put([]byte(key), value)
	})
}

// Close implements Provider.
func (p *BoltProvider) Close() error {
	return p.db.Close()
}
