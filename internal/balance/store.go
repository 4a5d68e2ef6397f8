// Package balance holds the three persisted account balances.
package balance

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"moneyhome/internal/jsonutil"
	"moneyhome/internal/kv"
	"moneyhome/internal/money"
)

// Storage keys, one JSON number each.
const (
	KeyCash    = "cash"
	KeySavings = "savings"
	KeyBitcoin = "bitcoin"
)

// Balances is a snapshot of the account.
type Balances struct {
	Cash    decimal.Decimal
	Savings decimal.Decimal
	Bitcoin decimal.Decimal
}

// LoadReport lists the keys that had to be seeded on Open.
type LoadReport struct {
	Seeded    []string // absent keys given a fresh random value
	Recovered []string // corrupt or unreadable keys replaced by a fresh random value
}

// Store holds balances in memory and writes each change through to a kv.Provider.
// Only the flow controller mutates it.
type Store struct {
	kv     kv.Provider
	rand   *rand.Rand
	bal    Balances
	report LoadReport
}

// Option configures a Store.
type Option func(*Store)

// WithRand sets the source used for seeding defaults.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) { s.rand = r }
}

// seed ranges: cash and savings in [0,1000), bitcoin in [0,1).
var seedScale = map[string]float64{
	KeyCash:    1000,
	KeySavings: 1000,
	KeyBitcoin: 1,
}

// Open loads all balances from p. Missing or corrupt keys are seeded and
// written back; Open only fails if a seed cannot be persisted.
func Open(p kv.Provider, opts ...Option) (*Store, error) {
	s := &Store{kv: p}
	for _, o := range opts {
		o(s)
	}
	if s.rand == nil {
		s.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for _, key := range []string{KeyCash, KeySavings, KeyBitcoin} {
		v, err := s.load(key)
		if err != nil {
			return nil, err
		}
		s.set(key, v)
	}
	return s, nil
}

func (s *Store) load(key string) (decimal.Decimal, error) {
	raw, err := s.kv.Get(key)
	if err == nil && raw == nil {
		v := s.seed(key)
		s.report.Seeded = append(s.report.Seeded, key)
		return v, s.write(key, v)
	}
	if err == nil {
		var v decimal.Decimal
		v, err = decode(key, raw)
		if err == nil {
			return v, nil
		}
	}
	log.Printf("[WARN] balance %s unreadable, using fresh default: %v", key, err)
	v := s.seed(key)
	s.report.Recovered = append(s.report.Recovered, key)
	return v, s.write(key, v)
}

func decode(key string, raw []byte) (decimal.Decimal, error) {
	n, err := jsonutil.DecodeNumber(raw, "decode "+key)
	if err != nil {
		return decimal.Zero, err
	}
	return money.Parse(n.String())
}

func (s *Store) seed(key string) decimal.Decimal {
	return money.Round(decimal.NewFromFloat(s.rand.Float64() * seedScale[key]))
}

func (s *Store) write(key string, v decimal.Decimal) error {
	b, err := jsonutil.EncodeNumber(v.StringFixed(money.Places))
	if err != nil {
		return err
	}
	if err := s.kv.Put(key, b); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Store) set(key string, v decimal.Decimal) {
	switch key {
	case KeyCash:
		s.bal.Cash = v
	case KeySavings:
		s.bal.Savings = v
	case KeyBitcoin:
		s.bal.Bitcoin = v
	}
}

// Balances returns the current snapshot.
func (s *Store) Balances() Balances {
	return s.bal
}

// Cash returns the cash balance.
func (s *Store) Cash() decimal.Decimal {
	return s.bal.Cash
}

// LoadReport describes what Open had to seed.
func (s *Store) LoadReport() LoadReport {
	return s.report
}

// Credit adds amount to cash and persists it.
// The in-memory balance changes even when the write fails.
func (s *Store) Credit(amount decimal.Decimal) error {
	s.bal.Cash = money.Round(s.bal.Cash.Add(money.NonNegative(amount)))
	return s.write(KeyCash, s.bal.Cash)
}

// Debit removes amount from cash, never going below zero, and persists it.
// It returns the amount actually removed.
func (s *Store) Debit(amount decimal.Decimal) (decimal.Decimal, error) {
	amount = money.NonNegative(amount)
	if amount.GreaterThan(s.bal.Cash) {
		amount = s.bal.Cash
	}
	s.bal.Cash = money.Round(s.bal.Cash.Sub(amount))
	return amount, s.write(KeyCash, s.bal.Cash)
}
