// Package history records completed transactions.
package history

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one completed transaction.
type Entry struct {
	ID          string
	Kind        string
	Amount      decimal.Decimal
	Speed       string
	Fee         decimal.Decimal
	Recipient   string // handle, sends only
	CashBefore  decimal.Decimal
	CashAfter   decimal.Decimal
	CompletedAt time.Time
}

// Recorder persists and lists transaction history.
type Recorder interface {
	Record(e Entry) error
	// Recent returns up to limit entries, newest first.
	Recent(limit int) ([]Entry, error)
	Close() error
}

// NoopRecorder discards everything.
type NoopRecorder struct{}

func (NoopRecorder) Record(Entry) error          { return nil }
func (NoopRecorder) Recent(int) ([]Entry, error) { return nil, nil }
func (NoopRecorder) Close() error                { return nil }
