package flow

import (
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// Receipt describes a completed transaction.
type Receipt struct {
	Pending
	CashBefore  decimal.Decimal
	CashAfter   decimal.Decimal
	CompletedAt time.Time
}

// Observer is notified after every completed transaction.
type Observer interface {
	OnTransactionComplete(r Receipt)
}

// NoopObserver ignores all notifications.
type NoopObserver struct{}

// OnTransactionComplete implements Observer.
func (NoopObserver) OnTransactionComplete(Receipt) {}

// MultiObserver fans out notifications to multiple observers.
type MultiObserver struct {
	observers []Observer
}

var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver. Nil observers are dropped.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// OnTransactionComplete forwards the receipt to every observer.
// A panicking observer is logged and skipped.
func (m *MultiObserver) OnTransactionComplete(r Receipt) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnTransactionComplete(r) })
	}
}

func safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[ERROR] observer panic: %v", r)
		}
	}()
	fn()
}
