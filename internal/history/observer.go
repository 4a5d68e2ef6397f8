package history

import (
	"log"

	"moneyhome/internal/flow"
)

type observer struct {
	rec Recorder
}

// NewObserver records every completed transaction in rec. Record failures
// are logged; history is best effort.
func NewObserver(rec Recorder) flow.Observer {
	return &observer{rec: rec}
}

func (o *observer) OnTransactionComplete(r flow.Receipt) {
	if err := o.rec.Record(FromReceipt(r)); err != nil {
		log.Printf("[WARN] history: %v", err)
	}
}

// FromReceipt converts a flow receipt into a history entry.
func FromReceipt(r flow.Receipt) Entry {
	e := Entry{
		ID:          r.ID,
		Kind:        r.Kind.String(),
		Amount:      r.Amount,
		Fee:         r.Fee,
		CashBefore:  r.CashBefore,
		CashAfter:   r.CashAfter,
		CompletedAt: r.CompletedAt,
	}
	if r.Speed != flow.SpeedNone {
		e.Speed = r.Speed.String()
	}
	if r.Recipient != nil {
		e.Recipient = r.Recipient.Handle
	}
	return e
}
