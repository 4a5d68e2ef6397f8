// Package flow implements the transaction flow controller: the state machine
// that decides which overlay is showing, what the next input does, and when
// the cash balance changes.
//
// The controller is driven from a single event loop. Simulated network
// latency is modelled as a Task that the caller schedules (tea.Tick in the
// UI, Await elsewhere) and hands back through Complete. At most one Task is
// in flight; while it is, every operation that would open or close an
// overlay returns ErrBusy.
package flow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"moneyhome/internal/balance"
	"moneyhome/internal/contacts"
	"moneyhome/internal/money"
)

var (
	ErrBusy          = errors.New("transaction in flight")
	ErrInvalidState  = errors.New("operation not valid in current state")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNoRecipient   = errors.New("no recipient selected")
	ErrUnknownTask   = errors.New("unknown task")
)

// PresetAmounts are the whole-dollar shortcuts offered by the amount pickers.
var PresetAmounts = []int{10, 25, 50, 75, 100}

// Config holds the simulated latencies and the displayed instant-transfer fee.
type Config struct {
	AddDelay      time.Duration
	WithdrawDelay time.Duration
	SendDelay     time.Duration
	// InstantFee is shown on the transfer chooser and recorded on the
	// receipt; it is never deducted from the balance.
	InstantFee decimal.Decimal
}

// DefaultConfig returns the stock latencies: 3s add/withdraw, 2s send.
func DefaultConfig() Config {
	return Config{
		AddDelay:      3 * time.Second,
		WithdrawDelay: 3 * time.Second,
		SendDelay:     2 * time.Second,
		InstantFee:    decimal.RequireFromString("0.25"),
	}
}

// Pending is the transaction between amount confirmation and completion.
type Pending struct {
	ID        string
	Kind      TxnKind
	Amount    decimal.Decimal
	Recipient *contacts.Contact
	Speed     Speed
	Fee       decimal.Decimal
	InFlight  bool
	StartedAt time.Time
}

// Task is a scheduled completion. The caller waits Delay and then calls
// Complete(ID).
type Task struct {
	ID    string
	Kind  TxnKind
	Delay time.Duration
}

// Controller owns the Flow State and the Pending transaction.
type Controller struct {
	store    *balance.Store
	dir      *contacts.Directory
	cfg      Config
	observer Observer
	now      func() time.Time
	newID    func() string

	state     State
	pending   *Pending
	candidate decimal.Decimal
	preset    int
	entry     Keypad
	slider    Slider
	query     string
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver sets the completion observer.
func WithObserver(o Observer) Option {
	return func(c *Controller) {
		if o != nil {
			c.observer = o
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithIDs overrides the transaction ID generator.
func WithIDs(newID func() string) Option {
	return func(c *Controller) { c.newID = newID }
}

// New creates a controller in the None state.
func New(store *balance.Store, dir *contacts.Directory, cfg Config, opts ...Option) *Controller {
	c := &Controller{
		store:    store,
		dir:      dir,
		cfg:      cfg,
		observer: NoopObserver{},
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// State returns the current Flow State.
func (c *Controller) State() State { return c.state }

// Pending returns a copy of the pending transaction, if any.
func (c *Controller) Pending() (Pending, bool) {
	if c.pending == nil {
		return Pending{}, false
	}
	return *c.pending, true
}

// Busy reports whether a simulated transaction is in flight.
func (c *Controller) Busy() bool {
	return c.pending != nil && c.pending.InFlight
}

// Balances returns the current balances.
func (c *Controller) Balances() balance.Balances { return c.store.Balances() }

// Candidate returns the preset amount selected in the current picker.
func (c *Controller) Candidate() decimal.Decimal { return c.candidate }

// SelectedPreset returns the selected preset, 0 if none.
func (c *Controller) SelectedPreset() int { return c.preset }

// Entry returns the keypad buffer.
func (c *Controller) Entry() Keypad { return c.entry }

// Slider returns the withdrawal slider.
func (c *Controller) Slider() Slider { return c.slider }

// Query returns the current recipient search text.
func (c *Controller) Query() string { return c.query }

// InstantFee returns the displayed instant-transfer fee.
func (c *Controller) InstantFee() decimal.Decimal { return c.cfg.InstantFee }

// reset clears everything tied to the current overlay and enters k.
func (c *Controller) reset(k Kind) {
	c.state = State{Kind: k}
	c.pending = nil
	c.candidate = decimal.Zero
	c.preset = 0
	c.entry.Reset()
	c.query = ""
}

// open replaces whatever overlay is showing with k.
func (c *Controller) open(k Kind) error {
	if c.Busy() {
		return ErrBusy
	}
	c.reset(k)
	return nil
}

// StartAdd opens the add-cash amount picker.
func (c *Controller) StartAdd() error {
	return c.open(AddAmount)
}

// StartWithdraw opens the withdraw amount picker and seeds the slider
// ceiling with the whole-dollar cash balance.
func (c *Controller) StartWithdraw() error {
	if err := c.open(WithdrawAmountPicker); err != nil {
		return err
	}
	c.slider.Reset(money.Floor(c.store.Cash()))
	return nil
}

// OpenWithdrawSlider opens the withdrawal slider over [0, floor(cash)].
func (c *Controller) OpenWithdrawSlider() error {
	if err := c.open(WithdrawSlider); err != nil {
		return err
	}
	c.slider.Reset(money.Floor(c.store.Cash()))
	return nil
}

// OpenSend opens the send amount keypad.
func (c *Controller) OpenSend() error {
	return c.open(SendAmountKeypad)
}

// SelectPresetAmount records n as the candidate amount in an amount picker.
func (c *Controller) SelectPresetAmount(n int) error {
	if c.state.Kind != AddAmount && c.state.Kind != WithdrawAmountPicker {
		return ErrInvalidState
	}
	for _, p := range PresetAmounts {
		if p == n {
			c.preset = n
			c.candidate = money.Dollars(n)
			return nil
		}
	}
	return fmt.Errorf("%w: %d is not a preset", ErrInvalidAmount, n)
}

// OpenCustomKeypad switches an amount picker to manual entry.
func (c *Controller) OpenCustomKeypad() error {
	var mode TxnKind
	switch c.state.Kind {
	case AddAmount:
		mode = TxnAdd
	case WithdrawAmountPicker:
		mode = TxnWithdraw
	default:
		return ErrInvalidState
	}
	c.reset(CustomKeypad)
	c.state.Mode = mode
	return nil
}

// PressKey feeds a keypad key. Rejected keys are not errors.
func (c *Controller) PressKey(key string) error {
	if c.state.Kind != CustomKeypad && c.state.Kind != SendAmountKeypad {
		return ErrInvalidState
	}
	c.entry.Press(key)
	return nil
}

// amountToConfirm returns the mode and amount ConfirmAmount would use.
func (c *Controller) amountToConfirm() (TxnKind, decimal.Decimal, bool) {
	switch c.state.Kind {
	case AddAmount:
		return TxnAdd, c.candidate, true
	case WithdrawAmountPicker:
		return TxnWithdraw, c.candidate, true
	case CustomKeypad:
		return c.state.Mode, c.entry.Amount(), true
	}
	return TxnNone, decimal.Zero, false
}

// CanConfirm reports whether ConfirmAmount would succeed.
func (c *Controller) CanConfirm() bool {
	mode, amount, ok := c.amountToConfirm()
	if !ok || c.Busy() || !amount.IsPositive() {
		return false
	}
	if mode == TxnWithdraw && amount.GreaterThan(c.store.Cash()) {
		return false
	}
	return true
}

// ConfirmAmount confirms the picker or keypad amount. Adds start the
// simulated delay and return its Task. Withdrawals move on to the transfer
// method chooser and return a nil Task.
func (c *Controller) ConfirmAmount() (*Task, error) {
	if c.Busy() {
		return nil, ErrBusy
	}
	mode, amount, ok := c.amountToConfirm()
	if !ok {
		return nil, ErrInvalidState
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	amount = money.Round(amount)
	if mode == TxnWithdraw {
		if amount.GreaterThan(c.store.Cash()) {
			return nil, fmt.Errorf("%w: %s exceeds cash balance", ErrInvalidAmount, amount)
		}
		c.toTransferChooser(amount)
		return nil, nil
	}
	c.pending = c.newPending(TxnAdd, amount)
	return c.launch(c.cfg.AddDelay), nil
}

// SetSlider moves the withdrawal slider, clamped to [0, floor(cash)].
func (c *Controller) SetSlider(v int) error {
	if c.state.Kind != WithdrawSlider {
		return ErrInvalidState
	}
	c.slider.Set(v)
	return nil
}

// ScrollSlider nudges the withdrawal slider by delta, clamped.
func (c *Controller) ScrollSlider(delta int) error {
	if c.state.Kind != WithdrawSlider {
		return ErrInvalidState
	}
	c.slider.Scroll(delta)
	return nil
}

// ChooseWithdrawAmount confirms the slider value and moves to the transfer
// method chooser.
func (c *Controller) ChooseWithdrawAmount() error {
	if c.state.Kind != WithdrawSlider {
		return ErrInvalidState
	}
	c.slider.Set(c.slider.Value()) // re-clamp
	if c.slider.Value() <= 0 {
		return ErrInvalidAmount
	}
	c.toTransferChooser(money.Dollars(c.slider.Value()))
	return nil
}

func (c *Controller) toTransferChooser(amount decimal.Decimal) {
	c.reset(TransferMethodChooser)
	c.state.Mode = TxnWithdraw
	c.state.Amount = amount
	c.pending = c.newPending(TxnWithdraw, amount)
}

// ChooseTransferMethod records the transfer speed and starts the simulated
// withdrawal. Both speeds behave the same; the instant fee is cosmetic.
func (c *Controller) ChooseTransferMethod(speed Speed) (*Task, error) {
	if c.Busy() {
		return nil, ErrBusy
	}
	if c.state.Kind != TransferMethodChooser || c.pending == nil {
		return nil, ErrInvalidState
	}
	switch speed {
	case SpeedStandard:
	case SpeedInstant:
		c.pending.Fee = c.cfg.InstantFee
	default:
		return nil, fmt.Errorf("%w: unknown transfer speed", ErrInvalidState)
	}
	c.pending.Speed = speed
	return c.launch(c.cfg.WithdrawDelay), nil
}

// StartSend records the amount to send and opens the recipient picker.
func (c *Controller) StartSend(amount decimal.Decimal) error {
	if c.Busy() {
		return ErrBusy
	}
	if c.state.Kind != SendAmountKeypad {
		return ErrInvalidState
	}
	amount = money.Round(amount)
	if !amount.IsPositive() || amount.GreaterThan(c.store.Cash()) {
		return ErrInvalidAmount
	}
	c.reset(SendRecipientPicker)
	c.state.Mode = TxnSend
	c.state.Amount = amount
	c.pending = c.newPending(TxnSend, amount)
	return nil
}

// CanStartSend reports whether StartSend would accept the keypad entry.
func (c *Controller) CanStartSend() bool {
	if c.state.Kind != SendAmountKeypad || c.Busy() {
		return false
	}
	amount := money.Round(c.entry.Amount())
	return amount.IsPositive() && amount.LessThanOrEqual(c.store.Cash())
}

// FilterRecipients records the search text and returns the matching contacts.
func (c *Controller) FilterRecipients(q string) []contacts.Contact {
	c.query = q
	return c.dir.Filter(q)
}

// Recipients returns the contacts matching the current search text.
func (c *Controller) Recipients() []contacts.Contact {
	return c.dir.Filter(c.query)
}

// SelectRecipient picks the payee for the pending send.
func (c *Controller) SelectRecipient(handle string) error {
	if c.state.Kind != SendRecipientPicker || c.pending == nil {
		return ErrInvalidState
	}
	ct, ok := c.dir.Lookup(handle)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoRecipient, handle)
	}
	c.pending.Recipient = &ct
	return nil
}

// Recipient returns the selected payee, if any.
func (c *Controller) Recipient() (contacts.Contact, bool) {
	if c.pending == nil || c.pending.Recipient == nil {
		return contacts.Contact{}, false
	}
	return *c.pending.Recipient, true
}

// CanPay reports whether ConfirmSend would succeed.
func (c *Controller) CanPay() bool {
	return c.state.Kind == SendRecipientPicker &&
		c.pending != nil && !c.pending.InFlight &&
		c.pending.Recipient != nil &&
		c.pending.Amount.IsPositive() &&
		c.pending.Amount.LessThanOrEqual(c.store.Cash())
}

// ConfirmSend starts the simulated send.
func (c *Controller) ConfirmSend() (*Task, error) {
	if c.Busy() {
		return nil, ErrBusy
	}
	if c.state.Kind != SendRecipientPicker || c.pending == nil {
		return nil, ErrInvalidState
	}
	if c.pending.Recipient == nil {
		return nil, ErrNoRecipient
	}
	if !c.CanPay() {
		return nil, ErrInvalidAmount
	}
	return c.launch(c.cfg.SendDelay), nil
}

func (c *Controller) newPending(kind TxnKind, amount decimal.Decimal) *Pending {
	return &Pending{ID: c.newID(), Kind: kind, Amount: amount}
}

// launch marks the pending transaction in flight and shows the spinner.
func (c *Controller) launch(delay time.Duration) *Task {
	p := c.pending
	p.InFlight = true
	p.StartedAt = c.now()
	c.state = State{Kind: LoadingSpinner, Mode: p.Kind, Amount: p.Amount}
	return &Task{ID: p.ID, Kind: p.Kind, Delay: delay}
}

// Complete applies the in-flight transaction identified by id. The
// simulated call always succeeds; a storage write failure is logged and the
// in-memory balance still changes.
func (c *Controller) Complete(id string) error {
	p := c.pending
	if p == nil || !p.InFlight || p.ID != id {
		return fmt.Errorf("%w: %s", ErrUnknownTask, id)
	}
	before := c.store.Cash()
	var err error
	var next State
	switch p.Kind {
	case TxnAdd:
		err = c.store.Credit(p.Amount)
		next = State{Kind: SuccessScreen, Mode: TxnAdd, Amount: p.Amount}
	case TxnWithdraw:
		_, err = c.store.Debit(p.Amount)
		next = State{Kind: SuccessScreen, Mode: TxnWithdraw, Amount: p.Amount, Speed: p.Speed}
	case TxnSend:
		_, err = c.store.Debit(p.Amount)
		next = State{Kind: SendConfirmation, Mode: TxnSend, Amount: p.Amount, Recipient: p.Recipient}
	}
	if err != nil {
		log.Printf("[ERROR] persist cash after %s %s: %v", p.Kind, p.ID, err)
	}

	receipt := Receipt{
		Pending:     *p,
		CashBefore:  before,
		CashAfter:   c.store.Cash(),
		CompletedAt: c.now(),
	}
	receipt.InFlight = false
	c.reset(next.Kind)
	c.state = next
	log.Printf("[INFO] %s %s completed: %s, cash %s -> %s",
		p.Kind, p.ID, p.Amount.StringFixed(money.Places),
		receipt.CashBefore.StringFixed(money.Places), receipt.CashAfter.StringFixed(money.Places))
	c.observer.OnTransactionComplete(receipt)
	return nil
}

// Await blocks for the task's delay and completes it. A cancelled context
// returns early and leaves the transaction in flight.
func (c *Controller) Await(ctx context.Context, t *Task) error {
	if t == nil {
		return nil
	}
	timer := time.NewTimer(t.Delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}
	return c.Complete(t.ID)
}

// Cancel closes the current overlay and drops the pending transaction.
func (c *Controller) Cancel() error {
	if c.Busy() {
		return ErrBusy
	}
	c.reset(None)
	return nil
}

// Dismiss closes a success or confirmation screen (the Done button).
// From any other state it behaves like Cancel.
func (c *Controller) Dismiss() error {
	return c.Cancel()
}
