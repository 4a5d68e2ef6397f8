package flow

import (
	"fmt"

	"github.com/shopspring/decimal"

	"moneyhome/internal/contacts"
	"moneyhome/internal/money"
)

// Kind identifies the single overlay that is active.
type Kind int

const (
	None Kind = iota
	AddAmount
	WithdrawAmountPicker
	CustomKeypad
	WithdrawSlider
	TransferMethodChooser
	SendAmountKeypad
	SendRecipientPicker
	LoadingSpinner
	SuccessScreen
	SendConfirmation
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case AddAmount:
		return "addAmount"
	case WithdrawAmountPicker:
		return "withdrawAmountPicker"
	case CustomKeypad:
		return "customKeypad"
	case WithdrawSlider:
		return "withdrawSlider"
	case TransferMethodChooser:
		return "transferMethodChooser"
	case SendAmountKeypad:
		return "sendAmountKeypad"
	case SendRecipientPicker:
		return "sendRecipientPicker"
	case LoadingSpinner:
		return "loadingSpinner"
	case SuccessScreen:
		return "successScreen"
	case SendConfirmation:
		return "sendConfirmation"
	default:
		return "unknown"
	}
}

// TxnKind is the kind of money movement a flow performs.
type TxnKind int

const (
	TxnNone TxnKind = iota
	TxnAdd
	TxnWithdraw
	TxnSend
)

func (t TxnKind) String() string {
	switch t {
	case TxnAdd:
		return "add"
	case TxnWithdraw:
		return "withdraw"
	case TxnSend:
		return "send"
	default:
		return ""
	}
}

// Speed is the transfer method chosen for a withdrawal.
type Speed int

const (
	SpeedNone Speed = iota
	SpeedStandard
	SpeedInstant
)

func (s Speed) String() string {
	switch s {
	case SpeedStandard:
		return "standard"
	case SpeedInstant:
		return "instant"
	default:
		return ""
	}
}

// State is the tagged Flow State. Only the fields relevant to Kind are set:
//   - CustomKeypad: Mode
//   - TransferMethodChooser, SendRecipientPicker, LoadingSpinner: Mode, Amount
//   - SuccessScreen: Mode, Amount, Speed (withdraw only)
//   - SendConfirmation: Amount, Recipient
type State struct {
	Kind      Kind
	Mode      TxnKind
	Amount    decimal.Decimal
	Speed     Speed
	Recipient *contacts.Contact
}

// Active reports whether an overlay is showing.
func (s State) Active() bool {
	return s.Kind != None
}

func (s State) String() string {
	switch s.Kind {
	case CustomKeypad:
		return fmt.Sprintf("%s(%s)", s.Kind, s.Mode)
	case SuccessScreen:
		return fmt.Sprintf("%s(%s, %s)", s.Kind, s.Mode, s.Amount.StringFixed(money.Places))
	case SendConfirmation:
		name := ""
		if s.Recipient != nil {
			name = s.Recipient.Handle
		}
		return fmt.Sprintf("%s(%s, %s)", s.Kind, s.Amount.StringFixed(money.Places), name)
	default:
		return s.Kind.String()
	}
}

// Message is the text shown on the success and confirmation screens.
// It is empty for every other state.
func (s State) Message() string {
	switch s.Kind {
	case SuccessScreen:
		switch s.Mode {
		case TxnAdd:
			return fmt.Sprintf("You added %s to your Cash App.", money.FormatShort(s.Amount))
		case TxnWithdraw:
			if s.Speed == SpeedInstant {
				return fmt.Sprintf("%s was instantly deposited to your bank account.", money.Format(s.Amount))
			}
			return fmt.Sprintf("You withdrew %s from your Cash App.", money.FormatShort(s.Amount))
		}
	case SendConfirmation:
		if s.Recipient != nil {
			return fmt.Sprintf("You sent %s to %s.", money.FormatShort(s.Amount), s.Recipient.DisplayName)
		}
	}
	return ""
}
