package ui

import (
	"moneyhome/internal/flow"
	"moneyhome/internal/history"
)

// ShowAddMsg opens the Add Cash picker (a, SPC a).
type ShowAddMsg struct{}

// ShowWithdrawMsg opens the Withdraw Cash picker (w, SPC w).
type ShowWithdrawMsg struct{}

// ShowWithdrawSliderMsg opens the withdrawal slider (W, SPC W).
type ShowWithdrawSliderMsg struct{}

// ShowSendMsg opens the send keypad (s, SPC s).
type ShowSendMsg struct{}

// ShowHistoryMsg toggles the history screen (h, SPC h).
type ShowHistoryMsg struct{}

// ShowHomeMsg returns to the home screen.
type ShowHomeMsg struct{}

// DismissModalMsg is sent when the user cancels an overlay (Esc).
type DismissModalMsg struct{}

// SelectPresetMsg marks a preset amount in the amount picker.
type SelectPresetMsg struct {
	Amount int
}

// OpenCustomKeypadMsg switches the amount picker to the keypad ("...").
type OpenCustomKeypadMsg struct{}

// KeypadKeyMsg is one keypad press: a digit, flow.KeyDot or flow.KeyBackspace.
type KeypadKeyMsg struct {
	Key string
}

// ConfirmAmountMsg presses Add/Withdraw on the picker or custom keypad.
type ConfirmAmountMsg struct{}

// SliderScrollMsg moves the withdrawal slider by Delta dollars.
type SliderScrollMsg struct {
	Delta int
}

// SliderSetMsg moves the withdrawal slider to Value.
type SliderSetMsg struct {
	Value int
}

// ChooseWithdrawAmountMsg presses Withdraw under the slider.
type ChooseWithdrawAmountMsg struct{}

// ChooseTransferMsg picks a transfer speed.
type ChooseTransferMsg struct {
	Speed flow.Speed
}

// StartSendMsg presses Next on the send keypad.
type StartSendMsg struct{}

// FilterRecipientsMsg is sent when the recipient search text changes.
type FilterRecipientsMsg struct {
	Query string
}

// SelectRecipientMsg picks a payee by handle.
type SelectRecipientMsg struct {
	Handle string
}

// ConfirmSendMsg presses Pay.
type ConfirmSendMsg struct{}

// DoneMsg presses Done on a success or confirmation screen.
type DoneMsg struct{}

// TaskDoneMsg is sent when a simulated transaction's delay elapses.
type TaskDoneMsg struct {
	ID string
}

// HistoryLoadedMsg carries recent transactions for the history screen.
type HistoryLoadedMsg struct {
	Entries []history.Entry
	Err     error
}
