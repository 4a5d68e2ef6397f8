package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"moneyhome/internal/flow"
)

// Overlay is the single modal slot. Kind records which Flow State the View
// was built for, so the app knows when to rebuild it.
type Overlay struct {
	View View
	Kind flow.Kind
}

// Active reports whether a modal is showing.
func (o *Overlay) Active() bool {
	return o.View != nil
}

// Update passes msg to the overlay's View and replaces its View with the result.
// Returns the cmd from the overlay's Update. Caller must run the cmd.
func (o *Overlay) Update(msg tea.Msg) (tea.Cmd, bool) {
	if o.View == nil {
		return nil, false
	}
	v, cmd := o.View.Update(msg)
	o.View = v
	return cmd, true
}

// refresher is implemented by overlays holding derived state that must be
// reloaded after a controller operation that keeps the same Flow State.
type refresher interface {
	Refresh()
}

// newOverlayView builds the modal for st.
func newOverlayView(ctl *flow.Controller, st flow.State) View {
	switch st.Kind {
	case flow.AddAmount:
		return NewAmountPickerModal(ctl, flow.TxnAdd)
	case flow.WithdrawAmountPicker:
		return NewAmountPickerModal(ctl, flow.TxnWithdraw)
	case flow.CustomKeypad, flow.SendAmountKeypad:
		return NewKeypadModal(ctl)
	case flow.WithdrawSlider:
		return NewSliderModal(ctl)
	case flow.TransferMethodChooser:
		return NewTransferMethodModal(ctl)
	case flow.SendRecipientPicker:
		return NewRecipientPickerModal(ctl)
	case flow.LoadingSpinner:
		return NewLoadingModal()
	case flow.SuccessScreen, flow.SendConfirmation:
		return NewSuccessModal(st)
	}
	return nil
}
