package ui

import (
	"errors"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"moneyhome/internal/flow"
)

// handleFlowMsg applies an overlay or keybind message to the controller and
// resyncs the overlay slot. A launched transaction is scheduled with tea.Tick.
func (a *appModelAdapter) handleFlowMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	ctl := a.Flow
	var (
		task *flow.Task
		err  error
	)
	switch msg := msg.(type) {
	case ShowAddMsg:
		err = ctl.StartAdd()
	case ShowWithdrawMsg:
		err = ctl.StartWithdraw()
	case ShowWithdrawSliderMsg:
		err = ctl.OpenWithdrawSlider()
	case ShowSendMsg:
		err = ctl.OpenSend()
	case DismissModalMsg:
		err = ctl.Cancel()
	case DoneMsg:
		err = ctl.Dismiss()
	case SelectPresetMsg:
		err = ctl.SelectPresetAmount(msg.Amount)
	case OpenCustomKeypadMsg:
		err = ctl.OpenCustomKeypad()
	case KeypadKeyMsg:
		err = ctl.PressKey(msg.Key)
	case ConfirmAmountMsg:
		task, err = ctl.ConfirmAmount()
	case SliderScrollMsg:
		err = ctl.ScrollSlider(msg.Delta)
	case SliderSetMsg:
		err = ctl.SetSlider(msg.Value)
	case ChooseWithdrawAmountMsg:
		err = ctl.ChooseWithdrawAmount()
	case ChooseTransferMsg:
		task, err = ctl.ChooseTransferMethod(msg.Speed)
	case StartSendMsg:
		err = ctl.StartSend(ctl.Entry().Amount())
	case FilterRecipientsMsg:
		ctl.FilterRecipients(msg.Query)
	case SelectRecipientMsg:
		err = ctl.SelectRecipient(msg.Handle)
	case ConfirmSendMsg:
		task, err = ctl.ConfirmSend()
	}
	if err != nil {
		// Guards normally keep these unreachable; ErrBusy is expected if a
		// key slips through while the spinner is up.
		if !errors.Is(err, flow.ErrBusy) {
			log.Printf("[WARN] %T refused in %s: %v", msg, ctl.State().Kind, err)
		}
	}
	return a, tea.Batch(a.syncOverlay(), taskCmd(task))
}

// handleTaskDone completes the in-flight transaction when its delay elapses.
func (a *appModelAdapter) handleTaskDone(msg TaskDoneMsg) (tea.Model, tea.Cmd) {
	if err := a.Flow.Complete(msg.ID); err != nil {
		log.Printf("[WARN] task %s: %v", msg.ID, err)
	}
	return a, a.syncOverlay()
}

// handleShowHistory toggles the history screen, loading entries on entry.
func (a *appModelAdapter) handleShowHistory() (tea.Model, tea.Cmd) {
	if a.Mode == ModeHistory {
		a.Mode = ModeHome
		return a, nil
	}
	a.Mode = ModeHistory
	a.HistoryView = NewHistoryView()
	if a.Width > 0 {
		a.HistoryView.Update(tea.WindowSizeMsg{Width: a.Width, Height: a.Height})
	}
	return a, loadHistoryCmd(a.History)
}
