package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"moneyhome/internal/flow"
	"moneyhome/internal/history"
)

// historyLimit bounds the rows shown on the history screen.
const historyLimit = 50

// taskCmd schedules the completion of a simulated transaction. A nil task
// (a step that did not launch anything) schedules nothing.
func taskCmd(t *flow.Task) tea.Cmd {
	if t == nil {
		return nil
	}
	id := t.ID
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return TaskDoneMsg{ID: id}
	})
}

// loadHistoryCmd reads recent transactions off the event loop.
func loadHistoryCmd(rec history.Recorder) tea.Cmd {
	return func() tea.Msg {
		if rec == nil {
			return HistoryLoadedMsg{}
		}
		entries, err := rec.Recent(historyLimit)
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}
