package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moneyhome/internal/flow"
)

// keypadLayout mirrors the on-screen keypad; "⌫" is backspace.
var keypadLayout = [][]string{
	{"1", "2", "3"},
	{"4", "5", "6"},
	{"7", "8", "9"},
	{".", "0", "⌫"},
}

// KeypadModal is manual amount entry for a custom add/withdraw or a send.
type KeypadModal struct {
	ctl *flow.Controller
}

// Ensure KeypadModal implements View.
var _ View = (*KeypadModal)(nil)

// NewKeypadModal creates a keypad over the controller's entry buffer.
func NewKeypadModal(ctl *flow.Controller) *KeypadModal {
	return &KeypadModal{ctl: ctl}
}

// Init implements View.
func (m *KeypadModal) Init() tea.Cmd {
	return nil
}

func (m *KeypadModal) sending() bool {
	return m.ctl.State().Kind == flow.SendAmountKeypad
}

func (m *KeypadModal) canSubmit() bool {
	if m.sending() {
		return m.ctl.CanStartSend()
	}
	return m.ctl.CanConfirm()
}

// Update implements View.
func (m *KeypadModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	s := km.String()
	switch s {
	case "esc":
		return m, dismissCmd
	case "backspace", "delete":
		return m, func() tea.Msg { return KeypadKeyMsg{Key: flow.KeyBackspace} }
	case "enter":
		if !m.canSubmit() {
			return m, nil
		}
		if m.sending() {
			return m, func() tea.Msg { return StartSendMsg{} }
		}
		return m, func() tea.Msg { return ConfirmAmountMsg{} }
	}
	if s == flow.KeyDot || (len(s) == 1 && s[0] >= '0' && s[0] <= '9') {
		return m, func() tea.Msg { return KeypadKeyMsg{Key: s} }
	}
	return m, nil
}

// View implements View.
func (m *KeypadModal) View() string {
	title, action := "Add Cash", "Add"
	switch {
	case m.sending():
		title, action = "Send", "Next"
	case m.ctl.State().Mode == flow.TxnWithdraw:
		title, action = "Withdraw Cash", "Withdraw"
	}

	entry := m.ctl.Entry()
	amount := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)).Render(entry.Display())

	var rows []string
	for _, row := range keypadLayout {
		var keys []string
		for _, k := range row {
			keys = append(keys, Styles.Chip.Render(k))
		}
		rows = append(rows, strings.Join(keys, ""))
	}

	content := Styles.Title.Render(title) + "\n\n" + amount + "\n\n"
	content += strings.Join(rows, "\n") + "\n\n"
	content += button(action, m.canSubmit()) + "\n\n"
	content += Styles.Hint.Render("0-9 .: type  Backspace: delete  Enter: " + strings.ToLower(action) + "  Esc: cancel")
	return Styles.Modal.Render(content)
}
