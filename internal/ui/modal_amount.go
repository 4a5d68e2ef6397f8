package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"moneyhome/internal/flow"
)

// button renders a primary action, dimmed when the guard is off.
func button(label string, enabled bool) string {
	if enabled {
		return Styles.Button.Render(label)
	}
	return Styles.ButtonDisabled.Render(label)
}

func dismissCmd() tea.Msg { return DismissModalMsg{} }

// AmountPickerModal offers the preset amounts plus "..." for the keypad.
// Used for both Add Cash and Withdraw Cash.
type AmountPickerModal struct {
	ctl    *flow.Controller
	mode   flow.TxnKind
	cursor int // index into PresetAmounts; len(PresetAmounts) is "..."
}

// Ensure AmountPickerModal implements View.
var _ View = (*AmountPickerModal)(nil)

// NewAmountPickerModal creates the picker for mode (TxnAdd or TxnWithdraw).
func NewAmountPickerModal(ctl *flow.Controller, mode flow.TxnKind) *AmountPickerModal {
	return &AmountPickerModal{ctl: ctl, mode: mode, cursor: -1}
}

// Init implements View.
func (m *AmountPickerModal) Init() tea.Cmd {
	return nil
}

func (m *AmountPickerModal) moveTo(i int) tea.Cmd {
	n := len(flow.PresetAmounts)
	if i < 0 {
		i = 0
	}
	if i > n {
		i = n
	}
	m.cursor = i
	if i == n {
		return nil
	}
	amount := flow.PresetAmounts[i]
	return func() tea.Msg { return SelectPresetMsg{Amount: amount} }
}

// Update implements View.
func (m *AmountPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch s := km.String(); s {
	case "esc":
		return m, dismissCmd
	case "left", "h", "shift+tab":
		if m.cursor < 0 {
			return m, m.moveTo(0)
		}
		return m, m.moveTo(m.cursor - 1)
	case "right", "l", "tab":
		return m, m.moveTo(m.cursor + 1)
	case ".":
		m.cursor = len(flow.PresetAmounts)
		return m, func() tea.Msg { return OpenCustomKeypadMsg{} }
	case "enter":
		if m.cursor == len(flow.PresetAmounts) {
			return m, func() tea.Msg { return OpenCustomKeypadMsg{} }
		}
		if m.ctl.CanConfirm() {
			return m, func() tea.Msg { return ConfirmAmountMsg{} }
		}
	default:
		// 1-5 pick a preset directly
		if len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(flow.PresetAmounts) {
			return m, m.moveTo(int(s[0] - '1'))
		}
	}
	return m, nil
}

// View implements View.
func (m *AmountPickerModal) View() string {
	title, action := "Add Cash", "Add"
	if m.mode == flow.TxnWithdraw {
		title, action = "Withdraw Cash", "Withdraw"
	}

	var chips []string
	selected := m.ctl.SelectedPreset()
	for i, amt := range flow.PresetAmounts {
		label := fmt.Sprintf("$%d", amt)
		if amt == selected {
			chips = append(chips, Styles.ChipSelected.Render(label))
		} else if i == m.cursor {
			chips = append(chips, Styles.Chip.Underline(true).Render(label))
		} else {
			chips = append(chips, Styles.Chip.Render(label))
		}
	}
	more := Styles.Chip
	if m.cursor == len(flow.PresetAmounts) {
		more = more.Underline(true)
	}
	chips = append(chips, more.Render("..."))

	content := Styles.Title.Render(title) + "\n\n"
	content += strings.Join(chips[:3], "") + "\n\n" + strings.Join(chips[3:], "") + "\n\n"
	content += button(action, m.ctl.CanConfirm()) + "\n\n"
	content += Styles.Hint.Render("←/→ or 1-5: amount  .: custom  Enter: confirm  Esc: cancel")
	return Styles.Modal.Render(content)
}
