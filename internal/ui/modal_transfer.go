package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"moneyhome/internal/flow"
	"moneyhome/internal/money"
)

type transferOption int

const (
	transferStandard transferOption = iota
	transferInstant
	transferCancel
	transferOptionCount
)

// TransferMethodModal asks how to move the withdrawal to the bank.
type TransferMethodModal struct {
	ctl    *flow.Controller
	cursor transferOption
}

// Ensure TransferMethodModal implements View.
var _ View = (*TransferMethodModal)(nil)

// NewTransferMethodModal creates the chooser with Standard focused.
func NewTransferMethodModal(ctl *flow.Controller) *TransferMethodModal {
	return &TransferMethodModal{ctl: ctl}
}

// Init implements View.
func (m *TransferMethodModal) Init() tea.Cmd {
	return nil
}

func choose(speed flow.Speed) tea.Cmd {
	return func() tea.Msg { return ChooseTransferMsg{Speed: speed} }
}

// Update implements View.
func (m *TransferMethodModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "esc", "c":
		return m, dismissCmd
	case "up", "k", "shift+tab":
		m.cursor = (m.cursor + transferOptionCount - 1) % transferOptionCount
	case "down", "j", "tab":
		m.cursor = (m.cursor + 1) % transferOptionCount
	case "s":
		return m, choose(flow.SpeedStandard)
	case "i":
		return m, choose(flow.SpeedInstant)
	case "enter":
		switch m.cursor {
		case transferStandard:
			return m, choose(flow.SpeedStandard)
		case transferInstant:
			return m, choose(flow.SpeedInstant)
		default:
			return m, dismissCmd
		}
	}
	return m, nil
}

func (m *TransferMethodModal) row(opt transferOption, label string) string {
	prefix := "  "
	style := Styles.Normal
	if m.cursor == opt {
		prefix = "› "
		style = Styles.Selected
	}
	return style.Render(prefix + label)
}

// View implements View.
func (m *TransferMethodModal) View() string {
	amount := m.ctl.State().Amount
	fee := fmt.Sprintf("%s FEE", money.Format(m.ctl.InstantFee()))

	content := Styles.Title.Render(fmt.Sprintf("How would you like to transfer %s to your external bank?", money.Format(amount))) + "\n\n"
	content += m.row(transferStandard, "Standard (Friday)") + "\n"
	content += m.row(transferInstant, "⚡ Instant  ") + Styles.Muted.Render(fee) + "\n"
	content += m.row(transferCancel, "Cancel") + "\n\n"
	content += Styles.Hint.Render("↑/↓: choose  Enter: confirm  s/i: standard/instant  Esc: cancel")
	return Styles.Modal.Render(content)
}
