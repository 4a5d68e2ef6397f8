package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moneyhome/internal/flow"
)

// SuccessModal is the success screen after an add or withdraw, and the
// confirmation screen after a send.
type SuccessModal struct {
	state flow.State
}

// Ensure SuccessModal implements View.
var _ View = (*SuccessModal)(nil)

// NewSuccessModal creates the screen for a completed transaction.
func NewSuccessModal(state flow.State) *SuccessModal {
	return &SuccessModal{state: state}
}

// Init implements View.
func (m *SuccessModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *SuccessModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "enter", "esc", "d":
			return m, func() tea.Msg { return DoneMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *SuccessModal) View() string {
	icon := "✓"
	if m.state.Speed == flow.SpeedInstant {
		icon = "⚡"
	}
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		Render(icon)

	content := badge + "\n\n"
	if r := m.state.Recipient; m.state.Kind == flow.SendConfirmation && r != nil {
		content += avatar(r.AvatarInitial, r.AvatarColor) + " " + Styles.Muted.Render(r.Handle) + "\n\n"
	}
	content += Styles.Amount.Render(m.state.Message()) + "\n\n"
	content += button("Done", true) + "\n\n"
	content += Styles.Hint.Render("Enter: done")
	return Styles.FullScreen.Render(content)
}
