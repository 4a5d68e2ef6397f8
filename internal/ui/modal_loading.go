package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoadingModal covers the screen while a simulated transaction is in
// flight. It swallows every key; only the pending TaskDoneMsg moves on.
type LoadingModal struct {
	spinner spinner.Model
}

// Ensure LoadingModal implements View.
var _ View = (*LoadingModal)(nil)

// NewLoadingModal creates the spinner overlay.
func NewLoadingModal() *LoadingModal {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))
	return &LoadingModal{spinner: s}
}

// Init implements View.
func (m *LoadingModal) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements View.
func (m *LoadingModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements View.
func (m *LoadingModal) View() string {
	return Styles.FullScreen.Render(m.spinner.View() + " " + Styles.Muted.Render("Processing…"))
}
