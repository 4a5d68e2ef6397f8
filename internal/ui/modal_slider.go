package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moneyhome/internal/flow"
	"moneyhome/internal/money"
)

const (
	sliderTrackWidth = 36
	sliderPageStep   = 10
)

// SliderModal picks a whole-dollar withdrawal between 0 and floor(cash).
type SliderModal struct {
	ctl *flow.Controller
}

// Ensure SliderModal implements View.
var _ View = (*SliderModal)(nil)

// NewSliderModal creates the withdrawal slider.
func NewSliderModal(ctl *flow.Controller) *SliderModal {
	return &SliderModal{ctl: ctl}
}

// Init implements View.
func (m *SliderModal) Init() tea.Cmd {
	return nil
}

func scroll(delta int) tea.Cmd {
	return func() tea.Msg { return SliderScrollMsg{Delta: delta} }
}

// Update implements View.
func (m *SliderModal) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelRight:
			return m, scroll(1)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft:
			return m, scroll(-1)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, dismissCmd
		case "right", "l", "up", "k":
			return m, scroll(1)
		case "left", "h", "down", "j":
			return m, scroll(-1)
		case "pgup", "shift+right":
			return m, scroll(sliderPageStep)
		case "pgdown", "shift+left":
			return m, scroll(-sliderPageStep)
		case "home":
			return m, func() tea.Msg { return SliderSetMsg{Value: 0} }
		case "end":
			max := m.ctl.Slider().Max()
			return m, func() tea.Msg { return SliderSetMsg{Value: max} }
		case "enter":
			if m.ctl.Slider().Value() > 0 {
				return m, func() tea.Msg { return ChooseWithdrawAmountMsg{} }
			}
		}
	}
	return m, nil
}

// track renders the slider bar with the thumb at value/max.
func track(value, max int) string {
	pos := 0
	if max > 0 {
		pos = value * (sliderTrackWidth - 1) / max
	}
	filled := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)).Render(strings.Repeat("━", pos))
	thumb := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Render("●")
	rest := Styles.Muted.Render(strings.Repeat("─", sliderTrackWidth-1-pos))
	return filled + thumb + rest
}

// View implements View.
func (m *SliderModal) View() string {
	s := m.ctl.Slider()
	cash := m.ctl.Balances().Cash

	content := Styles.Title.Render("Withdraw") + "\n"
	content += Styles.Muted.Render(fmt.Sprintf("%s available", money.Format(cash))) + "\n\n"
	content += Styles.Amount.Render(money.Format(money.Dollars(s.Value()))) + "\n\n"
	content += track(s.Value(), s.Max()) + "\n"
	content += Styles.Muted.Render(fmt.Sprintf("$0%*s", sliderTrackWidth-2, fmt.Sprintf("$%d", s.Max()))) + "\n\n"
	content += button("Withdraw", s.Value() > 0) + "\n\n"
	content += Styles.Hint.Render("←/→ or wheel: ±$1  PgUp/PgDn: ±$10  Enter: withdraw  Esc: cancel")
	return Styles.Modal.Render(content)
}
