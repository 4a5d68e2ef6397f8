package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// newHelpModel returns a bubbles/help model in the app's colors.
func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true)
	m.Styles.ShortDesc = Styles.Hint
	m.Styles.ShortSeparator = Styles.Hint
	return m
}

// RenderKeybindHelp produces the transient help view shown after SPC.
// When keyHandler is in leader mode with a buffer (e.g. "SPC x"), shows next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	currentSeq := keyHandler.CurrentSeq()
	hints := keyHandler.Registry.LeaderHints(currentSeq, mode)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	return boxStyle.Render(Styles.Hint.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings))
}

// RenderHintBar renders the always-visible single-key hints for mode.
func RenderHintBar(reg *KeybindRegistry, mode AppMode) string {
	if reg == nil {
		return ""
	}
	hints := reg.SingleKeyHints(mode)
	bindings := make([]key.Binding, 0, len(hints)+1)
	for _, h := range hints {
		bindings = append(bindings, key.NewBinding(key.WithKeys(h.Key), key.WithHelp(h.Key, h.Desc)))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "menu")))
	return lipgloss.NewStyle().Padding(1, 2, 0, 2).Render(newHelpModel().ShortHelpView(bindings))
}
