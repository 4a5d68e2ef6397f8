package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"moneyhome/internal/history"
	"moneyhome/internal/money"
	"moneyhome/internal/ui/textutil"
)

const (
	defaultHistoryWidth  = 60
	defaultHistoryHeight = 16
)

// HistoryView lists recent transactions in a scrollable viewport.
type HistoryView struct {
	viewport viewport.Model
	Entries  []history.Entry
	Err      error
	Loading  bool
}

// Ensure HistoryView implements View.
var _ View = (*HistoryView)(nil)

// NewHistoryView creates an empty history screen in the loading state.
func NewHistoryView() *HistoryView {
	return &HistoryView{
		viewport: viewport.New(defaultHistoryWidth, defaultHistoryHeight),
		Loading:  true,
	}
}

// SetEntries replaces the rows and scrolls to the top.
func (h *HistoryView) SetEntries(entries []history.Entry, err error) {
	h.Entries = entries
	h.Err = err
	h.Loading = false
	h.viewport.SetContent(h.render())
	h.viewport.GotoTop()
}

// Init implements View.
func (h *HistoryView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (h *HistoryView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, ht := msg.Width-4, msg.Height-8
		if w > 0 {
			h.viewport.Width = w
		}
		if ht > 0 {
			h.viewport.Height = ht
		}
		h.viewport.SetContent(h.render())
		return h, nil
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return h, func() tea.Msg { return ShowHomeMsg{} }
		}
	}
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// describe renders one entry's headline, e.g. "Sent $5 to $gracek".
func describe(e history.Entry) string {
	amt := money.FormatShort(e.Amount)
	switch e.Kind {
	case "add":
		return "Added " + amt
	case "withdraw":
		if e.Speed == "instant" {
			return fmt.Sprintf("Withdrew %s (instant, %s fee)", amt, money.Format(e.Fee))
		}
		return "Withdrew " + amt
	case "send":
		return fmt.Sprintf("Sent %s to %s", amt, e.Recipient)
	}
	return e.Kind + " " + amt
}

func (h *HistoryView) render() string {
	if h.Err != nil {
		return Styles.Negative.Render("Could not load history: " + h.Err.Error())
	}
	if len(h.Entries) == 0 {
		return Styles.Empty.Render("No transactions yet")
	}
	width := h.viewport.Width
	var lines []string
	for _, e := range h.Entries {
		when := Styles.Muted.Render(humanize.Time(e.CompletedAt))
		bal := Styles.Muted.Render("→ " + money.Format(e.CashAfter))
		head := textutil.Truncate(describe(e), width-textutil.VisualWidthStyled(when)-1)
		lines = append(lines, textutil.SpaceBetween(Styles.Normal.Render(head), when, width))
		lines = append(lines, "  "+bal)
	}
	return strings.Join(lines, "\n")
}

// View implements View.
func (h *HistoryView) View() string {
	title := Styles.Header.Render("History")
	if h.Loading {
		return title + "\n\n" + Styles.Empty.Render("  Loading…")
	}
	return title + "\n\n" + h.viewport.View() + "\n" + Styles.Hint.Render("  ↑/↓: scroll  Esc/h: back")
}
