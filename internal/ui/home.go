package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"moneyhome/internal/balance"
	"moneyhome/internal/money"
	"moneyhome/internal/ui/textutil"
)

// cardInner is the text width inside a card (Card width minus padding).
const cardInner = 40

// HomeView is the Money home screen: cash card, paychecks, save & invest.
type HomeView struct {
	Balances balance.Balances
	Width    int
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates the home screen for b.
func NewHomeView(b balance.Balances) *HomeView {
	return &HomeView{Balances: b}
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		h.Width = ws.Width
	}
	return h, nil
}

// View implements View.
func (h *HomeView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Header.Render("Money"))
	b.WriteString("\n\n")
	b.WriteString(h.cashCard())
	b.WriteString("\n")
	b.WriteString(h.paychecksCard())
	b.WriteString("\n")
	b.WriteString(Styles.Section.Render("Save & invest"))
	b.WriteString("\n")
	b.WriteString(h.savingsCard())
	b.WriteString("\n")
	b.WriteString(h.bitcoinCard())
	return b.String()
}

func cardRow(left, right string) string {
	return textutil.SpaceBetween(left, right, cardInner)
}

func (h *HomeView) cashCard() string {
	lines := []string{
		cardRow(Styles.Title.Render("Cash balance"), Styles.Muted.Render("›")),
		"",
		Styles.Amount.Render(money.Format(h.Balances.Cash)),
		Styles.Muted.Render("Account ****4907  Routing ****663"),
		"",
		Styles.Chip.Render("[a] Add money") + Styles.Chip.Render("[w] Withdraw"),
	}
	return Styles.Card.Render(strings.Join(lines, "\n"))
}

func (h *HomeView) paychecksCard() string {
	lines := []string{
		cardRow(Styles.Title.Render("Paychecks"), Styles.Muted.Render("›")),
		Styles.Muted.Render(textutil.Truncate("Get benefits with direct deposit", cardInner)),
	}
	return Styles.Card.Render(strings.Join(lines, "\n"))
}

func (h *HomeView) savingsCard() string {
	lines := []string{
		Styles.Title.Render("Savings"),
		Styles.Amount.Render(money.Format(h.Balances.Savings)),
		Styles.Positive.Render("1.5% interest"),
	}
	return Styles.Card.Render(strings.Join(lines, "\n"))
}

func (h *HomeView) bitcoinCard() string {
	lines := []string{
		Styles.Title.Render("Bitcoin"),
		Styles.Amount.Render(money.Format(h.Balances.Bitcoin)),
		Styles.Negative.Render("↓ 0.23% today"),
	}
	return Styles.Card.Render(strings.Join(lines, "\n"))
}
