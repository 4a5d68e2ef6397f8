package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"moneyhome/internal/contacts"
	"moneyhome/internal/flow"
	"moneyhome/internal/money"
)

type contactItem struct {
	contacts.Contact
}

func (c contactItem) FilterValue() string { return c.DisplayName + " " + c.Handle }
func (c contactItem) Title() string       { return avatar(c.AvatarInitial, c.AvatarColor) + " " + c.DisplayName }
func (c contactItem) Description() string { return "   " + c.Handle }

// RecipientPickerModal searches the contact directory and confirms the send.
// Enter selects the highlighted contact; Enter on the selected contact pays.
type RecipientPickerModal struct {
	ctl    *flow.Controller
	search textinput.Model
	list   list.Model
}

// Ensure RecipientPickerModal implements View.
var _ View = (*RecipientPickerModal)(nil)

// NewRecipientPickerModal creates the picker showing every contact.
func NewRecipientPickerModal(ctl *flow.Controller) *RecipientPickerModal {
	ti := textinput.New()
	ti.Placeholder = "Name, $Cashtag"
	ti.Prompt = "To: "
	ti.CharLimit = 64
	ti.Width = 36
	ti.Focus()

	l := list.New(nil, NewCompactListDelegate(), 42, 12)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()

	m := &RecipientPickerModal{ctl: ctl, search: ti, list: l}
	m.Refresh()
	return m
}

// Refresh reloads the list from the controller's current matches.
func (m *RecipientPickerModal) Refresh() {
	matches := m.ctl.Recipients()
	items := make([]list.Item, len(matches))
	for i, c := range matches {
		items[i] = contactItem{c}
	}
	m.list.SetItems(items)
}

// Highlighted returns the contact under the cursor.
func (m *RecipientPickerModal) Highlighted() (contacts.Contact, bool) {
	it, ok := m.list.SelectedItem().(contactItem)
	if !ok {
		return contacts.Contact{}, false
	}
	return it.Contact, true
}

// Init implements View.
func (m *RecipientPickerModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *RecipientPickerModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	switch km.String() {
	case "esc":
		return m, dismissCmd
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	case "enter":
		c, ok := m.Highlighted()
		if !ok {
			return m, nil
		}
		if cur, ok := m.ctl.Recipient(); ok && cur.Handle == c.Handle && m.ctl.CanPay() {
			return m, func() tea.Msg { return ConfirmSendMsg{} }
		}
		return m, func() tea.Msg { return SelectRecipientMsg{Handle: c.Handle} }
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != before {
		return m, tea.Batch(cmd, func() tea.Msg { return FilterRecipientsMsg{Query: q} })
	}
	return m, cmd
}

// View implements View.
func (m *RecipientPickerModal) View() string {
	content := Styles.Title.Render("Send "+money.FormatShort(m.ctl.State().Amount)) + "\n\n"
	content += m.search.View() + "\n\n"
	if len(m.list.Items()) == 0 {
		content += Styles.Empty.Render("No matches") + "\n"
	} else {
		content += m.list.View() + "\n"
	}
	if cur, ok := m.ctl.Recipient(); ok {
		content += "\n" + Styles.Normal.Render("Paying ") + Styles.Selected.Render(cur.DisplayName) + "\n"
	}
	content += "\n" + button("Pay", m.ctl.CanPay()) + "\n\n"
	content += Styles.Hint.Render("Type: search  ↑/↓: move  Enter: select, again to pay  Esc: cancel")
	return Styles.Modal.Render(content)
}
