package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"moneyhome/internal/balance"
	"moneyhome/internal/contacts"
	"moneyhome/internal/flow"
)

// msgOf runs the cmd returned by a modal and returns its message.
func msgOf(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestAmountPickerModal_Navigation(t *testing.T) {
	a, _ := newTestApp(t, "100.00", nil)
	if err := a.Flow.StartAdd(); err != nil {
		t.Fatal(err)
	}
	m := NewAmountPickerModal(a.Flow, flow.TxnAdd)

	// Left from nothing lands on the first preset.
	_, cmd := m.Update(keyMsg("left"))
	if got, ok := msgOf(t, cmd).(SelectPresetMsg); !ok || got.Amount != 10 {
		t.Errorf("expected SelectPresetMsg{10}, got %#v", msgOf(t, cmd))
	}

	for i := 0; i < 10; i++ {
		m.Update(keyMsg("right"))
	}
	if m.cursor != len(flow.PresetAmounts) {
		t.Fatalf("cursor should stop on ..., got %d", m.cursor)
	}
	_, cmd = m.Update(keyMsg("enter"))
	if _, ok := msgOf(t, cmd).(OpenCustomKeypadMsg); !ok {
		t.Errorf("enter on ... should open the keypad, got %#v", msgOf(t, cmd))
	}

	_, cmd = m.Update(keyMsg("esc"))
	if _, ok := msgOf(t, cmd).(DismissModalMsg); !ok {
		t.Error("esc should dismiss")
	}
}

func TestAmountPickerModal_WithdrawGuard(t *testing.T) {
	a, _ := newTestApp(t, "30.00", nil)
	if err := a.Flow.StartWithdraw(); err != nil {
		t.Fatal(err)
	}
	if err := a.Flow.SelectPresetAmount(50); err != nil {
		t.Fatal(err)
	}
	m := NewAmountPickerModal(a.Flow, flow.TxnWithdraw)
	m.cursor = 2
	if _, cmd := m.Update(keyMsg("enter")); cmd != nil {
		t.Error("withdrawing more than cash must be disabled")
	}
	if !strings.Contains(m.View(), "Withdraw Cash") {
		t.Error("withdraw picker should be titled Withdraw Cash")
	}
}

func TestTransferMethodModal_Cursor(t *testing.T) {
	a, _ := newTestApp(t, "30.00", nil)
	m := NewTransferMethodModal(a.Flow)

	m.Update(keyMsg("up"))
	if m.cursor != transferCancel {
		t.Errorf("up from Standard should wrap to Cancel, got %d", m.cursor)
	}
	_, cmd := m.Update(keyMsg("i"))
	if got, ok := msgOf(t, cmd).(ChooseTransferMsg); !ok || got.Speed != flow.SpeedInstant {
		t.Errorf("i should choose instant, got %#v", msgOf(t, cmd))
	}
	_, cmd = m.Update(keyMsg("enter"))
	if _, ok := msgOf(t, cmd).(DismissModalMsg); !ok {
		t.Error("enter on Cancel should dismiss")
	}
}

func TestSuccessModal_Views(t *testing.T) {
	grace, _ := contacts.Default().Lookup("$gracek")
	sent := NewSuccessModal(flow.State{
		Kind: flow.SendConfirmation, Mode: flow.TxnSend,
		Amount: decimal.NewFromInt(7), Recipient: &grace,
	})
	out := sent.View()
	for _, want := range []string{"You sent $7 to Grace Kim.", "$gracek", "Done"} {
		if !strings.Contains(out, want) {
			t.Errorf("send confirmation missing %q:\n%s", want, out)
		}
	}
	_, cmd := sent.Update(keyMsg("enter"))
	if _, ok := msgOf(t, cmd).(DoneMsg); !ok {
		t.Error("enter should press Done")
	}

	instant := NewSuccessModal(flow.State{
		Kind: flow.SuccessScreen, Mode: flow.TxnWithdraw,
		Amount: decimal.NewFromInt(3), Speed: flow.SpeedInstant,
	})
	if !strings.Contains(instant.View(), "⚡") {
		t.Error("instant withdrawal should show the bolt")
	}
}

func TestHomeView_Cards(t *testing.T) {
	h := NewHomeView(balance.Balances{
		Cash:    decimal.RequireFromString("1234.5"),
		Savings: decimal.RequireFromString("88"),
		Bitcoin: decimal.RequireFromString("0.42"),
	})
	out := h.View()
	for _, want := range []string{
		"Money", "Cash balance", "$1,234.50", "Account ****4907",
		"Paychecks", "Save & invest", "Savings", "$88.00", "1.5% interest",
		"Bitcoin", "$0.42",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestHistoryView_Empty(t *testing.T) {
	h := NewHistoryView()
	if !strings.Contains(h.View(), "Loading") {
		t.Error("new history view should show loading")
	}
	h.SetEntries(nil, nil)
	if !strings.Contains(h.View(), "No transactions yet") {
		t.Errorf("empty state missing:\n%s", h.View())
	}
}
