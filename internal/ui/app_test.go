package ui

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"moneyhome/internal/balance"
	"moneyhome/internal/contacts"
	"moneyhome/internal/flow"
	"moneyhome/internal/history"
	"moneyhome/internal/kv"
)

// newTestApp builds an app over an in-memory store holding cash, with
// zero-latency transactions.
func newTestApp(t *testing.T, cash string, rec history.Recorder) (*appModelAdapter, *balance.Store) {
	t.Helper()
	p := kv.NewMemoryProvider()
	for k, v := range map[string]string{balance.KeyCash: cash, balance.KeySavings: "250.00", balance.KeyBitcoin: "0.42"} {
		if err := p.Put(k, []byte(v)); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
	store, err := balance.Open(p)
	if err != nil {
		t.Fatalf("balance.Open: %v", err)
	}
	cfg := flow.DefaultConfig()
	cfg.AddDelay, cfg.WithdrawDelay, cfg.SendDelay = 0, 0, 0
	n := 0
	ctl := flow.New(store, contacts.Default(), cfg,
		flow.WithIDs(func() string { n++; return fmt.Sprintf("t%d", n) }))
	return &appModelAdapter{AppModel: NewAppModel(ctl, rec)}, store
}

// collect runs cmd and returns the app-level messages it produced. Spinner
// ticks and cursor blinks are dropped so the loop settles.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case tea.QuitMsg:
		return []tea.Msg{msg}
	default:
		if strings.HasSuffix(reflect.TypeOf(msg).PkgPath(), "internal/ui") {
			return []tea.Msg{msg}
		}
		return nil
	}
}

// send feeds msgs to the app and keeps running resulting commands until
// nothing is left.
func send(t *testing.T, a *appModelAdapter, msgs ...tea.Msg) {
	t.Helper()
	queue := msgs
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 200 {
			t.Fatal("message loop did not settle")
		}
		msg := queue[0]
		queue = queue[1:]
		if _, ok := msg.(tea.QuitMsg); ok {
			continue
		}
		_, cmd := a.Update(msg)
		queue = append(queue, collect(cmd)...)
	}
}

func keys(ks ...string) []tea.Msg {
	out := make([]tea.Msg, len(ks))
	for i, k := range ks {
		out[i] = keyMsg(k)
	}
	return out
}

func assertOverlayTracksState(t *testing.T, a *appModelAdapter) {
	t.Helper()
	st := a.Flow.State()
	if st.Active() != a.Overlay.Active() {
		t.Fatalf("overlay active=%v but flow state is %s", a.Overlay.Active(), st.Kind)
	}
	if st.Active() && a.Overlay.Kind != st.Kind {
		t.Fatalf("overlay built for %s but flow state is %s", a.Overlay.Kind, st.Kind)
	}
}

func TestApp_AddPreset(t *testing.T) {
	a, store := newTestApp(t, "500.00", nil)

	send(t, a, keyMsg("a"))
	if _, ok := a.Overlay.View.(*AmountPickerModal); !ok {
		t.Fatalf("expected AmountPickerModal, got %T", a.Overlay.View)
	}
	if !strings.Contains(a.View(), "Add Cash") {
		t.Error("picker should be titled Add Cash")
	}

	// 3 selects the third preset ($50)
	send(t, a, keyMsg("3"))
	if a.Flow.SelectedPreset() != 50 {
		t.Fatalf("expected $50 selected, got %d", a.Flow.SelectedPreset())
	}
	assertOverlayTracksState(t, a)

	send(t, a, keyMsg("enter"))
	if !store.Cash().Equal(decimal.RequireFromString("550")) {
		t.Fatalf("expected cash 550, got %s", store.Cash())
	}
	if a.Flow.State().Kind != flow.SuccessScreen {
		t.Fatalf("expected success screen, got %s", a.Flow.State().Kind)
	}
	assertOverlayTracksState(t, a)
	if !strings.Contains(a.View(), "You added $50 to your Cash App.") {
		t.Errorf("success message missing from view:\n%s", a.View())
	}

	send(t, a, keyMsg("enter"))
	if a.Overlay.Active() || a.Flow.State().Active() {
		t.Error("Done should close the overlay")
	}
	if !a.Home.Balances.Cash.Equal(decimal.RequireFromString("550")) {
		t.Errorf("home card not refreshed: %s", a.Home.Balances.Cash)
	}
	if !strings.Contains(a.View(), "$550.00") {
		t.Error("home view should show the new balance")
	}
}

func TestApp_LoadingSwallowsKeys(t *testing.T) {
	a, store := newTestApp(t, "20.00", nil)
	send(t, a, keys("a", "1")...)

	// Confirm, but hold back the TaskDoneMsg.
	_, cmd := a.Update(keyMsg("enter"))
	confirm := collect(cmd)
	if len(confirm) != 1 {
		t.Fatalf("expected ConfirmAmountMsg, got %v", confirm)
	}
	_, cmd = a.Update(confirm[0])
	if a.Flow.State().Kind != flow.LoadingSpinner {
		t.Fatalf("expected loading, got %s", a.Flow.State().Kind)
	}
	if _, ok := a.Overlay.View.(*LoadingModal); !ok {
		t.Fatalf("expected LoadingModal, got %T", a.Overlay.View)
	}

	for _, k := range []string{"esc", "a", "w", "s", "enter", "q"} {
		_, c := a.Update(keyMsg(k))
		if msgs := collect(c); len(msgs) != 0 {
			t.Errorf("%s during loading produced %v", k, msgs)
		}
	}
	if a.Flow.State().Kind != flow.LoadingSpinner {
		t.Fatalf("keys must not leave the loading state, got %s", a.Flow.State().Kind)
	}
	if !store.Cash().Equal(decimal.RequireFromString("20")) {
		t.Fatal("cash must not change before completion")
	}

	send(t, a, collect(cmd)...)
	if !store.Cash().Equal(decimal.RequireFromString("30")) {
		t.Errorf("expected 30 after completion, got %s", store.Cash())
	}
}

func TestApp_CustomAmount(t *testing.T) {
	a, store := newTestApp(t, "10.00", nil)
	send(t, a, keys("a", ".")...)
	if a.Flow.State().Kind != flow.CustomKeypad {
		t.Fatalf("expected custom keypad, got %s", a.Flow.State().Kind)
	}
	if _, ok := a.Overlay.View.(*KeypadModal); !ok {
		t.Fatalf("expected KeypadModal, got %T", a.Overlay.View)
	}

	// Enter on an empty keypad does nothing.
	send(t, a, keyMsg("enter"))
	if a.Flow.State().Kind != flow.CustomKeypad {
		t.Fatal("empty keypad must not confirm")
	}

	send(t, a, keys("1", "2", ".", "3", "4", "5", "backspace")...)
	if got := a.Flow.Entry().Text(); got != "12.3" {
		t.Fatalf("keypad text: expected 12.3, got %q", got)
	}
	if !strings.Contains(a.View(), "$12.3") {
		t.Error("keypad display missing from view")
	}
	send(t, a, keyMsg("enter"))
	if !store.Cash().Equal(decimal.RequireFromString("22.3")) {
		t.Errorf("expected 22.30, got %s", store.Cash())
	}
}

func TestApp_WithdrawSliderInstant(t *testing.T) {
	a, store := newTestApp(t, "42.75", nil)
	send(t, a, keyMsg("W"))
	if _, ok := a.Overlay.View.(*SliderModal); !ok {
		t.Fatalf("expected SliderModal, got %T", a.Overlay.View)
	}

	wheelUp := tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress}
	wheelDown := tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}
	send(t, a, wheelUp, wheelUp, wheelUp, wheelDown)
	if v := a.Flow.Slider().Value(); v != 2 {
		t.Fatalf("expected slider at 2, got %d", v)
	}
	send(t, a, keyMsg("end"))
	if v := a.Flow.Slider().Value(); v != 42 {
		t.Fatalf("expected slider at floor(cash)=42, got %d", v)
	}
	send(t, a, wheelUp)
	if v := a.Flow.Slider().Value(); v != 42 {
		t.Fatalf("slider must clamp at 42, got %d", v)
	}

	send(t, a, keyMsg("enter"))
	if _, ok := a.Overlay.View.(*TransferMethodModal); !ok {
		t.Fatalf("expected TransferMethodModal, got %T", a.Overlay.View)
	}
	if !strings.Contains(a.View(), "$0.25 FEE") {
		t.Error("instant fee should be shown")
	}

	send(t, a, keys("down", "enter")...)
	if !store.Cash().Equal(decimal.RequireFromString("0.75")) {
		t.Fatalf("expected 0.75 left, got %s", store.Cash())
	}
	if !strings.Contains(a.View(), "$42.00 was instantly deposited to your bank account.") {
		t.Errorf("instant message missing:\n%s", a.View())
	}
}

func TestApp_WithdrawCancelFromChooser(t *testing.T) {
	a, store := newTestApp(t, "100.00", nil)
	send(t, a, keys("w", "2", "enter")...)
	if a.Flow.State().Kind != flow.TransferMethodChooser {
		t.Fatalf("expected transfer chooser, got %s", a.Flow.State().Kind)
	}
	send(t, a, keys("down", "down", "enter")...)
	if a.Overlay.Active() {
		t.Error("Cancel row should close the chooser")
	}
	if _, ok := a.Flow.Pending(); ok {
		t.Error("pending withdrawal should be dropped")
	}
	if !store.Cash().Equal(decimal.RequireFromString("100")) {
		t.Error("cancel must not touch cash")
	}
}

func TestApp_SendFlow(t *testing.T) {
	a, store := newTestApp(t, "80.00", nil)
	send(t, a, keys("s", "1", "2", "enter")...)
	if _, ok := a.Overlay.View.(*RecipientPickerModal); !ok {
		t.Fatalf("expected RecipientPickerModal, got %T", a.Overlay.View)
	}
	picker := a.Overlay.View.(*RecipientPickerModal)
	if n := len(picker.list.Items()); n != contacts.Default().Len() {
		t.Fatalf("expected every contact listed, got %d", n)
	}

	send(t, a, keys("g", "r", "a")...)
	if a.Flow.Query() != "gra" {
		t.Fatalf("expected query gra, got %q", a.Flow.Query())
	}
	if n := len(picker.list.Items()); n != 1 {
		t.Fatalf("expected 1 match for gra, got %d", n)
	}
	if a.Flow.CanPay() {
		t.Fatal("Pay must be disabled before a recipient is chosen")
	}

	send(t, a, keyMsg("enter"))
	if r, ok := a.Flow.Recipient(); !ok || r.Handle != "$gracek" {
		t.Fatalf("expected Grace selected, got %+v", r)
	}
	send(t, a, keyMsg("enter"))
	if !store.Cash().Equal(decimal.RequireFromString("68")) {
		t.Fatalf("expected 68 left, got %s", store.Cash())
	}
	if a.Flow.State().Kind != flow.SendConfirmation {
		t.Fatalf("expected send confirmation, got %s", a.Flow.State().Kind)
	}
	if !strings.Contains(a.View(), "You sent $12 to Grace Kim.") {
		t.Errorf("confirmation message missing:\n%s", a.View())
	}
	send(t, a, keyMsg("esc"))
	if a.Overlay.Active() {
		t.Error("Done should close the confirmation")
	}
}

func TestApp_SendAmountAboveCashDisabled(t *testing.T) {
	a, _ := newTestApp(t, "5.00", nil)
	send(t, a, keys("s", "6", "enter")...)
	if a.Flow.State().Kind != flow.SendAmountKeypad {
		t.Fatalf("Next must be disabled above cash, got %s", a.Flow.State().Kind)
	}
	send(t, a, keyMsg("esc"))
	if a.Overlay.Active() {
		t.Error("esc should cancel the send")
	}
}

type stubRecorder struct {
	history.NoopRecorder
	entries []history.Entry
}

func (s *stubRecorder) Recent(int) ([]history.Entry, error) { return s.entries, nil }

func TestApp_HistoryScreen(t *testing.T) {
	rec := &stubRecorder{entries: []history.Entry{{
		ID: "x", Kind: "send", Amount: decimal.NewFromInt(5), Recipient: "$hugol",
		CashAfter: decimal.NewFromInt(95), CompletedAt: time.Now().Add(-time.Minute),
	}}}
	a, _ := newTestApp(t, "100.00", rec)
	send(t, a, tea.WindowSizeMsg{Width: 80, Height: 30})

	send(t, a, keyMsg("h"))
	if a.Mode != ModeHistory {
		t.Fatalf("expected history mode, got %s", a.Mode)
	}
	view := a.View()
	if !strings.Contains(view, "Sent $5 to $hugol") {
		t.Errorf("history row missing:\n%s", view)
	}

	// Home-only shortcuts are inert here.
	send(t, a, keyMsg("a"))
	if a.Overlay.Active() {
		t.Error("a must not open Add Cash from history")
	}

	send(t, a, keyMsg("esc"))
	if a.Mode != ModeHome {
		t.Errorf("esc should return home, got %s", a.Mode)
	}
}

func TestApp_LeaderOpensFlows(t *testing.T) {
	a, _ := newTestApp(t, "10.00", nil)
	send(t, a, keyMsg(" "))
	if !strings.Contains(a.View(), "withdraw") {
		t.Error("leader help should list withdraw")
	}
	send(t, a, keyMsg("w"))
	if a.Flow.State().Kind != flow.WithdrawAmountPicker {
		t.Errorf("SPC w should open the withdraw picker, got %s", a.Flow.State().Kind)
	}
	assertOverlayTracksState(t, a)
}

func TestApp_QuitKeys(t *testing.T) {
	a, _ := newTestApp(t, "10.00", nil)
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := a.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected QuitMsg", k)
		}
	}
}
