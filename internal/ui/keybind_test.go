package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("SPC q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q") == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("space q") == nil {
		t.Error("expected space q to normalize to SPC q")
	}
	if reg.Lookup("unknown") != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeyHandler_LeaderKey(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC x", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	// Press space -> leader waiting (Bubble Tea reports space as " ")
	consumed, cmd := h.Handle(keyMsg(" "))
	if !consumed || cmd != nil {
		t.Errorf("space: consumed=%v cmd=%v", consumed, cmd)
	}
	if !h.LeaderWaiting {
		t.Error("expected leader waiting after space")
	}
	if h.CurrentSeq() != "SPC" {
		t.Errorf("expected CurrentSeq SPC, got %q", h.CurrentSeq())
	}

	consumed, cmd = h.Handle(keyMsg("x"))
	if !consumed {
		t.Errorf("x: expected consumed")
	}
	if h.LeaderWaiting {
		t.Error("leader should not be waiting after completing sequence")
	}
	if cmd == nil {
		t.Fatal("expected command for SPC x")
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("esc"))
	if !consumed || cmd != nil {
		t.Errorf("esc: consumed=%v cmd=%v", consumed, cmd)
	}
	if h.LeaderWaiting {
		t.Error("esc should cancel leader mode")
	}

	// Esc outside leader mode is left for the views.
	if consumed, _ := h.Handle(keyMsg("esc")); consumed {
		t.Error("esc without leader should fall through")
	}
}

func TestKeyHandler_ModeFilter(t *testing.T) {
	reg := NewDefaultKeybinds()
	h := NewKeyHandler(reg)

	h.Mode = ModeHistory
	if consumed, _ := h.Handle(keyMsg("a")); consumed {
		t.Error("a should not fire on the history screen")
	}
	consumed, cmd := h.Handle(keyMsg("h"))
	if !consumed || cmd == nil {
		t.Fatal("h should fire on the history screen")
	}
	if _, ok := cmd().(ShowHistoryMsg); !ok {
		t.Error("h should produce ShowHistoryMsg")
	}

	h.Mode = ModeHome
	consumed, cmd = h.Handle(keyMsg("W"))
	if !consumed || cmd == nil {
		t.Fatal("W should fire on the home screen")
	}
	if _, ok := cmd().(ShowWithdrawSliderMsg); !ok {
		t.Error("W should open the withdrawal slider")
	}
}

func TestKeyHandler_LeaderEquivalents(t *testing.T) {
	h := NewKeyHandler(NewDefaultKeybinds())
	h.Handle(keyMsg(" "))
	_, cmd := h.Handle(keyMsg("s"))
	if cmd == nil {
		t.Fatal("expected SPC s to be bound")
	}
	if _, ok := cmd().(ShowSendMsg); !ok {
		t.Error("SPC s should open send")
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	h := NewKeyHandler(NewDefaultKeybinds())
	if consumed, _ := h.Handle(keyMsg("j")); consumed {
		t.Error("unbound j should not be consumed")
	}
}

func TestRenderHelp(t *testing.T) {
	reg := NewDefaultKeybinds()
	hints := reg.SingleKeyHints(ModeHome)
	var keys []string
	for _, h := range hints {
		keys = append(keys, h.Key)
	}
	if got := strings.Join(keys, ","); got != "W,a,h,q,s,w" {
		t.Errorf("home hints: got %s", got)
	}
	if n := len(reg.SingleKeyHints(ModeHistory)); n != 2 {
		t.Errorf("history hints: expected h and q, got %d", n)
	}

	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "))
	out := RenderKeybindHelp(h, ModeHome)
	for _, want := range []string{"SPC", "add", "send", "cancel"} {
		if !strings.Contains(out, want) {
			t.Errorf("leader help missing %q", want)
		}
	}
	if bar := RenderHintBar(reg, ModeHome); !strings.Contains(bar, "withdraw") {
		t.Errorf("hint bar missing withdraw: %q", bar)
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
