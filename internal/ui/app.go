package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moneyhome/internal/flow"
	"moneyhome/internal/history"
)

// AppModel is the root model. It switches between the Home and History
// screens and shows at most one overlay, the one for the controller's
// current Flow State.
type AppModel struct {
	Mode        AppMode
	Flow        *flow.Controller
	History     history.Recorder
	Home        *HomeView
	HistoryView *HistoryView
	Overlay     Overlay
	KeyHandler  *KeyHandler
	// Notice is a one-line message shown under the home screen, e.g. after
	// corrupt balances were re-seeded.
	Notice string

	Width  int
	Height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. rec may be nil.
func NewAppModel(ctl *flow.Controller, rec history.Recorder) *AppModel {
	if rec == nil {
		rec = history.NoopRecorder{}
	}
	return &AppModel{
		Mode:       ModeHome,
		Flow:       ctl,
		History:    rec,
		Home:       NewHomeView(ctl.Balances()),
		KeyHandler: NewKeyHandler(NewDefaultKeybinds()),
	}
}

// NewDefaultKeybinds registers the home-screen shortcuts and their SPC
// equivalents.
func NewDefaultKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	home := []AppMode{ModeHome}
	msg := func(m tea.Msg) tea.Cmd { return func() tea.Msg { return m } }

	for _, b := range []struct {
		key  string
		cmd  tea.Cmd
		desc string
		mode []AppMode
	}{
		{"a", msg(ShowAddMsg{}), "add", home},
		{"w", msg(ShowWithdrawMsg{}), "withdraw", home},
		{"W", msg(ShowWithdrawSliderMsg{}), "slider", home},
		{"s", msg(ShowSendMsg{}), "send", home},
		{"h", msg(ShowHistoryMsg{}), "history", nil},
		{"q", tea.Quit, "quit", nil},
	} {
		reg.BindWithDescForMode(b.key, b.cmd, b.desc, b.mode)
		reg.BindWithDescForMode("SPC "+b.key, b.cmd, b.desc, b.mode)
	}
	reg.Bind("ctrl+c", tea.Quit)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.Width, a.Height = msg.Width, msg.Height
		a.Home.Update(msg)
		if a.HistoryView != nil {
			a.HistoryView.Update(msg)
		}
		return a, nil
	case TaskDoneMsg:
		return a.handleTaskDone(msg)
	case ShowAddMsg, ShowWithdrawMsg, ShowWithdrawSliderMsg, ShowSendMsg,
		DismissModalMsg, DoneMsg, SelectPresetMsg, OpenCustomKeypadMsg,
		KeypadKeyMsg, ConfirmAmountMsg, SliderScrollMsg, SliderSetMsg,
		ChooseWithdrawAmountMsg, ChooseTransferMsg, StartSendMsg,
		FilterRecipientsMsg, SelectRecipientMsg, ConfirmSendMsg:
		return a.handleFlowMsg(msg)
	case ShowHistoryMsg:
		return a.handleShowHistory()
	case ShowHomeMsg:
		a.Mode = ModeHome
		return a, nil
	case HistoryLoadedMsg:
		if a.HistoryView != nil {
			a.HistoryView.SetEntries(msg.Entries, msg.Err)
		}
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		// The overlay owns the keyboard while it is showing.
		if a.Overlay.Active() {
			cmd, _ := a.Overlay.Update(msg)
			return a, cmd
		}
		if a.KeyHandler != nil {
			a.KeyHandler.Mode = a.Mode
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
	case tea.MouseMsg:
		if a.Overlay.Active() {
			cmd, _ := a.Overlay.Update(msg)
			return a, cmd
		}
	default:
		// Spinner ticks, cursor blinks and the like.
		if a.Overlay.Active() {
			cmd, _ := a.Overlay.Update(msg)
			return a, cmd
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var body string
	if a.Overlay.Active() {
		body = a.Overlay.View.View()
		if a.Width > 0 && a.Height > 0 {
			return lipgloss.Place(a.Width, a.Height, lipgloss.Center, lipgloss.Center, body)
		}
		return body
	}

	body = a.currentView().View()
	if a.Mode == ModeHome && a.Notice != "" {
		body += "\n" + Styles.Muted.Padding(0, 2).Render(a.Notice)
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		return body + "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	if a.KeyHandler != nil {
		body += "\n" + RenderHintBar(a.KeyHandler.Registry, a.Mode)
	}
	return body
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeHistory && a.HistoryView != nil {
		return a.HistoryView
	}
	return a.Home
}

func (a *appModelAdapter) setCurrentView(v View) {
	switch a.Mode {
	case ModeHome:
		if h, ok := v.(*HomeView); ok {
			a.Home = h
		}
	case ModeHistory:
		if h, ok := v.(*HistoryView); ok {
			a.HistoryView = h
		}
	}
}

// syncOverlay makes the overlay slot match the controller's Flow State and
// refreshes the home balances. Returns the new overlay's Init cmd, if any.
func (a *AppModel) syncOverlay() tea.Cmd {
	a.Home.Balances = a.Flow.Balances()
	st := a.Flow.State()
	if !st.Active() {
		a.Overlay = Overlay{}
		return nil
	}
	if a.Overlay.Active() && a.Overlay.Kind == st.Kind {
		if r, ok := a.Overlay.View.(refresher); ok {
			r.Refresh()
		}
		return nil
	}
	v := newOverlayView(a.Flow, st)
	if v == nil {
		a.Overlay = Overlay{}
		return nil
	}
	a.Overlay = Overlay{View: v, Kind: st.Kind}
	return v.Init()
}
