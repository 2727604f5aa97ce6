package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/chat"
	"github.com/Salman1205/M-bot/internal/ui/modals"
)

func TestStartupSignsInAndShowsWelcome(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	if m.user == nil || m.user.UserID != "u1" {
		t.Fatalf("user = %+v, want u1", m.user)
	}
	if !m.chat.ShowingWelcome() {
		t.Error("fresh start should show the welcome view")
	}
	if m.selector.Mode() != chat.ModeNone {
		t.Errorf("mode = %v, want NoSession", m.selector.Mode())
	}
}

func TestConversationRestoreEntersActiveMode(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	m.Update(conversationRestoredMsg{Conv: &api.Conversation{
		SessionID: "live",
		Messages: []api.Message{
			{ID: "m1", Sender: api.SenderUser, Text: "hi"},
			{ID: "m2", Sender: api.SenderAssistant, Text: "hello"},
		},
	}})

	if m.selector.Mode() != chat.ModeActive || m.selector.ActiveID() != "live" {
		t.Errorf("got mode=%v id=%q, want Active/live", m.selector.Mode(), m.selector.ActiveID())
	}
	if m.chat.IsReadOnly() {
		t.Error("restored session must be sendable")
	}
	if m.store.Len() != 2 {
		t.Errorf("transcript len = %d, want 2", m.store.Len())
	}
}

func TestSessionsRefreshPopulatesSidebar(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []api.Session{
		{ID: "s1", Status: api.SessionCompleted, Title: "First"},
		{ID: "s2", Status: api.SessionCompleted, Title: "Second"},
	}
	m := newTestModel(t, backend)
	m.Update(sessionsLoadedMsg{}) // settle the startup refresh

	drain(t, m, m.refreshSessions(true))

	m.sidebar.SelectSession("s2")
	sess := m.sidebar.SelectedSession()
	if sess == nil || sess.Title != "Second" {
		t.Fatalf("sidebar did not pick up refreshed sessions: %+v", sess)
	}
}

func TestOpenHistoricalSessionIsReadOnly(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []api.Session{{ID: "old", Status: api.SessionCompleted}}
	backend.transcripts["old"] = []api.Message{
		{ID: "m1", Sender: api.SenderUser, Text: "back then"},
	}
	m := newTestModel(t, backend)
	m.Update(sessionsLoadedMsg{})
	drain(t, m, m.refreshSessions(true))

	press(m, "tab") // focus sidebar
	if m.focus != FocusSidebar {
		t.Fatal("tab should focus the sidebar")
	}
	m.sidebar.SelectSession("old")
	drain(t, m, press(m, "enter"))

	if m.selector.Mode() != chat.ModeHistorical {
		t.Errorf("mode = %v, want Historical", m.selector.Mode())
	}
	if !m.chat.IsReadOnly() {
		t.Error("historical transcript must be read-only")
	}
	if m.store.Len() != 1 {
		t.Errorf("transcript len = %d, want 1", m.store.Len())
	}
}

func TestSendAdoptsMintedSession(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	m.chat.SetInput("hello there")
	press(m, "enter")

	if !m.dispatcher.Pending() {
		t.Fatal("send should be pending after enter")
	}
	if m.store.Len() != 1 {
		t.Fatalf("optimistic message missing, len = %d", m.store.Len())
	}
	if !m.chat.IsWaiting() {
		t.Error("typing indicator should be on")
	}

	m.Update(chatResultMsg{Result: chat.Result{
		Ticket: &chat.Ticket{Text: "hello there"},
		Resp:   &api.ChatResponse{Response: "I hear you.", SessionID: "s-new"},
	}})

	if m.dispatcher.Pending() {
		t.Error("pending should clear after the reply")
	}
	if m.selector.ActiveID() != "s-new" {
		t.Errorf("ActiveID = %q, want adopted s-new", m.selector.ActiveID())
	}
	if m.store.Len() != 2 {
		t.Errorf("transcript len = %d, want user + reply", m.store.Len())
	}
	if m.chat.IsWaiting() {
		t.Error("typing indicator should be off")
	}
}

func TestSendFailureKeepsUserMessageAndFlashes(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	m.chat.SetInput("hello?")
	press(m, "enter")

	m.Update(chatResultMsg{Result: chat.Result{
		Ticket: &chat.Ticket{Text: "hello?"},
		Err:    errFake,
	}})

	msgs := m.store.Messages()
	if len(msgs) != 2 {
		t.Fatalf("transcript len = %d, want user + error placeholder", len(msgs))
	}
	if !msgs[1].IsError {
		t.Error("placeholder reply should be error-flagged")
	}
	if !m.footer.HasFlash() {
		t.Error("failure should flash in the footer")
	}
	if m.selector.Mode() != chat.ModeNone {
		t.Error("a failed first send must not adopt a session")
	}
}

func TestEmptySendIsNoop(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)
	m.selector.RestoreActive("live", []api.Message{{ID: "m1", Sender: api.SenderUser, Text: "hi"}})

	press(m, "enter")

	if len(backend.sendCalls) != 0 {
		t.Errorf("send calls = %d, want 0", len(backend.sendCalls))
	}
	if m.store.Len() != 1 {
		t.Errorf("transcript len = %d, want unchanged", m.store.Len())
	}
}

func TestWelcomeEnterSendsSelectedSuggestion(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)

	press(m, "enter")

	if m.store.Len() != 1 {
		t.Fatalf("transcript len = %d, want the suggestion prompt", m.store.Len())
	}
	want := m.chat.SelectedSuggestion().Prompt
	if got := m.store.Messages()[0].Text; got != want {
		t.Errorf("sent %q, want suggestion prompt %q", got, want)
	}
}

func TestEndSessionFlow(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)
	m.selector.RestoreActive("live", []api.Message{{ID: "m1", Sender: api.SenderUser, Text: "hi"}})

	press(m, "ctrl+e")
	if _, ok := m.modal.State.(*modals.EndSessionState); !ok {
		t.Fatalf("modal state = %T, want EndSessionState", m.modal.State)
	}

	drain(t, m, press(m, "enter")) // confirm, then run the end command

	if got := backend.endCalls; len(got) != 1 || got[0] != "live" {
		t.Errorf("end calls = %v, want [live]", got)
	}
	if m.selector.Mode() != chat.ModeNone {
		t.Errorf("mode = %v, want NoSession after end", m.selector.Mode())
	}
	if _, ok := m.modal.State.(*modals.SessionSummaryState); !ok {
		t.Errorf("modal state = %T, want SessionSummaryState", m.modal.State)
	}
}

func TestEndSessionRejectedOnHistorical(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)
	m.Update(transcriptLoadedMsg{SessionID: "old", Messages: []api.Message{
		{ID: "m1", Sender: api.SenderUser, Text: "then"},
	}})

	press(m, "ctrl+e")

	if m.modal.IsVisible() {
		t.Error("no end-session dialog for a historical view")
	}
	if len(backend.endCalls) != 0 {
		t.Errorf("end calls = %d, want 0", len(backend.endCalls))
	}
	if !m.footer.HasFlash() {
		t.Error("rejection should flash")
	}
}

func TestRenameFlow(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []api.Session{{ID: "s1", Status: api.SessionCompleted, Title: "Old name"}}
	m := newTestModel(t, backend)
	m.Update(sessionsLoadedMsg{})
	drain(t, m, m.refreshSessions(true))

	press(m, "tab")
	m.sidebar.SelectSession("s1")
	press(m, "R")

	state, ok := m.modal.State.(*modals.RenameSessionState)
	if !ok {
		t.Fatalf("modal state = %T, want RenameSessionState", m.modal.State)
	}
	state.Input.SetValue("New name")

	drain(t, m, press(m, "enter"))

	if got := backend.renameCalls; len(got) != 1 || got[0] != "s1=New name" {
		t.Errorf("rename calls = %v, want [s1=New name]", got)
	}
	if m.modal.IsVisible() {
		t.Error("modal should close after rename")
	}
}

func TestDashboardToggle(t *testing.T) {
	backend := newFakeBackend()
	backend.analytics = &api.Analytics{TotalSessions: 3, Streak: 2}
	m := newTestModel(t, backend)

	drain(t, m, press(m, "ctrl+d"))
	if m.page != PageDashboard {
		t.Fatalf("page = %v, want Dashboard", m.page)
	}

	press(m, "esc")
	if m.page != PageChat {
		t.Errorf("page = %v, want Chat after esc", m.page)
	}
}

func TestSidebarToggleMovesFocusToChat(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)
	press(m, "tab")

	press(m, "ctrl+b")

	if m.sidebarVisible {
		t.Error("sidebar should be hidden")
	}
	if m.focus != FocusChat {
		t.Error("hiding the sidebar must move focus to chat")
	}
}

func TestQuitFromSidebarOnQ(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)
	press(m, "tab")

	cmd := press(m, "q")
	if cmd == nil {
		t.Fatal("q from the sidebar should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit message")
	}
}

func TestModalEscapeDismisses(t *testing.T) {
	backend := newFakeBackend()
	m := newTestModel(t, backend)
	m.selector.RestoreActive("live", nil)

	press(m, "ctrl+e")
	if !m.modal.IsVisible() {
		t.Fatal("expected the end-session dialog")
	}
	press(m, "esc")
	if m.modal.IsVisible() {
		t.Error("esc should dismiss the modal")
	}
	if len(backend.endCalls) != 0 {
		t.Errorf("end calls = %d, want 0 after cancel", len(backend.endCalls))
	}
}
