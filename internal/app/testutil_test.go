package app

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/config"
)

// errFake is a stand-in network failure.
var errFake = errors.New("network down")

// fakeBackend implements Backend in memory for app-level tests.
type fakeBackend struct {
	user        *api.User
	conv        *api.Conversation
	sessions    []api.Session
	transcripts map[string][]api.Message
	replyText   string
	replySess   string
	analytics   *api.Analytics

	failSend     bool
	failSessions bool
	failEnd      bool

	sendCalls   []api.ChatRequest
	endCalls    []string
	renameCalls []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		user:        &api.User{UserID: "u1", Email: "sam@example.com", ScreenName: "Sam"},
		transcripts: map[string][]api.Message{},
		replyText:   "I hear you.",
		replySess:   "s-new",
	}
}

func (f *fakeBackend) CurrentUser(context.Context) (*api.User, error) {
	if f.user == nil {
		return nil, errors.New("not signed in")
	}
	return f.user, nil
}

func (f *fakeBackend) Conversation(context.Context, string) (*api.Conversation, error) {
	if f.conv == nil {
		return nil, errors.New("no conversation")
	}
	return f.conv, nil
}

func (f *fakeBackend) Sessions(context.Context, string) ([]api.Session, error) {
	if f.failSessions {
		return nil, errors.New("sessions unavailable")
	}
	return f.sessions, nil
}

func (f *fakeBackend) SessionMessages(_ context.Context, sessionID string) ([]api.Message, error) {
	msgs, ok := f.transcripts[sessionID]
	if !ok {
		return nil, errors.New("unknown session")
	}
	return msgs, nil
}

func (f *fakeBackend) SendChat(_ context.Context, req api.ChatRequest) (*api.ChatResponse, error) {
	f.sendCalls = append(f.sendCalls, req)
	if f.failSend {
		return nil, errors.New("send failed")
	}
	sess := req.SessionID
	if sess == "" {
		sess = f.replySess
	}
	return &api.ChatResponse{Response: f.replyText, SessionID: sess}, nil
}

func (f *fakeBackend) EndSession(_ context.Context, sessionID string) (*api.EndSessionResult, error) {
	f.endCalls = append(f.endCalls, sessionID)
	if f.failEnd {
		return nil, errors.New("end failed")
	}
	return &api.EndSessionResult{
		SessionID: sessionID,
		Summary:   &api.SessionSummary{SessionID: sessionID, Title: "A good talk"},
	}, nil
}

func (f *fakeBackend) RecentSession(context.Context, string) (*api.ChatSummary, error) {
	return nil, errors.New("no recent session")
}

func (f *fakeBackend) RenameSession(_ context.Context, sessionID, title string) error {
	f.renameCalls = append(f.renameCalls, sessionID+"="+title)
	return nil
}

func (f *fakeBackend) Analytics(context.Context, string) (*api.Analytics, error) {
	if f.analytics == nil {
		return nil, errors.New("no analytics")
	}
	return f.analytics, nil
}

func (f *fakeBackend) MoodData(context.Context, string) ([]api.MoodPoint, error) {
	return nil, nil
}

func (f *fakeBackend) ChatSummaries(context.Context, string) ([]api.ChatSummary, error) {
	return nil, nil
}

func (f *fakeBackend) UpdateProfile(context.Context, api.ProfileUpdate) error { return nil }
func (f *fakeBackend) ChangeEmail(context.Context, string, string) error      { return nil }
func (f *fakeBackend) ChangePassword(context.Context, string, string) error   { return nil }
func (f *fakeBackend) SubmitFeedback(context.Context, api.Feedback) error     { return nil }

// newTestModel builds a signed-in model with a terminal size applied.
func newTestModel(t *testing.T, backend *fakeBackend) *Model {
	t.Helper()

	cfg := &config.Config{ServerURL: config.DefaultServerURL}
	cfg.SetFilePath(t.TempDir() + "/config.json")

	m := New(cfg, backend, "test")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(userLoadedMsg{User: backend.user})
	return m
}

// drain runs a command synchronously and feeds its message back into the
// model, returning the follow-up command. Batch commands are not unpacked;
// tests that need them drive the messages explicitly.
func drain(t *testing.T, m *Model, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	_, next := m.Update(msg)
	return next
}

// press sends one key press, translating the common special keys.
func press(m *Model, key string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch key {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		msg = tea.KeyPressMsg{Code: tea.KeyTab}
	case "ctrl+e":
		msg = tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl}
	case "ctrl+d":
		msg = tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}
	case "ctrl+b":
		msg = tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}
	default:
		r := []rune(key)[0]
		msg = tea.KeyPressMsg{Code: r, Text: key}
	}
	_, cmd := m.Update(msg)
	return cmd
}
