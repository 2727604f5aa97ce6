package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/Salman1205/M-bot/internal/api"
)

// fakeBackend serves canned transcripts and replies, recording every call so
// tests can assert what went over the wire.
type fakeBackend struct {
	transcripts map[string][]api.Message
	sessions    []api.Session

	replyText     string
	replySession  string
	failSend      bool
	failMessages  bool
	failSessions  bool
	failEnd       bool

	sendCalls     []api.ChatRequest
	endCalls      []string
	messagesCalls []string
	sessionsCalls int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		transcripts: make(map[string][]api.Message),
		replyText:   "I hear you.",
	}
}

var errBackend = errors.New("backend unavailable")

func (f *fakeBackend) SessionMessages(_ context.Context, sessionID string) ([]api.Message, error) {
	f.messagesCalls = append(f.messagesCalls, sessionID)
	if f.failMessages {
		return nil, errBackend
	}
	return f.transcripts[sessionID], nil
}

func (f *fakeBackend) SendChat(_ context.Context, req api.ChatRequest) (*api.ChatResponse, error) {
	f.sendCalls = append(f.sendCalls, req)
	if f.failSend {
		return nil, errBackend
	}
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = f.replySession
	}
	return &api.ChatResponse{Response: f.replyText, SessionID: sessionID}, nil
}

func (f *fakeBackend) EndSession(_ context.Context, sessionID string) (*api.EndSessionResult, error) {
	f.endCalls = append(f.endCalls, sessionID)
	if f.failEnd {
		return nil, errBackend
	}
	return &api.EndSessionResult{SessionID: sessionID, Message: "Session ended successfully"}, nil
}

func (f *fakeBackend) Sessions(_ context.Context, _ string) ([]api.Session, error) {
	f.sessionsCalls++
	if f.failSessions {
		return nil, errBackend
	}
	return f.sessions, nil
}

func apiProfile() api.Profile {
	return api.Profile{
		Name:      "Sam",
		Pronouns:  "they/them",
		FocusArea: "identity",
	}
}

// transcript builds n alternating user/assistant messages for a session.
func transcript(sessionID string, n int) []api.Message {
	msgs := make([]api.Message, n)
	for i := range msgs {
		sender := api.SenderUser
		if i%2 == 1 {
			sender = api.SenderAssistant
		}
		msgs[i] = api.Message{
			ID:     fmt.Sprintf("%s-m%d", sessionID, i),
			Sender: sender,
			Text:   fmt.Sprintf("message %d of %s", i, sessionID),
		}
	}
	return msgs
}
