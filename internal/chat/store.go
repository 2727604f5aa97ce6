package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/logger"
)

// MessageStore holds the transcript of the currently displayed session.
// The list is replaced wholesale when the selection changes and appended to
// in place while chatting. Messages keep insertion order; nothing is ever
// reordered or deduplicated.
type MessageStore struct {
	backend  Backend
	messages []api.Message
}

// NewMessageStore creates an empty store backed by the given API surface.
func NewMessageStore(backend Backend) *MessageStore {
	return &MessageStore{backend: backend}
}

// Load replaces the transcript with the server's copy for the given session.
// Fails soft: on any fetch error the store is left empty and the error is
// returned for the caller to surface; it is never fatal.
func (s *MessageStore) Load(ctx context.Context, sessionID string) error {
	msgs, err := s.backend.SessionMessages(ctx, sessionID)
	if err != nil {
		logger.WithSession(sessionID).Warn("failed to load transcript", "error", err)
		s.messages = nil
		return err
	}
	s.messages = msgs
	logger.WithSession(sessionID).Debug("transcript loaded", "messages", len(msgs))
	return nil
}

// Replace swaps in an already-fetched transcript (startup restore).
func (s *MessageStore) Replace(msgs []api.Message) {
	s.messages = append([]api.Message(nil), msgs...)
}

// AppendLocal appends an optimistic outgoing user message with a
// client-generated id and returns it. The entry is never replaced by a server
// echo; only the assistant reply is appended after it.
func (s *MessageStore) AppendLocal(text string) api.Message {
	msg := api.Message{
		ID:        uuid.New().String(),
		Sender:    api.SenderUser,
		Text:      text,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	s.messages = append(s.messages, msg)
	return msg
}

// AppendConfirmed appends a server-confirmed message (an assistant reply, or
// a locally synthesized error placeholder standing in for one).
func (s *MessageStore) AppendConfirmed(msg api.Message) {
	s.messages = append(s.messages, msg)
}

// Clear empties the transcript.
func (s *MessageStore) Clear() {
	s.messages = nil
}

// Messages returns a copy of the transcript in insertion order.
func (s *MessageStore) Messages() []api.Message {
	return append([]api.Message(nil), s.messages...)
}

// Len returns the number of messages held.
func (s *MessageStore) Len() int {
	return len(s.messages)
}
