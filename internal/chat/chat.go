// Package chat holds the client-side conversation state: which session is
// displayed, the transcript for it, the send/reconcile flow, and the cached
// session list for the sidebar.
//
// Everything here runs on the UI event loop. Network calls are issued from
// these types but executed by the caller (a Bubble Tea command goroutine);
// the mutating reconcile steps are only ever invoked from the single UI
// thread, so no locking is needed.
package chat

import (
	"context"

	"github.com/Salman1205/M-bot/internal/api"
)

// Mode is the three-way selection state: nothing selected (welcome view), a
// live sendable session, or a read-only historical session.
type Mode int

const (
	ModeNone Mode = iota
	ModeActive
	ModeHistorical
)

// String returns a human-readable name for the mode
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "NoSession"
	case ModeActive:
		return "Active"
	case ModeHistorical:
		return "Historical"
	default:
		return "Unknown"
	}
}

// Backend is the slice of the API client this package depends on.
// Narrowed to an interface so tests can substitute a fake.
type Backend interface {
	SessionMessages(ctx context.Context, sessionID string) ([]api.Message, error)
	SendChat(ctx context.Context, req api.ChatRequest) (*api.ChatResponse, error)
	EndSession(ctx context.Context, sessionID string) (*api.EndSessionResult, error)
	Sessions(ctx context.Context, userID string) ([]api.Session, error)
}

// RefreshTrigger is the monotonic counter that invalidates the session list
// cache. It is owned by the composition root and bumped whenever a session is
// created, ended, or renamed.
type RefreshTrigger struct {
	count int
}

// Bump increments the counter and returns the new value.
func (t *RefreshTrigger) Bump() int {
	t.count++
	return t.count
}

// Count returns the current counter value.
func (t *RefreshTrigger) Count() int {
	return t.count
}
