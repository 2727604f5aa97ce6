package chat

import (
	"context"

	"github.com/Salman1205/M-bot/internal/api"
	apperrors "github.com/Salman1205/M-bot/internal/errors"
	"github.com/Salman1205/M-bot/internal/logger"
)

// Selector tracks which session is displayed. At most one of the active and
// historical pointers is set at any time; selecting a historical session
// clears the active pointer and vice versa.
type Selector struct {
	backend Backend
	store   *MessageStore
	trigger *RefreshTrigger

	activeID     string
	historicalID string
}

// NewSelector creates a selector in the NoSession state.
func NewSelector(backend Backend, store *MessageStore, trigger *RefreshTrigger) *Selector {
	return &Selector{
		backend: backend,
		store:   store,
		trigger: trigger,
	}
}

// Mode returns the current selection state.
func (s *Selector) Mode() Mode {
	switch {
	case s.historicalID != "":
		return ModeHistorical
	case s.activeID != "":
		return ModeActive
	default:
		return ModeNone
	}
}

// ActiveID returns the active session id, or "" if none.
func (s *Selector) ActiveID() string {
	return s.activeID
}

// HistoricalID returns the selected historical session id, or "" if none.
func (s *Selector) HistoricalID() string {
	return s.historicalID
}

// CurrentID returns whichever session is displayed, or "" in NoSession.
func (s *Selector) CurrentID() string {
	if s.historicalID != "" {
		return s.historicalID
	}
	return s.activeID
}

// ReadOnly reports whether the displayed transcript is a historical replay
// (send disabled).
func (s *Selector) ReadOnly() bool {
	return s.historicalID != ""
}

// SelectSession switches to a historical session: clears the active pointer,
// marks the view read-only, and loads that session's transcript. A load
// failure leaves the transcript empty; the selection still applies and the
// error is returned for the caller to surface.
func (s *Selector) SelectSession(ctx context.Context, id string) error {
	logger.Debug("Selector: selecting session %s (was mode=%s)", id, s.Mode())
	s.historicalID = id
	s.activeID = ""
	return s.store.Load(ctx, id)
}

// StartNewChat clears both pointers and the transcript, returning to the
// welcome view. The next send will mint a fresh session server-side.
func (s *Selector) StartNewChat() {
	logger.Debug("Selector: starting new chat (was mode=%s)", s.Mode())
	s.historicalID = ""
	s.activeID = ""
	s.store.Clear()
}

// ShowHistorical switches to a historical session with an already fetched
// transcript. The interactive client fetches off the event loop and applies
// the result here; a nil transcript (failed fetch) still applies the
// selection, matching SelectSession.
func (s *Selector) ShowHistorical(id string, msgs []api.Message) {
	logger.Debug("Selector: showing historical session %s (was mode=%s)", id, s.Mode())
	s.historicalID = id
	s.activeID = ""
	s.store.Replace(msgs)
}

// RestoreActive puts the selector straight into Active with an already
// fetched transcript. Used at startup when the backend reports an open
// session.
func (s *Selector) RestoreActive(id string, msgs []api.Message) {
	s.activeID = id
	s.historicalID = ""
	s.store.Replace(msgs)
	logger.WithSession(id).Info("restored active session", "messages", len(msgs))
}

// Adopt records a newly minted session id as the active session. Only valid
// when no session is held and the view is not read-only; otherwise it is a
// no-op (a late reply after navigating away must not flip the selection).
func (s *Selector) Adopt(id string) bool {
	if s.activeID != "" || s.historicalID != "" {
		return false
	}
	s.activeID = id
	logger.WithSession(id).Info("adopted new session")
	return true
}

// EndSession completes the active session server-side. Valid only when an
// active session exists and the view is not read-only. On success the active
// pointer and transcript are cleared and the session list trigger is bumped;
// on failure local state is untouched so the user may retry.
func (s *Selector) EndSession(ctx context.Context) (*api.EndSessionResult, error) {
	const op = apperrors.Op("chat.EndSession")

	if s.historicalID != "" {
		return nil, apperrors.E(op, apperrors.KindValidation, "cannot end a historical session")
	}
	if s.activeID == "" {
		return nil, apperrors.E(op, apperrors.KindValidation, "no active session to end")
	}

	result, err := s.backend.EndSession(ctx, s.activeID)
	if err != nil {
		logger.WithSession(s.activeID).Warn("end session failed", "error", err)
		return nil, err
	}

	logger.WithSession(s.activeID).Info("session ended")
	s.activeID = ""
	s.store.Clear()
	s.trigger.Bump()
	return result, nil
}
