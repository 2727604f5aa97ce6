package chat

import (
	"context"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/logger"
)

// ListCache holds the session list shown in the sidebar. It refreshes on
// demand when the shared trigger advances past the last counter value it
// saw. A failed refresh keeps the previous list when one exists; only a
// failed first load leaves the cache empty.
type ListCache struct {
	backend Backend
	userID  string

	sessions   []api.Session
	loadedOnce bool
	lastSeen   int
}

// NewListCache creates an empty cache for the given user.
func NewListCache(backend Backend, userID string) *ListCache {
	return &ListCache{backend: backend, userID: userID}
}

// Sessions returns the cached list. Callers must not mutate it.
func (c *ListCache) Sessions() []api.Session {
	return c.sessions
}

// Loaded reports whether at least one refresh has succeeded.
func (c *ListCache) Loaded() bool {
	return c.loadedOnce
}

// NeedsRefresh reports whether the trigger has advanced since the last
// refresh attempt.
func (c *ListCache) NeedsRefresh(trigger *RefreshTrigger) bool {
	return trigger.Count() > c.lastSeen
}

// Refresh fetches the session list. On failure the previous list (if any) is
// kept and the error returned; stale data beats an empty sidebar. The trigger
// count is recorded even on failure so a failed refresh is not retried in a
// tight loop; the next Bump re-arms it.
func (c *ListCache) Refresh(ctx context.Context, trigger *RefreshTrigger) error {
	c.lastSeen = trigger.Count()

	sessions, err := c.backend.Sessions(ctx, c.userID)
	if err != nil {
		logger.Warn("ListCache: refresh failed, keeping %d cached sessions: %v", len(c.sessions), err)
		return err
	}

	c.sessions = sessions
	c.loadedOnce = true
	logger.Debug("ListCache: refreshed, %d sessions", len(sessions))
	return nil
}
