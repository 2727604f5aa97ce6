package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/chat"
)

// Commands run off the event loop and report back via the messages in
// types.go. They only touch the backend; model state is mutated in the
// handlers. The one exception is the list cache, which is written by exactly
// one refresh command at a time (guarded by sessionsLoading).

func (m *Model) loadUser() tea.Cmd {
	return func() tea.Msg {
		user, err := m.backend.CurrentUser(context.Background())
		return userLoadedMsg{User: user, Err: err}
	}
}

func (m *Model) restoreConversation(userID string) tea.Cmd {
	return func() tea.Msg {
		conv, err := m.backend.Conversation(context.Background(), userID)
		return conversationRestoredMsg{Conv: conv, Err: err}
	}
}

// refreshSessions refreshes the sidebar list when the trigger has advanced.
// Returns nil when the cache is current or a refresh is already in flight.
func (m *Model) refreshSessions(force bool) tea.Cmd {
	if m.listCache == nil || m.sessionsLoading {
		return nil
	}
	if !force && m.listCache.Loaded() && !m.listCache.NeedsRefresh(m.trigger) {
		return nil
	}
	m.sessionsLoading = true
	cache, trigger := m.listCache, m.trigger
	return func() tea.Msg {
		return sessionsLoadedMsg{Err: cache.Refresh(context.Background(), trigger)}
	}
}

func (m *Model) loadRecentSession(userID string) tea.Cmd {
	return func() tea.Msg {
		summary, err := m.backend.RecentSession(context.Background(), userID)
		return recentSessionMsg{Summary: summary, Err: err}
	}
}

func (m *Model) loadTranscript(sessionID string) tea.Cmd {
	return func() tea.Msg {
		msgs, err := m.backend.SessionMessages(context.Background(), sessionID)
		return transcriptLoadedMsg{SessionID: sessionID, Messages: msgs, Err: err}
	}
}

func (m *Model) dispatchSend(ticket *chat.Ticket) tea.Cmd {
	d := m.dispatcher
	return func() tea.Msg {
		return chatResultMsg{Result: d.Do(context.Background(), ticket)}
	}
}

func (m *Model) endSession(sessionID string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.backend.EndSession(context.Background(), sessionID)
		return endSessionDoneMsg{SessionID: sessionID, Result: result, Err: err}
	}
}

func (m *Model) renameSession(sessionID, title string) tea.Cmd {
	return func() tea.Msg {
		err := m.backend.RenameSession(context.Background(), sessionID, title)
		return renameDoneMsg{SessionID: sessionID, Title: title, Err: err}
	}
}

// loadDashboard fetches the three dashboard datasets in one command. The
// first error wins but does not discard what already loaded.
func (m *Model) loadDashboard(userID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var msg dashboardDataMsg

		analytics, err := m.backend.Analytics(ctx, userID)
		msg.Analytics = analytics
		if err != nil {
			msg.Err = err
		}

		mood, err := m.backend.MoodData(ctx, userID)
		msg.Mood = mood
		if err != nil && msg.Err == nil {
			msg.Err = err
		}

		summaries, err := m.backend.ChatSummaries(ctx, userID)
		msg.Summaries = summaries
		if err != nil && msg.Err == nil {
			msg.Err = err
		}

		return msg
	}
}

func (m *Model) saveProfile(update api.ProfileUpdate) tea.Cmd {
	return func() tea.Msg {
		err := m.backend.UpdateProfile(context.Background(), update)
		return profileSavedMsg{Update: update, Err: err}
	}
}

func (m *Model) sendFeedback(fb api.Feedback) tea.Cmd {
	return func() tea.Msg {
		return feedbackSentMsg{Err: m.backend.SubmitFeedback(context.Background(), fb)}
	}
}

func (m *Model) updateAccount(newEmail, password, newPassword string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if newEmail != "" {
			if err := m.backend.ChangeEmail(ctx, newEmail, password); err != nil {
				return accountUpdatedMsg{Err: err}
			}
		}
		if newPassword != "" {
			if err := m.backend.ChangePassword(ctx, password, newPassword); err != nil {
				return accountUpdatedMsg{Err: err}
			}
		}
		return accountUpdatedMsg{}
	}
}
