package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/logger"
	"github.com/Salman1205/M-bot/internal/notification"
	"github.com/Salman1205/M-bot/internal/ui/modals"
)

func (m *Model) handleUserLoaded(msg userLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logger.Error("App: could not load user: %v", msg.Err)
		return m, m.flashErrorText("Could not reach the server. Check your connection and sign-in.")
	}

	m.setUser(msg.User)

	return m, tea.Batch(
		m.restoreConversation(msg.User.UserID),
		m.refreshSessions(true),
		m.loadRecentSession(msg.User.UserID),
	)
}

func (m *Model) handleRecentSession(msg recentSessionMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil || msg.Summary == nil {
		// The recap line is decoration; a miss is not worth a flash
		return m, nil
	}
	recap := msg.Summary.Title
	if recap == "" {
		recap = msg.Summary.Summary
	}
	m.chat.SetLastSession(recap)
	return m, nil
}

func (m *Model) handleConversationRestored(msg conversationRestoredMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// No restorable session is the common case; stay on the welcome view
		logger.Log("App: no conversation to restore: %v", msg.Err)
		return m, nil
	}
	if msg.Conv == nil || msg.Conv.SessionID == "" {
		return m, nil
	}

	m.selector.RestoreActive(msg.Conv.SessionID, msg.Conv.Messages)
	m.chat.SetMessages(m.store.Messages())
	m.chat.SetReadOnly(false)
	m.sidebar.SetCurrentID(msg.Conv.SessionID)
	m.sidebar.SelectSession(msg.Conv.SessionID)
	return m, nil
}

func (m *Model) handleSessionsLoaded(msg sessionsLoadedMsg) (tea.Model, tea.Cmd) {
	m.sessionsLoading = false
	m.sidebar.SetSessions(m.listCache.Sessions())

	var cmds []tea.Cmd
	if msg.Err != nil {
		// Stale list stays in place; only surface the failure
		cmds = append(cmds, m.flashErrorText("Could not refresh conversations."))
	}
	// The trigger may have advanced again while this refresh ran
	if cmd := m.refreshSessions(false); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleTranscriptLoaded(msg transcriptLoadedMsg) (tea.Model, tea.Cmd) {
	m.selector.ShowHistorical(msg.SessionID, msg.Messages)
	m.chat.SetMessages(m.store.Messages())
	m.chat.SetReadOnly(true)
	m.sidebar.SetCurrentID(msg.SessionID)

	if msg.Err != nil {
		return m, m.flashErrorText("Could not load that conversation.")
	}
	return m, nil
}

func (m *Model) handleChatResult(msg chatResultMsg) (tea.Model, tea.Cmd) {
	outcome := m.dispatcher.Finish(msg.Result)

	m.chat.SetWaiting(m.dispatcher.Pending())
	m.chat.SetMessages(m.store.Messages())

	var cmds []tea.Cmd
	if outcome.NewSessionID != "" {
		m.sidebar.SetCurrentID(outcome.NewSessionID)
		if cmd := m.refreshSessions(false); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if outcome.Err != nil {
		cmds = append(cmds, m.flashErrorText("Message failed to send. Your words are kept above; try again."))
	} else if m.config.GetNotificationsEnabled() && !m.terminalFocused {
		if err := notification.ReplyArrived(); err != nil {
			logger.Log("App: notification failed: %v", err)
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleEndSessionDone(msg endSessionDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		// The session stays live so the user can retry
		return m, m.flashError(msg.Err)
	}

	// Only clear if the ended session is still the one on screen; the user
	// may have navigated away while the request ran
	if m.selector.ActiveID() == msg.SessionID {
		m.selector.StartNewChat()
		m.chat.SetMessages(nil)
		m.chat.SetReadOnly(false)
		m.sidebar.SetCurrentID("")
	}
	m.trigger.Bump()

	var summary *api.SessionSummary
	if msg.Result != nil {
		summary = msg.Result.Summary
	}
	m.modal.Show(modals.NewSessionSummaryState(summary))

	return m, m.refreshSessions(false)
}

func (m *Model) handleRenameDone(msg renameDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		return m, m.flashError(msg.Err)
	}
	m.trigger.Bump()
	return m, tea.Batch(
		m.flashSuccess("Conversation renamed."),
		m.refreshSessions(false),
	)
}

func (m *Model) handleDashboardData(msg dashboardDataMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil && msg.Analytics == nil {
		m.dashboard.SetError(msg.Err)
		return m, nil
	}
	m.dashboard.SetData(msg.Analytics, msg.Mood, msg.Summaries)
	if msg.Err != nil {
		return m, m.flashErrorText("Some dashboard data could not be loaded.")
	}
	return m, nil
}

func (m *Model) handleProfileSaved(msg profileSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.modal.SetError("Could not save profile: " + msg.Err.Error())
		return m, nil
	}

	// Carry the new fields into the greeting and subsequent chat requests
	if m.user != nil {
		m.user.ScreenName = msg.Update.ScreenName
		m.user.Pronouns = msg.Update.Pronouns
		m.user.IdentityGoals = msg.Update.Goals
		m.user.FocusArea = joinFocusAreas(msg.Update.FocusAreas)
		m.dispatcher.SetUser(m.user.UserID, api.ProfileFor(*m.user))
		m.header.SetUserName(m.user.DisplayName())
		m.chat.SetUserName(m.user.DisplayName())
	}

	m.modal.Hide()
	return m, m.flashSuccess("Profile saved.")
}

func (m *Model) handleFeedbackSent(msg feedbackSentMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.modal.SetError("Could not send feedback: " + msg.Err.Error())
		return m, nil
	}
	m.modal.Hide()
	return m, m.flashSuccess("Thank you for your feedback.")
}

func (m *Model) handleAccountUpdated(msg accountUpdatedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.modal.SetError("Update failed: " + msg.Err.Error())
		return m, nil
	}
	m.modal.Hide()
	return m, m.flashSuccess("Account updated.")
}

func joinFocusAreas(areas []string) string {
	return strings.Join(areas, ", ")
}
