package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/clipboard"
	"github.com/Salman1205/M-bot/internal/keys"
	"github.com/Salman1205/M-bot/internal/ui"
	"github.com/Salman1205/M-bot/internal/ui/modals"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.FocusMsg:
		m.terminalFocused = true

	case tea.BlurMsg:
		m.terminalFocused = false

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case userLoadedMsg:
		return m.handleUserLoaded(msg)
	case conversationRestoredMsg:
		return m.handleConversationRestored(msg)
	case sessionsLoadedMsg:
		return m.handleSessionsLoaded(msg)
	case recentSessionMsg:
		return m.handleRecentSession(msg)
	case transcriptLoadedMsg:
		return m.handleTranscriptLoaded(msg)
	case chatResultMsg:
		return m.handleChatResult(msg)
	case endSessionDoneMsg:
		return m.handleEndSessionDone(msg)
	case renameDoneMsg:
		return m.handleRenameDone(msg)
	case dashboardDataMsg:
		return m.handleDashboardData(msg)
	case profileSavedMsg:
		return m.handleProfileSaved(msg)
	case feedbackSentMsg:
		return m.handleFeedbackSent(msg)
	case accountUpdatedMsg:
		return m.handleAccountUpdated(msg)

	case ui.FlashClearMsg:
		m.footer.ClearFlash(msg)
		return m, nil

	case ui.TypingTickMsg:
		chatPanel, cmd := m.chat.Update(msg)
		m.chat = chatPanel
		return m, cmd
	}

	// Route everything else (mouse wheel, runtime messages) to the visible page
	switch m.page {
	case PageDashboard:
		dashboard, cmd := m.dashboard.Update(msg)
		m.dashboard = dashboard
		cmds = append(cmds, cmd)
	case PageLogs:
		logView, cmd := m.logView.Update(msg)
		m.logView = logView
		cmds = append(cmds, cmd)
	default:
		chatPanel, cmd := m.chat.Update(msg)
		m.chat = chatPanel
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// handleKey routes a key press: modal first, then page-level keys, then the
// focused panel.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	// Global keys
	switch msg.String() {
	case keys.CtrlC:
		return m, tea.Quit
	case keys.CtrlB:
		m.toggleSidebar()
		return m, nil
	case keys.CtrlD:
		return m.togglePage(PageDashboard)
	case keys.CtrlL:
		return m.togglePage(PageLogs)
	case keys.CtrlP:
		return m.showProfileModal()
	case keys.CtrlT:
		return m.showSettingsModal()
	case keys.CtrlO:
		m.modal.Show(newFeedbackModal())
		return m, nil
	case keys.CtrlU:
		return m.showAccountModal()
	case keys.CtrlSlash:
		m.modal.Show(modals.NewAboutState(m.version, m.config.GetServerURL()))
		return m, nil
	}

	// Dashboard and log pages swallow their own keys; esc returns to chat
	if m.page != PageChat {
		if msg.String() == keys.Escape {
			return m.togglePage(m.page) // toggling the current page closes it
		}
		switch m.page {
		case PageDashboard:
			dashboard, cmd := m.dashboard.Update(msg)
			m.dashboard = dashboard
			return m, cmd
		case PageLogs:
			logView, cmd := m.logView.Update(msg)
			m.logView = logView
			return m, cmd
		}
	}

	return m.handleChatPageKey(msg)
}

// handleChatPageKey handles keys on the main chat page.
func (m *Model) handleChatPageKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	typing := m.focus == FocusChat && !m.chat.IsReadOnly()

	switch msg.String() {
	case "q":
		if !typing {
			return m, tea.Quit
		}
	case keys.Tab:
		m.toggleFocus()
		return m, nil
	case "n":
		// New chat: from the sidebar, or from a read-only transcript
		if !typing {
			m.startNewChat()
			return m, nil
		}
	case "?":
		if !typing {
			m.modal.Show(modals.NewAboutState(m.version, m.config.GetServerURL()))
			return m, nil
		}
	case "R":
		if m.focus == FocusSidebar {
			if sess := m.sidebar.SelectedSession(); sess != nil {
				m.modal.Show(newRenameModal(sess.ID, sess.Title))
				return m, nil
			}
		}
	case keys.CtrlE:
		return m.confirmEndSession()
	case keys.CtrlY:
		return m.copyLastReply()
	case keys.CtrlR:
		if m.listCache != nil {
			m.sidebar.SetLoading(!m.listCache.Loaded())
		}
		return m, m.refreshSessions(true)
	case keys.Enter:
		if m.focus == FocusSidebar {
			return m.openSidebarSelection()
		}
		return m.sendCurrentInput()
	}

	// Everything else goes to the focused panel
	if m.focus == FocusSidebar {
		sidebar, cmd := m.sidebar.Update(msg)
		m.sidebar = sidebar
		return m, cmd
	}
	chatPanel, cmd := m.chat.Update(msg)
	m.chat = chatPanel
	return m, cmd
}

// togglePage switches to the given page, or back to chat when it is already
// showing.
func (m *Model) togglePage(page Page) (tea.Model, tea.Cmd) {
	if m.page == page {
		m.page = PageChat
		m.header.SetPageName(m.page.String())
		return m, nil
	}

	m.page = page
	m.header.SetPageName(page.String())

	switch page {
	case PageDashboard:
		m.dashboard.SetLoading(true)
		if m.user != nil {
			return m, m.loadDashboard(m.user.UserID)
		}
	case PageLogs:
		m.logView.Refresh()
	}
	return m, nil
}

// openSidebarSelection acts on the highlighted sidebar item.
func (m *Model) openSidebarSelection() (tea.Model, tea.Cmd) {
	if m.sidebar.IsNewChatSelected() {
		m.startNewChat()
		return m, nil
	}

	sess := m.sidebar.SelectedSession()
	if sess == nil {
		return m, nil
	}

	// Reopening the live session just moves focus back to the input
	if sess.ID == m.selector.ActiveID() {
		m.focus = FocusChat
		m.sidebar.SetFocused(false)
		m.chat.SetFocused(true)
		return m, nil
	}

	return m, m.loadTranscript(sess.ID)
}

// sendCurrentInput stages a send from the input field, or from the selected
// welcome suggestion when the input is empty.
func (m *Model) sendCurrentInput() (tea.Model, tea.Cmd) {
	text := m.chat.GetInput()
	if text == "" && m.chat.ShowingWelcome() {
		text = m.chat.SelectedSuggestion().Prompt
	}

	ticket, err := m.dispatcher.Begin(text)
	if err != nil {
		return m, m.flashError(err)
	}
	if ticket == nil {
		return m, nil
	}

	m.chat.ClearInput()
	m.chat.SetMessages(m.store.Messages())
	m.chat.SetWaiting(true)

	return m, tea.Batch(m.dispatchSend(ticket), ui.TypingTick())
}

// copyLastReply puts M's most recent reply on the system clipboard.
func (m *Model) copyLastReply() (tea.Model, tea.Cmd) {
	msgs := m.store.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Sender == api.SenderAssistant && !msgs[i].IsError {
			if err := clipboard.WriteText(msgs[i].Text); err != nil {
				return m, m.flashErrorText("Could not reach the clipboard.")
			}
			return m, m.flashSuccess("Reply copied.")
		}
	}
	return m, m.flashInfo("Nothing to copy yet.")
}

// confirmEndSession opens the end-session dialog when a live session exists.
func (m *Model) confirmEndSession() (tea.Model, tea.Cmd) {
	if m.selector.ReadOnly() {
		return m, m.flashErrorText("This is a past conversation. Press n to start a new chat.")
	}
	id := m.selector.ActiveID()
	if id == "" {
		return m, m.flashErrorText("No active session to end.")
	}
	m.modal.Show(newEndSessionModal(id))
	return m, nil
}
