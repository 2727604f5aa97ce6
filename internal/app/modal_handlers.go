package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Salman1205/M-bot/internal/keys"
	"github.com/Salman1205/M-bot/internal/ui"
	"github.com/Salman1205/M-bot/internal/ui/modals"
)

// Modal constructors. Thin wrappers so the key handlers read cleanly.

func newRenameModal(sessionID, currentTitle string) modals.ModalState {
	return modals.NewRenameSessionState(sessionID, currentTitle)
}

func newEndSessionModal(sessionID string) modals.ModalState {
	return modals.NewEndSessionState(sessionID)
}

func newFeedbackModal() modals.ModalState {
	return modals.NewFeedbackState()
}

func (m *Model) showProfileModal() (tea.Model, tea.Cmd) {
	if m.user == nil {
		return m, m.flashErrorText("Profile is unavailable until sign-in completes.")
	}
	m.modal.Show(modals.NewProfileState(*m.user))
	return m, nil
}

func (m *Model) showSettingsModal() (tea.Model, tea.Cmd) {
	names := ui.ThemeNames()
	themeKeys := make([]string, len(names))
	displayNames := make([]string, len(names))
	for i, name := range names {
		themeKeys[i] = string(name)
		displayNames[i] = ui.GetTheme(name).Name
	}

	m.modal.Show(modals.NewSettingsState(
		themeKeys, displayNames, string(ui.CurrentThemeName()),
		m.config.GetServerURL(),
		m.config.GetNotificationsEnabled(),
		m.config.GetSidebarOpen(),
	))
	return m, nil
}

func (m *Model) showAccountModal() (tea.Model, tea.Cmd) {
	if m.user == nil {
		return m, m.flashErrorText("Account settings are unavailable until sign-in completes.")
	}
	m.modal.Show(modals.NewAccountState(m.user.Email))
	return m, nil
}

// handleModalKey routes key presses while a modal is up. Escape always
// dismisses; Enter submits according to the modal's type.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		return m.submitModal()
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// submitModal acts on Enter for the current modal state.
func (m *Model) submitModal() (tea.Model, tea.Cmd) {
	switch state := m.modal.State.(type) {
	case *modals.RenameSessionState:
		title := state.Value()
		if title == "" {
			m.modal.SetError("Title cannot be empty")
			return m, nil
		}
		m.modal.Hide()
		return m, m.renameSession(state.SessionID, title)

	case *modals.EndSessionState:
		if !state.Confirmed {
			m.modal.Hide()
			return m, nil
		}
		m.modal.Hide()
		return m, m.endSession(state.SessionID)

	case *modals.SessionSummaryState:
		m.modal.Hide()
		return m, nil

	case *modals.ProfileState:
		return m, m.saveProfile(state.Result(m.user.UserID))

	case *modals.FeedbackState:
		fb := state.Result(m.user.UserID)
		if fb.Rating == 0 {
			m.modal.SetError("Pick a rating first")
			return m, nil
		}
		return m, m.sendFeedback(fb)

	case *modals.SettingsState:
		return m.applySettings(state)

	case *modals.AccountState:
		newEmail, password, newPassword := state.NewEmail(), state.Password(), state.NewPassword()
		if newEmail == "" && newPassword == "" {
			m.modal.Hide()
			return m, nil
		}
		if password == "" {
			m.modal.SetError("Current password is required")
			return m, nil
		}
		return m, m.updateAccount(newEmail, password, newPassword)
	}

	m.modal.Hide()
	return m, nil
}

// applySettings persists the settings form and applies what can take effect
// immediately.
func (m *Model) applySettings(state *modals.SettingsState) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if theme := state.SelectedTheme(); theme != state.OriginalTheme {
		ui.SetThemeByName(theme)
		m.config.SetTheme(theme)
	}

	serverChanged := state.ServerURL() != "" && state.ServerURL() != m.config.GetServerURL()
	if serverChanged {
		m.config.SetServerURL(state.ServerURL())
	}

	m.config.SetNotificationsEnabled(state.NotificationsEnabled())
	if state.SidebarOpen() != m.sidebarVisible {
		m.toggleSidebar() // also persists
	}

	if err := m.config.Save(); err != nil {
		m.modal.SetError("Could not save settings: " + err.Error())
		return m, nil
	}

	m.modal.Hide()
	if serverChanged {
		cmds = append(cmds, m.flashInfo("Server change takes effect on next start."))
	} else {
		cmds = append(cmds, m.flashSuccess("Settings saved."))
	}
	return m, tea.Batch(cmds...)
}
