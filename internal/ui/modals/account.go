package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// AccountState is the state for the account settings modal: change email
// and/or password. Fields left blank are not changed.
type AccountState struct {
	form *huh.Form

	currentEmail string
	newEmail     string
	password     string
	newPassword  string
}

// NewAccountState creates the account form.
func NewAccountState(currentEmail string) *AccountState {
	s := &AccountState{currentEmail: currentEmail}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("New email").
			Description("Currently "+currentEmail).
			Placeholder("leave blank to keep").
			CharLimit(ModalInputCharLimit).
			Value(&s.newEmail),
		huh.NewInput().
			Title("Current password").
			EchoMode(huh.EchoModePassword).
			CharLimit(ModalInputCharLimit).
			Value(&s.password),
		huh.NewInput().
			Title("New password").
			Placeholder("leave blank to keep").
			EchoMode(huh.EchoModePassword).
			CharLimit(ModalInputCharLimit).
			Value(&s.newPassword),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}

func (*AccountState) modalState() {}

func (s *AccountState) Title() string { return "Account" }

func (s *AccountState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

// NewEmail returns the requested email change, or "" for no change.
func (s *AccountState) NewEmail() string {
	return strings.TrimSpace(s.newEmail)
}

// Password returns the current password typed for verification.
func (s *AccountState) Password() string {
	return s.password
}

// NewPassword returns the requested password change, or "" for no change.
func (s *AccountState) NewPassword() string {
	return s.newPassword
}

func (s *AccountState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *AccountState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}
