package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Salman1205/M-bot/internal/ui"
)

// flashError surfaces an error in the footer.
func (m *Model) flashError(err error) tea.Cmd {
	return m.footer.SetFlash(err.Error(), ui.FlashError)
}

// flashErrorText surfaces a pre-worded error message in the footer.
func (m *Model) flashErrorText(text string) tea.Cmd {
	return m.footer.SetFlash(text, ui.FlashError)
}

// flashSuccess surfaces a confirmation in the footer.
func (m *Model) flashSuccess(text string) tea.Cmd {
	return m.footer.SetFlash(text, ui.FlashSuccess)
}

// flashInfo surfaces a neutral notice in the footer.
func (m *Model) flashInfo(text string) tea.Cmd {
	return m.footer.SetFlash(text, ui.FlashInfo)
}
