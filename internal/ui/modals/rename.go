package modals

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// RenameSessionState is the state for the rename-session modal.
type RenameSessionState struct {
	SessionID string
	Input     textinput.Model
}

// NewRenameSessionState creates the modal pre-filled with the current title.
func NewRenameSessionState(sessionID, currentTitle string) *RenameSessionState {
	ti := textinput.New()
	ti.Placeholder = "Conversation title"
	ti.CharLimit = ModalInputCharLimit
	ti.SetWidth(ModalInputWidth)
	ti.SetValue(currentTitle)
	ti.Focus()

	return &RenameSessionState{
		SessionID: sessionID,
		Input:     ti,
	}
}

func (*RenameSessionState) modalState() {}

func (s *RenameSessionState) Title() string { return "Rename Conversation" }

func (s *RenameSessionState) Help() string {
	return "Enter: save  Esc: cancel"
}

// Value returns the trimmed new title.
func (s *RenameSessionState) Value() string {
	return strings.TrimSpace(s.Input.Value())
}

func (s *RenameSessionState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	label := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Render("New title:")

	input := lipgloss.NewStyle().
		BorderLeft(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorPrimary).
		PaddingLeft(1).
		Render(s.Input.View())

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, label, input, help)
}

func (s *RenameSessionState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.Input, cmd = s.Input.Update(msg)
	return s, cmd
}
