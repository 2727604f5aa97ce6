package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Salman1205/M-bot/internal/api"
)

// EndSessionState is the confirm dialog shown before completing the active
// session.
type EndSessionState struct {
	SessionID string
	Confirmed bool // cursor position: true = "End session"
}

// NewEndSessionState creates the confirm dialog.
func NewEndSessionState(sessionID string) *EndSessionState {
	return &EndSessionState{SessionID: sessionID, Confirmed: true}
}

func (*EndSessionState) modalState() {}

func (s *EndSessionState) Title() string { return "End This Session?" }

func (s *EndSessionState) Help() string {
	return "←/→: choose  Enter: confirm  Esc: cancel"
}

func (s *EndSessionState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	body := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Width(ModalWidth - 6).
		Render("M will wrap up and save a summary of this conversation. You can revisit it from the sidebar anytime.")

	confirm := "  End session  "
	cancel := "  Keep talking  "
	active := lipgloss.NewStyle().Foreground(ColorTextInverse).Background(ColorPrimary)
	inactive := lipgloss.NewStyle().Foreground(ColorTextMuted)
	if s.Confirmed {
		confirm = active.Render(confirm)
		cancel = inactive.Render(cancel)
	} else {
		confirm = inactive.Render(confirm)
		cancel = active.Render(cancel)
	}
	buttons := confirm + "  " + cancel

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, body, "", buttons, help)
}

func (s *EndSessionState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "left", "right", "tab", "h", "l":
			s.Confirmed = !s.Confirmed
		}
	}
	return s, nil
}

// SessionSummaryState shows the wrap-up the backend generated after a
// session was ended.
type SessionSummaryState struct {
	Summary *api.SessionSummary
}

// NewSessionSummaryState creates the summary display.
func NewSessionSummaryState(summary *api.SessionSummary) *SessionSummaryState {
	return &SessionSummaryState{Summary: summary}
}

func (*SessionSummaryState) modalState() {}

func (s *SessionSummaryState) Title() string { return "Session Complete" }

func (s *SessionSummaryState) Help() string {
	return "Enter/Esc: close"
}

func (s *SessionSummaryState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	if s.Summary == nil {
		body := lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Render("Your conversation has been saved.")
		return lipgloss.JoinVertical(lipgloss.Left, title, body, ModalHelpStyle.Render(s.Help()))
	}

	wrap := lipgloss.NewStyle().Width(ModalWidth - 6)

	var parts []string
	parts = append(parts, title)
	if s.Summary.Title != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Render(s.Summary.Title))
	}
	if s.Summary.Summary != "" {
		parts = append(parts, wrap.Foreground(ColorText).Render(s.Summary.Summary))
	}
	if s.Summary.Mood != "" {
		parts = append(parts, lipgloss.NewStyle().Foreground(ColorTextMuted).Render("Mood: "+s.Summary.Mood))
	}
	parts = append(parts, ModalHelpStyle.Render(s.Help()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *SessionSummaryState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}
