package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// AboutState shows version info and the key bindings in one place.
type AboutState struct {
	Version   string
	ServerURL string
}

// NewAboutState creates the about dialog.
func NewAboutState(version, serverURL string) *AboutState {
	return &AboutState{Version: version, ServerURL: serverURL}
}

func (*AboutState) modalState() {}

func (s *AboutState) Title() string { return "About mbot" }

func (s *AboutState) Help() string {
	return "Enter/Esc: close"
}

var aboutBindings = [][2]string{
	{"tab", "switch sidebar / chat"},
	{"enter", "send / open selection"},
	{"n", "new chat"},
	{"R", "rename (sidebar)"},
	{"ctrl+e", "end session"},
	{"ctrl+y", "copy last reply"},
	{"ctrl+r", "refresh conversations"},
	{"ctrl+b", "toggle sidebar"},
	{"ctrl+d", "dashboard"},
	{"ctrl+p", "profile"},
	{"ctrl+t", "settings"},
	{"ctrl+o", "send feedback"},
	{"ctrl+u", "email / password"},
	{"ctrl+l", "log viewer"},
	{"ctrl+c", "quit"},
}

func (s *AboutState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	keyStyle := lipgloss.NewStyle().Foreground(ColorSecondary).Width(8)
	descStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)

	var parts []string
	parts = append(parts, title)
	parts = append(parts, descStyle.Render("mbot "+s.Version+" — terminal client for M, your identity mentor"))
	parts = append(parts, descStyle.Render("server: "+s.ServerURL))
	parts = append(parts, "")
	for _, binding := range aboutBindings {
		parts = append(parts, keyStyle.Render(binding[0])+descStyle.Render(binding[1]))
	}
	parts = append(parts, ModalHelpStyle.Render(s.Help()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (s *AboutState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}
