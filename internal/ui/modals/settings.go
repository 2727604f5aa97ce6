package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// Option keys for the general settings MultiSelect
const (
	optionNotifications = "notifications"
	optionSidebar       = "sidebar"
)

// SettingsState is the state for the settings modal.
type SettingsState struct {
	form *huh.Form

	selectedTheme  string
	OriginalTheme  string
	serverURL      string
	generalOptions []string
}

// NewSettingsState creates a new SettingsState with the current settings values.
func NewSettingsState(themes []string, themeDisplayNames []string, currentTheme string,
	serverURL string, notificationsEnabled, sidebarOpen bool) *SettingsState {

	s := &SettingsState{
		selectedTheme: currentTheme,
		OriginalTheme: currentTheme,
		serverURL:     serverURL,
	}

	themeOptions := make([]huh.Option[string], len(themes))
	for i := range themes {
		themeOptions[i] = huh.NewOption(themeDisplayNames[i], themes[i])
	}

	generalOpts := []huh.Option[string]{
		huh.NewOption("Desktop notifications", optionNotifications).
			Selected(notificationsEnabled),
		huh.NewOption("Show sidebar on startup", optionSidebar).
			Selected(sidebarOpen),
	}
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}
	if sidebarOpen {
		s.generalOptions = append(s.generalOptions, optionSidebar)
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.selectedTheme),
		huh.NewInput().
			Title("Server URL").
			Description("Where M's backend lives").
			Placeholder("http://localhost:5000").
			CharLimit(ModalInputCharLimit).
			Value(&s.serverURL),
		huh.NewMultiSelect[string]().
			Title("Options").
			Options(generalOpts...).
			Height(len(generalOpts)).
			Value(&s.generalOptions),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

// SelectedTheme returns the chosen theme key.
func (s *SettingsState) SelectedTheme() string {
	return s.selectedTheme
}

// ServerURL returns the trimmed backend URL.
func (s *SettingsState) ServerURL() string {
	return strings.TrimSpace(s.serverURL)
}

// NotificationsEnabled reports the notifications toggle.
func (s *SettingsState) NotificationsEnabled() bool {
	return contains(s.generalOptions, optionNotifications)
}

// SidebarOpen reports the sidebar-on-startup toggle.
func (s *SettingsState) SidebarOpen() bool {
	return contains(s.generalOptions, optionSidebar)
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}
