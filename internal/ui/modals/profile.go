package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/Salman1205/M-bot/internal/api"
)

// pronounOptions are the pronoun choices offered on the profile form.
var pronounOptions = []string{
	"she/her",
	"he/him",
	"they/them",
	"she/they",
	"he/they",
	"ask me",
}

// focusAreaOptions are the journey focus areas offered on the profile form.
var focusAreaOptions = []string{
	"Self-acceptance",
	"Gender identity",
	"Spiritual growth",
	"Relationships",
	"Well-being",
}

// ProfileState is the state for the edit-profile modal.
type ProfileState struct {
	form *huh.Form

	screenName string
	pronouns   string
	goals      string
	focusAreas []string
}

// NewProfileState creates the profile form pre-filled with current values.
func NewProfileState(u api.User) *ProfileState {
	s := &ProfileState{
		screenName: u.ScreenName,
		pronouns:   u.Pronouns,
		goals:      u.IdentityGoals,
	}
	if u.FocusArea != "" {
		s.focusAreas = strings.Split(u.FocusArea, ", ")
	}

	pronounOpts := make([]huh.Option[string], len(pronounOptions))
	for i, p := range pronounOptions {
		pronounOpts[i] = huh.NewOption(p, p)
	}

	focusOpts := make([]huh.Option[string], len(focusAreaOptions))
	for i, f := range focusAreaOptions {
		focusOpts[i] = huh.NewOption(f, f).Selected(contains(s.focusAreas, f))
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Screen name").
			Description("How M addresses you").
			CharLimit(ModalInputCharLimit).
			Value(&s.screenName),
		huh.NewSelect[string]().
			Title("Pronouns").
			Options(pronounOpts...).
			Value(&s.pronouns),
		huh.NewText().
			Title("Identity goals").
			Description("What you're working toward").
			CharLimit(1000).
			Lines(3).
			Value(&s.goals),
		huh.NewMultiSelect[string]().
			Title("Focus areas").
			Options(focusOpts...).
			Height(len(focusOpts)).
			Value(&s.focusAreas),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func (*ProfileState) modalState() {}

func (s *ProfileState) Title() string { return "Edit Profile" }

func (s *ProfileState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

// Result builds the update payload from the form values.
func (s *ProfileState) Result(userID string) api.ProfileUpdate {
	return api.ProfileUpdate{
		UserID:     userID,
		ScreenName: strings.TrimSpace(s.screenName),
		Pronouns:   s.pronouns,
		Goals:      strings.TrimSpace(s.goals),
		FocusAreas: s.focusAreas,
	}
}

func (s *ProfileState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *ProfileState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}
