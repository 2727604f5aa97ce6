package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/Salman1205/M-bot/internal/api"
)

// FeedbackState is the state for the send-feedback modal.
type FeedbackState struct {
	form *huh.Form

	rating  int
	comment string
}

// NewFeedbackState creates an empty feedback form.
func NewFeedbackState() *FeedbackState {
	s := &FeedbackState{rating: 5}

	ratingOpts := []huh.Option[int]{
		huh.NewOption("★★★★★ Wonderful", 5),
		huh.NewOption("★★★★ Good", 4),
		huh.NewOption("★★★ Okay", 3),
		huh.NewOption("★★ Not great", 2),
		huh.NewOption("★ Poor", 1),
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[int]().
			Title("How has M been for you?").
			Options(ratingOpts...).
			Value(&s.rating),
		huh.NewText().
			Title("Anything you'd like to share?").
			Placeholder("What's working, what isn't...").
			CharLimit(2000).
			Lines(4).
			Value(&s.comment),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}

func (*FeedbackState) modalState() {}

func (s *FeedbackState) Title() string { return "Send Feedback" }

func (s *FeedbackState) Help() string {
	return "Tab: next field  Enter: send  Esc: cancel"
}

// Result builds the feedback payload from the form values.
func (s *FeedbackState) Result(userID string) api.Feedback {
	return api.Feedback{
		UserID:   userID,
		Rating:   s.rating,
		Message:  strings.TrimSpace(s.comment),
		Category: "general",
	}
}

func (s *FeedbackState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *FeedbackState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}
