package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/Salman1205/M-bot/internal/api"
)

func TestChatShowingWelcome(t *testing.T) {
	c := NewChat()
	if !c.ShowingWelcome() {
		t.Error("empty chat should show the welcome view")
	}

	c.SetMessages([]api.Message{{Sender: api.SenderUser, Text: "hi"}})
	if c.ShowingWelcome() {
		t.Error("chat with messages should not show the welcome view")
	}

	c.SetMessages(nil)
	c.SetWaiting(true)
	if c.ShowingWelcome() {
		t.Error("waiting chat should not show the welcome view")
	}
}

func TestChatSuggestionNavigation(t *testing.T) {
	c := NewChat()
	c.SetFocused(true)

	if c.SelectedSuggestion() != WelcomeSuggestions[0] {
		t.Error("first suggestion should be selected initially")
	}

	c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if c.SelectedSuggestion() != WelcomeSuggestions[2] {
		t.Errorf("selected %q, want %q", c.SelectedSuggestion().Label, WelcomeSuggestions[2].Label)
	}

	c.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	if c.SelectedSuggestion() != WelcomeSuggestions[1] {
		t.Errorf("selected %q, want %q", c.SelectedSuggestion().Label, WelcomeSuggestions[1].Label)
	}

	// Navigation never runs off the ends.
	for range 10 {
		c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	}
	if c.SelectedSuggestion() != WelcomeSuggestions[len(WelcomeSuggestions)-1] {
		t.Error("selection should clamp at the last suggestion")
	}
}

func TestChatSuggestionNavigationNeedsEmptyInput(t *testing.T) {
	c := NewChat()
	c.SetFocused(true)
	c.SetInput("already typing")

	c.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if c.SelectedSuggestion() != WelcomeSuggestions[0] {
		t.Error("arrow keys should go to the input once the user is typing")
	}
}

func TestChatReadOnlyBlocksInput(t *testing.T) {
	c := NewChat()
	c.SetFocused(true)
	c.SetMessages([]api.Message{{Sender: api.SenderAssistant, Text: "hello"}})
	c.SetReadOnly(true)

	c.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if c.GetInput() != "" {
		t.Errorf("read-only chat accepted input %q", c.GetInput())
	}

	c.SetReadOnly(false)
	c.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if c.GetInput() != "x" {
		t.Errorf("input = %q, want %q after leaving read-only", c.GetInput(), "x")
	}
}

func TestChatGetInputTrims(t *testing.T) {
	c := NewChat()
	c.SetInput("  hello  ")
	if c.GetInput() != "hello" {
		t.Errorf("GetInput = %q, want %q", c.GetInput(), "hello")
	}
}

func TestCharCounterAppearsNearLimit(t *testing.T) {
	c := NewChat()

	c.SetInput("short message")
	if got := c.charCounter(); got != "" {
		t.Errorf("counter = %q, want hidden for a short input", got)
	}

	c.SetInput(strings.Repeat("a", InputCharLimit*3/4))
	if got := c.charCounter(); got == "" {
		t.Error("counter should show once the input is three-quarters full")
	}
}
