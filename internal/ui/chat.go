package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/keys"
)

// TypingTickMsg is sent to advance the typing indicator animation
type TypingTickMsg time.Time

// typingFrames is the shimmer shown while waiting for the mentor's reply
var typingFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// typingHoldTimes defines how long each frame should be held (in ticks).
// First and last frames hold longer for a "breathing" effect.
var typingHoldTimes = []int{3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 3}

// Suggestion is a conversation starter shown on the welcome view.
type Suggestion struct {
	Label  string
	Prompt string
}

// WelcomeSuggestions are the starter topics, mirroring the web client.
var WelcomeSuggestions = []Suggestion{
	{Label: "Affirm Who I Am", Prompt: "I'd like to start with some affirmations about who I am."},
	{Label: "Explore My Gender Identity", Prompt: "I want to explore my gender identity."},
	{Label: "Support My Well-Being", Prompt: "I could use some support with my well-being today."},
	{Label: "Grow Spiritually", Prompt: "I'd like to talk about my spiritual growth."},
	{Label: "Navigate Relationships", Prompt: "I need help navigating my relationships."},
}

// Chat represents the right panel with the conversation view.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	width    int
	height   int
	focused  bool
	messages []api.Message
	userName string

	waiting       bool      // Waiting for the mentor's reply
	waitStartTime time.Time // When waiting started
	typingFrame   int       // Current typing animation frame
	typingTick    int       // Tick counter for frame hold timing

	readOnly bool // Viewing a historical session (input disabled)

	// Welcome view suggestion selection
	suggestionIdx int

	lastSession string // One-line recap of the most recent completed session
}

// NewChat creates a new chat panel
func NewChat() *Chat {
	ti := textarea.New()
	ti.Placeholder = "Share what's on your mind..."
	ti.CharLimit = InputCharLimit
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	vc := GetViewContext()

	chatPanelHeight := height - InputTotalHeight

	innerWidth := vc.InnerWidth(width)
	viewportHeight := vc.InnerHeight(chatPanelHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)

	c.input.SetWidth(vc.InnerWidth(width) - InputPaddingWidth)

	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused && !c.readOnly {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetUserName sets the name used in the welcome greeting
func (c *Chat) SetUserName(name string) {
	c.userName = name
}

// SetLastSession sets the welcome view's recap line for the most recent
// completed session. Empty hides it.
func (c *Chat) SetLastSession(recap string) {
	c.lastSession = recap
	c.updateContent()
}

// SetMessages replaces the rendered transcript
func (c *Chat) SetMessages(messages []api.Message) {
	c.messages = messages
	c.updateContent()
	c.viewport.GotoBottom()
}

// SetReadOnly toggles the historical (read-only) presentation
func (c *Chat) SetReadOnly(readOnly bool) {
	c.readOnly = readOnly
	if readOnly {
		c.input.Blur()
	} else if c.focused {
		c.input.Focus()
	}
}

// IsReadOnly returns whether the panel is in read-only mode
func (c *Chat) IsReadOnly() bool {
	return c.readOnly
}

// SetWaiting toggles the typing indicator
func (c *Chat) SetWaiting(waiting bool) {
	if waiting && !c.waiting {
		c.waitStartTime = time.Now()
		c.typingFrame = 0
		c.typingTick = 0
	}
	c.waiting = waiting
	c.updateContent()
	if waiting {
		c.viewport.GotoBottom()
	}
}

// IsWaiting returns whether a reply is pending
func (c *Chat) IsWaiting() bool {
	return c.waiting
}

// GetInput returns the current input text
func (c *Chat) GetInput() string {
	return strings.TrimSpace(c.input.Value())
}

// ClearInput clears the input field
func (c *Chat) ClearInput() {
	c.input.Reset()
}

// SetInput sets the input field value
func (c *Chat) SetInput(value string) {
	c.input.SetValue(value)
}

// ShowingWelcome reports whether the welcome view (no transcript) is up
func (c *Chat) ShowingWelcome() bool {
	return len(c.messages) == 0 && !c.waiting
}

// SelectedSuggestion returns the highlighted welcome suggestion
func (c *Chat) SelectedSuggestion() Suggestion {
	return WelcomeSuggestions[c.suggestionIdx]
}

// TypingTick returns a command that advances the typing animation
func TypingTick() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return TypingTickMsg(t)
	})
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	switch msg := msg.(type) {
	case TypingTickMsg:
		if !c.waiting {
			return c, nil
		}
		c.typingTick++
		hold := typingHoldTimes[c.typingFrame%len(typingHoldTimes)]
		if c.typingTick >= hold {
			c.typingTick = 0
			c.typingFrame = (c.typingFrame + 1) % len(typingFrames)
		}
		c.updateContent()
		return c, TypingTick()

	case tea.KeyPressMsg:
		if !c.focused {
			return c, nil
		}

		// Suggestion navigation on the welcome view when the input is empty
		if c.ShowingWelcome() && c.GetInput() == "" {
			switch msg.String() {
			case keys.Left, keys.Up:
				if c.suggestionIdx > 0 {
					c.suggestionIdx--
				}
				c.updateContent()
				return c, nil
			case keys.Right, keys.Down:
				if c.suggestionIdx < len(WelcomeSuggestions)-1 {
					c.suggestionIdx++
				}
				c.updateContent()
				return c, nil
			}
		}

		switch msg.String() {
		case keys.PgUp:
			c.viewport.HalfPageUp()
			return c, nil
		case keys.PgDown:
			c.viewport.HalfPageDown()
			return c, nil
		}

		if c.readOnly {
			return c, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		c.viewport, cmd = c.viewport.Update(msg)
		return c, cmd
	}

	return c, nil
}

// updateContent re-renders the transcript into the viewport
func (c *Chat) updateContent() {
	width := c.viewport.Width()
	if width <= 0 {
		width = DefaultWrapWidth
	}

	if c.ShowingWelcome() {
		c.viewport.SetContent(c.renderWelcome(width))
		return
	}

	var b strings.Builder
	for i, msg := range c.messages {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(c.renderMessage(msg, width))
		b.WriteString("\n")
	}

	if c.waiting {
		frame := typingFrames[c.typingFrame]
		elapsed := time.Since(c.waitStartTime).Round(time.Second)
		indicator := StatusLoadingStyle.Render(frame + " M is thinking")
		if elapsed >= 2*time.Second {
			indicator += SidebarTimeStyle.Render(" (" + elapsed.String() + ")")
		}
		b.WriteString("\n" + indicator + "\n")
	}

	c.viewport.SetContent(b.String())
}

// renderMessage renders one transcript entry with its sender label.
func (c *Chat) renderMessage(msg api.Message, width int) string {
	var label string
	if msg.Sender == api.SenderUser {
		name := c.userName
		if name == "" {
			name = "You"
		}
		label = ChatUserStyle.Render(name)
	} else {
		label = ChatAssistantStyle.Render("M")
	}

	if t := msg.Time(); !t.IsZero() {
		label += SidebarTimeStyle.Render("  " + t.Format("3:04 PM"))
	}

	bodyStyle := ChatMessageStyle
	if msg.IsError {
		bodyStyle = ChatErrorMessageStyle
	}
	body := bodyStyle.Width(width).Render(msg.Text)

	return label + "\n" + body
}

// renderWelcome renders the empty-state greeting with starter suggestions.
func (c *Chat) renderWelcome(width int) string {
	name := c.userName
	if name == "" {
		name = "friend"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(WelcomeTitleStyle.Render("Welcome, " + name + "."))
	b.WriteString("\n")
	b.WriteString(WelcomeSubtitleStyle.Render("I'm M, your identity mentor. What would you like to explore today?"))
	b.WriteString("\n\n")

	var chips []string
	for i, sug := range WelcomeSuggestions {
		style := SuggestionStyle
		if i == c.suggestionIdx {
			style = SuggestionSelectedStyle
		}
		chips = append(chips, style.Render(sug.Label))
	}

	// Lay the chips out in rows that fit the width
	var rows []string
	var row []string
	rowWidth := 0
	for _, chip := range chips {
		w := lipgloss.Width(chip)
		if rowWidth+w > width && len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
			rowWidth = 0
		}
		row = append(row, chip)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n\n")
	b.WriteString(WelcomeSubtitleStyle.Render("Pick a topic with ←/→ and press enter, or just start typing."))

	if c.lastSession != "" {
		b.WriteString("\n\n")
		recap := "Last time: " + c.lastSession
		b.WriteString(SidebarTimeStyle.Width(width).Render(recap))
	}

	return b.String()
}

// View renders the chat panel (transcript + input)
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	chatPanelHeight := c.height - InputTotalHeight
	transcript := panelStyle.Width(c.width).Height(chatPanelHeight).Render(c.viewport.View())

	var input string
	if c.readOnly {
		banner := ReadOnlyBannerStyle.Render("Viewing a past conversation. Press n to start a new chat.")
		input = ChatInputStyle.Width(c.width).Height(InputTotalHeight - TextareaBorderHeight).Render(banner)
	} else {
		inputStyle := ChatInputStyle
		if c.focused {
			inputStyle = ChatInputFocusedStyle
		}
		inputView := c.input.View()
		if counter := c.charCounter(); counter != "" {
			inputView = overlayCounter(inputView, counter, c.width)
		}
		input = inputStyle.Width(c.width).Render(inputView)
	}

	return lipgloss.JoinVertical(lipgloss.Left, transcript, input)
}

// charCounter returns "n/limit" once the input is three-quarters full.
// Counts grapheme clusters, so emoji and combining marks read as one
// character each, matching what the user sees.
func (c *Chat) charCounter() string {
	count := uniseg.GraphemeClusterCount(c.input.Value())
	if count < InputCharLimit*3/4 {
		return ""
	}
	return fmt.Sprintf("%d/%d", count, InputCharLimit)
}

// overlayCounter right-aligns the counter under the input area.
func overlayCounter(inputView, counter string, width int) string {
	styled := CharCounterStyle.Render(counter)
	pad := width - lipgloss.Width(styled)
	if pad < 0 {
		pad = 0
	}
	return inputView + "\n" + strings.Repeat(" ", pad) + styled
}
