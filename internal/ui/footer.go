package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType categorizes a transient footer notification
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashError
)

// FlashDuration is how long a flash message stays visible
const FlashDuration = 4 * time.Second

// FlashClearMsg is sent when a flash message should be dismissed
type FlashClearMsg struct {
	// Seq matches the flash that scheduled the clear, so a newer flash is
	// not wiped out by an older timer.
	Seq int
}

// Footer represents the bottom footer bar with keybindings and flash
// notifications. A flash temporarily replaces the keybinding hints.
type Footer struct {
	width          int
	hasSession     bool // Whether a sendable session is selected
	readOnly       bool // Whether viewing a historical session
	sidebarFocused bool // Whether sidebar has focus
	waiting        bool // Whether a reply is pending

	flash     string
	flashType FlashType
	flashSeq  int
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(hasSession, readOnly, sidebarFocused, waiting bool) {
	f.hasSession = hasSession
	f.readOnly = readOnly
	f.sidebarFocused = sidebarFocused
	f.waiting = waiting
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetFlash shows a transient notification and returns the command that will
// clear it after FlashDuration.
func (f *Footer) SetFlash(text string, kind FlashType) tea.Cmd {
	f.flash = text
	f.flashType = kind
	f.flashSeq++
	seq := f.flashSeq
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return FlashClearMsg{Seq: seq}
	})
}

// ClearFlash dismisses the flash if the sequence number matches
func (f *Footer) ClearFlash(msg FlashClearMsg) {
	if msg.Seq == f.flashSeq {
		f.flash = ""
	}
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flash != ""
}

// View renders the footer
func (f *Footer) View() string {
	if f.flash != "" {
		var style lipgloss.Style
		switch f.flashType {
		case FlashError:
			style = StatusErrorStyle
		case FlashSuccess:
			style = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
		default:
			style = lipgloss.NewStyle().Foreground(ColorInfo)
		}
		return FooterStyle.Width(f.width).Render(style.Render(f.flash))
	}

	var bindings []KeyBinding
	switch {
	case f.sidebarFocused:
		bindings = []KeyBinding{
			{Key: "↑/↓", Desc: "navigate"},
			{Key: "enter", Desc: "open"},
			{Key: "n", Desc: "new chat"},
			{Key: "R", Desc: "rename"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "q", Desc: "quit"},
		}
	case f.waiting:
		bindings = []KeyBinding{
			{Key: "tab", Desc: "switch pane"},
			{Key: "pgup/dn", Desc: "scroll"},
		}
	case f.readOnly:
		bindings = []KeyBinding{
			{Key: "n", Desc: "new chat"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "pgup/dn", Desc: "scroll"},
			{Key: "q", Desc: "quit"},
		}
	case f.hasSession:
		bindings = []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+e", Desc: "end session"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "pgup/dn", Desc: "scroll"},
		}
	default:
		bindings = []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+d", Desc: "dashboard"},
			{Key: "ctrl+p", Desc: "profile"},
			{Key: "tab", Desc: "switch pane"},
			{Key: "q", Desc: "quit"},
		}
	}

	var parts []string
	for _, b := range bindings {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(content)
}
