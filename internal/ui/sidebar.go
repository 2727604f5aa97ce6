package ui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/keys"
)

// sidebarItemKind distinguishes between the new-chat action and sessions.
type sidebarItemKind int

const (
	itemKindNewChat sidebarItemKind = iota // The "+ New Chat" action
	itemKindSession                        // A past or active session
)

// sidebarItem represents a selectable item in the sidebar.
type sidebarItem struct {
	Kind    sidebarItemKind
	Session api.Session // Only valid when Kind == itemKindSession
}

// Sidebar represents the left panel with the session history list.
type Sidebar struct {
	sessions     []api.Session
	items        []sidebarItem
	selectedIdx  int
	width        int
	height       int
	focused      bool
	scrollOffset int
	loading      bool
	currentID    string // id of the session shown in the chat panel

	// now is injectable so relative timestamps are stable in tests.
	now func() time.Time
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	s := &Sidebar{now: time.Now}
	s.rebuildItems()
	return s
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Width returns the sidebar width
func (s *Sidebar) Width() int {
	return s.width
}

// SetFocused sets the focus state
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state
func (s *Sidebar) IsFocused() bool {
	return s.focused
}

// SetLoading marks the list as loading (first fetch in flight)
func (s *Sidebar) SetLoading(loading bool) {
	s.loading = loading
}

// SetCurrentID highlights the session currently shown in the chat panel
func (s *Sidebar) SetCurrentID(id string) {
	s.currentID = id
}

// SetSessions updates the session list, newest first.
func (s *Sidebar) SetSessions(sessions []api.Session) {
	s.sessions = sessions
	s.loading = false
	s.rebuildItems()

	if s.selectedIdx >= len(s.items) {
		s.selectedIdx = len(s.items) - 1
	}
	if s.selectedIdx < 0 {
		s.selectedIdx = 0
	}
}

// rebuildItems builds the flat item list: the new-chat action then sessions.
func (s *Sidebar) rebuildItems() {
	s.items = make([]sidebarItem, 0, len(s.sessions)+1)
	s.items = append(s.items, sidebarItem{Kind: itemKindNewChat})
	for _, sess := range s.sessions {
		s.items = append(s.items, sidebarItem{Kind: itemKindSession, Session: sess})
	}
}

// SelectedSession returns the currently selected session, or nil if the
// new-chat action is selected.
func (s *Sidebar) SelectedSession() *api.Session {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.items) {
		return nil
	}
	item := &s.items[s.selectedIdx]
	if item.Kind != itemKindSession {
		return nil
	}
	return &item.Session
}

// IsNewChatSelected returns true when the "+ New Chat" action is selected.
func (s *Sidebar) IsNewChatSelected() bool {
	return s.selectedIdx >= 0 && s.selectedIdx < len(s.items) && s.items[s.selectedIdx].Kind == itemKindNewChat
}

// SelectSession moves the highlight to the session with the given id.
func (s *Sidebar) SelectSession(id string) {
	for i, item := range s.items {
		if item.Kind == itemKindSession && item.Session.ID == id {
			s.selectedIdx = i
			return
		}
	}
}

// Update handles messages
func (s *Sidebar) Update(msg tea.Msg) (*Sidebar, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !s.focused {
		return s, nil
	}

	switch keyMsg.String() {
	case keys.Up, "k":
		if s.selectedIdx > 0 {
			s.selectedIdx--
		}
	case keys.Down, "j":
		if s.selectedIdx < len(s.items)-1 {
			s.selectedIdx++
		}
	case keys.Home:
		s.selectedIdx = 0
	case keys.End:
		if len(s.items) > 0 {
			s.selectedIdx = len(s.items) - 1
		}
	}

	return s, nil
}

// View renders the sidebar
func (s *Sidebar) View() string {
	vc := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := vc.InnerWidth(s.width)
	innerHeight := vc.InnerHeight(s.height)

	var allLines []string
	selectedStartLine := 0

	for idx, item := range s.items {
		isSelected := idx == s.selectedIdx
		if isSelected {
			selectedStartLine = len(allLines)
		}

		var rendered string
		switch item.Kind {
		case itemKindNewChat:
			label := "+ New Chat"
			if isSelected {
				rendered = SidebarSelectedStyle.Width(innerWidth).Render("> " + label)
			} else {
				rendered = lipgloss.NewStyle().
					Foreground(ColorTextMuted).
					Italic(true).
					Padding(0, 1).
					Render(label)
			}
		case itemKindSession:
			line := s.renderSessionLine(item.Session, isSelected, innerWidth)
			if isSelected {
				rendered = SidebarSelectedStyle.Width(innerWidth).Render(line)
			} else {
				rendered = SidebarItemStyle.Width(innerWidth).Render(line)
			}
		}

		allLines = append(allLines, strings.Split(rendered, "\n")...)
	}

	if s.loading && len(s.sessions) == 0 {
		allLines = append(allLines, StatusLoadingStyle.Render(" Loading sessions..."))
	} else if len(s.sessions) == 0 {
		allLines = append(allLines, lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Render(" No conversations yet."))
	}

	// Keep the selected item visible
	if selectedStartLine < s.scrollOffset {
		s.scrollOffset = selectedStartLine
	} else if selectedStartLine >= s.scrollOffset+innerHeight {
		s.scrollOffset = selectedStartLine - innerHeight + 1
	}
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
	maxScroll := len(allLines) - innerHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.scrollOffset > maxScroll {
		s.scrollOffset = maxScroll
	}

	if s.scrollOffset > 0 && s.scrollOffset < len(allLines) {
		allLines = allLines[s.scrollOffset:]
	}
	if len(allLines) > innerHeight && innerHeight > 0 {
		allLines = allLines[:innerHeight]
	}

	content := strings.Join(allLines, "\n")

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(s.width).Height(s.height).Render(content)
}

// renderSessionLine builds the one-line display for a session: status marker,
// title, and relative timestamp.
func (s *Sidebar) renderSessionLine(sess api.Session, isSelected bool, innerWidth int) string {
	var marker string
	var markerStyle lipgloss.Style

	switch {
	case sess.ID == s.currentID:
		marker = "●"
		markerStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	case sess.Status == api.SessionActive:
		marker = "●"
		markerStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	default:
		marker = "○"
		markerStyle = lipgloss.NewStyle().Foreground(ColorTextMuted)
	}

	title := SessionTitle(sess)
	if runewidth.StringWidth(title) > SidebarTitleMaxLen {
		title = runewidth.Truncate(title, SidebarTitleMaxLen, "…")
	}

	when := RelativeTime(sess.StartedTime(), s.now())

	if isSelected {
		line := "> " + marker + " " + title
		if when != "" {
			line += "  " + when
		}
		return line
	}

	line := markerStyle.Render(marker) + " " + title
	if when != "" {
		line += "  " + SidebarTimeStyle.Render(when)
	}
	return line
}

// SessionTitle returns the display title for a session, falling back to a
// short id-derived name for untitled sessions.
func SessionTitle(sess api.Session) string {
	if sess.Title != "" {
		return sess.Title
	}
	id := sess.ID
	if len(id) > SessionIDSuffixLen {
		id = id[len(id)-SessionIDSuffixLen:]
	}
	return "Chat " + id
}

// RelativeTime formats a timestamp relative to now ("2h ago"). Returns ""
// for a zero time.
func RelativeTime(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("Jan 2")
	}
}
