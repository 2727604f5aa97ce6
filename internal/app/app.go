package app

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/chat"
	"github.com/Salman1205/M-bot/internal/config"
	"github.com/Salman1205/M-bot/internal/logger"
	"github.com/Salman1205/M-bot/internal/ui"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusChat
)

// Page is the top-level view shown in the content area.
type Page int

const (
	PageChat Page = iota
	PageDashboard
	PageLogs
)

// String returns a human-readable name for the page
func (p Page) String() string {
	switch p {
	case PageChat:
		return "Chat"
	case PageDashboard:
		return "Dashboard"
	case PageLogs:
		return "Logs"
	default:
		return "Unknown"
	}
}

// Backend is the slice of the API client the app layer depends on. It extends
// the chat core's view with the account, dashboard, and session-management
// calls. *api.Client satisfies it; tests substitute a fake.
type Backend interface {
	chat.Backend
	CurrentUser(ctx context.Context) (*api.User, error)
	Conversation(ctx context.Context, userID string) (*api.Conversation, error)
	RenameSession(ctx context.Context, sessionID, title string) error
	RecentSession(ctx context.Context, userID string) (*api.ChatSummary, error)
	Analytics(ctx context.Context, userID string) (*api.Analytics, error)
	MoodData(ctx context.Context, userID string) ([]api.MoodPoint, error)
	ChatSummaries(ctx context.Context, userID string) ([]api.ChatSummary, error)
	UpdateProfile(ctx context.Context, update api.ProfileUpdate) error
	ChangeEmail(ctx context.Context, newEmail, password string) error
	ChangePassword(ctx context.Context, current, next string) error
	SubmitFeedback(ctx context.Context, fb api.Feedback) error
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	backend Backend

	header    *ui.Header
	footer    *ui.Footer
	sidebar   *ui.Sidebar
	chat      *ui.Chat
	dashboard *ui.Dashboard
	logView   *ui.LogView
	modal     *ui.Modal

	// Conversation core, shared across the UI
	store      *chat.MessageStore
	selector   *chat.Selector
	dispatcher *chat.Dispatcher
	trigger    *chat.RefreshTrigger
	listCache  *chat.ListCache

	user *api.User

	width  int
	height int
	focus  Focus
	page   Page

	sidebarVisible  bool
	sessionsLoading bool // a sidebar refresh command is in flight
	terminalFocused bool // desktop notifications fire only when unfocused
}

// New creates a new app model
func New(cfg *config.Config, backend Backend, version string) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}
	ui.RefreshModalStyles()

	trigger := &chat.RefreshTrigger{}
	store := chat.NewMessageStore(backend)
	selector := chat.NewSelector(backend, store, trigger)
	dispatcher := chat.NewDispatcher(backend, store, selector, trigger)
	dispatcher.SetReplyDelay(time.Duration(cfg.GetReplyDelayMs()) * time.Millisecond)

	m := &Model{
		config:          cfg,
		version:         version,
		backend:         backend,
		header:          ui.NewHeader(),
		footer:          ui.NewFooter(),
		sidebar:         ui.NewSidebar(),
		chat:            ui.NewChat(),
		dashboard:       ui.NewDashboard(),
		logView:         ui.NewLogView(),
		modal:           ui.NewModal(),
		store:           store,
		selector:        selector,
		dispatcher:      dispatcher,
		trigger:         trigger,
		focus:           FocusChat,
		page:            PageChat,
		sidebarVisible:  cfg.GetSidebarOpen(),
		terminalFocused: true,
	}

	m.header.SetPageName(m.page.String())
	m.chat.SetFocused(true)
	m.sidebar.SetLoading(true)

	return m
}

// Selector exposes the selection state for the composition root and tests.
func (m *Model) Selector() *chat.Selector {
	return m.selector
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.loadUser()
}

// setUser installs the signed-in user across the components and builds the
// per-user pieces of the chat core.
func (m *Model) setUser(user *api.User) {
	m.user = user
	m.config.SetUserID(user.UserID)

	m.dispatcher.SetUser(user.UserID, api.ProfileFor(*user))
	m.listCache = chat.NewListCache(m.backend, user.UserID)

	m.header.SetUserName(user.DisplayName())
	m.chat.SetUserName(user.DisplayName())

	logger.Log("App: signed in as %s (%s)", user.DisplayName(), user.UserID)
}

func (m *Model) toggleFocus() {
	if !m.sidebarVisible {
		return
	}
	if m.focus == FocusSidebar {
		m.focus = FocusChat
		m.sidebar.SetFocused(false)
		m.chat.SetFocused(true)
	} else {
		m.focus = FocusSidebar
		m.sidebar.SetFocused(true)
		m.chat.SetFocused(false)
	}
}

func (m *Model) toggleSidebar() {
	m.sidebarVisible = !m.sidebarVisible
	if !m.sidebarVisible && m.focus == FocusSidebar {
		m.focus = FocusChat
		m.sidebar.SetFocused(false)
		m.chat.SetFocused(true)
	}
	m.config.SetSidebarOpen(m.sidebarVisible)
	m.config.Save()
	m.updateSizes()
}

// startNewChat returns to the welcome view; the next send mints a session.
func (m *Model) startNewChat() {
	m.selector.StartNewChat()
	m.chat.SetMessages(nil)
	m.chat.SetReadOnly(false)
	m.chat.ClearInput()
	m.sidebar.SetCurrentID("")
	m.focus = FocusChat
	m.sidebar.SetFocused(false)
	m.chat.SetFocused(true)
}

func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)

	chatWidth := ctx.ChatWidth
	if !m.sidebarVisible {
		chatWidth = ctx.ChatWidth + ctx.SidebarWidth
	}
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)
	m.chat.SetSize(chatWidth, ctx.ContentHeight)
	m.dashboard.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	m.logView.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
}
