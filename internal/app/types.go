package app

import (
	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/chat"
)

// userLoadedMsg carries the signed-in user fetched at startup.
type userLoadedMsg struct {
	User *api.User
	Err  error
}

// conversationRestoredMsg carries the active-session snapshot fetched at
// startup. Conv.SessionID is empty when no session was open.
type conversationRestoredMsg struct {
	Conv *api.Conversation
	Err  error
}

// sessionsLoadedMsg signals that a sidebar refresh command finished. The
// refreshed list lives in the cache; Err is non-nil when the refresh kept
// stale data.
type sessionsLoadedMsg struct {
	Err error
}

// transcriptLoadedMsg carries a historical session's transcript. Messages is
// nil when the fetch failed.
type transcriptLoadedMsg struct {
	SessionID string
	Messages  []api.Message
	Err       error
}

// recentSessionMsg carries the most recent completed session's summary, shown
// as a recap line on the welcome view. Summary is nil when there is none.
type recentSessionMsg struct {
	Summary *api.ChatSummary
	Err     error
}

// chatResultMsg carries the network outcome of one send, reconciled on the
// event loop by the dispatcher.
type chatResultMsg struct {
	Result chat.Result
}

// endSessionDoneMsg carries the end-session response.
type endSessionDoneMsg struct {
	SessionID string
	Result    *api.EndSessionResult
	Err       error
}

// renameDoneMsg signals that a rename request finished.
type renameDoneMsg struct {
	SessionID string
	Title     string
	Err       error
}

// dashboardDataMsg carries everything the dashboard page shows. Partial
// failures surface as Err with whatever loaded intact.
type dashboardDataMsg struct {
	Analytics *api.Analytics
	Mood      []api.MoodPoint
	Summaries []api.ChatSummary
	Err       error
}

// profileSavedMsg signals that a profile update finished.
type profileSavedMsg struct {
	Update api.ProfileUpdate
	Err    error
}

// feedbackSentMsg signals that a feedback submission finished.
type feedbackSentMsg struct {
	Err error
}

// accountUpdatedMsg signals that an email and/or password change finished.
type accountUpdatedMsg struct {
	Err error
}
