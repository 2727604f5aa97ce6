package api

import (
	"encoding/json"
	"time"
)

// Session status values as reported by the backend.
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// Message sender values. The backend historically used "M" for the assistant;
// decoding normalizes that to SenderAssistant so the rest of the client only
// ever sees the canonical pair.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// timeLayouts are the timestamp formats the backend has been observed to emit.
// Python's datetime.isoformat() omits the timezone, so RFC3339 alone is not
// enough.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime parses a backend timestamp string. Returns the zero time if the
// string is empty or matches no known layout.
func ParseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Session is one bounded conversation, owned by the backend. The client holds
// only a read-through view keyed by ID.
type Session struct {
	ID        string `json:"session_id"`
	UserID    string `json:"user_id,omitempty"`
	Status    string `json:"status"`
	Title     string `json:"title,omitempty"`
	Mood      string `json:"mood,omitempty"`
	Summary   string `json:"summary,omitempty"`
	StartedAt string `json:"started_at,omitempty"`
	EndedAt   string `json:"ended_at,omitempty"`
}

// StartedTime returns the parsed creation timestamp.
func (s Session) StartedTime() time.Time {
	return ParseTime(s.StartedAt)
}

// Message is one transcript entry. IsError marks a locally synthesized
// failure placeholder; it never goes over the wire.
type Message struct {
	ID        string   `json:"id"`
	Sender    string   `json:"sender"`
	Text      string   `json:"message_text"`
	Timestamp string   `json:"timestamp"`
	Sentiment *float64 `json:"sentiment_score,omitempty"`

	IsError bool `json:"-"`
}

// messageWire mirrors Message plus the field-name variants different backend
// code paths emit ("id" vs "message_id").
type messageWire struct {
	ID        string   `json:"id"`
	MessageID string   `json:"message_id"`
	Sender    string   `json:"sender"`
	Text      string   `json:"message_text"`
	Timestamp string   `json:"timestamp"`
	Sentiment *float64 `json:"sentiment_score"`
}

// UnmarshalJSON normalizes the two id field names and the legacy "M" sender.
func (m *Message) UnmarshalJSON(data []byte) error {
	var w messageWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	m.ID = w.ID
	if m.ID == "" {
		m.ID = w.MessageID
	}
	m.Sender = w.Sender
	if m.Sender != SenderUser {
		m.Sender = SenderAssistant
	}
	m.Text = w.Text
	m.Timestamp = w.Timestamp
	m.Sentiment = w.Sentiment
	return nil
}

// Time returns the parsed message timestamp.
func (m Message) Time() time.Time {
	return ParseTime(m.Timestamp)
}

// sessionList accepts both response shapes the backend has shipped:
// {"sessions": [...]} and a bare [...].
type sessionList []Session

func (l *sessionList) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Sessions []Session `json:"sessions"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Sessions != nil {
		*l = wrapped.Sessions
		return nil
	}
	var bare []Session
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	*l = bare
	return nil
}

// messageList accepts {"messages": [...]} and a bare [...].
type messageList []Message

func (l *messageList) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Messages []Message `json:"messages"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Messages != nil {
		*l = wrapped.Messages
		return nil
	}
	var bare []Message
	if err := json.Unmarshal(data, &bare); err != nil {
		return err
	}
	*l = bare
	return nil
}

// User is the signed-in account as returned by login and /api/user.
type User struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	Name           string `json:"name,omitempty"`
	ScreenName     string `json:"screen_name,omitempty"`
	Pronouns       string `json:"pronouns,omitempty"`
	IdentityGoals  string `json:"identity_goals,omitempty"`
	FocusArea      string `json:"focus_area,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty"`
}

// DisplayName returns the best available name for greeting the user.
func (u User) DisplayName() string {
	if u.ScreenName != "" {
		return u.ScreenName
	}
	if u.Name != "" {
		return u.Name
	}
	return "friend"
}

// Profile carries the personalization fields sent with every chat message.
type Profile struct {
	Name          string `json:"name"`
	Pronouns      string `json:"pronouns"`
	IdentityGoals string `json:"identity_goals"`
	FocusArea     string `json:"focus_area"`
}

// ProfileFor extracts the chat personalization fields from a user.
func ProfileFor(u User) Profile {
	return Profile{
		Name:          u.DisplayName(),
		Pronouns:      u.Pronouns,
		IdentityGoals: u.IdentityGoals,
		FocusArea:     u.FocusArea,
	}
}

// LoginResult is the login response. User fields arrive at the top level
// alongside the token.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	ScreenName  string `json:"screen_name"`
}

// Conversation is the active-conversation snapshot fetched at startup.
// SessionID is empty when no session is open.
type Conversation struct {
	Messages  messageList `json:"messages"`
	SessionID string      `json:"sessionId"`
}

// ChatRequest is the payload for sending one chat message.
type ChatRequest struct {
	Message   string  `json:"message"`
	UserID    string  `json:"userId"`
	Profile   Profile `json:"profile"`
	SessionID string  `json:"sessionId,omitempty"`
}

// ChatResponse is the assistant's reply. SessionID is populated when the send
// minted a new session.
type ChatResponse struct {
	Response  string   `json:"response"`
	SessionID string   `json:"sessionId"`
	Sentiment *float64 `json:"sentiment"`
	Time      string   `json:"time"`
}

// SessionSummary is the wrap-up the backend generates when a session ends.
type SessionSummary struct {
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Mood      string `json:"mood"`
	Date      string `json:"date"`
}

// EndSessionResult is the end-session response. Summary may be nil; older
// backend versions only return the message and id.
type EndSessionResult struct {
	Message   string          `json:"message"`
	SessionID string          `json:"session_id"`
	Summary   *SessionSummary `json:"summary,omitempty"`
}

// Analytics is the dashboard headline data.
type Analytics struct {
	TotalSessions int               `json:"totalSessions"`
	AverageMood   *float64          `json:"averageMood"`
	Streak        int               `json:"streak"`
	TopicsCount   int               `json:"topicsCount"`
	Insights      map[string]string `json:"insights"`
}

// MoodPoint is one entry of the mood-over-time series.
type MoodPoint struct {
	Date  string `json:"date"`
	Value *int   `json:"value"`
}

// ChatSummary is one per-session summary card for the dashboard.
type ChatSummary struct {
	SessionID string   `json:"session_id"`
	Title     string   `json:"title"`
	Summary   string   `json:"summary"`
	Mood      string   `json:"mood,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Date      string   `json:"date"`
}

// UnmarshalJSON tolerates tags arriving either as a JSON array or as a
// JSON-encoded string (the backend stores them as a serialized string column).
func (c *ChatSummary) UnmarshalJSON(data []byte) error {
	type alias ChatSummary
	aux := struct {
		*alias
		Tags json.RawMessage `json:"tags"`
	}{alias: (*alias)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Tags) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(aux.Tags, &tags); err == nil {
		c.Tags = tags
		return nil
	}
	var encoded string
	if err := json.Unmarshal(aux.Tags, &encoded); err == nil {
		if json.Unmarshal([]byte(encoded), &tags) == nil {
			c.Tags = tags
		}
	}
	return nil
}

// ProfileUpdate is the payload for PUT /api/profile.
type ProfileUpdate struct {
	UserID     string   `json:"user_id"`
	ScreenName string   `json:"screen_name"`
	Pronouns   string   `json:"pronouns"`
	Goals      string   `json:"goals"`
	FocusAreas []string `json:"focus_areas"`
}

// Feedback is the payload for POST /api/feedback.
type Feedback struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id,omitempty"`
	Rating    int    `json:"rating"`
	Message   string `json:"feedback"`
	Category  string `json:"category"`
}

// Health is the backend health probe response.
type Health struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}
