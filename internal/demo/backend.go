// Package demo provides an in-memory backend so the client can be explored
// without a server. Replies are canned and deterministic; nothing persists
// past exit.
package demo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/logger"
)

// replies cycle in order, so a demo run always plays out the same way.
var replies = []string{
	"Thanks for sharing that. What does a good day look like for you right now?",
	"That makes sense. When you picture the person you want to be, what stands out first?",
	"It sounds like you already know what matters here. What small step feels doable this week?",
	"I hear you. Growth is rarely a straight line; showing up is the part that counts.",
	"Let's hold onto that. How did it feel to say it out loud?",
}

// Backend is a scripted stand-in for the HTTP client. It satisfies the same
// interface the app layer consumes.
type Backend struct {
	mu       sync.Mutex
	user     api.User
	sessions []api.Session
	messages map[string][]api.Message
	liveID   string
	replyIdx int
}

// New builds a demo backend seeded with a couple of finished conversations.
func New() *Backend {
	b := &Backend{
		user: api.User{
			UserID:     "demo-user",
			Email:      "demo@example.com",
			ScreenName: "Demo",
			Pronouns:   "they/them",
			FocusArea:  "confidence",
		},
		messages: map[string][]api.Message{},
	}
	b.seed()
	return b
}

func (b *Backend) seed() {
	day := 24 * time.Hour
	b.addCompleted("Finding my footing", "reflective", 3*day,
		"I keep second-guessing myself at work.",
		"Second-guessing often means you care about getting it right. What would you tell a friend in your position?",
		"I'd tell them they're doing fine.",
		"Worth sitting with that. You extend others a patience you deserve too.")
	b.addCompleted("A better morning", "hopeful", 1*day,
		"I want my mornings to feel less rushed.",
		"What is the first thing you reach for when you wake up?")
}

func (b *Backend) addCompleted(title, mood string, age time.Duration, texts ...string) {
	id := uuid.New().String()
	started := time.Now().Add(-age)
	var msgs []api.Message
	for i, text := range texts {
		sender := api.SenderUser
		if i%2 == 1 {
			sender = api.SenderAssistant
		}
		msgs = append(msgs, api.Message{
			ID:        uuid.New().String(),
			Sender:    sender,
			Text:      text,
			Timestamp: started.Add(time.Duration(i) * time.Minute).Format(time.RFC3339),
		})
	}
	b.messages[id] = msgs
	b.sessions = append(b.sessions, api.Session{
		ID:        id,
		UserID:    b.user.UserID,
		Status:    api.SessionCompleted,
		Title:     title,
		Mood:      mood,
		StartedAt: started.Format(time.RFC3339),
		EndedAt:   started.Add(time.Duration(len(texts)) * time.Minute).Format(time.RFC3339),
	})
}

func (b *Backend) CurrentUser(ctx context.Context) (*api.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	user := b.user
	return &user, nil
}

func (b *Backend) Conversation(ctx context.Context, userID string) (*api.Conversation, error) {
	// A demo run always starts fresh.
	return &api.Conversation{}, nil
}

func (b *Backend) Sessions(ctx context.Context, userID string) ([]api.Session, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]api.Session, len(b.sessions))
	copy(out, b.sessions)
	// Newest first, matching the server
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (b *Backend) SessionMessages(ctx context.Context, sessionID string) ([]api.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	msgs, ok := b.messages[sessionID]
	if !ok {
		return nil, fmt.Errorf("unknown session %s", sessionID)
	}
	out := make([]api.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}

func (b *Backend) SendChat(ctx context.Context, req api.ChatRequest) (*api.ChatResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
		b.liveID = sessionID
		b.sessions = append(b.sessions, api.Session{
			ID:        sessionID,
			UserID:    b.user.UserID,
			Status:    api.SessionActive,
			StartedAt: time.Now().Format(time.RFC3339),
		})
		logger.Debug("Demo: minted session %s", sessionID)
	}

	reply := replies[b.replyIdx%len(replies)]
	b.replyIdx++

	now := time.Now().Format(time.RFC3339)
	b.messages[sessionID] = append(b.messages[sessionID],
		api.Message{ID: uuid.New().String(), Sender: api.SenderUser, Text: req.Message, Timestamp: now},
		api.Message{ID: uuid.New().String(), Sender: api.SenderAssistant, Text: reply, Timestamp: now},
	)

	return &api.ChatResponse{Response: reply, SessionID: sessionID, Time: now}, nil
}

func (b *Backend) EndSession(ctx context.Context, sessionID string) (*api.EndSessionResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.sessions {
		if b.sessions[i].ID == sessionID {
			b.sessions[i].Status = api.SessionCompleted
			b.sessions[i].EndedAt = time.Now().Format(time.RFC3339)
			if b.sessions[i].Title == "" {
				b.sessions[i].Title = "A demo conversation"
			}
			if b.liveID == sessionID {
				b.liveID = ""
			}
			return &api.EndSessionResult{
				Message:   "Session ended",
				SessionID: sessionID,
				Summary: &api.SessionSummary{
					SessionID: sessionID,
					Title:     b.sessions[i].Title,
					Summary:   "You explored what you want and named a small next step.",
					Mood:      "hopeful",
					Date:      time.Now().Format("2006-01-02"),
				},
			}, nil
		}
	}
	return nil, fmt.Errorf("unknown session %s", sessionID)
}

func (b *Backend) RecentSession(ctx context.Context, userID string) (*api.ChatSummary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.sessions) - 1; i >= 0; i-- {
		s := b.sessions[i]
		if s.Status == api.SessionCompleted {
			return &api.ChatSummary{
				SessionID: s.ID,
				Title:     s.Title,
				Summary:   s.Summary,
				Mood:      s.Mood,
				Date:      s.StartedAt,
			}, nil
		}
	}
	return nil, fmt.Errorf("no completed sessions")
}

func (b *Backend) RenameSession(ctx context.Context, sessionID, title string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.sessions {
		if b.sessions[i].ID == sessionID {
			b.sessions[i].Title = title
			return nil
		}
	}
	return fmt.Errorf("unknown session %s", sessionID)
}

func (b *Backend) Analytics(ctx context.Context, userID string) (*api.Analytics, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	avg := 3.8
	return &api.Analytics{
		TotalSessions: len(b.sessions),
		AverageMood:   &avg,
		Streak:        2,
		TopicsCount:   3,
		Insights: map[string]string{
			"pattern": "You open up more in your evening sessions.",
		},
	}, nil
}

func (b *Backend) MoodData(ctx context.Context, userID string) ([]api.MoodPoint, error) {
	points := make([]api.MoodPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		v := 3 + (i % 3)
		points = append(points, api.MoodPoint{
			Date:  time.Now().AddDate(0, 0, -i).Format("2006-01-02"),
			Value: &v,
		})
	}
	return points, nil
}

func (b *Backend) ChatSummaries(ctx context.Context, userID string) ([]api.ChatSummary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []api.ChatSummary
	for _, s := range b.sessions {
		if s.Status != api.SessionCompleted {
			continue
		}
		out = append(out, api.ChatSummary{
			SessionID: s.ID,
			Title:     s.Title,
			Summary:   s.Summary,
			Mood:      s.Mood,
			Date:      s.StartedAt,
		})
	}
	return out, nil
}

func (b *Backend) UpdateProfile(ctx context.Context, update api.ProfileUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.user.ScreenName = update.ScreenName
	b.user.Pronouns = update.Pronouns
	b.user.IdentityGoals = update.Goals
	if len(update.FocusAreas) > 0 {
		b.user.FocusArea = update.FocusAreas[0]
	}
	return nil
}

func (b *Backend) ChangeEmail(ctx context.Context, newEmail, password string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.user.Email = newEmail
	return nil
}

func (b *Backend) ChangePassword(ctx context.Context, current, next string) error {
	return nil
}

func (b *Backend) SubmitFeedback(ctx context.Context, fb api.Feedback) error {
	logger.Log("Demo: feedback received (rating %d)", fb.Rating)
	return nil
}
