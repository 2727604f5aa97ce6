package chat

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Salman1205/M-bot/internal/api"
	apperrors "github.com/Salman1205/M-bot/internal/errors"
	"github.com/Salman1205/M-bot/internal/logger"
)

// errorReplyText is the placeholder shown in the transcript when a send
// fails. It renders distinctly so the failure is visible rather than a
// silent gap.
const errorReplyText = "I apologize, but I'm having trouble responding right now. Please try again in a moment."

// Ticket captures one in-flight send: the text, the session id, and the
// sender identity held at send time. Overlapping sends each carry their own
// ticket; replies are reconciled in whatever order they resolve. Snapshotting
// the identity here keeps Do free of dispatcher state, so a profile edit
// landing mid-send cannot race with it.
type Ticket struct {
	Text      string
	SessionID string
	UserID    string
	Profile   api.Profile
}

// Result is the network outcome of one ticket, produced off-thread and
// reconciled on the UI thread by Finish.
type Result struct {
	Ticket *Ticket
	Resp   *api.ChatResponse
	Err    error
}

// Outcome summarizes a completed send after reconciliation.
type Outcome struct {
	Reply        api.Message // confirmed reply, or the error placeholder
	NewSessionID string      // set when this send minted and adopted a session
	Err          error       // the surfaced failure, nil on success
}

// Dispatcher sends user messages and reconciles replies into the store.
// The optimistic user-message append happens before the request is issued;
// on failure the optimistic entry stays and an error-flagged placeholder is
// appended. No automatic retry: resending is the user's call.
type Dispatcher struct {
	backend  Backend
	store    *MessageStore
	selector *Selector
	trigger  *RefreshTrigger

	userID  string
	profile api.Profile

	// Cosmetic delay before the reply is shown, replacing the web client's
	// randomized typing simulation. Zero in tests.
	replyDelay time.Duration

	pending int // number of in-flight sends
}

// NewDispatcher wires a dispatcher over the shared store and selector.
func NewDispatcher(backend Backend, store *MessageStore, selector *Selector, trigger *RefreshTrigger) *Dispatcher {
	return &Dispatcher{
		backend:  backend,
		store:    store,
		selector: selector,
		trigger:  trigger,
	}
}

// SetUser sets the sender identity and personalization fields carried with
// every chat request.
func (d *Dispatcher) SetUser(userID string, profile api.Profile) {
	d.userID = userID
	d.profile = profile
}

// SetReplyDelay sets the cosmetic reply delay.
func (d *Dispatcher) SetReplyDelay(delay time.Duration) {
	d.replyDelay = delay
}

// Pending reports whether any send is in flight (drives the typing
// indicator).
func (d *Dispatcher) Pending() bool {
	return d.pending > 0
}

// Begin validates and stages a send. Empty (after trimming) text is a no-op
// and returns a nil ticket with no error; sends from a read-only view are
// rejected. On acceptance the optimistic user message is appended and the
// pending flag raised before any network activity.
func (d *Dispatcher) Begin(text string) (*Ticket, error) {
	const op = apperrors.Op("chat.Send")

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if d.selector.ReadOnly() {
		return nil, apperrors.E(op, apperrors.KindValidation, "no active session: historical sessions are read-only")
	}

	d.store.AppendLocal(text)
	d.pending++

	return &Ticket{
		Text:      text,
		SessionID: d.selector.ActiveID(),
		UserID:    d.userID,
		Profile:   d.profile,
	}, nil
}

// Do performs the network round trip for a ticket. It reads only the ticket,
// never dispatcher state, so it is safe to run off the UI thread while the
// identity or selection changes.
func (d *Dispatcher) Do(ctx context.Context, t *Ticket) Result {
	resp, err := d.backend.SendChat(ctx, api.ChatRequest{
		Message:   t.Text,
		UserID:    t.UserID,
		Profile:   t.Profile,
		SessionID: t.SessionID,
	})
	if err == nil && d.replyDelay > 0 {
		time.Sleep(d.replyDelay)
	}
	return Result{Ticket: t, Resp: resp, Err: err}
}

// Finish reconciles a result into the store on the UI thread. On success the
// confirmed reply is appended and a newly minted session id is adopted (and
// the list trigger bumped, since the new session is not yet in the cached
// list). On failure the pending flag still clears, an error-flagged reply is
// appended, and the error is handed back for a transient notification.
func (d *Dispatcher) Finish(r Result) Outcome {
	d.pending--

	if r.Err != nil {
		logger.Warn("Dispatcher: send failed: %v", r.Err)
		placeholder := api.Message{
			ID:        uuid.New().String(),
			Sender:    api.SenderAssistant,
			Text:      errorReplyText,
			Timestamp: time.Now().Format(time.RFC3339),
			IsError:   true,
		}
		d.store.AppendConfirmed(placeholder)
		return Outcome{Reply: placeholder, Err: r.Err}
	}

	reply := api.Message{
		ID:        uuid.New().String(),
		Sender:    api.SenderAssistant,
		Text:      r.Resp.Response,
		Timestamp: time.Now().Format(time.RFC3339),
		Sentiment: r.Resp.Sentiment,
	}
	d.store.AppendConfirmed(reply)

	var adopted string
	if r.Resp.SessionID != "" && r.Ticket.SessionID == "" {
		if d.selector.Adopt(r.Resp.SessionID) {
			adopted = r.Resp.SessionID
			d.trigger.Bump()
		}
	}

	return Outcome{Reply: reply, NewSessionID: adopted}
}

// Send runs the full Begin/Do/Finish cycle synchronously. The TUI splits the
// phases across the event loop; this composition serves command-line and
// test callers. A no-op send returns a nil outcome.
func (d *Dispatcher) Send(ctx context.Context, text string) (*Outcome, error) {
	ticket, err := d.Begin(text)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, nil
	}
	outcome := d.Finish(d.Do(ctx, ticket))
	return &outcome, nil
}
