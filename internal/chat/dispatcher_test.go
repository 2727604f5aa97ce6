package chat

import (
	"context"
	"testing"

	"github.com/Salman1205/M-bot/internal/api"
	apperrors "github.com/Salman1205/M-bot/internal/errors"
)

func TestSendEmptyTextIsNoOp(t *testing.T) {
	h := newHarness(t)

	for _, text := range []string{"", "   ", "\n\t "} {
		outcome, err := h.dispatcher.Send(context.Background(), text)
		if err != nil {
			t.Errorf("Send(%q): %v", text, err)
		}
		if outcome != nil {
			t.Errorf("Send(%q) produced an outcome", text)
		}
	}
	if len(h.backend.sendCalls) != 0 {
		t.Errorf("send calls = %d, want 0", len(h.backend.sendCalls))
	}
	if h.store.Len() != 0 {
		t.Errorf("transcript len = %d, want 0", h.store.Len())
	}
	if h.dispatcher.Pending() {
		t.Error("Pending should be false after no-op sends")
	}
}

func TestSendFromHistoricalRejected(t *testing.T) {
	h := newHarness(t)
	h.backend.transcripts["old"] = transcript("old", 2)
	if err := h.selector.SelectSession(context.Background(), "old"); err != nil {
		t.Fatal(err)
	}

	_, err := h.dispatcher.Send(context.Background(), "hello?")
	if !apperrors.Is(err, apperrors.KindValidation) {
		t.Errorf("expected KindValidation, got %v", err)
	}
	if len(h.backend.sendCalls) != 0 {
		t.Errorf("send calls = %d, want 0", len(h.backend.sendCalls))
	}
	if h.store.Len() != 2 {
		t.Errorf("transcript len = %d, want untouched 2", h.store.Len())
	}
}

func TestSendOptimisticAppendPrecedesNetwork(t *testing.T) {
	h := newHarness(t)

	ticket, err := h.dispatcher.Begin("hi there")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if ticket == nil {
		t.Fatal("expected a ticket")
	}

	// The user message is visible and pending is set before any request.
	if len(h.backend.sendCalls) != 0 {
		t.Fatal("Begin must not touch the network")
	}
	msgs := h.store.Messages()
	if len(msgs) != 1 || msgs[0].Sender != api.SenderUser || msgs[0].Text != "hi there" {
		t.Fatalf("optimistic append missing: %+v", msgs)
	}
	if msgs[0].ID == "" || msgs[0].Timestamp == "" {
		t.Error("optimistic message needs a client id and timestamp")
	}
	if !h.dispatcher.Pending() {
		t.Error("Pending should be true after Begin")
	}

	h.dispatcher.Finish(h.dispatcher.Do(context.Background(), ticket))
	if h.dispatcher.Pending() {
		t.Error("Pending should clear after Finish")
	}
}

func TestSendInNoSessionAdoptsMintedSession(t *testing.T) {
	h := newHarness(t)
	h.backend.replySession = "s-new"
	before := h.trigger.Count()

	outcome, err := h.dispatcher.Send(context.Background(), "first words")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if outcome.NewSessionID != "s-new" {
		t.Errorf("NewSessionID = %q, want s-new", outcome.NewSessionID)
	}
	if h.selector.Mode() != ModeActive || h.selector.ActiveID() != "s-new" {
		t.Errorf("got mode=%v id=%q", h.selector.Mode(), h.selector.ActiveID())
	}
	if h.trigger.Count() != before+1 {
		t.Errorf("trigger = %d, want bumped to %d", h.trigger.Count(), before+1)
	}
	// The request itself carried no session id.
	if got := h.backend.sendCalls[0].SessionID; got != "" {
		t.Errorf("request session id = %q, want empty", got)
	}
	if got := h.backend.sendCalls[0].Profile.Name; got != "Sam" {
		t.Errorf("profile name = %q, want Sam", got)
	}
}

func TestSendInActiveSessionKeepsID(t *testing.T) {
	h := newHarness(t)
	h.selector.RestoreActive("live", nil)
	before := h.trigger.Count()

	outcome, err := h.dispatcher.Send(context.Background(), "more words")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got := h.backend.sendCalls[0].SessionID; got != "live" {
		t.Errorf("request session id = %q, want live", got)
	}
	if outcome.NewSessionID != "" {
		t.Errorf("NewSessionID = %q, want empty for an existing session", outcome.NewSessionID)
	}
	if h.trigger.Count() != before {
		t.Error("trigger must not bump for sends in an existing session")
	}
	msgs := h.store.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want user+reply", len(msgs))
	}
	if msgs[1].Sender != api.SenderAssistant || msgs[1].Text != "I hear you." {
		t.Errorf("reply = %+v", msgs[1])
	}
}

func TestSendFailureAppendsErrorReplyNoRollback(t *testing.T) {
	h := newHarness(t)
	h.selector.RestoreActive("live", nil)
	h.backend.failSend = true

	outcome, err := h.dispatcher.Send(context.Background(), "are you there?")
	if err != nil {
		t.Fatalf("Send itself should not error on a reconciled failure: %v", err)
	}
	if outcome.Err == nil {
		t.Fatal("outcome must carry the failure")
	}

	msgs := h.store.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want exactly user message + error reply", len(msgs))
	}
	if msgs[0].Sender != api.SenderUser || msgs[0].Text != "are you there?" {
		t.Errorf("optimistic message rolled back: %+v", msgs[0])
	}
	if !msgs[1].IsError || msgs[1].Sender != api.SenderAssistant {
		t.Errorf("expected error-flagged assistant reply, got %+v", msgs[1])
	}
	if h.dispatcher.Pending() {
		t.Error("Pending should clear after a failed send")
	}
	// No automatic retry.
	if len(h.backend.sendCalls) != 1 {
		t.Errorf("send calls = %d, want 1", len(h.backend.sendCalls))
	}
}

func TestProfileEditDuringSendUsesSendTimeIdentity(t *testing.T) {
	h := newHarness(t)

	ticket, err := h.dispatcher.Begin("hello")
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}

	// The profile changes while the request is in flight. Do must carry the
	// identity captured at Begin and never look back at the dispatcher.
	done := make(chan Result, 1)
	go func() {
		done <- h.dispatcher.Do(context.Background(), ticket)
	}()
	h.dispatcher.SetUser("u1", api.Profile{Name: "Samantha", Pronouns: "she/her"})
	h.dispatcher.Finish(<-done)

	if got := h.backend.sendCalls[0].Profile.Name; got != "Sam" {
		t.Errorf("request profile name = %q, want the send-time %q", got, "Sam")
	}
	if got := h.backend.sendCalls[0].UserID; got != "u1" {
		t.Errorf("request user id = %q, want u1", got)
	}

	// The next send picks up the edit.
	if _, err := h.dispatcher.Send(context.Background(), "hello again"); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got := h.backend.sendCalls[1].Profile.Name; got != "Samantha" {
		t.Errorf("request profile name = %q, want the updated %q", got, "Samantha")
	}
}

func TestLateReplyAfterNavigationDoesNotAdopt(t *testing.T) {
	h := newHarness(t)
	h.backend.replySession = "s-late"

	ticket, err := h.dispatcher.Begin("slow question")
	if err != nil {
		t.Fatal(err)
	}
	result := h.dispatcher.Do(context.Background(), ticket)

	// User navigates to a historical session before the reply lands.
	h.backend.transcripts["old"] = transcript("old", 2)
	if err := h.selector.SelectSession(context.Background(), "old"); err != nil {
		t.Fatal(err)
	}
	before := h.trigger.Count()

	outcome := h.dispatcher.Finish(result)

	if outcome.NewSessionID != "" {
		t.Errorf("NewSessionID = %q, want empty", outcome.NewSessionID)
	}
	if h.selector.Mode() != ModeHistorical || h.selector.HistoricalID() != "old" {
		t.Errorf("selection flipped: mode=%v id=%q", h.selector.Mode(), h.selector.CurrentID())
	}
	if h.trigger.Count() != before {
		t.Error("trigger must not bump for an unadopted reply")
	}
}
