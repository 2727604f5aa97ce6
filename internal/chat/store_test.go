package chat

import (
	"context"
	"testing"

	"github.com/Salman1205/M-bot/internal/api"
)

func TestStoreLoadPreservesOrder(t *testing.T) {
	backend := newFakeBackend()
	backend.transcripts["s1"] = transcript("s1", 5)
	store := NewMessageStore(backend)

	if err := store.Load(context.Background(), "s1"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	msgs := store.Messages()
	if len(msgs) != 5 {
		t.Fatalf("len = %d, want 5", len(msgs))
	}
	for i, m := range msgs {
		if want := transcript("s1", 5)[i].ID; m.ID != want {
			t.Errorf("position %d: got %q, want %q", i, m.ID, want)
		}
	}
}

func TestStoreLoadFailureEmptiesTranscript(t *testing.T) {
	backend := newFakeBackend()
	backend.transcripts["s1"] = transcript("s1", 3)
	store := NewMessageStore(backend)

	if err := store.Load(context.Background(), "s1"); err != nil {
		t.Fatal(err)
	}
	backend.failMessages = true
	if err := store.Load(context.Background(), "s2"); err == nil {
		t.Fatal("expected error")
	}
	if store.Len() != 0 {
		t.Errorf("len = %d, want 0 after failed load", store.Len())
	}
}

func TestStoreAppendsKeepInsertionOrder(t *testing.T) {
	store := NewMessageStore(newFakeBackend())

	user := store.AppendLocal("hello")
	store.AppendConfirmed(api.Message{ID: "r1", Sender: api.SenderAssistant, Text: "hi"})
	store.AppendLocal("how are you")

	msgs := store.Messages()
	if len(msgs) != 3 {
		t.Fatalf("len = %d, want 3", len(msgs))
	}
	if msgs[0].ID != user.ID {
		t.Errorf("first message = %q, want the optimistic one %q", msgs[0].ID, user.ID)
	}
	if msgs[1].ID != "r1" || msgs[2].Text != "how are you" {
		t.Errorf("order broken: %+v", msgs)
	}
}

func TestStoreMessagesReturnsCopy(t *testing.T) {
	store := NewMessageStore(newFakeBackend())
	store.AppendLocal("original")

	snapshot := store.Messages()
	snapshot[0].Text = "mutated"

	if got := store.Messages()[0].Text; got != "original" {
		t.Errorf("internal state mutated through snapshot: %q", got)
	}
}
