package chat

import (
	"context"
	"testing"

	"github.com/Salman1205/M-bot/internal/api"
)

func TestCacheFirstLoadFailureStaysEmpty(t *testing.T) {
	backend := newFakeBackend()
	backend.failSessions = true
	trigger := &RefreshTrigger{}
	cache := NewListCache(backend, "u1")
	trigger.Bump()

	if err := cache.Refresh(context.Background(), trigger); err == nil {
		t.Fatal("expected error")
	}
	if len(cache.Sessions()) != 0 {
		t.Errorf("sessions = %d, want 0", len(cache.Sessions()))
	}
	if cache.Loaded() {
		t.Error("Loaded should stay false until a refresh succeeds")
	}
}

func TestCacheKeepsLastGoodOnFailure(t *testing.T) {
	backend := newFakeBackend()
	backend.sessions = []api.Session{
		{ID: "s1", Status: api.SessionActive},
		{ID: "s2", Status: api.SessionCompleted, Title: "Old chat"},
	}
	trigger := &RefreshTrigger{}
	cache := NewListCache(backend, "u1")

	trigger.Bump()
	if err := cache.Refresh(context.Background(), trigger); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(cache.Sessions()) != 2 {
		t.Fatalf("sessions = %d, want 2", len(cache.Sessions()))
	}

	backend.failSessions = true
	trigger.Bump()
	if err := cache.Refresh(context.Background(), trigger); err == nil {
		t.Fatal("expected error")
	}

	// Stale data beats an empty sidebar.
	if len(cache.Sessions()) != 2 {
		t.Errorf("sessions = %d, want previous 2 kept", len(cache.Sessions()))
	}
	if !cache.Loaded() {
		t.Error("Loaded should remain true")
	}
}

func TestCacheNeedsRefreshTracksTrigger(t *testing.T) {
	backend := newFakeBackend()
	trigger := &RefreshTrigger{}
	cache := NewListCache(backend, "u1")

	if cache.NeedsRefresh(trigger) {
		t.Error("fresh cache with untouched trigger should not need refresh")
	}

	trigger.Bump()
	if !cache.NeedsRefresh(trigger) {
		t.Error("bumped trigger should demand a refresh")
	}

	if err := cache.Refresh(context.Background(), trigger); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if cache.NeedsRefresh(trigger) {
		t.Error("refresh should catch up to the trigger")
	}

	// A failed refresh still records the count; only the next bump re-arms.
	backend.failSessions = true
	trigger.Bump()
	cache.Refresh(context.Background(), trigger)
	if cache.NeedsRefresh(trigger) {
		t.Error("failed refresh should not spin in a retry loop")
	}
	trigger.Bump()
	if !cache.NeedsRefresh(trigger) {
		t.Error("next bump should re-arm the refresh")
	}
}
