package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNotificationStoreListNewestFirstAndSkipsExpired(t *testing.T) {
	store := NewNotificationStore()
	userId := uuid.New()
	now := time.Now()

	store.Add(&Notification{
		UserID:    userId,
		Title:     "old",
		Message:   "m",
		CreatedAt: now.Add(-2 * time.Hour),
	})
	store.Add(&Notification{
		UserID:    userId,
		Title:     "new",
		Message:   "m",
		CreatedAt: now,
	})
	store.Add(&Notification{
		UserID:    userId,
		Title:     "expired",
		Message:   "m",
		CreatedAt: now.Add(-time.Hour),
		ExpiresAt: now.Add(-time.Minute),
	})

	list := store.List(userId)
	if len(list) != 2 {
		t.Fatalf("got %d notifications, want 2", len(list))
	}
	if list[0].Title != "new" || list[1].Title != "old" {
		t.Errorf("wrong order: %s, %s", list[0].Title, list[1].Title)
	}
}

func TestNotificationStoreDefaults(t *testing.T) {
	store := NewNotificationStore()
	userId := uuid.New()

	n := store.Add(&Notification{UserID: userId, Title: "t", Message: "m"})
	if n.ID == uuid.Nil {
		t.Error("id was not assigned")
	}
	if n.Type != NotifyInfo {
		t.Errorf("type = %q, want %q", n.Type, NotifyInfo)
	}
	if n.Priority != PriorityNormal {
		t.Errorf("priority = %q, want %q", n.Priority, PriorityNormal)
	}
	if n.CreatedAt.IsZero() {
		t.Error("created_at was not stamped")
	}
}

func TestNotificationStoreMarkReadAndClear(t *testing.T) {
	store := NewNotificationStore()
	userId := uuid.New()
	other := uuid.New()

	n := store.Add(&Notification{UserID: userId, Title: "t", Message: "m"})

	if !store.MarkRead(userId, n.ID) {
		t.Error("MarkRead failed for existing notification")
	}
	if store.MarkRead(other, n.ID) {
		t.Error("MarkRead succeeded for the wrong user")
	}
	if !store.List(userId)[0].Read {
		t.Error("notification not marked read")
	}

	store.ClearUser(userId)
	if len(store.List(userId)) != 0 {
		t.Error("ClearUser left notifications behind")
	}
}

func TestNotificationStoreSweepEvictsExpired(t *testing.T) {
	store := NewNotificationStore()
	userId := uuid.New()
	now := time.Now()

	store.Add(&Notification{UserID: userId, Title: "keep", Message: "m"})
	store.Add(&Notification{
		UserID:    userId,
		Title:     "drop",
		Message:   "m",
		ExpiresAt: now.Add(-time.Second),
	})

	store.sweep(now)

	list := store.List(userId)
	if len(list) != 1 || list[0].Title != "keep" {
		t.Errorf("sweep kept the wrong rows: %d entries", len(list))
	}
}
