package models

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifyAlert   NotificationType = "alert"
	NotifyPromo   NotificationType = "promo"
	NotifyWeather NotificationType = "weather"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)

// Notification lives only for the session; nothing here is persisted.
type Notification struct {
	ID         uuid.UUID            `json:"id"`
	UserID     uuid.UUID            `json:"user_id"`
	Title      string               `json:"title" validate:"required"`
	Message    string               `json:"message" validate:"required"`
	Type       NotificationType     `json:"type"`
	Priority   NotificationPriority `json:"priority"`
	ActionLink string               `json:"action_link,omitempty"`
	Read       bool                 `json:"read"`
	ExpiresAt  time.Time            `json:"expires_at"`
	CreatedAt  time.Time            `json:"created_at"`
}

// NotificationStore keeps per-user notifications in memory and sweeps
// expired entries on a timer. Mutation is single-writer per call site, the
// mutex guards the sweep goroutine.
type NotificationStore struct {
	mu    sync.RWMutex
	byUID map[uuid.UUID][]*Notification
	stop  chan struct{}
}

func NewNotificationStore() *NotificationStore {
	return &NotificationStore{
		byUID: make(map[uuid.UUID][]*Notification),
		stop:  make(chan struct{}),
	}
}

// StartSweeper evicts expired notifications until ctx is done or Close is
// called.
func (ns *NotificationStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ns.sweep(time.Now())
			case <-ctx.Done():
				return
			case <-ns.stop:
				return
			}
		}
	}()
}

func (ns *NotificationStore) Close() {
	close(ns.stop)
}

func (ns *NotificationStore) sweep(now time.Time) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	for uid, list := range ns.byUID {
		kept := list[:0]
		for _, n := range list {
			if n.ExpiresAt.IsZero() || n.ExpiresAt.After(now) {
				kept = append(kept, n)
			}
		}
		if len(kept) == 0 {
			delete(ns.byUID, uid)
		} else {
			ns.byUID[uid] = kept
		}
	}
}

func (ns *NotificationStore) Add(n *Notification) *Notification {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if n.Type == "" {
		n.Type = NotifyInfo
	}
	if n.Priority == "" {
		n.Priority = PriorityNormal
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.byUID[n.UserID] = append(ns.byUID[n.UserID], n)
	return n
}

// List returns a user's unexpired notifications, newest first.
func (ns *NotificationStore) List(userId uuid.UUID) []*Notification {
	now := time.Now()

	ns.mu.RLock()
	defer ns.mu.RUnlock()

	list := ns.byUID[userId]
	out := make([]*Notification, 0, len(list))
	for _, n := range list {
		if n.ExpiresAt.IsZero() || n.ExpiresAt.After(now) {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// MarkRead flags one notification as read; returns false if not found.
func (ns *NotificationStore) MarkRead(userId, notificationId uuid.UUID) bool {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	for _, n := range ns.byUID[userId] {
		if n.ID == notificationId {
			n.Read = true
			return true
		}
	}
	return false
}

func (ns *NotificationStore) ClearUser(userId uuid.UUID) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	delete(ns.byUID, userId)
}
