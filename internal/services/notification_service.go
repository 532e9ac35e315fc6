package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yatra-labs/yatra-server/internal/models"
)

const defaultNotificationTTL = 24 * time.Hour

type NotificationService struct {
	store *models.NotificationStore
}

func NewNotificationService(store *models.NotificationStore) *NotificationService {
	return &NotificationService{store: store}
}

func (ns *NotificationService) Notify(userId uuid.UUID, n *models.Notification) (*models.Notification, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}
	if err := models.Validate.Struct(n); err != nil {
		return nil, fmt.Errorf("invalid notification: %v", err)
	}

	n.UserID = userId
	if n.ExpiresAt.IsZero() {
		n.ExpiresAt = time.Now().Add(defaultNotificationTTL)
	}

	return ns.store.Add(n), nil
}

func (ns *NotificationService) List(userId uuid.UUID) ([]*models.Notification, error) {
	if userId == uuid.Nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	return ns.store.List(userId), nil
}

func (ns *NotificationService) MarkRead(userId, notificationId uuid.UUID) error {
	if userId == uuid.Nil || notificationId == uuid.Nil {
		return fmt.Errorf("invalid ID")
	}

	if !ns.store.MarkRead(userId, notificationId) {
		return fmt.Errorf("notification not found")
	}
	return nil
}

func (ns *NotificationService) ClearUser(userId uuid.UUID) {
	ns.store.ClearUser(userId)
}
