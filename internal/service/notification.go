package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	notificationsPerPage     = 20
	recentNotificationsLimit = 5
	maxRecentNotifications   = 20
)

// NotificationService manages the principal's notification inbox
type NotificationService struct {
	notifications repository.NotificationRepositoryInterface
	now           func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{notifications: notifications, now: time.Now}
}

// NotificationQuery holds the inbox filters
type NotificationQuery struct {
	Status  string
	Type    string
	Page    int
	PerPage int
}

// NotificationListView is a page of notifications
type NotificationListView struct {
	Data []models.Notification `json:"data"`
	Meta PageMeta              `json:"meta"`
}

// RecentNotificationsView holds the latest notifications with the unread count
type RecentNotificationsView struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unread_count" example:"2"`
}

// List returns the principal's notifications, newest first
func (s *NotificationService) List(ctx context.Context, principal *auth.Principal, query NotificationQuery) (*NotificationListView, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	status := query.Status
	switch status {
	case "":
		status = repository.NotificationStatusAll
	case repository.NotificationStatusAll, repository.NotificationStatusUnread, repository.NotificationStatusRead:
	default:
		return nil, apperrors.NewValidationError("status", "The selected status is invalid.")
	}

	page, perPage, offset := normalizePage(query.Page, query.PerPage, notificationsPerPage)
	filter := repository.NotificationFilter{Status: status, Type: query.Type}
	items, total, err := s.notifications.List(ctx, principal.ID, filter, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return &NotificationListView{Data: items, Meta: newPageMeta(page, perPage, total)}, nil
}

// owned loads a notification and checks it belongs to the principal
func (s *NotificationService) owned(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*models.Notification, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	notification, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	if notification.UserID != principal.ID {
		return nil, apperrors.ErrForbidden
	}
	return notification, nil
}

// MarkRead marks one notification as read. An already read notification keeps its read_at.
func (s *NotificationService) MarkRead(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*models.Notification, error) {
	notification, err := s.owned(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if notification.IsRead() {
		return notification, nil
	}
	at := s.now()
	if err := s.notifications.MarkRead(ctx, id, at); err != nil {
		return nil, fmt.Errorf("failed to mark notification as read: %w", err)
	}
	notification.ReadAt = &at
	return notification, nil
}

// MarkAllRead marks every unread notification of the principal as read and returns how many changed
func (s *NotificationService) MarkAllRead(ctx context.Context, principal *auth.Principal) (int64, error) {
	if principal == nil {
		return 0, apperrors.ErrPrincipalMissing
	}
	updated, err := s.notifications.MarkAllRead(ctx, principal.ID, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return updated, nil
}

// Delete removes one notification of the principal
func (s *NotificationService) Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error {
	if _, err := s.owned(ctx, principal, id); err != nil {
		return err
	}
	if err := s.notifications.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

// DeleteRead removes every read notification of the principal
func (s *NotificationService) DeleteRead(ctx context.Context, principal *auth.Principal) (int64, error) {
	if principal == nil {
		return 0, apperrors.ErrPrincipalMissing
	}
	deleted, err := s.notifications.DeleteRead(ctx, principal.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete read notifications: %w", err)
	}
	return deleted, nil
}

// UnreadCount returns the number of unread notifications of the principal
func (s *NotificationService) UnreadCount(ctx context.Context, principal *auth.Principal) (int64, error) {
	if principal == nil {
		return 0, apperrors.ErrPrincipalMissing
	}
	count, err := s.notifications.CountUnread(ctx, principal.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// Recent returns the latest notifications of the principal. limit defaults to 5 and is capped at 20.
func (s *NotificationService) Recent(ctx context.Context, principal *auth.Principal, limit int) (*RecentNotificationsView, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	if limit < 1 {
		limit = recentNotificationsLimit
	}
	if limit > maxRecentNotifications {
		limit = maxRecentNotifications
	}
	items, err := s.notifications.GetRecent(ctx, principal.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent notifications: %w", err)
	}
	unread, err := s.notifications.CountUnread(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return &RecentNotificationsView{Notifications: items, UnreadCount: unread}, nil
}
