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

// Reasons reported by CanPost and CanReply
const (
	DenialSuspended    = "Your account is suspended."
	DenialBanned       = "You are banned from posting in this forum."
	DenialForumClosed  = "This forum is closed."
	DenialThreadLocked = "This thread is locked."
	DenialThreadHidden = "This thread is not available."
)

// ModerationService answers posting permission and warning questions
type ModerationService struct {
	moderation repository.ModerationRepositoryInterface
	forums     repository.ForumRepositoryInterface
	now        func() time.Time
}

// NewModerationService creates a new moderation service
func NewModerationService(moderation repository.ModerationRepositoryInterface, forums repository.ForumRepositoryInterface) *ModerationService {
	return &ModerationService{moderation: moderation, forums: forums, now: time.Now}
}

// PostPermission is the answer to can-post
type PostPermission struct {
	CanPost bool   `json:"can_post"`
	Reason  string `json:"reason,omitempty"`
}

// ReplyPermission is the answer to can-reply
type ReplyPermission struct {
	CanReply bool   `json:"can_reply"`
	Reason   string `json:"reason,omitempty"`
}

// ModerationHistory lists the warnings and actions directed at a user
type ModerationHistory struct {
	Warnings []models.ForumWarning     `json:"warnings"`
	Actions  []models.ModerationAction `json:"actions"`
}

// MyHistory returns the warnings issued to the principal and the actions targeting them
func (s *ModerationService) MyHistory(ctx context.Context, principal *auth.Principal) (*ModerationHistory, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	warnings, err := s.moderation.GetWarningsByUser(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get warnings: %w", err)
	}
	actions, err := s.moderation.GetActionsAgainstUser(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moderation actions: %w", err)
	}
	return &ModerationHistory{Warnings: warnings, Actions: actions}, nil
}

// Warnings returns the principal's warnings, newest first
func (s *ModerationService) Warnings(ctx context.Context, principal *auth.Principal) ([]models.ForumWarning, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	warnings, err := s.moderation.GetWarningsByUser(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get warnings: %w", err)
	}
	return warnings, nil
}

// AcknowledgeWarning acknowledges a warning of the principal. Acknowledging twice is a no-op.
func (s *ModerationService) AcknowledgeWarning(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*models.ForumWarning, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	warning, err := s.moderation.GetWarningByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrWarningNotFound
		}
		return nil, fmt.Errorf("failed to get warning: %w", err)
	}
	if warning.UserID != principal.ID {
		return nil, apperrors.ErrForbidden
	}
	if warning.Status == models.WarningStatusAcknowledged {
		return warning, nil
	}

	at := s.now()
	if err := s.moderation.AcknowledgeWarning(ctx, id, at); err != nil {
		return nil, fmt.Errorf("failed to acknowledge warning: %w", err)
	}
	warning.Status = models.WarningStatusAcknowledged
	warning.AcknowledgedAt = &at
	return warning, nil
}

// activeBan reports whether the user has a ban covering forumID
func (s *ModerationService) activeBan(ctx context.Context, userID uuid.UUID, forumID uuid.UUID) (bool, error) {
	_, err := s.moderation.FindActiveBan(ctx, userID, &forumID, s.now())
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check bans: %w", err)
}

// CanPost reports whether the principal may open threads in the forum
func (s *ModerationService) CanPost(ctx context.Context, principal *auth.Principal, forumID uuid.UUID) (*PostPermission, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	forum, err := s.forums.GetForumByID(ctx, forumID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrForumNotFound
		}
		return nil, fmt.Errorf("failed to get forum: %w", err)
	}
	if principal.IsSuspended() {
		return &PostPermission{Reason: DenialSuspended}, nil
	}
	if !forum.IsActive {
		return &PostPermission{Reason: DenialForumClosed}, nil
	}
	banned, err := s.activeBan(ctx, principal.ID, forum.ID)
	if err != nil {
		return nil, err
	}
	if banned {
		return &PostPermission{Reason: DenialBanned}, nil
	}
	return &PostPermission{CanPost: true}, nil
}

// CanReply reports whether the principal may reply in the thread
func (s *ModerationService) CanReply(ctx context.Context, principal *auth.Principal, threadID uuid.UUID) (*ReplyPermission, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	thread, err := s.forums.GetThreadByID(ctx, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	if principal.IsSuspended() {
		return &ReplyPermission{Reason: DenialSuspended}, nil
	}
	if thread.Status != models.ContentStatusActive {
		return &ReplyPermission{Reason: DenialThreadHidden}, nil
	}
	if thread.IsLocked {
		return &ReplyPermission{Reason: DenialThreadLocked}, nil
	}
	banned, err := s.activeBan(ctx, principal.ID, thread.ForumID)
	if err != nil {
		return nil, err
	}
	if banned {
		return &ReplyPermission{Reason: DenialBanned}, nil
	}
	return &ReplyPermission{CanReply: true}, nil
}
