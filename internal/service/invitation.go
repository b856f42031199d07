package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/logger"
	"community-portal-backend/internal/repository"
	"community-portal-backend/internal/telemetry"

	"gorm.io/gorm"
)

// Invitation actions
const (
	invitationActionAccept = "accept"
	invitationActionReject = "reject"
)

// InvitationService lets invitees inspect and answer organization invitations
type InvitationService struct {
	invitations repository.InvitationRepositoryInterface
	now         func() time.Time
}

// NewInvitationService creates a new invitation service
func NewInvitationService(invitations repository.InvitationRepositoryInterface) *InvitationService {
	return &InvitationService{invitations: invitations, now: time.Now}
}

// InvitationView is the invitation landing view
type InvitationView struct {
	Invitation   *models.OrganizationInvitation `json:"invitation"`
	Organization *models.Organization           `json:"organization"`
	CanRespond   bool                           `json:"can_respond"`
	IsExpired    bool                           `json:"is_expired"`
}

func (s *InvitationService) load(ctx context.Context, token string) (*models.OrganizationInvitation, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.ErrInvitationNotFound
	}
	invitation, err := s.invitations.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return invitation, nil
}

// Show returns the invitation identified by token
func (s *InvitationService) Show(ctx context.Context, token string) (*InvitationView, error) {
	invitation, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}
	now := s.now()
	return &InvitationView{
		Invitation:   invitation,
		Organization: invitation.Organization,
		CanRespond:   invitation.CanRespond(now),
		IsExpired:    invitation.IsExpired(now),
	}, nil
}

// precheck returns a failed result when the principal cannot answer the invitation
func (s *InvitationService) precheck(ctx context.Context, principal *auth.Principal, invitation *models.OrganizationInvitation, now time.Time) (*ActionResult, error) {
	if invitation.Status != models.InvitationStatusPending {
		return failed(ReasonNotPending, fmt.Sprintf("This invitation has already been %s.", invitation.Status)), nil
	}
	if invitation.IsExpired(now) {
		if err := s.invitations.MarkExpired(ctx, invitation.ID); err != nil {
			return nil, fmt.Errorf("failed to expire invitation: %w", err)
		}
		return failed(ReasonExpired, "This invitation has expired."), nil
	}
	if !strings.EqualFold(strings.TrimSpace(invitation.Email), strings.TrimSpace(principal.Email)) {
		return failed(ReasonEmailMismatch, "This invitation was sent to a different email address."), nil
	}
	return nil, nil
}

func (s *InvitationService) respond(ctx context.Context, principal *auth.Principal, token, action string) (*ActionResult, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	invitation, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result, err := s.precheck(ctx, principal, invitation, now)
	if err != nil {
		return nil, err
	}
	if result != nil {
		telemetry.InvitationResponsesTotal.WithLabelValues(action, result.Reason).Inc()
		return result, nil
	}

	if action == invitationActionAccept {
		err = s.invitations.Accept(ctx, invitation.ID, principal.ID, now)
	} else {
		err = s.invitations.Reject(ctx, invitation.ID, now)
	}
	if err != nil {
		if errors.Is(err, repository.ErrInvitationStateChanged) {
			telemetry.InvitationResponsesTotal.WithLabelValues(action, ReasonNotPending).Inc()
			return failed(ReasonNotPending, "This invitation is no longer pending."), nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to %s invitation: %w", action, err)
	}

	telemetry.InvitationResponsesTotal.WithLabelValues(action, "success").Inc()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"invitation_id":   invitation.ID,
		"organization_id": invitation.OrganizationID,
		"action":          action,
	}).Info("invitation answered")

	invitation.RespondedAt = &now
	if action == invitationActionAccept {
		invitation.Status = models.InvitationStatusAccepted
		name := "the organization"
		if invitation.Organization != nil {
			name = invitation.Organization.Name
		}
		return succeeded(fmt.Sprintf("You have joined %s.", name), invitation), nil
	}
	invitation.Status = models.InvitationStatusRejected
	return succeeded("You have declined the invitation.", invitation), nil
}

// Accept accepts a pending invitation addressed to the principal and joins the organization
func (s *InvitationService) Accept(ctx context.Context, principal *auth.Principal, token string) (*ActionResult, error) {
	return s.respond(ctx, principal, token, invitationActionAccept)
}

// Reject declines a pending invitation addressed to the principal
func (s *InvitationService) Reject(ctx context.Context, principal *auth.Principal, token string) (*ActionResult, error) {
	return s.respond(ctx, principal, token, invitationActionReject)
}

// ListMine returns the invitations addressed to the principal's email. An empty status matches all.
func (s *InvitationService) ListMine(ctx context.Context, principal *auth.Principal, status string) ([]models.OrganizationInvitation, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	switch models.InvitationStatus(status) {
	case "", models.InvitationStatusPending, models.InvitationStatusAccepted,
		models.InvitationStatusRejected, models.InvitationStatusExpired:
	default:
		return nil, apperrors.NewValidationError("status", "The selected status is invalid.")
	}
	invitations, err := s.invitations.GetByEmail(ctx, principal.Email, models.InvitationStatus(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invitations, nil
}

// PendingCount counts the pending, unexpired invitations addressed to the principal
func (s *InvitationService) PendingCount(ctx context.Context, principal *auth.Principal) (int64, error) {
	if principal == nil {
		return 0, apperrors.ErrPrincipalMissing
	}
	count, err := s.invitations.CountPending(ctx, principal.Email, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to count invitations: %w", err)
	}
	return count, nil
}
