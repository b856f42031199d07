package repository

import (
	"context"
	"errors"
	"time"

	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInvitationStateChanged is returned when an invitation left the pending state
// before the caller's transaction acquired its row lock.
var ErrInvitationStateChanged = errors.New("invitation is no longer pending")

// InvitationRepository handles database operations for organization invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(ctx context.Context, invitation *models.OrganizationInvitation) error {
	return r.db.WithContext(ctx).Create(invitation).Error
}

// GetByToken retrieves an invitation and its organization by token
func (r *InvitationRepository) GetByToken(ctx context.Context, token string) (*models.OrganizationInvitation, error) {
	var invitation models.OrganizationInvitation
	err := r.db.WithContext(ctx).
		Preload("Organization").
		First(&invitation, "token = ?", token).Error
	if err != nil {
		return nil, err
	}
	return &invitation, nil
}

// transition locks the invitation row and moves it from pending to status.
// The update is conditional on the pending status so two racing callers cannot both succeed.
func transition(tx *gorm.DB, id uuid.UUID, status models.InvitationStatus, at time.Time) (*models.OrganizationInvitation, error) {
	var invitation models.OrganizationInvitation
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&invitation, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if invitation.Status != models.InvitationStatusPending {
		return nil, ErrInvitationStateChanged
	}

	result := tx.Model(&models.OrganizationInvitation{}).
		Where("id = ? AND status = ?", id, models.InvitationStatusPending).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": at,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected != 1 {
		return nil, ErrInvitationStateChanged
	}
	return &invitation, nil
}

// Accept marks the invitation accepted and adds the user to the organization in one transaction.
// An existing membership is left as is.
func (r *InvitationRepository) Accept(ctx context.Context, id, userID uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		invitation, err := transition(tx, id, models.InvitationStatusAccepted, at)
		if err != nil {
			return err
		}

		role := invitation.Role
		if !role.IsValid() {
			role = models.MemberRoleMember
		}
		member := &models.OrganizationMember{
			OrganizationID: invitation.OrganizationID,
			UserID:         userID,
			Role:           role,
			JoinedAt:       at,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "organization_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).Create(member).Error
	})
}

// Reject marks the invitation rejected
func (r *InvitationRepository) Reject(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := transition(tx, id, models.InvitationStatusRejected, at)
		return err
	})
}

// MarkExpired persists the expired status of a pending invitation
func (r *InvitationRepository) MarkExpired(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.OrganizationInvitation{}).
		Where("id = ? AND status = ?", id, models.InvitationStatusPending).
		Update("status", models.InvitationStatusExpired).Error
}

// GetByEmail retrieves invitations addressed to the email, newest first. An empty status matches all.
func (r *InvitationRepository) GetByEmail(ctx context.Context, email string, status models.InvitationStatus) ([]models.OrganizationInvitation, error) {
	query := r.db.WithContext(ctx).
		Preload("Organization").
		Where("LOWER(email) = LOWER(?)", email)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var invitations []models.OrganizationInvitation
	err := query.Order("created_at DESC").Find(&invitations).Error
	return invitations, err
}

// CountPending counts pending, unexpired invitations addressed to the email
func (r *InvitationRepository) CountPending(ctx context.Context, email string, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OrganizationInvitation{}).
		Where("LOWER(email) = LOWER(?) AND status = ? AND expires_at > ?", email, models.InvitationStatusPending, now).
		Count(&count).Error
	return count, err
}
