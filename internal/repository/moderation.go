package repository

import (
	"context"
	"time"

	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModerationRepository handles database operations for warnings, moderation actions and bans
type ModerationRepository struct {
	db *gorm.DB
}

// NewModerationRepository creates a new moderation repository
func NewModerationRepository(db *gorm.DB) *ModerationRepository {
	return &ModerationRepository{db: db}
}

// CreateWarning creates a new warning
func (r *ModerationRepository) CreateWarning(ctx context.Context, warning *models.ForumWarning) error {
	return r.db.WithContext(ctx).Create(warning).Error
}

// GetWarningByID retrieves a warning by ID
func (r *ModerationRepository) GetWarningByID(ctx context.Context, id uuid.UUID) (*models.ForumWarning, error) {
	var warning models.ForumWarning
	err := r.db.WithContext(ctx).First(&warning, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &warning, nil
}

// GetWarningsByUser retrieves the user's warnings newest first
func (r *ModerationRepository) GetWarningsByUser(ctx context.Context, userID uuid.UUID) ([]models.ForumWarning, error) {
	var warnings []models.ForumWarning
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&warnings).Error
	return warnings, err
}

// AcknowledgeWarning moves a pending warning to acknowledged. Already acknowledged warnings are left untouched.
func (r *ModerationRepository) AcknowledgeWarning(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&models.ForumWarning{}).
		Where("id = ? AND status = ?", id, models.WarningStatusPending).
		Updates(map[string]interface{}{
			"status":          models.WarningStatusAcknowledged,
			"acknowledged_at": at,
		}).Error
}

// CreateAction records a moderation action
func (r *ModerationRepository) CreateAction(ctx context.Context, action *models.ModerationAction) error {
	return r.db.WithContext(ctx).Create(action).Error
}

// GetActionsByTarget retrieves moderation actions taken on the target, newest first
func (r *ModerationRepository) GetActionsByTarget(ctx context.Context, target models.ModerationTarget) ([]models.ModerationAction, error) {
	var actions []models.ModerationAction
	err := r.db.WithContext(ctx).
		Where("moderatable_type = ? AND moderatable_id = ?", target.Kind, target.ID).
		Order("created_at DESC").
		Find(&actions).Error
	return actions, err
}

// GetActionsAgainstUser retrieves moderation actions targeting the user, newest first
func (r *ModerationRepository) GetActionsAgainstUser(ctx context.Context, userID uuid.UUID) ([]models.ModerationAction, error) {
	var actions []models.ModerationAction
	err := r.db.WithContext(ctx).
		Where("target_user_id = ?", userID).
		Order("created_at DESC").
		Find(&actions).Error
	return actions, err
}

// CreateBan creates a new ban
func (r *ModerationRepository) CreateBan(ctx context.Context, ban *models.ForumBan) error {
	return r.db.WithContext(ctx).Create(ban).Error
}

// FindActiveBan retrieves an unrevoked, unexpired ban of the user that is either global
// or scoped to forumID. A nil forumID only matches global bans.
func (r *ModerationRepository) FindActiveBan(ctx context.Context, userID uuid.UUID, forumID *uuid.UUID, now time.Time) (*models.ForumBan, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Where("(expires_at IS NULL OR expires_at > ?)", now)
	if forumID != nil {
		query = query.Where("(forum_id IS NULL OR forum_id = ?)", *forumID)
	} else {
		query = query.Where("forum_id IS NULL")
	}

	var ban models.ForumBan
	if err := query.Order("created_at DESC").First(&ban).Error; err != nil {
		return nil, err
	}
	return &ban, nil
}
