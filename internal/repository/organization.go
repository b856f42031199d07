package repository

import (
	"context"

	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations and memberships
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetBySlug retrieves an organization by slug
func (r *OrganizationRepository) GetBySlug(ctx context.Context, slug string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).First(&org, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// CountActive counts organizations whose status is active
func (r *OrganizationRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Organization{}).
		Where("status = ?", models.OrganizationStatusActive).
		Count(&count).Error
	return count, err
}

// AddMember creates a membership row
func (r *OrganizationRepository) AddMember(ctx context.Context, member *models.OrganizationMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// activeMemberships scopes a query on organizations to the user's active memberships
func (r *OrganizationRepository) activeMemberships(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Organization{}).
		Joins("JOIN organization_members ON organization_members.organization_id = organizations.id").
		Where("organization_members.user_id = ? AND organizations.status = ?", userID, models.OrganizationStatusActive)
}

// GetActiveByUser retrieves the user's active organizations, newest membership first
func (r *OrganizationRepository) GetActiveByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Organization, error) {
	var orgs []models.Organization
	query := r.activeMemberships(ctx, userID).Order("organization_members.joined_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&orgs).Error
	return orgs, err
}

// GetActiveIDsByUser retrieves the IDs of the user's active organizations
func (r *OrganizationRepository) GetActiveIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.activeMemberships(ctx, userID).Pluck("organizations.id", &ids).Error
	return ids, err
}

// CountActiveByUser counts the user's active organizations
func (r *OrganizationRepository) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.activeMemberships(ctx, userID).Count(&count).Error
	return count, err
}
