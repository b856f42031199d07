package repository

import (
	"context"

	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageRepository handles database operations for CMS pages and their sections
type PageRepository struct {
	db *gorm.DB
}

// NewPageRepository creates a new page repository
func NewPageRepository(db *gorm.DB) *PageRepository {
	return &PageRepository{db: db}
}

// Create creates a page together with any sections attached to it
func (r *PageRepository) Create(ctx context.Context, page *models.Page) error {
	return r.db.WithContext(ctx).Create(page).Error
}

// GetPublishedBySlug retrieves a published page by slug
func (r *PageRepository) GetPublishedBySlug(ctx context.Context, slug string) (*models.Page, error) {
	var page models.Page
	err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, models.PageStatusPublished).
		First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetActiveSections retrieves the active sections of a page ordered by position
func (r *PageRepository) GetActiveSections(ctx context.Context, pageID uuid.UUID) ([]models.PageSection, error) {
	var sections []models.PageSection
	err := r.db.WithContext(ctx).
		Where("page_id = ? AND is_active = ?", pageID, true).
		Order("position ASC").
		Find(&sections).Error
	return sections, err
}
