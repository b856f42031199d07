package repository

import (
	"context"
	"strings"
	"time"

	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// News sort orders accepted by NewsFilter.Sort
const (
	NewsSortLatest  = "latest"
	NewsSortOldest  = "oldest"
	NewsSortPopular = "popular"
	NewsSortTitle   = "title"
)

// NewsFilter narrows a published news listing
type NewsFilter struct {
	Search          string
	OrganizationIDs []uuid.UUID
	RegionID        *uuid.UUID
	Category        string
	Featured        *bool
	Sort            string
	Now             time.Time
	Limit           int
	Offset          int

	// RestrictToOrganizations limits results to OrganizationIDs even when the list is empty
	RestrictToOrganizations bool
}

// NewsRepository handles database operations for news articles
type NewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create creates a new news article
func (r *NewsRepository) Create(ctx context.Context, news *models.News) error {
	return r.db.WithContext(ctx).Create(news).Error
}

// published scopes a query to published articles whose publication time has passed
func (r *NewsRepository) published(ctx context.Context, now time.Time) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.News{}).
		Where("news.status = ? AND news.published_at IS NOT NULL AND news.published_at <= ?", models.NewsStatusPublished, now)
}

// List retrieves published news matching the filter with the total count
func (r *NewsRepository) List(ctx context.Context, filter NewsFilter) ([]models.News, int64, error) {
	query := r.published(ctx, filter.Now)

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := containsPattern(strings.ToLower(search))
		query = query.Where(`(LOWER(news.title) LIKE ? ESCAPE '\' OR LOWER(news.excerpt) LIKE ? ESCAPE '\' OR LOWER(news.content) LIKE ? ESCAPE '\')`, pattern, pattern, pattern)
	}
	if len(filter.OrganizationIDs) > 0 {
		query = query.Where("news.organization_id IN ?", filter.OrganizationIDs)
	} else if filter.RestrictToOrganizations {
		return []models.News{}, 0, nil
	}
	if filter.RegionID != nil {
		query = query.Where("news.region_id = ?", *filter.RegionID)
	}
	if filter.Category != "" {
		query = query.Where("news.category = ?", filter.Category)
	}
	if filter.Featured != nil {
		query = query.Where("news.is_featured = ?", *filter.Featured)
	}

	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.News
	err := query.
		Preload("Organization").
		Preload("Region").
		Order(newsOrder(filter.Sort)).
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds a LIKE pattern matching term literally anywhere in a value
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func newsOrder(sort string) string {
	switch sort {
	case NewsSortOldest:
		return "news.published_at ASC"
	case NewsSortPopular:
		return "news.views_count DESC, news.published_at DESC"
	case NewsSortTitle:
		return "news.title ASC"
	default:
		return "news.published_at DESC"
	}
}

// GetPublishedByID retrieves a visible article by ID
func (r *NewsRepository) GetPublishedByID(ctx context.Context, id uuid.UUID, now time.Time) (*models.News, error) {
	var news models.News
	err := r.published(ctx, now).
		Preload("Organization").
		Preload("Region").
		First(&news, "news.id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// IncrementViews atomically increments the view counter
func (r *NewsRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.News{}).
		Where("id = ?", id).
		UpdateColumn("views_count", gorm.Expr("views_count + ?", 1)).Error
}

// GetRelated retrieves visible articles sharing the category or organization, newest first
func (r *NewsRepository) GetRelated(ctx context.Context, news *models.News, now time.Time, limit int) ([]models.News, error) {
	query := r.published(ctx, now).Where("news.id <> ?", news.ID)
	if news.OrganizationID != nil {
		query = query.Where("(news.category = ? OR news.organization_id = ?)", news.Category, *news.OrganizationID)
	} else {
		query = query.Where("news.category = ?", news.Category)
	}

	var related []models.News
	err := query.Order("news.published_at DESC").Limit(limit).Find(&related).Error
	return related, err
}

// GetFeatured retrieves the newest featured articles
func (r *NewsRepository) GetFeatured(ctx context.Context, now time.Time, limit int) ([]models.News, error) {
	var items []models.News
	err := r.published(ctx, now).
		Where("news.is_featured = ?", true).
		Order("news.published_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// GetPopular retrieves the most viewed articles
func (r *NewsRepository) GetPopular(ctx context.Context, now time.Time, limit int) ([]models.News, error) {
	var items []models.News
	err := r.published(ctx, now).
		Order("news.views_count DESC, news.published_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

// GetCategories retrieves the distinct categories of visible articles
func (r *NewsRepository) GetCategories(ctx context.Context, now time.Time) ([]string, error) {
	var categories []string
	err := r.published(ctx, now).
		Where("news.category <> ''").
		Distinct().
		Order("news.category ASC").
		Pluck("news.category", &categories).Error
	return categories, err
}

// GetLatestByOrganizations retrieves the newest visible articles of the organizations
func (r *NewsRepository) GetLatestByOrganizations(ctx context.Context, organizationIDs []uuid.UUID, now time.Time, limit int) ([]models.News, error) {
	if len(organizationIDs) == 0 {
		return []models.News{}, nil
	}
	var items []models.News
	err := r.published(ctx, now).
		Preload("Organization").
		Where("news.organization_id IN ?", organizationIDs).
		Order("news.published_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}
