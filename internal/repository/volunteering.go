package repository

import (
	"context"
	"time"

	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationStats aggregates a volunteer's applications
type ApplicationStats struct {
	Total          int64   `json:"total"`
	Approved       int64   `json:"approved"`
	VolunteerHours float64 `json:"volunteer_hours"`
}

// VolunteeringRepository handles database operations for events, opportunities and applications
type VolunteeringRepository struct {
	db *gorm.DB
}

// NewVolunteeringRepository creates a new volunteering repository
func NewVolunteeringRepository(db *gorm.DB) *VolunteeringRepository {
	return &VolunteeringRepository{db: db}
}

// CreateEvent creates a new event
func (r *VolunteeringRepository) CreateEvent(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// CreateOpportunity creates a new volunteering opportunity
func (r *VolunteeringRepository) CreateOpportunity(ctx context.Context, opportunity *models.VolunteeringOpportunity) error {
	return r.db.WithContext(ctx).Create(opportunity).Error
}

// CreateApplication creates a new volunteer application
func (r *VolunteeringRepository) CreateApplication(ctx context.Context, application *models.VolunteerApplication) error {
	return r.db.WithContext(ctx).Create(application).Error
}

// CountActiveOpportunities counts opportunities whose status is active
func (r *VolunteeringRepository) CountActiveOpportunities(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.VolunteeringOpportunity{}).
		Where("status = ?", models.OpportunityStatusActive).
		Count(&count).Error
	return count, err
}

// GetRecommendedOpportunities retrieves active, not yet ended opportunities, soonest start first.
// An empty category list matches every category.
func (r *VolunteeringRepository) GetRecommendedOpportunities(ctx context.Context, categories []string, now time.Time, limit int) ([]models.VolunteeringOpportunity, error) {
	var opportunities []models.VolunteeringOpportunity
	query := r.db.WithContext(ctx).
		Preload("Organization").
		Where("status = ?", models.OpportunityStatusActive).
		Where("(end_date IS NULL OR end_date > ?)", now)
	if len(categories) > 0 {
		query = query.Where("category IN ?", categories)
	}
	err := query.Order("start_date ASC").Limit(limit).Find(&opportunities).Error
	return opportunities, err
}

// GetUpcomingEvents retrieves published events of the organizations starting at or after now
func (r *VolunteeringRepository) GetUpcomingEvents(ctx context.Context, organizationIDs []uuid.UUID, now time.Time, limit int) ([]models.Event, error) {
	if len(organizationIDs) == 0 {
		return []models.Event{}, nil
	}
	var events []models.Event
	err := r.upcomingEvents(ctx, organizationIDs, now).
		Preload("Organization").
		Order("start_date ASC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// CountUpcomingEvents counts published events of the organizations starting at or after now
func (r *VolunteeringRepository) CountUpcomingEvents(ctx context.Context, organizationIDs []uuid.UUID, now time.Time) (int64, error) {
	if len(organizationIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.upcomingEvents(ctx, organizationIDs, now).Count(&count).Error
	return count, err
}

func (r *VolunteeringRepository) upcomingEvents(ctx context.Context, organizationIDs []uuid.UUID, now time.Time) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Event{}).
		Where("organization_id IN ?", organizationIDs).
		Where("status = ? AND start_date >= ?", models.EventStatusPublished, now)
}

// GetApplicationStats aggregates the user's applications in one query
func (r *VolunteeringRepository) GetApplicationStats(ctx context.Context, userID uuid.UUID) (*ApplicationStats, error) {
	var stats ApplicationStats
	err := r.db.WithContext(ctx).Model(&models.VolunteerApplication{}).
		Select(
			"COUNT(*) AS total, "+
				"COUNT(*) FILTER (WHERE status IN ?) AS approved, "+
				"COALESCE(SUM(hours_logged), 0) AS volunteer_hours",
			[]models.ApplicationStatus{models.ApplicationStatusApproved, models.ApplicationStatusCompleted},
		).
		Where("user_id = ?", userID).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
