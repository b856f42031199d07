package repository

import (
	"context"

	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRepository handles database operations for forum reports
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a report. A second open report for the same reporter and target
// violates idx_forum_reports_open and surfaces as gorm.ErrDuplicatedKey.
func (r *ReportRepository) Create(ctx context.Context, report *models.ForumReport) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// GetByID retrieves a report by ID
func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ForumReport, error) {
	var report models.ForumReport
	err := r.db.WithContext(ctx).First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// FindOpen retrieves the reporter's unresolved report against the target
func (r *ReportRepository) FindOpen(ctx context.Context, reporterID uuid.UUID, target models.ModerationTarget) (*models.ForumReport, error) {
	var report models.ForumReport
	err := r.db.WithContext(ctx).
		Where("reporter_id = ? AND reportable_type = ? AND reportable_id = ? AND resolved_at IS NULL",
			reporterID, target.Kind, target.ID).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetByReporter retrieves the reporter's reports newest first with the total count
func (r *ReportRepository) GetByReporter(ctx context.Context, reporterID uuid.UUID, limit, offset int) ([]models.ForumReport, int64, error) {
	var reports []models.ForumReport
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.ForumReport{}).
		Where("reporter_id = ?", reporterID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("reporter_id = ?", reporterID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// GetByTarget retrieves every report against the target, newest first
func (r *ReportRepository) GetByTarget(ctx context.Context, target models.ModerationTarget) ([]models.ForumReport, error) {
	var reports []models.ForumReport
	err := r.db.WithContext(ctx).
		Where("reportable_type = ? AND reportable_id = ?", target.Kind, target.ID).
		Order("created_at DESC").
		Find(&reports).Error
	return reports, err
}
