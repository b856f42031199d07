package repository

import (
	"context"

	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttachmentMimeStats aggregates attachments sharing a MIME type
type AttachmentMimeStats struct {
	MimeType  string
	Count     int64
	Size      int64
	Downloads int64
}

// AttachmentRepository handles database operations for forum attachments
type AttachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository
func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{db: db}
}

// Create creates a new attachment row
func (r *AttachmentRepository) Create(ctx context.Context, attachment *models.ForumAttachment) error {
	return r.db.WithContext(ctx).Create(attachment).Error
}

// GetByID retrieves an attachment with its post and thread
func (r *AttachmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ForumAttachment, error) {
	var attachment models.ForumAttachment
	err := r.db.WithContext(ctx).
		Preload("Post.Thread").
		First(&attachment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// IncrementDownloads atomically increments the download counter
func (r *AttachmentRepository) IncrementDownloads(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&models.ForumAttachment{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1)).Error
}

// DeleteLocked deletes the attachment row inside a transaction holding its row lock.
// guard runs against the locked row and aborts the delete by returning an error.
// A concurrent caller blocks on the lock and then sees gorm.ErrRecordNotFound.
func (r *AttachmentRepository) DeleteLocked(ctx context.Context, id uuid.UUID, guard func(*models.ForumAttachment) error) (*models.ForumAttachment, error) {
	var attachment models.ForumAttachment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&attachment, "id = ?", id).Error; err != nil {
			return err
		}

		var post models.ForumPost
		if err := tx.Preload("Thread").First(&post, "id = ?", attachment.PostID).Error; err != nil {
			return err
		}
		attachment.Post = &post

		if guard != nil {
			if err := guard(&attachment); err != nil {
				return err
			}
		}

		result := tx.Delete(&models.ForumAttachment{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

// GetStatsByMimeType aggregates count, size and downloads per MIME type
func (r *AttachmentRepository) GetStatsByMimeType(ctx context.Context) ([]AttachmentMimeStats, error) {
	var stats []AttachmentMimeStats
	err := r.db.WithContext(ctx).Model(&models.ForumAttachment{}).
		Select("mime_type, COUNT(*) AS count, COALESCE(SUM(size), 0) AS size, COALESCE(SUM(download_count), 0) AS downloads").
		Group("mime_type").
		Order("mime_type").
		Scan(&stats).Error
	return stats, err
}
