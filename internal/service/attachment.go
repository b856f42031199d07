package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/logger"
	"community-portal-backend/internal/repository"
	"community-portal-backend/internal/storage"
	"community-portal-backend/internal/telemetry"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttachmentService serves and deletes forum attachment files
type AttachmentService struct {
	attachments repository.AttachmentRepositoryInterface
	storage     storage.Storage
}

// NewAttachmentService creates a new attachment service
func NewAttachmentService(attachments repository.AttachmentRepositoryInterface, store storage.Storage) *AttachmentService {
	return &AttachmentService{attachments: attachments, storage: store}
}

// AttachmentFile is an opened attachment. Callers must close Content.
type AttachmentFile struct {
	Attachment *models.ForumAttachment
	Content    io.ReadCloser
}

// AttachmentBucketStats aggregates one attachment category
type AttachmentBucketStats struct {
	Count     int64  `json:"count" example:"12"`
	Size      int64  `json:"size" example:"1048576"`
	SizeHuman string `json:"size_human" example:"1.0 MiB"`
}

// AttachmentStats summarizes every stored attachment
type AttachmentStats struct {
	TotalAttachments int64                                                `json:"total_attachments" example:"40"`
	TotalSize        int64                                                `json:"total_size" example:"5242880"`
	TotalSizeHuman   string                                               `json:"total_size_human" example:"5.0 MiB"`
	TotalDownloads   int64                                                `json:"total_downloads" example:"310"`
	ByType           map[models.AttachmentCategory]*AttachmentBucketStats `json:"by_type"`
}

// CanUserAccessAttachment reports whether the principal may read the attachment.
// Moderators always can; other users need an active account and visible post and thread.
func CanUserAccessAttachment(principal *auth.Principal, attachment *models.ForumAttachment) bool {
	if principal == nil || attachment == nil {
		return false
	}
	if auth.Can(principal, auth.CapabilityForumModerate) {
		return true
	}
	if principal.IsSuspended() {
		return false
	}
	post := attachment.Post
	if post == nil || post.Status != models.ContentStatusActive {
		return false
	}
	return post.Thread != nil && post.Thread.Status == models.ContentStatusActive
}

func (s *AttachmentService) load(ctx context.Context, id uuid.UUID) (*models.ForumAttachment, error) {
	attachment, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	return attachment, nil
}

// Download opens the attachment for download and counts it
func (s *AttachmentService) Download(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*AttachmentFile, error) {
	attachment, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanUserAccessAttachment(principal, attachment) {
		return nil, apperrors.ErrForbidden
	}

	content, err := s.storage.Open(ctx, attachment.Path)
	if err != nil {
		logger.WithContext(ctx).WithField("attachment_id", attachment.ID).Warnf("attachment file unavailable: %v", err)
		return nil, apperrors.ErrFileNotFound
	}

	if err := s.attachments.IncrementDownloads(ctx, attachment.ID); err != nil {
		logger.WithContext(ctx).WithField("attachment_id", attachment.ID).Warnf("failed to increment downloads: %v", err)
	} else {
		attachment.DownloadCount++
	}
	telemetry.AttachmentDownloadsTotal.Inc()

	return &AttachmentFile{Attachment: attachment, Content: content}, nil
}

// Show opens an image attachment for inline display. Non-images are reported as missing.
func (s *AttachmentService) Show(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*AttachmentFile, error) {
	attachment, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !attachment.IsImage() {
		return nil, apperrors.ErrFileNotFound
	}
	if !CanUserAccessAttachment(principal, attachment) {
		return nil, apperrors.ErrForbidden
	}

	exists, err := s.storage.Exists(ctx, attachment.Path)
	if err != nil || !exists {
		return nil, apperrors.ErrFileNotFound
	}
	content, err := s.storage.Open(ctx, attachment.Path)
	if err != nil {
		return nil, apperrors.ErrFileNotFound
	}
	return &AttachmentFile{Attachment: attachment, Content: content}, nil
}

// Delete removes the attachment row under a row lock, then its file. Allowed to the
// post author and moderators.
func (s *AttachmentService) Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error {
	if principal == nil {
		return apperrors.ErrPrincipalMissing
	}
	attachment, err := s.attachments.DeleteLocked(ctx, id, func(a *models.ForumAttachment) error {
		if auth.Can(principal, auth.CapabilityForumModerate) {
			return nil
		}
		if a.Post != nil && a.Post.AuthorID == principal.ID {
			return nil
		}
		return apperrors.ErrForbidden
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAttachmentNotFound
		}
		if apperrors.IsAuthorization(err) {
			return err
		}
		return fmt.Errorf("failed to delete attachment: %w", err)
	}

	if err := s.storage.Delete(ctx, attachment.Path); err != nil {
		logger.WithContext(ctx).WithField("attachment_id", attachment.ID).Errorf("failed to delete attachment file: %v", err)
	}
	logger.WithContext(ctx).WithField("attachment_id", attachment.ID).Info("attachment deleted")
	return nil
}

// Stats aggregates attachments per category. Requires forum.attachments.stats.
func (s *AttachmentService) Stats(ctx context.Context, principal *auth.Principal) (*AttachmentStats, error) {
	if !auth.Can(principal, auth.CapabilityForumAttachmentsStats) {
		return nil, apperrors.ErrForbidden
	}
	rows, err := s.attachments.GetStatsByMimeType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get attachment stats: %w", err)
	}

	stats := &AttachmentStats{ByType: map[models.AttachmentCategory]*AttachmentBucketStats{}}
	for _, category := range []models.AttachmentCategory{
		models.AttachmentCategoryImage,
		models.AttachmentCategoryDocument,
		models.AttachmentCategoryArchive,
		models.AttachmentCategoryOther,
	} {
		stats.ByType[category] = &AttachmentBucketStats{}
	}

	for _, row := range rows {
		bucket := stats.ByType[models.CategorizeMimeType(row.MimeType)]
		bucket.Count += row.Count
		bucket.Size += row.Size
		stats.TotalAttachments += row.Count
		stats.TotalSize += row.Size
		stats.TotalDownloads += row.Downloads
	}
	for _, bucket := range stats.ByType {
		bucket.SizeHuman = humanize.IBytes(uint64(bucket.Size))
	}
	stats.TotalSizeHuman = humanize.IBytes(uint64(stats.TotalSize))
	return stats, nil
}
