package service

import (
	"context"
	"errors"
	"fmt"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/logger"
	"community-portal-backend/internal/repository"
	"community-portal-backend/internal/telemetry"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

const reportsPerPage = 15

// MessageDuplicateReport is returned while a prior report of the same content is unresolved
const MessageDuplicateReport = "You have already reported this content."

// ReportService files abuse reports and exposes report history
type ReportService struct {
	reports    repository.ReportRepositoryInterface
	forums     repository.ForumRepositoryInterface
	moderation repository.ModerationRepositoryInterface
	validator  *validator.Validate
	sanitizer  *bluemonday.Policy
}

// NewReportService creates a new report service
func NewReportService(
	reports repository.ReportRepositoryInterface,
	forums repository.ForumRepositoryInterface,
	moderation repository.ModerationRepositoryInterface,
	v *validator.Validate,
) *ReportService {
	return &ReportService{
		reports:    reports,
		forums:     forums,
		moderation: moderation,
		validator:  v,
		sanitizer:  bluemonday.StrictPolicy(),
	}
}

// SubmitReportRequest is the body of a report submission
type SubmitReportRequest struct {
	Reason      string `json:"reason" validate:"required,oneof=spam harassment inappropriate off_topic misinformation other" example:"spam"`
	Severity    string `json:"severity" validate:"required,oneof=low medium high" example:"medium"`
	Description string `json:"description" validate:"max=1000" example:"Posted the same link in five threads"`
}

// ReportListView is a page of reports
type ReportListView struct {
	Data []models.ForumReport `json:"data"`
	Meta PageMeta             `json:"meta"`
}

// TargetHistory lists the reports and moderation actions recorded against a thread or post
type TargetHistory struct {
	Target  models.ModerationTarget   `json:"target"`
	Reports []models.ForumReport      `json:"reports"`
	Actions []models.ModerationAction `json:"actions"`
}

// targetAuthor resolves the author of the reported content
func (s *ReportService) targetAuthor(ctx context.Context, target models.ModerationTarget) (uuid.UUID, error) {
	switch target.Kind {
	case models.TargetKindThread:
		thread, err := s.forums.GetThreadByID(ctx, target.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, apperrors.ErrThreadNotFound
			}
			return uuid.Nil, fmt.Errorf("failed to get thread: %w", err)
		}
		return thread.AuthorID, nil
	case models.TargetKindPost:
		post, err := s.forums.GetPostByID(ctx, target.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return uuid.Nil, apperrors.ErrPostNotFound
			}
			return uuid.Nil, fmt.Errorf("failed to get post: %w", err)
		}
		return post.AuthorID, nil
	default:
		return uuid.Nil, apperrors.ErrInvalidTargetKind
	}
}

// Submit files a report against a thread or post. A second report of the same content
// while the first is unresolved yields a duplicate result.
func (s *ReportService) Submit(ctx context.Context, principal *auth.Principal, target models.ModerationTarget, req *SubmitReportRequest) (*ActionResult, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}

	authorID, err := s.targetAuthor(ctx, target)
	if err != nil {
		return nil, err
	}
	if authorID == principal.ID {
		return nil, apperrors.ErrSelfReport
	}

	_, err = s.reports.FindOpen(ctx, principal.ID, target)
	if err == nil {
		telemetry.ForumReportsTotal.WithLabelValues(string(target.Kind), "duplicate").Inc()
		return failed(ReasonDuplicate, MessageDuplicateReport), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check open reports: %w", err)
	}

	report := &models.ForumReport{
		ReporterID:     principal.ID,
		ReportableType: target.Kind,
		ReportableID:   target.ID,
		Reason:         models.ReportReason(req.Reason),
		Severity:       models.Severity(req.Severity),
		Description:    s.sanitizer.Sanitize(req.Description),
		Status:         models.ReportStatusPending,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		if repository.IsUniqueViolation(err) {
			telemetry.ForumReportsTotal.WithLabelValues(string(target.Kind), "duplicate").Inc()
			return failed(ReasonDuplicate, MessageDuplicateReport), nil
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	telemetry.ForumReportsTotal.WithLabelValues(string(target.Kind), "created").Inc()
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"report_id": report.ID,
		"kind":      target.Kind,
		"target_id": target.ID,
	}).Info("forum report submitted")
	return succeeded("Thank you. Your report has been submitted for review.", report), nil
}

// ListMine returns the principal's reports, newest first
func (s *ReportService) ListMine(ctx context.Context, principal *auth.Principal, page, perPage int) (*ReportListView, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	page, perPage, offset := normalizePage(page, perPage, reportsPerPage)
	reports, total, err := s.reports.GetByReporter(ctx, principal.ID, perPage, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return &ReportListView{Data: reports, Meta: newPageMeta(page, perPage, total)}, nil
}

// Get returns a report to its reporter or to a moderator
func (s *ReportService) Get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*models.ForumReport, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	if report.ReporterID != principal.ID && !auth.Can(principal, auth.CapabilityForumModerate) {
		return nil, apperrors.ErrForbidden
	}
	return report, nil
}

// TargetHistory returns the reports and moderation actions against a target. Requires forum.moderate.
func (s *ReportService) TargetHistory(ctx context.Context, principal *auth.Principal, target models.ModerationTarget) (*TargetHistory, error) {
	if !auth.Can(principal, auth.CapabilityForumModerate) {
		return nil, apperrors.ErrForbidden
	}
	if !target.Kind.IsValid() {
		return nil, apperrors.ErrInvalidTargetKind
	}
	reports, err := s.reports.GetByTarget(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("failed to get reports: %w", err)
	}
	actions, err := s.moderation.GetActionsByTarget(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("failed to get moderation actions: %w", err)
	}
	return &TargetHistory{Target: target, Reports: reports, Actions: actions}, nil
}
