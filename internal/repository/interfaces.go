package repository

import (
	"context"
	"time"

	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PageRepositoryInterface defines the interface for CMS page repository operations
type PageRepositoryInterface interface {
	Create(ctx context.Context, page *models.Page) error
	GetPublishedBySlug(ctx context.Context, slug string) (*models.Page, error)
	GetActiveSections(ctx context.Context, pageID uuid.UUID) ([]models.PageSection, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	CountActive(ctx context.Context) (int64, error)
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetBySlug(ctx context.Context, slug string) (*models.Organization, error)
	CountActive(ctx context.Context) (int64, error)
	AddMember(ctx context.Context, member *models.OrganizationMember) error
	GetActiveByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.Organization, error)
	GetActiveIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// VolunteeringRepositoryInterface defines the interface for event, opportunity and application queries
type VolunteeringRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *models.Event) error
	CreateOpportunity(ctx context.Context, opportunity *models.VolunteeringOpportunity) error
	CreateApplication(ctx context.Context, application *models.VolunteerApplication) error
	CountActiveOpportunities(ctx context.Context) (int64, error)
	GetRecommendedOpportunities(ctx context.Context, categories []string, now time.Time, limit int) ([]models.VolunteeringOpportunity, error)
	GetUpcomingEvents(ctx context.Context, organizationIDs []uuid.UUID, now time.Time, limit int) ([]models.Event, error)
	CountUpcomingEvents(ctx context.Context, organizationIDs []uuid.UUID, now time.Time) (int64, error)
	GetApplicationStats(ctx context.Context, userID uuid.UUID) (*ApplicationStats, error)
}

// NewsRepositoryInterface defines the interface for news repository operations
type NewsRepositoryInterface interface {
	Create(ctx context.Context, news *models.News) error
	List(ctx context.Context, filter NewsFilter) ([]models.News, int64, error)
	GetPublishedByID(ctx context.Context, id uuid.UUID, now time.Time) (*models.News, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	GetRelated(ctx context.Context, news *models.News, now time.Time, limit int) ([]models.News, error)
	GetFeatured(ctx context.Context, now time.Time, limit int) ([]models.News, error)
	GetPopular(ctx context.Context, now time.Time, limit int) ([]models.News, error)
	GetCategories(ctx context.Context, now time.Time) ([]string, error)
	GetLatestByOrganizations(ctx context.Context, organizationIDs []uuid.UUID, now time.Time, limit int) ([]models.News, error)
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Notification, error)
	List(ctx context.Context, userID uuid.UUID, filter NotificationFilter, limit, offset int) ([]models.Notification, int64, error)
	GetRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteRead(ctx context.Context, userID uuid.UUID) (int64, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ForumRepositoryInterface defines the interface for forum, thread and post lookups
type ForumRepositoryInterface interface {
	CreateForum(ctx context.Context, forum *models.Forum) error
	CreateThread(ctx context.Context, thread *models.ForumThread) error
	CreatePost(ctx context.Context, post *models.ForumPost) error
	GetForumByID(ctx context.Context, id uuid.UUID) (*models.Forum, error)
	GetThreadByID(ctx context.Context, id uuid.UUID) (*models.ForumThread, error)
	GetPostByID(ctx context.Context, id uuid.UUID) (*models.ForumPost, error)
	CountPostsByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)
}

// AttachmentRepositoryInterface defines the interface for forum attachment repository operations
type AttachmentRepositoryInterface interface {
	Create(ctx context.Context, attachment *models.ForumAttachment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ForumAttachment, error)
	IncrementDownloads(ctx context.Context, id uuid.UUID) error
	DeleteLocked(ctx context.Context, id uuid.UUID, guard func(*models.ForumAttachment) error) (*models.ForumAttachment, error)
	GetStatsByMimeType(ctx context.Context) ([]AttachmentMimeStats, error)
}

// ReportRepositoryInterface defines the interface for forum report repository operations
type ReportRepositoryInterface interface {
	Create(ctx context.Context, report *models.ForumReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ForumReport, error)
	FindOpen(ctx context.Context, reporterID uuid.UUID, target models.ModerationTarget) (*models.ForumReport, error)
	GetByReporter(ctx context.Context, reporterID uuid.UUID, limit, offset int) ([]models.ForumReport, int64, error)
	GetByTarget(ctx context.Context, target models.ModerationTarget) ([]models.ForumReport, error)
}

// ModerationRepositoryInterface defines the interface for warnings, moderation actions and bans
type ModerationRepositoryInterface interface {
	CreateWarning(ctx context.Context, warning *models.ForumWarning) error
	GetWarningByID(ctx context.Context, id uuid.UUID) (*models.ForumWarning, error)
	GetWarningsByUser(ctx context.Context, userID uuid.UUID) ([]models.ForumWarning, error)
	AcknowledgeWarning(ctx context.Context, id uuid.UUID, at time.Time) error
	CreateAction(ctx context.Context, action *models.ModerationAction) error
	GetActionsByTarget(ctx context.Context, target models.ModerationTarget) ([]models.ModerationAction, error)
	GetActionsAgainstUser(ctx context.Context, userID uuid.UUID) ([]models.ModerationAction, error)
	CreateBan(ctx context.Context, ban *models.ForumBan) error
	FindActiveBan(ctx context.Context, userID uuid.UUID, forumID *uuid.UUID, now time.Time) (*models.ForumBan, error)
}

// NewsletterRepositoryInterface defines the interface for newsletter subscription repository operations
type NewsletterRepositoryInterface interface {
	Upsert(ctx context.Context, subscription *models.NewsletterSubscription) (*models.NewsletterSubscription, error)
	GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error)
	Update(ctx context.Context, subscription *models.NewsletterSubscription) error
}

// InvitationRepositoryInterface defines the interface for organization invitation repository operations
type InvitationRepositoryInterface interface {
	Create(ctx context.Context, invitation *models.OrganizationInvitation) error
	GetByToken(ctx context.Context, token string) (*models.OrganizationInvitation, error)
	Accept(ctx context.Context, id, userID uuid.UUID, at time.Time) error
	Reject(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkExpired(ctx context.Context, id uuid.UUID) error
	GetByEmail(ctx context.Context, email string, status models.InvitationStatus) ([]models.OrganizationInvitation, error)
	CountPending(ctx context.Context, email string, now time.Time) (int64, error)
}
