package service

import (
	"context"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AboutServiceInterface defines the interface for the About Us page service
type AboutServiceInterface interface {
	GetAboutPage(ctx context.Context) (*AboutPageView, error)
	InvalidateCache(ctx context.Context, principal *auth.Principal) error
}

// DashboardServiceInterface defines the interface for the dashboard service
type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, principal *auth.Principal) (*DashboardView, error)
	GetPersonalized(ctx context.Context, principal *auth.Principal) (*PersonalizedDashboardView, error)
	GetActivitySummary(ctx context.Context, principal *auth.Principal) (*ActivitySummary, error)
}

// AttachmentServiceInterface defines the interface for the forum attachment service
type AttachmentServiceInterface interface {
	Download(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*AttachmentFile, error)
	Show(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*AttachmentFile, error)
	Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error
	Stats(ctx context.Context, principal *auth.Principal) (*AttachmentStats, error)
}

// ReportServiceInterface defines the interface for the forum report service
type ReportServiceInterface interface {
	Submit(ctx context.Context, principal *auth.Principal, target models.ModerationTarget, req *SubmitReportRequest) (*ActionResult, error)
	ListMine(ctx context.Context, principal *auth.Principal, page, perPage int) (*ReportListView, error)
	Get(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*models.ForumReport, error)
	TargetHistory(ctx context.Context, principal *auth.Principal, target models.ModerationTarget) (*TargetHistory, error)
}

// ModerationServiceInterface defines the interface for the moderation service
type ModerationServiceInterface interface {
	MyHistory(ctx context.Context, principal *auth.Principal) (*ModerationHistory, error)
	Warnings(ctx context.Context, principal *auth.Principal) ([]models.ForumWarning, error)
	AcknowledgeWarning(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*models.ForumWarning, error)
	CanPost(ctx context.Context, principal *auth.Principal, forumID uuid.UUID) (*PostPermission, error)
	CanReply(ctx context.Context, principal *auth.Principal, threadID uuid.UUID) (*ReplyPermission, error)
}

// NewsServiceInterface defines the interface for the news service
type NewsServiceInterface interface {
	List(ctx context.Context, principal *auth.Principal, query NewsQuery) (*NewsListView, error)
	Get(ctx context.Context, id uuid.UUID) (*NewsDetailView, error)
}

// NewsletterServiceInterface defines the interface for the newsletter service
type NewsletterServiceInterface interface {
	Overview(ctx context.Context, principal *auth.Principal) (*NewsletterOverview, error)
	Subscribe(ctx context.Context, principal *auth.Principal, req *SubscribeRequest) (*ActionResult, error)
	Unsubscribe(ctx context.Context, req *UnsubscribeRequest) (*ActionResult, error)
	UnsubscribeLink(ctx context.Context, email, token string) (*ActionResult, error)
	UpdatePreferences(ctx context.Context, principal *auth.Principal, req *UpdatePreferencesRequest) (*ActionResult, error)
	Status(ctx context.Context, email string) (*NewsletterStatus, error)
}

// NotificationServiceInterface defines the interface for the notification service
type NotificationServiceInterface interface {
	List(ctx context.Context, principal *auth.Principal, query NotificationQuery) (*NotificationListView, error)
	MarkRead(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*models.Notification, error)
	MarkAllRead(ctx context.Context, principal *auth.Principal) (int64, error)
	Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error
	DeleteRead(ctx context.Context, principal *auth.Principal) (int64, error)
	UnreadCount(ctx context.Context, principal *auth.Principal) (int64, error)
	Recent(ctx context.Context, principal *auth.Principal, limit int) (*RecentNotificationsView, error)
}

// InvitationServiceInterface defines the interface for the organization invitation service
type InvitationServiceInterface interface {
	Show(ctx context.Context, token string) (*InvitationView, error)
	Accept(ctx context.Context, principal *auth.Principal, token string) (*ActionResult, error)
	Reject(ctx context.Context, principal *auth.Principal, token string) (*ActionResult, error)
	ListMine(ctx context.Context, principal *auth.Principal, status string) ([]models.OrganizationInvitation, error)
	PendingCount(ctx context.Context, principal *auth.Principal) (int64, error)
}

var (
	_ AboutServiceInterface        = (*AboutService)(nil)
	_ DashboardServiceInterface    = (*DashboardService)(nil)
	_ AttachmentServiceInterface   = (*AttachmentService)(nil)
	_ ReportServiceInterface       = (*ReportService)(nil)
	_ ModerationServiceInterface   = (*ModerationService)(nil)
	_ NewsServiceInterface         = (*NewsService)(nil)
	_ NewsletterServiceInterface   = (*NewsletterService)(nil)
	_ NotificationServiceInterface = (*NotificationService)(nil)
	_ InvitationServiceInterface   = (*InvitationService)(nil)
)
