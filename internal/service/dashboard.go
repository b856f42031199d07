package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/repository"

	"gorm.io/gorm"
)

// Dashboard list bounds
const (
	dashboardOrganizationsLimit = 5
	dashboardNewsLimit          = 5
	dashboardEventsLimit        = 5
	dashboardOpportunitiesLimit = 6
	dashboardNotificationsLimit = 5
	personalizedLimit           = 10
)

// DashboardService assembles the signed-in volunteer's dashboard
type DashboardService struct {
	users         repository.UserRepositoryInterface
	organizations repository.OrganizationRepositoryInterface
	news          repository.NewsRepositoryInterface
	volunteering  repository.VolunteeringRepositoryInterface
	notifications repository.NotificationRepositoryInterface
	forums        repository.ForumRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	users repository.UserRepositoryInterface,
	organizations repository.OrganizationRepositoryInterface,
	news repository.NewsRepositoryInterface,
	volunteering repository.VolunteeringRepositoryInterface,
	notifications repository.NotificationRepositoryInterface,
	forums repository.ForumRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		users:         users,
		organizations: organizations,
		news:          news,
		volunteering:  volunteering,
		notifications: notifications,
		forums:        forums,
	}
}

// DashboardView is the main dashboard view model
type DashboardView struct {
	User                     *models.User                     `json:"user"`
	Organizations            []models.Organization            `json:"organizations"`
	LatestNews               []models.News                    `json:"latest_news"`
	UpcomingEvents           []models.Event                   `json:"upcoming_events"`
	RecommendedOpportunities []models.VolunteeringOpportunity `json:"recommended_opportunities"`
	RecentNotifications      []models.Notification            `json:"recent_notifications"`
	UnreadNotifications      int64                            `json:"unread_notifications" example:"3"`
}

// PersonalizedDashboardView is the interest-driven dashboard view model
type PersonalizedDashboardView struct {
	RecommendedOpportunities []models.VolunteeringOpportunity `json:"recommended_opportunities"`
	UpcomingEvents           []models.Event                   `json:"upcoming_events"`
	OrganizationNews         []models.News                    `json:"organization_news"`
	Interests                []string                         `json:"interests"`
}

// ActivitySummary aggregates the volunteer's activity counters
type ActivitySummary struct {
	OrganizationsCount   int64   `json:"organizations_count" example:"2"`
	ApplicationsTotal    int64   `json:"applications_total" example:"7"`
	ApplicationsApproved int64   `json:"applications_approved" example:"5"`
	VolunteerHours       float64 `json:"volunteer_hours" example:"31.5"`
	ForumPosts           int64   `json:"forum_posts" example:"12"`
	UpcomingEvents       int64   `json:"upcoming_events" example:"1"`
	UnreadNotifications  int64   `json:"unread_notifications" example:"3"`
}

func (s *DashboardService) loadUser(ctx context.Context, principal *auth.Principal) (*models.User, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	user, err := s.users.GetByID(ctx, principal.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func interestsOf(user *models.User) []string {
	if len(user.Interests) == 0 {
		return []string{}
	}
	return []string(user.Interests)
}

// GetDashboard returns the dashboard of the principal
func (s *DashboardService) GetDashboard(ctx context.Context, principal *auth.Principal) (*DashboardView, error) {
	user, err := s.loadUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	now := time.Now()

	orgs, err := s.organizations.GetActiveByUser(ctx, user.ID, dashboardOrganizationsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}
	orgIDs, err := s.organizations.GetActiveIDsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization ids: %w", err)
	}
	news, err := s.news.GetLatestByOrganizations(ctx, orgIDs, now, dashboardNewsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get news: %w", err)
	}
	events, err := s.volunteering.GetUpcomingEvents(ctx, orgIDs, now, dashboardEventsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	opportunities, err := s.volunteering.GetRecommendedOpportunities(ctx, interestsOf(user), now, dashboardOpportunitiesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get opportunities: %w", err)
	}
	notifications, err := s.notifications.GetRecent(ctx, user.ID, dashboardNotificationsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	unread, err := s.notifications.CountUnread(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	return &DashboardView{
		User:                     user,
		Organizations:            orgs,
		LatestNews:               news,
		UpcomingEvents:           events,
		RecommendedOpportunities: opportunities,
		RecentNotifications:      notifications,
		UnreadNotifications:      unread,
	}, nil
}

// GetPersonalized returns the interest-driven dashboard of the principal
func (s *DashboardService) GetPersonalized(ctx context.Context, principal *auth.Principal) (*PersonalizedDashboardView, error) {
	user, err := s.loadUser(ctx, principal)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	interests := interestsOf(user)

	orgIDs, err := s.organizations.GetActiveIDsByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization ids: %w", err)
	}
	opportunities, err := s.volunteering.GetRecommendedOpportunities(ctx, interests, now, personalizedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get opportunities: %w", err)
	}
	events, err := s.volunteering.GetUpcomingEvents(ctx, orgIDs, now, personalizedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	news, err := s.news.GetLatestByOrganizations(ctx, orgIDs, now, personalizedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get news: %w", err)
	}

	return &PersonalizedDashboardView{
		RecommendedOpportunities: opportunities,
		UpcomingEvents:           events,
		OrganizationNews:         news,
		Interests:                interests,
	}, nil
}

// GetActivitySummary returns the activity counters of the principal
func (s *DashboardService) GetActivitySummary(ctx context.Context, principal *auth.Principal) (*ActivitySummary, error) {
	if principal == nil {
		return nil, apperrors.ErrPrincipalMissing
	}
	now := time.Now()

	orgIDs, err := s.organizations.GetActiveIDsByUser(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization ids: %w", err)
	}
	applications, err := s.volunteering.GetApplicationStats(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application stats: %w", err)
	}
	posts, err := s.forums.CountPostsByAuthor(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count forum posts: %w", err)
	}
	events, err := s.volunteering.CountUpcomingEvents(ctx, orgIDs, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	unread, err := s.notifications.CountUnread(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count notifications: %w", err)
	}

	return &ActivitySummary{
		OrganizationsCount:   int64(len(orgIDs)),
		ApplicationsTotal:    applications.Total,
		ApplicationsApproved: applications.Approved,
		VolunteerHours:       applications.VolunteerHours,
		ForumPosts:           posts,
		UpcomingEvents:       events,
		UnreadNotifications:  unread,
	}, nil
}
