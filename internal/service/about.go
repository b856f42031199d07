package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/cache"
	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/logger"
	"community-portal-backend/internal/repository"
	"community-portal-backend/internal/telemetry"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
)

// About page cache coordinates
const (
	AboutPageSlug     = "about-us"
	AboutPageCacheKey = "about_us_page"
	AboutPageTag      = "about_us"
	PagesTag          = "pages"
)

// AboutService assembles the public About Us page
type AboutService struct {
	pages         repository.PageRepositoryInterface
	users         repository.UserRepositoryInterface
	organizations repository.OrganizationRepositoryInterface
	volunteering  repository.VolunteeringRepositoryInterface
	cache         cache.Cache
	ttl           time.Duration
}

// NewAboutService creates a new about service
func NewAboutService(
	pages repository.PageRepositoryInterface,
	users repository.UserRepositoryInterface,
	organizations repository.OrganizationRepositoryInterface,
	volunteering repository.VolunteeringRepositoryInterface,
	c cache.Cache,
	ttl time.Duration,
) *AboutService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AboutService{
		pages:         pages,
		users:         users,
		organizations: organizations,
		volunteering:  volunteering,
		cache:         c,
		ttl:           ttl,
	}
}

// AboutPageSection is an active page section with its settings decoded
type AboutPageSection struct {
	Key      string                 `json:"key" example:"mission"`
	Title    string                 `json:"title" example:"Our mission"`
	Content  string                 `json:"content"`
	Position int                    `json:"position" example:"1"`
	Settings map[string]interface{} `json:"settings"`
}

// AboutStats holds the platform counters shown on the About Us page
type AboutStats struct {
	Volunteers    int64 `json:"volunteers" example:"1200"`
	Organizations int64 `json:"organizations" example:"85"`
	Opportunities int64 `json:"opportunities" example:"40"`
}

// AboutPageView is the cached About Us view model
type AboutPageView struct {
	Page     *models.Page       `json:"page"`
	Sections []AboutPageSection `json:"sections"`
	Stats    AboutStats         `json:"stats"`
}

// GetAboutPage returns the About Us view, building and caching it on a miss
func (s *AboutService) GetAboutPage(ctx context.Context) (*AboutPageView, error) {
	hit := true
	view, err := cache.Remember(ctx, s.cache, AboutPageCacheKey, s.ttl, func(ctx context.Context) (*AboutPageView, error) {
		hit = false
		return s.build(ctx)
	}, PagesTag, AboutPageTag)

	result := "hit"
	if !hit {
		result = "miss"
	}
	telemetry.CacheLookupsTotal.WithLabelValues(AboutPageCacheKey, result).Inc()

	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *AboutService) build(ctx context.Context) (*AboutPageView, error) {
	page, err := s.pages.GetPublishedBySlug(ctx, AboutPageSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPageNotFound
		}
		return nil, fmt.Errorf("failed to get about page: %w", err)
	}

	sections, err := s.pages.GetActiveSections(ctx, page.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get about page sections: %w", err)
	}

	view := &AboutPageView{Page: page, Sections: make([]AboutPageSection, 0, len(sections))}
	for _, section := range sections {
		settings := map[string]interface{}{}
		if len(section.Settings) > 0 {
			if err := sonic.Unmarshal(section.Settings, &settings); err != nil {
				logger.WithContext(ctx).WithField("section", section.Key).Warnf("ignoring malformed section settings: %v", err)
				settings = map[string]interface{}{}
			}
		}
		view.Sections = append(view.Sections, AboutPageSection{
			Key:      section.Key,
			Title:    section.Title,
			Content:  section.Content,
			Position: section.Position,
			Settings: settings,
		})
	}

	if view.Stats.Volunteers, err = s.users.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("failed to count volunteers: %w", err)
	}
	if view.Stats.Organizations, err = s.organizations.CountActive(ctx); err != nil {
		return nil, fmt.Errorf("failed to count organizations: %w", err)
	}
	if view.Stats.Opportunities, err = s.volunteering.CountActiveOpportunities(ctx); err != nil {
		return nil, fmt.Errorf("failed to count opportunities: %w", err)
	}

	return view, nil
}

// InvalidateCache evicts the cached About Us view. Requires content.manage.
func (s *AboutService) InvalidateCache(ctx context.Context, principal *auth.Principal) error {
	if !auth.Can(principal, auth.CapabilityContentManage) {
		return apperrors.ErrForbidden
	}
	if err := s.cache.InvalidateTags(ctx, AboutPageTag); err != nil {
		return fmt.Errorf("failed to invalidate about page cache: %w", err)
	}
	logger.WithContext(ctx).Info("about page cache invalidated")
	return nil
}
