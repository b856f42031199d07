package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/logger"
	"community-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	newsPerPage       = 12
	publicNewsPerPage = 9
	newsFeaturedLimit = 3
	newsPopularLimit  = 5
	newsRelatedLimit  = 4
)

// NewsService serves published news listings and articles
type NewsService struct {
	news          repository.NewsRepositoryInterface
	organizations repository.OrganizationRepositoryInterface
}

// NewNewsService creates a new news service
func NewNewsService(news repository.NewsRepositoryInterface, organizations repository.OrganizationRepositoryInterface) *NewsService {
	return &NewsService{news: news, organizations: organizations}
}

// NewsQuery holds the listing filters accepted from the query string
type NewsQuery struct {
	Search         string
	OrganizationID *uuid.UUID
	RegionID       *uuid.UUID
	Category       string
	Featured       *bool
	Sort           string
	Page           int
	PerPage        int
	// Mine limits the listing to the principal's organizations
	Mine bool
}

// NewsSidebar is shown next to every news listing
type NewsSidebar struct {
	Featured   []models.News `json:"featured"`
	Popular    []models.News `json:"popular"`
	Categories []string      `json:"categories"`
}

// NewsListView is a page of news with its sidebar
type NewsListView struct {
	Data    []models.News `json:"data"`
	Meta    PageMeta      `json:"meta"`
	Sidebar NewsSidebar   `json:"sidebar"`
}

// NewsDetailView is a single article with related articles
type NewsDetailView struct {
	News    *models.News  `json:"news"`
	Related []models.News `json:"related"`
}

// List returns published news. A nil principal selects the public listing.
func (s *NewsService) List(ctx context.Context, principal *auth.Principal, query NewsQuery) (*NewsListView, error) {
	defaultPerPage := publicNewsPerPage
	if principal != nil {
		defaultPerPage = newsPerPage
	}
	page, perPage, offset := normalizePage(query.Page, query.PerPage, defaultPerPage)
	now := time.Now()

	filter := repository.NewsFilter{
		Search:   query.Search,
		RegionID: query.RegionID,
		Category: query.Category,
		Featured: query.Featured,
		Sort:     query.Sort,
		Now:      now,
		Limit:    perPage,
		Offset:   offset,
	}
	if query.OrganizationID != nil {
		filter.OrganizationIDs = []uuid.UUID{*query.OrganizationID}
	}
	if query.Mine && principal != nil {
		ids, err := s.organizations.GetActiveIDsByUser(ctx, principal.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get organization ids: %w", err)
		}
		filter.OrganizationIDs = intersectIDs(filter.OrganizationIDs, ids, query.OrganizationID != nil)
		filter.RestrictToOrganizations = true
	}

	items, total, err := s.news.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}

	sidebar, err := s.sidebar(ctx, now)
	if err != nil {
		return nil, err
	}

	return &NewsListView{
		Data:    items,
		Meta:    newPageMeta(page, perPage, total),
		Sidebar: *sidebar,
	}, nil
}

// intersectIDs narrows mine to the requested organization when one was given
func intersectIDs(requested, mine []uuid.UUID, narrow bool) []uuid.UUID {
	if !narrow {
		return mine
	}
	out := make([]uuid.UUID, 0, len(requested))
	for _, id := range requested {
		for _, m := range mine {
			if id == m {
				out = append(out, id)
				break
			}
		}
	}
	return out
}

func (s *NewsService) sidebar(ctx context.Context, now time.Time) (*NewsSidebar, error) {
	featured, err := s.news.GetFeatured(ctx, now, newsFeaturedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get featured news: %w", err)
	}
	popular, err := s.news.GetPopular(ctx, now, newsPopularLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get popular news: %w", err)
	}
	categories, err := s.news.GetCategories(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get news categories: %w", err)
	}
	return &NewsSidebar{Featured: featured, Popular: popular, Categories: categories}, nil
}

// Get returns a visible article with related articles and counts the view
func (s *NewsService) Get(ctx context.Context, id uuid.UUID) (*NewsDetailView, error) {
	now := time.Now()
	news, err := s.news.GetPublishedByID(ctx, id, now)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news: %w", err)
	}

	if err := s.news.IncrementViews(ctx, news.ID); err != nil {
		logger.WithContext(ctx).WithField("news_id", news.ID).Warnf("failed to increment views: %v", err)
	} else {
		news.ViewsCount++
	}

	related, err := s.news.GetRelated(ctx, news, now, newsRelatedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get related news: %w", err)
	}

	return &NewsDetailView{News: news, Related: related}, nil
}
