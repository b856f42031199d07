package service_test

import (
	"context"
	"errors"
	"testing"

	"community-portal-backend/internal/cache"
	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/mocks"
	"community-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AboutServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	pages        *mocks.MockPageRepositoryInterface
	users        *mocks.MockUserRepositoryInterface
	orgs         *mocks.MockOrganizationRepositoryInterface
	volunteering *mocks.MockVolunteeringRepositoryInterface
	cache        *cache.MemoryCache
	service      *service.AboutService
}

func (suite *AboutServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.pages = mocks.NewMockPageRepositoryInterface(suite.ctrl)
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.orgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.volunteering = mocks.NewMockVolunteeringRepositoryInterface(suite.ctrl)
	suite.cache = cache.NewMemoryCache(0)
	suite.service = service.NewAboutService(suite.pages, suite.users, suite.orgs, suite.volunteering, suite.cache, 0)
}

func (suite *AboutServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AboutServiceTestSuite) expectBuild() *models.Page {
	page := &models.Page{Slug: service.AboutPageSlug, Title: "About us", Status: models.PageStatusPublished}
	page.ID = uuid.New()
	sections := []models.PageSection{
		{PageID: page.ID, Key: "mission", Title: "Mission", Position: 1, Settings: datatypes.JSON(`{"layout":"wide"}`)},
		{PageID: page.ID, Key: "team", Title: "Team", Position: 2, Settings: datatypes.JSON(`not json`)},
	}
	suite.pages.EXPECT().GetPublishedBySlug(gomock.Any(), service.AboutPageSlug).Return(page, nil).Times(1)
	suite.pages.EXPECT().GetActiveSections(gomock.Any(), page.ID).Return(sections, nil).Times(1)
	suite.users.EXPECT().CountActive(gomock.Any()).Return(int64(120), nil).Times(1)
	suite.orgs.EXPECT().CountActive(gomock.Any()).Return(int64(8), nil).Times(1)
	suite.volunteering.EXPECT().CountActiveOpportunities(gomock.Any()).Return(int64(14), nil).Times(1)
	return page
}

func (suite *AboutServiceTestSuite) TestGetAboutPageBuildsAndCaches() {
	ctx := context.Background()
	page := suite.expectBuild()

	view, err := suite.service.GetAboutPage(ctx)
	suite.Require().NoError(err)
	suite.Equal(page.ID, view.Page.ID)
	suite.Require().Len(view.Sections, 2)
	suite.Equal("wide", view.Sections[0].Settings["layout"])
	suite.Empty(view.Sections[1].Settings)
	suite.Equal(service.AboutStats{Volunteers: 120, Organizations: 8, Opportunities: 14}, view.Stats)

	// Served from cache: the repository expectations above allow a single call each
	cached, err := suite.service.GetAboutPage(ctx)
	suite.Require().NoError(err)
	suite.Equal(view.Stats, cached.Stats)
	suite.Equal(page.ID, cached.Page.ID)
}

func (suite *AboutServiceTestSuite) TestGetAboutPageMissing() {
	suite.pages.EXPECT().GetPublishedBySlug(gomock.Any(), service.AboutPageSlug).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetAboutPage(context.Background())
	suite.ErrorIs(err, apperrors.ErrPageNotFound)
}

func (suite *AboutServiceTestSuite) TestGetAboutPageRepositoryError() {
	suite.pages.EXPECT().GetPublishedBySlug(gomock.Any(), service.AboutPageSlug).Return(nil, errors.New("connection reset"))

	_, err := suite.service.GetAboutPage(context.Background())
	suite.Error(err)
	suite.False(apperrors.IsNotFound(err))
}

func (suite *AboutServiceTestSuite) TestInvalidateCache() {
	ctx := context.Background()
	suite.expectBuild()
	_, err := suite.service.GetAboutPage(ctx)
	suite.Require().NoError(err)

	suite.ErrorIs(suite.service.InvalidateCache(ctx, volunteer()), apperrors.ErrForbidden)
	suite.ErrorIs(suite.service.InvalidateCache(ctx, nil), apperrors.ErrForbidden)

	suite.Require().NoError(suite.service.InvalidateCache(ctx, admin()))

	// The next read rebuilds the view
	suite.expectBuild()
	_, err = suite.service.GetAboutPage(ctx)
	suite.Require().NoError(err)
}

func TestAboutServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AboutServiceTestSuite))
}
