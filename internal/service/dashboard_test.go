package service_test

import (
	"context"
	"errors"
	"testing"

	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/mocks"
	"community-portal-backend/internal/repository"
	"community-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	users         *mocks.MockUserRepositoryInterface
	orgs          *mocks.MockOrganizationRepositoryInterface
	news          *mocks.MockNewsRepositoryInterface
	volunteering  *mocks.MockVolunteeringRepositoryInterface
	notifications *mocks.MockNotificationRepositoryInterface
	forums        *mocks.MockForumRepositoryInterface
	service       *service.DashboardService
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.users = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.orgs = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.news = mocks.NewMockNewsRepositoryInterface(suite.ctrl)
	suite.volunteering = mocks.NewMockVolunteeringRepositoryInterface(suite.ctrl)
	suite.notifications = mocks.NewMockNotificationRepositoryInterface(suite.ctrl)
	suite.forums = mocks.NewMockForumRepositoryInterface(suite.ctrl)
	suite.service = service.NewDashboardService(suite.users, suite.orgs, suite.news, suite.volunteering, suite.notifications, suite.forums)
}

func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DashboardServiceTestSuite) TestGetDashboard() {
	p := volunteer()
	user := &models.User{Name: p.Name, Email: p.Email, Interests: datatypes.JSONSlice[string]{"environment", "education"}}
	user.ID = p.ID
	orgIDs := []uuid.UUID{uuid.New(), uuid.New()}

	suite.users.EXPECT().GetByID(gomock.Any(), p.ID).Return(user, nil)
	suite.orgs.EXPECT().GetActiveByUser(gomock.Any(), p.ID, 5).Return([]models.Organization{{Name: "Green City"}}, nil)
	suite.orgs.EXPECT().GetActiveIDsByUser(gomock.Any(), p.ID).Return(orgIDs, nil)
	suite.news.EXPECT().GetLatestByOrganizations(gomock.Any(), orgIDs, gomock.Any(), 5).Return([]models.News{{Title: "Cleanup day"}}, nil)
	suite.volunteering.EXPECT().GetUpcomingEvents(gomock.Any(), orgIDs, gomock.Any(), 5).Return([]models.Event{}, nil)
	suite.volunteering.EXPECT().GetRecommendedOpportunities(gomock.Any(), []string{"environment", "education"}, gomock.Any(), 6).
		Return([]models.VolunteeringOpportunity{{Title: "Tutor"}}, nil)
	suite.notifications.EXPECT().GetRecent(gomock.Any(), p.ID, 5).Return([]models.Notification{}, nil)
	suite.notifications.EXPECT().CountUnread(gomock.Any(), p.ID).Return(int64(3), nil)

	view, err := suite.service.GetDashboard(context.Background(), p)
	suite.Require().NoError(err)
	suite.Equal(user, view.User)
	suite.Len(view.Organizations, 1)
	suite.Len(view.LatestNews, 1)
	suite.Len(view.RecommendedOpportunities, 1)
	suite.Equal(int64(3), view.UnreadNotifications)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardUnknownUser() {
	p := volunteer()
	suite.users.EXPECT().GetByID(gomock.Any(), p.ID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.GetDashboard(context.Background(), p)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardRequiresPrincipal() {
	_, err := suite.service.GetDashboard(context.Background(), nil)
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *DashboardServiceTestSuite) TestGetPersonalizedWithoutInterests() {
	p := volunteer()
	user := &models.User{Name: p.Name, Email: p.Email}
	user.ID = p.ID

	suite.users.EXPECT().GetByID(gomock.Any(), p.ID).Return(user, nil)
	suite.orgs.EXPECT().GetActiveIDsByUser(gomock.Any(), p.ID).Return([]uuid.UUID{}, nil)
	suite.volunteering.EXPECT().GetRecommendedOpportunities(gomock.Any(), []string{}, gomock.Any(), 10).Return([]models.VolunteeringOpportunity{}, nil)
	suite.volunteering.EXPECT().GetUpcomingEvents(gomock.Any(), []uuid.UUID{}, gomock.Any(), 10).Return([]models.Event{}, nil)
	suite.news.EXPECT().GetLatestByOrganizations(gomock.Any(), []uuid.UUID{}, gomock.Any(), 10).Return([]models.News{}, nil)

	view, err := suite.service.GetPersonalized(context.Background(), p)
	suite.Require().NoError(err)
	suite.NotNil(view.Interests)
	suite.Empty(view.Interests)
}

func (suite *DashboardServiceTestSuite) TestGetActivitySummary() {
	p := volunteer()
	orgIDs := []uuid.UUID{uuid.New(), uuid.New()}

	suite.orgs.EXPECT().GetActiveIDsByUser(gomock.Any(), p.ID).Return(orgIDs, nil)
	suite.volunteering.EXPECT().GetApplicationStats(gomock.Any(), p.ID).
		Return(&repository.ApplicationStats{Total: 7, Approved: 5, VolunteerHours: 31.5}, nil)
	suite.forums.EXPECT().CountPostsByAuthor(gomock.Any(), p.ID).Return(int64(12), nil)
	suite.volunteering.EXPECT().CountUpcomingEvents(gomock.Any(), orgIDs, gomock.Any()).Return(int64(1), nil)
	suite.notifications.EXPECT().CountUnread(gomock.Any(), p.ID).Return(int64(4), nil)

	summary, err := suite.service.GetActivitySummary(context.Background(), p)
	suite.Require().NoError(err)
	suite.Equal(service.ActivitySummary{
		OrganizationsCount:   2,
		ApplicationsTotal:    7,
		ApplicationsApproved: 5,
		VolunteerHours:       31.5,
		ForumPosts:           12,
		UpcomingEvents:       1,
		UnreadNotifications:  4,
	}, *summary)
}

func (suite *DashboardServiceTestSuite) TestGetActivitySummaryPropagatesErrors() {
	p := volunteer()
	suite.orgs.EXPECT().GetActiveIDsByUser(gomock.Any(), p.ID).Return(nil, errors.New("timeout"))

	_, err := suite.service.GetActivitySummary(context.Background(), p)
	suite.ErrorContains(err, "timeout")
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
