package handlers_test

import (
	"net/http"
	"testing"

	"community-portal-backend/internal/api/handlers"
	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/mocks"
	"community-portal-backend/internal/service"
	"community-portal-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDashboardServiceInterface
	handler     *handlers.DashboardHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDashboardServiceInterface(suite.ctrl)
	suite.handler = handlers.NewDashboardHandler(suite.mockService)

	httpSuite, v1 := setupRouter(volunteer())
	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("", suite.handler.Index)
		dashboard.GET("/personalized", suite.handler.Personalized)
		dashboard.GET("/activity-summary", suite.handler.ActivitySummary)
	}
	suite.httpSuite = httpSuite
}

func (suite *DashboardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DashboardHandlerTestSuite) TestIndex() {
	view := &service.DashboardView{
		User:          &models.User{Name: "Ana Volunteer"},
		Organizations: []models.Organization{{Name: "Food Bank"}},
		UnreadNotifications: 3,
	}
	suite.mockService.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(view, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/dashboard", nil)

	var response struct {
		Data service.DashboardView `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Data.Organizations, 1)
	assert.Equal(suite.T(), int64(3), response.Data.UnreadNotifications)
}

func (suite *DashboardHandlerTestSuite) TestIndexUnknownUser() {
	suite.mockService.EXPECT().GetDashboard(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/dashboard", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

func (suite *DashboardHandlerTestSuite) TestPersonalized() {
	view := &service.PersonalizedDashboardView{Interests: []string{"environment"}}
	suite.mockService.EXPECT().GetPersonalized(gomock.Any(), gomock.Any()).Return(view, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/dashboard/personalized", nil)

	var response struct {
		Data service.PersonalizedDashboardView `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), []string{"environment"}, response.Data.Interests)
}

func (suite *DashboardHandlerTestSuite) TestActivitySummary() {
	summary := &service.ActivitySummary{OrganizationsCount: 2, ApplicationsTotal: 7, VolunteerHours: 31.5}
	suite.mockService.EXPECT().GetActivitySummary(gomock.Any(), gomock.Any()).Return(summary, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/dashboard/activity-summary", nil)

	var response struct {
		Data service.ActivitySummary `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), *summary, response.Data)
}

func (suite *DashboardHandlerTestSuite) TestRequiresPrincipal() {
	httpSuite, v1 := setupRouter(nil)
	v1.GET("/dashboard", suite.handler.Index)

	recorder := httpSuite.MakeRequest(http.MethodGet, "/api/v1/dashboard", nil)

	assert.Equal(suite.T(), http.StatusUnauthorized, recorder.Code)
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
