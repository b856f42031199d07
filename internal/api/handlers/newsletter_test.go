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

type NewsletterHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNewsletterServiceInterface
	handler     *handlers.NewsletterHandler
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *NewsletterHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNewsletterServiceInterface(suite.ctrl)
	suite.handler = handlers.NewNewsletterHandler(suite.mockService)

	httpSuite, v1 := setupRouter(nil)
	newsletter := v1.Group("/newsletter")
	{
		newsletter.GET("", suite.handler.Overview)
		newsletter.POST("/subscribe", suite.handler.Subscribe)
		newsletter.POST("/unsubscribe", suite.handler.Unsubscribe)
		newsletter.GET("/unsubscribe", suite.handler.UnsubscribeLink)
		newsletter.POST("/preferences", suite.handler.UpdatePreferences)
		newsletter.GET("/status", suite.handler.Status)
	}
	suite.httpSuite = httpSuite
}

func (suite *NewsletterHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NewsletterHandlerTestSuite) TestOverviewAnonymous() {
	suite.mockService.EXPECT().
		Overview(gomock.Any(), gomock.Nil()).
		Return(&service.NewsletterOverview{Topics: models.NewsletterTopics}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/newsletter", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *NewsletterHandlerTestSuite) TestSubscribe() {
	req := service.SubscribeRequest{Email: "ana@example.org", Preferences: map[string]bool{"events": false}}
	view := service.SubscriptionView{Email: "ana@example.org", Preferences: models.NewsletterPreferences{News: true, Events: false, Resources: true, Volunteering: true}}
	suite.mockService.EXPECT().
		Subscribe(gomock.Any(), gomock.Nil(), &req).
		Return(&service.ActionResult{Success: true, Message: "You are subscribed.", Data: view}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/newsletter/subscribe", req)

	var response struct {
		Success bool                     `json:"success"`
		Data    service.SubscriptionView `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.True(suite.T(), response.Success)
	assert.False(suite.T(), response.Data.Preferences.Events)
	assert.True(suite.T(), response.Data.Preferences.News)
}

func (suite *NewsletterHandlerTestSuite) TestSubscribeInvalidEmail() {
	suite.mockService.EXPECT().
		Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationErrors(map[string]string{"email": "email must be a valid email address"}))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/newsletter/subscribe", map[string]string{"email": "nope"})

	var response handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusUnprocessableEntity, &response)
	assert.Contains(suite.T(), response.Errors, "email")
}

func (suite *NewsletterHandlerTestSuite) TestUnsubscribeReasons() {
	cases := []struct {
		name   string
		reason string
		status int
	}{
		{"unknown email", service.ReasonNotSubscribed, http.StatusNotFound},
		{"token mismatch", service.ReasonInvalidToken, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.mockService.EXPECT().
				Unsubscribe(gomock.Any(), gomock.Any()).
				Return(&service.ActionResult{Success: false, Reason: tc.reason, Message: "failed"}, nil)

			recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/newsletter/unsubscribe",
				service.UnsubscribeRequest{Email: "ana@example.org", Token: "abc"})

			testutils.AssertErrorResponse(suite.T(), recorder, tc.status, "failed")
		})
	}
}

func (suite *NewsletterHandlerTestSuite) TestUnsubscribeLinkNeutralForm() {
	form := service.NewsletterForm{Form: service.FormUnsubscribe, Email: "ana@example.org"}
	suite.mockService.EXPECT().
		UnsubscribeLink(gomock.Any(), "ana@example.org", "").
		Return(&service.ActionResult{Success: true, Data: form}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/newsletter/unsubscribe?email=ana@example.org", nil)

	var response struct {
		Success bool                   `json:"success"`
		Data    service.NewsletterForm `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.True(suite.T(), response.Success)
	assert.Equal(suite.T(), service.FormUnsubscribe, response.Data.Form)
}

func (suite *NewsletterHandlerTestSuite) TestUpdatePreferencesMismatch() {
	suite.mockService.EXPECT().
		UpdatePreferences(gomock.Any(), gomock.Nil(), gomock.Any()).
		Return(&service.ActionResult{Success: false, Reason: service.ReasonEmailMismatch, Message: "This action is unauthorized."}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/newsletter/preferences",
		service.UpdatePreferencesRequest{Email: "ana@example.org", Preferences: map[string]bool{"news": false}})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "")
}

func (suite *NewsletterHandlerTestSuite) TestStatus() {
	prefs := models.NewsletterPreferences{News: true, Events: true, Resources: false, Volunteering: true}
	suite.mockService.EXPECT().
		Status(gomock.Any(), "ana@example.org").
		Return(&service.NewsletterStatus{Subscribed: true, Preferences: &prefs}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/newsletter/status?email=ana@example.org", nil)

	var response handlers.NewsletterStatusResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.True(suite.T(), response.Success)
	assert.True(suite.T(), response.Subscribed)
	assert.NotNil(suite.T(), response.Preferences)
	assert.False(suite.T(), response.Preferences.Resources)
}

func (suite *NewsletterHandlerTestSuite) TestStatusNotSubscribedOmitsPreferences() {
	suite.mockService.EXPECT().
		Status(gomock.Any(), "bob@example.org").
		Return(&service.NewsletterStatus{Subscribed: false}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/newsletter/status?email=bob@example.org", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.NotContains(suite.T(), recorder.Body.String(), "preferences")
}

func TestNewsletterHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NewsletterHandlerTestSuite))
}
