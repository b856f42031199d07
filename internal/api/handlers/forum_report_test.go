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

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ForumReportHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockReports    *mocks.MockReportServiceInterface
	mockModeration *mocks.MockModerationServiceInterface
	handler        *handlers.ForumReportHandler
	httpSuite      *testutils.HTTPTestSuite
}

func (suite *ForumReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReports = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.mockModeration = mocks.NewMockModerationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewForumReportHandler(suite.mockReports, suite.mockModeration)

	httpSuite, v1 := setupRouter(volunteer())
	reports := v1.Group("/forum-reports")
	{
		reports.POST("/threads/:id", suite.handler.ReportThread)
		reports.POST("/posts/:id", suite.handler.ReportPost)
		reports.GET("/mine", suite.handler.Mine)
		reports.GET("/my-history", suite.handler.MyHistory)
		reports.GET("/warnings", suite.handler.Warnings)
		reports.POST("/warnings/:id/acknowledge", suite.handler.AcknowledgeWarning)
		reports.GET("/history/:kind/:id", suite.handler.History)
		reports.GET("/can-post/:forumId", suite.handler.CanPost)
		reports.GET("/can-reply/:threadId", suite.handler.CanReply)
		reports.GET("/:id", suite.handler.Show)
	}
	suite.httpSuite = httpSuite
}

func (suite *ForumReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func reportBody() service.SubmitReportRequest {
	return service.SubmitReportRequest{Reason: "spam", Severity: "medium", Description: "Same link everywhere"}
}

func (suite *ForumReportHandlerTestSuite) TestReportThreadCreated() {
	threadID := uuid.New()
	target := models.ModerationTarget{Kind: models.TargetKindThread, ID: threadID}
	body := reportBody()
	suite.mockReports.EXPECT().
		Submit(gomock.Any(), gomock.Any(), target, &body).
		Return(&service.ActionResult{Success: true, Message: "Thank you. Your report has been submitted for review."}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/forum-reports/threads/"+threadID.String(), body)

	var response handlers.Response
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.True(suite.T(), response.Success)
	assert.Contains(suite.T(), response.Message, "submitted for review")
}

func (suite *ForumReportHandlerTestSuite) TestReportPostDuplicate() {
	postID := uuid.New()
	target := models.ModerationTarget{Kind: models.TargetKindPost, ID: postID}
	suite.mockReports.EXPECT().
		Submit(gomock.Any(), gomock.Any(), target, gomock.Any()).
		Return(&service.ActionResult{Success: false, Reason: service.ReasonDuplicate, Message: service.MessageDuplicateReport}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/forum-reports/posts/"+postID.String(), reportBody())

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, service.MessageDuplicateReport)
}

func (suite *ForumReportHandlerTestSuite) TestReportValidationErrors() {
	postID := uuid.New()
	suite.mockReports.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.NewValidationErrors(map[string]string{"reason": "reason is required"}))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/forum-reports/posts/"+postID.String(), map[string]string{})

	var response handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusUnprocessableEntity, &response)
	assert.Equal(suite.T(), "The given data was invalid.", response.Message)
	assert.Contains(suite.T(), response.Errors, "reason")
}

func (suite *ForumReportHandlerTestSuite) TestReportSelf() {
	threadID := uuid.New()
	suite.mockReports.EXPECT().
		Submit(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrSelfReport)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/forum-reports/threads/"+threadID.String(), reportBody())

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "You cannot report your own content.")
}

func (suite *ForumReportHandlerTestSuite) TestReportMalformedBody() {
	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/forum-reports/threads/"+uuid.NewString(), "{not json")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnprocessableEntity, "The request body is invalid.")
}

func (suite *ForumReportHandlerTestSuite) TestMine() {
	view := &service.ReportListView{
		Data: []models.ForumReport{{Reason: models.ReportReasonSpam}},
		Meta: service.PageMeta{CurrentPage: 2, PerPage: 15, Total: 16, LastPage: 2},
	}
	suite.mockReports.EXPECT().ListMine(gomock.Any(), gomock.Any(), 2, 0).Return(view, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/forum-reports/mine?page=2", nil)

	var response struct {
		Data []models.ForumReport `json:"data"`
		Meta service.PageMeta     `json:"meta"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), 2, response.Meta.LastPage)
}

func (suite *ForumReportHandlerTestSuite) TestShowForbidden() {
	id := uuid.New()
	suite.mockReports.EXPECT().Get(gomock.Any(), gomock.Any(), id).Return(nil, apperrors.ErrForbidden)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/forum-reports/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "")
}

func (suite *ForumReportHandlerTestSuite) TestHistoryInvalidKind() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/forum-reports/history/forum/"+uuid.NewString(), nil)

	var response handlers.ErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusUnprocessableEntity, &response)
	assert.Contains(suite.T(), response.Errors, "kind")
}

func (suite *ForumReportHandlerTestSuite) TestHistory() {
	postID := uuid.New()
	target := models.ModerationTarget{Kind: models.TargetKindPost, ID: postID}
	suite.mockReports.EXPECT().
		TargetHistory(gomock.Any(), gomock.Any(), target).
		Return(&service.TargetHistory{Target: target}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/forum-reports/history/post/"+postID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *ForumReportHandlerTestSuite) TestAcknowledgeWarning() {
	id := uuid.New()
	suite.mockModeration.EXPECT().
		AcknowledgeWarning(gomock.Any(), gomock.Any(), id).
		Return(&models.ForumWarning{Status: models.WarningStatusAcknowledged}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/forum-reports/warnings/"+id.String()+"/acknowledge", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *ForumReportHandlerTestSuite) TestWarnings() {
	suite.mockModeration.EXPECT().Warnings(gomock.Any(), gomock.Any()).Return([]models.ForumWarning{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/forum-reports/warnings", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *ForumReportHandlerTestSuite) TestMyHistory() {
	suite.mockModeration.EXPECT().MyHistory(gomock.Any(), gomock.Any()).Return(&service.ModerationHistory{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/forum-reports/my-history", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

func (suite *ForumReportHandlerTestSuite) TestCanPostDenied() {
	forumID := uuid.New()
	suite.mockModeration.EXPECT().
		CanPost(gomock.Any(), gomock.Any(), forumID).
		Return(&service.PostPermission{CanPost: false, Reason: service.DenialForumClosed}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/forum-reports/can-post/"+forumID.String(), nil)

	var response struct {
		Data service.PostPermission `json:"data"`
	}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.False(suite.T(), response.Data.CanPost)
	assert.Equal(suite.T(), service.DenialForumClosed, response.Data.Reason)
}

func (suite *ForumReportHandlerTestSuite) TestCanReplyUnknownThread() {
	threadID := uuid.New()
	suite.mockModeration.EXPECT().CanReply(gomock.Any(), gomock.Any(), threadID).Return(nil, apperrors.ErrThreadNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/forum-reports/can-reply/"+threadID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "thread not found")
}

func TestForumReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ForumReportHandlerTestSuite))
}
