package service_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/mocks"
	"community-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ReportServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	reports    *mocks.MockReportRepositoryInterface
	forums     *mocks.MockForumRepositoryInterface
	moderation *mocks.MockModerationRepositoryInterface
	service    *service.ReportService
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.reports = mocks.NewMockReportRepositoryInterface(suite.ctrl)
	suite.forums = mocks.NewMockForumRepositoryInterface(suite.ctrl)
	suite.moderation = mocks.NewMockModerationRepositoryInterface(suite.ctrl)
	suite.service = service.NewReportService(suite.reports, suite.forums, suite.moderation, service.NewValidator())
}

func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validReport() *service.SubmitReportRequest {
	return &service.SubmitReportRequest{Reason: "spam", Severity: "medium", Description: "Same link <b>five</b> times<script>alert(1)</script>"}
}

func (suite *ReportServiceTestSuite) expectPost(authorID uuid.UUID) models.ModerationTarget {
	post := &models.ForumPost{AuthorID: authorID, Status: models.ContentStatusActive}
	post.ID = uuid.New()
	suite.forums.EXPECT().GetPostByID(gomock.Any(), post.ID).Return(post, nil)
	return models.ModerationTarget{Kind: models.TargetKindPost, ID: post.ID}
}

func (suite *ReportServiceTestSuite) TestSubmitCreatesSanitizedReport() {
	p := volunteer()
	target := suite.expectPost(uuid.New())
	suite.reports.EXPECT().FindOpen(gomock.Any(), p.ID, target).Return(nil, gorm.ErrRecordNotFound)
	suite.reports.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, report *models.ForumReport) error {
			suite.Equal(p.ID, report.ReporterID)
			suite.Equal(models.TargetKindPost, report.ReportableType)
			suite.Equal(models.ReportStatusPending, report.Status)
			suite.NotContains(report.Description, "<")
			suite.Contains(report.Description, "five")
			return nil
		})

	result, err := suite.service.Submit(context.Background(), p, target, validReport())
	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.IsType(&models.ForumReport{}, result.Data)
}

func (suite *ReportServiceTestSuite) TestSubmitThreadTarget() {
	p := volunteer()
	thread := &models.ForumThread{AuthorID: uuid.New()}
	thread.ID = uuid.New()
	target := models.ModerationTarget{Kind: models.TargetKindThread, ID: thread.ID}
	suite.forums.EXPECT().GetThreadByID(gomock.Any(), thread.ID).Return(thread, nil)
	suite.reports.EXPECT().FindOpen(gomock.Any(), p.ID, target).Return(nil, gorm.ErrRecordNotFound)
	suite.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	result, err := suite.service.Submit(context.Background(), p, target, validReport())
	suite.Require().NoError(err)
	suite.True(result.Success)
}

func (suite *ReportServiceTestSuite) TestSubmitDuplicateWhileOpen() {
	p := volunteer()
	target := suite.expectPost(uuid.New())
	suite.reports.EXPECT().FindOpen(gomock.Any(), p.ID, target).Return(&models.ForumReport{}, nil)

	result, err := suite.service.Submit(context.Background(), p, target, validReport())
	suite.Require().NoError(err)
	suite.False(result.Success)
	suite.Equal(service.ReasonDuplicate, result.Reason)
	suite.Equal("You have already reported this content.", result.Message)
}

func (suite *ReportServiceTestSuite) TestSubmitDuplicateFromConcurrentInsert() {
	p := volunteer()
	target := suite.expectPost(uuid.New())
	suite.reports.EXPECT().FindOpen(gomock.Any(), p.ID, target).Return(nil, gorm.ErrRecordNotFound)
	suite.reports.EXPECT().Create(gomock.Any(), gomock.Any()).Return(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey))

	result, err := suite.service.Submit(context.Background(), p, target, validReport())
	suite.Require().NoError(err)
	suite.Equal(service.ReasonDuplicate, result.Reason)
}

func (suite *ReportServiceTestSuite) TestSubmitOwnContent() {
	p := volunteer()
	target := suite.expectPost(p.ID)

	_, err := suite.service.Submit(context.Background(), p, target, validReport())
	suite.ErrorIs(err, apperrors.ErrSelfReport)
	suite.True(apperrors.IsDomain(err))
}

func (suite *ReportServiceTestSuite) TestSubmitUnknownTarget() {
	id := uuid.New()
	suite.forums.EXPECT().GetThreadByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Submit(context.Background(), volunteer(), models.ModerationTarget{Kind: models.TargetKindThread, ID: id}, validReport())
	suite.ErrorIs(err, apperrors.ErrThreadNotFound)
}

func (suite *ReportServiceTestSuite) TestSubmitValidation() {
	tests := []struct {
		name  string
		req   *service.SubmitReportRequest
		field string
	}{
		{"missing reason", &service.SubmitReportRequest{Severity: "low"}, "reason"},
		{"unknown reason", &service.SubmitReportRequest{Reason: "boring", Severity: "low"}, "reason"},
		{"unknown severity", &service.SubmitReportRequest{Reason: "spam", Severity: "critical"}, "severity"},
		{"long description", &service.SubmitReportRequest{Reason: "spam", Severity: "low", Description: strings.Repeat("x", 1001)}, "description"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			_, err := suite.service.Submit(context.Background(), volunteer(), models.ModerationTarget{Kind: models.TargetKindPost, ID: uuid.New()}, tt.req)
			suite.Require().True(apperrors.IsValidation(err))
			suite.Contains(apperrors.FieldErrors(err), tt.field)
		})
	}
}

func (suite *ReportServiceTestSuite) TestListMine() {
	p := volunteer()
	suite.reports.EXPECT().GetByReporter(gomock.Any(), p.ID, 15, 15).Return([]models.ForumReport{{}}, int64(16), nil)

	view, err := suite.service.ListMine(context.Background(), p, 2, 0)
	suite.Require().NoError(err)
	suite.Equal(service.PageMeta{CurrentPage: 2, PerPage: 15, Total: 16, LastPage: 2}, view.Meta)
}

func (suite *ReportServiceTestSuite) TestGetVisibility() {
	owner := volunteer()
	report := &models.ForumReport{ReporterID: owner.ID}
	report.ID = uuid.New()
	suite.reports.EXPECT().GetByID(gomock.Any(), report.ID).Return(report, nil).Times(3)

	got, err := suite.service.Get(context.Background(), owner, report.ID)
	suite.Require().NoError(err)
	suite.Equal(report, got)

	_, err = suite.service.Get(context.Background(), moderator(), report.ID)
	suite.NoError(err)

	_, err = suite.service.Get(context.Background(), volunteer(), report.ID)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ReportServiceTestSuite) TestGetUnknown() {
	id := uuid.New()
	suite.reports.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Get(context.Background(), volunteer(), id)
	suite.ErrorIs(err, apperrors.ErrReportNotFound)
}

func (suite *ReportServiceTestSuite) TestTargetHistory() {
	target := models.ModerationTarget{Kind: models.TargetKindThread, ID: uuid.New()}
	suite.reports.EXPECT().GetByTarget(gomock.Any(), target).Return([]models.ForumReport{{}}, nil)
	suite.moderation.EXPECT().GetActionsByTarget(gomock.Any(), target).Return([]models.ModerationAction{{Action: models.ModerationActionLock}}, nil)

	history, err := suite.service.TargetHistory(context.Background(), moderator(), target)
	suite.Require().NoError(err)
	suite.Len(history.Reports, 1)
	suite.Len(history.Actions, 1)
}

func (suite *ReportServiceTestSuite) TestTargetHistoryGuards() {
	_, err := suite.service.TargetHistory(context.Background(), volunteer(), models.ModerationTarget{Kind: models.TargetKindPost, ID: uuid.New()})
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.service.TargetHistory(context.Background(), moderator(), models.ModerationTarget{Kind: "user", ID: uuid.New()})
	suite.ErrorIs(err, apperrors.ErrInvalidTargetKind)
	suite.True(apperrors.IsValidation(err))
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
