package service_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/mocks"
	"community-portal-backend/internal/repository"
	"community-portal-backend/internal/service"
	"community-portal-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AttachmentServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	attachments *mocks.MockAttachmentRepositoryInterface
	storage     *mocks.MockStorage
	service     *service.AttachmentService
}

func (suite *AttachmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.attachments = mocks.NewMockAttachmentRepositoryInterface(suite.ctrl)
	suite.storage = mocks.NewMockStorage(suite.ctrl)
	suite.service = service.NewAttachmentService(suite.attachments, suite.storage)
}

func (suite *AttachmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func attachmentWith(mimeType string, authorID uuid.UUID, postStatus, threadStatus models.ContentStatus) *models.ForumAttachment {
	a := &models.ForumAttachment{
		OriginalName: "flyer.png",
		Path:         "attachments/flyer.png",
		MimeType:     mimeType,
		Size:         2048,
		Post: &models.ForumPost{
			AuthorID: authorID,
			Status:   postStatus,
			Thread:   &models.ForumThread{Status: threadStatus},
		},
	}
	a.ID = uuid.New()
	return a
}

func TestCanUserAccessAttachment(t *testing.T) {
	visible := attachmentWith("image/png", uuid.New(), models.ContentStatusActive, models.ContentStatusActive)
	hiddenPost := attachmentWith("image/png", uuid.New(), models.ContentStatusHidden, models.ContentStatusActive)
	hiddenThread := attachmentWith("image/png", uuid.New(), models.ContentStatusActive, models.ContentStatusDeleted)

	tests := []struct {
		name       string
		principal  *auth.Principal
		attachment *models.ForumAttachment
		want       bool
	}{
		{"volunteer on visible content", volunteer(), visible, true},
		{"volunteer on hidden post", volunteer(), hiddenPost, false},
		{"volunteer on deleted thread", volunteer(), hiddenThread, false},
		{"moderator on hidden post", moderator(), hiddenPost, true},
		{"suspended volunteer", suspended(volunteer()), visible, false},
		{"anonymous", nil, visible, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.CanUserAccessAttachment(tt.principal, tt.attachment))
		})
	}
}

func (suite *AttachmentServiceTestSuite) TestDownload() {
	a := attachmentWith("application/pdf", uuid.New(), models.ContentStatusActive, models.ContentStatusActive)
	suite.attachments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.storage.EXPECT().Open(gomock.Any(), a.Path).Return(io.NopCloser(strings.NewReader("%PDF")), nil)
	suite.attachments.EXPECT().IncrementDownloads(gomock.Any(), a.ID).Return(nil)

	file, err := suite.service.Download(context.Background(), volunteer(), a.ID)
	suite.Require().NoError(err)
	defer file.Content.Close()
	body, _ := io.ReadAll(file.Content)
	suite.Equal("%PDF", string(body))
	suite.Equal(int64(1), file.Attachment.DownloadCount)
}

func (suite *AttachmentServiceTestSuite) TestDownloadMissingFile() {
	a := attachmentWith("application/pdf", uuid.New(), models.ContentStatusActive, models.ContentStatusActive)
	suite.attachments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.storage.EXPECT().Open(gomock.Any(), a.Path).Return(nil, storage.ErrNotFound)

	_, err := suite.service.Download(context.Background(), volunteer(), a.ID)
	suite.ErrorIs(err, apperrors.ErrFileNotFound)
	suite.Equal("file not found", err.Error())
}

func (suite *AttachmentServiceTestSuite) TestDownloadForbidden() {
	a := attachmentWith("application/pdf", uuid.New(), models.ContentStatusHidden, models.ContentStatusActive)
	suite.attachments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)

	_, err := suite.service.Download(context.Background(), volunteer(), a.ID)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AttachmentServiceTestSuite) TestDownloadUnknown() {
	id := uuid.New()
	suite.attachments.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Download(context.Background(), volunteer(), id)
	suite.ErrorIs(err, apperrors.ErrAttachmentNotFound)
}

func (suite *AttachmentServiceTestSuite) TestShowRejectsNonImagesBeforeAccess() {
	// A moderator has access, a hidden post would deny a volunteer; both get 404 for a PDF
	a := attachmentWith("application/pdf", uuid.New(), models.ContentStatusHidden, models.ContentStatusActive)
	suite.attachments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil).Times(2)

	_, err := suite.service.Show(context.Background(), moderator(), a.ID)
	suite.ErrorIs(err, apperrors.ErrFileNotFound)
	_, err = suite.service.Show(context.Background(), volunteer(), a.ID)
	suite.ErrorIs(err, apperrors.ErrFileNotFound)
}

func (suite *AttachmentServiceTestSuite) TestShowImage() {
	a := attachmentWith("image/png", uuid.New(), models.ContentStatusActive, models.ContentStatusActive)
	suite.attachments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.storage.EXPECT().Exists(gomock.Any(), a.Path).Return(true, nil)
	suite.storage.EXPECT().Open(gomock.Any(), a.Path).Return(io.NopCloser(strings.NewReader("png")), nil)

	file, err := suite.service.Show(context.Background(), volunteer(), a.ID)
	suite.Require().NoError(err)
	suite.NoError(file.Content.Close())
}

func (suite *AttachmentServiceTestSuite) TestShowMissingImage() {
	a := attachmentWith("image/png", uuid.New(), models.ContentStatusActive, models.ContentStatusActive)
	suite.attachments.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.storage.EXPECT().Exists(gomock.Any(), a.Path).Return(false, nil)

	_, err := suite.service.Show(context.Background(), volunteer(), a.ID)
	suite.ErrorIs(err, apperrors.ErrFileNotFound)
}

// runGuard makes the DeleteLocked mock behave like the repository: run the guard on the row
func runGuard(a *models.ForumAttachment) func(context.Context, uuid.UUID, func(*models.ForumAttachment) error) (*models.ForumAttachment, error) {
	return func(_ context.Context, _ uuid.UUID, guard func(*models.ForumAttachment) error) (*models.ForumAttachment, error) {
		if err := guard(a); err != nil {
			return nil, err
		}
		return a, nil
	}
}

func (suite *AttachmentServiceTestSuite) TestDeleteByAuthor() {
	p := volunteer()
	a := attachmentWith("image/png", p.ID, models.ContentStatusActive, models.ContentStatusActive)
	suite.attachments.EXPECT().DeleteLocked(gomock.Any(), a.ID, gomock.Any()).DoAndReturn(runGuard(a))
	suite.storage.EXPECT().Delete(gomock.Any(), a.Path).Return(nil)

	suite.NoError(suite.service.Delete(context.Background(), p, a.ID))
}

func (suite *AttachmentServiceTestSuite) TestDeleteByModerator() {
	a := attachmentWith("image/png", uuid.New(), models.ContentStatusActive, models.ContentStatusActive)
	suite.attachments.EXPECT().DeleteLocked(gomock.Any(), a.ID, gomock.Any()).DoAndReturn(runGuard(a))
	suite.storage.EXPECT().Delete(gomock.Any(), a.Path).Return(errors.New("bucket offline"))

	// A storage failure after commit is logged, not returned
	suite.NoError(suite.service.Delete(context.Background(), moderator(), a.ID))
}

func (suite *AttachmentServiceTestSuite) TestDeleteForbidden() {
	a := attachmentWith("image/png", uuid.New(), models.ContentStatusActive, models.ContentStatusActive)
	suite.attachments.EXPECT().DeleteLocked(gomock.Any(), a.ID, gomock.Any()).DoAndReturn(runGuard(a))

	suite.ErrorIs(suite.service.Delete(context.Background(), volunteer(), a.ID), apperrors.ErrForbidden)
}

func (suite *AttachmentServiceTestSuite) TestDeleteAlreadyGone() {
	id := uuid.New()
	suite.attachments.EXPECT().DeleteLocked(gomock.Any(), id, gomock.Any()).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.service.Delete(context.Background(), moderator(), id), apperrors.ErrAttachmentNotFound)
}

func (suite *AttachmentServiceTestSuite) TestStats() {
	suite.attachments.EXPECT().GetStatsByMimeType(gomock.Any()).Return([]repository.AttachmentMimeStats{
		{MimeType: "image/png", Count: 3, Size: 3072, Downloads: 10},
		{MimeType: "image/jpeg", Count: 1, Size: 1024, Downloads: 2},
		{MimeType: "application/pdf", Count: 2, Size: 1048576, Downloads: 5},
		{MimeType: "application/zip", Count: 1, Size: 512, Downloads: 0},
		{MimeType: "audio/mpeg", Count: 1, Size: 100, Downloads: 1},
	}, nil)

	stats, err := suite.service.Stats(context.Background(), admin())
	suite.Require().NoError(err)
	suite.Equal(int64(8), stats.TotalAttachments)
	suite.Equal(int64(18), stats.TotalDownloads)
	suite.Equal(int64(4), stats.ByType[models.AttachmentCategoryImage].Count)
	suite.Equal("4.0 KiB", stats.ByType[models.AttachmentCategoryImage].SizeHuman)
	suite.Equal("1.0 MiB", stats.ByType[models.AttachmentCategoryDocument].SizeHuman)
	suite.Equal(int64(1), stats.ByType[models.AttachmentCategoryArchive].Count)
	suite.Equal(int64(1), stats.ByType[models.AttachmentCategoryOther].Count)
}

func (suite *AttachmentServiceTestSuite) TestStatsRequiresCapability() {
	_, err := suite.service.Stats(context.Background(), moderator())
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestAttachmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttachmentServiceTestSuite))
}
