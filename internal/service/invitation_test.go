package service_test

import (
	"context"
	"testing"
	"time"

	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/mocks"
	"community-portal-backend/internal/repository"
	"community-portal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type InvitationServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	invitations *mocks.MockInvitationRepositoryInterface
	service     *service.InvitationService
}

func (suite *InvitationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.invitations = mocks.NewMockInvitationRepositoryInterface(suite.ctrl)
	suite.service = service.NewInvitationService(suite.invitations)
}

func (suite *InvitationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *InvitationServiceTestSuite) expectInvitation(email string, status models.InvitationStatus, expiresIn time.Duration) *models.OrganizationInvitation {
	org := &models.Organization{Name: "Green City"}
	org.ID = uuid.New()
	invitation := &models.OrganizationInvitation{
		OrganizationID: org.ID,
		Email:          email,
		Role:           models.MemberRoleMember,
		Token:          "invite-token",
		Status:         status,
		ExpiresAt:      time.Now().Add(expiresIn),
		Organization:   org,
	}
	invitation.ID = uuid.New()
	suite.invitations.EXPECT().GetByToken(gomock.Any(), "invite-token").Return(invitation, nil)
	return invitation
}

func (suite *InvitationServiceTestSuite) TestShow() {
	invitation := suite.expectInvitation("ana@example.org", models.InvitationStatusPending, time.Hour)

	view, err := suite.service.Show(context.Background(), "invite-token")
	suite.Require().NoError(err)
	suite.Equal(invitation.Organization, view.Organization)
	suite.True(view.CanRespond)
	suite.False(view.IsExpired)
}

func (suite *InvitationServiceTestSuite) TestShowExpired() {
	suite.expectInvitation("ana@example.org", models.InvitationStatusPending, -time.Hour)

	view, err := suite.service.Show(context.Background(), "invite-token")
	suite.Require().NoError(err)
	suite.False(view.CanRespond)
	suite.True(view.IsExpired)
}

func (suite *InvitationServiceTestSuite) TestShowUnknownToken() {
	suite.invitations.EXPECT().GetByToken(gomock.Any(), "missing").Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.service.Show(context.Background(), "missing")
	suite.ErrorIs(err, apperrors.ErrInvitationNotFound)

	_, err = suite.service.Show(context.Background(), " ")
	suite.ErrorIs(err, apperrors.ErrInvitationNotFound)
}

func (suite *InvitationServiceTestSuite) TestAccept() {
	p := volunteer()
	invitation := suite.expectInvitation("ANA@example.org", models.InvitationStatusPending, time.Hour)
	suite.invitations.EXPECT().Accept(gomock.Any(), invitation.ID, p.ID, gomock.Any()).Return(nil)

	result, err := suite.service.Accept(context.Background(), p, "invite-token")
	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.Equal("You have joined Green City.", result.Message)
	suite.Equal(models.InvitationStatusAccepted, invitation.Status)
}

func (suite *InvitationServiceTestSuite) TestAcceptAlreadyAccepted() {
	suite.expectInvitation("ana@example.org", models.InvitationStatusAccepted, time.Hour)

	result, err := suite.service.Accept(context.Background(), volunteer(), "invite-token")
	suite.Require().NoError(err)
	suite.False(result.Success)
	suite.Equal(service.ReasonNotPending, result.Reason)
}

func (suite *InvitationServiceTestSuite) TestAcceptExpiredPersistsStatus() {
	invitation := suite.expectInvitation("ana@example.org", models.InvitationStatusPending, -time.Minute)
	suite.invitations.EXPECT().MarkExpired(gomock.Any(), invitation.ID).Return(nil)

	result, err := suite.service.Accept(context.Background(), volunteer(), "invite-token")
	suite.Require().NoError(err)
	suite.Equal(service.ReasonExpired, result.Reason)
}

func (suite *InvitationServiceTestSuite) TestAcceptEmailMismatch() {
	suite.expectInvitation("someone@example.org", models.InvitationStatusPending, time.Hour)

	result, err := suite.service.Accept(context.Background(), volunteer(), "invite-token")
	suite.Require().NoError(err)
	suite.Equal(service.ReasonEmailMismatch, result.Reason)
}

func (suite *InvitationServiceTestSuite) TestAcceptLosesRace() {
	p := volunteer()
	invitation := suite.expectInvitation(p.Email, models.InvitationStatusPending, time.Hour)
	suite.invitations.EXPECT().Accept(gomock.Any(), invitation.ID, p.ID, gomock.Any()).Return(repository.ErrInvitationStateChanged)

	result, err := suite.service.Accept(context.Background(), p, "invite-token")
	suite.Require().NoError(err)
	suite.False(result.Success)
	suite.Equal(service.ReasonNotPending, result.Reason)
}

func (suite *InvitationServiceTestSuite) TestReject() {
	p := volunteer()
	invitation := suite.expectInvitation(p.Email, models.InvitationStatusPending, time.Hour)
	suite.invitations.EXPECT().Reject(gomock.Any(), invitation.ID, gomock.Any()).Return(nil)

	result, err := suite.service.Reject(context.Background(), p, "invite-token")
	suite.Require().NoError(err)
	suite.True(result.Success)
	suite.Equal(models.InvitationStatusRejected, invitation.Status)
}

func (suite *InvitationServiceTestSuite) TestRejectRequiresPrincipal() {
	_, err := suite.service.Reject(context.Background(), nil, "invite-token")
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *InvitationServiceTestSuite) TestListMine() {
	p := volunteer()
	suite.invitations.EXPECT().GetByEmail(gomock.Any(), p.Email, models.InvitationStatusPending).Return([]models.OrganizationInvitation{{}}, nil)

	invitations, err := suite.service.ListMine(context.Background(), p, "pending")
	suite.Require().NoError(err)
	suite.Len(invitations, 1)

	_, err = suite.service.ListMine(context.Background(), p, "cancelled")
	suite.True(apperrors.IsValidation(err))
}

func (suite *InvitationServiceTestSuite) TestPendingCount() {
	p := volunteer()
	suite.invitations.EXPECT().CountPending(gomock.Any(), p.Email, gomock.Any()).Return(int64(2), nil)

	count, err := suite.service.PendingCount(context.Background(), p)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func TestInvitationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvitationServiceTestSuite))
}
