package testutils

import (
	"time"

	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates an active volunteer with a unique email
func (f *UserFactory) Create() *models.User {
	base := newBase()
	return &models.User{
		BaseModel: base,
		Name:      "Ana Volunteer",
		Email:     "user-" + base.ID.String()[:8] + "@example.org",
		Status:    models.UserStatusActive,
		Role:      models.UserRoleVolunteer,
		Interests: datatypes.JSONSlice[string]{"environment"},
	}
}

// WithRole creates a user with the given role
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// WithEmail creates a user with the given email
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates an active organization with a unique slug
func (f *OrganizationFactory) Create() *models.Organization {
	base := newBase()
	return &models.Organization{
		BaseModel:   base,
		Name:        "Green Streets",
		Slug:        "green-streets-" + base.ID.String()[:8],
		Description: "Neighbourhood clean-up collective",
		Status:      models.OrganizationStatusActive,
	}
}

// InvitationFactory provides methods to create test OrganizationInvitation data
type InvitationFactory struct{}

// NewInvitationFactory creates a new InvitationFactory
func NewInvitationFactory() *InvitationFactory {
	return &InvitationFactory{}
}

// Create creates a pending invitation expiring in a week
func (f *InvitationFactory) Create(organizationID uuid.UUID, email string) *models.OrganizationInvitation {
	return &models.OrganizationInvitation{
		BaseModel:      newBase(),
		OrganizationID: organizationID,
		Email:          email,
		Role:           models.MemberRoleMember,
		Token:          uuid.NewString(),
		Status:         models.InvitationStatusPending,
		ExpiresAt:      time.Now().Add(7 * 24 * time.Hour),
	}
}

// Expired creates a pending invitation whose expiry has passed
func (f *InvitationFactory) Expired(organizationID uuid.UUID, email string) *models.OrganizationInvitation {
	invitation := f.Create(organizationID, email)
	invitation.ExpiresAt = time.Now().Add(-time.Hour)
	return invitation
}

// ForumFactory provides methods to create test forum, thread and post data
type ForumFactory struct{}

// NewForumFactory creates a new ForumFactory
func NewForumFactory() *ForumFactory {
	return &ForumFactory{}
}

// Forum creates an active forum with a unique slug
func (f *ForumFactory) Forum() *models.Forum {
	base := newBase()
	return &models.Forum{
		BaseModel: base,
		Name:      "General",
		Slug:      "general-" + base.ID.String()[:8],
		IsActive:  true,
	}
}

// Thread creates an active thread in the forum
func (f *ForumFactory) Thread(forumID, authorID uuid.UUID) *models.ForumThread {
	return &models.ForumThread{
		BaseModel: newBase(),
		ForumID:   forumID,
		AuthorID:  authorID,
		Title:     "Saturday clean-up",
		Status:    models.ContentStatusActive,
	}
}

// Post creates an active post in the thread
func (f *ForumFactory) Post(threadID, authorID uuid.UUID) *models.ForumPost {
	return &models.ForumPost{
		BaseModel: newBase(),
		ThreadID:  threadID,
		AuthorID:  authorID,
		Content:   "Count me in",
		Status:    models.ContentStatusActive,
	}
}

// Attachment creates an attachment on the post
func (f *ForumFactory) Attachment(postID, uploaderID uuid.UUID, mimeType string) *models.ForumAttachment {
	base := newBase()
	return &models.ForumAttachment{
		BaseModel:    base,
		PostID:       postID,
		UploaderID:   uploaderID,
		OriginalName: "flyer.png",
		Path:         "forum-attachments/" + base.ID.String(),
		MimeType:     mimeType,
		Size:         1024,
	}
}

// ReportFactory provides methods to create test ForumReport data
type ReportFactory struct{}

// NewReportFactory creates a new ReportFactory
func NewReportFactory() *ReportFactory {
	return &ReportFactory{}
}

// Create creates a pending spam report against the target
func (f *ReportFactory) Create(reporterID uuid.UUID, target models.ModerationTarget) *models.ForumReport {
	return &models.ForumReport{
		BaseModel:      newBase(),
		ReporterID:     reporterID,
		ReportableType: target.Kind,
		ReportableID:   target.ID,
		Reason:         models.ReportReasonSpam,
		Severity:       models.SeverityLow,
		Status:         models.ReportStatusPending,
	}
}

// SubscriptionFactory provides methods to create test NewsletterSubscription data
type SubscriptionFactory struct{}

// NewSubscriptionFactory creates a new SubscriptionFactory
func NewSubscriptionFactory() *SubscriptionFactory {
	return &SubscriptionFactory{}
}

// Create creates an active subscription with every topic enabled
func (f *SubscriptionFactory) Create(email string) *models.NewsletterSubscription {
	return &models.NewsletterSubscription{
		BaseModel:    newBase(),
		Email:        email,
		Preferences:  datatypes.NewJSONType(models.PreferencesFromMap(nil)),
		Token:        uuid.NewString(),
		Status:       models.SubscriptionStatusSubscribed,
		SubscribedAt: time.Now(),
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Invitation   *InvitationFactory
	Forum        *ForumFactory
	Report       *ReportFactory
	Subscription *SubscriptionFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organization: NewOrganizationFactory(),
		Invitation:   NewInvitationFactory(),
		Forum:        NewForumFactory(),
		Report:       NewReportFactory(),
		Subscription: NewSubscriptionFactory(),
	}
}
