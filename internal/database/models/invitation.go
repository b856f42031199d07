package models

import (
	"time"

	"github.com/google/uuid"
)

// InvitationStatus represents the state of an organization invitation
type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "pending"
	InvitationStatusAccepted InvitationStatus = "accepted"
	InvitationStatusRejected InvitationStatus = "rejected"
	InvitationStatusExpired  InvitationStatus = "expired"
)

// OrganizationInvitation invites an email address to join an organization.
// It is looked up by Token only.
type OrganizationInvitation struct {
	BaseModel
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index"`
	InvitedBy      *uuid.UUID       `json:"invited_by,omitempty" gorm:"type:uuid"`
	Email          string           `json:"email" gorm:"size:255;not null;index"`
	Role           MemberRole       `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	Token          string           `json:"-" gorm:"size:64;uniqueIndex;not null"`
	Message        string           `json:"message" gorm:"type:text"`
	Status         InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ExpiresAt      time.Time        `json:"expires_at" gorm:"not null"`
	RespondedAt    *time.Time       `json:"responded_at,omitempty"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for OrganizationInvitation
func (OrganizationInvitation) TableName() string {
	return "organization_invitations"
}

// IsExpired reports whether the invitation expired at the given time
func (i *OrganizationInvitation) IsExpired(now time.Time) bool {
	return i.Status == InvitationStatusExpired || !now.Before(i.ExpiresAt)
}

// CanRespond reports whether the invitation may still be accepted or rejected
func (i *OrganizationInvitation) CanRespond(now time.Time) bool {
	return i.Status == InvitationStatusPending && !i.IsExpired(now)
}
