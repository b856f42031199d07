package models

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationStatus represents the lifecycle state of an organization
type OrganizationStatus string

const (
	OrganizationStatusPending   OrganizationStatus = "pending"
	OrganizationStatusActive    OrganizationStatus = "active"
	OrganizationStatusSuspended OrganizationStatus = "suspended"
)

// MemberRole represents the role of a user inside an organization
type MemberRole string

const (
	MemberRoleMember MemberRole = "member"
	MemberRoleAdmin  MemberRole = "admin"
)

// IsValid checks if the MemberRole is valid
func (r MemberRole) IsValid() bool {
	switch r {
	case MemberRoleMember, MemberRoleAdmin:
		return true
	}
	return false
}

// Region is a geographic area used to scope news and users
type Region struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;uniqueIndex;not null"`
}

// TableName returns the table name for Region
func (Region) TableName() string {
	return "regions"
}

// Organization is a civic organization publishing news, events and opportunities
type Organization struct {
	BaseModel
	Name        string             `json:"name" gorm:"size:255;not null"`
	Slug        string             `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Description string             `json:"description" gorm:"type:text"`
	Website     string             `json:"website" gorm:"size:255"`
	LogoURL     string             `json:"logo_url" gorm:"size:500"`
	Status      OrganizationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	RegionID    *uuid.UUID         `json:"region_id,omitempty" gorm:"type:uuid;index"`

	Members []OrganizationMember `json:"members,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// OrganizationMember is the membership join between users and organizations.
// (organization_id, user_id) is unique so a user can join an organization once.
type OrganizationMember struct {
	BaseModel
	OrganizationID uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_organization_members_org_user"`
	UserID         uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_organization_members_org_user;index"`
	Role           MemberRole `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	JoinedAt       time.Time  `json:"joined_at"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for OrganizationMember
func (OrganizationMember) TableName() string {
	return "organization_members"
}
