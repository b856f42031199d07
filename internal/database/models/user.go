package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserStatus represents the account state of a user
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// UserRole represents the platform-wide role of a user
type UserRole string

const (
	UserRoleVolunteer UserRole = "volunteer"
	UserRoleModerator UserRole = "moderator"
	UserRoleAdmin     UserRole = "admin"
)

// User is a registered platform account. Identity is managed elsewhere; this service only reads it.
type User struct {
	BaseModel
	Name      string                      `json:"name" gorm:"size:255;not null"`
	Email     string                      `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Status    UserStatus                  `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	Role      UserRole                    `json:"role" gorm:"type:varchar(20);not null;default:'volunteer'"`
	RegionID  *uuid.UUID                  `json:"region_id,omitempty" gorm:"type:uuid;index"`
	Interests datatypes.JSONSlice[string] `json:"interests" gorm:"type:jsonb"`

	Memberships []OrganizationMember `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
