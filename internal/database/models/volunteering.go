package models

import (
	"time"

	"github.com/google/uuid"
)

// EventStatus represents the state of an event
type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
)

// Event is a dated gathering hosted by an organization
type Event struct {
	BaseModel
	OrganizationID  uuid.UUID   `json:"organization_id" gorm:"type:uuid;not null;index"`
	Title           string      `json:"title" gorm:"size:255;not null"`
	Description     string      `json:"description" gorm:"type:text"`
	Location        string      `json:"location" gorm:"size:255"`
	Category        string      `json:"category" gorm:"size:50;index"`
	Status          EventStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	StartDate       time.Time   `json:"start_date" gorm:"not null;index"`
	EndDate         *time.Time  `json:"end_date,omitempty"`
	Capacity        int         `json:"capacity" gorm:"default:0"`
	RegisteredCount int         `json:"registered_count" gorm:"default:0"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}

// OpportunityStatus represents the state of a volunteering opportunity
type OpportunityStatus string

const (
	OpportunityStatusDraft  OpportunityStatus = "draft"
	OpportunityStatusActive OpportunityStatus = "active"
	OpportunityStatusClosed OpportunityStatus = "closed"
)

// VolunteeringOpportunity is an open call for volunteers
type VolunteeringOpportunity struct {
	BaseModel
	OrganizationID       uuid.UUID         `json:"organization_id" gorm:"type:uuid;not null;index"`
	Title                string            `json:"title" gorm:"size:255;not null"`
	Description          string            `json:"description" gorm:"type:text"`
	Category             string            `json:"category" gorm:"size:50;index"`
	Location             string            `json:"location" gorm:"size:255"`
	Status               OpportunityStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	StartDate            time.Time         `json:"start_date" gorm:"not null"`
	EndDate              *time.Time        `json:"end_date,omitempty"`
	VolunteersNeeded     int               `json:"volunteers_needed" gorm:"default:0"`
	VolunteersRegistered int               `json:"volunteers_registered" gorm:"default:0"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for VolunteeringOpportunity
func (VolunteeringOpportunity) TableName() string {
	return "volunteering_opportunities"
}

// ApplicationStatus represents the state of a volunteer application
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusApproved  ApplicationStatus = "approved"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusCompleted ApplicationStatus = "completed"
)

// VolunteerApplication is a user's application to an opportunity; it forms the volunteering history
type VolunteerApplication struct {
	BaseModel
	UserID        uuid.UUID         `json:"user_id" gorm:"type:uuid;not null;index"`
	OpportunityID uuid.UUID         `json:"opportunity_id" gorm:"type:uuid;not null;index"`
	Status        ApplicationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	HoursLogged   float64           `json:"hours_logged" gorm:"default:0"`

	Opportunity *VolunteeringOpportunity `json:"opportunity,omitempty" gorm:"foreignKey:OpportunityID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for VolunteerApplication
func (VolunteerApplication) TableName() string {
	return "volunteer_applications"
}
