package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PageStatus is the publication state of a CMS page
type PageStatus string

const (
	PageStatusDraft     PageStatus = "draft"
	PageStatusPublished PageStatus = "published"
)

// Page is a CMS content page made of ordered sections
type Page struct {
	BaseModel
	Slug            string     `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	Title           string     `json:"title" gorm:"size:255;not null"`
	MetaDescription string     `json:"meta_description" gorm:"size:500"`
	Status          PageStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`

	Sections []PageSection `json:"sections,omitempty" gorm:"foreignKey:PageID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Page
func (Page) TableName() string {
	return "pages"
}

// PageSection is one block of a page. Settings holds the section's layout options.
type PageSection struct {
	BaseModel
	PageID   uuid.UUID      `json:"page_id" gorm:"type:uuid;not null;index"`
	Key      string         `json:"key" gorm:"size:100;not null"`
	Title    string         `json:"title" gorm:"size:255"`
	Content  string         `json:"content" gorm:"type:text"`
	Position int            `json:"position" gorm:"not null;default:0"`
	IsActive bool           `json:"is_active" gorm:"default:true"`
	Settings datatypes.JSON `json:"settings" gorm:"type:jsonb"`
}

// TableName returns the table name for PageSection
func (PageSection) TableName() string {
	return "page_sections"
}
