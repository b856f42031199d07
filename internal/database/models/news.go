package models

import (
	"time"

	"github.com/google/uuid"
)

// NewsStatus represents the publication state of a news article
type NewsStatus string

const (
	NewsStatusDraft     NewsStatus = "draft"
	NewsStatusPublished NewsStatus = "published"
	NewsStatusArchived  NewsStatus = "archived"
)

// News is an article published by an organization or the platform itself
type News struct {
	BaseModel
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	RegionID       *uuid.UUID `json:"region_id,omitempty" gorm:"type:uuid;index"`
	AuthorID       *uuid.UUID `json:"author_id,omitempty" gorm:"type:uuid"`
	Title          string     `json:"title" gorm:"size:255;not null"`
	Slug           string     `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Excerpt        string     `json:"excerpt" gorm:"size:500"`
	Content        string     `json:"content" gorm:"type:text"`
	Category       string     `json:"category" gorm:"size:50;index"`
	ImageURL       string     `json:"image_url" gorm:"size:500"`
	Status         NewsStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	IsFeatured     bool       `json:"is_featured" gorm:"default:false"`
	ViewsCount     int64      `json:"views_count" gorm:"not null;default:0"`
	PublishedAt    *time.Time `json:"published_at,omitempty" gorm:"index"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:SET NULL"`
	Region       *Region       `json:"region,omitempty" gorm:"foreignKey:RegionID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for News
func (News) TableName() string {
	return "news"
}

// IsVisible reports whether the article may be shown to readers at the given time
func (n *News) IsVisible(now time.Time) bool {
	return n.Status == NewsStatusPublished && n.PublishedAt != nil && !n.PublishedAt.After(now)
}
