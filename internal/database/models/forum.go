package models

import (
	"strings"

	"github.com/google/uuid"
)

// ContentStatus is the visibility state of forum threads and posts
type ContentStatus string

const (
	ContentStatusActive  ContentStatus = "active"
	ContentStatusHidden  ContentStatus = "hidden"
	ContentStatusDeleted ContentStatus = "deleted"
)

// Forum is a discussion board, optionally owned by an organization
type Forum struct {
	BaseModel
	OrganizationID *uuid.UUID `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	Name           string     `json:"name" gorm:"size:255;not null"`
	Slug           string     `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Description    string     `json:"description" gorm:"type:text"`
	IsActive       bool       `json:"is_active" gorm:"default:true"`
}

// TableName returns the table name for Forum
func (Forum) TableName() string {
	return "forums"
}

// ForumThread is a topic inside a forum
type ForumThread struct {
	BaseModel
	ForumID  uuid.UUID     `json:"forum_id" gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID     `json:"author_id" gorm:"type:uuid;not null;index"`
	Title    string        `json:"title" gorm:"size:255;not null"`
	Status   ContentStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`
	IsLocked bool          `json:"is_locked" gorm:"default:false"`

	Forum *Forum `json:"forum,omitempty" gorm:"foreignKey:ForumID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ForumThread
func (ForumThread) TableName() string {
	return "forum_threads"
}

// ForumPost is a message inside a thread
type ForumPost struct {
	BaseModel
	ThreadID uuid.UUID     `json:"thread_id" gorm:"type:uuid;not null;index"`
	AuthorID uuid.UUID     `json:"author_id" gorm:"type:uuid;not null;index"`
	Content  string        `json:"content" gorm:"type:text"`
	Status   ContentStatus `json:"status" gorm:"type:varchar(20);not null;default:'active'"`

	Thread *ForumThread `json:"thread,omitempty" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ForumPost
func (ForumPost) TableName() string {
	return "forum_posts"
}

// AttachmentCategory groups MIME types for statistics
type AttachmentCategory string

const (
	AttachmentCategoryImage    AttachmentCategory = "image"
	AttachmentCategoryDocument AttachmentCategory = "document"
	AttachmentCategoryArchive  AttachmentCategory = "archive"
	AttachmentCategoryOther    AttachmentCategory = "other"
)

// ForumAttachment is a file uploaded with a post. Path is the key on the backing store.
type ForumAttachment struct {
	BaseModel
	PostID        uuid.UUID `json:"post_id" gorm:"type:uuid;not null;index"`
	UploaderID    uuid.UUID `json:"uploader_id" gorm:"type:uuid;not null"`
	OriginalName  string    `json:"original_name" gorm:"size:255;not null"`
	Path          string    `json:"-" gorm:"size:500;not null"`
	MimeType      string    `json:"mime_type" gorm:"size:100;not null;index"`
	Size          int64     `json:"size" gorm:"not null;default:0"`
	DownloadCount int64     `json:"download_count" gorm:"not null;default:0"`

	Post *ForumPost `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ForumAttachment
func (ForumAttachment) TableName() string {
	return "forum_attachments"
}

// IsImage reports whether the attachment may be displayed inline
func (a *ForumAttachment) IsImage() bool {
	return strings.HasPrefix(strings.ToLower(a.MimeType), "image/")
}

var documentMimeMarkers = []string{"pdf", "msword", "officedocument", "rtf", "opendocument"}
var archiveMimeMarkers = []string{"zip", "x-rar", "x-7z", "gzip", "x-tar"}

// CategorizeMimeType maps a MIME type onto its statistics bucket
func CategorizeMimeType(mimeType string) AttachmentCategory {
	mt := strings.ToLower(mimeType)
	switch {
	case strings.HasPrefix(mt, "image/"):
		return AttachmentCategoryImage
	case strings.HasPrefix(mt, "text/") || containsAny(mt, documentMimeMarkers):
		return AttachmentCategoryDocument
	case containsAny(mt, archiveMimeMarkers):
		return AttachmentCategoryArchive
	default:
		return AttachmentCategoryOther
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
