package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification is an inbox entry owned by a single user
type Notification struct {
	BaseModel
	UserID    uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index:idx_notifications_user_read"`
	Type      string         `json:"type" gorm:"size:50;not null;index"`
	Title     string         `json:"title" gorm:"size:255;not null"`
	Message   string         `json:"message" gorm:"type:text"`
	ActionURL string         `json:"action_url" gorm:"size:500"`
	Data      datatypes.JSON `json:"data,omitempty" gorm:"type:jsonb"`
	ReadAt    *time.Time     `json:"read_at" gorm:"index:idx_notifications_user_read"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}

// IsRead reports whether the notification has been read
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
