package models

import (
	"time"

	"github.com/google/uuid"
)

// TargetKind discriminates the forum content a report or moderation action points at
type TargetKind string

const (
	TargetKindThread TargetKind = "thread"
	TargetKindPost   TargetKind = "post"
)

// IsValid checks if the TargetKind is valid
func (k TargetKind) IsValid() bool {
	return k == TargetKindThread || k == TargetKindPost
}

// ModerationTarget references a thread or a post
type ModerationTarget struct {
	Kind TargetKind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}

// ReportReason is the closed set of reasons a report may carry
type ReportReason string

const (
	ReportReasonSpam           ReportReason = "spam"
	ReportReasonHarassment     ReportReason = "harassment"
	ReportReasonInappropriate  ReportReason = "inappropriate"
	ReportReasonOffTopic       ReportReason = "off_topic"
	ReportReasonMisinformation ReportReason = "misinformation"
	ReportReasonOther          ReportReason = "other"
)

// IsValid checks if the ReportReason is valid
func (r ReportReason) IsValid() bool {
	switch r {
	case ReportReasonSpam, ReportReasonHarassment, ReportReasonInappropriate,
		ReportReasonOffTopic, ReportReasonMisinformation, ReportReasonOther:
		return true
	}
	return false
}

// Severity is the closed set of severities for reports and warnings
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// IsValid checks if the Severity is valid
func (s Severity) IsValid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	}
	return false
}

// ReportStatus represents the review state of a report
type ReportStatus string

const (
	ReportStatusPending   ReportStatus = "pending"
	ReportStatusReviewed  ReportStatus = "reviewed"
	ReportStatusDismissed ReportStatus = "dismissed"
)

// ForumReport is an abuse report against a thread or post.
// At most one unresolved report may exist per reporter and target.
type ForumReport struct {
	BaseModel
	ReporterID     uuid.UUID    `json:"reporter_id" gorm:"type:uuid;not null;uniqueIndex:idx_forum_reports_open,where:resolved_at IS NULL;index"`
	ReportableType TargetKind   `json:"reportable_type" gorm:"type:varchar(20);not null;uniqueIndex:idx_forum_reports_open,where:resolved_at IS NULL;index:idx_forum_reports_target"`
	ReportableID   uuid.UUID    `json:"reportable_id" gorm:"type:uuid;not null;uniqueIndex:idx_forum_reports_open,where:resolved_at IS NULL;index:idx_forum_reports_target"`
	Reason         ReportReason `json:"reason" gorm:"type:varchar(30);not null"`
	Severity       Severity     `json:"severity" gorm:"type:varchar(10);not null"`
	Description    string       `json:"description" gorm:"type:text"`
	Status         ReportStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ResolvedAt     *time.Time   `json:"resolved_at,omitempty"`
	ResolvedBy     *uuid.UUID   `json:"resolved_by,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for ForumReport
func (ForumReport) TableName() string {
	return "forum_reports"
}

// Target returns the reported content as a ModerationTarget
func (r *ForumReport) Target() ModerationTarget {
	return ModerationTarget{Kind: r.ReportableType, ID: r.ReportableID}
}

// WarningStatus represents the acknowledgement state of a warning
type WarningStatus string

const (
	WarningStatusPending      WarningStatus = "pending"
	WarningStatusAcknowledged WarningStatus = "acknowledged"
)

// ForumWarning is a moderator warning issued to a user
type ForumWarning struct {
	BaseModel
	UserID         uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	ModeratorID    uuid.UUID     `json:"moderator_id" gorm:"type:uuid;not null"`
	ForumID        *uuid.UUID    `json:"forum_id,omitempty" gorm:"type:uuid"`
	Reason         string        `json:"reason" gorm:"type:text;not null"`
	Severity       Severity      `json:"severity" gorm:"type:varchar(10);not null;default:'low'"`
	Status         WarningStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	AcknowledgedAt *time.Time    `json:"acknowledged_at,omitempty"`
}

// TableName returns the table name for ForumWarning
func (ForumWarning) TableName() string {
	return "forum_warnings"
}

// ModerationActionType enumerates what a moderator did
type ModerationActionType string

const (
	ModerationActionHide    ModerationActionType = "hide"
	ModerationActionDelete  ModerationActionType = "delete"
	ModerationActionLock    ModerationActionType = "lock"
	ModerationActionWarn    ModerationActionType = "warn"
	ModerationActionBan     ModerationActionType = "ban"
	ModerationActionRestore ModerationActionType = "restore"
)

// ModerationAction is an audit record of a moderator decision
type ModerationAction struct {
	BaseModel
	ModeratorID     uuid.UUID            `json:"moderator_id" gorm:"type:uuid;not null"`
	TargetUserID    *uuid.UUID           `json:"target_user_id,omitempty" gorm:"type:uuid;index"`
	ModeratableType TargetKind           `json:"moderatable_type" gorm:"type:varchar(20);index:idx_moderation_actions_target"`
	ModeratableID   *uuid.UUID           `json:"moderatable_id,omitempty" gorm:"type:uuid;index:idx_moderation_actions_target"`
	Action          ModerationActionType `json:"action" gorm:"type:varchar(20);not null"`
	Reason          string               `json:"reason" gorm:"type:text"`
}

// TableName returns the table name for ModerationAction
func (ModerationAction) TableName() string {
	return "moderation_actions"
}

// ForumBan prevents a user from posting, globally when ForumID is nil
type ForumBan struct {
	BaseModel
	UserID    uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	ForumID   *uuid.UUID `json:"forum_id,omitempty" gorm:"type:uuid"`
	Reason    string     `json:"reason" gorm:"type:text"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// TableName returns the table name for ForumBan
func (ForumBan) TableName() string {
	return "forum_bans"
}
