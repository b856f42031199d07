package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Newsletter topics a subscriber can opt in or out of
const (
	NewsletterTopicNews         = "news"
	NewsletterTopicEvents       = "events"
	NewsletterTopicResources    = "resources"
	NewsletterTopicVolunteering = "volunteering"
)

// NewsletterTopics lists every topic in display order
var NewsletterTopics = []string{
	NewsletterTopicNews,
	NewsletterTopicEvents,
	NewsletterTopicResources,
	NewsletterTopicVolunteering,
}

// IsNewsletterTopic reports whether topic is a known newsletter topic
func IsNewsletterTopic(topic string) bool {
	for _, t := range NewsletterTopics {
		if t == topic {
			return true
		}
	}
	return false
}

// NewsletterPreferences holds the per-topic opt-ins
type NewsletterPreferences struct {
	News         bool `json:"news"`
	Events       bool `json:"events"`
	Resources    bool `json:"resources"`
	Volunteering bool `json:"volunteering"`
}

// PreferencesFromMap builds preferences from a topic map; topics absent from the map are enabled
func PreferencesFromMap(m map[string]bool) NewsletterPreferences {
	get := func(key string) bool {
		if v, ok := m[key]; ok {
			return v
		}
		return true
	}
	return NewsletterPreferences{
		News:         get(NewsletterTopicNews),
		Events:       get(NewsletterTopicEvents),
		Resources:    get(NewsletterTopicResources),
		Volunteering: get(NewsletterTopicVolunteering),
	}
}

// SubscriptionStatus represents the state of a newsletter subscription
type SubscriptionStatus string

const (
	SubscriptionStatusSubscribed   SubscriptionStatus = "subscribed"
	SubscriptionStatusUnsubscribed SubscriptionStatus = "unsubscribed"
)

// NewsletterSubscription is keyed by email; Token authorizes unsubscribe links
type NewsletterSubscription struct {
	BaseModel
	Email          string                                    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	UserID         *uuid.UUID                                `json:"user_id,omitempty" gorm:"type:uuid"`
	Preferences    datatypes.JSONType[NewsletterPreferences] `json:"preferences" gorm:"type:jsonb"`
	Token          string                                    `json:"-" gorm:"size:64;uniqueIndex;not null"`
	Status         SubscriptionStatus                        `json:"status" gorm:"type:varchar(20);not null;default:'subscribed'"`
	SubscribedAt   time.Time                                 `json:"subscribed_at"`
	UnsubscribedAt *time.Time                                `json:"unsubscribed_at,omitempty"`
}

// TableName returns the table name for NewsletterSubscription
func (NewsletterSubscription) TableName() string {
	return "newsletter_subscriptions"
}

// IsSubscribed reports whether the subscription is currently active
func (s *NewsletterSubscription) IsSubscribed() bool {
	return s.Status == SubscriptionStatusSubscribed
}
