package repository

import (
	"context"
	"time"

	"community-portal-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewsletterRepository handles database operations for newsletter subscriptions
type NewsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository creates a new newsletter repository
func NewNewsletterRepository(db *gorm.DB) *NewsletterRepository {
	return &NewsletterRepository{db: db}
}

// Upsert inserts the subscription or, when the email already exists, resubscribes it
// with the new preferences. The stored token and a known user id are kept.
// It returns the row as stored.
func (r *NewsletterRepository) Upsert(ctx context.Context, subscription *models.NewsletterSubscription) (*models.NewsletterSubscription, error) {
	if subscription.SubscribedAt.IsZero() {
		subscription.SubscribedAt = time.Now()
	}

	assignments := clause.AssignmentColumns([]string{"preferences", "status", "subscribed_at", "unsubscribed_at", "updated_at"})
	assignments = append(assignments, clause.Assignment{
		Column: clause.Column{Name: "user_id"},
		Value:  gorm.Expr("COALESCE(EXCLUDED.user_id, newsletter_subscriptions.user_id)"),
	})

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: assignments,
	}).Create(subscription).Error
	if err != nil {
		return nil, err
	}
	return r.GetByEmail(ctx, subscription.Email)
}

// GetByEmail retrieves a subscription by email
func (r *NewsletterRepository) GetByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	var subscription models.NewsletterSubscription
	err := r.db.WithContext(ctx).First(&subscription, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

// Update saves every column of the subscription
func (r *NewsletterRepository) Update(ctx context.Context, subscription *models.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Save(subscription).Error
}
