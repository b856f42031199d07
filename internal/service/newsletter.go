package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/logger"
	"community-portal-backend/internal/repository"
	"community-portal-backend/internal/telemetry"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Newsletter form views returned by UnsubscribeLink
const (
	FormUnsubscribe  = "unsubscribe"
	FormUnsubscribed = "unsubscribed"
)

// NewsletterService manages newsletter subscriptions keyed by email
type NewsletterService struct {
	subscriptions repository.NewsletterRepositoryInterface
	validator     *validator.Validate
	now           func() time.Time
}

// NewNewsletterService creates a new newsletter service
func NewNewsletterService(subscriptions repository.NewsletterRepositoryInterface, v *validator.Validate) *NewsletterService {
	return &NewsletterService{subscriptions: subscriptions, validator: v, now: time.Now}
}

// SubscribeRequest is the body of a subscription
type SubscribeRequest struct {
	Email       string          `json:"email" validate:"required,email,max=255" example:"ana@example.org"`
	Preferences map[string]bool `json:"preferences"`
}

// UnsubscribeRequest is the body of an unsubscribe. Token is present when the request
// comes from an emailed link.
type UnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email,max=255" example:"ana@example.org"`
	Token string `json:"token" validate:"max=64"`
}

// UpdatePreferencesRequest is the body of a preferences update
type UpdatePreferencesRequest struct {
	Email       string          `json:"email" validate:"required,email,max=255" example:"ana@example.org"`
	Token       string          `json:"token" validate:"max=64"`
	Preferences map[string]bool `json:"preferences" validate:"required"`
}

// NewsletterOverview is the newsletter landing view
type NewsletterOverview struct {
	Topics       []string                       `json:"topics"`
	Subscription *models.NewsletterSubscription `json:"subscription,omitempty"`
}

// SubscriptionView is returned after a subscription change
type SubscriptionView struct {
	Email       string                       `json:"email" example:"ana@example.org"`
	Preferences models.NewsletterPreferences `json:"preferences"`
}

// NewsletterForm is a form the front end renders for link based flows
type NewsletterForm struct {
	Form  string `json:"form" example:"unsubscribe"`
	Email string `json:"email" example:"ana@example.org"`
}

// NewsletterStatus reports whether an email is subscribed
type NewsletterStatus struct {
	Subscribed  bool                          `json:"subscribed"`
	Preferences *models.NewsletterPreferences `json:"preferences,omitempty"`
}

// validatePreferenceKeys rejects topics outside the known set
func validatePreferenceKeys(preferences map[string]bool) error {
	var unknown []string
	for key := range preferences {
		if !models.IsNewsletterTopic(key) {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)
	return apperrors.NewValidationErrors(map[string]string{
		"preferences": fmt.Sprintf("Unknown newsletter topics: %s.", strings.Join(unknown, ", ")),
	})
}

func (s *NewsletterService) find(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	subscription, err := s.subscriptions.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return subscription, nil
}

// Overview returns the topics and, for a signed-in user, their subscription
func (s *NewsletterService) Overview(ctx context.Context, principal *auth.Principal) (*NewsletterOverview, error) {
	overview := &NewsletterOverview{Topics: models.NewsletterTopics}
	if principal == nil || principal.Email == "" {
		return overview, nil
	}
	subscription, err := s.find(ctx, normalizeEmail(principal.Email))
	if err != nil {
		return nil, err
	}
	overview.Subscription = subscription
	return overview, nil
}

// Subscribe creates or reactivates the subscription of an email. Omitted topics are enabled.
func (s *NewsletterService) Subscribe(ctx context.Context, principal *auth.Principal, req *SubscribeRequest) (*ActionResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := validatePreferenceKeys(req.Preferences); err != nil {
		return nil, err
	}

	token, err := NewToken()
	if err != nil {
		return nil, err
	}
	email := req.Email
	preferences := models.PreferencesFromMap(req.Preferences)
	subscription := &models.NewsletterSubscription{
		Email:        email,
		Preferences:  datatypes.NewJSONType(preferences),
		Token:        token,
		Status:       models.SubscriptionStatusSubscribed,
		SubscribedAt: s.now(),
	}
	if principal != nil && strings.EqualFold(principal.Email, email) {
		userID := principal.ID
		subscription.UserID = &userID
	}

	stored, err := s.subscriptions.Upsert(ctx, subscription)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	telemetry.NewsletterSubscriptionsTotal.WithLabelValues("subscribe").Inc()
	logger.WithContext(ctx).WithField("subscription_id", stored.ID).Info("newsletter subscription saved")
	return succeeded("You have been subscribed to the newsletter.", &SubscriptionView{
		Email:       stored.Email,
		Preferences: stored.Preferences.Data(),
	}), nil
}

// unsubscribe marks the subscription unsubscribed and rotates its token
func (s *NewsletterService) unsubscribe(ctx context.Context, subscription *models.NewsletterSubscription) error {
	token, err := NewToken()
	if err != nil {
		return err
	}
	now := s.now()
	subscription.Status = models.SubscriptionStatusUnsubscribed
	subscription.UnsubscribedAt = &now
	subscription.Token = token
	if err := s.subscriptions.Update(ctx, subscription); err != nil {
		return fmt.Errorf("failed to unsubscribe: %w", err)
	}
	telemetry.NewsletterSubscriptionsTotal.WithLabelValues("unsubscribe").Inc()
	logger.WithContext(ctx).WithField("subscription_id", subscription.ID).Info("newsletter subscription cancelled")
	return nil
}

// Unsubscribe cancels a subscription. A supplied token must match the email.
func (s *NewsletterService) Unsubscribe(ctx context.Context, req *UnsubscribeRequest) (*ActionResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	email := req.Email
	subscription, err := s.find(ctx, email)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return failed(ReasonNotSubscribed, "This email is not subscribed to the newsletter."), nil
	}
	if req.Token != "" && !tokensEqual(subscription.Token, req.Token) {
		return failed(ReasonInvalidToken, "The unsubscribe link is invalid or has expired."), nil
	}
	if !subscription.IsSubscribed() {
		return succeeded("You have been unsubscribed from the newsletter.", &SubscriptionView{Email: email, Preferences: subscription.Preferences.Data()}), nil
	}
	if err := s.unsubscribe(ctx, subscription); err != nil {
		return nil, err
	}
	return succeeded("You have been unsubscribed from the newsletter.", &SubscriptionView{Email: email, Preferences: subscription.Preferences.Data()}), nil
}

// UnsubscribeLink handles an emailed unsubscribe link. A valid pair unsubscribes; anything
// else returns the unsubscribe form without changing state.
func (s *NewsletterService) UnsubscribeLink(ctx context.Context, email, token string) (*ActionResult, error) {
	email = normalizeEmail(email)
	form := &NewsletterForm{Form: FormUnsubscribe, Email: email}
	if email == "" || token == "" || s.validator.Var(email, "email") != nil {
		return succeeded("", form), nil
	}

	subscription, err := s.find(ctx, email)
	if err != nil {
		return nil, err
	}
	if subscription == nil || !tokensEqual(subscription.Token, token) {
		return succeeded("", form), nil
	}
	if subscription.IsSubscribed() {
		if err := s.unsubscribe(ctx, subscription); err != nil {
			return nil, err
		}
	}
	return succeeded("You have been unsubscribed from the newsletter.", &NewsletterForm{Form: FormUnsubscribed, Email: email}), nil
}

// UpdatePreferences replaces the topic preferences of a subscription. The caller must
// hold the subscription token or be signed in with the same email.
func (s *NewsletterService) UpdatePreferences(ctx context.Context, principal *auth.Principal, req *UpdatePreferencesRequest) (*ActionResult, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validateStruct(s.validator, req); err != nil {
		return nil, err
	}
	if err := validatePreferenceKeys(req.Preferences); err != nil {
		return nil, err
	}

	email := req.Email
	subscription, err := s.find(ctx, email)
	if err != nil {
		return nil, err
	}

	authorized := (subscription != nil && tokensEqual(subscription.Token, req.Token)) ||
		(principal != nil && strings.EqualFold(principal.Email, email))
	if !authorized {
		return failed(ReasonEmailMismatch, "You are not allowed to change the preferences of this subscription."), nil
	}
	if subscription == nil || !subscription.IsSubscribed() {
		return failed(ReasonNotSubscribed, "This email is not subscribed to the newsletter."), nil
	}

	preferences := models.PreferencesFromMap(req.Preferences)
	subscription.Preferences = datatypes.NewJSONType(preferences)
	if err := s.subscriptions.Update(ctx, subscription); err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}

	telemetry.NewsletterSubscriptionsTotal.WithLabelValues("preferences").Inc()
	return succeeded("Your newsletter preferences have been updated.", &SubscriptionView{Email: email, Preferences: preferences}), nil
}

// Status reports whether the email is subscribed and with which preferences
func (s *NewsletterService) Status(ctx context.Context, email string) (*NewsletterStatus, error) {
	email = normalizeEmail(email)
	if err := s.validator.Var(email, "required,email"); err != nil {
		return nil, apperrors.NewValidationError("email", "The email must be a valid email address.")
	}
	subscription, err := s.find(ctx, email)
	if err != nil {
		return nil, err
	}
	if subscription == nil || !subscription.IsSubscribed() {
		return &NewsletterStatus{Subscribed: false}, nil
	}
	preferences := subscription.Preferences.Data()
	return &NewsletterStatus{Subscribed: true, Preferences: &preferences}, nil
}
