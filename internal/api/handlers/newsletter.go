package handlers

import (
	"net/http"

	"community-portal-backend/internal/database/models"
	"community-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NewsletterHandler handles HTTP requests for newsletter subscriptions
type NewsletterHandler struct {
	service service.NewsletterServiceInterface
}

// NewNewsletterHandler creates a new newsletter handler
func NewNewsletterHandler(s service.NewsletterServiceInterface) *NewsletterHandler {
	return &NewsletterHandler{service: s}
}

// NewsletterStatusResponse reports whether an address is subscribed
type NewsletterStatusResponse struct {
	Success     bool                          `json:"success" example:"true"`
	Subscribed  bool                          `json:"subscribed" example:"true"`
	Preferences *models.NewsletterPreferences `json:"preferences,omitempty"`
}

// Overview returns the newsletter topics and the subscription of the caller
// @Summary Newsletter overview
// @Tags newsletter
// @Produce json
// @Success 200 {object} Response{data=service.NewsletterOverview}
// @Router /newsletter [get]
func (h *NewsletterHandler) Overview(c *gin.Context) {
	overview, err := h.service.Overview(c, optionalPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, overview)
}

// Subscribe creates or refreshes a subscription
// @Summary Subscribe to the newsletter
// @Description Upserts on email. Topics missing from preferences default to true.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param subscription body service.SubscribeRequest true "Subscription"
// @Success 200 {object} Response{data=service.SubscriptionView}
// @Failure 422 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req service.SubscribeRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.Subscribe(c, optionalPrincipal(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, result, http.StatusOK)
}

// Unsubscribe cancels a subscription
// @Summary Unsubscribe from the newsletter
// @Description With a token the email and token must match. Without one the email-only form flow applies.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body service.UnsubscribeRequest true "Unsubscribe request"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponse "Not subscribed"
// @Failure 422 {object} ErrorResponse "Invalid token"
// @Router /newsletter/unsubscribe [post]
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req service.UnsubscribeRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.Unsubscribe(c, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, result, http.StatusOK)
}

// UnsubscribeLink handles the emailed unsubscribe link
// @Summary Follow an unsubscribe link
// @Description A valid email and token pair unsubscribes. Anything else returns the neutral unsubscribe form.
// @Tags newsletter
// @Produce json
// @Param email query string false "Email"
// @Param token query string false "Unsubscribe token"
// @Success 200 {object} Response{data=service.NewsletterForm}
// @Router /newsletter/unsubscribe [get]
func (h *NewsletterHandler) UnsubscribeLink(c *gin.Context) {
	result, err := h.service.UnsubscribeLink(c, c.Query("email"), c.Query("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, result, http.StatusOK)
}

// UpdatePreferences replaces the topic preferences of a subscription
// @Summary Update newsletter preferences
// @Description Requires a matching token or a signed-in user with the same email
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body service.UpdatePreferencesRequest true "Preferences"
// @Success 200 {object} Response{data=service.SubscriptionView}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /newsletter/preferences [post]
func (h *NewsletterHandler) UpdatePreferences(c *gin.Context) {
	var req service.UpdatePreferencesRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.service.UpdatePreferences(c, optionalPrincipal(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, result, http.StatusOK)
}

// Status reports the subscription status of an address
// @Summary Newsletter subscription status
// @Tags newsletter
// @Produce json
// @Param email query string true "Email"
// @Success 200 {object} NewsletterStatusResponse
// @Failure 422 {object} ErrorResponse
// @Router /newsletter/status [get]
func (h *NewsletterHandler) Status(c *gin.Context) {
	status, err := h.service.Status(c, c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewsletterStatusResponse{
		Success:     true,
		Subscribed:  status.Subscribed,
		Preferences: status.Preferences,
	})
}
