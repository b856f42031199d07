package handlers

import (
	"net/http"

	"community-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler handles HTTP requests for the volunteer dashboard
type DashboardHandler struct {
	service service.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(s service.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: s}
}

// Index returns the dashboard of the signed-in user
// @Summary Get the dashboard
// @Description Organizations, latest news, upcoming events, recommended opportunities and recent notifications of the signed-in user
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=service.DashboardView}
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Index(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	view, err := h.service.GetDashboard(c, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, view)
}

// Personalized returns the interest-driven dashboard
// @Summary Get the personalized dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=service.PersonalizedDashboardView}
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/personalized [get]
func (h *DashboardHandler) Personalized(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	view, err := h.service.GetPersonalized(c, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, view)
}

// ActivitySummary returns the activity counters of the signed-in user
// @Summary Get the activity summary
// @Tags dashboard
// @Produce json
// @Success 200 {object} Response{data=service.ActivitySummary}
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard/activity-summary [get]
func (h *DashboardHandler) ActivitySummary(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	summary, err := h.service.GetActivitySummary(c, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, summary)
}
