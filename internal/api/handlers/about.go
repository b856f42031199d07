package handlers

import (
	"net/http"

	"community-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AboutHandler handles HTTP requests for the About Us page
type AboutHandler struct {
	service service.AboutServiceInterface
}

// NewAboutHandler creates a new about handler
func NewAboutHandler(s service.AboutServiceInterface) *AboutHandler {
	return &AboutHandler{service: s}
}

// Show returns the About Us page
// @Summary Get the About Us page
// @Description Returns the published about-us page, its active sections ordered by position, and platform counters. The view is cached.
// @Tags about
// @Produce json
// @Success 200 {object} Response{data=service.AboutPageView}
// @Failure 404 {object} ErrorResponse "Page not published"
// @Router /about [get]
func (h *AboutHandler) Show(c *gin.Context) {
	view, err := h.service.GetAboutPage(c)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, view)
}

// InvalidateCache evicts the cached About Us page
// @Summary Invalidate the About Us cache
// @Description Requires the content.manage capability
// @Tags about
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /about/cache [delete]
func (h *AboutHandler) InvalidateCache(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	if err := h.service.InvalidateCache(c, principal); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: "About page cache cleared."})
}
