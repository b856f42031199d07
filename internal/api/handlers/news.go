package handlers

import (
	"net/http"
	"strconv"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NewsHandler handles HTTP requests for news articles
type NewsHandler struct {
	service service.NewsServiceInterface
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(s service.NewsServiceInterface) *NewsHandler {
	return &NewsHandler{service: s}
}

// NewsListResponse is a page of news with its sidebar
type NewsListResponse struct {
	Success bool                `json:"success" example:"true"`
	Data    interface{}         `json:"data"`
	Meta    service.PageMeta    `json:"meta"`
	Sidebar service.NewsSidebar `json:"sidebar"`
}

// optionalUUID parses an optional UUID query parameter, writing 400 when malformed
func optionalUUID(c *gin.Context, key string) (*uuid.UUID, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid "+key)
		return nil, false
	}
	return &id, true
}

func (h *NewsHandler) list(c *gin.Context, principal *auth.Principal) {
	query := service.NewsQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}
	query.Page, query.PerPage = pageParams(c)

	var ok bool
	if query.OrganizationID, ok = optionalUUID(c, "organization_id"); !ok {
		return
	}
	if query.RegionID, ok = optionalUUID(c, "region_id"); !ok {
		return
	}
	if raw := c.Query("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			respondFailure(c, http.StatusBadRequest, "Invalid featured")
			return
		}
		query.Featured = &featured
	}
	if principal != nil {
		query.Mine = c.Query("mine") == "true"
	}

	view, err := h.service.List(c, principal, query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, NewsListResponse{Success: true, Data: view.Data, Meta: view.Meta, Sidebar: view.Sidebar})
}

// List returns published news for a signed-in user
// @Summary List news
// @Description Published news with filters and a sidebar. mine=true limits the listing to the user's organizations.
// @Tags news
// @Produce json
// @Param search query string false "Search in title and content"
// @Param organization_id query string false "Organization ID (UUID)"
// @Param region_id query string false "Region ID (UUID)"
// @Param category query string false "Category"
// @Param featured query bool false "Only featured articles"
// @Param sort query string false "Sort order" Enums(latest, oldest, popular, title)
// @Param mine query bool false "Only news from my organizations"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(12)
// @Success 200 {object} NewsListResponse{data=[]models.News}
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /news [get]
func (h *NewsHandler) List(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	h.list(c, principal)
}

// PublicList returns published news for anonymous visitors
// @Summary List public news
// @Tags news
// @Produce json
// @Param search query string false "Search in title and content"
// @Param organization_id query string false "Organization ID (UUID)"
// @Param region_id query string false "Region ID (UUID)"
// @Param category query string false "Category"
// @Param featured query bool false "Only featured articles"
// @Param sort query string false "Sort order" Enums(latest, oldest, popular, title)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(9)
// @Success 200 {object} NewsListResponse{data=[]models.News}
// @Router /news/public [get]
func (h *NewsHandler) PublicList(c *gin.Context) {
	h.list(c, nil)
}

// Show returns a published article with related articles
// @Summary Get an article
// @Description Drafts and future-dated articles answer 404. Each view is counted.
// @Tags news
// @Produce json
// @Param id path string true "News ID (UUID)"
// @Success 200 {object} Response{data=service.NewsDetailView}
// @Failure 404 {object} ErrorResponse
// @Router /news/{id} [get]
// @Router /news/public/{id} [get]
func (h *NewsHandler) Show(c *gin.Context) {
	id, ok := parseID(c, "id", "news")
	if !ok {
		return
	}
	view, err := h.service.Get(c, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, view)
}
