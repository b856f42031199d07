package handlers

import (
	"net/http"

	"community-portal-backend/internal/database/models"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ForumReportHandler handles HTTP requests for forum reports and member moderation views
type ForumReportHandler struct {
	reports    service.ReportServiceInterface
	moderation service.ModerationServiceInterface
}

// NewForumReportHandler creates a new forum report handler
func NewForumReportHandler(reports service.ReportServiceInterface, moderation service.ModerationServiceInterface) *ForumReportHandler {
	return &ForumReportHandler{reports: reports, moderation: moderation}
}

func (h *ForumReportHandler) submit(c *gin.Context, kind models.TargetKind) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", string(kind))
	if !ok {
		return
	}
	var req service.SubmitReportRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.reports.Submit(c, principal, models.ModerationTarget{Kind: kind, ID: id}, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, result, http.StatusCreated)
}

// ReportThread files a report against a thread
// @Summary Report a thread
// @Description One open report per reporter and thread. Reporting your own thread is rejected.
// @Tags forum-reports
// @Accept json
// @Produce json
// @Param id path string true "Thread ID (UUID)"
// @Param report body service.SubmitReportRequest true "Report"
// @Success 201 {object} Response{data=models.ForumReport}
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already reported"
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /forum-reports/threads/{id} [post]
func (h *ForumReportHandler) ReportThread(c *gin.Context) {
	h.submit(c, models.TargetKindThread)
}

// ReportPost files a report against a post
// @Summary Report a post
// @Tags forum-reports
// @Accept json
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Param report body service.SubmitReportRequest true "Report"
// @Success 201 {object} Response{data=models.ForumReport}
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already reported"
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /forum-reports/posts/{id} [post]
func (h *ForumReportHandler) ReportPost(c *gin.Context) {
	h.submit(c, models.TargetKindPost)
}

// Mine lists the reports filed by the signed-in user
// @Summary List my reports
// @Tags forum-reports
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(15)
// @Success 200 {object} PaginatedResponse{data=[]models.ForumReport}
// @Security BearerAuth
// @Router /forum-reports/mine [get]
func (h *ForumReportHandler) Mine(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	page, perPage := pageParams(c)
	view, err := h.reports.ListMine(c, principal, page, perPage)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, view.Data, view.Meta)
}

// Show returns a single report
// @Summary Get a report
// @Description Visible to its reporter and to moderators
// @Tags forum-reports
// @Produce json
// @Param id path string true "Report ID (UUID)"
// @Success 200 {object} Response{data=models.ForumReport}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /forum-reports/{id} [get]
func (h *ForumReportHandler) Show(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "report")
	if !ok {
		return
	}
	report, err := h.reports.Get(c, principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, report)
}

// History returns the reports and moderation actions recorded against a thread or post
// @Summary Moderation history of content
// @Description Moderators only
// @Tags forum-reports
// @Produce json
// @Param kind path string true "Target kind" Enums(thread, post)
// @Param id path string true "Target ID (UUID)"
// @Success 200 {object} Response{data=service.TargetHistory}
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Unknown kind"
// @Security BearerAuth
// @Router /forum-reports/history/{kind}/{id} [get]
func (h *ForumReportHandler) History(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	kind := models.TargetKind(c.Param("kind"))
	if !kind.IsValid() {
		respondError(c, apperrors.ErrInvalidTargetKind)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid "+string(kind)+" ID")
		return
	}
	history, err := h.reports.TargetHistory(c, principal, models.ModerationTarget{Kind: kind, ID: id})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, history)
}

// MyHistory returns the warnings and moderation actions recorded against the signed-in user
// @Summary My moderation history
// @Tags forum-reports
// @Produce json
// @Success 200 {object} Response{data=service.ModerationHistory}
// @Security BearerAuth
// @Router /forum-reports/my-history [get]
func (h *ForumReportHandler) MyHistory(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	history, err := h.moderation.MyHistory(c, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, history)
}

// Warnings lists the warnings issued to the signed-in user
// @Summary My warnings
// @Tags forum-reports
// @Produce json
// @Success 200 {object} Response{data=[]models.ForumWarning}
// @Security BearerAuth
// @Router /forum-reports/warnings [get]
func (h *ForumReportHandler) Warnings(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	warnings, err := h.moderation.Warnings(c, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, warnings)
}

// AcknowledgeWarning marks a warning as acknowledged
// @Summary Acknowledge a warning
// @Tags forum-reports
// @Produce json
// @Param id path string true "Warning ID (UUID)"
// @Success 200 {object} Response{data=models.ForumWarning}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /forum-reports/warnings/{id}/acknowledge [post]
func (h *ForumReportHandler) AcknowledgeWarning(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "warning")
	if !ok {
		return
	}
	warning, err := h.moderation.AcknowledgeWarning(c, principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: "Warning acknowledged.", Data: warning})
}

// CanPost reports whether the signed-in user may open a thread in a forum
// @Summary Check posting permission
// @Tags forum-reports
// @Produce json
// @Param forumId path string true "Forum ID (UUID)"
// @Success 200 {object} Response{data=service.PostPermission}
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /forum-reports/can-post/{forumId} [get]
func (h *ForumReportHandler) CanPost(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	forumID, ok := parseID(c, "forumId", "forum")
	if !ok {
		return
	}
	permission, err := h.moderation.CanPost(c, principal, forumID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, permission)
}

// CanReply reports whether the signed-in user may reply in a thread
// @Summary Check reply permission
// @Tags forum-reports
// @Produce json
// @Param threadId path string true "Thread ID (UUID)"
// @Success 200 {object} Response{data=service.ReplyPermission}
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /forum-reports/can-reply/{threadId} [get]
func (h *ForumReportHandler) CanReply(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	threadID, ok := parseID(c, "threadId", "thread")
	if !ok {
		return
	}
	permission, err := h.moderation.CanReply(c, principal, threadID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, permission)
}
