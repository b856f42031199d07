package handlers

import (
	"net/http"

	"community-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for the notification inbox
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(s service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: s}
}

// List returns the inbox of the signed-in user
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param status query string false "Read status" Enums(all, unread, read) default(all)
// @Param type query string false "Notification type"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Page size" default(20)
// @Success 200 {object} PaginatedResponse{data=[]models.Notification}
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	query := service.NotificationQuery{Status: c.Query("status"), Type: c.Query("type")}
	query.Page, query.PerPage = pageParams(c)

	view, err := h.service.List(c, principal, query)
	if err != nil {
		respondError(c, err)
		return
	}
	respondPage(c, view.Data, view.Meta)
}

// MarkRead marks one notification as read
// @Summary Mark a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} Response{data=models.Notification}
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "notification")
	if !ok {
		return
	}
	notification, err := h.service.MarkRead(c, principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, notification)
}

// MarkAllRead marks every unread notification as read
// @Summary Mark all notifications as read
// @Tags notifications
// @Produce json
// @Success 200 {object} Response{data=map[string]int64}
// @Security BearerAuth
// @Router /notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	updated, err := h.service.MarkAllRead(c, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"updated": updated})
}

// Delete removes one notification
// @Summary Delete a notification
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID (UUID)"
// @Success 200 {object} Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "notification")
	if !ok {
		return
	}
	if err := h.service.Delete(c, principal, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: "Notification deleted."})
}

// DeleteRead removes every read notification
// @Summary Delete read notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} Response{data=map[string]int64}
// @Security BearerAuth
// @Router /notifications/read [delete]
func (h *NotificationHandler) DeleteRead(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	deleted, err := h.service.DeleteRead(c, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": deleted})
}

// UnreadCount returns the number of unread notifications
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} Response{data=map[string]int64}
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	count, err := h.service.UnreadCount(c, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"count": count})
}

// Recent returns the latest notifications with the unread count
// @Summary Recent notifications
// @Tags notifications
// @Produce json
// @Param limit query int false "Number of notifications" default(5) maximum(20)
// @Success 200 {object} Response{data=service.RecentNotificationsView}
// @Security BearerAuth
// @Router /notifications/recent [get]
func (h *NotificationHandler) Recent(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	view, err := h.service.Recent(c, principal, queryInt(c, "limit"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, view)
}
