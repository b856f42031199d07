package handlers

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"community-portal-backend/internal/logger"
	"community-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ForumAttachmentHandler handles HTTP requests for forum attachment files
type ForumAttachmentHandler struct {
	service service.AttachmentServiceInterface
}

// NewForumAttachmentHandler creates a new forum attachment handler
func NewForumAttachmentHandler(s service.AttachmentServiceInterface) *ForumAttachmentHandler {
	return &ForumAttachmentHandler{service: s}
}

// stream copies the opened file into the response
func stream(c *gin.Context, file *service.AttachmentFile, disposition string) {
	defer file.Content.Close()

	a := file.Attachment
	c.Header("Content-Type", a.MimeType)
	c.Header("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": a.OriginalName}))
	if a.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(a.Size, 10))
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, file.Content); err != nil {
		logger.WithContext(c).WithField("attachment_id", a.ID).Warnf("attachment stream interrupted: %v", err)
	}
}

// Download streams an attachment as a file download
// @Summary Download an attachment
// @Description Moderators can always download. Other users need an active account and a visible post and thread. Each download is counted.
// @Tags forum-attachments
// @Produce octet-stream
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {file} file
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Attachment or file not found"
// @Security BearerAuth
// @Router /forum-attachments/{id}/download [get]
func (h *ForumAttachmentHandler) Download(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "attachment")
	if !ok {
		return
	}
	file, err := h.service.Download(c, principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	stream(c, file, "attachment")
}

// Show streams an image attachment inline
// @Summary Show an image attachment
// @Description Only image attachments can be shown inline; other types answer 404.
// @Tags forum-attachments
// @Produce image/png,image/jpeg,image/gif,image/webp
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {file} file
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /forum-attachments/{id}/show [get]
func (h *ForumAttachmentHandler) Show(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "attachment")
	if !ok {
		return
	}
	file, err := h.service.Show(c, principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	stream(c, file, "inline")
}

// Delete removes an attachment
// @Summary Delete an attachment
// @Description Allowed to the post author and to moderators
// @Tags forum-attachments
// @Produce json
// @Param id path string true "Attachment ID (UUID)"
// @Success 200 {object} Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /forum-attachments/{id} [delete]
func (h *ForumAttachmentHandler) Delete(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "attachment")
	if !ok {
		return
	}
	if err := h.service.Delete(c, principal, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Message: fmt.Sprintf("Attachment %s deleted.", id)})
}

// Stats returns attachment statistics
// @Summary Attachment statistics
// @Description Counts, sizes and downloads grouped by image, document, archive and other. Requires forum.attachments.stats.
// @Tags forum-attachments
// @Produce json
// @Success 200 {object} Response{data=service.AttachmentStats}
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /forum-attachments/stats [get]
func (h *ForumAttachmentHandler) Stats(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	stats, err := h.service.Stats(c, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, stats)
}
