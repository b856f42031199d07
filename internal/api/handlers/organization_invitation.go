package handlers

import (
	"net/http"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationInvitationHandler handles HTTP requests for organization invitations
type OrganizationInvitationHandler struct {
	service service.InvitationServiceInterface
}

// NewOrganizationInvitationHandler creates a new organization invitation handler
func NewOrganizationInvitationHandler(s service.InvitationServiceInterface) *OrganizationInvitationHandler {
	return &OrganizationInvitationHandler{service: s}
}

// Show returns an invitation by its token
// @Summary Get an invitation
// @Tags invitations
// @Produce json
// @Param token path string true "Invitation token"
// @Success 200 {object} Response{data=service.InvitationView}
// @Failure 404 {object} ErrorResponse
// @Router /invitations/{token} [get]
func (h *OrganizationInvitationHandler) Show(c *gin.Context) {
	view, err := h.service.Show(c, c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, view)
}

type respondFunc func(ctx *gin.Context, principal *auth.Principal, token string) (*service.ActionResult, error)

func (h *OrganizationInvitationHandler) respond(c *gin.Context, fn respondFunc) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	result, err := fn(c, principal, c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondResult(c, result, http.StatusOK)
}

// Accept joins the organization of a pending invitation
// @Summary Accept an invitation
// @Description Only pending and unexpired invitations addressed to the user's email can be accepted
// @Tags invitations
// @Produce json
// @Param token path string true "Invitation token"
// @Success 200 {object} Response{data=models.OrganizationInvitation}
// @Failure 403 {object} ErrorResponse "Addressed to another email"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "No longer pending"
// @Failure 410 {object} ErrorResponse "Expired"
// @Security BearerAuth
// @Router /invitations/{token}/accept [post]
func (h *OrganizationInvitationHandler) Accept(c *gin.Context) {
	h.respond(c, func(ctx *gin.Context, p *auth.Principal, token string) (*service.ActionResult, error) {
		return h.service.Accept(ctx, p, token)
	})
}

// Reject declines a pending invitation
// @Summary Reject an invitation
// @Tags invitations
// @Produce json
// @Param token path string true "Invitation token"
// @Success 200 {object} Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 410 {object} ErrorResponse
// @Security BearerAuth
// @Router /invitations/{token}/reject [post]
func (h *OrganizationInvitationHandler) Reject(c *gin.Context) {
	h.respond(c, func(ctx *gin.Context, p *auth.Principal, token string) (*service.ActionResult, error) {
		return h.service.Reject(ctx, p, token)
	})
}

// Mine lists the invitations addressed to the signed-in user
// @Summary List my invitations
// @Tags invitations
// @Produce json
// @Param status query string false "Status" Enums(pending, accepted, rejected, expired)
// @Success 200 {object} Response{data=[]models.OrganizationInvitation}
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /invitations/mine [get]
func (h *OrganizationInvitationHandler) Mine(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	invitations, err := h.service.ListMine(c, principal, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, invitations)
}

// PendingCount returns the number of pending invitations of the signed-in user
// @Summary Count pending invitations
// @Tags invitations
// @Produce json
// @Success 200 {object} Response{data=map[string]int64}
// @Security BearerAuth
// @Router /invitations/pending-count [get]
func (h *OrganizationInvitationHandler) PendingCount(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	count, err := h.service.PendingCount(c, principal)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, gin.H{"count": count})
}
