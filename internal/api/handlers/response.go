package handlers

import (
	"net/http"
	"strconv"

	"community-portal-backend/internal/auth"
	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/logger"
	"community-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UnexpectedErrorMessage replaces the detail of every internal failure
const UnexpectedErrorMessage = "An unexpected error occurred."

// Response is the JSON envelope of every endpoint
type Response struct {
	Success bool              `json:"success" example:"true"`
	Message string            `json:"message,omitempty" example:"Done."`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// ErrorResponse documents a failed envelope
type ErrorResponse struct {
	Success bool              `json:"success" example:"false"`
	Message string            `json:"message" example:"This action is unauthorized."`
	Errors  map[string]string `json:"errors,omitempty"`
}

// PaginatedResponse is the envelope of a paginated listing
type PaginatedResponse struct {
	Success bool             `json:"success" example:"true"`
	Data    interface{}      `json:"data"`
	Meta    service.PageMeta `json:"meta"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondPage(c *gin.Context, data interface{}, meta service.PageMeta) {
	c.JSON(http.StatusOK, PaginatedResponse{Success: true, Data: data, Meta: meta})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Success: false, Message: message})
}

// respondError maps the error taxonomy onto HTTP statuses
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Success: false,
			Message: "The given data was invalid.",
			Errors:  apperrors.FieldErrors(err),
		})
	case apperrors.IsAuthentication(err):
		respondFailure(c, http.StatusUnauthorized, err.Error())
	case apperrors.IsAuthorization(err):
		respondFailure(c, http.StatusForbidden, apperrors.ErrForbidden.Error())
	case apperrors.IsNotFound(err):
		respondFailure(c, http.StatusNotFound, err.Error())
	case apperrors.IsDomain(err):
		respondFailure(c, http.StatusUnprocessableEntity, err.Error())
	default:
		_ = c.Error(err)
		logger.WithContext(c).WithField("route", c.FullPath()).Errorf("request failed: %v", err)
		respondFailure(c, http.StatusInternalServerError, UnexpectedErrorMessage)
	}
}

// resultStatus maps a failed ActionResult reason onto an HTTP status
func resultStatus(reason string) int {
	switch reason {
	case service.ReasonDuplicate, service.ReasonNotPending:
		return http.StatusConflict
	case service.ReasonExpired:
		return http.StatusGone
	case service.ReasonEmailMismatch:
		return http.StatusForbidden
	case service.ReasonNotSubscribed:
		return http.StatusNotFound
	default:
		return http.StatusUnprocessableEntity
	}
}

// respondResult writes an ActionResult with successStatus or the status of its failure reason
func respondResult(c *gin.Context, result *service.ActionResult, successStatus int) {
	if result.Success {
		c.JSON(successStatus, Response{Success: true, Message: result.Message, Data: result.Data})
		return
	}
	respondFailure(c, resultStatus(result.Reason), result.Message)
}

// requirePrincipal returns the principal or writes 401
func requirePrincipal(c *gin.Context) (*auth.Principal, bool) {
	principal, ok := auth.GetPrincipal(c)
	if !ok {
		respondFailure(c, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}
	return principal, true
}

// optionalPrincipal returns the principal attached by OptionalAuth, or nil
func optionalPrincipal(c *gin.Context) *auth.Principal {
	principal, _ := auth.GetPrincipal(c)
	return principal
}

// parseID parses a UUID path parameter or writes 400
func parseID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid "+entity+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads a non-negative integer query parameter, returning 0 when absent or malformed
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func pageParams(c *gin.Context) (int, int) {
	return queryInt(c, "page"), queryInt(c, "per_page")
}

// bindJSON binds the request body or writes 422
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Success: false,
			Message: "The request body is invalid.",
			Errors:  map[string]string{"body": err.Error()},
		})
		return false
	}
	return true
}
