package auth

import (
	"net/http"
	"strings"

	apperrors "community-portal-backend/internal/errors"
	"community-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": message})
}

func forbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "message": apperrors.ErrForbidden.Error()})
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", false
	}
	return tokenString, true
}

// RequireAuth validates the bearer token and attaches the principal.
// Suspended accounts are rejected with 403.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		tokenString, ok := bearerToken(c)
		if !ok {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		principal, err := m.service.Authenticate(c, tokenString)
		if err != nil {
			if apperrors.IsAuthentication(err) {
				unauthorized(c, "Invalid token")
				return
			}
			logger.WithContext(c).Errorf("failed to authenticate request: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "message": "An unexpected error occurred."})
			return
		}

		if principal.IsSuspended() {
			forbidden(c)
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// OptionalAuth attaches a principal when a valid token is present but never rejects
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		principal, err := m.service.Authenticate(c, tokenString)
		if err != nil {
			// Invalid token, continue without setting user context
			c.Next()
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// RequireCapability rejects principals lacking the capability with 403. It must run after RequireAuth.
func RequireCapability(capability Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			unauthorized(c, "Authentication required")
			return
		}
		if !Can(principal, capability) {
			forbidden(c)
			return
		}
		c.Next()
	}
}
