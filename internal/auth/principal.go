package auth

import (
	"community-portal-backend/internal/database/models"
	"community-portal-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys set by the auth middleware
const (
	PrincipalKey = "principal"
	UserIDKey    = "user_id"
)

// Capability names an action guarded by role
type Capability string

const (
	CapabilityForumModerate         Capability = "forum.moderate"
	CapabilityForumAttachmentsStats Capability = "forum.attachments.stats"
	CapabilityContentManage         Capability = "content.manage"
)

var roleCapabilities = map[models.UserRole][]Capability{
	models.UserRoleAdmin: {
		CapabilityForumModerate,
		CapabilityForumAttachmentsStats,
		CapabilityContentManage,
	},
	models.UserRoleModerator: {
		CapabilityForumModerate,
	},
}

// Principal is the authenticated caller, passed explicitly into every service call
type Principal struct {
	ID     uuid.UUID         `json:"id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Role   models.UserRole   `json:"role"`
	Status models.UserStatus `json:"status"`
}

// NewPrincipal builds a Principal from a user row
func NewPrincipal(user *models.User) *Principal {
	return &Principal{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Status: user.Status,
	}
}

// IsSuspended reports whether the principal's account is suspended
func (p *Principal) IsSuspended() bool {
	return p.Status == models.UserStatusSuspended
}

// Can reports whether the principal holds the capability. A nil principal holds none.
func Can(p *Principal, capability Capability) bool {
	if p == nil || p.IsSuspended() {
		return false
	}
	for _, c := range roleCapabilities[p.Role] {
		if c == capability {
			return true
		}
	}
	return false
}

// GetPrincipal returns the principal attached by RequireAuth or OptionalAuth
func GetPrincipal(c *gin.Context) (*Principal, bool) {
	value, exists := c.Get(PrincipalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*Principal)
	return principal, ok && principal != nil
}

// SetPrincipal attaches the principal and its log fields to the request context
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(PrincipalKey, p)
	c.Set(UserIDKey, p.ID.String())
	c.Set(logger.UserEmailKey, p.Email)
}
