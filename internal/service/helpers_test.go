package service_test

import (
	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

func volunteer() *auth.Principal {
	return &auth.Principal{
		ID:     uuid.New(),
		Name:   "Ana Volunteer",
		Email:  "ana@example.org",
		Role:   models.UserRoleVolunteer,
		Status: models.UserStatusActive,
	}
}

func moderator() *auth.Principal {
	p := volunteer()
	p.Name = "Mo Moderator"
	p.Email = "mo@example.org"
	p.Role = models.UserRoleModerator
	return p
}

func admin() *auth.Principal {
	p := volunteer()
	p.Name = "Ada Admin"
	p.Email = "ada@example.org"
	p.Role = models.UserRoleAdmin
	return p
}

func suspended(p *auth.Principal) *auth.Principal {
	p.Status = models.UserStatusSuspended
	return p
}
