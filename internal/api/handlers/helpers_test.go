package handlers_test

import (
	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/database/models"
	"community-portal-backend/internal/testutils"

	"github.com/gin-gonic/gin"
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

// setupRouter returns an HTTP suite whose /api/v1 group runs as p; nil leaves requests anonymous
func setupRouter(p *auth.Principal) (*testutils.HTTPTestSuite, *gin.RouterGroup) {
	httpSuite := testutils.SetupHTTPTest()
	v1 := httpSuite.Router.Group("/api/v1", testutils.WithPrincipal(p))
	return httpSuite, v1
}
