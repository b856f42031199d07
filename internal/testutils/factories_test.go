package testutils

import (
	"testing"

	"community-portal-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFactoriesProduceUniqueRows(t *testing.T) {
	fs := NewFactorySet()

	u1, u2 := fs.User.Create(), fs.User.Create()
	assert.NotEqual(t, u1.Email, u2.Email)
	assert.Equal(t, models.UserStatusActive, u1.Status)

	o1, o2 := fs.Organization.Create(), fs.Organization.Create()
	assert.NotEqual(t, o1.Slug, o2.Slug)

	orgID := uuid.New()
	inv := fs.Invitation.Create(orgID, "ana@example.org")
	assert.True(t, inv.CanRespond(inv.CreatedAt))
	assert.False(t, fs.Invitation.Expired(orgID, "ana@example.org").CanRespond(inv.CreatedAt))

	sub := fs.Subscription.Create("ana@example.org")
	assert.True(t, sub.Preferences.Data().Volunteering)
}
