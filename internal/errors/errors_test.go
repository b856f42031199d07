package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "news"}
		assert.Equal(t, "news not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "news"}
		err2 := &NotFoundError{Entity: "news"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "news"}
		err2 := &NotFoundError{Entity: "invitation"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrNewsNotFound, ErrNewsNotFound))
		assert.False(t, errors.Is(ErrNewsNotFound, ErrInvitationNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading article: %w", ErrNewsNotFound)
		assert.True(t, errors.Is(wrapped, ErrNewsNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrAttachmentNotFound))
		assert.False(t, IsNotFound(ErrSelfReport))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "report", Context: "for this content"}
		assert.Equal(t, "report already exists for this content", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "report"}
		assert.Equal(t, "report already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrReportExists))
		assert.False(t, IsAlreadyExists(ErrReportNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrNewsNotFound))
	})
}

func TestValidationErrors(t *testing.T) {
	err := NewValidationErrors(map[string]string{
		"severity": "must be one of: low, medium, high",
		"reason":   "is required",
	})

	assert.True(t, IsValidation(err))
	assert.Equal(t, "validation failed: reason: is required; severity: must be one of: low, medium, high", err.Error())
	assert.Equal(t, "is required", FieldErrors(err)["reason"])

	t.Run("single field error exposes its field", func(t *testing.T) {
		fields := FieldErrors(ErrInvalidTargetKind)
		assert.Equal(t, map[string]string{"kind": "must be one of: thread, post"}, fields)
	})

	t.Run("non validation error has no fields", func(t *testing.T) {
		assert.Nil(t, FieldErrors(ErrForbidden))
	})
}

func TestDomainAndAuthErrors(t *testing.T) {
	assert.True(t, IsDomain(ErrSelfReport))
	assert.True(t, IsDomain(fmt.Errorf("wrap: %w", NewDomainError("nope"))))
	assert.False(t, IsDomain(ErrForbidden))

	assert.True(t, IsAuthorization(ErrForbidden))
	assert.True(t, IsAuthorization(ErrUserSuspended))
	assert.Equal(t, "This action is unauthorized.", ErrForbidden.Error())

	assert.True(t, IsAuthentication(ErrInvalidToken))
	assert.True(t, IsConfiguration(ErrDefaultJWTSecret))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("denied")
		assert.Equal(t, "denied", err.Error())
		assert.True(t, IsAuthorization(err))
	})
}
