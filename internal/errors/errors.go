package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this email"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors collects field level validation failures
type ValidationErrors struct {
	Fields map[string]string
}

func (e *ValidationErrors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// DomainError is a business rule failure whose message is safe to show to the user
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrPageNotFound         = &NotFoundError{Entity: "page"}
	ErrNewsNotFound         = &NotFoundError{Entity: "news"}
	ErrThreadNotFound       = &NotFoundError{Entity: "thread"}
	ErrPostNotFound         = &NotFoundError{Entity: "post"}
	ErrForumNotFound        = &NotFoundError{Entity: "forum"}
	ErrAttachmentNotFound   = &NotFoundError{Entity: "attachment"}
	ErrFileNotFound         = &NotFoundError{Entity: "file"}
	ErrReportNotFound       = &NotFoundError{Entity: "report"}
	ErrWarningNotFound      = &NotFoundError{Entity: "warning"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
	ErrInvitationNotFound   = &NotFoundError{Entity: "invitation"}
)

// Already Exists Errors
var (
	ErrReportExists = &AlreadyExistsError{Entity: "report", Context: "for this content"}
)

// Business Logic Errors
var (
	ErrInvalidTargetKind = &ValidationError{Field: "kind", Message: "must be one of: thread, post"}
	ErrSelfReport        = &DomainError{Message: "You cannot report your own content."}
)

// Authentication Errors
var (
	ErrMissingToken     = &AuthenticationError{Message: "authorization header required"}
	ErrInvalidToken     = &AuthenticationError{Message: "invalid or expired token"}
	ErrPrincipalMissing = &AuthenticationError{Message: "authentication required"}
	ErrUserSuspended    = &AuthorizationError{Message: "user account is suspended"}
	ErrForbidden        = &AuthorizationError{Message: "This action is unauthorized."}
)

// Configuration Errors
var (
	ErrDefaultJWTSecret      = &ConfigurationError{Message: "JWT_SECRET must be changed in production"}
	ErrDatabaseNameMissing   = &ConfigurationError{Message: "database name is required"}
	ErrUnknownCacheDriver    = &ConfigurationError{Message: "unknown cache driver"}
	ErrUnknownStorageDriver  = &ConfigurationError{Message: "unknown storage driver"}
	ErrStorageBucketRequired = &ConfigurationError{Message: "S3_BUCKET is required for the s3 storage driver"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.Is(err, &NotFoundError{}) || errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.Is(err, &AlreadyExistsError{}) || errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError or ValidationErrors
func IsValidation(err error) bool {
	var validationErr *ValidationError
	var validationErrs *ValidationErrors
	return errors.As(err, &validationErr) || errors.As(err, &validationErrs)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.Is(err, &AuthenticationError{}) || errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.Is(err, &AuthorizationError{}) || errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.Is(err, &ConfigurationError{}) || errors.As(err, &configErr)
}

// IsDomain checks if an error is a DomainError
func IsDomain(err error) bool {
	var domainErr *DomainError
	return errors.As(err, &domainErr)
}

// FieldErrors returns the field map carried by a validation error, if any
func FieldErrors(err error) map[string]string {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs.Fields
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) && validationErr.Field != "" {
		return map[string]string{validationErr.Field: validationErr.Message}
	}
	return nil
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrors creates a ValidationErrors from a field map
func NewValidationErrors(fields map[string]string) error {
	return &ValidationErrors{Fields: fields}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewDomainError creates a new DomainError
func NewDomainError(message string) error {
	return &DomainError{Message: message}
}
