package auth

import (
	"fmt"
	"time"
)

// AuthConfig holds the JWT settings used to issue and validate bearer tokens
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"jwt_secret"`
	Issuer    string        `yaml:"issuer" json:"issuer"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl"`
}

// NewAuthConfig builds an AuthConfig, defaulting the token lifetime to 24 hours
func NewAuthConfig(secret, issuer string) *AuthConfig {
	return &AuthConfig{
		JWTSecret: secret,
		Issuer:    issuer,
		TokenTTL:  24 * time.Hour,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}
