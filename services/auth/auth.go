package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"aircnc/models"
	"aircnc/utils"
)

var (
	// ErrUnauthorized covers a missing header, a malformed header and an invalid or expired token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when an authenticated identity does not own the resource.
	ErrForbidden = errors.New("forbidden")
)

const bearerPrefix = "Bearer "

// AuthService issues and verifies access tokens.
type AuthService interface {
	IssueToken(payload map[string]interface{}) (string, error)
	Verify(authorizationHeader string) (*models.Claims, error)
}

// DefaultAuthService signs HS256 tokens with a shared secret.
type DefaultAuthService struct {
	Secret []byte
	TTL    time.Duration
}

func NewDefaultAuthService(secret string) *DefaultAuthService {
	return &DefaultAuthService{Secret: []byte(secret), TTL: utils.TokenTTL}
}

// IssueToken signs the identity payload as-is with a fixed expiry.
func (s *DefaultAuthService) IssueToken(payload map[string]interface{}) (string, error) {
	token, err := utils.GenerateToken(payload, s.Secret, s.TTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

func (s *DefaultAuthService) Verify(authorizationHeader string) (*models.Claims, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, fmt.Errorf("%w: missing bearer token", ErrUnauthorized)
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, bearerPrefix))
	if tokenString == "" {
		return nil, fmt.Errorf("%w: empty bearer token", ErrUnauthorized)
	}

	claims, err := utils.ValidateToken(tokenString, s.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	email, _ := claims["email"].(string)
	return &models.Claims{Email: email, Raw: claims}, nil
}

// Authorize checks that the authenticated identity owns the email-scoped resource.
// It is separate from Verify and must be applied per protected route.
func Authorize(claims *models.Claims, resourceEmail string) error {
	if claims == nil || claims.Email == "" || claims.Email != resourceEmail {
		return ErrForbidden
	}
	return nil
}
