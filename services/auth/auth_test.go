package auth

import (
	"errors"
	"testing"
	"time"

	"aircnc/models"

	"github.com/golang-jwt/jwt"
)

func TestIssueAndVerify_RoundTripsEmail(t *testing.T) {
	svc := NewDefaultAuthService("test-secret")

	token, err := svc.IssueToken(map[string]interface{}{"email": "host@example.com", "name": "Host"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.Verify("Bearer " + token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "host@example.com" {
		t.Errorf("expected email claim, got %q", claims.Email)
	}
	if claims.Raw["name"] != "Host" {
		t.Errorf("expected payload fields to be preserved, got %v", claims.Raw)
	}
}

func TestIssueToken_ExpiresInOneHour(t *testing.T) {
	svc := NewDefaultAuthService("test-secret")
	before := time.Now()

	token, err := svc.IssueToken(map[string]interface{}{"email": "a@x.com", "exp": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	claims, err := svc.Verify("Bearer " + token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	exp, ok := claims.Raw["exp"].(float64)
	if !ok {
		t.Fatalf("expected numeric exp, got %T", claims.Raw["exp"])
	}
	ttl := time.Unix(int64(exp), 0).Sub(before)
	if ttl < 59*time.Minute || ttl > 61*time.Minute {
		t.Errorf("expected ~1h expiry, got %v", ttl)
	}
}

func TestVerify_Rejections(t *testing.T) {
	svc := NewDefaultAuthService("test-secret")
	other := NewDefaultAuthService("other-secret")

	foreign, _ := other.IssueToken(map[string]interface{}{"email": "a@x.com"})

	expired := &DefaultAuthService{Secret: []byte("test-secret"), TTL: -time.Minute}
	stale, _ := expired.IssueToken(map[string]interface{}{"email": "a@x.com"})

	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@x.com"})
	noExpToken, _ := noExp.SignedString([]byte("test-secret"))

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"no bearer prefix", "Token abc"},
		{"empty token", "Bearer "},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + foreign},
		{"expired", "Bearer " + stale},
		{"no expiry", "Bearer " + noExpToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Verify(tt.header); !errors.Is(err, ErrUnauthorized) {
				t.Errorf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestAuthorize(t *testing.T) {
	claims := &models.Claims{Email: "host@example.com"}

	if err := Authorize(claims, "host@example.com"); err != nil {
		t.Errorf("expected match to pass, got %v", err)
	}
	if err := Authorize(claims, "other@example.com"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden on mismatch, got %v", err)
	}
	if err := Authorize(&models.Claims{}, ""); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for claims without email, got %v", err)
	}
	if err := Authorize(nil, "host@example.com"); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for nil claims, got %v", err)
	}
}
