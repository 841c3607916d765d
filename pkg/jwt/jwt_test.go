package jwt

import (
	"testing"
	"time"

	"go-booking-platform/config"

	"github.com/google/uuid"
)

func testService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "owner@example.com", 2)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected non-empty token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user %s, got %s", userID, claims.UserID)
	}
	if claims.RoleID != 2 {
		t.Fatalf("expected role 2, got %d", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Fatalf("expected access token, got %s", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Fatalf("token ID mismatch: %s vs %s", claims.TokenID, tokenID)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := testService().GenerateAccessToken(uuid.New(), "x@example.com", 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestRefreshTokenType(t *testing.T) {
	svc := testService()
	token, _, err := svc.GenerateRefreshToken(uuid.New(), "x@example.com", 3)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Fatalf("expected refresh token, got %s", claims.TokenType)
	}
}
