package jwt

import (
	"testing"
	"time"

	"go-hospital-management/config"

	"github.com/google/uuid"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTestService()
	userID := uuid.New()

	token, tokenID, err := s.GenerateAccessToken(userID, "drhouse", 2)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a token ID")
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("user ID mismatch: %s != %s", claims.UserID, userID)
	}
	if claims.Username != "drhouse" {
		t.Errorf("username mismatch: %s", claims.Username)
	}
	if claims.RoleID != 2 {
		t.Errorf("role ID mismatch: %d", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("expected access token type, got %s", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("token ID mismatch: %s != %s", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	s := newTestService()

	token, _, err := s.GenerateRefreshToken(uuid.New(), "patient1", 3)
	if err != nil {
		t.Fatalf("failed to generate refresh token: %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate refresh token: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("expected refresh token type, got %s", claims.TokenType)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	s := newTestService()
	token, _, err := s.GenerateAccessToken(uuid.New(), "admin", 1)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	other := NewJWTService(config.JWTConfig{
		Secret:        "different-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	s := newTestService()
	if _, err := s.ValidateToken("not.a.token"); err == nil {
		t.Error("expected validation to fail for garbage input")
	}
}
