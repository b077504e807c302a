package auth

import (
	"context"
	"testing"
	"time"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)

	token, err := m.Issue("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if claims.UserID() != "user-123" {
		t.Errorf("expected user-123, got %s", claims.UserID())
	}
	if claims.Email() != "a@x.com" {
		t.Errorf("expected a@x.com, got %s", claims.Email())
	}
	if claims.TokenID() == "" {
		t.Error("expected a token id")
	}
	if claims.Source() != "JWT" {
		t.Errorf("expected source JWT, got %s", claims.Source())
	}
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), -time.Minute)

	token, err := m.Issue("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := m.Parse(token); err == nil {
		t.Error("expected expired token to fail parsing")
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m := NewTokenManager([]byte("secret-a"), time.Hour)
	other := NewTokenManager([]byte("secret-b"), time.Hour)

	token, err := m.Issue("user-123", "a@x.com")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := other.Parse(token); err == nil {
		t.Error("expected token signed with another secret to fail")
	}
}

func TestTokenManager_Garbage(t *testing.T) {
	m := NewTokenManager([]byte("test-secret"), time.Hour)
	if _, err := m.Parse("not-a-token"); err == nil {
		t.Error("expected garbage token to fail")
	}
}

func TestRequestContext(t *testing.T) {
	ctx := context.Background()

	if got := GetUserClaims(ctx); got != nil {
		t.Errorf("expected nil claims on empty context, got %v", got)
	}

	claims := &JWTClaims{UserUUID: "u1", EmailValue: "a@x.com"}
	ctx = SetUserClaims(ctx, claims)

	got := GetUserClaims(ctx)
	if got == nil || got.UserID() != "u1" {
		t.Errorf("claims did not round-trip through context: %v", got)
	}
}
