package utils

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, 42, "vetiver_fan", "admin", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(testSecret, token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("user id: got %d, want 42", claims.UserID)
	}
	if claims.Username != "vetiver_fan" {
		t.Errorf("username: got %q", claims.Username)
	}
	if claims.Role != "admin" {
		t.Errorf("role: got %q", claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected a token id (jti) for revocation")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, 7, "someone", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("token signed with a different secret should be rejected")
	}
}

func TestParseTokenExpired(t *testing.T) {
	token, err := GenerateToken(testSecret, 7, "someone", "user", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(testSecret, token); err == nil {
		t.Error("expired token should be rejected")
	}
}

func TestTokenIDsAreUnique(t *testing.T) {
	first, err := GenerateToken(testSecret, 1, "a", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	second, err := GenerateToken(testSecret, 1, "a", "user", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	firstClaims, err := ParseToken(testSecret, first)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	secondClaims, err := ParseToken(testSecret, second)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if firstClaims.ID == secondClaims.ID {
		t.Error("two sessions for the same user must have distinct token ids")
	}
}
