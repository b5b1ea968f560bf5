package auth_test

import (
	"testing"
	"time"

	"github.com/clockhouse/timesheet/internal/auth"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := auth.NewManager("test-secret-key", time.Hour)

	token, err := m.GenerateAccessToken("1", "john.doe@example.com", "John Doe")

	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := m.VerifyAccessToken(token)

	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if claims.Email != "john.doe@example.com" {
		t.Fatalf("got email %q", claims.Email)
	}

	if claims.Subject != "1" {
		t.Fatalf("got subject %q", claims.Subject)
	}

	if claims.JTI == "" {
		t.Fatal("expected a jti")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewManager("secret-a", time.Hour)
	verifier := auth.NewManager("secret-b", time.Hour)

	token, err := issuer.GenerateAccessToken("1", "john.doe@example.com", "John Doe")

	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	_, err = verifier.VerifyAccessToken(token)

	if err == nil {
		t.Fatal("expected verification to fail")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	m := auth.NewManager("test-secret-key", -time.Minute)

	token, err := m.GenerateAccessToken("1", "john.doe@example.com", "John Doe")

	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	_, err = m.VerifyAccessToken(token)

	if err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := auth.NewManager("test-secret-key", time.Hour)

	_, err := m.VerifyAccessToken("not.a.token")

	if err == nil {
		t.Fatal("expected garbage token to be rejected")
	}
}
