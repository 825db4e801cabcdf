package token

import (
	"testing"
	"time"

	"github.com/volleyverse/fantasy-volley/internal/domain/user"
)

func TestJWTManager_IssueAndVerify(t *testing.T) {
	mgr, err := NewJWTManager(JWTConfig{Secret: "test-secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("build manager: %v", err)
	}

	signed, expiresAt, err := mgr.Issue(user.Principal{UserID: "user-1"}, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if signed == "" {
		t.Fatal("expected a signed token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %s", expiresAt)
	}

	principal, err := mgr.Verify(signed)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if principal.UserID != "user-1" {
		t.Fatalf("unexpected subject: %s", principal.UserID)
	}
}

func TestJWTManager_RejectsExpiredToken(t *testing.T) {
	mgr, err := NewJWTManager(JWTConfig{Secret: "test-secret", TTL: time.Minute})
	if err != nil {
		t.Fatalf("build manager: %v", err)
	}

	signed, _, err := mgr.Issue(user.Principal{UserID: "user-1"}, time.Now().Add(-2*time.Minute))
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := mgr.Verify(signed); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestJWTManager_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTManager(JWTConfig{Secret: "issuer-secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("build issuer: %v", err)
	}
	verifier, err := NewJWTManager(JWTConfig{Secret: "other-secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("build verifier: %v", err)
	}

	signed, _, err := issuer.Issue(user.Principal{UserID: "user-1"}, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := verifier.Verify(signed); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestJWTManager_RequiresSecret(t *testing.T) {
	if _, err := NewJWTManager(JWTConfig{Secret: "  "}); err == nil {
		t.Fatal("expected missing secret to be rejected")
	}
}
