package httpapi

import (
	"testing"

	"github.com/volleyverse/fantasy-volley/internal/domain/user"
	"github.com/volleyverse/fantasy-volley/internal/usecase"
)

func TestToAuthResponse_CarriesUserIdentity(t *testing.T) {
	result := usecase.AuthResult{
		User:  user.User{ID: "u-42", Email: "coach@example.com", Name: "Coach"},
		Token: "tok-abc",
	}

	got := toAuthResponse(result)
	if got.ID != "u-42" {
		t.Fatalf("expected id u-42, got %q", got.ID)
	}
	if got.Email != "coach@example.com" || got.Name != "Coach" {
		t.Fatalf("unexpected identity fields: %+v", got)
	}
	if got.Token != "tok-abc" {
		t.Fatalf("expected token tok-abc, got %q", got.Token)
	}
}
