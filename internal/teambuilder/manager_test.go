package teambuilder

import (
	"context"
	"fmt"
	"testing"

	"github.com/volleyverse/fantasy-volley/external/rosterapi"
	"github.com/volleyverse/fantasy-volley/internal/platform/logging"
)

type fakeAuthenticator struct {
	account rosterapi.Account
	err     error
}

func (a *fakeAuthenticator) SignIn(_ context.Context, _, _ string) (rosterapi.Account, error) {
	if a.err != nil {
		return rosterapi.Account{}, a.err
	}
	return a.account, nil
}

func (a *fakeAuthenticator) SignUp(_ context.Context, _, _, _ string) (rosterapi.Account, error) {
	if a.err != nil {
		return rosterapi.Account{}, a.err
	}
	return a.account, nil
}

func TestManager_SignInOpensHydratedSession(t *testing.T) {
	auth := &fakeAuthenticator{account: rosterapi.Account{ID: "u1", Email: "coach@example.com", Token: "tok-1"}}
	client := &fakeClient{}
	manager := NewManager(auth, client, logging.NewNop())

	session, err := manager.SignIn(context.Background(), "coach@example.com", "spike123")
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if session == nil {
		t.Fatalf("expected a session")
	}
	if client.fetchCalls != 1 {
		t.Fatalf("expected one hydration fetch, got %d", client.fetchCalls)
	}

	active, ok := manager.Session()
	if !ok || active != session {
		t.Fatalf("expected the new session to be active")
	}
	account, ok := manager.Account()
	if !ok || account.ID != "u1" {
		t.Fatalf("unexpected account: %+v", account)
	}
}

func TestManager_SignInFailureLeavesNoSession(t *testing.T) {
	auth := &fakeAuthenticator{err: fmt.Errorf("invalid credentials")}
	manager := NewManager(auth, &fakeClient{}, logging.NewNop())

	if _, err := manager.SignIn(context.Background(), "coach@example.com", "wrong"); err == nil {
		t.Fatalf("expected sign in error")
	}
	if _, ok := manager.Session(); ok {
		t.Fatalf("expected no active session")
	}
}

func TestManager_SignOutDiscardsSession(t *testing.T) {
	auth := &fakeAuthenticator{account: rosterapi.Account{ID: "u1", Token: "tok-1"}}
	manager := NewManager(auth, &fakeClient{}, logging.NewNop())

	if _, err := manager.SignIn(context.Background(), "coach@example.com", "spike123"); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	manager.SignOut()

	if _, ok := manager.Session(); ok {
		t.Fatalf("expected session discarded")
	}
	if _, ok := manager.Account(); ok {
		t.Fatalf("expected account discarded")
	}
}

func TestManager_NewSignInReplacesSession(t *testing.T) {
	auth := &fakeAuthenticator{account: rosterapi.Account{ID: "u1", Token: "tok-1"}}
	manager := NewManager(auth, &fakeClient{}, logging.NewNop())

	first, err := manager.SignIn(context.Background(), "coach@example.com", "spike123")
	if err != nil {
		t.Fatalf("first sign in: %v", err)
	}

	auth.account = rosterapi.Account{ID: "u2", Token: "tok-2"}
	second, err := manager.SignIn(context.Background(), "other@example.com", "spike123")
	if err != nil {
		t.Fatalf("second sign in: %v", err)
	}
	if first == second {
		t.Fatalf("expected a fresh session per sign in")
	}

	account, _ := manager.Account()
	if account.ID != "u2" {
		t.Fatalf("expected the second account active, got %+v", account)
	}
}
