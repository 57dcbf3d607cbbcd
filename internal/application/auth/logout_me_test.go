package auth_test

import (
	"context"
	"testing"

	"github.com/sparcom/backend/internal/domain"
)

func TestLogout_DeletesSession(t *testing.T) {
	t.Parallel()

	svc, _, sessions, _ := newTestService(t, nil)
	register(t, svc, "bye", "bye@example.com")

	res, err := svc.Login(context.Background(), "bye@example.com", "pass-123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(context.Background(), res.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if sessions.Len() != 0 {
		t.Fatalf("expected session deleted")
	}

	if _, err := svc.ResolveSession(context.Background(), res.Token); !domain.Is(err, "session_invalid") {
		t.Fatalf("expected session_invalid after logout, got %v", err)
	}
}

func TestLogout_IdempotentForUnknownToken(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService(t, nil)

	if err := svc.Logout(context.Background(), "never-issued"); err != nil {
		t.Fatalf("logout of unknown token must succeed, got %v", err)
	}
}

func TestLogout_EmptyTokenRejected(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService(t, nil)

	if err := svc.Logout(context.Background(), ""); !domain.Is(err, "token_missing") {
		t.Fatalf("expected token_missing, got %v", err)
	}
}

func TestResolveSession_ReturnsJoinedProfile(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService(t, nil)
	register(t, svc, "profiled", "profiled@example.com")

	res, err := svc.Login(context.Background(), "profiled@example.com", "pass-123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	acc, err := svc.ResolveSession(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if acc.User.Username != "profiled" {
		t.Fatalf("unexpected username %q", acc.User.Username)
	}
	if acc.Profile.Role != string(domain.RoleGuest) {
		t.Fatalf("expected guest profile, got %q", acc.Profile.Role)
	}
}

func TestResolveSession_EmptyToken(t *testing.T) {
	t.Parallel()

	svc, _, _, _ := newTestService(t, nil)

	if _, err := svc.ResolveSession(context.Background(), ""); !domain.Is(err, "session_invalid") {
		t.Fatalf("expected session_invalid, got %v", err)
	}
}
