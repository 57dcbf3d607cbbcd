package roles_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sparcom/backend/internal/application/roles"
	"github.com/sparcom/backend/internal/domain"
	"github.com/sparcom/backend/internal/infrastructure/memory"
)

func newTestService(t *testing.T, now func() time.Time) (*roles.Service, *memory.ApplicationRepo, *memory.NoopPublisher) {
	t.Helper()
	repo := memory.NewApplicationRepo()
	pub := memory.NewNoopPublisher(zerolog.Nop())
	return roles.NewService(repo, pub, zerolog.Nop(), now), repo, pub
}

func validInput() roles.ApplyInput {
	return roles.ApplyInput{
		RequestedRole: "organizer",
		Motivation:    strings.Repeat("I run steam sessions weekly. ", 3),
		PortfolioURL:  "https://example.com/portfolio",
	}
}

func TestApply_Succeeds(t *testing.T) {
	t.Parallel()

	svc, repo, pub := newTestService(t, nil)

	a, err := svc.Apply(context.Background(), "u-1", validInput())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if a.Status != domain.ApplicationPending {
		t.Fatalf("expected pending, got %q", a.Status)
	}

	mine, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != a.ID {
		t.Fatalf("application not stored: %+v", mine)
	}

	if len(pub.Published) != 1 || pub.Published[0] != "roles.application.submitted" {
		t.Fatalf("expected submitted event, got %v", pub.Published)
	}
}

func TestApply_MotivationTooShort(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t, nil)

	in := validInput()
	in.Motivation = "too short"
	if _, err := svc.Apply(context.Background(), "u-1", in); !domain.Is(err, "motivation_too_short") {
		t.Fatalf("expected motivation_too_short, got %v", err)
	}
}

func TestApply_SecondPendingConflicts(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(t, nil)

	if _, err := svc.Apply(context.Background(), "u-1", validInput()); err != nil {
		t.Fatalf("first apply: %v", err)
	}

	in := validInput()
	in.RequestedRole = "master"
	_, err := svc.Apply(context.Background(), "u-1", in)
	if !domain.Is(err, "pending_application_exists") {
		t.Fatalf("expected pending_application_exists, got %v", err)
	}
}

func TestApply_AllowedAgainAfterReview(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newTestService(t, nil)

	first, err := svc.Apply(context.Background(), "u-1", validInput())
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	repo.SetStatus(first.ID, domain.ApplicationRejected)

	if _, err := svc.Apply(context.Background(), "u-1", validInput()); err != nil {
		t.Fatalf("apply after rejection must succeed, got %v", err)
	}
}

func TestMyApplications_NewestFirst(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	current := base
	svc, repo, _ := newTestService(t, func() time.Time { return current })

	first, err := svc.Apply(context.Background(), "u-1", validInput())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	repo.SetStatus(first.ID, domain.ApplicationRejected)

	current = base.Add(time.Hour)
	second, err := svc.Apply(context.Background(), "u-1", validInput())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	mine, err := svc.MyApplications(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(mine))
	}
	if mine[0].ID != second.ID || mine[1].ID != first.ID {
		t.Fatalf("expected newest first, got %v", []string{mine[0].ID, mine[1].ID})
	}
}

func TestPendingApplications_OldestFirstWithIdentity(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	current := base
	svc, repo, _ := newTestService(t, func() time.Time { return current })

	repo.SeedUser(domain.Account{
		User: domain.User{ID: "u-1", Username: "first-user", Email: "first@example.com"},
	})
	repo.SeedUser(domain.Account{
		User: domain.User{ID: "u-2", Username: "second-user", Email: "second@example.com"},
	})

	a1, err := svc.Apply(context.Background(), "u-1", validInput())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	current = base.Add(time.Hour)
	if _, err := svc.Apply(context.Background(), "u-2", validInput()); err != nil {
		t.Fatalf("apply: %v", err)
	}

	pending, err := svc.PendingApplications(context.Background())
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	if pending[0].ID != a1.ID {
		t.Fatalf("expected oldest first")
	}
	if pending[0].Username != "first-user" || pending[0].Email != "first@example.com" {
		t.Fatalf("identity not joined: %+v", pending[0])
	}
}
