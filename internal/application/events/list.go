package events

import (
	"context"
	"strings"

	"github.com/sparcom/backend/internal/domain"
)

// StatusAll lists events in every status.
const StatusAll = "all"

// List returns events filtered by status, soonest first. An empty filter
// defaults to published; "all" disables the filter.
func (s *Service) List(ctx context.Context, statusFilter string) ([]domain.Event, error) {
	statusFilter = strings.TrimSpace(statusFilter)
	if statusFilter == "" {
		statusFilter = string(domain.EventPublished)
	}
	if statusFilter == StatusAll {
		return s.repo.List(ctx, "")
	}
	status := domain.EventStatus(statusFilter)
	if !status.Valid() {
		return nil, domain.ErrInvalidField("status", "unknown event status")
	}
	return s.repo.List(ctx, status)
}

func (s *Service) Get(ctx context.Context, id string) (domain.Event, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Event{}, domain.ErrMissingField("id")
	}
	return s.repo.GetByID(ctx, id)
}
