package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sparcom/backend/internal/domain"
)

// EventRepo is an in-memory event store ordered like the Postgres one.
// Test-only.
type EventRepo struct {
	mu     sync.RWMutex
	events map[string]domain.Event
}

func NewEventRepo() *EventRepo {
	return &EventRepo{events: make(map[string]domain.Event)}
}

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[e.ID] = *e
	return nil
}

func (r *EventRepo) GetByID(ctx context.Context, id string) (domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound()
	}
	return e, nil
}

func (r *EventRepo) List(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Event, 0, len(r.events))
	for _, e := range r.events {
		if status == "" || e.Status == status {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].EventDate.Before(out[j].EventDate)
	})
	return out, nil
}
