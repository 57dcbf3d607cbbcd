package events

import (
	"context"

	"github.com/sparcom/backend/internal/domain"
)

// EventRepo is the persistence port for events. List with an empty status
// means no filter.
type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (domain.Event, error)
	List(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
}

type EventPublisher interface {
	PublishEventCreated(ctx context.Context, evt EventCreatedEvent) error
}

type EventCreatedEvent struct {
	EventID     string `json:"event_id"`
	OrganizerID string `json:"organizer_id"`
	Title       string `json:"title"`
	EventDate   string `json:"event_date"`
}
