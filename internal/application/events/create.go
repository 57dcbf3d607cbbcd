package events

import (
	"context"
	"time"

	"github.com/sparcom/backend/internal/domain"
)

type CreateInput struct {
	Title           string
	Description     string
	BathhouseID     *string
	EventDate       time.Time
	DurationHours   int
	MaxParticipants int
	PricePerPerson  float64
}

// Create stores a new draft event owned by the acting user. Role gating
// happens in transport; the caller identity is already authenticated.
func (s *Service) Create(ctx context.Context, organizerID string, in CreateInput) (domain.Event, error) {
	e, err := domain.NewDraft(
		organizerID,
		in.Title,
		in.Description,
		in.BathhouseID,
		in.EventDate,
		in.DurationHours,
		in.MaxParticipants,
		in.PricePerPerson,
		s.now(),
	)
	if err != nil {
		return domain.Event{}, err
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return domain.Event{}, err
	}

	evt := EventCreatedEvent{
		EventID:     e.ID,
		OrganizerID: e.OrganizerID,
		Title:       e.Title,
		EventDate:   e.EventDate.Format(time.RFC3339),
	}
	if err := s.pub.PublishEventCreated(ctx, evt); err != nil {
		s.lg.Warn().Err(err).Str("event_id", e.ID).Msg("publish event.created failed")
	}

	return *e, nil
}
