package dto

import (
	"time"

	"github.com/sparcom/backend/internal/domain"
)

type CreateEventRequest struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	BathhouseID     *string `json:"bathhouse_id,omitempty"`
	EventDate       string  `json:"event_date"` // RFC 3339
	DurationHours   int     `json:"duration_hours,omitempty"`
	MaxParticipants int     `json:"max_participants,omitempty"`
	PricePerPerson  float64 `json:"price_per_person"`

	parsedDate time.Time
}

func (r *CreateEventRequest) Validate() error {
	if r.Title == "" {
		return domain.ErrMissingField("title")
	}
	if r.Description == "" {
		return domain.ErrMissingField("description")
	}
	if r.EventDate == "" {
		return domain.ErrMissingField("event_date")
	}
	t, err := time.Parse(time.RFC3339, r.EventDate)
	if err != nil {
		return domain.ErrInvalidField("event_date", "must be RFC 3339")
	}
	r.parsedDate = t
	if r.PricePerPerson <= 0 {
		return domain.ErrMissingField("price_per_person")
	}
	return nil
}

// ParsedDate is valid only after Validate has passed.
func (r *CreateEventRequest) ParsedDate() time.Time { return r.parsedDate }

type EventView struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	Description         string  `json:"description"`
	BathhouseID         *string `json:"bathhouse_id"`
	OrganizerID         string  `json:"organizer_id"`
	MasterID            *string `json:"master_id"`
	EventDate           string  `json:"event_date"`
	DurationHours       int     `json:"duration_hours"`
	MaxParticipants     int     `json:"max_participants"`
	CurrentParticipants int     `json:"current_participants"`
	PricePerPerson      float64 `json:"price_per_person"`
	Status              string  `json:"status"`
	CreatedAt           string  `json:"created_at"`
}

type CreateEventResponse struct {
	EventID string `json:"event_id"`
}

func ToEventView(e domain.Event) EventView {
	return EventView{
		ID:                  e.ID,
		Title:               e.Title,
		Description:         e.Description,
		BathhouseID:         e.BathhouseID,
		OrganizerID:         e.OrganizerID,
		MasterID:            e.MasterID,
		EventDate:           e.EventDate.Format(time.RFC3339),
		DurationHours:       e.DurationHours,
		MaxParticipants:     e.MaxParticipants,
		CurrentParticipants: e.CurrentParticipants,
		PricePerPerson:      e.PricePerPerson,
		Status:              string(e.Status),
		CreatedAt:           e.CreatedAt.Format(time.RFC3339),
	}
}

func ToEventViews(list []domain.Event) []EventView {
	out := make([]EventView, 0, len(list))
	for _, e := range list {
		out = append(out, ToEventView(e))
	}
	return out
}
