package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventDraft     EventStatus = "draft"
	EventPublished EventStatus = "published"
	EventCanceled  EventStatus = "canceled"
	EventCompleted EventStatus = "completed"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventDraft, EventPublished, EventCanceled, EventCompleted:
		return true
	}
	return false
}

const (
	DefaultDurationHours   = 2
	DefaultMaxParticipants = 10
)

type Event struct {
	ID                  string
	Title               string
	Description         string
	BathhouseID         *string
	OrganizerID         string
	MasterID            *string
	EventDate           time.Time
	DurationHours       int
	MaxParticipants     int
	CurrentParticipants int
	PricePerPerson      float64
	Status              EventStatus
	CreatedAt           time.Time
}

// NewDraft builds a creatable event. New events always start as draft with
// zero participants regardless of what the caller sends.
func NewDraft(organizerID, title, description string, bathhouseID *string, eventDate time.Time, durationHours, maxParticipants int, pricePerPerson float64, now time.Time) (*Event, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if strings.TrimSpace(organizerID) == "" {
		return nil, ErrMissingField("organizer_id")
	}
	if title == "" {
		return nil, ErrMissingField("title")
	}
	if description == "" {
		return nil, ErrMissingField("description")
	}
	if eventDate.IsZero() {
		return nil, ErrMissingField("event_date")
	}
	if pricePerPerson <= 0 {
		return nil, ErrMissingField("price_per_person")
	}
	if durationHours <= 0 {
		durationHours = DefaultDurationHours
	}
	if maxParticipants <= 0 {
		maxParticipants = DefaultMaxParticipants
	}

	return &Event{
		ID:                  uuid.NewString(),
		Title:               title,
		Description:         description,
		BathhouseID:         bathhouseID,
		OrganizerID:         organizerID,
		EventDate:           eventDate.UTC(),
		DurationHours:       durationHours,
		MaxParticipants:     maxParticipants,
		CurrentParticipants: 0,
		PricePerPerson:      pricePerPerson,
		Status:              EventDraft,
		CreatedAt:           now.UTC(),
	}, nil
}
