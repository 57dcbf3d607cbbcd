package memory

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sparcom/backend/internal/application/auth"
	"github.com/sparcom/backend/internal/application/events"
	"github.com/sparcom/backend/internal/application/roles"
)

// NoopPublisher logs events instead of sending them. Used in dev when no
// broker is configured, and in tests to assert what was published.
type NoopPublisher struct {
	lg zerolog.Logger

	mu        sync.Mutex
	Published []string // routing keys, in order
}

func NewNoopPublisher(lg zerolog.Logger) *NoopPublisher {
	return &NoopPublisher{lg: lg}
}

func (p *NoopPublisher) record(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Published = append(p.Published, key)
}

func (p *NoopPublisher) PublishUserRegistered(ctx context.Context, evt auth.UserRegisteredEvent) error {
	p.record("auth.user.registered")
	p.lg.Debug().Str("user_id", evt.UserID).Msg("noop publish: user registered")
	return nil
}

func (p *NoopPublisher) PublishEventCreated(ctx context.Context, evt events.EventCreatedEvent) error {
	p.record("events.event.created")
	p.lg.Debug().Str("event_id", evt.EventID).Msg("noop publish: event created")
	return nil
}

func (p *NoopPublisher) PublishApplicationSubmitted(ctx context.Context, evt roles.ApplicationSubmittedEvent) error {
	p.record("roles.application.submitted")
	p.lg.Debug().Str("application_id", evt.ApplicationID).Msg("noop publish: application submitted")
	return nil
}
