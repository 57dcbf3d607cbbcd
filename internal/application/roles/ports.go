package roles

import (
	"context"

	"github.com/sparcom/backend/internal/domain"
)

// ApplicationRepo is the persistence port for role applications. Create
// must reject a second pending application for the same user.
type ApplicationRepo interface {
	Create(ctx context.Context, a *domain.RoleApplication) error
	ListByUser(ctx context.Context, userID string) ([]domain.RoleApplication, error)
	ListPending(ctx context.Context) ([]domain.PendingApplication, error)
}

type EventPublisher interface {
	PublishApplicationSubmitted(ctx context.Context, evt ApplicationSubmittedEvent) error
}

type ApplicationSubmittedEvent struct {
	ApplicationID string `json:"application_id"`
	UserID        string `json:"user_id"`
	RequestedRole string `json:"requested_role"`
}
