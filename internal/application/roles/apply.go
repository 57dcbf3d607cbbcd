package roles

import (
	"context"

	"github.com/sparcom/backend/internal/domain"
)

type ApplyInput struct {
	RequestedRole string
	Motivation    string
	PortfolioURL  string
}

// Apply submits a role upgrade request. The single-pending-per-user rule
// is enforced by the store, so a race between two submissions yields one
// winner and one conflict.
func (s *Service) Apply(ctx context.Context, userID string, in ApplyInput) (*domain.RoleApplication, error) {
	a, err := domain.NewRoleApplication(userID, in.RequestedRole, in.Motivation, in.PortfolioURL, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.apps.Create(ctx, a); err != nil {
		return nil, err
	}

	evt := ApplicationSubmittedEvent{
		ApplicationID: a.ID,
		UserID:        a.UserID,
		RequestedRole: a.RequestedRole,
	}
	if err := s.pub.PublishApplicationSubmitted(ctx, evt); err != nil {
		s.lg.Warn().Err(err).Str("application_id", a.ID).Msg("publish application.submitted failed")
	}

	return a, nil
}
