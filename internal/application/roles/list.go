package roles

import (
	"context"
	"strings"

	"github.com/sparcom/backend/internal/domain"
)

// MyApplications returns the user's own applications, newest first.
func (s *Service) MyApplications(ctx context.Context, userID string) ([]domain.RoleApplication, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrMissingField("user_id")
	}
	return s.apps.ListByUser(ctx, userID)
}

// PendingApplications returns the review queue, oldest first. The caller
// must already be gated to masters.
func (s *Service) PendingApplications(ctx context.Context) ([]domain.PendingApplication, error) {
	return s.apps.ListPending(ctx)
}
