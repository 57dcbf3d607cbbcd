package auth

import (
	"context"

	"github.com/sparcom/backend/internal/domain"
)

// Logout deletes the session. Unknown tokens succeed silently so a retry
// after a flaky response still lands on 200.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return domain.ErrTokenMissing()
	}
	return s.sessions.Delete(ctx, token)
}
