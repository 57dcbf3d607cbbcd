package auth

import (
	"context"

	"github.com/sparcom/backend/internal/domain"
)

// ResolveSession maps a bearer token to the account behind it. Missing,
// unknown and expired tokens all come back as the same auth error.
func (s *Service) ResolveSession(ctx context.Context, token string) (domain.Account, error) {
	if token == "" {
		return domain.Account{}, domain.ErrSessionInvalid()
	}
	userID, err := s.sessions.ResolveUserID(ctx, token, s.now())
	if err != nil {
		return domain.Account{}, err
	}
	acc, err := s.users.GetAccountByID(ctx, userID)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			// Session points at a deleted user; treat it as dead.
			return domain.Account{}, domain.ErrSessionInvalid()
		}
		return domain.Account{}, err
	}
	return acc, nil
}
