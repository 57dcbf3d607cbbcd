package auth

import (
	"context"
	"strings"

	"github.com/sparcom/backend/internal/domain"
)

type LoginResult struct {
	Token   string
	Account domain.Account
}

// Login checks credentials and opens a session. An unknown email and a
// wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return LoginResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return LoginResult{}, domain.ErrMissingField("password")
	}

	acc, err := s.users.GetAccountByEmail(ctx, email)
	if err != nil {
		if domain.Is(err, "user_not_found") {
			return LoginResult{}, domain.ErrInvalidCredentials()
		}
		return LoginResult{}, err
	}
	if !s.hasher.Verify(acc.User.PasswordHash, password) {
		return LoginResult{}, domain.ErrInvalidCredentials()
	}
	if !acc.User.IsActive {
		return LoginResult{}, domain.ErrAccountDeactivated()
	}

	token, err := s.newToken()
	if err != nil {
		return LoginResult{}, err
	}
	sess := domain.Session{
		Token:     token,
		UserID:    acc.User.ID,
		ExpiresAt: s.now().Add(s.sessionTTL).UTC(),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{Token: token, Account: acc}, nil
}
