package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sparcom/backend/internal/domain"
)

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Role      string
	Phone     string
	FirstName string
	LastName  string
}

type RegisterResult struct {
	UserID   string
	Username string
	Role     string
}

// Register creates a user and its profile. Uniqueness of email and
// username is settled by the database constraints, not a pre-check, so two
// concurrent registrations for the same email cannot both succeed.
func (s *Service) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if username == "" {
		return RegisterResult{}, domain.ErrMissingField("username")
	}
	if email == "" {
		return RegisterResult{}, domain.ErrMissingField("email")
	}
	if in.Password == "" {
		return RegisterResult{}, domain.ErrMissingField("password")
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = string(domain.RoleGuest)
	}
	if !domain.IsValidRole(role) {
		return RegisterResult{}, domain.ErrInvalidRole(role)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return RegisterResult{}, err
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}
	p := domain.Profile{
		UserID: u.ID,
		Role:   role,
		Phone:  strings.TrimSpace(in.Phone),
	}

	if err := s.users.CreateAccount(ctx, u, p); err != nil {
		return RegisterResult{}, err
	}

	evt := UserRegisteredEvent{UserID: u.ID, Username: u.Username, Email: u.Email, Role: role}
	if err := s.pub.PublishUserRegistered(ctx, evt); err != nil {
		// Registration is already committed; the event is best effort.
		s.lg.Warn().Err(err).Str("user_id", u.ID).Msg("publish user.registered failed")
	}

	return RegisterResult{UserID: u.ID, Username: u.Username, Role: role}, nil
}
