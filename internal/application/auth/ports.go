package auth

import (
	"context"
	"time"

	"github.com/sparcom/backend/internal/domain"
)

/*
UserRepo
--------
Persistence port for accounts (user + profile).
Only describes WHAT the auth flows need, not HOW it's stored.
*/
type UserRepo interface {
	CreateAccount(ctx context.Context, u domain.User, p domain.Profile) error
	GetAccountByEmail(ctx context.Context, email string) (domain.Account, error)
	GetAccountByID(ctx context.Context, id string) (domain.Account, error)
}

/*
PasswordHasher
--------------
Abstracts the PBKDF2 scheme so tests can swap in a cheap fake.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(stored, password string) bool
}

/*
SessionStore
------------
Opaque bearer-token sessions, backed by Postgres.
Expired rows must behave as if absent.
*/
type SessionStore interface {
	Create(ctx context.Context, s domain.Session) error
	ResolveUserID(ctx context.Context, token string, now time.Time) (string, error)
	Delete(ctx context.Context, token string) error
}

// TokenSource mints fresh opaque session tokens.
type TokenSource func() (string, error)

/*
EventPublisher
--------------
Emits integration events to the broker. Downstream services (email,
analytics) consume them; auth never calls those services directly.
*/
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, evt UserRegisteredEvent) error
}

type UserRegisteredEvent struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
