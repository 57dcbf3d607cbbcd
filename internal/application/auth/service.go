package auth

import (
	"time"

	"github.com/rs/zerolog"
)

type Service struct {
	users    UserRepo
	hasher   PasswordHasher
	sessions SessionStore
	newToken TokenSource
	pub      EventPublisher

	sessionTTL time.Duration
	now        func() time.Time
	lg         zerolog.Logger
}

type Config struct {
	SessionTTL time.Duration
	Now        func() time.Time
}

func NewService(
	users UserRepo,
	hasher PasswordHasher,
	sessions SessionStore,
	newToken TokenSource,
	pub EventPublisher,
	lg zerolog.Logger,
	cfg Config,
) *Service {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		users:    users,
		hasher:   hasher,
		sessions: sessions,
		newToken: newToken,
		pub:      pub,

		sessionTTL: ttl,
		now:        now,
		lg:         lg,
	}
}
