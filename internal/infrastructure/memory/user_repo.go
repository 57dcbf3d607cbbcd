package memory

import (
	"context"
	"sync"

	"github.com/sparcom/backend/internal/domain"
)

// UserRepo is an in-memory account store mirroring the Postgres
// uniqueness rules. Test-only.
type UserRepo struct {
	mu         sync.RWMutex
	byID       map[string]domain.Account
	byEmail    map[string]string // email -> userID
	byUsername map[string]string // username -> userID
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:       make(map[string]domain.Account),
		byEmail:    make(map[string]string),
		byUsername: make(map[string]string),
	}
}

func (r *UserRepo) CreateAccount(ctx context.Context, u domain.User, p domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return domain.ErrEmailAlreadyExists()
	}
	if _, exists := r.byUsername[u.Username]; exists {
		return domain.ErrUsernameAlreadyExists()
	}
	if u.ID == "" {
		return domain.ErrInternal(nil)
	}

	r.byID[u.ID] = domain.Account{User: u, Profile: p}
	r.byEmail[u.Email] = u.ID
	r.byUsername[u.Username] = u.ID
	return nil
}

func (r *UserRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return domain.Account{}, domain.ErrUserNotFound()
	}
	return r.byID[id], nil
}

func (r *UserRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return domain.Account{}, domain.ErrUserNotFound()
	}
	return a, nil
}

// Deactivate flips is_active off, for exercising the deactivated path.
func (r *UserRepo) Deactivate(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[userID]
	if !ok {
		return
	}
	a.User.IsActive = false
	r.byID[userID] = a
}
