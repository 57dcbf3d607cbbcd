package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sparcom/backend/internal/domain"
)

// ApplicationRepo is an in-memory application store that enforces the
// one-pending-per-user rule like the Postgres partial index. Test-only.
type ApplicationRepo struct {
	mu    sync.RWMutex
	apps  map[string]domain.RoleApplication
	users map[string]domain.Account // for the pending-list join
}

func NewApplicationRepo() *ApplicationRepo {
	return &ApplicationRepo{
		apps:  make(map[string]domain.RoleApplication),
		users: make(map[string]domain.Account),
	}
}

// SeedUser registers identity data for the pending-list join.
func (r *ApplicationRepo) SeedUser(a domain.Account) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[a.User.ID] = a
}

func (r *ApplicationRepo) Create(ctx context.Context, a *domain.RoleApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.apps {
		if existing.UserID == a.UserID && existing.Status == domain.ApplicationPending {
			return domain.ErrPendingApplicationExists()
		}
	}
	r.apps[a.ID] = *a
	return nil
}

func (r *ApplicationRepo) ListByUser(ctx context.Context, userID string) ([]domain.RoleApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.RoleApplication, 0, 4)
	for _, a := range r.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ApplicationRepo) ListPending(ctx context.Context) ([]domain.PendingApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.PendingApplication, 0, 4)
	for _, a := range r.apps {
		if a.Status != domain.ApplicationPending {
			continue
		}
		p := domain.PendingApplication{
			ID:            a.ID,
			UserID:        a.UserID,
			RequestedRole: a.RequestedRole,
			Status:        a.Status,
			CreatedAt:     a.CreatedAt,
		}
		if acc, ok := r.users[a.UserID]; ok {
			p.Username = acc.User.Username
			p.Email = acc.User.Email
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// SetStatus transitions an application, used to model review outcomes.
func (r *ApplicationRepo) SetStatus(id string, status domain.ApplicationStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.apps[id]
	if !ok {
		return
	}
	a.Status = status
	r.apps[id] = a
}
