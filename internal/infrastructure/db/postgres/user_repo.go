package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sparcom/backend/internal/domain"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ---------- helpers ----------

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

const accountColumns = `
u.id, u.username, u.email, u.password_hash, u.first_name, u.last_name, u.is_active, u.created_at,
COALESCE(p.role, 'guest'), COALESCE(p.phone, ''), COALESCE(p.bio, ''), COALESCE(p.is_verified, FALSE)`

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(
		&a.User.ID,
		&a.User.Username,
		&a.User.Email,
		&a.User.PasswordHash,
		&a.User.FirstName,
		&a.User.LastName,
		&a.User.IsActive,
		&a.User.CreatedAt,
		&a.Profile.Role,
		&a.Profile.Phone,
		&a.Profile.Bio,
		&a.Profile.IsVerified,
	)
	if err != nil {
		return domain.Account{}, err
	}
	a.Profile.UserID = a.User.ID
	return a, nil
}

// ---------- auth.UserRepo ----------

// CreateAccount inserts the user and its profile in one transaction.
// Duplicate email or username surfaces as the matching domain conflict via
// the unique constraints, so concurrent registrations cannot both win.
func (r *UserRepo) CreateAccount(ctx context.Context, u domain.User, p domain.Profile) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	const insUser = `
INSERT INTO users (id, username, email, password_hash, first_name, last_name, is_active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`
	_, err = tx.ExecContext(ctx, insUser,
		u.ID, u.Username, normalizeEmail(u.Email), u.PasswordHash, u.FirstName, u.LastName, u.IsActive, u.CreatedAt,
	)
	if err != nil {
		_ = tx.Rollback()
		return translateUnique(err)
	}

	const insProfile = `
INSERT INTO user_profiles (user_id, role, phone, bio, is_verified)
VALUES ($1, $2, $3, $4, $5);
`
	_, err = tx.ExecContext(ctx, insProfile,
		u.ID, p.Role, p.Phone, p.Bio, p.IsVerified,
	)
	if err != nil {
		_ = tx.Rollback()
		return domain.ErrDBUnavailable(err)
	}

	if err := tx.Commit(); err != nil {
		return domain.ErrDBUnavailable(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

func (r *UserRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domain.Account{}, domain.ErrMissingField("email")
	}

	const q = `
SELECT ` + accountColumns + `
FROM users u
LEFT JOIN user_profiles p ON u.id = p.user_id
WHERE u.email = $1
LIMIT 1;
`
	a, err := scanAccount(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrUserNotFound()
		}
		return domain.Account{}, domain.ErrDBUnavailable(err)
	}
	return a, nil
}

func (r *UserRepo) GetAccountByID(ctx context.Context, id string) (domain.Account, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Account{}, domain.ErrMissingField("id")
	}

	const q = `
SELECT ` + accountColumns + `
FROM users u
LEFT JOIN user_profiles p ON u.id = p.user_id
WHERE u.id = $1
LIMIT 1;
`
	a, err := scanAccount(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrUserNotFound()
		}
		return domain.Account{}, domain.ErrDBUnavailable(err)
	}
	return a, nil
}
