package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sparcom/backend/internal/domain"
)

const uniqueViolation = "23505"

// translateUnique maps a unique-constraint violation to the domain
// conflict it represents, keyed by constraint name. Other errors come
// back as infrastructure failures.
func translateUnique(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return domain.ErrDBUnavailable(err)
	}
	switch pgErr.ConstraintName {
	case "users_email_key":
		return domain.ErrEmailAlreadyExists()
	case "users_username_key":
		return domain.ErrUsernameAlreadyExists()
	case "role_applications_pending_user_key":
		return domain.ErrPendingApplicationExists()
	default:
		return domain.ErrDBUnavailable(err)
	}
}
