package postgres

import (
	"context"
	"database/sql"

	"github.com/sparcom/backend/internal/domain"
)

type ApplicationRepo struct {
	db *sql.DB
}

func NewApplicationRepo(db *sql.DB) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

// Create inserts a pending application. The partial unique index on
// (user_id) WHERE status = 'pending' rejects a second open application, so
// racing submissions cannot both land.
func (r *ApplicationRepo) Create(ctx context.Context, a *domain.RoleApplication) error {
	const q = `
INSERT INTO role_applications (id, user_id, requested_role, motivation, portfolio_url, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	_, err := r.db.ExecContext(ctx, q,
		a.ID, a.UserID, a.RequestedRole, a.Motivation, a.PortfolioURL, string(a.Status), a.CreatedAt,
	)
	if err != nil {
		return translateUnique(err)
	}
	return nil
}

// ListByUser returns the user's applications, newest first.
func (r *ApplicationRepo) ListByUser(ctx context.Context, userID string) ([]domain.RoleApplication, error) {
	const q = `
SELECT id, user_id, requested_role, motivation, portfolio_url, status, created_at, reviewed_at, reviewer_comment
FROM role_applications
WHERE user_id = $1
ORDER BY created_at DESC;
`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	out := make([]domain.RoleApplication, 0, 4)
	for rows.Next() {
		var a domain.RoleApplication
		var status string
		err := rows.Scan(
			&a.ID, &a.UserID, &a.RequestedRole, &a.Motivation, &a.PortfolioURL, &status,
			&a.CreatedAt, &a.ReviewedAt, &a.ReviewerComment,
		)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		a.Status = domain.ApplicationStatus(status)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

// ListPending returns all open applications with applicant identity joined
// in, oldest first so reviewers work the queue in submission order.
func (r *ApplicationRepo) ListPending(ctx context.Context) ([]domain.PendingApplication, error) {
	const q = `
SELECT a.id, a.user_id, u.username, u.email, a.requested_role, a.status, a.created_at
FROM role_applications a
JOIN users u ON a.user_id = u.id
WHERE a.status = 'pending'
ORDER BY a.created_at ASC;
`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	out := make([]domain.PendingApplication, 0, 8)
	for rows.Next() {
		var p domain.PendingApplication
		var status string
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Username, &p.Email, &p.RequestedRole, &status, &p.CreatedAt,
		)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		p.Status = domain.ApplicationStatus(status)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}
