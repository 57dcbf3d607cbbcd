package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/sparcom/backend/internal/domain"
)

type EventRepo struct {
	db *sql.DB
}

func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

const eventColumns = `
id, title, description, bathhouse_id, organizer_id, master_id, event_date,
duration_hours, max_participants, current_participants, price_per_person, status, created_at`

func scanEvent(scan func(dest ...any) error) (domain.Event, error) {
	var e domain.Event
	var status string
	err := scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.BathhouseID,
		&e.OrganizerID,
		&e.MasterID,
		&e.EventDate,
		&e.DurationHours,
		&e.MaxParticipants,
		&e.CurrentParticipants,
		&e.PricePerPerson,
		&status,
		&e.CreatedAt,
	)
	if err != nil {
		return domain.Event{}, err
	}
	e.Status = domain.EventStatus(status)
	return e, nil
}

func (r *EventRepo) Create(ctx context.Context, e *domain.Event) error {
	const q = `
INSERT INTO events (id, title, description, bathhouse_id, organizer_id, master_id, event_date,
                    duration_hours, max_participants, current_participants, price_per_person, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
`
	_, err := r.db.ExecContext(ctx, q,
		e.ID, e.Title, e.Description, e.BathhouseID, e.OrganizerID, e.MasterID, e.EventDate,
		e.DurationHours, e.MaxParticipants, e.CurrentParticipants, e.PricePerPerson, string(e.Status), e.CreatedAt,
	)
	if err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}

func (r *EventRepo) GetByID(ctx context.Context, id string) (domain.Event, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Event{}, domain.ErrMissingField("id")
	}

	const q = `SELECT ` + eventColumns + ` FROM events WHERE id = $1 LIMIT 1;`
	e, err := scanEvent(r.db.QueryRowContext(ctx, q, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Event{}, domain.ErrEventNotFound()
		}
		return domain.Event{}, domain.ErrDBUnavailable(err)
	}
	return e, nil
}

// List returns events in a single status ordered by date, soonest first.
// An empty status means no filter.
func (r *EventRepo) List(ctx context.Context, status domain.EventStatus) ([]domain.Event, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if status == "" {
		const q = `SELECT ` + eventColumns + ` FROM events ORDER BY event_date ASC;`
		rows, err = r.db.QueryContext(ctx, q)
	} else {
		const q = `SELECT ` + eventColumns + ` FROM events WHERE status = $1 ORDER BY event_date ASC;`
		rows, err = r.db.QueryContext(ctx, q, string(status))
	}
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	out := make([]domain.Event, 0, 16)
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}
