package events

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo is the Postgres-backed EventsRepo.
type PGRepo struct {
	DB *sql.DB
}

func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{DB: db}
}

const eventColumns = `id, racer_id, event_name, event_date, location, notes, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, event Event) (Event, error) {
	const q = `
		INSERT INTO events (id, racer_id, event_name, event_date, location, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, q,
		event.ID, event.RacerID, event.EventName, event.EventDate,
		event.Location, event.Notes, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		return Event{}, err
	}
	return event, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, q, id)
	event, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Event{}, ErrNotFound
	}
	if err != nil {
		return Event{}, err
	}
	return event, nil
}

func (r *PGRepo) ListByRacer(ctx context.Context, racerID string) ([]Event, error) {
	const q = `SELECT ` + eventColumns + ` FROM events WHERE racer_id = $1 ORDER BY event_date ASC`
	rows, err := r.DB.QueryContext(ctx, q, racerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, event)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, event Event) (Event, error) {
	const q = `
		UPDATE events
		SET event_name = $2, event_date = $3, location = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, q,
		event.ID, event.EventName, event.EventDate, event.Location, event.Notes, event.UpdatedAt,
	)
	if err != nil {
		return Event{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Event{}, ErrNotFound
	}
	return event, nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (Event, error) {
	var event Event
	err := row.Scan(
		&event.ID, &event.RacerID, &event.EventName, &event.EventDate,
		&event.Location, &event.Notes, &event.CreatedAt, &event.UpdatedAt,
	)
	return event, err
}
