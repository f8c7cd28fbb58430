package racers

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo is the Postgres-backed RacersRepo.
type PGRepo struct {
	DB *sql.DB
}

func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{DB: db}
}

const racerColumns = `id, racer_name, height, weight, ski_types, binding_measurements, personal_records, racing_goals, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, racer Racer) (Racer, error) {
	const q = `
		INSERT INTO racers (id, racer_name, height, weight, ski_types, binding_measurements, personal_records, racing_goals, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.DB.ExecContext(ctx, q,
		racer.ID, racer.RacerName, racer.Height, racer.Weight,
		racer.SkiTypes, racer.BindingMeasurements, racer.PersonalRecords, racer.RacingGoals,
		racer.CreatedAt, racer.UpdatedAt,
	)
	if err != nil {
		return Racer{}, err
	}
	return racer, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Racer, error) {
	const q = `SELECT ` + racerColumns + ` FROM racers WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, q, id)
	racer, err := scanRacer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Racer{}, ErrNotFound
	}
	if err != nil {
		return Racer{}, err
	}
	return racer, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Racer, error) {
	const q = `SELECT ` + racerColumns + ` FROM racers ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Racer, 0)
	for rows.Next() {
		racer, err := scanRacer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, racer)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, racer Racer) (Racer, error) {
	const q = `
		UPDATE racers
		SET racer_name = $2, height = $3, weight = $4, ski_types = $5,
		    binding_measurements = $6, personal_records = $7, racing_goals = $8, updated_at = $9
		WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, q,
		racer.ID, racer.RacerName, racer.Height, racer.Weight,
		racer.SkiTypes, racer.BindingMeasurements, racer.PersonalRecords, racer.RacingGoals,
		racer.UpdatedAt,
	)
	if err != nil {
		return Racer{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return Racer{}, ErrNotFound
	}
	return racer, nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM racers WHERE id = $1`, id)
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

func scanRacer(row rowScanner) (Racer, error) {
	var racer Racer
	err := row.Scan(
		&racer.ID, &racer.RacerName, &racer.Height, &racer.Weight,
		&racer.SkiTypes, &racer.BindingMeasurements, &racer.PersonalRecords, &racer.RacingGoals,
		&racer.CreatedAt, &racer.UpdatedAt,
	)
	return racer, err
}
