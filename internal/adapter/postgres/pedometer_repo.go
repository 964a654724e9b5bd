package postgres

import (
	"context"
	"time"

	"healthlog/internal/domain"
)

const pedometerColumns = `id, user_id, date, steps, distance, created_at, updated_at`

const (
	selectPedometerEntries = `SELECT ` + pedometerColumns + ` FROM pedometer_entries WHERE user_id = $1 ORDER BY id`
	selectPedometerEntry   = `SELECT ` + pedometerColumns + ` FROM pedometer_entries WHERE id = $1 AND user_id = $2`
	insertPedometerEntry   = `INSERT INTO pedometer_entries (user_id, date, steps, distance) VALUES ($1, $2, $3, $4) RETURNING ` + pedometerColumns
	updatePedometerEntry   = `UPDATE pedometer_entries SET date = $3, steps = $4, distance = $5, updated_at = now()
		WHERE id = $1 AND user_id = $2 RETURNING ` + pedometerColumns
	deletePedometerEntry = `DELETE FROM pedometer_entries WHERE id = $1 AND user_id = $2`
)

// PedometerRepo stores daily step counts in the pedometer_entries table.
type PedometerRepo struct{ db *DB }

var _ domain.EntryRepository[domain.PedometerEntry, domain.PedometerInput] = (*PedometerRepo)(nil)

// NewPedometerRepo returns a pedometer repository backed by db.
func NewPedometerRepo(db *DB) *PedometerRepo { return &PedometerRepo{db: db} }

func scanPedometer(s scanner) (*domain.PedometerEntry, error) {
	var (
		e    domain.PedometerEntry
		date time.Time
	)
	if err := s.Scan(&e.ID, &e.UserID, &date, &e.Steps, &e.Distance, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Date = date.Format(domain.DateLayout)
	return &e, nil
}

func (r *PedometerRepo) List(ctx context.Context, userID int64) ([]domain.PedometerEntry, error) {
	rows, err := r.db.sql.QueryContext(ctx, selectPedometerEntries, userID)
	if err != nil {
		return nil, translate("list pedometer entries", err)
	}
	defer rows.Close()

	var out []domain.PedometerEntry
	for rows.Next() {
		e, err := scanPedometer(rows)
		if err != nil {
			return nil, translate("list pedometer entries", err)
		}
		out = append(out, *e)
	}
	return out, translate("list pedometer entries", rows.Err())
}

func (r *PedometerRepo) Get(ctx context.Context, userID, id int64) (*domain.PedometerEntry, error) {
	e, err := scanPedometer(r.db.sql.QueryRowContext(ctx, selectPedometerEntry, id, userID))
	if err != nil {
		return nil, translate("get pedometer entry", err)
	}
	return e, nil
}

func (r *PedometerRepo) Create(ctx context.Context, userID int64, in domain.PedometerInput) (*domain.PedometerEntry, error) {
	row := r.db.sql.QueryRowContext(ctx, insertPedometerEntry, userID, in.Day(), in.Steps, in.Distance)
	e, err := scanPedometer(row)
	if err != nil {
		return nil, translate("create pedometer entry", err)
	}
	return e, nil
}

func (r *PedometerRepo) Update(ctx context.Context, userID, id int64, in domain.PedometerInput) (*domain.PedometerEntry, error) {
	row := r.db.sql.QueryRowContext(ctx, updatePedometerEntry, id, userID, in.Day(), in.Steps, in.Distance)
	e, err := scanPedometer(row)
	if err != nil {
		return nil, translate("update pedometer entry", err)
	}
	return e, nil
}

func (r *PedometerRepo) Delete(ctx context.Context, userID, id int64) error {
	return r.db.execOwned(ctx, "delete pedometer entry", deletePedometerEntry, id, userID)
}
