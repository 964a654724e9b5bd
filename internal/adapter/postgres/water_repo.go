package postgres

import (
	"context"

	"healthlog/internal/domain"
)

const waterColumns = `id, user_id, "timestamp", amount`

const (
	selectWaterEntries = `SELECT ` + waterColumns + ` FROM water_intake WHERE user_id = $1 ORDER BY id`
	selectWaterEntry   = `SELECT ` + waterColumns + ` FROM water_intake WHERE id = $1 AND user_id = $2`
	insertWaterEntry   = `INSERT INTO water_intake (user_id, amount, "timestamp") VALUES ($1, $2, $3) RETURNING ` + waterColumns
	updateWaterEntry   = `UPDATE water_intake SET amount = $3 WHERE id = $1 AND user_id = $2 RETURNING ` + waterColumns
	deleteWaterEntry   = `DELETE FROM water_intake WHERE id = $1 AND user_id = $2`
)

// WaterRepo stores water intake entries in the water_intake table.
type WaterRepo struct{ db *DB }

var _ domain.EntryRepository[domain.WaterIntakeEntry, domain.WaterInput] = (*WaterRepo)(nil)

// NewWaterRepo returns a water intake repository backed by db.
func NewWaterRepo(db *DB) *WaterRepo { return &WaterRepo{db: db} }

func scanWater(s scanner) (*domain.WaterIntakeEntry, error) {
	var e domain.WaterIntakeEntry
	if err := s.Scan(&e.ID, &e.UserID, &e.Timestamp, &e.Amount); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *WaterRepo) List(ctx context.Context, userID int64) ([]domain.WaterIntakeEntry, error) {
	rows, err := r.db.sql.QueryContext(ctx, selectWaterEntries, userID)
	if err != nil {
		return nil, translate("list water intake", err)
	}
	defer rows.Close()

	var out []domain.WaterIntakeEntry
	for rows.Next() {
		e, err := scanWater(rows)
		if err != nil {
			return nil, translate("list water intake", err)
		}
		out = append(out, *e)
	}
	return out, translate("list water intake", rows.Err())
}

func (r *WaterRepo) Get(ctx context.Context, userID, id int64) (*domain.WaterIntakeEntry, error) {
	e, err := scanWater(r.db.sql.QueryRowContext(ctx, selectWaterEntry, id, userID))
	if err != nil {
		return nil, translate("get water intake", err)
	}
	return e, nil
}

func (r *WaterRepo) Create(ctx context.Context, userID int64, in domain.WaterInput) (*domain.WaterIntakeEntry, error) {
	row := r.db.sql.QueryRowContext(ctx, insertWaterEntry, userID, *in.Amount, in.Time())
	e, err := scanWater(row)
	if err != nil {
		return nil, translate("create water intake", err)
	}
	return e, nil
}

// Update changes the amount only; the recorded timestamp is kept.
func (r *WaterRepo) Update(ctx context.Context, userID, id int64, in domain.WaterInput) (*domain.WaterIntakeEntry, error) {
	e, err := scanWater(r.db.sql.QueryRowContext(ctx, updateWaterEntry, id, userID, *in.Amount))
	if err != nil {
		return nil, translate("update water intake", err)
	}
	return e, nil
}

func (r *WaterRepo) Delete(ctx context.Context, userID, id int64) error {
	return r.db.execOwned(ctx, "delete water intake", deleteWaterEntry, id, userID)
}
