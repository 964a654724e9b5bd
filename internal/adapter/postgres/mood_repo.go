package postgres

import (
	"context"

	"healthlog/internal/domain"
)

const moodColumns = `id, user_id, "timestamp", mood, notes`

const (
	selectMoods = `SELECT ` + moodColumns + ` FROM mood_entries WHERE user_id = $1 ORDER BY id`
	selectMood  = `SELECT ` + moodColumns + ` FROM mood_entries WHERE id = $1 AND user_id = $2`
	insertMood  = `INSERT INTO mood_entries (user_id, mood, notes) VALUES ($1, $2, $3) RETURNING ` + moodColumns
	updateMood  = `UPDATE mood_entries SET mood = $3, notes = $4 WHERE id = $1 AND user_id = $2 RETURNING ` + moodColumns
	deleteMood  = `DELETE FROM mood_entries WHERE id = $1 AND user_id = $2`
)

// MoodRepo stores mood entries in the mood_entries table.
type MoodRepo struct{ db *DB }

var _ domain.EntryRepository[domain.MoodEntry, domain.MoodInput] = (*MoodRepo)(nil)

// NewMoodRepo returns a mood entry repository backed by db.
func NewMoodRepo(db *DB) *MoodRepo { return &MoodRepo{db: db} }

func scanMood(s scanner) (*domain.MoodEntry, error) {
	var e domain.MoodEntry
	if err := s.Scan(&e.ID, &e.UserID, &e.Timestamp, &e.Mood, &e.Notes); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *MoodRepo) List(ctx context.Context, userID int64) ([]domain.MoodEntry, error) {
	rows, err := r.db.sql.QueryContext(ctx, selectMoods, userID)
	if err != nil {
		return nil, translate("list mood entries", err)
	}
	defer rows.Close()

	var out []domain.MoodEntry
	for rows.Next() {
		e, err := scanMood(rows)
		if err != nil {
			return nil, translate("list mood entries", err)
		}
		out = append(out, *e)
	}
	return out, translate("list mood entries", rows.Err())
}

func (r *MoodRepo) Get(ctx context.Context, userID, id int64) (*domain.MoodEntry, error) {
	e, err := scanMood(r.db.sql.QueryRowContext(ctx, selectMood, id, userID))
	if err != nil {
		return nil, translate("get mood entry", err)
	}
	return e, nil
}

func (r *MoodRepo) Create(ctx context.Context, userID int64, in domain.MoodInput) (*domain.MoodEntry, error) {
	e, err := scanMood(r.db.sql.QueryRowContext(ctx, insertMood, userID, in.Mood, in.Notes))
	if err != nil {
		return nil, translate("create mood entry", err)
	}
	return e, nil
}

func (r *MoodRepo) Update(ctx context.Context, userID, id int64, in domain.MoodInput) (*domain.MoodEntry, error) {
	e, err := scanMood(r.db.sql.QueryRowContext(ctx, updateMood, id, userID, in.Mood, in.Notes))
	if err != nil {
		return nil, translate("update mood entry", err)
	}
	return e, nil
}

func (r *MoodRepo) Delete(ctx context.Context, userID, id int64) error {
	return r.db.execOwned(ctx, "delete mood entry", deleteMood, id, userID)
}
