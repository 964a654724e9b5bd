package memory

import (
	"context"
	"errors"

	"healthlog/internal/domain"
)

// errNoOwner mirrors a foreign-key violation: the owning user does not exist.
var errNoOwner = errors.New("memory: owning user does not exist")

// MoodRepo stores mood entries.
type MoodRepo struct{ db *DB }

// NewMoodRepo wraps a DB as a mood entry repository.
func NewMoodRepo(db *DB) *MoodRepo { return &MoodRepo{db: db} }

func (r *MoodRepo) List(ctx context.Context, userID int64) ([]domain.MoodEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.moods.list(userID), nil
}

func (r *MoodRepo) Get(ctx context.Context, userID, id int64) (*domain.MoodEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.moods.get(userID, id)
}

func (r *MoodRepo) Create(ctx context.Context, userID int64, in domain.MoodInput) (*domain.MoodEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if !r.db.userExists(userID) {
		return nil, errNoOwner
	}
	ts := r.db.now().UTC()
	return r.db.moods.insert(userID, func(id int64) domain.MoodEntry {
		return domain.MoodEntry{ID: id, UserID: userID, Timestamp: ts, Mood: in.Mood, Notes: in.Notes}
	}), nil
}

func (r *MoodRepo) Update(ctx context.Context, userID, id int64, in domain.MoodInput) (*domain.MoodEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.moods.update(userID, id, func(e *domain.MoodEntry) {
		e.Mood = in.Mood
		e.Notes = in.Notes
	})
}

func (r *MoodRepo) Delete(ctx context.Context, userID, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.moods.remove(userID, id)
}

// WaterRepo stores water intake entries.
type WaterRepo struct{ db *DB }

// NewWaterRepo wraps a DB as a water intake repository.
func NewWaterRepo(db *DB) *WaterRepo { return &WaterRepo{db: db} }

func (r *WaterRepo) List(ctx context.Context, userID int64) ([]domain.WaterIntakeEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.water.list(userID), nil
}

func (r *WaterRepo) Get(ctx context.Context, userID, id int64) (*domain.WaterIntakeEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.water.get(userID, id)
}

func (r *WaterRepo) Create(ctx context.Context, userID int64, in domain.WaterInput) (*domain.WaterIntakeEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if !r.db.userExists(userID) {
		return nil, errNoOwner
	}
	ts := in.Time().UTC()
	return r.db.water.insert(userID, func(id int64) domain.WaterIntakeEntry {
		return domain.WaterIntakeEntry{ID: id, UserID: userID, Timestamp: ts, Amount: *in.Amount}
	}), nil
}

// Update changes the amount only.
func (r *WaterRepo) Update(ctx context.Context, userID, id int64, in domain.WaterInput) (*domain.WaterIntakeEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.water.update(userID, id, func(e *domain.WaterIntakeEntry) {
		e.Amount = *in.Amount
	})
}

func (r *WaterRepo) Delete(ctx context.Context, userID, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.water.remove(userID, id)
}

// PedometerRepo stores pedometer entries.
type PedometerRepo struct{ db *DB }

// NewPedometerRepo wraps a DB as a pedometer entry repository.
func NewPedometerRepo(db *DB) *PedometerRepo { return &PedometerRepo{db: db} }

func (r *PedometerRepo) List(ctx context.Context, userID int64) ([]domain.PedometerEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.pedometer.list(userID), nil
}

func (r *PedometerRepo) Get(ctx context.Context, userID, id int64) (*domain.PedometerEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.pedometer.get(userID, id)
}

func (r *PedometerRepo) Create(ctx context.Context, userID int64, in domain.PedometerInput) (*domain.PedometerEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if !r.db.userExists(userID) {
		return nil, errNoOwner
	}
	now := r.db.now().UTC()
	return r.db.pedometer.insert(userID, func(id int64) domain.PedometerEntry {
		return domain.PedometerEntry{
			ID:        id,
			UserID:    userID,
			Date:      in.Day().Format(domain.DateLayout),
			Steps:     in.Steps,
			Distance:  in.Distance,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}), nil
}

func (r *PedometerRepo) Update(ctx context.Context, userID, id int64, in domain.PedometerInput) (*domain.PedometerEntry, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	now := r.db.now().UTC()
	return r.db.pedometer.update(userID, id, func(e *domain.PedometerEntry) {
		e.Date = in.Day().Format(domain.DateLayout)
		e.Steps = in.Steps
		e.Distance = in.Distance
		e.UpdatedAt = now
	})
}

func (r *PedometerRepo) Delete(ctx context.Context, userID, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return r.db.pedometer.remove(userID, id)
}
