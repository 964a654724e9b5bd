package app

import (
	"context"
	"errors"

	"healthlog/internal/domain"
)

// EntryService implements list/get/create/update/delete for one kind of
// user-owned entry. Every call is scoped to userID.
type EntryService[E any, In domain.Input] struct {
	repo     domain.EntryRepository[E, In]
	resource string
}

// NewEntryService creates an EntryService. resource names the entry kind in
// not-found errors, e.g. "mood entry".
func NewEntryService[E any, In domain.Input](repo domain.EntryRepository[E, In], resource string) *EntryService[E, In] {
	return &EntryService[E, In]{repo: repo, resource: resource}
}

// Resource returns the entry kind name.
func (s *EntryService[E, In]) Resource() string {
	return s.resource
}

// List returns all entries owned by userID.
func (s *EntryService[E, In]) List(ctx context.Context, userID int64) ([]E, error) {
	items, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []E{}
	}
	return items, nil
}

// Get returns one entry owned by userID.
func (s *EntryService[E, In]) Get(ctx context.Context, userID, id int64) (*E, error) {
	e, err := s.repo.Get(ctx, userID, id)
	return e, s.translate(err)
}

// Create validates the input and stores a new entry for userID.
func (s *EntryService[E, In]) Create(ctx context.Context, userID int64, in In) (*E, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, userID, in)
}

// Update validates the input and changes the entry matching both id and
// userID.
func (s *EntryService[E, In]) Update(ctx context.Context, userID, id int64, in In) (*E, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	e, err := s.repo.Update(ctx, userID, id, in)
	return e, s.translate(err)
}

// Delete removes the entry matching both id and userID.
func (s *EntryService[E, In]) Delete(ctx context.Context, userID, id int64) error {
	return s.translate(s.repo.Delete(ctx, userID, id))
}

func (s *EntryService[E, In]) translate(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.NotFoundError{Resource: s.resource}
	}
	return err
}

type (
	// MoodService manages mood entries.
	MoodService = EntryService[domain.MoodEntry, domain.MoodInput]
	// WaterService manages water intake entries.
	WaterService = EntryService[domain.WaterIntakeEntry, domain.WaterInput]
	// PedometerService manages daily step counts.
	PedometerService = EntryService[domain.PedometerEntry, domain.PedometerInput]
)

func NewMoodService(repo domain.EntryRepository[domain.MoodEntry, domain.MoodInput]) *MoodService {
	return NewEntryService(repo, "mood entry")
}

func NewWaterService(repo domain.EntryRepository[domain.WaterIntakeEntry, domain.WaterInput]) *WaterService {
	return NewEntryService(repo, "water intake entry")
}

func NewPedometerService(repo domain.EntryRepository[domain.PedometerEntry, domain.PedometerInput]) *PedometerService {
	return NewEntryService(repo, "pedometer entry")
}
