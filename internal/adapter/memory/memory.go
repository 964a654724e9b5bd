// Package memory implements an in-memory repository for development and testing.
// It emulates the store's unique and cascade-delete constraints.
package memory

import (
	"sort"
	"sync"
	"time"

	"healthlog/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu    sync.Mutex
	users map[int64]*domain.User

	moods     table[domain.MoodEntry]
	water     table[domain.WaterIntakeEntry]
	pedometer table[domain.PedometerEntry]

	userIDCounter int64
	now           func() time.Time
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		users:     make(map[int64]*domain.User),
		moods:     newTable(cloneMood),
		water:     newTable(func(e domain.WaterIntakeEntry) domain.WaterIntakeEntry { return e }),
		pedometer: newTable(clonePedometer),
		now:       time.Now,
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.EntryRepository[domain.MoodEntry, domain.MoodInput] = (*MoodRepo)(nil)
var _ domain.EntryRepository[domain.WaterIntakeEntry, domain.WaterInput] = (*WaterRepo)(nil)
var _ domain.EntryRepository[domain.PedometerEntry, domain.PedometerInput] = (*PedometerRepo)(nil)

// row is a stored entry together with its owner.
type row[E any] struct {
	userID int64
	entry  E
}

// table holds one kind of user-owned entry keyed by id. Callers hold DB.mu.
// Entries cross the table boundary only as clones so callers never share
// pointer fields with stored rows.
type table[E any] struct {
	idCounter int64
	rows      map[int64]*row[E]
	clone     func(E) E
}

func newTable[E any](clone func(E) E) table[E] {
	return table[E]{rows: make(map[int64]*row[E]), clone: clone}
}

func (t *table[E]) list(userID int64) []E {
	ids := make([]int64, 0, len(t.rows))
	for id, r := range t.rows {
		if r.userID == userID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]E, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.clone(t.rows[id].entry))
	}
	return out
}

func (t *table[E]) get(userID, id int64) (*E, error) {
	r, ok := t.rows[id]
	if !ok || r.userID != userID {
		return nil, domain.ErrNotFound
	}
	e := t.clone(r.entry)
	return &e, nil
}

func (t *table[E]) insert(userID int64, build func(id int64) E) *E {
	t.idCounter++
	r := &row[E]{userID: userID, entry: t.clone(build(t.idCounter))}
	t.rows[t.idCounter] = r
	e := t.clone(r.entry)
	return &e
}

func (t *table[E]) update(userID, id int64, apply func(e *E)) (*E, error) {
	r, ok := t.rows[id]
	if !ok || r.userID != userID {
		return nil, domain.ErrNotFound
	}
	apply(&r.entry)
	r.entry = t.clone(r.entry)
	e := t.clone(r.entry)
	return &e, nil
}

func (t *table[E]) remove(userID, id int64) error {
	r, ok := t.rows[id]
	if !ok || r.userID != userID {
		return domain.ErrNotFound
	}
	delete(t.rows, id)
	return nil
}

func (t *table[E]) removeOwner(userID int64) {
	for id, r := range t.rows {
		if r.userID == userID {
			delete(t.rows, id)
		}
	}
}

func (db *DB) userExists(id int64) bool {
	_, ok := db.users[id]
	return ok
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneProfile(p domain.Profile) domain.Profile {
	return domain.Profile{
		Username:    clonePtr(p.Username),
		Name:        clonePtr(p.Name),
		Age:         clonePtr(p.Age),
		Height:      clonePtr(p.Height),
		Weight:      clonePtr(p.Weight),
		FitnessGoal: clonePtr(p.FitnessGoal),
	}
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	c.Profile = cloneProfile(u.Profile)
	return &c
}

func cloneMood(e domain.MoodEntry) domain.MoodEntry {
	e.Notes = clonePtr(e.Notes)
	return e
}

func clonePedometer(e domain.PedometerEntry) domain.PedometerEntry {
	e.Steps = clonePtr(e.Steps)
	e.Distance = clonePtr(e.Distance)
	return e
}
