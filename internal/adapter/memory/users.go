package memory

import (
	"context"

	"healthlog/internal/domain"
)

// GetByEmail retrieves a user by email.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrNotFound
}

// GetByID retrieves a user by ID.
func (db *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	u, ok := db.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneUser(u), nil
}

// Create creates a new user, rejecting a taken email or username.
func (db *DB) Create(ctx context.Context, email, passwordHash string, p domain.Profile) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.conflicts(0, email, p.Username) {
		return nil, domain.ErrDuplicate
	}

	db.userIDCounter++
	now := db.now().UTC()
	u := &domain.User{
		ID:           db.userIDCounter,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
		Profile:      cloneProfile(p),
	}
	db.users[u.ID] = u
	return cloneUser(u), nil
}

// UpdateProfile replaces the email and profile attributes of a user. A nil
// username keeps the current one.
func (db *DB) UpdateProfile(ctx context.Context, id int64, email string, p domain.Profile) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	u, ok := db.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Username == nil {
		p.Username = u.Username
	}
	if db.conflicts(id, email, p.Username) {
		return nil, domain.ErrDuplicate
	}
	u.Email = email
	u.Profile = cloneProfile(p)
	u.UpdatedAt = db.now().UTC()
	return cloneUser(u), nil
}

// Delete removes a user and, like ON DELETE CASCADE, every entry it owns.
func (db *DB) Delete(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(db.users, id)
	db.moods.removeOwner(id)
	db.water.removeOwner(id)
	db.pedometer.removeOwner(id)
	return nil
}

// conflicts reports whether a user other than self holds email or username.
func (db *DB) conflicts(self int64, email string, username *string) bool {
	for _, u := range db.users {
		if u.ID == self {
			continue
		}
		if u.Email == email {
			return true
		}
		if username != nil && u.Username != nil && *u.Username == *username {
			return true
		}
	}
	return false
}
