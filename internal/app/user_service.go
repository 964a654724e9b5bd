package app

import (
	"context"
	"errors"

	"healthlog/internal/domain"
)

// ErrEmailTaken indicates a profile update to an email owned by another user.
var ErrEmailTaken = errors.New("email already exists")

// UserService reads, updates and deletes user profiles.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a UserService backed by the given repository.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// UpdateProfile validates and stores new profile values. The password is
// not changed here.
func (s *UserService) UpdateProfile(ctx context.Context, id int64, in domain.ProfileInput) (*domain.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	other, err := s.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil && other.ID != id:
		return nil, ErrEmailTaken
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	u, err := s.users.UpdateProfile(ctx, id, in.Email, in.Profile)
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		return nil, ErrEmailTaken
	case errors.Is(err, domain.ErrNotFound):
		return nil, ErrUserNotFound
	}
	return u, err
}

// Delete removes the user; the store cascades to every owned entry.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.users.Delete(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}
