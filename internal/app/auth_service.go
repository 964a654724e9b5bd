// Package app holds the application services and business logic.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"healthlog/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// passwordCost is the bcrypt work factor for stored passwords.
const passwordCost = 10

var (
	// ErrUserNotFound indicates that no user has the given id or email.
	ErrUserNotFound = errors.New("user not found")
	// ErrIncorrectPassword indicates a password that does not match the stored hash.
	ErrIncorrectPassword = errors.New("incorrect password")
	// ErrUserExists indicates a registration for an email already in use.
	ErrUserExists = errors.New("user already exists")
)

var errIncomplete = domain.Invalid("Request body is incomplete - Email and Password required")

// AuthService registers users, checks credentials and issues and verifies
// bearer tokens.
type AuthService struct {
	users  domain.UserRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewAuthService creates an AuthService signing tokens with secret that
// expire after ttl.
func NewAuthService(users domain.UserRepository, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{
		users:  users,
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Register validates the input, hashes the password and creates the user.
// The email lookup is only a fast path; a unique violation from the insert
// is reported the same way.
func (s *AuthService) Register(ctx context.Context, in domain.RegisterInput) (*domain.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	switch {
	case err == nil && existing != nil:
		return nil, ErrUserExists
	case err != nil && !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), passwordCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, in.Email, string(hash), in.Profile)
	if errors.Is(err, domain.ErrDuplicate) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks the credentials and issues a token carrying the user's id
// and email.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Token, error) {
	if email == "" || password == "" {
		return nil, errIncomplete
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrIncorrectPassword
	}
	return s.issueToken(user.ID, user.Email)
}

// LoginWithEmail issues a token for an email already verified by an
// identity provider, provisioning the user on first sight. Provisioned
// users have no password hash, so password login never succeeds for them.
func (s *AuthService) LoginWithEmail(ctx context.Context, email string) (*Token, error) {
	if email == "" {
		return nil, errIncomplete
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		user, err = s.users.Create(ctx, email, "", domain.Profile{})
		if errors.Is(err, domain.ErrDuplicate) {
			// Lost a provisioning race; the winner's row is there now.
			user, err = s.users.GetByEmail(ctx, email)
		}
	}
	if err != nil {
		return nil, err
	}
	return s.issueToken(user.ID, user.Email)
}
