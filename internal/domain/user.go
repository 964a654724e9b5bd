// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"time"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// User represents an account together with its profile attributes.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Profile
}

// Profile holds the user attributes that may be changed after registration.
type Profile struct {
	Username    *string  `json:"username,omitempty"`
	Name        *string  `json:"name"`
	Age         *int     `json:"age"`
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
	FitnessGoal *string  `json:"fitness_goal"`
}

// RegisterInput is the body of a registration request.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Profile
}

// Validate checks the password length first, then that both credentials
// are present, then the optional profile values.
func (in RegisterInput) Validate() error {
	if err := Validate(MinLength("password", in.Password, MinPasswordLength, "Password must be at least 6 characters long")); err != nil {
		return err
	}
	if in.Email == "" || in.Password == "" {
		return Invalid("Request body is incomplete - Email and Password required")
	}
	return Validate(
		OptionalNumber("age", in.Age, "Age must be a positive integer"),
		OptionalNumber("height", in.Height, "Height must be a positive number"),
		OptionalNumber("weight", in.Weight, "Weight must be a positive number"),
	)
}

// ProfileInput is the body of a profile update.
type ProfileInput struct {
	Email string `json:"email"`
	Profile
}

// Validate applies the profile update schema.
func (in ProfileInput) Validate() error {
	var name string
	if in.Name != nil {
		name = *in.Name
	}
	return Validate(
		Email("email", in.Email, "Email is not valid"),
		NotBlank("name", name, "Name is required"),
		Number("age", in.Age, true, "Age must be a positive integer"),
		Number("height", in.Height, true, "Height must be a positive number"),
		Number("weight", in.Weight, true, "Weight must be a positive number"),
	)
}

// UserRepository defines the port for user persistence operations.
// Lookups return ErrNotFound for missing rows; writes return ErrDuplicate
// when the email or username is already taken.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	Create(ctx context.Context, email, passwordHash string, p Profile) (*User, error)
	UpdateProfile(ctx context.Context, id int64, email string, p Profile) (*User, error)
	Delete(ctx context.Context, id int64) error
}
