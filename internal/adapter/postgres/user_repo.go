package postgres

import (
	"context"

	"healthlog/internal/domain"
)

const userColumns = `id, email, username, hash, name, age, height, weight, fitness_goal, created_at, updated_at`

const (
	selectUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	selectUserByID    = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	insertUser        = `INSERT INTO users (email, hash, username, name, age, height, weight, fitness_goal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + userColumns
	updateUser = `UPDATE users
		SET email = $2, username = COALESCE($3, username), name = $4, age = $5, height = $6,
			weight = $7, fitness_goal = $8, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns
	deleteUser = `DELETE FROM users WHERE id = $1`
)

var _ domain.UserRepository = (*DB)(nil)

func scanUser(s scanner) (*domain.User, error) {
	var u domain.User
	err := s.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Name, &u.Age,
		&u.Height, &u.Weight, &u.FitnessGoal, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by email address.
func (d *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(d.sql.QueryRowContext(ctx, selectUserByEmail, email))
	if err != nil {
		return nil, translate("get user by email", err)
	}
	return u, nil
}

// GetByID looks up a user by id.
func (d *DB) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(d.sql.QueryRowContext(ctx, selectUserByID, id))
	if err != nil {
		return nil, translate("get user", err)
	}
	return u, nil
}

// Create inserts a new user. A unique violation on email or username is
// reported as domain.ErrDuplicate.
func (d *DB) Create(ctx context.Context, email, passwordHash string, p domain.Profile) (*domain.User, error) {
	row := d.sql.QueryRowContext(ctx, insertUser, email, passwordHash,
		p.Username, p.Name, p.Age, p.Height, p.Weight, p.FitnessGoal)
	u, err := scanUser(row)
	if err != nil {
		return nil, translate("create user", err)
	}
	return u, nil
}

// UpdateProfile replaces the email and profile attributes of a user. A nil
// username keeps the current one.
func (d *DB) UpdateProfile(ctx context.Context, id int64, email string, p domain.Profile) (*domain.User, error) {
	row := d.sql.QueryRowContext(ctx, updateUser, id, email,
		p.Username, p.Name, p.Age, p.Height, p.Weight, p.FitnessGoal)
	u, err := scanUser(row)
	if err != nil {
		return nil, translate("update user", err)
	}
	return u, nil
}

// Delete removes a user. Owned entries go with it through ON DELETE CASCADE.
func (d *DB) Delete(ctx context.Context, id int64) error {
	res, err := d.sql.ExecContext(ctx, deleteUser, id)
	if err != nil {
		return translate("delete user", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return translate("delete user", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
