package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"healthlog/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	s, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = s.Close()
	})
	return newDB(s), mock
}

var ts = time.Date(2024, 3, 1, 8, 30, 0, 0, time.UTC)

func userRow(id int64, email string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "username", "hash", "name", "age", "height", "weight", "fitness_goal", "created_at", "updated_at"}).
		AddRow(id, email, nil, "$2a$10$hash", "Ada", 36, 170.5, nil, "run", ts, ts)
}

func TestGetByEmail(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(selectUserByEmail).WithArgs("ada@example.com").WillReturnRows(userRow(1, "ada@example.com"))

	u, err := db.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, "$2a$10$hash", u.PasswordHash)
	require.Nil(t, u.Username)
	require.Equal(t, "Ada", *u.Name)
	require.Equal(t, 36, *u.Age)
	require.Nil(t, u.Weight)
}

func TestGetByIDNotFound(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(selectUserByID).WithArgs(int64(9)).WillReturnError(sql.ErrNoRows)

	_, err := db.GetByID(context.Background(), 9)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateUserDuplicate(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(insertUser).
		WithArgs("ada@example.com", "hash", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err := db.Create(context.Background(), "ada@example.com", "hash", domain.Profile{})
	require.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreateUserDriverError(t *testing.T) {
	db, mock := newMock(t)
	boom := errors.New("connection reset")
	mock.ExpectQuery(insertUser).WillReturnError(boom)

	_, err := db.Create(context.Background(), "ada@example.com", "hash", domain.Profile{})
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdateProfile(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(updateUser).
		WithArgs(int64(1), "new@example.com", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(userRow(1, "new@example.com"))

	u, err := db.UpdateProfile(context.Background(), 1, "new@example.com", domain.Profile{})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", u.Email)
}

func TestDeleteUser(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(deleteUser).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(deleteUser).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, db.Delete(context.Background(), 1))
	require.ErrorIs(t, db.Delete(context.Background(), 1), domain.ErrNotFound)
}

func TestMoodRepo(t *testing.T) {
	db, mock := newMock(t)
	repo := NewMoodRepo(db)
	ctx := context.Background()
	cols := []string{"id", "user_id", "timestamp", "mood", "notes"}

	mock.ExpectQuery(selectMoods).WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(1, 1, ts, "happy", nil).AddRow(2, 1, ts, "calm", "walk"))
	list, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Nil(t, list[0].Notes)
	require.Equal(t, "walk", *list[1].Notes)

	mock.ExpectQuery(insertMood).WithArgs(int64(1), "tired", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(3, 1, ts, "tired", nil))
	e, err := repo.Create(ctx, 1, domain.MoodInput{Mood: "tired"})
	require.NoError(t, err)
	require.Equal(t, int64(3), e.ID)

	mock.ExpectQuery(updateMood).WithArgs(int64(3), int64(2), "ok", sqlmock.AnyArg()).WillReturnError(sql.ErrNoRows)
	_, err = repo.Update(ctx, 2, 3, domain.MoodInput{Mood: "ok"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	mock.ExpectExec(deleteMood).WithArgs(int64(3), int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(ctx, 1, 3))
}

func TestWaterRepoUpdateKeepsTimestamp(t *testing.T) {
	db, mock := newMock(t)
	repo := NewWaterRepo(db)
	amount := 750.0

	mock.ExpectQuery(updateWaterEntry).WithArgs(int64(4), int64(1), 750.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "timestamp", "amount"}).AddRow(4, 1, ts, 750.0))

	e, err := repo.Update(context.Background(), 1, 4, domain.WaterInput{Amount: &amount, Timestamp: "2030-01-01T00:00:00Z"})
	require.NoError(t, err)
	require.Equal(t, ts, e.Timestamp)
	require.InDelta(t, 750.0, e.Amount, 0)
}

func TestWaterRepoCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewWaterRepo(db)
	amount := 250.0

	mock.ExpectQuery(insertWaterEntry).WithArgs(int64(1), 250.0, ts).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "timestamp", "amount"}).AddRow(1, 1, ts, 250.0))

	e, err := repo.Create(context.Background(), 1, domain.WaterInput{Amount: &amount, Timestamp: "2024-03-01T08:30:00Z"})
	require.NoError(t, err)
	require.Equal(t, int64(1), e.UserID)
}

func TestPedometerRepoFormatsDate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewPedometerRepo(db)
	steps := 8000
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertPedometerEntry).WithArgs(int64(1), day, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "steps", "distance", "created_at", "updated_at"}).
			AddRow(1, 1, day, 8000, nil, ts, ts))

	e, err := repo.Create(context.Background(), 1, domain.PedometerInput{Date: "2024-03-01T17:45:00Z", Steps: &steps})
	require.NoError(t, err)
	require.Equal(t, "2024-03-01", e.Date)
	require.Equal(t, 8000, *e.Steps)
	require.Nil(t, e.Distance)
}

func TestPedometerRepoDeleteMissing(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(deletePedometerEntry).WithArgs(int64(5), int64(1)).WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewPedometerRepo(db).Delete(context.Background(), 1, 5)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMigrate(t *testing.T) {
	s, _, err := sqlmock.New()
	require.NoError(t, err)
	defer s.Close()

	orig := gooseUp
	defer func() { gooseUp = orig }()

	var dir string
	gooseUp = func(ctx context.Context, db *sql.DB, d string) error {
		dir = d
		return nil
	}
	require.NoError(t, migrate(context.Background(), s))
	require.Equal(t, "migrations", dir)

	gooseUp = func(context.Context, *sql.DB, string) error { return errors.New("bad migration") }
	require.ErrorContains(t, migrate(context.Background(), s), "bad migration")
}

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := migrations.ReadDir("migrations")
	require.NoError(t, err)
	require.Len(t, entries, 5)
}
