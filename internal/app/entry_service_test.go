package app_test

import (
	"context"
	"errors"
	"testing"

	"healthlog/internal/app"
	"healthlog/internal/domain"
)

type mockMoodRepo struct {
	listFn   func(ctx context.Context, userID int64) ([]domain.MoodEntry, error)
	getFn    func(ctx context.Context, userID, id int64) (*domain.MoodEntry, error)
	createFn func(ctx context.Context, userID int64, in domain.MoodInput) (*domain.MoodEntry, error)
	updateFn func(ctx context.Context, userID, id int64, in domain.MoodInput) (*domain.MoodEntry, error)
	deleteFn func(ctx context.Context, userID, id int64) error
}

func (m *mockMoodRepo) List(ctx context.Context, userID int64) ([]domain.MoodEntry, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockMoodRepo) Get(ctx context.Context, userID, id int64) (*domain.MoodEntry, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockMoodRepo) Create(ctx context.Context, userID int64, in domain.MoodInput) (*domain.MoodEntry, error) {
	if m.createFn != nil {
		return m.createFn(ctx, userID, in)
	}
	return &domain.MoodEntry{ID: 1, UserID: userID, Mood: in.Mood, Notes: in.Notes}, nil
}

func (m *mockMoodRepo) Update(ctx context.Context, userID, id int64, in domain.MoodInput) (*domain.MoodEntry, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, id, in)
	}
	return nil, domain.ErrNotFound
}

func (m *mockMoodRepo) Delete(ctx context.Context, userID, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, id)
	}
	return domain.ErrNotFound
}

func newMoodService(repo *mockMoodRepo) *app.EntryService[domain.MoodEntry, domain.MoodInput] {
	return app.NewEntryService[domain.MoodEntry, domain.MoodInput](repo, "mood entry")
}

func TestEntryService_List_NeverNil(t *testing.T) {
	svc := newMoodService(&mockMoodRepo{})
	items, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestEntryService_Create_ValidatesBeforeStore(t *testing.T) {
	svc := newMoodService(&mockMoodRepo{
		createFn: func(ctx context.Context, userID int64, in domain.MoodInput) (*domain.MoodEntry, error) {
			t.Fatal("store must not be called for invalid input")
			return nil, nil
		},
	})
	_, err := svc.Create(context.Background(), 1, domain.MoodInput{})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEntryService_Create_UsesOwner(t *testing.T) {
	svc := newMoodService(&mockMoodRepo{
		createFn: func(ctx context.Context, userID int64, in domain.MoodInput) (*domain.MoodEntry, error) {
			if userID != 1 {
				t.Fatalf("expected owner 1, got %d", userID)
			}
			return &domain.MoodEntry{ID: 42, UserID: userID, Mood: in.Mood}, nil
		},
	})
	e, err := svc.Create(context.Background(), 1, domain.MoodInput{Mood: "happy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != 42 || e.Mood != "happy" {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestEntryService_NotFoundIsNamed(t *testing.T) {
	svc := newMoodService(&mockMoodRepo{})
	ctx := context.Background()

	checks := map[string]error{}
	_, checks["get"] = svc.Get(ctx, 1, 9)
	_, checks["update"] = svc.Update(ctx, 1, 9, domain.MoodInput{Mood: "sad"})
	checks["delete"] = svc.Delete(ctx, 1, 9)

	for op, err := range checks {
		var nf *domain.NotFoundError
		if !errors.As(err, &nf) || nf.Resource != "mood entry" {
			t.Errorf("%s: expected NotFoundError for mood entry, got %v", op, err)
		}
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("%s: expected ErrNotFound match", op)
		}
	}
}

func TestEntryService_PassesStoreErrors(t *testing.T) {
	boom := errors.New("connection refused")
	svc := newMoodService(&mockMoodRepo{
		deleteFn: func(ctx context.Context, userID, id int64) error { return boom },
	})
	if err := svc.Delete(context.Background(), 1, 1); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
	if svc.Resource() != "mood entry" {
		t.Fatalf("unexpected resource %q", svc.Resource())
	}
}

func TestEntryServiceLabels(t *testing.T) {
	labels := map[string]string{
		"mood entry":         app.NewMoodService(nil).Resource(),
		"water intake entry": app.NewWaterService(nil).Resource(),
		"pedometer entry":    app.NewPedometerService(nil).Resource(),
	}
	for want, got := range labels {
		if got != want {
			t.Errorf("expected resource %q, got %q", want, got)
		}
	}
}
