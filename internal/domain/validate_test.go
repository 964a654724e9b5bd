package domain_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"healthlog/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func ptr[T any](v T) *T { return &v }

func fieldsOf(t *testing.T, err error) []domain.FieldError {
	t.Helper()
	if err == nil {
		return nil
	}
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T: %v", err, err)
	}
	return ve.Fields
}

func TestRegisterInput_Validate(t *testing.T) {
	tests := []struct {
		name       string
		in         domain.RegisterInput
		wantFields []domain.FieldError
		wantMsg    string
	}{
		{
			name: "valid",
			in:   domain.RegisterInput{Email: "a@x.com", Password: "secret1"},
		},
		{
			name:       "short password",
			in:         domain.RegisterInput{Email: "a@x.com", Password: "abc"},
			wantFields: []domain.FieldError{{Field: "password", Message: "Password must be at least 6 characters long"}},
		},
		{
			name:    "missing email",
			in:      domain.RegisterInput{Password: "secret1"},
			wantMsg: "Request body is incomplete - Email and Password required",
		},
		{
			name: "negative age",
			in: domain.RegisterInput{Email: "a@x.com", Password: "secret1",
				Profile: domain.Profile{Age: ptr(-1)}},
			wantFields: []domain.FieldError{{Field: "age", Message: "Age must be a positive integer"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantFields == nil && tc.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if tc.wantMsg != "" {
				if err.Error() != tc.wantMsg {
					t.Fatalf("message = %q; want %q", err.Error(), tc.wantMsg)
				}
				return
			}
			if diff := cmp.Diff(tc.wantFields, fieldsOf(t, err)); diff != "" {
				t.Fatalf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProfileInput_Validate_ReportsEveryField(t *testing.T) {
	in := domain.ProfileInput{Email: "not-an-email"}
	want := []domain.FieldError{
		{Field: "email", Message: "Email is not valid"},
		{Field: "name", Message: "Name is required"},
		{Field: "age", Message: "Age must be a positive integer"},
		{Field: "height", Message: "Height must be a positive number"},
		{Field: "weight", Message: "Weight must be a positive number"},
	}
	if diff := cmp.Diff(want, fieldsOf(t, in.Validate())); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	ok := domain.ProfileInput{
		Email: "a@x.com",
		Profile: domain.Profile{
			Name: ptr("Ann"), Age: ptr(30), Height: ptr(170.0), Weight: ptr(65.5),
		},
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestEntryInputs_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      domain.Input
		wantErr bool
	}{
		{"mood ok", domain.MoodInput{Mood: "happy"}, false},
		{"mood blank", domain.MoodInput{Mood: "  "}, true},
		{"water ok", domain.WaterInput{Amount: ptr(0.5), Timestamp: "2024-05-13T10:00:00Z"}, false},
		{"water missing amount", domain.WaterInput{Timestamp: "2024-05-13"}, true},
		{"water negative amount", domain.WaterInput{Amount: ptr(-1.0), Timestamp: "2024-05-13"}, true},
		{"water bad timestamp", domain.WaterInput{Amount: ptr(1.0), Timestamp: "yesterday"}, true},
		{"pedometer ok", domain.PedometerInput{Date: "2024-05-14", Steps: ptr(9000), Distance: ptr(6.2)}, false},
		{"pedometer date only required", domain.PedometerInput{Date: "2024-05-14"}, false},
		{"pedometer missing date", domain.PedometerInput{Steps: ptr(10)}, true},
		{"pedometer negative steps", domain.PedometerInput{Date: "2024-05-14", Steps: ptr(-3)}, true},
		{"pedometer steps at column max", domain.PedometerInput{Date: "2024-05-14", Steps: ptr(math.MaxInt32)}, false},
		{"pedometer steps beyond column", domain.PedometerInput{Date: "2024-05-14", Steps: ptr(math.MaxInt32 + 1)}, true},
		{"register age beyond column", domain.RegisterInput{Email: "a@x.io", Password: "secret1", Profile: domain.Profile{Age: ptr(math.MaxInt32 + 1)}}, true},
		{"profile age beyond column", domain.ProfileInput{Email: "a@x.io", Profile: domain.Profile{Name: ptr("Ann"), Age: ptr(math.MaxInt32 + 1), Height: ptr(1.7), Weight: ptr(60.0)}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.wantErr && !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseISO8601(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-05-13", time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)},
		{"2024-05-13T08:30:00Z", time.Date(2024, 5, 13, 8, 30, 0, 0, time.UTC)},
		{"2024-05-13T08:30:00.250Z", time.Date(2024, 5, 13, 8, 30, 0, 250_000_000, time.UTC)},
		{"2024-05-13T10:30:00+02:00", time.Date(2024, 5, 13, 8, 30, 0, 0, time.UTC)},
		{"2024-05-13T08:30:00", time.Date(2024, 5, 13, 8, 30, 0, 0, time.UTC)},
		{"2024-05-13T08:30", time.Date(2024, 5, 13, 8, 30, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseISO8601(tc.in)
			if err != nil {
				t.Fatalf("ParseISO8601(%q): %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParseISO8601(%q) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}

	for _, bad := range []string{"", "13/05/2024", "2024-13-01", "now"} {
		if _, err := domain.ParseISO8601(bad); err == nil {
			t.Errorf("ParseISO8601(%q) expected error", bad)
		}
	}
}

func TestPedometerInput_Day(t *testing.T) {
	in := domain.PedometerInput{Date: "2024-05-14T23:10:00Z"}
	got := in.Day().Format(domain.DateLayout)
	if got != "2024-05-14" {
		t.Fatalf("Day() = %s; want 2024-05-14", got)
	}
}

func TestNotFoundError_MatchesSentinel(t *testing.T) {
	err := error(&domain.NotFoundError{Resource: "mood entry"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatal("expected NotFoundError to match ErrNotFound")
	}
	if err.Error() != "mood entry not found" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}
