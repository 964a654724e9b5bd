package domain

import "time"

// MoodEntry is a mood label recorded by a user.
type MoodEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Mood      string    `json:"mood"`
	Notes     *string   `json:"notes"`
}

// MoodInput is the body for creating or updating a mood entry.
type MoodInput struct {
	Mood  string  `json:"mood"`
	Notes *string `json:"notes"`
}

func (in MoodInput) Validate() error {
	return Validate(NotBlank("mood", in.Mood, "Mood is required"))
}
