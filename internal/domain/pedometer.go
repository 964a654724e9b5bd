package domain

import "time"

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// PedometerEntry is the step count and distance walked on one day.
type PedometerEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Date      string    `json:"date"`
	Steps     *int      `json:"steps"`
	Distance  *float64  `json:"distance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PedometerInput is the body for creating or updating a pedometer entry.
// Distance is in kilometers.
type PedometerInput struct {
	Date     string   `json:"date"`
	Steps    *int     `json:"steps"`
	Distance *float64 `json:"distance"`
}

func (in PedometerInput) Validate() error {
	return Validate(
		ISO8601("date", in.Date, "Date must be a valid ISO 8601 date string"),
		OptionalNumber("steps", in.Steps, "Steps must be a non-negative integer"),
		OptionalNumber("distance", in.Distance, "Distance must be a non-negative number"),
	)
}

// Day returns the calendar date of the input. Call it only after Validate
// succeeded.
func (in PedometerInput) Day() time.Time {
	t, _ := ParseISO8601(in.Date)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
