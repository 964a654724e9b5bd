package domain

import "time"

// WaterIntakeEntry represents a single water intake measurement. The unit
// of Amount is a client convention.
type WaterIntakeEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Amount    float64   `json:"amount"`
}

// WaterInput is the body for creating or updating a water intake entry.
// Updates change only the amount; the timestamp must still be valid.
type WaterInput struct {
	Amount    *float64 `json:"amount"`
	Timestamp string   `json:"timestamp"`
}

func (in WaterInput) Validate() error {
	return Validate(
		Number("amount", in.Amount, true, "Amount must be a number"),
		ISO8601("timestamp", in.Timestamp, "Timestamp must be a valid ISO 8601 date string"),
	)
}

// Time returns the parsed timestamp. Call it only after Validate succeeded.
func (in WaterInput) Time() time.Time {
	t, _ := ParseISO8601(in.Timestamp)
	return t
}
