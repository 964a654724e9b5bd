package domain

import (
	"math"
	"net/mail"
	"strings"
	"time"
)

// Rule checks a single input field and returns nil when the field is valid.
// An input type's Validate method lists its rules; all of them are evaluated
// so the caller gets every failing field.
type Rule func() *FieldError

// Validate runs every rule and returns a *ValidationError listing the
// failures, or nil.
func Validate(rules ...Rule) error {
	var fields []FieldError
	for _, r := range rules {
		if fe := r(); fe != nil {
			fields = append(fields, *fe)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func fail(field, msg string) *FieldError {
	return &FieldError{Field: field, Message: msg}
}

// NotBlank requires a non-empty string after trimming whitespace.
func NotBlank(field, v, msg string) Rule {
	return func() *FieldError {
		if strings.TrimSpace(v) == "" {
			return fail(field, msg)
		}
		return nil
	}
}

// MinLength requires at least n characters.
func MinLength(field, v string, n int, msg string) Rule {
	return func() *FieldError {
		if len([]rune(v)) < n {
			return fail(field, msg)
		}
		return nil
	}
}

// Email requires a bare RFC 5322 address such as "a@x.com".
func Email(field, v, msg string) Rule {
	return func() *FieldError {
		addr, err := mail.ParseAddress(v)
		if err != nil || addr.Address != v || addr.Name != "" {
			return fail(field, msg)
		}
		return nil
	}
}

// Number requires a present numeric value. With nonNegative set the value
// must also be >= 0. Integers must fit a 32-bit INTEGER column.
func Number[T int | float64](field string, v *T, nonNegative bool, msg string) Rule {
	return func() *FieldError {
		if v == nil || (nonNegative && *v < 0) || !fitsColumn(*v) {
			return fail(field, msg)
		}
		return nil
	}
}

// OptionalNumber accepts a missing value; a present one must be >= 0 and,
// for integers, fit a 32-bit INTEGER column.
func OptionalNumber[T int | float64](field string, v *T, msg string) Rule {
	return func() *FieldError {
		if v != nil && (*v < 0 || !fitsColumn(*v)) {
			return fail(field, msg)
		}
		return nil
	}
}

func fitsColumn[T int | float64](v T) bool {
	i, ok := any(v).(int)
	return !ok || (i >= math.MinInt32 && i <= math.MaxInt32)
}

// ISO8601 requires a string accepted by ParseISO8601.
func ISO8601(field, v, msg string) Rule {
	return func() *FieldError {
		if _, err := ParseISO8601(v); err != nil {
			return fail(field, msg)
		}
		return nil
	}
}

var iso8601Layouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISO8601 parses a calendar date or a date-time with optional zone
// offset. Values without an offset are taken as UTC.
func ParseISO8601(s string) (time.Time, error) {
	var err error
	for _, layout := range iso8601Layouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
