package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Date is a day-granularity date. Time-of-day is always zeroed (UTC) so that
// range and equality checks compare calendar days only.
type Date struct {
	time.Time
}

// NewDate builds a Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to day granularity.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current day for the given clock value.
func Today(now time.Time) Date {
	return DateOf(now)
}

func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// AddYears returns the date n calendar years later.
func (d Date) AddYears(n int) Date {
	return DateOf(d.Time.AddDate(n, 0, 0))
}

// DaysUntil returns the whole number of days from today until d. Negative
// when d is in the past, zero when d is today.
func (d Date) DaysUntil(now time.Time) int {
	diff := d.Time.Sub(Today(now).Time)
	return int(math.Ceil(diff.Hours() / 24))
}

// YearsSince returns the elapsed time from d to now as a fraction of
// 365.25-day years.
func YearsSince(d Date, now time.Time) float64 {
	return now.Sub(d.Time).Hours() / (24 * 365.25)
}

// timestampWrapper is the remote-store representation of a date: an epoch
// seconds/nanoseconds pair instead of a native date value.
type timestampWrapper struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int64 `json:"nanoseconds"`
}

// UnmarshalJSON accepts native date strings (RFC 3339 or YYYY-MM-DD), a
// timestamp wrapper object, or null. Whatever the representation, the result
// is normalized to day granularity.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				*d = DateOf(t)
				return nil
			}
		}
		return fmt.Errorf("invalid date value %q", s)
	}

	var w timestampWrapper
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("invalid date value: %w", err)
	}
	*d = DateOf(time.Unix(w.Seconds, w.Nanoseconds).UTC())
	return nil
}

// MarshalJSON always writes the native representation.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.Format(time.RFC3339))
}
