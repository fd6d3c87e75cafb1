package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateUnmarshalNativeString(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2024-06-01"`), &d); err != nil {
		t.Fatalf("unmarshal plain date: %v", err)
	}
	if !d.Equal(NewDate(2024, time.June, 1)) {
		t.Errorf("got %v, want 2024-06-01", d)
	}

	if err := json.Unmarshal([]byte(`"2024-06-01T15:04:05Z"`), &d); err != nil {
		t.Fatalf("unmarshal RFC3339: %v", err)
	}
	if !d.Equal(NewDate(2024, time.June, 1)) {
		t.Errorf("time of day not truncated: got %v", d)
	}
}

func TestDateUnmarshalTimestampWrapper(t *testing.T) {
	want := NewDate(2024, time.June, 1)
	raw := []byte(`{"seconds":1717243200,"nanoseconds":0}`)

	var d Date
	if err := json.Unmarshal(raw, &d); err != nil {
		t.Fatalf("unmarshal wrapper: %v", err)
	}
	if !d.Equal(want) {
		t.Errorf("got %v, want %v", d, want)
	}
}

func TestDateUnmarshalNull(t *testing.T) {
	d := NewDate(2020, time.January, 1)
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !d.IsZero() {
		t.Errorf("null should reset the date, got %v", d)
	}
}

func TestDateUnmarshalInvalid(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"not-a-date"`), &d); err == nil {
		t.Fatal("expected error for malformed date string")
	}
}

func TestDateMarshalAlwaysNative(t *testing.T) {
	// A date read from the wrapper representation must round-trip to native.
	var d Date
	if err := json.Unmarshal([]byte(`{"seconds":1717243200,"nanoseconds":0}`), &d); err != nil {
		t.Fatalf("unmarshal wrapper: %v", err)
	}
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2024-06-01T00:00:00Z"` {
		t.Errorf("got %s, want native RFC3339 string", out)
	}

	out, err = json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(out) != "null" {
		t.Errorf("zero date should marshal to null, got %s", out)
	}
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2024, time.June, 1, 13, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date Date
		want int
	}{
		{"today", NewDate(2024, time.June, 1), 0},
		{"tomorrow", NewDate(2024, time.June, 2), 1},
		{"past", NewDate(2024, time.May, 30), -2},
		{"thirty days", NewDate(2024, time.July, 1), 30},
	}
	for _, tt := range tests {
		if got := tt.date.DaysUntil(now); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestAddYears(t *testing.T) {
	d := NewDate(2020, time.January, 10)
	if got := d.AddYears(4); !got.Equal(NewDate(2024, time.January, 10)) {
		t.Errorf("got %v, want 2024-01-10", got)
	}
}

func TestYearsSince(t *testing.T) {
	purchase := NewDate(2020, time.January, 10)
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	years := YearsSince(purchase, now)
	if years < 4.3 || years > 4.5 {
		t.Errorf("got %f, want roughly 4.4", years)
	}
}
