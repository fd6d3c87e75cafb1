package domain

import (
	"errors"
	"testing"
	"time"
)

func policy(id string, start, end Date) InsurancePolicy {
	return InsurancePolicy{
		ID:           id,
		Company:      "GENERALI",
		PolicyNumber: "POL-" + id,
		Start:        start,
		End:          end,
	}
}

func TestActivePolicyWindowContainment(t *testing.T) {
	now := time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

	policies := []InsurancePolicy{
		policy("old", NewDate(2022, time.January, 1), NewDate(2022, time.December, 31)),
		policy("current", NewDate(2024, time.January, 1), NewDate(2024, time.December, 31)),
	}

	active := ActivePolicy(policies, now)
	if active == nil {
		t.Fatal("expected an active policy")
	}
	if active.ID != "current" {
		t.Errorf("got %q, want \"current\"", active.ID)
	}
}

func TestActivePolicyBoundaryDays(t *testing.T) {
	start := NewDate(2024, time.January, 1)
	end := NewDate(2024, time.December, 31)
	policies := []InsurancePolicy{policy("p", start, end)}

	// Start and end days are both inside the window.
	for _, day := range []time.Time{
		time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 31, 23, 59, 0, 0, time.UTC),
	} {
		if ActivePolicy(policies, day) == nil {
			t.Errorf("policy should be active on %v", day)
		}
	}

	// The day after the end is outside.
	if ActivePolicy(policies, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)) != nil {
		t.Error("policy should not be active after its end date")
	}
}

func TestActivePolicyNoneMatches(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	policies := []InsurancePolicy{
		policy("expired", NewDate(2022, time.January, 1), NewDate(2022, time.December, 31)),
	}
	if ActivePolicy(policies, now) != nil {
		t.Error("expected no active policy")
	}
}

func TestPolicyHistoryExcludesActiveSortedByEndDesc(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	policies := []InsurancePolicy{
		policy("a", NewDate(2020, time.January, 1), NewDate(2020, time.December, 31)),
		policy("current", NewDate(2024, time.January, 1), NewDate(2024, time.December, 31)),
		policy("c", NewDate(2022, time.January, 1), NewDate(2022, time.December, 31)),
		policy("b", NewDate(2021, time.January, 1), NewDate(2021, time.December, 31)),
	}

	history := PolicyHistory(policies, now)
	if len(history) != 3 {
		t.Fatalf("got %d history entries, want 3", len(history))
	}
	for i, want := range []string{"c", "b", "a"} {
		if history[i].ID != want {
			t.Errorf("history[%d] = %q, want %q", i, history[i].ID, want)
		}
	}
}

func TestPolicyDueSoon(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  Date
		want bool
	}{
		{"ends today", NewDate(2024, time.June, 1), true},
		{"ends in 30 days", NewDate(2024, time.July, 1), true},
		{"ends in 31 days", NewDate(2024, time.July, 2), false},
		{"already ended", NewDate(2024, time.May, 31), false},
	}
	for _, tt := range tests {
		if got := PolicyDueSoon(tt.end, now); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCanAddPolicyRejectsInvertedDates(t *testing.T) {
	candidate := policy("x", NewDate(2024, time.June, 1), NewDate(2024, time.June, 1))
	if err := CanAddPolicy(candidate, nil); !errors.Is(err, ErrPolicyDatesInverted) {
		t.Errorf("got %v, want ErrPolicyDatesInverted", err)
	}

	candidate = policy("x", NewDate(2024, time.June, 2), NewDate(2024, time.June, 1))
	if err := CanAddPolicy(candidate, nil); !errors.Is(err, ErrPolicyDatesInverted) {
		t.Errorf("got %v, want ErrPolicyDatesInverted", err)
	}
}

func TestCanAddPolicyRejectsOverlap(t *testing.T) {
	existing := []InsurancePolicy{
		policy("p", NewDate(2024, time.January, 1), NewDate(2024, time.December, 31)),
	}

	tests := []struct {
		name       string
		start, end Date
		wantErr    error
	}{
		{
			"fully inside",
			NewDate(2024, time.March, 1), NewDate(2024, time.April, 1),
			ErrPolicyOverlap,
		},
		{
			"crosses the start",
			NewDate(2023, time.December, 1), NewDate(2024, time.January, 15),
			ErrPolicyOverlap,
		},
		{
			"touches only the end boundary day",
			NewDate(2024, time.December, 31), NewDate(2025, time.December, 31),
			ErrPolicyOverlap,
		},
		{
			"starts the day after the end",
			NewDate(2025, time.January, 1), NewDate(2025, time.December, 31),
			nil,
		},
		{
			"ends the day before the start",
			NewDate(2023, time.January, 1), NewDate(2023, time.December, 31),
			nil,
		},
	}
	for _, tt := range tests {
		candidate := policy("x", tt.start, tt.end)
		err := CanAddPolicy(candidate, existing)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestParseCoverages(t *testing.T) {
	got := ParseCoverages("rca, Furto , ,INCENDIO")
	want := []string{"RCA", "FURTO", "INCENDIO"}
	if len(got) != len(want) {
		t.Fatalf("got %d coverages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coverage[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
