package domain

import (
	"sort"
	"strings"
	"time"
)

// InspectionOutcome is the result of a roadworthiness inspection.
type InspectionOutcome string

const (
	InspectionPassed InspectionOutcome = "pass"
	InspectionFailed InspectionOutcome = "fail"
)

// Inspection is one periodic roadworthiness check.
type Inspection struct {
	ID       string            `json:"id"`
	Date     Date              `json:"date" validate:"required"`
	Odometer int               `json:"odometer" validate:"min=0"`
	Outcome  InspectionOutcome `json:"outcome" validate:"required,oneof=pass fail"`
	Notes    *string           `json:"notes"`
}

// Normalize uppercases the free-text notes.
func (i *Inspection) Normalize() {
	if i.Notes != nil {
		upper := strings.ToUpper(strings.TrimSpace(*i.Notes))
		i.Notes = &upper
	}
}

// InspectionState classifies how the next due date relates to today.
type InspectionState string

const (
	InspectionNotRequired InspectionState = "not_required"
	InspectionValid       InspectionState = "valid"
	InspectionDueSoon     InspectionState = "due_soon"
	InspectionOverdue     InspectionState = "overdue"
)

// firstInspectionYears is the statutory delay before a new vehicle's first
// inspection; followupYears the interval between subsequent ones.
const (
	firstInspectionYears = 4
	followupYears        = 2
)

// SortInspectionsDesc returns a copy sorted by date descending, most recent
// first.
func SortInspectionsDesc(inspections []Inspection) []Inspection {
	sorted := make([]Inspection, len(inspections))
	copy(sorted, inspections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// NextInspectionDue computes the next due date: four years after purchase for
// the first inspection, two years after the most recent one otherwise. The
// second return is false when no purchase date is known.
//
// While the vehicle is less than four years old the first-inspection date is
// returned regardless of any recorded history, so callers can still display
// a "due" value.
func NextInspectionDue(purchase Date, inspections []Inspection, now time.Time) (Date, bool) {
	if purchase.IsZero() {
		return Date{}, false
	}
	if YearsSince(purchase, now) < firstInspectionYears {
		return purchase.AddYears(firstInspectionYears), true
	}
	sorted := SortInspectionsDesc(inspections)
	if len(sorted) == 0 {
		return purchase.AddYears(firstInspectionYears), true
	}
	return sorted[0].Date.AddYears(followupYears), true
}

// ResolveInspectionState classifies the vehicle's inspection position, in
// priority order: not required, overdue, due soon, valid. A due date falling
// exactly today is valid, by the strict zero-exclusive due-soon test.
func ResolveInspectionState(purchase Date, inspections []Inspection, now time.Time) InspectionState {
	if purchase.IsZero() {
		return InspectionNotRequired
	}
	if YearsSince(purchase, now) < firstInspectionYears {
		return InspectionNotRequired
	}
	due, ok := NextInspectionDue(purchase, inspections, now)
	if !ok {
		return InspectionNotRequired
	}
	if due.Before(Today(now)) {
		return InspectionOverdue
	}
	if days := due.DaysUntil(now); days > 0 && days <= 30 {
		return InspectionDueSoon
	}
	return InspectionValid
}
