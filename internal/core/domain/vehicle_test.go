package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testVehicle() *Vehicle {
	return &Vehicle{
		Plate:        "AB123CD",
		Make:         "FIAT",
		Model:        "PANDA",
		Year:         2020,
		PurchaseDate: NewDate(2020, time.January, 10),
		Owner: Person{
			ID:        uuid.New(),
			FirstName: "MARIO",
			LastName:  "ROSSI",
			TaxID:     "RSSMRA80A01H501U",
		},
	}
}

func TestNormalize(t *testing.T) {
	v := &Vehicle{Plate: " ab123cd ", Make: "fiat", Model: "panda", Color: "blu"}
	v.Normalize()

	if v.Plate != "AB123CD" {
		t.Errorf("plate = %q, want AB123CD", v.Plate)
	}
	if v.Make != "FIAT" || v.Model != "PANDA" || v.Color != "BLU" {
		t.Errorf("registry fields not uppercased: %+v", v)
	}
}

func TestCanAddCoOwnerRejectsOwner(t *testing.T) {
	v := testVehicle()

	err := v.CanAddCoOwner("RSSMRA80A01H501U")
	if !errors.Is(err, ErrAlreadyOwner) {
		t.Errorf("got %v, want ErrAlreadyOwner", err)
	}

	// Case and whitespace must not defeat the check.
	err = v.CanAddCoOwner("  rssmra80a01h501u ")
	if !errors.Is(err, ErrAlreadyOwner) {
		t.Errorf("lowercase tax ID: got %v, want ErrAlreadyOwner", err)
	}
}

func TestAddRemoveCoOwner(t *testing.T) {
	v := testVehicle()
	co := Person{ID: uuid.New(), FirstName: "luigi", LastName: "verdi", TaxID: "vrdlgu85b02h501x"}

	if err := v.AddCoOwner(co); err != nil {
		t.Fatalf("add co-owner: %v", err)
	}
	if len(v.CoOwners) != 1 {
		t.Fatalf("got %d co-owners, want 1", len(v.CoOwners))
	}
	if v.CoOwners[0].TaxID != "VRDLGU85B02H501X" {
		t.Errorf("co-owner not normalized: %q", v.CoOwners[0].TaxID)
	}

	// Duplicate rejected.
	if err := v.AddCoOwner(co); !errors.Is(err, ErrAlreadyCoOwner) {
		t.Errorf("got %v, want ErrAlreadyCoOwner", err)
	}

	v.RemoveCoOwner("VRDLGU85B02H501X")
	if len(v.CoOwners) != 0 {
		t.Errorf("got %d co-owners after removal, want 0", len(v.CoOwners))
	}
}

func TestRemoveCoOwnerUnknownTaxIDIsNoOp(t *testing.T) {
	v := testVehicle()
	if err := v.AddCoOwner(Person{TaxID: "VRDLGU85B02H501X", FirstName: "LUIGI", LastName: "VERDI"}); err != nil {
		t.Fatalf("add co-owner: %v", err)
	}

	v.RemoveCoOwner("BNCGPP90C03H501Y")
	if len(v.CoOwners) != 1 {
		t.Errorf("unrelated removal changed the list: %d co-owners", len(v.CoOwners))
	}
}

func TestCollectionReturnsEmptyNotNil(t *testing.T) {
	v := testVehicle()

	for _, name := range []CollectionName{
		CollectionCoOwners,
		CollectionPolicies,
		CollectionServiceEntries,
		CollectionInspections,
	} {
		value, err := v.Collection(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if value == nil {
			t.Errorf("%s: got nil, want an empty slice", name)
		}
	}

	if _, err := v.Collection("bogus"); !errors.Is(err, ErrUnknownCollection) {
		t.Errorf("got %v, want ErrUnknownCollection", err)
	}
}

func TestResolveStatus(t *testing.T) {
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	v := testVehicle()
	v.Policies = []InsurancePolicy{
		policy("old", NewDate(2022, time.January, 1), NewDate(2022, time.December, 31)),
		policy("current", NewDate(2024, time.January, 1), NewDate(2024, time.June, 20)),
	}

	status := ResolveStatus(v, now)

	if status.Insurance.Active == nil || status.Insurance.Active.ID != "current" {
		t.Fatalf("active = %+v, want policy \"current\"", status.Insurance.Active)
	}
	if !status.Insurance.DueSoon {
		t.Error("policy ending in 19 days should be due soon")
	}
	if status.Insurance.Expired {
		t.Error("active policy should not be expired")
	}
	if len(status.Insurance.History) != 1 || status.Insurance.History[0].ID != "old" {
		t.Errorf("history = %+v, want [old]", status.Insurance.History)
	}

	// Purchased 2020-01-10, no inspections: overdue since 2024-01-10.
	if status.Inspection != InspectionOverdue {
		t.Errorf("inspection state = %q, want %q", status.Inspection, InspectionOverdue)
	}
	if status.NextInspectionDue == nil || !status.NextInspectionDue.Equal(NewDate(2024, time.January, 10)) {
		t.Errorf("next due = %v, want 2024-01-10", status.NextInspectionDue)
	}
}
