package domain

import (
	"strings"
	"time"
)

// Vehicle is a registered vehicle record. The plate is the natural key; the
// three lifecycle collections and the co-owner list grow independently and
// are always patched one at a time.
type Vehicle struct {
	Plate          string            `json:"plate" validate:"required,min=6,max=10"`
	Make           string            `json:"make" validate:"required,max=100"`
	Model          string            `json:"model" validate:"required,max=100"`
	Year           int               `json:"year" validate:"required,min=1900"`
	Color          string            `json:"color" validate:"max=50"`
	PurchasePrice  float64           `json:"purchase_price" validate:"min=0"`
	PurchaseDate   Date              `json:"purchase_date" validate:"required"`
	SalePrice      *float64          `json:"sale_price"`
	SaleDate       *Date             `json:"sale_date"`
	Owner          Person            `json:"owner"`
	CoOwners       []Person          `json:"co_owners"`
	Policies       []InsurancePolicy `json:"policies"`
	ServiceEntries []ServiceEntry    `json:"service_entries"`
	Inspections    []Inspection      `json:"inspections"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// Normalize uppercases plate and registry text fields.
func (v *Vehicle) Normalize() {
	v.Plate = NormalizePlate(v.Plate)
	v.Make = strings.ToUpper(strings.TrimSpace(v.Make))
	v.Model = strings.ToUpper(strings.TrimSpace(v.Model))
	v.Color = strings.ToUpper(strings.TrimSpace(v.Color))
}

// NormalizePlate uppercases a raw plate string.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// CollectionName names one of the independently patched record collections.
type CollectionName string

const (
	CollectionCoOwners       CollectionName = "co_owners"
	CollectionPolicies       CollectionName = "policies"
	CollectionServiceEntries CollectionName = "service_entries"
	CollectionInspections    CollectionName = "inspections"
)

// Collection returns the named collection's current value. Nil slices come
// back as empty ones so a patch never writes a hole where a list belongs.
func (v *Vehicle) Collection(name CollectionName) (interface{}, error) {
	switch name {
	case CollectionCoOwners:
		if v.CoOwners == nil {
			return []Person{}, nil
		}
		return v.CoOwners, nil
	case CollectionPolicies:
		if v.Policies == nil {
			return []InsurancePolicy{}, nil
		}
		return v.Policies, nil
	case CollectionServiceEntries:
		if v.ServiceEntries == nil {
			return []ServiceEntry{}, nil
		}
		return v.ServiceEntries, nil
	case CollectionInspections:
		if v.Inspections == nil {
			return []Inspection{}, nil
		}
		return v.Inspections, nil
	default:
		return nil, ErrUnknownCollection
	}
}

// CanAddCoOwner rejects candidates that are the owner or already co-own the
// vehicle. Comparison is by normalized tax identifier.
func (v *Vehicle) CanAddCoOwner(taxID string) error {
	taxID = NormalizeTaxID(taxID)
	if v.Owner.TaxID == taxID {
		return ErrAlreadyOwner
	}
	for _, co := range v.CoOwners {
		if co.TaxID == taxID {
			return ErrAlreadyCoOwner
		}
	}
	return nil
}

// AddCoOwner validates and appends the person to the co-owner list.
func (v *Vehicle) AddCoOwner(p Person) error {
	p.Normalize()
	if err := v.CanAddCoOwner(p.TaxID); err != nil {
		return err
	}
	v.CoOwners = append(v.CoOwners, p)
	return nil
}

// RemoveCoOwner filters the co-owner list by tax identifier.
func (v *Vehicle) RemoveCoOwner(taxID string) {
	taxID = NormalizeTaxID(taxID)
	kept := v.CoOwners[:0]
	for _, co := range v.CoOwners {
		if co.TaxID != taxID {
			kept = append(kept, co)
		}
	}
	v.CoOwners = kept
}
