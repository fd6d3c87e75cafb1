package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Person is an owner or co-owner, identified by a national tax identifier.
type Person struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name" validate:"required,max=100"`
	LastName    string    `json:"last_name" validate:"required,max=100"`
	TaxID       string    `json:"tax_id" validate:"required,min=11,max=16"`
	Email       *string   `json:"email"`
	BirthDate   *Date     `json:"birth_date"`
	LicenseYear *int      `json:"license_year"`
}

// Normalize uppercases the identifying fields before any comparison or write.
func (p *Person) Normalize() {
	p.FirstName = strings.ToUpper(strings.TrimSpace(p.FirstName))
	p.LastName = strings.ToUpper(strings.TrimSpace(p.LastName))
	p.TaxID = strings.ToUpper(strings.TrimSpace(p.TaxID))
}

// NormalizeTaxID uppercases a raw tax identifier.
func NormalizeTaxID(taxID string) string {
	return strings.ToUpper(strings.TrimSpace(taxID))
}
