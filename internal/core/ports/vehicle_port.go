package ports

import (
	"context"
	"encoding/json"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"

	"github.com/google/uuid"
)

// RegistryPatch is a partial update of the registry section of a record.
// Nil fields are left untouched.
type RegistryPatch struct {
	Make          *string      `json:"make,omitempty"`
	Model         *string      `json:"model,omitempty"`
	Year          *int         `json:"year,omitempty"`
	Color         *string      `json:"color,omitempty"`
	PurchasePrice *float64     `json:"purchase_price,omitempty"`
	PurchaseDate  *domain.Date `json:"purchase_date,omitempty"`
	SalePrice     *float64     `json:"sale_price,omitempty"`
	SaleDate      *domain.Date `json:"sale_date,omitempty"`
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	ExistsByPlate(ctx context.Context, plate string) (bool, error)
	ListByPerson(ctx context.Context, personID uuid.UUID) ([]*domain.Vehicle, error)
	UpdateRegistry(ctx context.Context, plate string, patch RegistryPatch) error
	PatchCollection(ctx context.Context, plate string, collection domain.CollectionName, payload json.RawMessage) error
	Delete(ctx context.Context, plate string) error
}
