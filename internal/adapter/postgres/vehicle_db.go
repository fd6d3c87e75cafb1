package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"
	"github.com/carlog/carlog_vehicle_service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Vehicles are stored one row per plate, with each nested collection in its
// own JSONB column so a partial update can touch exactly one collection.
type VehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{
		db,
	}
}

// collectionColumns whitelists the patchable JSONB columns.
var collectionColumns = map[domain.CollectionName]string{
	domain.CollectionCoOwners:       "co_owners",
	domain.CollectionPolicies:       "policies",
	domain.CollectionServiceEntries: "service_entries",
	domain.CollectionInspections:    "inspections",
}

const vehicleColumns = `v.plate, v.make, v.model, v.year, v.color,
	v.purchase_price, v.purchase_date, v.sale_price, v.sale_date,
	v.co_owners, v.policies, v.service_entries, v.inspections,
	v.created_at, v.updated_at,
	p.id, p.tax_id, p.first_name, p.last_name, p.email, p.birth_date, p.license_year`

func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	coOwners, err := json.Marshal(coalesce(vehicle.CoOwners, []domain.Person{}))
	if err != nil {
		return nil, err
	}
	policies, err := json.Marshal(coalesce(vehicle.Policies, []domain.InsurancePolicy{}))
	if err != nil {
		return nil, err
	}
	entries, err := json.Marshal(coalesce(vehicle.ServiceEntries, []domain.ServiceEntry{}))
	if err != nil {
		return nil, err
	}
	inspections, err := json.Marshal(coalesce(vehicle.Inspections, []domain.Inspection{}))
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO vehicles
		(plate, make, model, year, color, purchase_price, purchase_date,
		 sale_price, sale_date, owner_id, co_owners, policies, service_entries, inspections)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING created_at, updated_at`

	var saleDate *time.Time
	if vehicle.SaleDate != nil {
		saleDate = &vehicle.SaleDate.Time
	}

	err = r.db.QueryRowContext(ctx, query,
		vehicle.Plate,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.Color,
		vehicle.PurchasePrice,
		vehicle.PurchaseDate.Time,
		vehicle.SalePrice,
		saleDate,
		vehicle.Owner.ID,
		coOwners,
		policies,
		entries,
		inspections,
	).Scan(
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return nil, domain.ErrPlateExists
			case "23503":
				return nil, domain.ErrPersonNotFound
			case "23502":
				return nil, fmt.Errorf("required field is missing")
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return vehicle, nil
}

func (r *VehicleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
	          FROM vehicles v JOIN persons p ON p.id = v.owner_id
	          WHERE v.plate = $1`

	vehicle, err := r.scanVehicle(r.db.QueryRowContext(ctx, query, plate))
	if err == sql.ErrNoRows {
		return nil, domain.ErrVehicleNotFound
	}
	return vehicle, err
}

func (r *VehicleRepository) ExistsByPlate(ctx context.Context, plate string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM vehicles WHERE plate = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, plate).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByPerson returns vehicles owned or co-owned by the person, without
// duplicates. Co-ownership is matched inside the JSONB co-owner list.
func (r *VehicleRepository) ListByPerson(ctx context.Context, personID uuid.UUID) ([]*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
	          FROM vehicles v JOIN persons p ON p.id = v.owner_id
	          WHERE v.owner_id = $1
	             OR EXISTS (
	                 SELECT 1 FROM jsonb_array_elements(v.co_owners) co
	                 WHERE co->>'id' = $1::text
	             )
	          ORDER BY v.plate`

	rows, err := r.db.QueryContext(ctx, query, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle
	for rows.Next() {
		vehicle, err := r.scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, vehicle)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) UpdateRegistry(ctx context.Context, plate string, patch ports.RegistryPatch) error {
	query := `UPDATE vehicles
		SET
			make = COALESCE(UPPER($1), make),
			model = COALESCE(UPPER($2), model),
			year = COALESCE($3, year),
			color = COALESCE(UPPER($4), color),
			purchase_price = COALESCE($5, purchase_price),
			purchase_date = COALESCE($6, purchase_date),
			sale_price = COALESCE($7, sale_price),
			sale_date = COALESCE($8, sale_date),
			updated_at = CURRENT_TIMESTAMP
		WHERE plate = $9`

	var purchaseDate, saleDate *time.Time
	if patch.PurchaseDate != nil {
		purchaseDate = &patch.PurchaseDate.Time
	}
	if patch.SaleDate != nil {
		saleDate = &patch.SaleDate.Time
	}

	result, err := r.db.ExecContext(ctx, query,
		patch.Make,
		patch.Model,
		patch.Year,
		patch.Color,
		patch.PurchasePrice,
		purchaseDate,
		patch.SalePrice,
		saleDate,
		plate,
	)
	if err != nil {
		return err
	}
	return r.requireRow(result)
}

func (r *VehicleRepository) PatchCollection(ctx context.Context, plate string, collection domain.CollectionName, payload json.RawMessage) error {
	column, ok := collectionColumns[collection]
	if !ok {
		return domain.ErrUnknownCollection
	}

	query := fmt.Sprintf(`UPDATE vehicles SET %s = $1, updated_at = CURRENT_TIMESTAMP WHERE plate = $2`, column)

	result, err := r.db.ExecContext(ctx, query, []byte(payload), plate)
	if err != nil {
		return err
	}
	return r.requireRow(result)
}

func (r *VehicleRepository) Delete(ctx context.Context, plate string) error {
	query := `DELETE FROM vehicles WHERE plate = $1`

	result, err := r.db.ExecContext(ctx, query, plate)
	if err != nil {
		return err
	}
	return r.requireRow(result)
}

func (r *VehicleRepository) requireRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *VehicleRepository) scanVehicle(row rowScanner) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{}
	var (
		purchaseDate time.Time
		saleDate     sql.NullTime
		coOwners     []byte
		policies     []byte
		entries      []byte
		inspections  []byte
		ownerBirth   sql.NullTime
	)

	err := row.Scan(
		&vehicle.Plate,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.Color,
		&vehicle.PurchasePrice,
		&purchaseDate,
		&vehicle.SalePrice,
		&saleDate,
		&coOwners,
		&policies,
		&entries,
		&inspections,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
		&vehicle.Owner.ID,
		&vehicle.Owner.TaxID,
		&vehicle.Owner.FirstName,
		&vehicle.Owner.LastName,
		&vehicle.Owner.Email,
		&ownerBirth,
		&vehicle.Owner.LicenseYear,
	)
	if err != nil {
		return nil, err
	}

	vehicle.PurchaseDate = domain.DateOf(purchaseDate)
	if saleDate.Valid {
		d := domain.DateOf(saleDate.Time)
		vehicle.SaleDate = &d
	}
	if ownerBirth.Valid {
		d := domain.DateOf(ownerBirth.Time)
		vehicle.Owner.BirthDate = &d
	}

	if err := json.Unmarshal(coOwners, &vehicle.CoOwners); err != nil {
		return nil, fmt.Errorf("decode co_owners: %w", err)
	}
	if err := json.Unmarshal(policies, &vehicle.Policies); err != nil {
		return nil, fmt.Errorf("decode policies: %w", err)
	}
	if err := json.Unmarshal(entries, &vehicle.ServiceEntries); err != nil {
		return nil, fmt.Errorf("decode service_entries: %w", err)
	}
	if err := json.Unmarshal(inspections, &vehicle.Inspections); err != nil {
		return nil, fmt.Errorf("decode inspections: %w", err)
	}

	return vehicle, nil
}

func coalesce[T any](s []T, fallback []T) []T {
	if s == nil {
		return fallback
	}
	return s
}
