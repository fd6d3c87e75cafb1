package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{
		db,
	}
}

func (r *PersonRepository) Create(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	query := `INSERT INTO persons (id, tax_id, first_name, last_name, email, birth_date, license_year)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`

	var birthDate *time.Time
	if person.BirthDate != nil {
		birthDate = &person.BirthDate.Time
	}

	err := r.db.QueryRowContext(ctx, query,
		person.ID,
		person.TaxID,
		person.FirstName,
		person.LastName,
		person.Email,
		birthDate,
		person.LicenseYear,
	).Scan(&person.ID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return nil, domain.ErrTaxIDExists
			case "23502":
				return nil, fmt.Errorf("required field is missing")
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return person, nil
}

func (r *PersonRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error) {
	query := `SELECT id, tax_id, first_name, last_name, email, birth_date, license_year
	          FROM persons WHERE id = $1`
	return r.scanPerson(r.db.QueryRowContext(ctx, query, id))
}

func (r *PersonRepository) GetByTaxID(ctx context.Context, taxID string) (*domain.Person, error) {
	query := `SELECT id, tax_id, first_name, last_name, email, birth_date, license_year
	          FROM persons WHERE tax_id = $1`
	return r.scanPerson(r.db.QueryRowContext(ctx, query, taxID))
}

func (r *PersonRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM persons WHERE tax_id = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, taxID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PersonRepository) Update(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	query := `UPDATE persons
		SET
			first_name = COALESCE(NULLIF($1, ''), first_name),
			last_name = COALESCE(NULLIF($2, ''), last_name),
			email = $3,
			birth_date = $4,
			license_year = $5,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING id, tax_id, first_name, last_name, email, birth_date, license_year`

	var birthDate *time.Time
	if person.BirthDate != nil {
		birthDate = &person.BirthDate.Time
	}

	return r.scanPerson(r.db.QueryRowContext(ctx, query,
		person.FirstName,
		person.LastName,
		person.Email,
		birthDate,
		person.LicenseYear,
		person.ID,
	))
}

func (r *PersonRepository) scanPerson(row *sql.Row) (*domain.Person, error) {
	person := &domain.Person{}
	var birthDate sql.NullTime

	err := row.Scan(
		&person.ID,
		&person.TaxID,
		&person.FirstName,
		&person.LastName,
		&person.Email,
		&birthDate,
		&person.LicenseYear,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrPersonNotFound
	}
	if err != nil {
		return nil, err
	}

	if birthDate.Valid {
		d := domain.DateOf(birthDate.Time)
		person.BirthDate = &d
	}
	return person, nil
}
