package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"
	"github.com/carlog/carlog_vehicle_service/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type PersonService struct {
	personRepo ports.PersonRepository
	logger     ports.LoggerPort
	validate   *validator.Validate
}

func NewPersonService(
	personRepo ports.PersonRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *PersonService {
	return &PersonService{
		personRepo: personRepo,
		logger:     logger,
		validate:   validate,
	}
}

func (s *PersonService) Register(ctx context.Context, person *domain.Person) (*domain.Person, error) {
	person.Normalize()
	if err := s.validate.Struct(person); err != nil {
		s.logger.Error("Person validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	exists, err := s.personRepo.ExistsByTaxID(ctx, person.TaxID)
	if err != nil {
		s.logger.Error("Failed to check tax identifier", map[string]interface{}{
			"error":  err.Error(),
			"tax_id": person.TaxID,
		})
		return nil, err
	}
	if exists {
		return nil, domain.ErrTaxIDExists
	}

	if person.ID == uuid.Nil {
		person.ID = uuid.New()
	}

	created, err := s.personRepo.Create(ctx, person)
	if err != nil {
		s.logger.Error("Failed to create person", map[string]interface{}{
			"error":  err.Error(),
			"tax_id": person.TaxID,
		})
		return nil, err
	}

	s.logger.Info("Person registered successfully", map[string]interface{}{
		"person_id": created.ID,
		"tax_id":    created.TaxID,
	})

	return created, nil
}

// Login verifies the tax identifier and, when a name is supplied, that it
// matches the stored record (case insensitive).
func (s *PersonService) Login(ctx context.Context, firstName, lastName, taxID string) (*domain.Person, error) {
	person, err := s.personRepo.GetByTaxID(ctx, domain.NormalizeTaxID(taxID))
	if err != nil {
		s.logger.Warn("Login failed", map[string]interface{}{
			"error":  err.Error(),
			"tax_id": taxID,
		})
		return nil, err
	}

	if firstName != "" || lastName != "" {
		if !strings.EqualFold(person.FirstName, strings.TrimSpace(firstName)) ||
			!strings.EqualFold(person.LastName, strings.TrimSpace(lastName)) {
			s.logger.Warn("Login name mismatch", map[string]interface{}{
				"tax_id": person.TaxID,
			})
			return nil, domain.ErrLoginMismatch
		}
	}

	s.logger.Info("Login successful", map[string]interface{}{
		"person_id": person.ID,
		"tax_id":    person.TaxID,
	})

	return person, nil
}

func (s *PersonService) GetByTaxID(ctx context.Context, taxID string) (*domain.Person, error) {
	return s.personRepo.GetByTaxID(ctx, domain.NormalizeTaxID(taxID))
}

func (s *PersonService) GetByID(ctx context.Context, personID string) (*domain.Person, error) {
	id, err := uuid.Parse(personID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"person_id": personID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("invalid person ID: %w", err)
	}
	return s.personRepo.GetByID(ctx, id)
}

// ProfileUpdate is a partial update of a person's own record. Zero-valued
// fields leave the stored value unchanged.
type ProfileUpdate struct {
	FirstName   string
	LastName    string
	Email       *string
	BirthDate   *domain.Date
	LicenseYear *int
}

func (s *PersonService) UpdateProfile(ctx context.Context, personID string, update ProfileUpdate) (*domain.Person, error) {
	person, err := s.GetByID(ctx, personID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != "" {
		person.FirstName = update.FirstName
	}
	if update.LastName != "" {
		person.LastName = update.LastName
	}
	if update.Email != nil {
		person.Email = update.Email
	}
	if update.BirthDate != nil {
		person.BirthDate = update.BirthDate
	}
	if update.LicenseYear != nil {
		person.LicenseYear = update.LicenseYear
	}

	person.Normalize()
	if err := s.validate.Struct(person); err != nil {
		s.logger.Error("Person validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	updated, err := s.personRepo.Update(ctx, person)
	if err != nil {
		s.logger.Error("Failed to update person", map[string]interface{}{
			"error":     err.Error(),
			"person_id": person.ID,
		})
		return nil, err
	}

	s.logger.Info("Person profile updated", map[string]interface{}{
		"person_id": updated.ID,
	})

	return updated, nil
}

// FindOrCreate reuses the person registered under the tax identifier, or
// creates a minimal record. The existence check and the create are two
// separate store calls; a concurrent duplicate create is not guarded against.
func (s *PersonService) FindOrCreate(ctx context.Context, firstName, lastName, taxID string) (*domain.Person, error) {
	normalized := domain.NormalizeTaxID(taxID)

	existing, err := s.personRepo.GetByTaxID(ctx, normalized)
	if err == nil {
		s.logger.Info("Reusing existing person", map[string]interface{}{
			"person_id": existing.ID,
			"tax_id":    existing.TaxID,
		})
		return existing, nil
	}
	if !errors.Is(err, domain.ErrPersonNotFound) {
		s.logger.Error("Failed to look up person", map[string]interface{}{
			"error":  err.Error(),
			"tax_id": normalized,
		})
		return nil, err
	}

	person := &domain.Person{
		ID:        uuid.New(),
		FirstName: firstName,
		LastName:  lastName,
		TaxID:     normalized,
	}
	person.Normalize()
	if err := s.validate.Struct(person); err != nil {
		s.logger.Error("Person validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	created, err := s.personRepo.Create(ctx, person)
	if err != nil {
		s.logger.Error("Failed to create person", map[string]interface{}{
			"error":  err.Error(),
			"tax_id": normalized,
		})
		return nil, err
	}

	s.logger.Info("Person created", map[string]interface{}{
		"person_id": created.ID,
		"tax_id":    created.TaxID,
	})

	return created, nil
}
