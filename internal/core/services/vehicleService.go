package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"
	"github.com/carlog/carlog_vehicle_service/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const vehicleCacheTTL = 15 * time.Minute

type VehicleService struct {
	vehicleRepo   ports.VehicleRepository
	personService *PersonService
	logger        ports.LoggerPort
	validate      *validator.Validate
	cache         ports.CachePort
}

func NewVehicleService(
	vehicleRepo ports.VehicleRepository,
	personService *PersonService,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *VehicleService {
	return &VehicleService{
		vehicleRepo:   vehicleRepo,
		personService: personService,
		logger:        logger,
		validate:      validate,
		cache:         cache,
	}
}

func (s *VehicleService) CreateVehicle(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	vehicle.Normalize()
	if err := s.validate.Struct(vehicle); err != nil {
		s.logger.Error("Vehicle validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	exists, err := s.vehicleRepo.ExistsByPlate(ctx, vehicle.Plate)
	if err != nil {
		s.logger.Error("Failed to check plate", map[string]interface{}{
			"error": err.Error(),
			"plate": vehicle.Plate,
		})
		return nil, err
	}
	if exists {
		return nil, domain.ErrPlateExists
	}

	created, err := s.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		s.logger.Error("Failed to create vehicle", map[string]interface{}{
			"error":    err.Error(),
			"plate":    vehicle.Plate,
			"owner_id": vehicle.Owner.ID,
		})
		return nil, err
	}

	s.logger.Info("Vehicle created successfully", map[string]interface{}{
		"plate":    created.Plate,
		"owner_id": created.Owner.ID,
	})

	return created, nil
}

func (s *VehicleService) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	plate = domain.NormalizePlate(plate)

	cacheKey := fmt.Sprintf("vehicle:%s", plate)
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cached domain.Vehicle
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			s.logger.Info("Vehicle found in cache", map[string]interface{}{
				"plate": plate,
			})
			return &cached, nil
		}
	}

	vehicle, err := s.vehicleRepo.GetByPlate(ctx, plate)
	if err != nil {
		s.logger.Error("Failed to get vehicle", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
		return nil, err
	}

	vehicleData, err := json.Marshal(vehicle)
	if err != nil {
		s.logger.Warn("Failed to marshal vehicle for cache", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
	} else {
		if err := s.cache.Set(cacheKey, vehicleData, vehicleCacheTTL); err != nil {
			s.logger.Warn("Failed to cache vehicle", map[string]interface{}{
				"error": err.Error(),
				"plate": plate,
			})
		}
	}

	return vehicle, nil
}

func (s *VehicleService) ListByPerson(ctx context.Context, personID string) ([]*domain.Vehicle, error) {
	id, err := uuid.Parse(personID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"person_id": personID,
			"error":     err.Error(),
		})
		return nil, fmt.Errorf("invalid person ID: %w", err)
	}

	vehicles, err := s.vehicleRepo.ListByPerson(ctx, id)
	if err != nil {
		s.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error":     err.Error(),
			"person_id": personID,
		})
		return nil, err
	}

	s.logger.Info("Retrieved vehicles for person", map[string]interface{}{
		"person_id":      personID,
		"vehicles_count": len(vehicles),
	})

	return vehicles, nil
}

func (s *VehicleService) UpdateRegistry(ctx context.Context, plate string, patch ports.RegistryPatch) (*domain.Vehicle, error) {
	plate = domain.NormalizePlate(plate)

	if err := s.vehicleRepo.UpdateRegistry(ctx, plate, patch); err != nil {
		s.logger.Error("Failed to update vehicle registry", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
		return nil, err
	}

	s.invalidate(plate)

	s.logger.Info("Vehicle registry updated", map[string]interface{}{
		"plate": plate,
	})

	return s.vehicleRepo.GetByPlate(ctx, plate)
}

func (s *VehicleService) DeleteVehicle(ctx context.Context, plate string) error {
	plate = domain.NormalizePlate(plate)

	if err := s.vehicleRepo.Delete(ctx, plate); err != nil {
		s.logger.Error("Failed to delete vehicle", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
		return err
	}

	s.invalidate(plate)

	s.logger.Info("Vehicle deleted successfully", map[string]interface{}{
		"plate": plate,
	})

	return nil
}

// ApplyCollectionPatch sends the named collection to the store as a partial
// update touching only that collection, then reloads the whole record so the
// caller resyncs derived fields. The payload goes through the sanitizer so
// every optional field crosses the wire as an explicit null.
func (s *VehicleService) ApplyCollectionPatch(ctx context.Context, vehicle *domain.Vehicle, collection domain.CollectionName) (*domain.Vehicle, error) {
	value, err := vehicle.Collection(collection)
	if err != nil {
		return nil, err
	}

	payload, err := domain.SanitizePayload(value)
	if err != nil {
		s.logger.Error("Failed to sanitize patch payload", map[string]interface{}{
			"error":      err.Error(),
			"plate":      vehicle.Plate,
			"collection": string(collection),
		})
		return nil, err
	}

	if err := s.vehicleRepo.PatchCollection(ctx, vehicle.Plate, collection, payload); err != nil {
		s.logger.Error("Failed to patch collection", map[string]interface{}{
			"error":      err.Error(),
			"plate":      vehicle.Plate,
			"collection": string(collection),
		})
		return nil, err
	}

	s.invalidate(vehicle.Plate)

	s.logger.Info("Collection patched", map[string]interface{}{
		"plate":      vehicle.Plate,
		"collection": string(collection),
	})

	return s.vehicleRepo.GetByPlate(ctx, vehicle.Plate)
}

// AddCoOwner validates the candidate against the record, reuses or creates
// the person, appends it and patches only the co-owner collection.
func (s *VehicleService) AddCoOwner(ctx context.Context, plate, firstName, lastName, taxID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByPlate(ctx, domain.NormalizePlate(plate))
	if err != nil {
		return nil, err
	}

	if err := vehicle.CanAddCoOwner(taxID); err != nil {
		s.logger.Warn("Co-owner rejected", map[string]interface{}{
			"error":  err.Error(),
			"plate":  vehicle.Plate,
			"tax_id": domain.NormalizeTaxID(taxID),
		})
		return nil, err
	}

	person, err := s.personService.FindOrCreate(ctx, firstName, lastName, taxID)
	if err != nil {
		return nil, err
	}

	if err := vehicle.AddCoOwner(*person); err != nil {
		return nil, err
	}

	updated, err := s.ApplyCollectionPatch(ctx, vehicle, domain.CollectionCoOwners)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Co-owner added", map[string]interface{}{
		"plate":     updated.Plate,
		"person_id": person.ID,
		"tax_id":    person.TaxID,
	})

	return updated, nil
}

func (s *VehicleService) RemoveCoOwner(ctx context.Context, plate, taxID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByPlate(ctx, domain.NormalizePlate(plate))
	if err != nil {
		return nil, err
	}

	vehicle.RemoveCoOwner(taxID)

	updated, err := s.ApplyCollectionPatch(ctx, vehicle, domain.CollectionCoOwners)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Co-owner removed", map[string]interface{}{
		"plate":  updated.Plate,
		"tax_id": domain.NormalizeTaxID(taxID),
	})

	return updated, nil
}

func (s *VehicleService) invalidate(plate string) {
	cacheKey := fmt.Sprintf("vehicle:%s", plate)
	if err := s.cache.Delete(cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate vehicle cache", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
	}
}
