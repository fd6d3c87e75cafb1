package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"
	"github.com/carlog/carlog_vehicle_service/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

// MaintenanceService mutates the service-entry and inspection collections.
type MaintenanceService struct {
	vehicleService *VehicleService
	logger         ports.LoggerPort
	validate       *validator.Validate
}

func NewMaintenanceService(
	vehicleService *VehicleService,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *MaintenanceService {
	return &MaintenanceService{
		vehicleService: vehicleService,
		logger:         logger,
		validate:       validate,
	}
}

func (s *MaintenanceService) AddServiceEntry(ctx context.Context, plate string, entry domain.ServiceEntry) (*domain.Vehicle, error) {
	entry.Normalize()
	if err := s.validate.Struct(entry); err != nil {
		s.logger.Error("Service entry validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	vehicle, err := s.vehicleService.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	entry.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	vehicle.ServiceEntries = append(vehicle.ServiceEntries, entry)

	updated, err := s.vehicleService.ApplyCollectionPatch(ctx, vehicle, domain.CollectionServiceEntries)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Service entry added", map[string]interface{}{
		"plate":    updated.Plate,
		"entry_id": entry.ID,
	})

	return updated, nil
}

func (s *MaintenanceService) UpdateServiceEntry(ctx context.Context, plate, entryID string, entry domain.ServiceEntry) (*domain.Vehicle, error) {
	entry.Normalize()
	if err := s.validate.Struct(entry); err != nil {
		s.logger.Error("Service entry validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	vehicle, err := s.vehicleService.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range vehicle.ServiceEntries {
		if vehicle.ServiceEntries[i].ID == entryID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, domain.ErrServiceEntryNotFound
	}

	entry.ID = entryID
	vehicle.ServiceEntries[index] = entry

	updated, err := s.vehicleService.ApplyCollectionPatch(ctx, vehicle, domain.CollectionServiceEntries)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Service entry updated", map[string]interface{}{
		"plate":    updated.Plate,
		"entry_id": entryID,
	})

	return updated, nil
}

func (s *MaintenanceService) DeleteServiceEntry(ctx context.Context, plate, entryID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleService.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	found := false
	kept := vehicle.ServiceEntries[:0]
	for _, e := range vehicle.ServiceEntries {
		if e.ID == entryID {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return nil, domain.ErrServiceEntryNotFound
	}
	vehicle.ServiceEntries = kept

	updated, err := s.vehicleService.ApplyCollectionPatch(ctx, vehicle, domain.CollectionServiceEntries)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Service entry deleted", map[string]interface{}{
		"plate":    updated.Plate,
		"entry_id": entryID,
	})

	return updated, nil
}

func (s *MaintenanceService) AddInspection(ctx context.Context, plate string, inspection domain.Inspection) (*domain.Vehicle, error) {
	inspection.Normalize()
	if err := s.validate.Struct(inspection); err != nil {
		s.logger.Error("Inspection validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	vehicle, err := s.vehicleService.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	inspection.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	vehicle.Inspections = append(vehicle.Inspections, inspection)

	updated, err := s.vehicleService.ApplyCollectionPatch(ctx, vehicle, domain.CollectionInspections)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Inspection added", map[string]interface{}{
		"plate":         updated.Plate,
		"inspection_id": inspection.ID,
		"outcome":       inspection.Outcome,
	})

	return updated, nil
}

func (s *MaintenanceService) UpdateInspection(ctx context.Context, plate, inspectionID string, inspection domain.Inspection) (*domain.Vehicle, error) {
	inspection.Normalize()
	if err := s.validate.Struct(inspection); err != nil {
		s.logger.Error("Inspection validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	vehicle, err := s.vehicleService.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range vehicle.Inspections {
		if vehicle.Inspections[i].ID == inspectionID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, domain.ErrInspectionNotFound
	}

	inspection.ID = inspectionID
	vehicle.Inspections[index] = inspection

	updated, err := s.vehicleService.ApplyCollectionPatch(ctx, vehicle, domain.CollectionInspections)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Inspection updated", map[string]interface{}{
		"plate":         updated.Plate,
		"inspection_id": inspectionID,
	})

	return updated, nil
}

func (s *MaintenanceService) DeleteInspection(ctx context.Context, plate, inspectionID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleService.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}

	found := false
	kept := vehicle.Inspections[:0]
	for _, i := range vehicle.Inspections {
		if i.ID == inspectionID {
			found = true
			continue
		}
		kept = append(kept, i)
	}
	if !found {
		return nil, domain.ErrInspectionNotFound
	}
	vehicle.Inspections = kept

	updated, err := s.vehicleService.ApplyCollectionPatch(ctx, vehicle, domain.CollectionInspections)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Inspection deleted", map[string]interface{}{
		"plate":         updated.Plate,
		"inspection_id": inspectionID,
	})

	return updated, nil
}
