package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"
	"github.com/carlog/carlog_vehicle_service/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type fakeLogger struct{}

func (fakeLogger) Info(string, map[string]interface{})  {}
func (fakeLogger) Warn(string, map[string]interface{})  {}
func (fakeLogger) Error(string, map[string]interface{}) {}

var errCacheMiss = errors.New("cache miss")

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(key string) ([]byte, error) {
	v, ok := c.entries[key]
	if !ok {
		return nil, errCacheMiss
	}
	return v, nil
}

func (c *fakeCache) Set(key string, value []byte, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(key string) error {
	delete(c.entries, key)
	return nil
}

type fakePersonRepo struct {
	byTaxID map[string]*domain.Person
	creates int
}

func newFakePersonRepo() *fakePersonRepo {
	return &fakePersonRepo{byTaxID: make(map[string]*domain.Person)}
}

func (r *fakePersonRepo) Create(_ context.Context, person *domain.Person) (*domain.Person, error) {
	if _, ok := r.byTaxID[person.TaxID]; ok {
		return nil, domain.ErrTaxIDExists
	}
	stored := *person
	r.byTaxID[person.TaxID] = &stored
	r.creates++
	return &stored, nil
}

func (r *fakePersonRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Person, error) {
	for _, p := range r.byTaxID {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, domain.ErrPersonNotFound
}

func (r *fakePersonRepo) GetByTaxID(_ context.Context, taxID string) (*domain.Person, error) {
	p, ok := r.byTaxID[taxID]
	if !ok {
		return nil, domain.ErrPersonNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePersonRepo) ExistsByTaxID(_ context.Context, taxID string) (bool, error) {
	_, ok := r.byTaxID[taxID]
	return ok, nil
}

func (r *fakePersonRepo) Update(_ context.Context, person *domain.Person) (*domain.Person, error) {
	if _, ok := r.byTaxID[person.TaxID]; !ok {
		return nil, domain.ErrPersonNotFound
	}
	stored := *person
	r.byTaxID[person.TaxID] = &stored
	return &stored, nil
}

// fakeVehicleRepo keeps records in memory and applies collection patches the
// way the store does: one named collection replaced wholesale.
type fakeVehicleRepo struct {
	byPlate     map[string]*domain.Vehicle
	lastPatched domain.CollectionName
	lastPayload json.RawMessage
	patchCount  int
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{byPlate: make(map[string]*domain.Vehicle)}
}

func (r *fakeVehicleRepo) Create(_ context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	if _, ok := r.byPlate[vehicle.Plate]; ok {
		return nil, domain.ErrPlateExists
	}
	stored := *vehicle
	r.byPlate[vehicle.Plate] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakeVehicleRepo) GetByPlate(_ context.Context, plate string) (*domain.Vehicle, error) {
	v, ok := r.byPlate[plate]
	if !ok {
		return nil, domain.ErrVehicleNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVehicleRepo) ExistsByPlate(_ context.Context, plate string) (bool, error) {
	_, ok := r.byPlate[plate]
	return ok, nil
}

func (r *fakeVehicleRepo) ListByPerson(_ context.Context, personID uuid.UUID) ([]*domain.Vehicle, error) {
	var out []*domain.Vehicle
	for _, v := range r.byPlate {
		if v.Owner.ID == personID {
			copied := *v
			out = append(out, &copied)
			continue
		}
		for _, co := range v.CoOwners {
			if co.ID == personID {
				copied := *v
				out = append(out, &copied)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeVehicleRepo) UpdateRegistry(_ context.Context, plate string, patch ports.RegistryPatch) error {
	v, ok := r.byPlate[plate]
	if !ok {
		return domain.ErrVehicleNotFound
	}
	if patch.Make != nil {
		v.Make = *patch.Make
	}
	if patch.Model != nil {
		v.Model = *patch.Model
	}
	if patch.Year != nil {
		v.Year = *patch.Year
	}
	if patch.Color != nil {
		v.Color = *patch.Color
	}
	if patch.SalePrice != nil {
		v.SalePrice = patch.SalePrice
	}
	if patch.SaleDate != nil {
		v.SaleDate = patch.SaleDate
	}
	return nil
}

func (r *fakeVehicleRepo) PatchCollection(_ context.Context, plate string, collection domain.CollectionName, payload json.RawMessage) error {
	v, ok := r.byPlate[plate]
	if !ok {
		return domain.ErrVehicleNotFound
	}
	r.lastPatched = collection
	r.lastPayload = payload
	r.patchCount++

	switch collection {
	case domain.CollectionCoOwners:
		return json.Unmarshal(payload, &v.CoOwners)
	case domain.CollectionPolicies:
		return json.Unmarshal(payload, &v.Policies)
	case domain.CollectionServiceEntries:
		return json.Unmarshal(payload, &v.ServiceEntries)
	case domain.CollectionInspections:
		return json.Unmarshal(payload, &v.Inspections)
	default:
		return domain.ErrUnknownCollection
	}
}

func (r *fakeVehicleRepo) Delete(_ context.Context, plate string) error {
	if _, ok := r.byPlate[plate]; !ok {
		return domain.ErrVehicleNotFound
	}
	delete(r.byPlate, plate)
	return nil
}

var errUploadFailed = errors.New("upload failed")

type fakeFileStore struct {
	failUpload bool
	uploads    map[string]int64
	deleted    []string
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{uploads: make(map[string]int64)}
}

func (f *fakeFileStore) Upload(_ context.Context, key string, r io.Reader, size int64, _ string) (string, error) {
	if f.failUpload {
		return "", errUploadFailed
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}
	f.uploads[key] = size
	return fmt.Sprintf("https://files.example.com/%s", key), nil
}

func (f *fakeFileStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

type testEnv struct {
	personRepo  *fakePersonRepo
	vehicleRepo *fakeVehicleRepo
	cache       *fakeCache
	fileStore   *fakeFileStore

	persons     *PersonService
	vehicles    *VehicleService
	policies    *PolicyService
	maintenance *MaintenanceService
}

func newTestEnv() *testEnv {
	validate := validator.New()
	log := fakeLogger{}

	env := &testEnv{
		personRepo:  newFakePersonRepo(),
		vehicleRepo: newFakeVehicleRepo(),
		cache:       newFakeCache(),
		fileStore:   newFakeFileStore(),
	}
	env.persons = NewPersonService(env.personRepo, log, validate)
	env.vehicles = NewVehicleService(env.vehicleRepo, env.persons, log, validate, env.cache)
	env.policies = NewPolicyService(env.vehicles, env.fileStore, log, validate)
	env.maintenance = NewMaintenanceService(env.vehicles, log, validate)
	return env
}

func (e *testEnv) seedVehicle(plate string) *domain.Vehicle {
	owner := domain.Person{
		ID:        uuid.New(),
		FirstName: "MARIO",
		LastName:  "ROSSI",
		TaxID:     "RSSMRA80A01H501U",
	}
	e.personRepo.byTaxID[owner.TaxID] = &owner

	vehicle := &domain.Vehicle{
		Plate:        plate,
		Make:         "FIAT",
		Model:        "PANDA",
		Year:         2020,
		PurchaseDate: domain.NewDate(2020, 1, 10),
		Owner:        owner,
	}
	e.vehicleRepo.byPlate[plate] = vehicle
	return vehicle
}
