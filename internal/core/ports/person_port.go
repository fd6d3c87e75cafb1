package ports

import (
	"context"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"

	"github.com/google/uuid"
)

type PersonRepository interface {
	Create(ctx context.Context, person *domain.Person) (*domain.Person, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Person, error)
	GetByTaxID(ctx context.Context, taxID string) (*domain.Person, error)
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
	Update(ctx context.Context, person *domain.Person) (*domain.Person, error)
}
