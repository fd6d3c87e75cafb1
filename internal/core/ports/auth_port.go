package ports

import "github.com/carlog/carlog_vehicle_service/internal/core/domain"

type TokenService interface {
	CreateToken(person *domain.Person) (string, error)
	VerifyToken(token string) (*domain.TokenPayload, error)
}
