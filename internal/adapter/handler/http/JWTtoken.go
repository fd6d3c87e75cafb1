package http

import (
	"errors"
	"time"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"
	"github.com/carlog/carlog_vehicle_service/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTTokenService struct {
	secretKey []byte
	duration  time.Duration
	logger    ports.LoggerPort
}

func NewJWTTokenService(secretKey string, duration time.Duration, logger ports.LoggerPort) *JWTTokenService {
	return &JWTTokenService{
		secretKey: []byte(secretKey),
		duration:  duration,
		logger:    logger,
	}
}

func (j *JWTTokenService) CreateToken(person *domain.Person) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":        uuid.New().String(),
		"person_id": person.ID.String(),
		"tax_id":    person.TaxID,
		"iat":       now.Unix(),
		"exp":       now.Add(j.duration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		j.logger.Error("Failed to sign jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "CreateToken",
		})
		return "", err
	}
	return signed, nil
}

func (j *JWTTokenService) VerifyToken(token string) (*domain.TokenPayload, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	})
	if err != nil {
		j.logger.Error("Failed to parse jwt", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return nil, err
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		j.logger.Error("Failed claims from token", map[string]interface{}{
			"method": "VerifyToken",
		})
		return nil, errors.New("failed to verify")
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return nil, errors.New("invalid id claims")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, errors.New("invalid parse id")
	}

	personIDStr, ok := claims["person_id"].(string)
	if !ok {
		return nil, errors.New("invalid person_id claims")
	}
	personID, err := uuid.Parse(personIDStr)
	if err != nil {
		return nil, errors.New("invalid parse person_id")
	}

	taxID, ok := claims["tax_id"].(string)
	if !ok {
		return nil, errors.New("invalid tax_id claims")
	}

	payload := &domain.TokenPayload{
		ID:       id,
		PersonID: personID,
		TaxID:    taxID,
	}

	return payload, nil
}
