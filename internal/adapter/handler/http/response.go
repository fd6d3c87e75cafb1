package http

import (
	"errors"
	"net/http"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

// getAuthPayload reads the token payload stored by the auth middleware.
func getAuthPayload(c *gin.Context, key string) (*domain.TokenPayload, bool) {
	value, exists := c.Get(key)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.TokenPayload)
	return payload, ok
}

// validationStatus maps a validation error to its HTTP status. Duplicate
// natural keys are conflicts; everything else in the taxonomy is a bad
// request.
func validationStatus(err error) int {
	if errors.Is(err, domain.ErrPlateExists) || errors.Is(err, domain.ErrTaxIDExists) {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}
