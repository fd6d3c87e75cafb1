package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"
	"github.com/carlog/carlog_vehicle_service/internal/core/ports"
	"github.com/carlog/carlog_vehicle_service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	personService *services.PersonService
	tokenService  ports.TokenService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

func NewAuthHandler(
	personService *services.PersonService,
	tokenService ports.TokenService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		personService: personService,
		tokenService:  tokenService,
		logger:        logger,
		metrics:       metrics,
	}
}

type RegisterRequest struct {
	FirstName   string       `json:"first_name" binding:"required" example:"MARIO"`
	LastName    string       `json:"last_name" binding:"required" example:"ROSSI"`
	TaxID       string       `json:"tax_id" binding:"required" example:"RSSMRA80A01H501U"`
	Email       *string      `json:"email,omitempty" example:"mario.rossi@example.com"`
	BirthDate   *domain.Date `json:"birth_date,omitempty"`
	LicenseYear *int         `json:"license_year,omitempty" example:"1998"`
}

type LoginRequest struct {
	FirstName string `json:"first_name,omitempty" example:"MARIO"`
	LastName  string `json:"last_name,omitempty" example:"ROSSI"`
	TaxID     string `json:"tax_id" binding:"required" example:"RSSMRA80A01H501U"`
}

type AuthResponse struct {
	Token  string        `json:"token"`
	Person domain.Person `json:"person"`
}

// @Summary Register a person
// @Description Creates a person record keyed by tax identifier and issues a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Person data"
// @Success 201 {object} AuthResponse "Person registered"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 409 {object} errorResponse "Tax identifier already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in register", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	person := &domain.Person{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		TaxID:       req.TaxID,
		Email:       req.Email,
		BirthDate:   req.BirthDate,
		LicenseYear: req.LicenseYear,
	}

	created, err := h.personService.Register(c.Request.Context(), person)
	if err != nil {
		if domain.IsValidationError(err) {
			newErrorResponse(c, validationStatus(err), err.Error())
			return
		}
		h.logger.Error("Failed to register person", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to register")
		return
	}

	token, err := h.tokenService.CreateToken(created)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: token, Person: *created})
}

// @Summary Login
// @Description Verifies the tax identifier (and name when supplied) and issues a token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse "Login successful"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unknown person or name mismatch"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in login", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	person, err := h.personService.Login(c.Request.Context(), req.FirstName, req.LastName, req.TaxID)
	if err != nil {
		if errors.Is(err, domain.ErrPersonNotFound) || errors.Is(err, domain.ErrLoginMismatch) {
			newErrorResponse(c, http.StatusUnauthorized, "Login failed")
			return
		}
		h.logger.Error("Failed to login", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	token, err := h.tokenService.CreateToken(person)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: token, Person: *person})
}

type UpdateProfileRequest struct {
	FirstName   string       `json:"first_name,omitempty" example:"MARIO"`
	LastName    string       `json:"last_name,omitempty" example:"ROSSI"`
	Email       *string      `json:"email,omitempty" example:"mario.rossi@example.com"`
	BirthDate   *domain.Date `json:"birth_date,omitempty"`
	LicenseYear *int         `json:"license_year,omitempty" example:"1998"`
}

// @Summary Update the caller's profile
// @Description Updates the authenticated person's record; omitted fields are left unchanged
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Profile data"
// @Success 200 {object} domain.Person "Profile updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /me [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update profile", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	updated, err := h.personService.UpdateProfile(c.Request.Context(), payload.PersonID.String(), services.ProfileUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		BirthDate:   req.BirthDate,
		LicenseYear: req.LicenseYear,
	})
	if err != nil {
		if domain.IsValidationError(err) {
			newErrorResponse(c, validationStatus(err), err.Error())
			return
		}
		if errors.Is(err, domain.ErrPersonNotFound) {
			newErrorResponse(c, http.StatusUnauthorized, "Unknown caller")
			return
		}
		h.logger.Error("Failed to update profile", map[string]interface{}{
			"error":     err.Error(),
			"person_id": payload.PersonID,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, updated)
}
