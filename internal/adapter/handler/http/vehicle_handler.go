package http

import (
	"net/http"
	"time"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"
	"github.com/carlog/carlog_vehicle_service/internal/core/ports"
	"github.com/carlog/carlog_vehicle_service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	vehicleService *services.VehicleService
	personService  *services.PersonService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewVehicleHandler(
	vehicleService *services.VehicleService,
	personService *services.PersonService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		personService:  personService,
		logger:         logger,
		metrics:        metrics,
	}
}

type VehicleRequest struct {
	Plate         string      `json:"plate" binding:"required" example:"AB123CD"`
	Make          string      `json:"make" binding:"required" example:"FIAT"`
	Model         string      `json:"model" binding:"required" example:"PANDA"`
	Year          int         `json:"year" binding:"required" example:"2020"`
	Color         string      `json:"color,omitempty" example:"BLU"`
	PurchasePrice float64     `json:"purchase_price" example:"12500"`
	PurchaseDate  domain.Date `json:"purchase_date" binding:"required"`
}

type UpdateVehicle struct {
	Make          *string      `json:"make,omitempty" example:"FIAT"`
	Model         *string      `json:"model,omitempty" example:"PANDA"`
	Year          *int         `json:"year,omitempty" example:"2021"`
	Color         *string      `json:"color,omitempty" example:"ROSSO"`
	PurchasePrice *float64     `json:"purchase_price,omitempty" example:"12000"`
	PurchaseDate  *domain.Date `json:"purchase_date,omitempty"`
	SalePrice     *float64     `json:"sale_price,omitempty" example:"8000"`
	SaleDate      *domain.Date `json:"sale_date,omitempty"`
}

type CoOwnerRequest struct {
	FirstName string `json:"first_name" binding:"required" example:"LUIGI"`
	LastName  string `json:"last_name" binding:"required" example:"VERDI"`
	TaxID     string `json:"tax_id" binding:"required" example:"VRDLGU85B02H501X"`
}

// VehicleResponse is the record plus the status block recomputed on read.
type VehicleResponse struct {
	Vehicle *domain.Vehicle      `json:"vehicle"`
	Status  domain.VehicleStatus `json:"status"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
	Count    int               `json:"count"`
}

func newVehicleResponse(v *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		Vehicle: v,
		Status:  domain.ResolveStatus(v, time.Now()),
	}
}

// @Summary Create a vehicle
// @Description Registers a vehicle keyed by plate, owned by the caller
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body VehicleRequest true "Vehicle data"
// @Success 201 {object} VehicleResponse "Vehicle created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 409 {object} errorResponse "Plate already registered"
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to CreateVehicle", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	owner, err := h.personService.GetByID(c.Request.Context(), payload.PersonID.String())
	if err != nil {
		h.logger.Error("Failed to resolve caller", map[string]interface{}{
			"error":     err.Error(),
			"person_id": payload.PersonID,
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unknown caller")
		return
	}

	vehicle := &domain.Vehicle{
		Plate:         req.Plate,
		Make:          req.Make,
		Model:         req.Model,
		Year:          req.Year,
		Color:         req.Color,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
		Owner:         *owner,
	}

	created, err := h.vehicleService.CreateVehicle(c.Request.Context(), vehicle)
	if err != nil {
		if domain.IsValidationError(err) {
			newErrorResponse(c, validationStatus(err), err.Error())
			return
		}
		h.logger.Error("Failed to create vehicle", map[string]interface{}{
			"error":    err.Error(),
			"owner_id": owner.ID,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to create vehicle")
		return
	}

	c.JSON(http.StatusCreated, newVehicleResponse(created))
}

// @Summary Get a vehicle
// @Description Returns the full record and its derived status by plate
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Success 200 {object} VehicleResponse "Vehicle found"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{plate} [get]
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	plate := c.Param("plate")

	_, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetVehicle", map[string]interface{}{
			"plate": plate,
			"ip":    c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vehicle, err := h.vehicleService.GetByPlate(c.Request.Context(), plate)
	if err != nil {
		h.logger.Error("Failed to get vehicle", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
		newErrorResponse(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	c.JSON(http.StatusOK, newVehicleResponse(vehicle))
}

// @Summary List my vehicles
// @Description Returns vehicles the caller owns or co-owns
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} ListVehiclesResponse "Vehicles of the caller"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 500 {object} errorResponse "Internal server error"
// @Router /vehicles/my [get]
func (h *VehicleHandler) GetMyVehicles(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to GetMyVehicles", map[string]interface{}{
			"ip": c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vehicles, err := h.vehicleService.ListByPerson(c.Request.Context(), payload.PersonID.String())
	if err != nil {
		h.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error":     err.Error(),
			"person_id": payload.PersonID,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to get vehicles")
		return
	}

	items := make([]VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		items[i] = newVehicleResponse(v)
	}

	c.JSON(http.StatusOK, ListVehiclesResponse{Vehicles: items, Count: len(items)})
}

// @Summary Update vehicle registry data
// @Description Partial update of make, model, year, color, prices and dates
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Param request body UpdateVehicle true "Fields to update"
// @Success 200 {object} VehicleResponse "Vehicle updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{plate} [put]
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	plate := c.Param("plate")

	_, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req UpdateVehicle
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	patch := ports.RegistryPatch{
		Make:          req.Make,
		Model:         req.Model,
		Year:          req.Year,
		Color:         req.Color,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
		SalePrice:     req.SalePrice,
		SaleDate:      req.SaleDate,
	}

	updated, err := h.vehicleService.UpdateRegistry(c.Request.Context(), plate, patch)
	if err != nil {
		h.logger.Error("Failed to update vehicle", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
		newErrorResponse(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	c.JSON(http.StatusOK, newVehicleResponse(updated))
}

// @Summary Delete a vehicle
// @Description Removes the record and all its nested collections
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Success 200 {object} successResponse "Vehicle deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{plate} [delete]
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	plate := c.Param("plate")

	_, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), plate); err != nil {
		h.logger.Error("Failed to delete vehicle", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
		newErrorResponse(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	c.JSON(http.StatusOK, successResponse{Message: "Vehicle deleted"})
}

// @Summary Add a co-owner
// @Description Rejects the current owner and duplicates; reuses or creates the person
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Param request body CoOwnerRequest true "Co-owner data"
// @Success 200 {object} VehicleResponse "Co-owner added"
// @Failure 400 {object} errorResponse "Already owner or co-owner"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{plate}/coowners [post]
func (h *VehicleHandler) AddCoOwner(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	plate := c.Param("plate")

	_, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CoOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in add co-owner", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	updated, err := h.vehicleService.AddCoOwner(c.Request.Context(), plate, req.FirstName, req.LastName, req.TaxID)
	if err != nil {
		if domain.IsValidationError(err) {
			newErrorResponse(c, validationStatus(err), err.Error())
			return
		}
		h.logger.Error("Failed to add co-owner", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
		newErrorResponse(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	c.JSON(http.StatusOK, newVehicleResponse(updated))
}

// @Summary Remove a co-owner
// @Description Filters the co-owner list by tax identifier
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Param taxid path string true "Co-owner tax identifier" example:"VRDLGU85B02H501X"
// @Success 200 {object} VehicleResponse "Co-owner removed"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{plate}/coowners/{taxid} [delete]
func (h *VehicleHandler) RemoveCoOwner(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	plate := c.Param("plate")
	taxID := c.Param("taxid")

	_, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	updated, err := h.vehicleService.RemoveCoOwner(c.Request.Context(), plate, taxID)
	if err != nil {
		h.logger.Error("Failed to remove co-owner", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
		newErrorResponse(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	c.JSON(http.StatusOK, newVehicleResponse(updated))
}
