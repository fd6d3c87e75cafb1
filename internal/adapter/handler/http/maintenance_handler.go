package http

import (
	"net/http"
	"time"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"
	"github.com/carlog/carlog_vehicle_service/internal/core/ports"
	"github.com/carlog/carlog_vehicle_service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type MaintenanceHandler struct {
	maintenanceService *services.MaintenanceService
	logger             ports.LoggerPort
	metrics            ports.MetricsPort
}

func NewMaintenanceHandler(
	maintenanceService *services.MaintenanceService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceService: maintenanceService,
		logger:             logger,
		metrics:            metrics,
	}
}

type ServiceEntryRequest struct {
	Date        domain.Date `json:"date" binding:"required"`
	Type        string      `json:"type" binding:"required" example:"ordinary"`
	Odometer    int         `json:"odometer" binding:"required" example:"85000"`
	Description string      `json:"description,omitempty" example:"OIL AND FILTER CHANGE"`
	Cost        float64     `json:"cost" example:"180"`
}

type InspectionRequest struct {
	Date     domain.Date `json:"date" binding:"required"`
	Odometer int         `json:"odometer" example:"85000"`
	Outcome  string      `json:"outcome" binding:"required" example:"pass"`
	Notes    *string     `json:"notes,omitempty" example:"MINOR WEAR ON FRONT TIRES"`
}

// @Summary Add a service entry
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Param request body ServiceEntryRequest true "Service entry data"
// @Success 201 {object} VehicleResponse "Service entry added"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{plate}/services [post]
func (h *MaintenanceHandler) AddServiceEntry(c *gin.Context) {
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

	var req ServiceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in add service entry", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	entry := domain.ServiceEntry{
		Date:        req.Date,
		Type:        domain.ServiceType(req.Type),
		Odometer:    req.Odometer,
		Description: req.Description,
		Cost:        req.Cost,
	}

	updated, err := h.maintenanceService.AddServiceEntry(c.Request.Context(), plate, entry)
	if err != nil {
		if domain.IsValidationError(err) {
			newErrorResponse(c, validationStatus(err), err.Error())
			return
		}
		h.logger.Error("Failed to add service entry", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
		newErrorResponse(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	c.JSON(http.StatusCreated, newVehicleResponse(updated))
}

// @Summary Update a service entry
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Param id path string true "Service entry ID"
// @Param request body ServiceEntryRequest true "Service entry data"
// @Success 200 {object} VehicleResponse "Service entry updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Service entry not found"
// @Router /vehicles/{plate}/services/{id} [put]
func (h *MaintenanceHandler) UpdateServiceEntry(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	plate := c.Param("plate")
	entryID := c.Param("id")

	_, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req ServiceEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update service entry", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	entry := domain.ServiceEntry{
		Date:        req.Date,
		Type:        domain.ServiceType(req.Type),
		Odometer:    req.Odometer,
		Description: req.Description,
		Cost:        req.Cost,
	}

	updated, err := h.maintenanceService.UpdateServiceEntry(c.Request.Context(), plate, entryID, entry)
	if err != nil {
		if domain.IsValidationError(err) {
			newErrorResponse(c, validationStatus(err), err.Error())
			return
		}
		h.logger.Error("Failed to update service entry", map[string]interface{}{
			"error":    err.Error(),
			"plate":    plate,
			"entry_id": entryID,
		})
		newErrorResponse(c, http.StatusNotFound, "Service entry not found")
		return
	}

	c.JSON(http.StatusOK, newVehicleResponse(updated))
}

// @Summary Delete a service entry
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Param id path string true "Service entry ID"
// @Success 200 {object} VehicleResponse "Service entry deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Service entry not found"
// @Router /vehicles/{plate}/services/{id} [delete]
func (h *MaintenanceHandler) DeleteServiceEntry(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	plate := c.Param("plate")
	entryID := c.Param("id")

	_, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	updated, err := h.maintenanceService.DeleteServiceEntry(c.Request.Context(), plate, entryID)
	if err != nil {
		h.logger.Error("Failed to delete service entry", map[string]interface{}{
			"error":    err.Error(),
			"plate":    plate,
			"entry_id": entryID,
		})
		newErrorResponse(c, http.StatusNotFound, "Service entry not found")
		return
	}

	c.JSON(http.StatusOK, newVehicleResponse(updated))
}

// @Summary Add an inspection
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Param request body InspectionRequest true "Inspection data"
// @Success 201 {object} VehicleResponse "Inspection added"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{plate}/inspections [post]
func (h *MaintenanceHandler) AddInspection(c *gin.Context) {
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

	var req InspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in add inspection", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	inspection := domain.Inspection{
		Date:     req.Date,
		Odometer: req.Odometer,
		Outcome:  domain.InspectionOutcome(req.Outcome),
		Notes:    req.Notes,
	}

	updated, err := h.maintenanceService.AddInspection(c.Request.Context(), plate, inspection)
	if err != nil {
		if domain.IsValidationError(err) {
			newErrorResponse(c, validationStatus(err), err.Error())
			return
		}
		h.logger.Error("Failed to add inspection", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
		newErrorResponse(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	c.JSON(http.StatusCreated, newVehicleResponse(updated))
}

// @Summary Update an inspection
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Param id path string true "Inspection ID"
// @Param request body InspectionRequest true "Inspection data"
// @Success 200 {object} VehicleResponse "Inspection updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Inspection not found"
// @Router /vehicles/{plate}/inspections/{id} [put]
func (h *MaintenanceHandler) UpdateInspection(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	plate := c.Param("plate")
	inspectionID := c.Param("id")

	_, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req InspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update inspection", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	inspection := domain.Inspection{
		Date:     req.Date,
		Odometer: req.Odometer,
		Outcome:  domain.InspectionOutcome(req.Outcome),
		Notes:    req.Notes,
	}

	updated, err := h.maintenanceService.UpdateInspection(c.Request.Context(), plate, inspectionID, inspection)
	if err != nil {
		if domain.IsValidationError(err) {
			newErrorResponse(c, validationStatus(err), err.Error())
			return
		}
		h.logger.Error("Failed to update inspection", map[string]interface{}{
			"error":         err.Error(),
			"plate":         plate,
			"inspection_id": inspectionID,
		})
		newErrorResponse(c, http.StatusNotFound, "Inspection not found")
		return
	}

	c.JSON(http.StatusOK, newVehicleResponse(updated))
}

// @Summary Delete an inspection
// @Tags maintenance
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Param id path string true "Inspection ID"
// @Success 200 {object} VehicleResponse "Inspection deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Inspection not found"
// @Router /vehicles/{plate}/inspections/{id} [delete]
func (h *MaintenanceHandler) DeleteInspection(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	plate := c.Param("plate")
	inspectionID := c.Param("id")

	_, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	updated, err := h.maintenanceService.DeleteInspection(c.Request.Context(), plate, inspectionID)
	if err != nil {
		h.logger.Error("Failed to delete inspection", map[string]interface{}{
			"error":         err.Error(),
			"plate":         plate,
			"inspection_id": inspectionID,
		})
		newErrorResponse(c, http.StatusNotFound, "Inspection not found")
		return
	}

	c.JSON(http.StatusOK, newVehicleResponse(updated))
}
