package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/carlog/carlog_vehicle_service/internal/core/domain"
	"github.com/carlog/carlog_vehicle_service/internal/core/ports"
	"github.com/carlog/carlog_vehicle_service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type PolicyHandler struct {
	policyService *services.PolicyService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

func NewPolicyHandler(
	policyService *services.PolicyService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *PolicyHandler {
	return &PolicyHandler{
		policyService: policyService,
		logger:        logger,
		metrics:       metrics,
	}
}

type PolicyRequest struct {
	Company      string      `json:"company" binding:"required" example:"GENERALI"`
	PolicyNumber string      `json:"policy_number" binding:"required" example:"POL-2024-001"`
	Start        domain.Date `json:"start" binding:"required"`
	End          domain.Date `json:"end" binding:"required"`
	AnnualCost   float64     `json:"annual_cost" example:"650"`
	Coverages    string      `json:"coverages,omitempty" example:"RCA, FURTO, INCENDIO"`
}

type PolicyResponse struct {
	Vehicle *domain.Vehicle      `json:"vehicle"`
	Status  domain.VehicleStatus `json:"status"`
	Warning string               `json:"warning,omitempty"`
}

// parsePolicyForm reads the policy fields from a multipart form.
func parsePolicyForm(c *gin.Context) (domain.InsurancePolicy, error) {
	var policy domain.InsurancePolicy

	start, err := time.Parse("2006-01-02", c.PostForm("start"))
	if err != nil {
		return policy, err
	}
	end, err := time.Parse("2006-01-02", c.PostForm("end"))
	if err != nil {
		return policy, err
	}
	cost, _ := strconv.ParseFloat(c.PostForm("annual_cost"), 64)

	policy = domain.InsurancePolicy{
		Company:      c.PostForm("company"),
		PolicyNumber: c.PostForm("policy_number"),
		Start:        domain.DateOf(start),
		End:          domain.DateOf(end),
		AnnualCost:   cost,
		Coverages:    domain.ParseCoverages(c.PostForm("coverages")),
	}
	return policy, nil
}

// @Summary Add an insurance policy
// @Description Validates the date range against existing policies and stores the optional document
// @Tags policies
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Param company formData string true "Insurance company"
// @Param policy_number formData string true "Policy number"
// @Param start formData string true "Start date (YYYY-MM-DD)"
// @Param end formData string true "End date (YYYY-MM-DD)"
// @Param annual_cost formData number false "Annual cost"
// @Param coverages formData string false "Comma-separated coverage tags"
// @Param document formData file false "Policy document (max 5 MB)"
// @Success 201 {object} PolicyResponse "Policy added"
// @Failure 400 {object} errorResponse "Invalid dates or overlap"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Vehicle not found"
// @Router /vehicles/{plate}/policies [post]
func (h *PolicyHandler) AddPolicy(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	plate := c.Param("plate")

	_, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		h.logger.Warn("Unauthorized access attempt to AddPolicy", map[string]interface{}{
			"plate": plate,
			"ip":    c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	policy, err := parsePolicyForm(c)
	if err != nil {
		h.logger.Error("Failed to parse policy form", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid policy data")
		return
	}

	var doc *services.DocumentUpload
	if fileHeader, err := c.FormFile("document"); err == nil {
		if fileHeader.Size > services.MaxDocumentSize {
			newErrorResponse(c, http.StatusBadRequest, domain.ErrFileTooLarge.Error())
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Cannot read uploaded file")
			return
		}
		defer file.Close()
		doc = &services.DocumentUpload{
			Name:        fileHeader.Filename,
			Size:        fileHeader.Size,
			ContentType: fileHeader.Header.Get("Content-Type"),
			Content:     file,
		}
	}

	updated, warning, err := h.policyService.AddPolicy(c.Request.Context(), plate, policy, doc)
	if err != nil {
		if domain.IsValidationError(err) {
			newErrorResponse(c, validationStatus(err), err.Error())
			return
		}
		h.logger.Error("Failed to add policy", map[string]interface{}{
			"error": err.Error(),
			"plate": plate,
		})
		newErrorResponse(c, http.StatusNotFound, "Vehicle not found")
		return
	}

	c.JSON(http.StatusCreated, PolicyResponse{
		Vehicle: updated,
		Status:  domain.ResolveStatus(updated, time.Now()),
		Warning: warning,
	})
}

// @Summary Update an insurance policy
// @Description Replaces the policy in place; date ordering is validated
// @Tags policies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Param id path string true "Policy ID"
// @Param request body PolicyRequest true "Policy data"
// @Success 200 {object} PolicyResponse "Policy updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Policy not found"
// @Router /vehicles/{plate}/policies/{id} [put]
func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	plate := c.Param("plate")
	policyID := c.Param("id")

	_, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req PolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update policy", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	policy := domain.InsurancePolicy{
		Company:      req.Company,
		PolicyNumber: req.PolicyNumber,
		Start:        req.Start,
		End:          req.End,
		AnnualCost:   req.AnnualCost,
		Coverages:    domain.ParseCoverages(req.Coverages),
	}

	updated, err := h.policyService.UpdatePolicy(c.Request.Context(), plate, policyID, policy)
	if err != nil {
		if domain.IsValidationError(err) {
			newErrorResponse(c, validationStatus(err), err.Error())
			return
		}
		h.logger.Error("Failed to update policy", map[string]interface{}{
			"error":     err.Error(),
			"plate":     plate,
			"policy_id": policyID,
		})
		newErrorResponse(c, http.StatusNotFound, "Policy not found")
		return
	}

	c.JSON(http.StatusOK, PolicyResponse{
		Vehicle: updated,
		Status:  domain.ResolveStatus(updated, time.Now()),
	})
}

// @Summary Delete an insurance policy
// @Description Removes the policy and best-effort deletes its stored document
// @Tags policies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param plate path string true "Vehicle plate" example:"AB123CD"
// @Param id path string true "Policy ID"
// @Success 200 {object} PolicyResponse "Policy deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Policy not found"
// @Router /vehicles/{plate}/policies/{id} [delete]
func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	plate := c.Param("plate")
	policyID := c.Param("id")

	_, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	updated, err := h.policyService.DeletePolicy(c.Request.Context(), plate, policyID)
	if err != nil {
		h.logger.Error("Failed to delete policy", map[string]interface{}{
			"error":     err.Error(),
			"plate":     plate,
			"policy_id": policyID,
		})
		newErrorResponse(c, http.StatusNotFound, "Policy not found")
		return
	}

	c.JSON(http.StatusOK, PolicyResponse{
		Vehicle: updated,
		Status:  domain.ResolveStatus(updated, time.Now()),
	})
}
