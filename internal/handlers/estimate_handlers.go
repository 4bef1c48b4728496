package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"hotel_standards_backend/internal/middleware"
	"hotel_standards_backend/internal/models"
	"hotel_standards_backend/internal/services"
	"hotel_standards_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EstimateHandler holds the estimate service.
type EstimateHandler struct {
	estimateService services.EstimateService
}

// NewEstimateHandler creates a new EstimateHandler.
func NewEstimateHandler(es services.EstimateService) *EstimateHandler {
	return &EstimateHandler{estimateService: es}
}

// PreviewEstimate computes a BoQ for the posted rating/unit mix without
// persisting anything.
func (h *EstimateHandler) PreviewEstimate(c *gin.Context) {
	var req services.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "PreviewEstimate: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	boq, err := h.estimateService.PreviewEstimate(req)
	if err != nil {
		h.respondEstimateError(c, err, "PreviewEstimate")
		return
	}
	c.JSON(http.StatusOK, boq)
}

// CreateEstimate computes a BoQ and saves a snapshot of it.
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var req services.EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateEstimate: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	estimate, err := h.estimateService.CreateEstimate(req)
	if err != nil {
		h.respondEstimateError(c, err, "CreateEstimate")
		return
	}
	c.JSON(http.StatusCreated, estimate)
}

// GetEstimates lists saved estimate snapshots with pagination.
func (h *EstimateHandler) GetEstimates(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	estimates, totalCount, err := h.estimateService.GetEstimates(page, pageSize)
	if err != nil {
		utils.LogError(err, "GetEstimates: Error from estimateService.GetEstimates")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch estimates.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      estimates,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetEstimateByID fetches one saved estimate, including its full BoQ result.
func (h *EstimateHandler) GetEstimateByID(c *gin.Context) {
	estimate, err := h.estimateService.GetEstimateByID(c.Param("id"))
	if err != nil {
		h.respondEstimateError(c, err, "GetEstimateByID")
		return
	}
	c.JSON(http.StatusOK, estimate)
}

// DeleteEstimate removes a saved estimate snapshot.
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.estimateService.DeleteEstimate(c.Param("id")); err != nil {
		h.respondEstimateError(c, err, "DeleteEstimate")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Estimate deleted successfully"})
}

// ExportBoQ streams the computed BoQ as an xlsx download. Inputs come from
// query parameters so the link works directly from a browser.
func (h *EstimateHandler) ExportBoQ(c *gin.Context) {
	rating, err := strconv.Atoi(c.DefaultQuery("rating", "3"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid rating parameter.", err.Error()))
		return
	}
	count := func(name string) int {
		n, _ := strconv.Atoi(c.DefaultQuery(name, "0"))
		return n
	}
	req := services.EstimateRequest{
		Rating: rating,
		UnitMix: models.UnitMix{
			Single: count("single"),
			Double: count("double"),
			Twin:   count("twin"),
			Suite:  count("suite"),
			Vip:    count("vip"),
		},
	}

	workbook, err := h.estimateService.ExportBoQ(req, middleware.RequestLanguage(c))
	if err != nil {
		h.respondEstimateError(c, err, "ExportBoQ")
		return
	}

	filename := fmt.Sprintf("boq_%dstar_%s.xlsx", rating, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}

func (h *EstimateHandler) respondEstimateError(c *gin.Context, err error, operation string) {
	if errors.Is(err, services.ErrEstimateValidation) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		return
	}
	if errors.Is(err, services.ErrEstimateNotFound) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Estimate not found.", err.Error()))
		return
	}
	utils.LogError(err, operation+": Error from estimateService")
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Estimate operation failed.", "Internal error"))
}
