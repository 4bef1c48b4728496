package handlers

import (
	"errors"
	"net/http"

	"hotel_standards_backend/internal/models"
	"hotel_standards_backend/internal/services"
	"hotel_standards_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler holds the catalog service.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// GetStandardItems handles fetching catalog items, optionally by category.
func (h *CatalogHandler) GetStandardItems(c *gin.Context) {
	var category *models.Category
	if raw := c.Query("category"); raw != "" {
		cat := models.Category(raw)
		if !cat.IsValid() {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Unknown category: "+raw, ""))
			return
		}
		category = &cat
	}

	items, err := h.catalogService.GetItems(category)
	if err != nil {
		utils.LogError(err, "GetStandardItems: Error from catalogService.GetItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch standard items.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  items,
		"total": len(items),
	})
}

// GetStandardItemByID handles fetching a single catalog item.
func (h *CatalogHandler) GetStandardItemByID(c *gin.Context) {
	id := c.Param("id")

	item, err := h.catalogService.GetItemByID(id)
	if err != nil {
		if errors.Is(err, services.ErrStandardItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Standard item not found.", err.Error()))
			return
		}
		utils.LogError(err, "GetStandardItemByID: Error from catalogService.GetItemByID")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch standard item.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateStandardItemText handles editing the localized text of an item.
// Only descriptive fields are editable; requirement values, costs, and
// calculation rules are fixed catalog data.
func (h *CatalogHandler) UpdateStandardItemText(c *gin.Context) {
	id := c.Param("id")

	var req services.UpdateItemTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateStandardItemText: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.catalogService.UpdateItemText(id, req)
	if err != nil {
		if errors.Is(err, services.ErrStandardItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Standard item not found.", err.Error()))
		} else if errors.Is(err, services.ErrCatalogValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.LogError(err, "UpdateStandardItemText: Error from catalogService.UpdateItemText")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update standard item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}
