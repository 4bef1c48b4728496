package handlers

import (
	"net/http"
	"strconv"

	"hotel_standards_backend/internal/engine"
	"hotel_standards_backend/internal/models"
	"hotel_standards_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetScoreThreshold returns the minimum point threshold for a star rating,
// used by the radial score display. The mapping is a fixed formula, so the
// handler calls the engine directly without a service in between.
func GetScoreThreshold(c *gin.Context) {
	ratingParam, err := strconv.Atoi(c.Param("rating"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Rating must be an integer.", err.Error()))
		return
	}
	rating := models.Rating(ratingParam)
	if !rating.IsValid() {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Rating must be between 1 and 5.", ""))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"rating":         rating,
		"minimum_points": engine.MinimumPoints(rating),
	})
}

// GetScoreThresholds returns the thresholds for all five ratings at once.
func GetScoreThresholds(c *gin.Context) {
	thresholds := make([]gin.H, 0, 5)
	for _, rating := range models.AllRatings() {
		thresholds = append(thresholds, gin.H{
			"rating":         rating,
			"minimum_points": engine.MinimumPoints(rating),
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": thresholds})
}
