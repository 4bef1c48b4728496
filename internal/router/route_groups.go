package router

import (
	"hotel_standards_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCatalogRoutes sets up the standards catalog routes.
func SetupCatalogRoutes(apiGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalogRoutes := apiGroup.Group("/standards")
	{
		catalogRoutes.GET("", catalogHandler.GetStandardItems)
		catalogRoutes.GET("/:id", catalogHandler.GetStandardItemByID)
		catalogRoutes.PATCH("/:id/text", catalogHandler.UpdateStandardItemText)
	}
}

// SetupEstimateRoutes sets up the BoQ estimate routes.
func SetupEstimateRoutes(apiGroup *gin.RouterGroup, estimateHandler *handlers.EstimateHandler) {
	estimateRoutes := apiGroup.Group("/estimates")
	{
		estimateRoutes.POST("/preview", estimateHandler.PreviewEstimate)
		estimateRoutes.POST("", estimateHandler.CreateEstimate)
		estimateRoutes.GET("", estimateHandler.GetEstimates)
		estimateRoutes.GET("/export", estimateHandler.ExportBoQ)
		estimateRoutes.GET("/:id", estimateHandler.GetEstimateByID)
		estimateRoutes.DELETE("/:id", estimateHandler.DeleteEstimate)
	}
}

// SetupClassificationRoutes sets up the score threshold routes.
func SetupClassificationRoutes(apiGroup *gin.RouterGroup) {
	classificationRoutes := apiGroup.Group("/classification")
	{
		classificationRoutes.GET("/score-thresholds", handlers.GetScoreThresholds)
		classificationRoutes.GET("/score-thresholds/:rating", handlers.GetScoreThreshold)
	}
}
