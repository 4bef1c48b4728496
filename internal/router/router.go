package router

import (
	"database/sql"

	"hotel_standards_backend/internal/engine"
	"hotel_standards_backend/internal/handlers"
	"hotel_standards_backend/internal/middleware"
	"hotel_standards_backend/internal/repositories"
	"hotel_standards_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(r *gin.Engine, db *sql.DB, engineCfg engine.Config) {
	// Initialize Repositories
	catalogRepo := repositories.NewCatalogRepository(db)
	estimateRepo := repositories.NewEstimateRepository(db)

	// Initialize Services
	catalogService := services.NewCatalogService(catalogRepo, db)
	estimateService := services.NewEstimateService(estimateRepo, catalogRepo, db, engineCfg)

	// Initialize Handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	estimateHandler := handlers.NewEstimateHandler(estimateService)

	apiV1 := r.Group("/api/v1")
	apiV1.Use(middleware.LanguageMiddleware())
	{
		SetupCatalogRoutes(apiV1, catalogHandler)
		SetupEstimateRoutes(apiV1, estimateHandler)
		SetupClassificationRoutes(apiV1)
	}
}

// ValidateCatalog runs the startup section-routing validation against the
// stored catalog. A catalog item that maps to no BoQ section is an authoring
// error the server should refuse to start over.
func ValidateCatalog(db *sql.DB) error {
	catalogRepo := repositories.NewCatalogRepository(db)
	return services.NewCatalogService(catalogRepo, db).ValidateCatalog()
}
