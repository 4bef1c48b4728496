package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"hotel_standards_backend/internal/database"
	"hotel_standards_backend/internal/engine"
	"hotel_standards_backend/internal/router"
	"hotel_standards_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize Logger
	utils.InitLogger()

	// Load database configuration from environment variables
	dbHost := utils.Getenv("DB_HOST", "localhost")
	dbPort := utils.Getenv("DB_PORT", "5432")
	dbUser := utils.Getenv("DB_USER", "standards_user")
	dbPassword := utils.Getenv("DB_PASSWORD", "standards_password")
	dbName := utils.Getenv("DB_NAME", "hotel_standards_db")
	dbSSLMode := utils.Getenv("DB_SSLMODE", "disable")
	dbSchemaPath := utils.Getenv("DB_SCHEMA_PATH", "")

	// Initialize Database
	database.InitDB(dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode, dbSchemaPath)
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	// Engine tunables: the quality curve and staff ratio changed across
	// dataset revisions, so they are overridable rather than hardcoded.
	engineCfg := loadEngineConfig()
	utils.LogInfo("Engine configured", map[string]interface{}{
		"staff_ratio_divisor":  engineCfg.StaffRatioDivisor,
		"extra_suite_bathroom": engineCfg.ExtraSuiteBathroom,
	})

	// Refuse to serve a catalog with unroutable items.
	dbConn := database.GetDB()
	if err := router.ValidateCatalog(dbConn); err != nil {
		utils.LogError(err, "Catalog validation failed")
		log.Fatalf("Catalog validation failed: %v", err)
	}

	r := gin.Default()

	// Add GinLogger middleware for request logging
	r.Use(utils.GinLogger())

	// CORS configuration
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept-Language"}
	config.AllowCredentials = true
	r.Use(cors.New(config))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Setup all application routes
	router.Setup(r, dbConn, engineCfg)

	// Server port configuration
	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port, "configured_from_env": true})

	if err := r.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadEngineConfig builds the engine configuration from the defaults plus
// environment overrides.
func loadEngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.StaffRatioDivisor = utils.GetenvInt("BOQ_STAFF_RATIO_DIVISOR", cfg.StaffRatioDivisor)
	cfg.ExtraSuiteBathroom = utils.GetenvBool("BOQ_EXTRA_SUITE_BATHROOM", cfg.ExtraSuiteBathroom)

	if raw := os.Getenv("BOQ_QUALITY_MULTIPLIERS"); raw != "" {
		multipliers, err := utils.ParseFloatList(raw)
		if err != nil || len(multipliers) != 5 {
			utils.LogError(err, "Ignoring invalid BOQ_QUALITY_MULTIPLIERS, expected 5 comma-separated floats")
		} else {
			copy(cfg.QualityMultipliers[:], multipliers)
		}
	}
	return cfg
}
