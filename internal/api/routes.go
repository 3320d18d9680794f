package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/courtlens/casefetch/internal/cache"
	"github.com/courtlens/casefetch/internal/config"
	"github.com/courtlens/casefetch/internal/scraper"
	"github.com/courtlens/casefetch/pkg/logger"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, cache cache.Cache, scraper *scraper.Scraper, logger *logger.Logger, cfg *config.Config) {
	h := NewHandlers(db, cache, scraper, logger, cfg)

	api := router.Group("/api")
	{
		api.GET("/health", h.HealthCheck)

		api.POST("/search", h.SearchCase)
		api.GET("/cases", h.ListCases)
		api.GET("/cases/:id", h.GetCase)
		api.GET("/documents", h.FetchDocument)
		api.GET("/case-types", h.CaseTypes)

		api.GET("/cache/stats", h.CacheStats)
	}
}
