package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	categoryControllers "github.com/graniti123/stylehub/controllers/category"
	healthControllers "github.com/graniti123/stylehub/controllers/health"
	searchControllers "github.com/graniti123/stylehub/controllers/search"
)

// SetupRoutes is the single entry-point that wires up all /api endpoints.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")

	// Liveness and database health
	api.GET("/", healthControllers.Root())
	api.GET("/health", healthControllers.Check(db))

	// Categories
	api.GET("/categories", categoryControllers.GetCategories(db))

	// Free-text product search
	api.GET("/search", searchControllers.SearchProducts(db))

	SetupProductRoutes(api, db)
	SetupCartRoutes(api, db)
	SetupOrderRoutes(api, db)
}
