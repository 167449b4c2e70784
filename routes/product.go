package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productControllers "github.com/graniti123/stylehub/controllers/product"
	"github.com/graniti123/stylehub/middleware"
)

// SetupProductRoutes registers the public catalog endpoints and the
// API-key-protected admin surface.
func SetupProductRoutes(api *gin.RouterGroup, db *gorm.DB) {
	products := api.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))        // GET /api/products
		products.GET("/:id", productControllers.GetProductByID(db)) // GET /api/products/:id
	}

	admin := api.Group("")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.POST("/products", productControllers.CreateProduct(db))                 // POST /api/products
		admin.PUT("/products/:id", productControllers.UpdateProduct(db))              // PUT /api/products/:id
		admin.DELETE("/products/:id", productControllers.DeleteProduct(db))           // DELETE /api/products/:id
		admin.GET("/admin/products/export", productControllers.ExportProductsToExcel(db)) // GET /api/admin/products/export
	}
}
