package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/graniti123/stylehub/controllers/cart"
)

// SetupCartRoutes registers the session-scoped cart endpoints.
func SetupCartRoutes(api *gin.RouterGroup, db *gorm.DB) {
	cart := api.Group("/cart")
	{
		cart.POST("", cartControllers.AddToCart(db))                                // POST /api/cart
		cart.GET("/:session_id", cartControllers.GetCart(db))                       // GET /api/cart/:session_id
		cart.PUT("/:session_id/item/:item_id", cartControllers.UpdateCartItem(db))  // PUT /api/cart/:session_id/item/:item_id
		cart.DELETE("/:session_id/item/:item_id", cartControllers.RemoveCartItem(db)) // DELETE /api/cart/:session_id/item/:item_id
		cart.DELETE("/:session_id", cartControllers.ClearCart(db))                  // DELETE /api/cart/:session_id
	}
}
