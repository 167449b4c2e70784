package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/graniti123/stylehub/controllers/order"
)

func SetupOrderRoutes(api *gin.RouterGroup, db *gorm.DB) {
	orders := api.Group("/orders")
	{
		// Create a new order from the session's cart
		orders.POST("", orderControllers.CreateOrder(db))

		// Fetch all orders placed by one session
		orders.GET("", orderControllers.GetOrdersBySession(db))

		// Fetch a single order
		orders.GET("/:id", orderControllers.GetOrder(db))
	}
}
