package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/graniti123/stylehub/models"
	"github.com/graniti123/stylehub/pricing"
)

type CreateOrderInput struct {
	SessionID string              `json:"session_id" binding:"required"`
	Customer  models.CustomerInfo `json:"customer_info" binding:"required"`
}

// POST /api/orders
// Turns the session's cart into an order. Unit prices are snapshotted at
// order time and the cart is cleared in the same transaction, so a retried
// checkout cannot double-charge.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Invalid input: " + err.Error()})
			return
		}

		var cartItems []models.CartItem
		if err := db.Where("session_id = ?", input.SessionID).Order("added_at").Find(&cartItems).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to load cart"})
			return
		}
		if len(cartItems) == 0 {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "No items in cart"})
			return
		}

		orderID := uuid.NewString()
		var orderItems []models.OrderItem
		var lines []pricing.Line
		for _, item := range cartItems {
			var product models.Product
			if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					continue
				}
				c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to load products"})
				return
			}

			orderItems = append(orderItems, models.OrderItem{
				ID:            uuid.NewString(),
				OrderID:       orderID,
				ProductID:     product.ID,
				ProductName:   product.Name,
				ProductImage:  product.Image,
				SelectedSize:  item.SelectedSize,
				SelectedColor: item.SelectedColor,
				Quantity:      item.Quantity,
				PriceAtTime:   product.Price,
			})
			lines = append(lines, pricing.Line{UnitPrice: product.Price, Quantity: item.Quantity})
		}
		if len(orderItems) == 0 {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "No items in cart"})
			return
		}

		summary := pricing.Calculate(lines)
		order := models.Order{
			ID:           orderID,
			SessionID:    input.SessionID,
			Items:        orderItems,
			TotalAmount:  summary.Total,
			ShippingCost: summary.Shipping,
			Customer:     input.Customer,
			Status:       "created",
			CreatedAt:    time.Now(),
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			return tx.Where("session_id = ?", input.SessionID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to create order"})
			return
		}

		c.JSON(http.StatusCreated, models.APIResponse{
			Success: true,
			Data:    gin.H{"order": order},
			Message: "Order created successfully",
		})
	}
}

// GET /api/orders/:id
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, models.APIResponse{Success: false, Message: "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to retrieve order"})
			}
			return
		}

		c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: gin.H{"order": order}})
	}
}

// GET /api/orders?session_id=...
func GetOrdersBySession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Query("session_id")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "session_id is required"})
			return
		}

		var orders []models.Order
		if err := db.Preload("Items").Where("session_id = ?", sessionID).Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to retrieve orders"})
			return
		}

		c.JSON(http.StatusOK, models.APIResponse{
			Success: true,
			Data:    gin.H{"orders": orders},
			Total:   len(orders),
		})
	}
}
