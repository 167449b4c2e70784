package cartControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/graniti123/stylehub/models"
	"github.com/graniti123/stylehub/pricing"
)

type AddItemInput struct {
	SessionID     string `json:"session_id" binding:"required"`
	ProductID     string `json:"product_id" binding:"required"`
	SelectedSize  string `json:"selected_size"`
	SelectedColor string `json:"selected_color"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// cartPayload builds the full cart state for a session: lines enriched with
// their product plus the derived summary. Lines whose product has been
// removed from the catalog are skipped, matching the read path everywhere
// else. Every mutation handler responds with this payload so clients can
// adopt the authoritative state without a follow-up read.
func cartPayload(db *gorm.DB, sessionID string) (gin.H, error) {
	var items []models.CartItem
	if err := db.Where("session_id = ?", sessionID).Order("added_at").Find(&items).Error; err != nil {
		return nil, err
	}

	enriched := make([]models.CartItem, 0, len(items))
	lines := make([]pricing.Line, 0, len(items))
	for _, item := range items {
		var product models.Product
		if err := db.First(&product, "id = ?", item.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, err
		}
		item.Product = &product
		enriched = append(enriched, item)
		lines = append(lines, pricing.Line{UnitPrice: product.Price, Quantity: item.Quantity})
	}

	summary := pricing.Calculate(lines)
	return gin.H{
		"cart_items": enriched,
		"subtotal":   summary.Subtotal,
		"shipping":   summary.Shipping,
		"total":      summary.Total,
	}, nil
}

func respondWithCart(c *gin.Context, db *gorm.DB, sessionID, message string) {
	payload, err := cartPayload(db, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to load cart"})
		return
	}
	items := payload["cart_items"].([]models.CartItem)
	c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: payload, Message: message, Total: len(items)})
}

// POST /api/cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Invalid input: " + err.Error()})
			return
		}

		// Validate the product before touching the cart
		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, models.APIResponse{Success: false, Message: "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to validate product"})
			return
		}

		// Size and color defaulting, backstopping the client-side rules:
		// one size selects itself, several sizes require a choice.
		size := input.SelectedSize
		switch {
		case size != "":
			if len(product.Sizes) > 0 && !contains(product.Sizes, size) {
				c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Selected size is not available for this product"})
				return
			}
		case len(product.Sizes) == 1:
			size = product.Sizes[0]
		case len(product.Sizes) == 0:
			size = "Einheitsgröße"
		default:
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Size selection is required"})
			return
		}

		color := input.SelectedColor
		if color == "" && len(product.Colors) > 0 {
			color = product.Colors[0]
		}

		// Merge with an existing line for the same product/size/color
		var item models.CartItem
		err := db.Where(
			"session_id = ? AND product_id = ? AND selected_size = ? AND selected_color = ?",
			input.SessionID, input.ProductID, size, color,
		).First(&item).Error

		switch {
		case err == gorm.ErrRecordNotFound:
			item = models.CartItem{
				ID:            uuid.NewString(),
				SessionID:     input.SessionID,
				ProductID:     input.ProductID,
				SelectedSize:  size,
				SelectedColor: color,
				Quantity:      input.Quantity,
				AddedAt:       time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to add item to cart"})
				return
			}
		case err != nil:
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to fetch cart item"})
			return
		default:
			item.Quantity += input.Quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to update cart item"})
				return
			}
		}

		respondWithCart(c, db, input.SessionID, "Item added to cart")
	}
}

// GET /api/cart/:session_id
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")
		// An empty or never-created cart is a valid steady state, so this
		// always answers 200 with a (possibly zero) summary.
		respondWithCart(c, db, sessionID, "")
	}
}

// PUT /api/cart/:session_id/item/:item_id
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")
		itemID := c.Param("item_id")

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Invalid input: " + err.Error()})
			return
		}

		var item models.CartItem
		if err := db.Where("id = ? AND session_id = ?", itemID, sessionID).First(&item).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, models.APIResponse{Success: false, Message: "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to fetch cart item"})
			return
		}

		if *input.Quantity <= 0 {
			// Quantity zero or below means remove the line
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to remove cart item"})
				return
			}
			respondWithCart(c, db, sessionID, "Item removed from cart")
			return
		}

		item.Quantity = *input.Quantity
		if err := db.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to update cart item"})
			return
		}
		respondWithCart(c, db, sessionID, "Cart item updated")
	}
}

// DELETE /api/cart/:session_id/item/:item_id
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")
		itemID := c.Param("item_id")

		// Removing a line that is already gone is a success, not a 404.
		result := db.Where("id = ? AND session_id = ?", itemID, sessionID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to remove cart item"})
			return
		}
		respondWithCart(c, db, sessionID, "Item removed from cart")
	}
}

// DELETE /api/cart/:session_id
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("session_id")

		if err := db.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to clear cart"})
			return
		}
		respondWithCart(c, db, sessionID, "Cart cleared")
	}
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}
