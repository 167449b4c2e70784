package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/graniti123/stylehub/models"
)

type ProductInput struct {
	Name          string   `json:"name" binding:"required"`
	Price         float64  `json:"price" binding:"required,gt=0"`
	OriginalPrice *float64 `json:"original_price"`
	Description   string   `json:"description"`
	Image         string   `json:"image" binding:"required"`
	Category      string   `json:"category" binding:"required"`
	IsOnSale      bool     `json:"is_on_sale"`
	Sizes         []string `json:"sizes" binding:"required,min=1"`
	Colors        []string `json:"colors" binding:"required,min=1"`
	Stock         int      `json:"stock"`
}

// POST /api/products (admin)
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Invalid input: " + err.Error()})
			return
		}

		// Names are unique across the catalog
		var count int64
		if err := db.Model(&models.Product{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to create product"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Product with this name already exists"})
			return
		}

		stock := input.Stock
		if stock == 0 {
			stock = 100
		}

		product := models.Product{
			ID:            uuid.NewString(),
			Name:          input.Name,
			Price:         input.Price,
			OriginalPrice: input.OriginalPrice,
			Description:   input.Description,
			Image:         input.Image,
			Category:      input.Category,
			IsOnSale:      input.IsOnSale,
			Sizes:         input.Sizes,
			Colors:        input.Colors,
			Stock:         stock,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, models.APIResponse{
			Success: true,
			Data:    gin.H{"product": product},
			Message: "Product created successfully",
		})
	}
}
