package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graniti123/stylehub/models"
)

type ProductUpdateInput struct {
	Name          *string  `json:"name"`
	Price         *float64 `json:"price"`
	OriginalPrice *float64 `json:"original_price"`
	Description   *string  `json:"description"`
	Image         *string  `json:"image"`
	Category      *string  `json:"category"`
	IsOnSale      *bool    `json:"is_on_sale"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Stock         *int     `json:"stock"`
}

// PUT /api/products/:id (admin) — fields absent from the body stay unchanged.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, models.APIResponse{Success: false, Message: "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to retrieve product"})
			}
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Price != nil {
			product.Price = *input.Price
		}
		if input.OriginalPrice != nil {
			product.OriginalPrice = input.OriginalPrice
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.Image != nil {
			product.Image = *input.Image
		}
		if input.Category != nil {
			product.Category = *input.Category
		}
		if input.IsOnSale != nil {
			product.IsOnSale = *input.IsOnSale
		}
		if input.Sizes != nil {
			product.Sizes = input.Sizes
		}
		if input.Colors != nil {
			product.Colors = input.Colors
		}
		if input.Stock != nil {
			product.Stock = *input.Stock
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, models.APIResponse{
			Success: true,
			Data:    gin.H{"product": product},
			Message: "Product updated successfully",
		})
	}
}
