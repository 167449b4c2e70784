package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graniti123/stylehub/models"
)

// GET /api/products
// Recognized filters: category, sale, search, limit (default 50, max 100),
// offset. The response always carries the total match count for pagination.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{})

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if c.Query("sale") == "true" {
			query = query.Where("is_on_sale = ?", true)
		}
		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("LOWER(name) LIKE LOWER(?)", likePattern)
		}

		limit := 50
		if v := c.Query("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Invalid limit"})
				return
			}
			if n > 100 {
				n = 100
			}
			limit = n
		}

		offset := 0
		if v := c.Query("offset"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Invalid offset"})
				return
			}
			offset = n
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to fetch products"})
			return
		}

		var products []models.Product
		if err := query.Order("created_at").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, models.APIResponse{
			Success: true,
			Data:    gin.H{"products": products},
			Total:   int(total),
		})
	}
}
