package searchControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graniti123/stylehub/models"
)

// GET /api/search
// Free-text search across name, description and category, with optional
// category and price-range narrowing.
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Search query is required"})
			return
		}

		likePattern := "%" + q + "%"
		query := db.Model(&models.Product{}).Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)",
			likePattern, likePattern, likePattern,
		)

		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if v := c.Query("min_price"); v != "" {
			minPrice, err := strconv.ParseFloat(v, 64)
			if err != nil || minPrice < 0 {
				c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", minPrice)
		}
		if v := c.Query("max_price"); v != "" {
			maxPrice, err := strconv.ParseFloat(v, 64)
			if err != nil || maxPrice < 0 {
				c.JSON(http.StatusBadRequest, models.APIResponse{Success: false, Message: "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", maxPrice)
		}

		limit := 20
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
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to search products"})
			return
		}

		var products []models.Product
		if err := query.Order("created_at").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to search products"})
			return
		}

		c.JSON(http.StatusOK, models.APIResponse{
			Success: true,
			Data:    gin.H{"products": products, "query": q},
			Total:   int(total),
		})
	}
}
