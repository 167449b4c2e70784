package categoryControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graniti123/stylehub/models"
)

// GET /api/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.APIResponse{Success: false, Message: "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, models.APIResponse{
			Success: true,
			Data:    gin.H{"categories": categories},
			Total:   len(categories),
		})
	}
}
