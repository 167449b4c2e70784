package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/graniti123/stylehub/models"
)

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
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

		c.JSON(http.StatusOK, models.APIResponse{Success: true, Data: gin.H{"product": product}})
	}
}
