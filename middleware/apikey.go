package middleware

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/graniti123/stylehub/models"
)

// ValidateAPIKey guards the admin product endpoints. The key is shared via
// the ADMIN_API_KEY environment variable; an unset key rejects everything.
func ValidateAPIKey(c *gin.Context) {
	expected := os.Getenv("ADMIN_API_KEY")
	apiKey := c.GetHeader("X-API-KEY")
	if expected == "" || apiKey != expected {
		c.JSON(http.StatusUnauthorized, models.APIResponse{Success: false, Message: "Invalid or missing API key"})
		c.Abort()
		return
	}
	c.Next()
}
