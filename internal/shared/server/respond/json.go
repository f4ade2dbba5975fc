package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Message writes the flat {message} body the public API uses for its
// documented success and failure shapes.
func Message(c *gin.Context, status int, message string) {
	if status >= http.StatusBadRequest {
		c.AbortWithStatusJSON(status, gin.H{"message": message})
		return
	}
	c.JSON(status, gin.H{"message": message})
}
