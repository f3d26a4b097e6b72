package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes data as-is. Collections are expected to be non-nil slices so
// that an empty table encodes as [] rather than null.
func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"msg": message})
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// RouteNotFound is the router's own answer for unknown paths and for
// id segments that are not integers.
func RouteNotFound(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
