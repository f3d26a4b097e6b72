package middleware

import (
	"github.com/gin-gonic/gin"

	"starwars/internal/pkg/response"
)

// APIErrors renders the last error a handler attached with c.Error.
// It does nothing when the handler already wrote a response.
func APIErrors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		apiErr := response.FromStoreError(c.Errors.Last().Err)
		c.JSON(apiErr.StatusCode, apiErr.ToMap())
	}
}
