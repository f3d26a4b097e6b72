package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"starwars/internal/pkg/response"
)

// IntParam rejects the route unless the named path segment is a plain
// non-negative integer, then stores the parsed value under the same key.
// A rejected segment gets the router's generic not-found answer.
func IntParam(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := strconv.ParseUint(c.Param(name), 10, 63)
		if err != nil {
			response.RouteNotFound(c)
			return
		}
		c.Set(name, int64(v))
		c.Next()
	}
}
