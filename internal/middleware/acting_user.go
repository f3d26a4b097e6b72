package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the acting user's primary key. It is trusted as-is:
// no session or credential backs it.
const UserIDHeader = "user_id"

const actingUserKey = "user_id"

// ActingUser copies a parseable user_id header into the request context.
// A missing or malformed header leaves the request anonymous; handlers then
// treat it as an unknown user.
func ActingUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := parseUserID(c.GetHeader(UserIDHeader)); ok {
			c.Set(actingUserKey, id)
		}
		c.Next()
	}
}

// ActingUserID is the only place handlers learn who is calling.
func ActingUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(actingUserKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func parseUserID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
