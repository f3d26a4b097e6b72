package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"starwars/internal/pkg/logger"
)

// RequestLogger logs every request and recovers from panics.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequest(c, start, logger.Error().Err(err).Str("type", "panic").Bytes("stack", debug.Stack()))

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message": "Internal server error",
				})
				return
			}

			switch {
			case len(c.Errors) > 0:
				ev := logger.Error()
				for _, e := range c.Errors {
					ev = ev.AnErr(fmt.Sprintf("error_%d", e.Type), e.Err)
				}
				logRequest(c, start, ev)
			case c.Writer.Status() >= http.StatusInternalServerError:
				logRequest(c, start, logger.Error())
			default:
				logRequest(c, start, logger.Info())
			}
		}()

		c.Next()
	}
}

func logRequest(c *gin.Context, start time.Time, ev *zerolog.Event) {
	ev = ev.
		Int("status", c.Writer.Status()).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("query", c.Request.URL.RawQuery).
		Str("client_ip", c.ClientIP()).
		Str("request_id", requestID(c)).
		Dur("latency", time.Since(start))

	if uid, ok := ActingUserID(c); ok {
		ev = ev.Int64("user_id", uid)
	}
	ev.Msg("request")
}
