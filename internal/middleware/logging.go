package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AccessLog attaches a request-scoped child of base to the request context
// (retrievable with zerolog.Ctx) and writes one line per request once the
// handler chain has finished. 5xx logs at error, 4xx at warn.
func AccessLog(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLogger := base.With().Str("request_id", GetRequestID(c)).Logger()
		c.Request = c.Request.WithContext(reqLogger.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()
		l := zerolog.Ctx(c.Request.Context())
		var e *zerolog.Event
		switch {
		case status >= 500:
			e = l.Error()
		case status >= 400:
			e = l.Warn()
		default:
			e = l.Info()
		}
		if len(c.Errors) > 0 {
			e = e.Err(c.Errors.Last().Err)
		}
		e.Int("status", status).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Str("ip", c.ClientIP()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
