package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/patient-monitor-api/internal/errs"
	"github.com/harentsoaR/patient-monitor-api/internal/metrics"
)

// ErrorHandler renders the last error a handler recorded with c.Error as
// {"error": "<message>"}. Errors outside the errs taxonomy become a generic
// "Server error".
func ErrorHandler(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		httpErr := errs.From(c.Errors.Last().Err)
		if httpErr.Kind == errs.KindStore && m != nil {
			m.StoreErrors.WithLabelValues(routeLabel(c)).Inc()
		}
		c.JSON(httpErr.Status, gin.H{"error": httpErr.Message})
	}
}

// Recovery converts a panic into a recorded store error so ErrorHandler can
// answer with the usual 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		_ = c.Error(errs.NewStoreError(fmt.Errorf("panic: %v", recovered)))
		c.Abort()
	})
}
