// Package router assembles the gin engine: global middleware, CORS policy and
// the API routes.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/patient-monitor-api/internal/errs"
	"github.com/harentsoaR/patient-monitor-api/internal/handlers"
	"github.com/harentsoaR/patient-monitor-api/internal/metrics"
	"github.com/harentsoaR/patient-monitor-api/internal/middleware"
	"github.com/rs/zerolog"
)

type Options struct {
	Logger         zerolog.Logger
	Metrics        *metrics.Metrics
	CORSOrigin     string
	RateLimitRPS   float64
	RateLimitBurst int
}

func New(h *handlers.Handler, opts Options) *gin.Engine {
	r := gin.New()
	if opts.Metrics == nil {
		opts.Metrics = metrics.New()
	}

	r.Use(
		middleware.RequestID(),
		middleware.Metrics(opts.Metrics),
		middleware.AccessLog(opts.Logger),
		cors.New(cors.Config{
			AllowOrigins: []string{opts.CORSOrigin},
			AllowMethods: []string{http.MethodGet, http.MethodPost},
			AllowHeaders: []string{"Content-Type"},
		}),
		middleware.ErrorHandler(opts.Metrics),
		middleware.Recovery(),
		middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst, opts.Metrics),
		middleware.Identify(h.Tokens),
	)

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(errs.NewNotFoundError("Route not found"))
	})

	r.GET("/healthz", h.Health)
	r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))

	api := r.Group("/api")
	{
		api.POST("/register", h.RegisterUser)
		api.POST("/login", h.Login)

		api.POST("/patient", h.CreatePatient)
		api.GET("/patient/:id", h.GetPatient)

		api.POST("/heart-rate", h.RecordHeartRate)
		api.GET("/heart-rate/:patientId", h.GetHeartRates)
	}

	return r
}
