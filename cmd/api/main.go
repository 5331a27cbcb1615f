package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/patient-monitor-api/internal/config"
	"github.com/harentsoaR/patient-monitor-api/internal/database"
	"github.com/harentsoaR/patient-monitor-api/internal/handlers"
	"github.com/harentsoaR/patient-monitor-api/internal/logger"
	"github.com/harentsoaR/patient-monitor-api/internal/metrics"
	"github.com/harentsoaR/patient-monitor-api/internal/router"
	"github.com/harentsoaR/patient-monitor-api/internal/store"
	"github.com/harentsoaR/patient-monitor-api/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New("info", "json")
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	var st store.Store
	if cfg.MongoDB.URI == "" {
		log.Warn().Msg("MONGO_URI is not set; using in-memory store, data will not survive a restart")
		st = store.NewMemoryStore()
	} else {
		client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.ConnectTimeout)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to MongoDB")
		}
		defer client.Disconnect(context.Background())

		mongoStore := store.NewMongoStore(client.Database(cfg.MongoDB.Database), cfg.MongoDB.OpTimeout)
		if err := mongoStore.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("failed to create indexes")
		}
		st = mongoStore
		log.Info().Str("database", cfg.MongoDB.Database).Msg("connected to MongoDB")
	}

	// --- Credentials ---
	var passwords utils.PasswordChecker = utils.PlainPasswords{}
	if cfg.Auth.HashPasswords {
		passwords = utils.NewBcryptPasswords(cfg.Auth.BcryptCost)
		log.Info().Msg("password hashing enabled")
	}
	tokens := utils.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if !tokens.Enabled() {
		log.Info().Msg("JWT_SECRET is not set; login will not issue tokens")
	}

	h := handlers.NewHandler(st, passwords, tokens)
	r := router.New(h, router.Options{
		Logger:         log,
		Metrics:        metrics.New(),
		CORSOrigin:     cfg.Server.CORSOrigin,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
