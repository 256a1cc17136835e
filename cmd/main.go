package main

import (
	"context"
	"net/http"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/tawzeef/tawzeef/config"
	"github.com/tawzeef/tawzeef/internal/auth"
	"github.com/tawzeef/tawzeef/internal/core"
	"github.com/tawzeef/tawzeef/internal/core/repository"
	"github.com/tawzeef/tawzeef/internal/logger"
	logicv1 "github.com/tawzeef/tawzeef/internal/logic/v1"
	"github.com/tawzeef/tawzeef/internal/mailer"
	v1 "github.com/tawzeef/tawzeef/internal/web/v1"
	"github.com/tawzeef/tawzeef/middleware"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		panic("Configuration validation failed: " + err.Error())
	}

	logger.Setup(cfg.Logging.Level)

	log.Info().
		Str("service", cfg.Service.Name).
		Str("version", cfg.Service.Version).
		Str("env", cfg.Service.Env).
		Str("port", cfg.Service.Port).
		Msg("Service starting")

	var tp interface{ Shutdown(context.Context) error }
	if cfg.Tracing.Enabled {
		provider, err := middleware.InitTracing(cfg)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize tracing")
		} else {
			tp = provider
			log.Info().
				Str("endpoint", cfg.Tracing.Endpoint).
				Float64("sample_rate", cfg.Tracing.SampleRate).
				Msg("Tracing initialized")
		}
	} else {
		log.Info().Msg("Tracing disabled (TRACING_ENABLED=false)")
	}

	if cfg.Profiling.Enabled {
		if err := middleware.InitProfiling(cfg); err != nil {
			log.Warn().Err(err).Msg("Failed to initialize profiling")
		} else {
			log.Info().
				Str("endpoint", cfg.Profiling.Endpoint).
				Msg("Profiling initialized")
			defer middleware.StopProfiling()
		}
	} else {
		log.Info().Msg("Profiling disabled (PROFILING_ENABLED=false)")
	}

	pool, err := core.Connect(context.Background(), cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pool.Close()
	log.Info().Msg("Database connection pool established")

	// Storage layer
	users := repository.NewUserRepository(pool)
	employers := repository.NewEmployerRepository(pool)
	candidates := repository.NewCandidateRepository(pool)
	jobs := repository.NewJobRepository(pool)
	applications := repository.NewApplicationRepository(pool)
	content := repository.NewContentRepository(pool)

	// Session codec and route guards
	codec := auth.NewCodec(cfg.Auth.TokenSecret, cfg.Auth.SessionTTL)
	guard := middleware.NewGuard(codec)
	loginLimiter := middleware.NewRateLimiter(cfg.RateLimit.LoginAttempts, cfg.RateLimit.LoginWindow)

	mail := mailer.FromConfig(cfg.Mail)

	// Logic layer
	authSvc := logicv1.NewAuthService(users, employers, candidates, codec,
		cfg.Auth.SuperuserEmail, cfg.Auth.SuperuserPassword)
	taxonomySvc := logicv1.NewTaxonomyService()
	jobSvc := logicv1.NewJobService(jobs, taxonomySvc)
	appSvc := logicv1.NewApplicationService(applications, jobs, users, mail)
	profileSvc := logicv1.NewProfileService(employers, candidates)
	contentSvc := logicv1.NewContentService(content)
	adminSvc := logicv1.NewAdminService(users, jobs)

	r := gin.New()
	r.Use(gin.Recovery())

	var isShuttingDown atomic.Bool

	r.Use(middleware.TracingMiddleware(cfg.Service.Name))
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.PrometheusMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Returns 503 once shutdown has started, to drain traffic before HTTP shutdown.
	r.GET("/ready", func(c *gin.Context) {
		if isShuttingDown.Load() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "shutting_down"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiV1 := r.Group("/api/v1")
	adminGroup := apiV1.Group("/admin", guard.RequireAdmin())

	v1.NewAuthHandler(authSvc, cfg.Auth.SessionTTL, cfg.Auth.CookieSecure).
		RegisterRoutes(apiV1, guard, loginLimiter.Middleware())
	v1.NewJobHandler(jobSvc).RegisterRoutes(apiV1, guard)
	v1.NewApplicationHandler(appSvc).RegisterRoutes(apiV1, guard)
	v1.NewProfileHandler(profileSvc).RegisterRoutes(apiV1, guard)
	v1.NewContentHandler(contentSvc).RegisterRoutes(apiV1, adminGroup)
	v1.NewAdminHandler(adminSvc).RegisterRoutes(adminGroup)
	v1.NewTaxonomyHandler(taxonomySvc).RegisterRoutes(apiV1)

	srv := &http.Server{
		Addr:    ":" + cfg.Service.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.Service.Port).Msg("Starting tawzeef service")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	<-ctx.Done()
	log.Info().Msg("Shutdown signal received")

	// Fail readiness first and wait for propagation before closing listeners.
	isShuttingDown.Store(true)
	drainDelay := cfg.GetReadinessDrainDelayDuration()
	if drainDelay > 0 {
		log.Info().Dur("delay", drainDelay).Msg("Readiness drain delay started")
		time.Sleep(drainDelay)
		log.Info().Dur("delay", drainDelay).Msg("Readiness drain delay completed")
	}

	shutdownTimeout := cfg.GetShutdownTimeoutDuration()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info().Dur("timeout", shutdownTimeout).Msg("Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	} else {
		log.Info().Msg("HTTP server shutdown complete")
	}

	pool.Close()
	log.Info().Msg("Database pool closed")

	if tp != nil {
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Tracer shutdown error")
		} else {
			log.Info().Msg("Tracer shutdown complete")
		}
	}

	log.Info().Msg("Graceful shutdown complete")
}
