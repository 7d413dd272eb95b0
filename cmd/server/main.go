package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/darrkasamna/catalog/internal/api"
	"github.com/darrkasamna/catalog/internal/auth"
	"github.com/darrkasamna/catalog/internal/db"
	"github.com/darrkasamna/catalog/internal/store"
	"github.com/darrkasamna/catalog/pkg/config"
	"github.com/darrkasamna/catalog/pkg/logging"
	"github.com/darrkasamna/catalog/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logging.InitLogger(&cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	logger := logging.GetLogger()
	logger.Info("Starting catalog store server")

	// Initialize telemetry
	telemetryShutdown, err := telemetry.Init(&cfg.Telemetry)
	if err != nil {
		logger.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	defer telemetryShutdown()

	database, err := db.New(&cfg.Database, cfg.Logging.Level)
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer database.Close()

	if err := database.Migrate(context.Background()); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	var authority *auth.Authority
	if cfg.Auth.JWTSecret != "" {
		authority, err = auth.NewAuthority(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		if err != nil {
			logger.Fatal("Failed to create token authority", zap.Error(err))
		}
	} else {
		logger.Warn("jwt_secret not set, every caller is anonymous and admin methods are unavailable")
	}

	var limiter *api.IPRateLimiter
	if cfg.Server.RateLimit > 0 {
		limiter = api.NewIPRateLimiter(cfg.Server.RateLimit, cfg.Server.Burst, 10*time.Minute)
	}

	if cfg.Logging.Level == "DEBUG" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())

	api.NewRouter(database, store.New(database, int(cfg.Media.MaxBytes)), api.RouterOptions{
		Authority:  authority,
		Limiter:    limiter,
		Registerer: prometheus.DefaultRegisterer,
		Gatherer:   prometheus.DefaultGatherer,
	}).SetupRoutes(engine)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           api.CORS(cfg.Server.CORSOrigins).Handler(engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server starting", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
