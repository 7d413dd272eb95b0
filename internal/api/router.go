package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/darrkasamna/catalog/internal/auth"
	"github.com/darrkasamna/catalog/internal/db"
	"github.com/darrkasamna/catalog/internal/store"
	"github.com/darrkasamna/catalog/pkg/logging"
)

// Router sets up API routes
type Router struct {
	handler   *JSONRPCHandler
	db        *db.DB
	authority *auth.Authority
	limiter   *IPRateLimiter
	metrics   *Metrics
	gatherer  prometheus.Gatherer
	logger    *zap.Logger
}

// RouterOptions configures the router
type RouterOptions struct {
	Authority  *auth.Authority
	Limiter    *IPRateLimiter
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter creates a new API router serving svc
func NewRouter(database *db.DB, svc *store.Service, opts RouterOptions) *Router {
	var metrics *Metrics
	if opts.Registerer != nil {
		metrics = NewMetrics(opts.Registerer)
	}

	handler := NewJSONRPCHandler(metrics)
	NewCatalogAPI(svc).Register(handler)

	return &Router{
		handler:   handler,
		db:        database,
		authority: opts.Authority,
		limiter:   opts.Limiter,
		metrics:   metrics,
		gatherer:  opts.Gatherer,
		logger:    logging.WithComponent("api-router"),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	if r.metrics != nil {
		engine.Use(r.metrics.Middleware())
	}
	if r.gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}

	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	rpc := engine.Group("/")
	if r.limiter != nil {
		rpc.Use(r.limiter.Middleware())
	}
	rpc.Use(Authenticate(r.authority, r.metrics))
	rpc.POST("/", r.handler.Handle)
	rpc.POST("/rpc", r.handler.Handle)

	r.logger.Info("Routes registered", zap.Int("methods", len(r.handler.Methods())))
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	if r.db != nil {
		if err := r.db.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "UNAVAILABLE",
				"service": "catalog-api",
				"error":   err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"service": "catalog-api",
	})
}
