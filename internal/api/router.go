package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/registrohq/registro/internal/dbpool"
	"github.com/registrohq/registro/internal/middleware"
	"github.com/registrohq/registro/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	Pool        *dbpool.Pool
	Hub         *ws.Hub
	People      PersonService
	Logs        LogService
	CSV         CSVService
	CORSOrigins []string
	Version     string
}

// maxBodySize limits request bodies (CSV uploads included).
const maxBodySize = 10 << 20 // 10 MB

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: true,
	}))
	r.Use(middleware.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all route handlers. Paths match the original
// service exactly (trailing slashes included) so its frontend keeps working.
func registerRoutes(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.Pool, deps.Hub, log, deps.Version)
	people := NewPersonHandler(deps.People, log)
	logs := NewLogHandler(deps.Logs, log)
	csvio := NewCSVHandler(deps.CSV, log)

	r.GET("/health", health.Liveness)
	r.GET("/ready", health.Readiness)

	r.POST("/people/", people.Create)
	r.GET("/people/", people.List)
	r.GET("/people/:id", people.Get)
	r.PUT("/people/:id", people.Update)
	r.DELETE("/people/:id", people.Delete)

	r.GET("/logs/", logs.List)

	// Upload and download are POST-only, so they never collide with the
	// GET/PUT/DELETE :id routes above.
	r.POST("/people/upload", csvio.Upload)
	r.POST("/people/download", csvio.Download)

	r.GET("/events/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(ctx, r, deps)

	return r
}
