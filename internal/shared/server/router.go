package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skiracer-backend/internal/documents"
	"skiracer-backend/internal/events"
	"skiracer-backend/internal/racers"
	"skiracer-backend/internal/shared/config"
	"skiracer-backend/internal/shared/metrics"
	"skiracer-backend/internal/shared/server/middleware"
	"skiracer-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config           config.Config
	RacersHandler    *racers.Handler
	EventsHandler    *events.Handler
	DocumentsHandler *documents.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.RacersHandler.RegisterRoutes(api)
	deps.EventsHandler.RegisterRoutes(api)
	deps.DocumentsHandler.RegisterRoutes(api)

	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
