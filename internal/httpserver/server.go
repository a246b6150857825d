package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PratikDhanave/event-forwarder-service/internal/config"
	"github.com/PratikDhanave/event-forwarder-service/internal/cors"
	"github.com/PratikDhanave/event-forwarder-service/internal/forwarder"
	"github.com/PratikDhanave/event-forwarder-service/internal/supabase"
)

// NewRouter wires public endpoints and the forward endpoint.
// Public: /health, /ready
// Forward: /track (all methods; OPTIONS is the pre-flight answer)
func NewRouter(cfg config.Config, ins supabase.Inserter, log *zap.SugaredLogger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(cors.Middleware())

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the storage backend is configured. No outbound
	// call is made; presence of the configuration is the only dependency.
	r.GET("/ready", func(c *gin.Context) {
		if !cfg.SupabaseConfigured() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not_ready",
				"error":  forwarder.ErrConfigMissing.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	h := forwarder.New(cfg, ins, log)
	r.Any("/track", h.Track)

	return r
}

// requestID tags each request for log correlation. Inbound X-Request-Id is
// honored so upstream proxies keep their trace.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Header("X-Request-Id", id)
		c.Next()
	}
}
