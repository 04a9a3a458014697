package health

import (
	"net/http"
	"time"

	"github.com/dustin/config-service/config"
	"github.com/gin-gonic/gin"
)

// PingFunc reports whether the database is reachable.
type PingFunc func() error

// Handler handles HTTP requests for service health
type Handler struct {
	cfg     *config.Service
	ping    PingFunc
	started time.Time
}

// NewHandler creates a new health handler. The ping function may be nil
// when no database is wired in (tests).
func NewHandler(cfg *config.Service, ping PingFunc) *Handler {
	return &Handler{
		cfg:     cfg,
		ping:    ping,
		started: time.Now(),
	}
}

// RegisterRoutes registers health endpoints on the router
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)
	router.GET("/health/detailed", h.DetailedHealth)
}

// Health returns basic liveness information
func (h *Handler) Health(c *gin.Context) {
	service, _ := h.cfg.String("logging.service_name")
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now(),
		"service":   service,
	})
}

// DetailedHealth adds environment, uptime and database reachability
func (h *Handler) DetailedHealth(c *gin.Context) {
	environment, _ := h.cfg.String("environment")
	service, _ := h.cfg.String("logging.service_name")

	status := "healthy"
	database := "connected"
	code := http.StatusOK
	if h.ping != nil {
		if err := h.ping(); err != nil {
			status = "degraded"
			database = "unreachable"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, gin.H{
		"status":      status,
		"timestamp":   time.Now(),
		"service":     service,
		"environment": environment,
		"uptime":      time.Since(h.started).String(),
		"database":    database,
	})
}
