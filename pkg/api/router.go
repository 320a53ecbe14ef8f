package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lead-gateway/pkg/metrics"
	"lead-gateway/pkg/middleware"
)

// NewRouter registers every route on a fresh gin engine. gatherer backs
// the /metrics endpoint.
func NewRouter(handlers *Handlers, m *metrics.Metrics, gatherer prometheus.Gatherer, log *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics(m))

	router.GET("/", handlers.Index)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := router.Group("/api/v1")
	v1.POST("/lead/create", handlers.CreateLead)
	v1.POST("/lead/status", handlers.GetLeadStatus)
	v1.GET("/leads", handlers.ListLeads)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"code": "not_found", "detail": "Not Found"}})
	})
	return router
}
