package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"portfolioapi/internal/api/middleware"
	"portfolioapi/internal/config"
	"portfolioapi/internal/metrics"
)

// NewRouter builds the Gin engine with the shared middleware chain and the
// operational endpoints.
func NewRouter(cfg *config.Config, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.CorrelationID(),
		middleware.RequestLogger(logger),
		metrics.GinMiddleware(),
		middleware.CORS(cfg.API.CORSOrigin),
		middleware.SecurityHeaders(),
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(func(c *gin.Context) {
		NotFound(c, "Not Found")
	})

	return router
}
