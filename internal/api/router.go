package api

import (
	"github.com/Conceptual-Machines/pitchkit/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/pitchkit/internal/api/middleware"
	"github.com/Conceptual-Machines/pitchkit/internal/config"
	"github.com/Conceptual-Machines/pitchkit/internal/metrics"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, cloudwatch *metrics.Client, version string) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.Recovery())
	router.Use(apimiddleware.SentryMiddleware())
	router.Use(apimiddleware.RequestTracking(cloudwatch))
	router.Use(apimiddleware.CORS(cfg.AllowedOrigin))

	healthHandler := handlers.NewHealthHandler(cfg)
	router.GET("/health", healthHandler.HealthCheck)

	metricsHandler := handlers.NewMetricsHandler(version, cfg, cloudwatch)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	v1 := router.Group("/api/v1")
	{
		noteHandler := handlers.NewNoteHandler(cfg, cloudwatch)
		notes := v1.Group("/notes")
		notes.GET("/name/:name", noteHandler.GetByName)
		notes.GET("/number/:number", noteHandler.GetByNumber)
		notes.GET("/frequency/:hz", noteHandler.GetByFrequency)
		notes.GET("/midi/:key", noteHandler.GetByMIDIKey)
		notes.GET("/range", noteHandler.Range)
		notes.POST("/convert", noteHandler.Convert)
	}

	return router
}
