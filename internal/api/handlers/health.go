package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/pitchkit/internal/config"
	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"environment": h.cfg.Environment,
		"tuning":      h.cfg.Tuning().String(),
	})
}
